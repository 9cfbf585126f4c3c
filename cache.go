// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// A rendered frame is only reused while the tree stays unchanged
	renderCacheExpiration = 10 * time.Minute
	// Clean up expired entries every minute
	renderCacheCleanup = 1 * time.Minute
)

// NewRenderCache creates a cache for rendered tree views.
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderCacheKey(revision int, style string) string {
	return fmt.Sprintf("%d/%s", revision, style)
}

func CacheRender(c *cache.Cache, revision int, style string, view string) {
	c.Set(renderCacheKey(revision, style), view, cache.DefaultExpiration)
}

// GetRender returns the cached view and whether it was present.
func GetRender(c *cache.Cache, revision int, style string) (string, bool) {
	val, ok := c.Get(renderCacheKey(revision, style))
	if !ok {
		return "", false
	}
	return val.(string), true
}
