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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMarkdown() string {
	return fmt.Sprintf(`

 **Arbor %s**

Grow a self-balancing (AVL) search tree one key at a time and watch it rotate.

Built with Go %s

# 1. Commands
* **arbor** or **arbor run**: interactive tree, type keys and press enter
* **arbor insert 10 20 30**: insert keys in order and draw the tree
* **arbor load keys.txt**: insert one key per line from a file (**-** reads stdin)
* **arbor compare 1 2 3 4 5**: AVL height next to an unbalanced tree's height
* **arbor stress -n 100000**: random inserts, verified after every run
* **arbor settings**: show or create the configuration file

# 2. Display styles
* **pretty**: sideways tree, right subtree on top
* **balance**: sideways tree with height and balance factor
* **indented**, **details**: one node per line
* **preorder**, **inorder**, **postorder**: keys on one line

# 3. Keys
* Integer keys by default; set **tree.key_type: string** in ~/.arbor.yaml for text keys
* Equal keys are ignored
* Quote keys that contain spaces: **"new york" boston**

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(getUsageMarkdown(), 80, 3)
	return string(result)
}
