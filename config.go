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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	KeyTypeInt    = "int"
	KeyTypeString = "string"

	PopulateUnsorted = "unsorted"
	PopulateSorted   = "sorted"
)

type TreeConfig struct {
	KeyType  string `yaml:"key_type"`
	Populate string `yaml:"populate"`
}

type DisplayConfig struct {
	Style string `yaml:"style"`
}

type LoaderConfig struct {
	ProgressThreshold int  `yaml:"progress_threshold"`
	BloomSize         uint `yaml:"bloom_size"`
	BloomHashes       uint `yaml:"bloom_hashes"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Display DisplayConfig `yaml:"display"`
	Loader  LoaderConfig  `yaml:"loader"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyType:  KeyTypeInt,
		Populate: PopulateUnsorted,
	},
	Display: DisplayConfig{
		Style: "pretty",
	},
	Loader: LoaderConfig{
		ProgressThreshold: 10000,
		BloomSize:         1 << 20,
		BloomHashes:       5,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// LoadConfig reads the config file. A missing or unreadable file yields the
// defaults; fields left out of the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	if err := config.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Tree.KeyType {
	case KeyTypeInt, KeyTypeString:
	default:
		return fmt.Errorf("tree.key_type must be %q or %q, got %q", KeyTypeInt, KeyTypeString, c.Tree.KeyType)
	}
	switch c.Tree.Populate {
	case PopulateUnsorted, PopulateSorted:
	default:
		return fmt.Errorf("tree.populate must be %q or %q, got %q", PopulateUnsorted, PopulateSorted, c.Tree.Populate)
	}
	if c.Loader.BloomSize == 0 || c.Loader.BloomHashes == 0 {
		return fmt.Errorf("loader.bloom_size and loader.bloom_hashes must be positive")
	}
	return nil
}

// getConfigPath honours ARBOR_CONFIG, falling back to ~/.arbor.yaml.
func getConfigPath() (string, error) {
	if path := os.Getenv("ARBOR_CONFIG"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".arbor.yaml"), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %skey_type%s: %s\n", Green, Reset, config.Tree.KeyType)
	fmt.Printf("  • %spopulate%s: %s\n", Green, Reset, config.Tree.Populate)
	if config.Tree.Populate == PopulateSorted {
		fmt.Printf("    Keys are sorted and inserted middle-first\n\n")
	} else {
		fmt.Printf("    Keys are inserted in the order given\n\n")
	}

	fmt.Printf("🖼  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sstyle%s: %s\n\n", Green, Reset, config.Display.Style)

	fmt.Printf("📥 %sLoader:%s\n", Green, Reset)
	fmt.Printf("  • %sprogress_threshold%s: %d\n", Green, Reset, config.Loader.ProgressThreshold)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Loader.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Loader.BloomHashes)

	fmt.Printf("💡 To use string keys, edit %s:\n", configPath)
	fmt.Printf("   tree:\n     key_type: string\n")
}
