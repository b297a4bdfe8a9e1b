// Package config persists the itn CLI's custom rules across invocations.
// Rules are stored as YAML, loaded through viper, at
// ~/.config/itn/rules.yaml under the user's home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Rule is one persisted custom rule, spoken form to written form.
type Rule struct {
	Spoken  string `yaml:"spoken"`
	Written string `yaml:"written"`
}

// rulesFile is a thin wrapper so the on-disk YAML shape is a named list
// rather than a bare sequence, making the file self-describing.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// Path returns the custom rules file location, creating its parent
// directory if needed.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "itn")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: create config directory: %w", err)
	}
	return filepath.Join(dir, "rules.yaml"), nil
}

// Load reads the persisted rules file via viper. A missing file is not
// an error; it yields an empty rule set.
func Load() ([]Rule, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f rulesFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f.Rules, nil
}

// Save writes rules to the persisted rules file as YAML.
func Save(rules []Rule) error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(rulesFile{Rules: rules})
	if err != nil {
		return fmt.Errorf("config: marshal rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// LoadRulesInto reads the persisted rules file and feeds each rule to
// add, so callers can register them onto any itn.Engine (or the package
// default) without this package importing itn directly.
func LoadRulesInto(add func(spoken, written string)) error {
	rules, err := Load()
	if err != nil {
		return err
	}
	for _, r := range rules {
		add(r.Spoken, r.Written)
	}
	return nil
}
