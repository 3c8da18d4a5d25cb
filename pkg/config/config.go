package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"statuspage/pkg/github"
)

// ConfigFileName is the name of the page configuration file, both locally and
// at the root of the pages branch.
const ConfigFileName = "config.json"

// Config represents the status page configuration
type Config struct {
	Footer       string            `json:"footer"`
	Logo         string            `json:"logo"`
	Title        string            `json:"title"`
	Favicon      string            `json:"favicon"`
	SystemColor  string            `json:"system-color"`
	StatusLabels map[string]string `json:"status-labels"`
	Templates    []string          `json:"templates"`
}

// Default returns a fresh copy of the built-in configuration. Each call
// returns an independent value so merging a remote config can never leak into
// later invocations.
func Default() *Config {
	return &Config{
		Footer:      "Status page hosted by GitHub",
		Logo:        "logo.png",
		Title:       "Status",
		Favicon:     "favicon.png",
		SystemColor: "171717",
		StatusLabels: map[string]string{
			"investigating":        "1192FC",
			"degraded performance": "FFA500",
			"major outage":         "FF4D4D",
		},
		Templates: []string{
			"template.html",
			"style.css",
			"statuspage.js",
			"translations.ini",
		},
	}
}

// LoadFile reads a local config file. The file replaces the defaults
// entirely; it is not merged. A missing file is a fatal error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ContentReader is the slice of the GitHub client the resolver needs.
type ContentReader interface {
	ListRootFiles(owner, name, ref string) ([]string, error)
	GetFile(owner, name, path, ref string) (*github.RepoFile, error)
}

// Resolve returns the effective configuration for a repository's pages
// branch. If config.json exists at the branch root, its top-level keys are
// merged over the defaults (remote values win, no deep merge of nested
// mappings). A malformed remote file falls back to the defaults with a
// warning; an absent one returns the defaults unchanged.
func Resolve(repo ContentReader, owner, name, pagesBranch string) (*Config, error) {
	files, err := repo.ListRootFiles(owner, name, pagesBranch)
	if err != nil {
		return nil, err
	}

	found := false
	for _, path := range files {
		if path == ConfigFileName {
			found = true
			break
		}
	}
	if !found {
		return Default(), nil
	}

	file, err := repo.GetFile(owner, name, ConfigFileName, pagesBranch)
	if err != nil {
		return nil, err
	}

	cfg, err := Merge(Default(), file.Content)
	if err != nil {
		fmt.Printf("⚠️  Unable to parse remote %s, using defaults: %v\n", ConfigFileName, err)
		return Default(), nil
	}

	return cfg, nil
}

// Merge applies the top-level keys of a raw JSON config on top of base.
// Keys absent from the payload keep their base values; present keys replace
// them wholesale, so a remote status-labels mapping fully replaces the
// default one.
func Merge(base *Config, raw []byte) (*Config, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, err
	}

	merged := *base
	merged.StatusLabels = make(map[string]string, len(base.StatusLabels))
	for k, v := range base.StatusLabels {
		merged.StatusLabels[k] = v
	}
	merged.Templates = append([]string(nil), base.Templates...)

	fields := map[string]any{
		"footer":       &merged.Footer,
		"logo":         &merged.Logo,
		"title":        &merged.Title,
		"favicon":      &merged.Favicon,
		"system-color": &merged.SystemColor,
		"templates":    &merged.Templates,
	}

	for key, target := range fields {
		value, ok := keys[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
	}

	// Unmarshal keeps existing entries when decoding into a non-nil map, so
	// the payload's mapping goes into a fresh one. The merge is shallow: a
	// present status-labels key replaces the default set wholesale.
	if value, ok := keys["status-labels"]; ok {
		labels := make(map[string]string)
		if err := json.Unmarshal(value, &labels); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", "status-labels", err)
		}
		merged.StatusLabels = labels
	}

	return &merged, nil
}

// MarshalPretty renders the config as indented JSON with sorted keys, the
// format written to config.json both locally and on the pages branch.
func (c *Config) MarshalPretty() ([]byte, error) {
	// Round-trip through a map so keys come out sorted.
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	var keys map[string]any
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}

	return json.MarshalIndent(keys, "", "    ")
}

// WriteDefault writes the built-in defaults as pretty-printed JSON to
// config.json in the given directory.
func WriteDefault(dir string) (string, error) {
	data, err := Default().MarshalPretty()
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
