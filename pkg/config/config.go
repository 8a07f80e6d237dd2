package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for jsorphan.
type Config struct {
	// Markup controls how HTML documents are searched for script references.
	Markup MarkupConfig `koanf:"markup" toml:"markup"`

	// Resolve controls how reference specifiers are normalized and matched.
	Resolve ResolveConfig `koanf:"resolve" toml:"resolve"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// MarkupConfig describes the HTML surface that is scanned for references.
type MarkupConfig struct {
	Extension string `koanf:"extension" toml:"extension"` // file extension marking HTML documents
	ScriptTag string `koanf:"script_tag" toml:"script_tag"`
	SrcAttr   string `koanf:"src_attr" toml:"src_attr"`
}

// ResolveConfig describes how JavaScript references are recognized.
type ResolveConfig struct {
	// Extensions lists file extensions treated as JavaScript (e.g. ".js",
	// ".mjs"). Suffix matching is case-insensitive.
	Extensions []string `koanf:"extensions" toml:"extensions"`

	// DefaultExtension is appended to extensionless import specifiers
	// (import './helper' resolves to helper + DefaultExtension).
	DefaultExtension string `koanf:"default_extension" toml:"default_extension"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns" toml:"patterns"`
	Dirs      []string `koanf:"dirs" toml:"dirs"`
	Gitignore bool     `koanf:"gitignore" toml:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format       string `koanf:"format" toml:"format"` // text, json, markdown, toon
	Color        bool   `koanf:"color" toml:"color"`
	Verbose      bool   `koanf:"verbose" toml:"verbose"`
	FailOnUnused bool   `koanf:"fail_on_unused" toml:"fail_on_unused"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Markup: MarkupConfig{
			Extension: ".html",
			ScriptTag: "script",
			SrcAttr:   "src",
		},
		Resolve: ResolveConfig{
			Extensions:       []string{".js"},
			DefaultExtension: ".js",
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.min.js",
			},
			Dirs: []string{
				"node_modules",
				"vendor",
				".git",
				"dist",
				"build",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format:       "text",
			Color:        true,
			Verbose:      false,
			FailOnUnused: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"jsorphan.toml",
		"jsorphan.yaml",
		"jsorphan.yml",
		"jsorphan.json",
		".jsorphan.toml",
		".jsorphan.yaml",
		".jsorphan.yml",
		".jsorphan.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			cfg, err := Load(name)
			if err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}
