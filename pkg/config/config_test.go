package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Markup.Extension != ".html" {
		t.Errorf("Markup.Extension = %s, want .html", cfg.Markup.Extension)
	}
	if cfg.Markup.ScriptTag != "script" {
		t.Errorf("Markup.ScriptTag = %s, want script", cfg.Markup.ScriptTag)
	}
	if cfg.Markup.SrcAttr != "src" {
		t.Errorf("Markup.SrcAttr = %s, want src", cfg.Markup.SrcAttr)
	}

	if len(cfg.Resolve.Extensions) != 1 || cfg.Resolve.Extensions[0] != ".js" {
		t.Errorf("Resolve.Extensions = %v, want [.js]", cfg.Resolve.Extensions)
	}
	if cfg.Resolve.DefaultExtension != ".js" {
		t.Errorf("Resolve.DefaultExtension = %s, want .js", cfg.Resolve.DefaultExtension)
	}

	if !cfg.Exclude.Gitignore {
		t.Error("Exclude.Gitignore should be true by default")
	}
	if len(cfg.Exclude.Dirs) == 0 {
		t.Error("Exclude.Dirs should have default values")
	}

	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should be true by default")
	}
	if cfg.Output.FailOnUnused {
		t.Error("Output.FailOnUnused should be false by default")
	}
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jsorphan.toml")

	content := `
[markup]
extension = ".htm"

[resolve]
extensions = [".js", ".mjs"]
default_extension = ".mjs"

[exclude]
dirs = ["vendor", "custom_exclude"]
patterns = ["*_generated.js"]
gitignore = false

[output]
format = "json"
fail_on_unused = true
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Markup.Extension != ".htm" {
		t.Errorf("Markup.Extension = %s, want .htm", cfg.Markup.Extension)
	}
	if len(cfg.Resolve.Extensions) != 2 {
		t.Errorf("Resolve.Extensions = %v, want 2 entries", cfg.Resolve.Extensions)
	}
	if cfg.Resolve.DefaultExtension != ".mjs" {
		t.Errorf("Resolve.DefaultExtension = %s, want .mjs", cfg.Resolve.DefaultExtension)
	}
	if cfg.Exclude.Gitignore {
		t.Error("Exclude.Gitignore should be false")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	if !cfg.Output.FailOnUnused {
		t.Error("Output.FailOnUnused should be true")
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jsorphan.yaml")

	content := `
resolve:
  extensions: [".js", ".cjs"]
output:
  format: markdown
  color: false
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Resolve.Extensions) != 2 {
		t.Errorf("Resolve.Extensions = %v, want 2 entries", cfg.Resolve.Extensions)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %s, want markdown", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false")
	}
	// Untouched sections keep defaults
	if cfg.Markup.ScriptTag != "script" {
		t.Errorf("Markup.ScriptTag = %s, want script", cfg.Markup.ScriptTag)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jsorphan.json")

	content := `{"output": {"format": "toon", "verbose": true}}`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Output.Format != "toon" {
		t.Errorf("Output.Format = %s, want toon", cfg.Output.Format)
	}
	if !cfg.Output.Verbose {
		t.Error("Output.Verbose should be true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("Load should fail for a missing file")
	}
}
