package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.File != "" {
		t.Errorf("Expected empty output file, got %s", cfg.Output.File)
	}
	if cfg.Output.Xref {
		t.Error("Expected Xref=false")
	}
	if !cfg.Viewer.ColorOutput {
		t.Error("Expected ColorOutput=true")
	}
	if cfg.Viewer.StartPanel != "map" {
		t.Errorf("Expected StartPanel=map, got %s", cfg.Viewer.StartPanel)
	}
	if !cfg.Viewer.ShowTitles {
		t.Error("Expected ShowTitles=true")
	}
}

func TestPath(t *testing.T) {
	path := Path()

	if path == "" {
		t.Fatal("Path returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}
	// Either the per-user location or the current-directory fallback
	dir := filepath.Dir(path)
	if filepath.Base(dir) != "marie-linker" && path != "config.toml" {
		t.Errorf("Expected path in marie-linker directory or fallback, got %s", path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg.Viewer.StartPanel != "map" {
		t.Errorf("Expected default StartPanel, got %s", cfg.Viewer.StartPanel)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[output]
file = "report.txt"
xref = true

[viewer]
color_output = false
start_panel = "symbols"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.File != "report.txt" {
		t.Errorf("Expected output file report.txt, got %s", cfg.Output.File)
	}
	if !cfg.Output.Xref {
		t.Error("Expected Xref=true")
	}
	if cfg.Viewer.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if cfg.Viewer.StartPanel != "symbols" {
		t.Errorf("Expected StartPanel=symbols, got %s", cfg.Viewer.StartPanel)
	}
	// Unset keys keep their defaults
	if !cfg.Viewer.ShowTitles {
		t.Error("Expected ShowTitles to keep its default")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoad_BadStartPanel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[viewer]\nstart_panel = \"registers\"\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown start panel")
	}
}

func TestValidate_EmptyStartPanel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewer.StartPanel = ""
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if cfg.Viewer.StartPanel != "map" {
		t.Errorf("Expected empty start panel to fall back to map, got %s", cfg.Viewer.StartPanel)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Output.File = "out.txt"
	cfg.Viewer.StartPanel = "warnings"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output.File != "out.txt" {
		t.Errorf("Expected out.txt, got %s", loaded.Output.File)
	}
	if loaded.Viewer.StartPanel != "warnings" {
		t.Errorf("Expected warnings, got %s", loaded.Viewer.StartPanel)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewer.StartPanel = "bogus"
	if err := cfg.Save(filepath.Join(t.TempDir(), "config.toml")); err == nil {
		t.Error("Expected Save to reject an invalid config")
	}
}
