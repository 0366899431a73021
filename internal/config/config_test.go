package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadRunConfigAppliesDefaults(t *testing.T) {
	path := writeTemp(t, `geometry = "cylinder"`)
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Parts != 2 || cfg.Dim != 2 || cfg.GhostLayers != 1 || cfg.AdminAddr != ":9200" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Geometry != "cylinder" {
		t.Fatalf("expected explicit geometry to survive defaulting, got %q", cfg.Geometry)
	}
}

func TestLoadRunConfigRejectsUnknownGeometry(t *testing.T) {
	path := writeTemp(t, `geometry = "torus"`)
	if _, err := LoadRunConfig(path); err == nil {
		t.Fatalf("expected error for unknown geometry")
	}
}

func TestLoadRunConfigRejectsMissingFile(t *testing.T) {
	if _, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	tpl, err := Template("run")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	if err := WriteTemplate(path, "run", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("load written template: %v", err)
	}
	if cfg.Geometry != "planar" {
		t.Fatalf("got geometry %q, want planar", cfg.Geometry)
	}
	_ = tpl
}

func TestWriteTemplateRefusesOverwriteByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	if err := WriteTemplate(path, "run", false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteTemplate(path, "run", false); err == nil {
		t.Fatalf("expected second write without overwrite to fail")
	}
	if err := WriteTemplate(path, "run", true); err != nil {
		t.Fatalf("overwrite write: %v", err)
	}
}
