package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"folderize/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "folderize", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Organize.DryRun || cfg.Organize.Quiet || cfg.Organize.KeepGoing {
		t.Fatalf("expected batch flags off by default, got %+v", cfg.Organize)
	}
	if !cfg.Organize.PreserveTimes {
		t.Fatal("expected preserve_times enabled by default")
	}
	if cfg.DirPerm() != 0o755 {
		t.Fatalf("unexpected dir perm: %o", cfg.DirPerm())
	}
	if cfg.Output.Color != config.ColorAuto {
		t.Fatalf("unexpected color mode: %q", cfg.Output.Color)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadProjectConfigFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)

	if err := os.WriteFile("folderize.toml", []byte("[organize]\nquiet = true\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if filepath.Base(resolved) != "folderize.toml" {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if !cfg.Organize.Quiet {
		t.Fatal("expected quiet from project config")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")

	cfg := config.Default()
	cfg.Organize.DryRun = true
	cfg.Organize.KeepGoing = true
	cfg.Organize.DirMode = "0o750"
	cfg.Output.Color = "NEVER"
	cfg.Output.Summary = true
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "Debug"

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loaded, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected custom path to be used, got %q exists=%v", resolved, exists)
	}
	if !loaded.Organize.DryRun || !loaded.Organize.KeepGoing {
		t.Fatalf("unexpected organize section: %+v", loaded.Organize)
	}
	if loaded.DirPerm() != 0o750 {
		t.Fatalf("unexpected dir perm: %o", loaded.DirPerm())
	}
	if loaded.Output.Color != config.ColorNever || !loaded.Output.Summary {
		t.Fatalf("unexpected output section: %+v", loaded.Output)
	}
	if loaded.Logging.Format != "json" || loaded.Logging.Level != "debug" {
		t.Fatalf("unexpected logging section: %+v", loaded.Logging)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing file")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Output.Color != config.ColorAuto {
		t.Fatalf("expected defaults, got %+v", cfg.Output)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad mode", "[organize]\ndir_mode = \"9z\"\n", "organize.dir_mode"},
		{"owner cannot enter", "[organize]\ndir_mode = \"0555\"\n", "owner rwx"},
		{"bad color", "[output]\ncolor = \"rainbow\"\n", "output.color"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"unknown key", "[organize]\nmove = true\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoadsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	defaults := config.Default()
	if cfg.Organize.PreserveTimes != defaults.Organize.PreserveTimes || cfg.Output.Color != defaults.Output.Color {
		t.Fatalf("sample diverges from defaults: %+v", cfg)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/conf/folderize.toml")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "conf", "folderize.toml") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
