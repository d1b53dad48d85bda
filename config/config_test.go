package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

func TestLoadFrom_Defaults(t *testing.T) {
	// 在空目录中查找，不会找到配置文件
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("切换目录失败: %v", err)
	}
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.State.Path != internal.DefaultStatePath {
		t.Errorf("State.Path = %q, want %q", cfg.State.Path, internal.DefaultStatePath)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable() error = %v", err)
	}
	if table.Classify("a.pdf") != "PDFs" {
		t.Error("expected built-in table when no categories configured")
	}
}

func TestLoadFrom_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := `
state:
  path: /tmp/state.json
history:
  enabled: false
scanner:
  sniff: true
logging:
  level: debug
categories:
  - name: Music
    extensions: [mp3, .FLAC]
  - name: Images
    extensions: [".png"]
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("创建配置文件失败: %v", err)
	}

	cfg, err := LoadFrom(file)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.State.Path != "/tmp/state.json" {
		t.Errorf("State.Path = %q", cfg.State.Path)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled")
	}
	if !cfg.Scanner.Sniff {
		t.Error("sniff should be enabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("cfg.Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable() error = %v", err)
	}
	if got := table.Classify("song.flac"); got != "Music" {
		t.Errorf("Classify(song.flac) = %q, want Music", got)
	}
	if got := table.Classify("a.pdf"); got != internal.OthersCategory {
		t.Errorf("Classify(a.pdf) = %q, want Others", got)
	}
	names := table.Names()
	if len(names) != 3 || names[2] != internal.OthersCategory {
		t.Errorf("Names() = %v", names)
	}
}

func TestLoadFrom_ReservedCategory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := `
categories:
  - name: Others
    extensions: [txt]
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("创建配置文件失败: %v", err)
	}

	cfg, err := LoadFrom(file)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, err := cfg.CategoryTable(); err == nil {
		t.Error("expected error for reserved category name")
	}
}

func TestLoadFrom_MissingExplicitFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
