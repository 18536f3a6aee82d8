package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/toast/pkg/toast"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOAST_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnterDelay != 10*time.Millisecond || cfg.ExitDelay != 300*time.Millisecond {
		t.Fatalf("unexpected delays: %s / %s", cfg.EnterDelay, cfg.ExitDelay)
	}
	req, err := cfg.Request()
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req != toast.NewRequest() {
		t.Fatalf("default request = %+v", req)
	}
	if cfg.File != "" {
		t.Fatalf("no file should have been read, got %q", cfg.File)
	}
	if m := cfg.Metrics(); m.CellWidth != 8 || m.CellHeight != 16 {
		t.Fatalf("metrics = %+v", m)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := []byte("position: bottom-center\nkind: warning\ndraggable: false\nexit_delay: 500ms\nwidth: 52\n")
	if err := os.WriteFile(filepath.Join(dir, ".toast.yaml"), body, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOAST_CONFIG_PATH", dir)
	t.Setenv("TOAST_WIDTH", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 60 {
		t.Fatalf("env should override file width, got %d", cfg.Width)
	}
	if filepath.Base(cfg.File) != ".toast.yaml" {
		t.Fatalf("config file = %q", cfg.File)
	}
	if cfg.ExitDelay != 500*time.Millisecond {
		t.Fatalf("exit delay = %s", cfg.ExitDelay)
	}
	req, err := cfg.Request()
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req.Position != toast.PositionBottomCenter || req.Kind != toast.KindWarning || req.Draggable {
		t.Fatalf("request = %+v", req)
	}
}

func TestRequestRejectsUnknownValues(t *testing.T) {
	cfg := &Config{Kind: "loud", Position: "top-right"}
	if _, err := cfg.Request(); !errors.Is(err, toast.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	cfg = &Config{Position: "middle"}
	if _, err := cfg.Request(); !errors.Is(err, toast.ErrUnknownPosition) {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".toast.yaml"), []byte("position: [unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOAST_CONFIG_PATH", dir)
	if _, err := Load(); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestThemeBackdropOverride(t *testing.T) {
	cfg := &Config{Backdrop: "#000000"}
	if got := cfg.Theme().Toast.Backdrop; got != "#000000" {
		t.Fatalf("backdrop = %s", got)
	}
	cfg = &Config{}
	if got := cfg.Theme().Toast.Backdrop; got == "" {
		t.Fatalf("expected the default backdrop")
	}
}
