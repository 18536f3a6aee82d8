package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"tableflip.dev/toast/pkg/config"
	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/stage"
)

// go test captures stdout, so the stage refuses to start.
func TestShowRequiresTerminal(t *testing.T) {
	cfg := &config.Config{LogFile: filepath.Join(t.TempDir(), "toast.log")}
	req := toast.NewRequest()
	req.Title = "hello"
	s := Show{Config: cfg, Request: req}
	if err := s.Do(context.Background()); !errors.Is(err, stage.ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}

func TestDemoRequiresTerminal(t *testing.T) {
	d := Demo{Config: &config.Config{}, Template: toast.NewRequest()}
	if err := d.Do(context.Background()); !errors.Is(err, stage.ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}
