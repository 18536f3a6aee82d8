package info

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/toast/pkg/config"
	"tableflip.dev/toast/pkg/toast"
)

func TestInfoPrintsResolvedConfig(t *testing.T) {
	color.NoColor = true
	t.Setenv("TOAST_CONFIG_PATH", "")
	var buf bytes.Buffer
	i := Info{
		Out: &buf,
		Config: &config.Config{
			Kind:      "info",
			Position:  "bottom-left",
			Width:     40,
			ExitDelay: 300 * time.Millisecond,
		},
	}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"env var not set", "none, using defaults", "bottom-left", "300ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoReportsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	i := Info{Out: &buf, Config: &config.Config{Position: "middle"}}
	if err := i.Do(context.Background()); !errors.Is(err, toast.ErrUnknownPosition) {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
}
