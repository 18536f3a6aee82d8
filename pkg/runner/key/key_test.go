package key

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDoPrintsTables(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	k := Key{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"success", "warning", "#f59e0b", "top-center", "vertical", "-16px", "+100px"} {
		if !strings.Contains(out, want) {
			t.Fatalf("legend missing %q:\n%s", want, out)
		}
	}
}

func TestDoJSON(t *testing.T) {
	var buf bytes.Buffer
	k := Key{Out: &buf, JSON: true}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got struct {
		Kinds     []KindRow     `json:"kinds"`
		Positions []PositionRow `json:"positions"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got.Kinds) != 5 || len(got.Positions) != 6 {
		t.Fatalf("got %d kinds, %d positions", len(got.Kinds), len(got.Positions))
	}
	for _, p := range got.Positions {
		if p.Position == "bottom-center" && (p.Axis != "vertical" || p.Initial != 16 || p.Exit != 100) {
			t.Fatalf("bottom-center row = %+v", p)
		}
	}
}
