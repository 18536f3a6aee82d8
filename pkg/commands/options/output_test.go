package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"tableflip.dev/toast/pkg/toast"
)

func TestHandleErrorPassesThroughWithoutJSON(t *testing.T) {
	want := errors.New("boom")
	o := OutputOptions{}
	if got := o.HandleError(want); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := OutputOptions{JSON: true, Out: &buf}
	err := fmt.Errorf("config: %w", toast.ErrUnknownPosition)
	if got := o.HandleError(err); got != nil {
		t.Fatalf("HandleError returned %v", got)
	}
	var out map[string]string
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if out["code"] != "unknown_position" || out["error"] == "" {
		t.Fatalf("got %v", out)
	}
}

func TestHandleErrorJSONNil(t *testing.T) {
	var buf bytes.Buffer
	o := OutputOptions{JSON: true, Out: &buf}
	if err := o.HandleError(nil); err != nil || buf.Len() != 0 {
		t.Fatalf("nil error should print nothing, got %q", buf.String())
	}
}
