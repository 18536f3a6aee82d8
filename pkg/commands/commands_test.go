package commands

import (
	"bytes"
	"sort"
	"strings"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	want := []string{"demo", "info", "key", "show", "version"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("commands = %v, want %v", names, want)
	}
}

func TestShowRequiresText(t *testing.T) {
	root := New()
	root.SetArgs([]string{"show", "--kind", "success"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "title or a description") {
		t.Fatalf("expected a missing text error, got %v", err)
	}
}

func TestVersionRejectsUnknownFormat(t *testing.T) {
	root := New()
	root.SetArgs([]string{"version", "-o", "xml"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected an error for -o xml")
	}
}
