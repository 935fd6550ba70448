package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/retro-effects/internal/effects"
)

func TestRenderWritesEveryNthFrame(t *testing.T) {
	dir := t.TempDir()
	n, err := render("", effects.LabelGuestbook, dir, 25, 10, 1)
	if err != nil {
		t.Fatalf("render() error: %v", err)
	}
	if n != 3 {
		t.Errorf("wrote %d frames, want 3", n)
	}
	for _, name := range []string{"waves-0000.png", "waves-0010.png", "waves-0020.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRenderUnknownLabelStaysBouncing(t *testing.T) {
	dir := t.TempDir()
	if _, err := render("", "Webring", dir, 1, 1, 1); err != nil {
		t.Fatalf("render() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bouncing-0000.png")); err != nil {
		t.Errorf("missing bouncing frame: %v", err)
	}
}

func TestRenderBadConfig(t *testing.T) {
	if _, err := render(filepath.Join(t.TempDir(), "missing.yaml"), "", t.TempDir(), 1, 1, 1); err == nil {
		t.Error("render() with missing config returned nil error")
	}
	if _, err := render("", "", t.TempDir(), 1, 0, 1); err == nil {
		t.Error("render() with every=0 returned nil error")
	}
}
