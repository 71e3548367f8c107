package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/figure"
	"github.com/spf13/cobra"
)

func newFigureCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	c := &cobra.Command{Use: "test"}
	addFigureFlags(c, true)
	addPositionFlags(c)
	if err := c.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return c
}

func TestApplyFigureFlags(t *testing.T) {
	c := newFigureCommand(t, "--src", "a.png", "--alt", "An a", "--preset", "small", "--wrap", "float-left", "--new-tab=false")

	cfg := figure.NewImageConfig("", "")
	if err := applyFigureFlags(c, &cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if cfg.Src != "a.png" || cfg.Alt != "An a" || cfg.WrapMode != figure.WrapFloatLeft {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Width.GetOr(0) != 400 || cfg.OpenInNewTab {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BorderRadius != figure.RadiusMD || cfg.Shadow != figure.ShadowNone {
		t.Error("unset flags must keep the config values")
	}
}

func TestApplyFigureFlagsKeepsUnset(t *testing.T) {
	c := newFigureCommand(t, "--shadow", "soft", "--width", "0")

	cfg := figure.NewImageConfig("cat.jpg", "A cat")
	cfg.WrapMode = figure.WrapFloatRight

	if err := applyFigureFlags(c, &cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if cfg.Src != "cat.jpg" || cfg.WrapMode != figure.WrapFloatRight || cfg.Shadow != figure.ShadowSoft {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Width.IsSome() {
		t.Error("--width 0 must clear the width")
	}
}

func TestApplyFigureFlagsBadPreset(t *testing.T) {
	c := newFigureCommand(t, "--preset", "huge")
	cfg := figure.NewImageConfig("a", "b")
	if err := applyFigureFlags(c, &cfg); err == nil {
		t.Error("expected error")
	}
}

func TestPositionFromFlags(t *testing.T) {
	pos, offset, err := positionFromFlags(newFigureCommand(t, "--position", "cursor", "--offset", "12"))
	if err != nil || pos != figure.PositionCursor || offset != 12 {
		t.Errorf("got %s %d %v", pos, offset, err)
	}

	if _, _, err := positionFromFlags(newFigureCommand(t, "--position", "middle")); err == nil {
		t.Error("expected error")
	}
}

func TestRunEncode(t *testing.T) {
	c := newFigureCommand(t, "--src", "a.png", "--alt", "An a")
	var out bytes.Buffer
	c.SetOut(&out)

	if err := runEncode(c, nil); err != nil {
		t.Fatalf("runEncode: %v", err)
	}

	want := figure.Encode(figure.NewImageConfig("a.png", "An a")) + "\n"
	if out.String() != want {
		t.Errorf("out = %q, want %q", out.String(), want)
	}

	if err := runEncode(newFigureCommand(t, "--src", "a.png"), nil); err == nil {
		t.Error("expected validation error for missing alt")
	}
}

func TestRunInsertAndUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Post\n---\nBody.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runInsert(newFigureCommand(t, "--src", "a.png", "--alt", "An a"), []string{path}); err != nil {
		t.Fatalf("runInsert: %v", err)
	}

	if err := runUpdate(newFigureCommand(t, "--caption", "Hello"), []string{path, "a.png"}); err != nil {
		t.Fatalf("runUpdate: %v", err)
	}

	doc, err := document.LoadDocument(path)
	if err != nil {
		t.Fatal(err)
	}

	cfgs, err := doc.Figures()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfgs) != 1 || cfgs[0].Caption != "Hello" || cfgs[0].Alt != "An a" {
		t.Errorf("figures = %+v", cfgs)
	}
	if !strings.HasPrefix(doc.Markdown(), "Body.\n") {
		t.Errorf("body = %q", doc.Markdown())
	}

	err = runUpdate(newFigureCommand(t, "--caption", "x"), []string{path, "missing.png"})
	if err == nil {
		t.Error("expected error for unknown src")
	}
}
