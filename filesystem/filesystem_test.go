package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGatherFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.md"))
	touch(t, filepath.Join(dir, "b.MARKDOWN"))
	touch(t, filepath.Join(dir, "c.txt"))
	if err := CreateDirectoryIfNotExists(filepath.Join(dir, "sub.md")); err != nil {
		t.Fatal(err)
	}

	single := filepath.Join(t.TempDir(), "single.md")
	touch(t, single)

	paths, err := GatherFiles([]string{dir, single}, MarkdownExtensions)
	if err != nil {
		t.Fatalf("GatherFiles: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("paths = %v", paths)
	}
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			t.Errorf("not absolute: %s", p)
		}
	}

	if _, err := GatherFiles([]string{filepath.Join(dir, "missing")}, MarkdownExtensions); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestCopyKeepsModTime(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	touch(t, src)

	mod := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(src, mod, mod); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "dst.jpg")
	if err := Copy(src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	fi, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.ModTime().Equal(mod) {
		t.Errorf("mod time = %v", fi.ModTime())
	}

	if err := Copy(dir, dst); err == nil {
		t.Error("expected error copying a directory")
	}
	if !IsDirectory(dir) || IsDirectory(dst) {
		t.Error("IsDirectory mismatch")
	}
}
