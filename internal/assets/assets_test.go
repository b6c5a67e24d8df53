package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "resume.pdf", "%PDF")
	writeFile(t, root, "img/avatar.png", "png")
	writeFile(t, root, "img/raw/avatar.psd", "psd")
	writeFile(t, root, ".git/config", "x")
	writeFile(t, root, ".DS_Store", "x")

	files, err := Collect(root, Filter{Exclude: []string{"*.psd"}})
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	got := make(map[string]bool)
	for _, f := range files {
		got[f.RelPath] = true
	}
	for _, want := range []string{"resume.pdf", "img/avatar.png"} {
		if !got[want] {
			t.Errorf("expected %q in results", want)
		}
	}
	for _, unwanted := range []string{"img/raw/avatar.psd", ".git/config", ".DS_Store"} {
		if got[unwanted] {
			t.Errorf("did not expect %q in results", unwanted)
		}
	}
}

func TestCollectMissingRoot(t *testing.T) {
	files, err := Collect(filepath.Join(t.TempDir(), "nope"), Filter{})
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestFilterAllowed(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		path   string
		want   bool
	}{
		{"plain", Filter{}, "resume.pdf", true},
		{"nested", Filter{}, "img/a.png", true},
		{"default exclude dir", Filter{}, ".git/HEAD", false},
		{"default exclude file", Filter{}, "img/.DS_Store", false},
		{"env file", Filter{}, ".env", false},
		{"parent escape", Filter{}, "../secret", false},
		{"include match", Filter{Include: []string{"img/**"}}, "img/a/b.png", true},
		{"include miss", Filter{Include: []string{"img/**"}}, "resume.pdf", false},
		{"exclude basename", Filter{Exclude: []string{"*.psd"}}, "img/raw/a.psd", false},
		{"exclude doublestar", Filter{Exclude: []string{"drafts/**"}}, "drafts/x/y.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Allowed(tt.path); got != tt.want {
				t.Errorf("Allowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCopySkipsUnchanged(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, src, "img/a.png", "one")

	files, err := Collect(src, Filter{})
	if err != nil || len(files) != 1 {
		t.Fatalf("Collect() = %v, %v", files, err)
	}

	copied, err := Copy(files[0], dst)
	if err != nil || !copied {
		t.Fatalf("first Copy() = %v, %v", copied, err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "img", "a.png"))
	if err != nil || string(data) != "one" {
		t.Fatalf("copied content = %q, %v", data, err)
	}

	copied, err = Copy(files[0], dst)
	if err != nil {
		t.Fatalf("second Copy() error: %v", err)
	}
	if copied {
		t.Error("expected unchanged file to be skipped")
	}

	writeFile(t, src, "img/a.png", "two")
	copied, err = Copy(files[0], dst)
	if err != nil || !copied {
		t.Fatalf("Copy() after change = %v, %v", copied, err)
	}
}
