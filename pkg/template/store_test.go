package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_EmbeddedDefaults(t *testing.T) {
	store := NewStore()

	names, err := store.Names()
	if err != nil {
		t.Fatalf("names: %v", err)
	}

	want := []string{"clean_gradient", "estimate"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("embedded template names (-want +got):\n%s", diff)
	}

	content, err := store.Load(DefaultTemplateName)
	if err != nil {
		t.Fatalf("load default template: %v", err)
	}
	if !strings.Contains(content, "{{ items_rows }}") {
		t.Fatal("default template must carry the items_rows placeholder")
	}
}

func TestStore_DirBacked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.html")
	if err := os.WriteFile(path, []byte(`<p>{{ title }}</p>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	// Non-template files are ignored by Names.
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}

	store := NewStore(WithStoreDir(dir))

	names, err := store.Names()
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if diff := cmp.Diff([]string{"minimal"}, names); diff != "" {
		t.Fatalf("dir template names (-want +got):\n%s", diff)
	}

	content, err := store.Load("minimal")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if content != `<p>{{ title }}</p>` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestStore_LoadCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cached.html")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	store := NewStore(WithStoreDir(dir))
	if _, err := store.Load("cached"); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// A rewritten file must not be re-read once cached.
	if err := os.WriteFile(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("rewrite template: %v", err)
	}

	content, err := store.Load("cached")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if content != "first" {
		t.Fatalf("expected cached content, got %q", content)
	}
}

func TestStore_UnknownTemplate(t *testing.T) {
	store := NewStore()
	if _, err := store.Load("missing"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
