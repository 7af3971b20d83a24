package pdf

import (
	"context"
	"testing"
)

type fakeRenderer struct {
	name   string
	closed bool
}

func (f *fakeRenderer) Name() string {
	return f.name
}

func (f *fakeRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	return &RenderResult{PDFData: []byte("%PDF")}, nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&fakeRenderer{name: "fake"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("fake")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "fake" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRenderer{name: "fake"})

	if err := registry.Register(&fakeRenderer{name: "fake"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("nope"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRenderer{name: "zeta"})
	registry.MustRegister(&fakeRenderer{name: "alpha"})

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestRegistry_CloseAll(t *testing.T) {
	registry := NewRegistry()
	first := &fakeRenderer{name: "first"}
	second := &fakeRenderer{name: "second"}
	registry.MustRegister(first)
	registry.MustRegister(second)

	if err := registry.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !first.closed || !second.closed {
		t.Fatal("expected every renderer to be closed")
	}
}
