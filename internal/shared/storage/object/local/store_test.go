package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveOpenAndList(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.SaveWithKey(ctx, "resumes/alice.pdf", "application/pdf", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if n != 5 {
		t.Errorf("written = %d, want 5", n)
	}

	// Same key overwrites.
	if _, err := store.SaveWithKey(ctx, "resumes/alice.pdf", "application/pdf", strings.NewReader("second")); err != nil {
		t.Fatalf("SaveWithKey overwrite: %v", err)
	}

	rc, err := store.Open(ctx, "resumes/alice.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	content, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("content = %q, want %q", content, "second")
	}

	names, err := store.List(ctx, "resumes")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "alice.pdf" {
		t.Errorf("names = %v", names)
	}
}

func TestListMissingPrefixIsEmpty(t *testing.T) {
	store := New(t.TempDir())

	names, err := store.List(context.Background(), "resumes")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.SaveWithKey(ctx, "../escape.pdf", "application/pdf", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for traversal key")
	}
	if _, err := store.Open(ctx, "/etc/passwd"); err == nil {
		t.Fatal("expected error for absolute key")
	}
}
