package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

func TestOpenObject(t *testing.T) {
	dir := t.TempDir()
	content := []byte("shared file content")
	if err := os.WriteFile(filepath.Join(dir, "report.ttl"), content, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store, err := NewStore(dir, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, size, err := store.OpenObject(context.Background(), "", "report.ttl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	if size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), size)
	}

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error reading: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestOpenObject_MissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir(), logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := store.OpenObject(context.Background(), "", "absent.bin"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenObject_EscapingPathRejected(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(outside) })

	store, err := NewStore(dir, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// filepath.Join cleans "..", so the resolved path stays inside the
	// export directory and the traversal target is simply not found.
	if _, _, err := store.OpenObject(context.Background(), "", "../secret.txt"); err == nil {
		t.Fatal("expected traversal to be rejected or not found")
	}
}

func TestOpenObject_DirectoryRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	store, err := NewStore(dir, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := store.OpenObject(context.Background(), "", "sub"); err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestNewStore_EmptyBaseDir(t *testing.T) {
	if _, err := NewStore("", logger.Nop()); err == nil {
		t.Fatal("expected error for empty base directory")
	}
}
