package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "uploads"), 1024)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, n, err := store.Save("../Lecture 01.MP4", strings.NewReader("video bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != int64(len("video bytes")) {
		t.Fatalf("unexpected size %d", n)
	}
	if filepath.Dir(path) != filepath.Join(dir, "uploads") || filepath.Ext(path) != ".mp4" {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "video bytes" {
		t.Fatalf("unexpected content %q %v", data, err)
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(path); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}
}

func TestLocalStore_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, 4)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_, _, err = store.Save("big.mp4", strings.NewReader("too many bytes"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected partial upload to be removed, found %d files", len(entries))
	}
}
