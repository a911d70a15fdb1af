package repl

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHistory_Add(t *testing.T) {
	h := NewHistory("", 3)
	for _, line := range []string{"a", "b", "b", "c", "login --password secret", "d"} {
		h.Add(line)
	}

	if want := []string{"b", "c", "d"}; !reflect.DeepEqual(h.Entries(), want) {
		t.Errorf("Entries() = %q, want %q", h.Entries(), want)
	}
	if got := h.Get(0); got != "d" {
		t.Errorf("Get(0) = %q, want d", got)
	}
	if got := h.Get(2); got != "b" {
		t.Errorf("Get(2) = %q, want b", got)
	}
	if got := h.Get(3); got != "" {
		t.Errorf("Get(3) = %q, want empty", got)
	}
}

func TestHistory_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history")

	h := NewHistory(path, 10)
	h.Add("wallets list")
	h.Add("whoami")
	if err := h.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("history file mode = %o, want 600", perm)
	}

	loaded := NewHistory(path, 10)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if want := []string{"wallets list", "whoami"}; !reflect.DeepEqual(loaded.Entries(), want) {
		t.Errorf("Entries() = %q, want %q", loaded.Entries(), want)
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"), 10)
	if err := h.Load(); err != nil {
		t.Errorf("Load() = %v, want nil", err)
	}
	if len(h.Entries()) != 0 {
		t.Errorf("Entries() = %q, want empty", h.Entries())
	}
}

func TestHistory_InMemory(t *testing.T) {
	h := NewHistory("", 0)
	h.Add("x")
	if err := h.Save(); err != nil {
		t.Errorf("Save() = %v", err)
	}
	if err := h.Load(); err != nil {
		t.Errorf("Load() = %v", err)
	}
}
