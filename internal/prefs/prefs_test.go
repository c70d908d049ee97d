package prefs

import (
	"path/filepath"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get("nope"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Set("theme.mode", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get("theme.mode")
	if err != nil || !ok || value != "dark" {
		t.Fatalf("expected dark, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestSetReplacesExistingValue(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Set("key", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("key", "two"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get("key")
	if err != nil || !ok || value != "two" {
		t.Fatalf("expected upsert to replace, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "prefs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set("key", "value"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	value, ok, err := s.Get("key")
	if err != nil || !ok || value != "value" {
		t.Fatalf("expected value to survive reopen, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestThemeSlotRoundTrip(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	slot := ThemeSlot{Store: s}
	if _, ok, err := slot.Load(); err != nil || ok {
		t.Fatalf("expected empty slot, got ok=%v err=%v", ok, err)
	}
	if err := slot.Save("light"); err != nil {
		t.Fatalf("save: %v", err)
	}
	value, ok, err := slot.Load()
	if err != nil || !ok || value != "light" {
		t.Fatalf("expected light, got %q ok=%v err=%v", value, ok, err)
	}
}
