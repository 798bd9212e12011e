package sqlite

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "storage_test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetAndGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k1", "v1"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := s.Get("k1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if v != "v1" {
		t.Errorf("unexpected value: %s", v)
	}
}

func TestGetAbsent(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get("missing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected absent key")
	}
}

func TestSetReplaces(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k1", "old"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k1", "new"); err != nil {
		t.Fatal(err)
	}

	v, ok, _ := s.Get("k1")
	if !ok || v != "new" {
		t.Errorf("expected replaced value, got %q (ok=%v)", v, ok)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k1", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("k1"); err != nil {
		t.Fatal(err)
	}

	_, ok, _ := s.Get("k1")
	if ok {
		t.Error("expected key to be removed")
	}

	// Removing an absent key is a no-op.
	if err := s.Remove("k1"); err != nil {
		t.Errorf("remove absent key: %v", err)
	}
}
