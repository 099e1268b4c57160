package localstore_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/quizdeck/admin-core/internal/localstore"
)

func openTestStore(t *testing.T) localstore.Store {
	t.Helper()
	s, err := localstore.Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)

	t.Run("RoundTrip", func(t *testing.T) {
		if err := s.Put("token", "abc123"); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := s.Get("token")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "abc123" {
			t.Errorf("Get returned %q, want %q", got, "abc123")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		if err := s.Put("token", "second"); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, _ := s.Get("token")
		if got != "second" {
			t.Errorf("Get returned %q after overwrite, want %q", got, "second")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := s.Get("never-written")
		if !errors.Is(err, localstore.ErrNotFound) {
			t.Errorf("Get on missing key returned %v, want ErrNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("token", "abc"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Delete("token"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("token"); !errors.Is(err, localstore.ErrNotFound) {
		t.Errorf("Get after Delete returned %v, want ErrNotFound", err)
	}

	// Deleting a missing key is a no-op.
	if err := s.Delete("token"); err != nil {
		t.Errorf("Delete on missing key failed: %v", err)
	}
}
