package database

import (
	"path/filepath"
	"testing"
)

// createTestRepository creates a fresh repository in a temp directory.
func createTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clipboard.db")
	repo, err := NewRepository(path)
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, path
}
