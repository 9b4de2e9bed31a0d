package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveDatabase_RemovesSidecars(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "vocadrill.db")

	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	if err := removeDatabase(dbPath); err != nil {
		t.Fatalf("removeDatabase: %v", err)
	}

	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s still exists", p)
		}
	}
}

func TestRemoveDatabase_MissingFile(t *testing.T) {
	dir := t.TempDir()

	err := removeDatabase(filepath.Join(dir, "missing.db"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRemoveDatabase_NoSidecars(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "vocadrill.db")
	if err := os.WriteFile(dbPath, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := removeDatabase(dbPath); err != nil {
		t.Fatalf("removeDatabase without sidecars: %v", err)
	}
}
