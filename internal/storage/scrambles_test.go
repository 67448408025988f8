package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetScramble(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	id, err := repo.Create("R+ U- B+", 3, "test run")
	if err != nil {
		t.Fatalf("create scramble: %v", err)
	}
	if id == "" {
		t.Fatal("create should return a non-empty id")
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("get scramble: %v", err)
	}
	if s == nil {
		t.Fatal("scramble not found after create")
	}
	if s.Moves != "R+ U- B+" {
		t.Errorf("moves = %q, want %q", s.Moves, "R+ U- B+")
	}
	if s.Length != 3 {
		t.Errorf("length = %d, want 3", s.Length)
	}
	if s.Notes == nil || *s.Notes != "test run" {
		t.Errorf("notes = %v, want %q", s.Notes, "test run")
	}
}

func TestGetMissingScramble(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	s, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("get missing scramble: %v", err)
	}
	if s != nil {
		t.Error("missing scramble should return nil, not a record")
	}
}

func TestListScrambles(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	for _, moves := range []string{"R+", "U+", "B-"} {
		if _, err := repo.Create(moves, 1, ""); err != nil {
			t.Fatalf("create scramble: %v", err)
		}
	}

	list, err := repo.List(10)
	if err != nil {
		t.Fatalf("list scrambles: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("listed %d scrambles, want 3", len(list))
	}

	list, err = repo.List(2)
	if err != nil {
		t.Fatalf("list scrambles with limit: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("listed %d scrambles, want 2", len(list))
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	db.Close()
}
