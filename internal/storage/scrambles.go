package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble is one recorded scramble: the move tokens that were applied,
// never the resulting puzzle state.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Length     int
	Moves      string
	Notes      *string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create records a scramble and returns its ID.
func (r *ScrambleRepository) Create(moves string, length int, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, length, moves, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), length, moves, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. Returns nil if not found.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	var s Scramble
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT scramble_id, created_at, length, moves, notes
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID).Scan(&s.ScrambleID, &createdAtStr, &s.Length, &s.Moves, &s.Notes)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created time: %w", err)
	}

	return &s, nil
}

// List returns the most recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, length, moves, notes
		FROM scrambles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var out []Scramble
	for rows.Next() {
		var s Scramble
		var createdAtStr string
		if err := rows.Scan(&s.ScrambleID, &createdAtStr, &s.Length, &s.Moves, &s.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created time: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
