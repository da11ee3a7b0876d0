package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_solver"
)

// Solve represents a recorded solve in the database.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	CubeCode   string
	SolvedCode string
	Rotations  string
	AppVersion *string
}

// MoveRecord represents one move of a recorded solve.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	MoveIndex int
	Face      string
	Turn      int
	Notation  string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db         *DB
	appVersion string
}

// NewSolveRepository creates a new solve repository. appVersion is stored
// with every solve when non-empty.
func NewSolveRepository(db *DB, appVersion string) *SolveRepository {
	return &SolveRepository{db: db, appVersion: appVersion}
}

// Create stores a solve and its moves in one transaction and returns its ID.
func (r *SolveRepository) Create(cubeCode, solvedCode string, moves []gocube.Move) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var appVersion *string
	if r.appVersion != "" {
		appVersion = &r.appVersion
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, cube_code, solved_code, rotations, app_version)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339Nano), cubeCode, solvedCode, gocube.FormatMoves(moves), appVersion)
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}

		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (solve_id, move_index, face, turn, notation)
				VALUES (?, ?, ?, ?, ?)
			`, id, i, string(m.Face.Letter()), int(m.Turn), m.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Record stores a solve given as a rotation letter string.
func (r *SolveRepository) Record(cubeCode, solvedCode, rotations string) (string, error) {
	moves, err := gocube.ParseMoves(rotations)
	if err != nil {
		return "", fmt.Errorf("failed to parse rotations: %w", err)
	}
	return r.Create(cubeCode, solvedCode, moves)
}

// Get retrieves a solve by ID. Returns nil if it does not exist.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, cube_code, solved_code, rotations, app_version
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &createdAtStr, &s.CubeCode, &s.SolvedCode, &s.Rotations, &s.AppVersion)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
	return &s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, cube_code, solved_code, rotations, app_version
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string

		err := rows.Scan(&s.SolveID, &createdAtStr, &s.CubeCode, &s.SolvedCode, &s.Rotations, &s.AppVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Moves retrieves the moves of a solve in order.
func (r *SolveRepository) Moves(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, move_index, face, turn, notation
		FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SolveID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Delete deletes a solve and its moves (cascading).
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
