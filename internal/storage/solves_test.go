package storage

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/gocube_solver"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != len(migrations) {
		t.Errorf("version = %d, want %d", v, len(migrations))
	}
}

func TestCreateAndGetSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t), "0.1.0")

	moves := []gocube.Move{gocube.UPrime, gocube.R, gocube.R}
	id, err := repo.Create("cube", "solved", moves)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for a stored solve")
	}
	if s.CubeCode != "cube" || s.SolvedCode != "solved" || s.Rotations != "uRR" {
		t.Errorf("stored solve = %+v", s)
	}
	if s.AppVersion == nil || *s.AppVersion != "0.1.0" {
		t.Errorf("app version = %v", s.AppVersion)
	}
	if s.CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	records, err := repo.Moves(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d moves, want 3", len(records))
	}
	if records[0].Notation != "U'" || records[0].Turn != -1 || records[2].Face != "R" {
		t.Errorf("moves = %+v", records)
	}
}

func TestGetMissingSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t), "")
	s, err := repo.Get("nope")
	if err != nil || s != nil {
		t.Errorf("Get(missing) = %v, %v; want nil, nil", s, err)
	}
}

func TestRecordAndList(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t), "")

	for _, rot := range []string{"FF", "uRR", ""} {
		if _, err := repo.Record("cube", "solved", rot); err != nil {
			t.Fatalf("Record(%q): %v", rot, err)
		}
	}
	if _, err := repo.Record("cube", "solved", "X"); err == nil {
		t.Error("Record accepted an invalid rotation string")
	}

	solves, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(solves) != 2 {
		t.Fatalf("List(2) returned %d solves", len(solves))
	}
	if solves[0].AppVersion != nil {
		t.Errorf("app version should be NULL, got %v", *solves[0].AppVersion)
	}
}

func TestDeleteCascadesMoves(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t), "")
	id, err := repo.Record("cube", "solved", "FRU")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(id); err != nil {
		t.Fatal(err)
	}
	moves, err := repo.Moves(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 0 {
		t.Errorf("%d moves left after delete", len(moves))
	}
}
