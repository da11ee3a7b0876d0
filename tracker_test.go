package gocube

import (
	"errors"
	"testing"
)

func TestGoalDetection(t *testing.T) {
	c := NewSolvedCube()
	if got := c.DetectGoal(); got != GoalDownCross {
		t.Errorf("solved cube goal = %v, want down_cross", got)
	}

	// F2 moves the front cross edge to the Up face, color side up.
	c.ApplyMoves([]Move{F, F})
	if c.IsDownCross() {
		t.Error("F2 should break the bottom cross")
	}
	if c.IsUpDaisy() {
		t.Error("one petal is not a daisy")
	}
	if got := c.DetectGoal(); got != GoalNone {
		t.Errorf("goal after F2 = %v, want none", got)
	}
}

func TestDaisyDetection(t *testing.T) {
	// Half turns of every side lift the whole bottom cross onto the Up face.
	c := NewSolvedCube()
	c.ApplyMoves([]Move{F, F, R, R, B, B, L, L})
	if !c.IsUpDaisy() {
		t.Error("F2 R2 B2 L2 should form the daisy")
		t.Log(c.String())
	}
	if got := c.DetectGoal(); got != GoalUpDaisy {
		t.Errorf("goal = %v, want up_daisy", got)
	}
}

func TestGoalNames(t *testing.T) {
	if GoalDownCross.String() != "down_cross" || GoalUpDaisy.DisplayName() != "Top Daisy" {
		t.Error("unexpected goal names")
	}
	if !(GoalNone < GoalUpDaisy && GoalUpDaisy < GoalDownCross) {
		t.Error("goals should be ordered")
	}
}

func TestTrackerCallback(t *testing.T) {
	c := NewSolvedCube()
	c.ApplyMoves([]Move{F, F, R, R, B, B, L, L})
	c.RotateFace(Front, CW) // knock one petal off

	tr, err := NewTracker(c)
	if err != nil {
		t.Fatal(err)
	}
	if tr.HighestGoal() != GoalNone {
		t.Fatalf("initial highest goal = %v", tr.HighestGoal())
	}

	var fired []Goal
	var at []int
	tr.SetGoalCallback(func(g Goal, i int) {
		fired = append(fired, g)
		at = append(at, i)
	})

	tr.ApplyMove(FPrime) // daisy again
	tr.ApplyMove(F)      // broken
	tr.ApplyMove(FPrime) // daisy again, no new high

	if len(fired) != 1 || fired[0] != GoalUpDaisy || at[0] != 1 {
		t.Errorf("callbacks = %v at %v, want [up_daisy] at [1]", fired, at)
	}
	if tr.Applied() != 3 {
		t.Errorf("applied = %d, want 3", tr.Applied())
	}
	if tr.CurrentGoal() != GoalUpDaisy {
		t.Errorf("current goal = %v", tr.CurrentGoal())
	}
}

func TestTrackerNilCube(t *testing.T) {
	if _, err := NewTracker(nil); !errors.Is(err, ErrNilCube) {
		t.Errorf("NewTracker(nil) error = %v, want ErrNilCube", err)
	}
}
