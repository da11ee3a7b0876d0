package gocube

import (
	"errors"
	"math/rand"
	"testing"
)

const solvedCode = "bbbbbbbbbrrrrrrrrrgggggggggoooooooooyyyyyyyyywwwwwwwww"

func mustCube(t *testing.T, s string) *Cube {
	t.Helper()
	c, err := ParseCube(s)
	if err != nil {
		t.Fatalf("ParseCube(%q): %v", s, err)
	}
	return c
}

func codeOf(t *testing.T, c *Cube) string {
	t.Helper()
	code, err := c.Code()
	if err != nil {
		t.Fatalf("Code(): %v", err)
	}
	return code.String()
}

// scramble applies n pseudo-random quarter turns from a fixed seed.
func scramble(t *testing.T, c *Cube, seed int64, n int) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		turn := CW
		if rng.Intn(2) == 0 {
			turn = CCW
		}
		if err := c.RotateFace(Positions[rng.Intn(6)], turn); err != nil {
			t.Fatalf("RotateFace: %v", err)
		}
	}
}

func TestNewSolvedCubeIsSolved(t *testing.T) {
	c := NewSolvedCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
		t.Log(c.String())
	}
	if got := codeOf(t, c); got != SolidCode(DefaultColors) {
		t.Errorf("solved code = %s, want %s", got, SolidCode(DefaultColors))
	}
}

func TestRoundTrip(t *testing.T) {
	codes := []string{
		solvedCode,
		"bywrborrbbrrgroygogogwgygworwogoywybwbybygybowbrowwgry",
		"wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg",
	}
	for _, s := range codes {
		if got := codeOf(t, mustCube(t, s)); got != s {
			t.Errorf("round trip of %s = %s", s, got)
		}
	}
}

func TestRotateFrontClockwise(t *testing.T) {
	c := mustCube(t, solvedCode)
	if err := c.RotateFace(Front, CW); err != nil {
		t.Fatal(err)
	}
	want := "bbbbbbbbbyrryrryrrgggggggggoowoowoowyyyyyyooorrrwwwwww"
	if got := codeOf(t, c); got != want {
		t.Errorf("F on solved cube = %s, want %s", got, want)
		t.Log(c.String())
	}
}

func TestRotateUpCounterClockwise(t *testing.T) {
	c := mustCube(t, solvedCode)
	if err := c.RotateFace(Up, CCW); err != nil {
		t.Fatal(err)
	}
	want := "ooobbbbbbbbbrrrrrrrrrgggggggggooooooyyyyyyyyywwwwwwwww"
	if got := codeOf(t, c); got != want {
		t.Errorf("u on solved cube = %s, want %s", got, want)
		t.Log(c.String())
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewSolvedCube()
	c.RotateFace(Right, CW)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRotateThenInverseRestores(t *testing.T) {
	start := mustCube(t, "bywrborrbbrrgroygogogwgygworwogoywybwbybygybowbrowwgry")
	want := codeOf(t, start)
	for _, face := range Positions {
		for _, turn := range []Turn{CW, CCW} {
			c := start.Clone()
			c.RotateFace(face, turn)
			c.RotateFace(face, -turn)
			if got := codeOf(t, c); got != want {
				t.Errorf("%v %v then inverse = %s, want %s", face, turn, got, want)
			}
		}
	}
}

func TestFourTurnsRestore(t *testing.T) {
	start := mustCube(t, "bywrborrbbrrgroygogogwgygworwogoywybwbybygybowbrowwgry")
	want := codeOf(t, start)
	for _, face := range Positions {
		for _, turn := range []Turn{CW, CCW} {
			c := start.Clone()
			for i := 0; i < 4; i++ {
				c.RotateFace(face, turn)
			}
			if got := codeOf(t, c); got != want {
				t.Errorf("%v x 4 (%v) = %s, want %s", face, turn, got, want)
				t.Log(c.String())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewSolvedCube()
	for i := 0; i < 6; i++ {
		if err := c.ApplyMoves(SexyMove); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestCoreStaysUncolored(t *testing.T) {
	c := NewSolvedCube()
	if n := c.Cubelet(Core).ColoredFaces(); n != 0 {
		t.Fatalf("core has %d colored faces before turning", n)
	}
	scramble(t, c, 42, 200)
	if n := c.Cubelet(Core).ColoredFaces(); n != 0 {
		t.Errorf("core has %d colored faces after turning", n)
	}
}

func TestScrambledCubeKeepsValidCode(t *testing.T) {
	c := NewSolvedCube()
	scramble(t, c, 7, 100)
	if _, err := c.Code(); err != nil {
		t.Errorf("scrambled cube produced invalid code: %v", err)
	}
	for _, p := range Positions {
		for i := 0; i < 9; i++ {
			if c.Facelet(p, i) == Uncolored {
				t.Errorf("%v sticker %d is uncolored", p, i)
			}
		}
	}
}

func TestCubeletColorCounts(t *testing.T) {
	c := NewSolvedCube()
	scramble(t, c, 3, 50)
	counts := map[int]int{}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				at := Coord{x, y, z}
				n := c.Cubelet(at).ColoredFaces()
				if n != len(at.Facing()) {
					t.Errorf("cubelet at %v has %d colored faces, want %d", at, n, len(at.Facing()))
				}
				counts[n]++
			}
		}
	}
	if counts[0] != 1 || counts[1] != 6 || counts[2] != 12 || counts[3] != 8 {
		t.Errorf("colored face histogram = %v", counts)
	}
}

func TestRotateFaceRejectsInvalidArguments(t *testing.T) {
	c := mustCube(t, solvedCode)
	if err := c.RotateFace(Position(9), CW); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("RotateFace(9, CW) error = %v, want ErrInvalidPosition", err)
	}
	if err := c.RotateFace(Front, Turn(2)); !errors.Is(err, ErrInvalidTurn) {
		t.Errorf("RotateFace(F, 2) error = %v, want ErrInvalidTurn", err)
	}
	if got := codeOf(t, c); got != solvedCode {
		t.Errorf("rejected rotation changed the cube: %s", got)
	}
}

func TestApplyMovesIsAtomic(t *testing.T) {
	c := mustCube(t, solvedCode)
	err := c.ApplyMoves([]Move{F, R, {Face: Up, Turn: 0}})
	if !errors.Is(err, ErrInvalidTurn) {
		t.Fatalf("ApplyMoves error = %v, want ErrInvalidTurn", err)
	}
	if got := codeOf(t, c); got != solvedCode {
		t.Errorf("rejected move list changed the cube: %s", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewSolvedCube()
	clone := c.Clone()
	clone.RotateFace(Front, CW)
	if !c.IsSolved() {
		t.Error("rotating a clone changed the original")
	}
}
