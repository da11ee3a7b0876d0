package gocube

import (
	"errors"
	"testing"
)

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("FrUu")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{F, RPrime, U, UPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesRejectsUnknownLetters(t *testing.T) {
	for _, s := range []string{"X", "FRx", "F2", "R'", "F U", " ", "F\n", "\tU"} {
		if _, err := ParseMoves(s); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMoves(%q) error = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{UPrime, R, R, U, L, L}
	if got := FormatMoves(moves); got != "uRRULL" {
		t.Errorf("FormatMoves = %q", got)
	}
	if got := FormatNotation(moves); got != "U' R R U L L" {
		t.Errorf("FormatNotation = %q", got)
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q", got)
	}
}

func TestInverse(t *testing.T) {
	if F.Inverse() != FPrime || FPrime.Inverse() != F {
		t.Error("F and F' should be inverses")
	}
	if !F.Cancels(FPrime) || F.Cancels(F) || F.Cancels(RPrime) {
		t.Error("Cancels mismatch")
	}
}

func TestOptimize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"untouched", "FRUB", "FRUB"},
		{"two stay", "FF", "FF"},
		{"three clockwise", "UUU", "u"},
		{"three counter-clockwise", "rrr", "R"},
		{"four", "UUUU", ""},
		{"cancel", "Rr", ""},
		{"cancel reverse", "rR", ""},
		{"cascade", "FUuf", ""},
		{"cascade into collapse", "LUUuuL", "LL"},
		{"collapse then cancel", "UUUU", ""},
		{"solver trace", "UUURRULLBBUFF", "uRRULLBBUFF"},
		{"other faces between", "UUfUUU", "UUfu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ParseMoves(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := FormatMoves(Optimize(moves)); got != tt.want {
				t.Errorf("Optimize(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
