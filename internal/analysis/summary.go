// Package analysis computes statistics for solver runs.
package analysis

import (
	"github.com/SeamusWaldron/gocube_solver"
)

// SolveSummary contains statistics for a single solve.
type SolveSummary struct {
	RawMoves       int              `json:"raw_moves"`
	OptimizedMoves int              `json:"optimized_moves"`
	Efficiency     float64          `json:"efficiency"`
	PhaseStats     []PhaseStats     `json:"phase_stats,omitempty"`
	Profile        *MovementProfile `json:"profile"`
}

// PhaseStats counts the raw moves spent reaching one goal.
type PhaseStats struct {
	Goal        string `json:"goal"`
	DisplayName string `json:"display_name"`
	StartIndex  int    `json:"start_index"`
	EndIndex    int    `json:"end_index"`
	MoveCount   int    `json:"move_count"`
}

// Summarize replays raw on a copy of start and reports how the moves split
// between goals, along with how much the optimizer removed from raw to get
// optimized.
func Summarize(start *gocube.Cube, raw, optimized []gocube.Move) (*SolveSummary, error) {
	phases, err := AnalyzePhases(start, raw)
	if err != nil {
		return nil, err
	}

	s := &SolveSummary{
		RawMoves:       len(raw),
		OptimizedMoves: len(optimized),
		Efficiency:     1,
		PhaseStats:     phases,
		Profile:        AnalyzeMovementProfile(optimized),
	}
	if len(raw) > 0 {
		s.Efficiency = float64(len(optimized)) / float64(len(raw))
	}
	return s, nil
}

// AnalyzePhases splits moves at the points where a new goal is first
// reached. Goals the start cube already satisfies get no phase.
func AnalyzePhases(start *gocube.Cube, moves []gocube.Move) ([]PhaseStats, error) {
	tracker, err := gocube.NewTracker(start.Clone())
	if err != nil {
		return nil, err
	}

	var phases []PhaseStats
	begin := 0
	tracker.SetGoalCallback(func(g gocube.Goal, moveIndex int) {
		phases = append(phases, PhaseStats{
			Goal:        g.String(),
			DisplayName: g.DisplayName(),
			StartIndex:  begin,
			EndIndex:    moveIndex,
			MoveCount:   moveIndex - begin,
		})
		begin = moveIndex
	})

	if err := tracker.ApplyMoves(moves); err != nil {
		return nil, err
	}
	return phases, nil
}

// MovementProfile analyzes which faces and turns a move list uses.
type MovementProfile struct {
	FaceCounts       map[string]int `json:"face_counts"`
	TurnCounts       map[string]int `json:"turn_counts"`
	MostUsedFace     string         `json:"most_used_face"`
	ImmediateCancels int            `json:"immediate_cancels"`
	FaceSequences    map[string]int `json:"face_sequences"` // e.g., "RU" -> count
}

// AnalyzeMovementProfile counts faces, turns and face pairs.
func AnalyzeMovementProfile(moves []gocube.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[string]int),
		TurnCounts:    make(map[string]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face.String()]++
		profile.TurnCounts[m.Turn.String()]++

		if i > 0 {
			prev := moves[i-1]
			seq := string(prev.Face.Letter()) + string(m.Face.Letter())
			profile.FaceSequences[seq]++
			if prev.Cancels(m) {
				profile.ImmediateCancels++
			}
		}
	}

	// Ties go to the earlier face in cube code order.
	maxFaceCount := 0
	for _, p := range gocube.Positions {
		if n := profile.FaceCounts[p.String()]; n > maxFaceCount {
			maxFaceCount = n
			profile.MostUsedFace = p.String()
		}
	}

	return profile
}
