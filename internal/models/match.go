package models

// Side selects which competitor an operation targets.
type Side int

const (
	SideOne Side = 1
	SideTwo Side = 2
)

// ValidSide reports whether s names one of the two competitors.
func ValidSide(s Side) bool {
	return s == SideOne || s == SideTwo
}

// CounterKind selects the advantage or penalty counter.
type CounterKind string

const (
	CounterAdvantage CounterKind = "advantage"
	CounterPenalty   CounterKind = "penalty"
)

// ValidCounterKind reports whether k names a known counter.
func ValidCounterKind(k CounterKind) bool {
	return k == CounterAdvantage || k == CounterPenalty
}

const (
	// DefaultDurationSec is the countdown length a fresh match starts with.
	DefaultDurationSec = 300

	DefaultNameOne = "Competidor 1"
	DefaultNameTwo = "Competidor 2"
)

// MatchState is the whole scoreboard: both competitors, the countdown and
// the running flag. The running flag is volatile; it is never persisted and
// always restores as false.
type MatchState struct {
	Competitor1  Competitor `json:"competitor1"`
	Competitor2  Competitor `json:"competitor2"`
	RemainingSec int        `json:"remaining_time_sec"`
	Running      bool       `json:"running"`
}

// NewMatchState returns the default state a match starts with.
func NewMatchState(durationSec int) MatchState {
	return MatchState{
		Competitor1:  NewCompetitor(1, DefaultNameOne),
		Competitor2:  NewCompetitor(2, DefaultNameTwo),
		RemainingSec: durationSec,
	}
}

// Competitor returns a pointer to the record for the given side. Callers
// must pass a valid side.
func (m *MatchState) Competitor(side Side) *Competitor {
	if side == SideTwo {
		return &m.Competitor2
	}
	return &m.Competitor1
}

// Clone returns a deep copy, safe to hand to other goroutines.
func (m *MatchState) Clone() MatchState {
	out := *m
	out.Competitor1.Scores = cloneScores(m.Competitor1.Scores)
	out.Competitor2.Scores = cloneScores(m.Competitor2.Scores)
	return out
}

func cloneScores(in map[Category]int) map[Category]int {
	out := make(map[Category]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
