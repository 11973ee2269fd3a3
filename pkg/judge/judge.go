package judge

import (
	"github.com/jwebster45206/detective-quest/pkg/clues"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
)

// Threshold is the number of matching clues that sustains an accusation.
const Threshold = 2

// Verdict is the outcome of an accusation.
type Verdict struct {
	Accused   string   `json:"accused"`
	Count     int      `json:"count"`
	Sustained bool     `json:"sustained"`
	Evidence  []string `json:"evidence,omitempty"` // matching clues, alphabetical
}

// Tally counts the collected clues linked to accused. Names are compared
// exactly.
func Tally(set *clues.Set, index *suspects.Index, accused string) int {
	return len(evidence(set, index, accused))
}

// Judge tallies the accusation and applies Threshold.
func Judge(set *clues.Set, index *suspects.Index, accused string) Verdict {
	ev := evidence(set, index, accused)
	return Verdict{
		Accused:   accused,
		Count:     len(ev),
		Sustained: len(ev) >= Threshold,
		Evidence:  ev,
	}
}

func evidence(set *clues.Set, index *suspects.Index, accused string) []string {
	var matched []string
	set.Walk(func(clue string) bool {
		if suspect, ok := index.Get(clue); ok && suspect == accused {
			matched = append(matched, clue)
		}
		return true
	})
	return matched
}
