package world

import (
	"fmt"
	"sort"
	"strings"
)

// Validator collects problems found in a World.
type Validator struct {
	errors   []string
	warnings []string
}

// Errors returns problems that make the world unplayable.
func (v *Validator) Errors() []string { return v.errors }

// Warnings returns problems that only degrade play.
func (v *Validator) Warnings() []string { return v.warnings }

// Validate checks w and returns an error summarising every problem found.
// Warnings never cause an error.
func (v *Validator) Validate(w *World) error {
	v.errors = nil
	v.warnings = nil

	if strings.TrimSpace(w.Title) == "" {
		v.addError("title must not be empty")
	}

	tree, err := w.Tree()
	if err != nil {
		v.addError("layout: %v", err)
	}

	if len(w.Suspects) == 0 {
		v.addError("suspect table must not be empty")
	}

	for _, room := range sortedKeys(w.RoomClues) {
		clue := w.RoomClues[room]
		if tree != nil {
			if _, ok := tree.Find(room); !ok {
				v.addError("room clue %q is placed in unknown room %q", clue, room)
			}
		}
		if strings.TrimSpace(clue) == "" {
			v.addError("room %q has an empty clue", room)
			continue
		}
		if _, ok := w.Suspects[clue]; !ok {
			v.addWarning("clue %q in room %q is not linked to any suspect", clue, room)
		}
	}

	for _, clue := range sortedKeys(w.Suspects) {
		if strings.TrimSpace(w.Suspects[clue]) == "" {
			v.addError("clue %q is linked to an empty suspect name", clue)
		}
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %q:\n%s", w.Title, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *Validator) addError(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
