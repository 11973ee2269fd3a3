package world

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export renders w in the given format. It is a read-only dump; worlds are
// never loaded back from it.
func Export(w *World, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		text, err := Describe(w)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(w)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal world as yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(w, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal world as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

// Describe draws the room tree with the clue and suspect of each room.
func Describe(w *World) (string, error) {
	tree, err := w.Tree()
	if err != nil {
		return "", err
	}
	defer tree.Release()

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d salas, %d níveis)\n", w.Title, tree.Len(), tree.Depth())
	tree.Walk(func(r *mansion.Room, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(r.Name())
		if clue, ok := w.RoomClues.ClueFor(r.Name()); ok {
			suspect := w.Suspects[clue]
			if suspect == "" {
				suspect = "?"
			}
			fmt.Fprintf(&b, " [%s → %s]", clue, suspect)
		}
		b.WriteString("\n")
		return true
	})
	return b.String(), nil
}
