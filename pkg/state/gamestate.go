package state

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GameState is a snapshot of one playthrough. It is derived from the
// exploration engine and is never persisted.
type GameState struct {
	ID        uuid.UUID `json:"id"`                 // Unique ID per session
	Location  string    `json:"location,omitempty"` // Room the player is in
	Status    string    `json:"status"`             // exploring, exited, dead_end
	Clues     []string  `json:"clues,omitempty"`    // Collected clues in alphabetical order
	Visited   []string  `json:"visited,omitempty"`  // Rooms entered, in order
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShortID is the first block of the session ID, for display.
func (gs *GameState) ShortID() string {
	return strings.SplitN(gs.ID.String(), "-", 2)[0]
}

// Trail renders the visited rooms as a path.
func (gs *GameState) Trail() string {
	return strings.Join(gs.Visited, " → ")
}

// Summary renders the state as a short multi-line description.
func (gs *GameState) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sessão: %s\n", gs.ShortID())
	if gs.Location != "" {
		fmt.Fprintf(&b, "Local: %s\n", gs.Location)
	}
	fmt.Fprintf(&b, "Salas visitadas: %d\n", len(gs.Visited))
	fmt.Fprintf(&b, "Pistas: %d\n", len(gs.Clues))
	for _, c := range gs.Clues {
		fmt.Fprintf(&b, "• %s\n", c)
	}
	return b.String()
}

// JSON returns the indented JSON encoding of the state.
func (gs *GameState) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}
	return data, nil
}
