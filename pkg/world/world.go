package world

import (
	"fmt"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
)

// RoomClues maps a room name to the clue found there. Rooms without an
// entry hold no clue.
type RoomClues map[string]string

// ClueFor returns the clue placed in room.
func (rc RoomClues) ClueFor(room string) (string, bool) {
	clue, ok := rc[room]
	return clue, ok
}

// World is the static configuration of one mansion.
type World struct {
	Title     string            `json:"title" yaml:"title"`
	Layout    mansion.Layout    `json:"layout" yaml:"layout"`
	RoomClues RoomClues         `json:"room_clues" yaml:"room_clues"`
	Suspects  map[string]string `json:"suspects" yaml:"suspects"` // clue → suspect
}

// Default returns a fresh copy of the Detective Quest mansion.
func Default() *World {
	return &World{
		Title: "Detective Quest",
		Layout: mansion.Layout{
			Root: "Hall de Entrada",
			Placements: []mansion.Placement{
				{Parent: "Hall de Entrada", Side: mansion.Left, Room: "Sala de Estar"},
				{Parent: "Hall de Entrada", Side: mansion.Right, Room: "Cozinha"},
				{Parent: "Sala de Estar", Side: mansion.Left, Room: "Biblioteca"},
				{Parent: "Sala de Estar", Side: mansion.Right, Room: "Jardim de Inverno"},
				{Parent: "Cozinha", Side: mansion.Left, Room: "Despensa"},
				{Parent: "Cozinha", Side: mansion.Right, Room: "Porão"},
				{Parent: "Biblioteca", Side: mansion.Right, Room: "Escritório"},
			},
		},
		RoomClues: RoomClues{
			"Hall de Entrada":   "pegada molhada",
			"Sala de Estar":     "fio de cabelo",
			"Biblioteca":        "bilhete rasgado",
			"Jardim de Inverno": "vaso quebrado",
			"Cozinha":           "cheiro de queimado",
			"Despensa":          "luva de couro",
			"Escritório":        "carta anônima",
		},
		Suspects: map[string]string{
			"pegada molhada":     "Sr. Avelar",
			"lenço bordado":      "Sr. Avelar",
			"fio de cabelo":      "Sra. Beatriz",
			"vaso quebrado":      "Sra. Beatriz",
			"taça de vinho":      "Sra. Beatriz",
			"bilhete rasgado":    "Srta. Clara",
			"carta anônima":      "Srta. Clara",
			"cheiro de queimado": "Sr. Dourado",
			"luva de couro":      "Sr. Dourado",
		},
	}
}

// Tree builds the room tree of the world.
func (w *World) Tree() (*mansion.Tree, error) {
	t, err := mansion.Build(w.Layout)
	if err != nil {
		return nil, fmt.Errorf("failed to build mansion %q: %w", w.Title, err)
	}
	return t, nil
}

// Index builds the suspect index of the world.
func (w *World) Index() *suspects.Index {
	return suspects.FromTable(w.Suspects)
}
