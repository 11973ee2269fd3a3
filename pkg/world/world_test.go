package world

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault_IsValid(t *testing.T) {
	w := Default()
	v := &Validator{}
	require.NoError(t, v.Validate(w))
	assert.Empty(t, v.Errors())
	assert.Empty(t, v.Warnings())

	tree, err := w.Tree()
	require.NoError(t, err)
	defer tree.Release()

	assert.Equal(t, 8, tree.Len())
	assert.Equal(t, "Hall de Entrada", tree.Root().Name())

	porao, ok := tree.Find("Porão")
	require.True(t, ok)
	assert.True(t, porao.IsLeaf())
	_, hasClue := w.RoomClues.ClueFor("Porão")
	assert.False(t, hasClue)
}

func TestDefault_FreshCopy(t *testing.T) {
	a := Default()
	a.RoomClues["Porão"] = "chave enferrujada"

	b := Default()
	_, ok := b.RoomClues.ClueFor("Porão")
	assert.False(t, ok)
}

func TestWorld_Index(t *testing.T) {
	w := Default()
	idx := w.Index()

	assert.Equal(t, len(w.Suspects), idx.Len())
	got, ok := idx.Get("carta anônima")
	require.True(t, ok)
	assert.Equal(t, "Srta. Clara", got)

	want := []string{"Sr. Avelar", "Sr. Dourado", "Sra. Beatriz", "Srta. Clara"}
	assert.Equal(t, want, idx.Suspects())
}

func TestWorld_TreeError(t *testing.T) {
	w := Default()
	w.Layout.Placements = append(w.Layout.Placements,
		mansion.Placement{Parent: "Sótão", Side: mansion.Left, Room: "Torre"})

	_, err := w.Tree()
	require.Error(t, err)
	assert.True(t, errors.Is(err, mansion.ErrUnknownParent))
	assert.Contains(t, err.Error(), "Detective Quest")
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(w *World)
		wantErr      string
		wantWarnings int
	}{
		{
			name:    "empty title",
			mutate:  func(w *World) { w.Title = " " },
			wantErr: "title must not be empty",
		},
		{
			name:    "broken layout",
			mutate:  func(w *World) { w.Layout.Root = "" },
			wantErr: "layout:",
		},
		{
			name:         "no suspects",
			mutate:       func(w *World) { w.Suspects = nil },
			wantErr:      "suspect table must not be empty",
			wantWarnings: 7, // every clue is now unlinked
		},
		{
			name:    "clue in unknown room",
			mutate:  func(w *World) { w.RoomClues["Sótão"] = "pegada molhada" },
			wantErr: `unknown room "Sótão"`,
		},
		{
			name:    "empty clue",
			mutate:  func(w *World) { w.RoomClues["Porão"] = "" },
			wantErr: `room "Porão" has an empty clue`,
		},
		{
			name:    "empty suspect name",
			mutate:  func(w *World) { w.Suspects["taça de vinho"] = "" },
			wantErr: "empty suspect name",
		},
		{
			name:         "unlinked clue only warns",
			mutate:       func(w *World) { w.RoomClues["Porão"] = "chave enferrujada" },
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Default()
			tt.mutate(w)

			v := &Validator{}
			err := v.Validate(w)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			assert.Len(t, v.Warnings(), tt.wantWarnings)
		})
	}
}

func TestValidator_Resets(t *testing.T) {
	v := &Validator{}
	bad := Default()
	bad.Title = ""
	require.Error(t, v.Validate(bad))

	require.NoError(t, v.Validate(Default()))
	assert.Empty(t, v.Errors())
}

func TestDescribe(t *testing.T) {
	text, err := Describe(Default())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	want := []string{
		"Detective Quest (8 salas, 4 níveis)",
		"Hall de Entrada [pegada molhada → Sr. Avelar]",
		"  Sala de Estar [fio de cabelo → Sra. Beatriz]",
		"    Biblioteca [bilhete rasgado → Srta. Clara]",
		"      Escritório [carta anônima → Srta. Clara]",
		"    Jardim de Inverno [vaso quebrado → Sra. Beatriz]",
		"  Cozinha [cheiro de queimado → Sr. Dourado]",
		"    Despensa [luva de couro → Sr. Dourado]",
		"    Porão",
	}
	assert.Equal(t, want, lines)
}

func TestDescribe_UnlinkedClue(t *testing.T) {
	w := Default()
	w.RoomClues["Porão"] = "chave enferrujada"

	text, err := Describe(w)
	require.NoError(t, err)
	assert.Contains(t, text, "Porão [chave enferrujada → ?]")
}

func TestExport(t *testing.T) {
	w := Default()

	t.Run("text", func(t *testing.T) {
		data, err := Export(w, "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Detective Quest (8 salas, 4 níveis)"))
	})

	t.Run("json", func(t *testing.T) {
		data, err := Export(w, FormatJSON)
		require.NoError(t, err)

		var got World
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *w, got)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Export(w, "YML")
		require.NoError(t, err)
		assert.Contains(t, string(data), "root: Hall de Entrada")

		var got World
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, w.Suspects, got.Suspects)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Export(w, "xml")
		assert.ErrorContains(t, err, `unknown format "xml"`)
	})
}
