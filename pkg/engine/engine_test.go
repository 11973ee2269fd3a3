package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jwebster45206/detective-quest/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	w := world.Default()
	tree, err := w.Tree()
	require.NoError(t, err)
	eng := New(tree, w.RoomClues, w.Index())
	t.Cleanup(eng.Close)
	return eng
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func mustStep(t *testing.T, eng *Engine, c Choice) []Event {
	t.Helper()
	events, err := eng.Step(c)
	require.NoError(t, err)
	return events
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  Choice
	}{
		{"e", ChoiceLeft},
		{"E", ChoiceLeft},
		{"esquerda", ChoiceLeft},
		{"  d  ", ChoiceRight},
		{"D", ChoiceRight},
		{"s", ChoiceExit},
		{"S", ChoiceExit},
		{"", ChoiceInvalid},
		{"   ", ChoiceInvalid},
		{"x", ChoiceInvalid},
		{"1", ChoiceInvalid},
		{"ésquerda", ChoiceInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseChoice(tt.input); got != tt.want {
				t.Errorf("ParseChoice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestChoice_KeyRoundTrip(t *testing.T) {
	for _, c := range []Choice{ChoiceLeft, ChoiceRight, ChoiceExit} {
		assert.Equal(t, c, ParseChoice(c.Key()), c.String())
	}
	assert.Equal(t, "", ChoiceInvalid.Key())
}

func TestEngine_LeftLeftExit(t *testing.T) {
	eng := newTestEngine(t)

	events, err := eng.Start()
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventEnteredRoom, EventClueFound, EventSuspectLinked, EventAwaitingChoice}, kinds(events))
	assert.Equal(t, "Hall de Entrada", events[0].Room)
	assert.Equal(t, "pegada molhada", events[1].Clue)
	assert.Equal(t, "Sr. Avelar", events[2].Suspect)

	events = mustStep(t, eng, ChoiceLeft)
	assert.Equal(t, "Sala de Estar", events[0].Room)
	assert.Equal(t, "Sra. Beatriz", events[2].Suspect)

	events = mustStep(t, eng, ChoiceLeft)
	assert.Equal(t, "Biblioteca", eng.Current().Name())
	wantOpts := []Option{
		{Choice: ChoiceRight, Room: "Escritório"},
		{Choice: ChoiceExit},
	}
	if diff := cmp.Diff(wantOpts, events[len(events)-1].Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	events = mustStep(t, eng, ChoiceExit)
	assert.Equal(t, []EventKind{EventExited}, kinds(events))
	assert.Equal(t, StatusExited, eng.Status())

	assert.Equal(t, []string{"bilhete rasgado", "fio de cabelo", "pegada molhada"}, eng.Clues().InOrder())
	assert.Equal(t, []string{"Hall de Entrada", "Sala de Estar", "Biblioteca"}, eng.Visited())
}

func TestEngine_RightRightDeadEnd(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)

	mustStep(t, eng, ChoiceRight)
	events := mustStep(t, eng, ChoiceRight)

	assert.Equal(t, []EventKind{EventEnteredRoom, EventNoClue, EventDeadEnd}, kinds(events))
	assert.Equal(t, "Porão", events[0].Room)
	assert.Equal(t, StatusDeadEnd, eng.Status())
	assert.True(t, eng.Status().Terminal())
	assert.Nil(t, eng.Options())

	assert.Equal(t, []string{"cheiro de queimado", "pegada molhada"}, eng.Clues().InOrder())

	_, err = eng.Step(ChoiceLeft)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestEngine_LeafWithClue(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)

	mustStep(t, eng, ChoiceLeft)
	events := mustStep(t, eng, ChoiceRight)

	assert.Equal(t, []EventKind{EventEnteredRoom, EventClueFound, EventSuspectLinked, EventDeadEnd}, kinds(events))
	assert.Equal(t, "vaso quebrado", events[1].Clue)
	assert.Equal(t, StatusDeadEnd, eng.Status())
}

func TestEngine_MissingDirection(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)
	mustStep(t, eng, ChoiceLeft)
	mustStep(t, eng, ChoiceLeft) // Biblioteca has no left room

	before := eng.Clues().InOrder()
	events := mustStep(t, eng, ChoiceLeft)

	assert.Equal(t, []EventKind{EventNoSuchRoom, EventAwaitingChoice}, kinds(events))
	assert.Equal(t, ChoiceLeft, events[0].Choice)
	assert.Equal(t, "Biblioteca", eng.Current().Name())
	assert.Equal(t, before, eng.Clues().InOrder())
	assert.Len(t, eng.Visited(), 3)
	assert.Equal(t, StatusExploring, eng.Status())
}

func TestEngine_InvalidChoice(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)

	events := mustStep(t, eng, ParseChoice("x"))
	assert.Equal(t, []EventKind{EventInvalidChoice, EventAwaitingChoice}, kinds(events))
	assert.Equal(t, "Hall de Entrada", eng.Current().Name())
	assert.Equal(t, 1, eng.Clues().Len())
}

func TestEngine_Lifecycle(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.Step(ChoiceLeft)
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Equal(t, StatusNotStarted, eng.Status())

	_, err = eng.Start()
	require.NoError(t, err)

	_, err = eng.Start()
	assert.ErrorIs(t, err, ErrAlreadyStarted)

	mustStep(t, eng, ChoiceExit)
	_, err = eng.Step(ChoiceExit)
	assert.True(t, errors.Is(err, ErrFinished))
}

func TestEngine_CollectDuplicate(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)
	before := eng.Clues().InOrder()

	events := eng.Collect("Hall de Entrada")
	assert.Equal(t, []EventKind{EventClueDuplicate}, kinds(events))
	assert.Equal(t, "pegada molhada", events[0].Clue)
	assert.Equal(t, before, eng.Clues().InOrder())

	events = eng.Collect("Porão")
	assert.Equal(t, []EventKind{EventNoClue}, kinds(events))
}

func TestEngine_UnlinkedClue(t *testing.T) {
	w := world.Default()
	w.RoomClues["Porão"] = "chave enferrujada"
	tree, err := w.Tree()
	require.NoError(t, err)
	eng := New(tree, w.RoomClues, w.Index())
	defer eng.Close()

	events := eng.Collect("Porão")
	assert.Equal(t, []EventKind{EventClueFound, EventNoSuspectLinked}, kinds(events))
	assert.True(t, eng.Clues().Contains("chave enferrujada"))
}

func TestEngine_Snapshot(t *testing.T) {
	eng := newTestEngine(t)
	gs := eng.Snapshot()
	assert.Equal(t, "not_started", gs.Status)
	assert.Empty(t, gs.Location)

	_, err := eng.Start()
	require.NoError(t, err)
	mustStep(t, eng, ChoiceRight)

	gs = eng.Snapshot()
	assert.Equal(t, eng.ID(), gs.ID)
	assert.Equal(t, "exploring", gs.Status)
	assert.Equal(t, "Cozinha", gs.Location)
	assert.Equal(t, []string{"Hall de Entrada", "Cozinha"}, gs.Visited)
	assert.Contains(t, gs.Clues, "cheiro de queimado")
	assert.False(t, gs.UpdatedAt.Before(gs.CreatedAt))
}

func TestEngine_Close(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)
	mustStep(t, eng, ChoiceLeft)

	eng.Close()
	assert.Equal(t, StatusExited, eng.Status())
	assert.Nil(t, eng.Current())
	assert.Equal(t, 0, eng.Clues().Len())

	_, err = eng.Step(ChoiceLeft)
	assert.ErrorIs(t, err, ErrFinished)

	// second close is a no-op
	eng.Close()
}

func TestEngine_VisitedIsCopy(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Start()
	require.NoError(t, err)

	v := eng.Visited()
	v[0] = "Sótão"
	assert.Equal(t, "Hall de Entrada", eng.Visited()[0])
}

func TestStatusAndKindNames(t *testing.T) {
	assert.Equal(t, "dead_end", StatusDeadEnd.String())
	assert.False(t, StatusExploring.Terminal())
	assert.Equal(t, "clue_found", EventClueFound.String())
}

func TestEngine_StartLogsWorldSize(t *testing.T) {
	var buf bytes.Buffer
	eng := newTestEngine(t)
	eng.WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := eng.Start()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rooms=8")
	assert.Contains(t, buf.String(), "suspect_links=9")
}
