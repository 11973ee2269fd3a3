package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/pkg/clues"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/world"
)

var (
	ErrNotStarted     = errors.New("exploration has not started")
	ErrAlreadyStarted = errors.New("exploration already started")
	ErrFinished       = errors.New("exploration is over")
)

// Engine drives one playthrough of a mansion. It is not safe for
// concurrent use.
type Engine struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time

	tree      *mansion.Tree
	roomClues world.RoomClues
	index     *suspects.Index
	clues     *clues.Set

	current *mansion.Room
	status  Status
	visited []string
	closed  bool

	logger *slog.Logger
}

// New creates an engine positioned before the root room. The clue set
// starts empty and is owned by the engine.
func New(tree *mansion.Tree, roomClues world.RoomClues, index *suspects.Index) *Engine {
	now := time.Now()
	return &Engine{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
		tree:      tree,
		roomClues: roomClues,
		index:     index,
		clues:     clues.New(),
		logger:    slog.Default(),
	}
}

// WithLogger sets the logger used for transition logs.
func (e *Engine) WithLogger(logger *slog.Logger) *Engine {
	if logger != nil {
		e.logger = logger
	}
	return e
}

func (e *Engine) ID() uuid.UUID          { return e.id }
func (e *Engine) Status() Status         { return e.status }
func (e *Engine) Current() *mansion.Room { return e.current }

// Clues exposes the collected clues. Callers must not insert into it.
func (e *Engine) Clues() *clues.Set { return e.clues }

// Index exposes the suspect index.
func (e *Engine) Index() *suspects.Index { return e.index }

// Visited returns the rooms entered so far, in order.
func (e *Engine) Visited() []string {
	return append([]string(nil), e.visited...)
}

// Start enters the root room.
func (e *Engine) Start() ([]Event, error) {
	if e.status != StatusNotStarted {
		return nil, ErrAlreadyStarted
	}
	root := e.tree.Root()
	if root == nil {
		return nil, ErrFinished
	}
	e.status = StatusExploring
	e.logger.Debug("Exploration started", "root", root.Name(), "rooms", e.tree.Len(), "suspect_links", e.index.Len())
	return e.visit(root), nil
}

// Step applies one player choice. Invalid choices and directions without a
// room are reported and leave the engine where it was.
func (e *Engine) Step(choice Choice) ([]Event, error) {
	switch {
	case e.status == StatusNotStarted:
		return nil, ErrNotStarted
	case e.status.Terminal():
		return nil, ErrFinished
	}

	room := e.current.Name()
	switch choice {
	case ChoiceExit:
		e.status = StatusExited
		e.touch()
		e.logger.Debug("Player left the mansion", "room", room)
		return []Event{{Kind: EventExited, Room: room, Choice: choice}}, nil

	case ChoiceLeft, ChoiceRight:
		next := e.current.Left()
		if choice == ChoiceRight {
			next = e.current.Right()
		}
		if next == nil {
			e.logger.Debug("No room in that direction", "room", room, "choice", choice)
			return []Event{
				{Kind: EventNoSuchRoom, Room: room, Choice: choice},
				e.awaiting(),
			}, nil
		}
		e.logger.Debug("Moving", "from", room, "to", next.Name(), "choice", choice)
		return e.visit(next), nil

	default:
		return []Event{
			{Kind: EventInvalidChoice, Room: room, Choice: ChoiceInvalid},
			e.awaiting(),
		}, nil
	}
}

// Options lists the directions available from the current room. Exit is
// always last.
func (e *Engine) Options() []Option {
	if e.current == nil || e.status.Terminal() {
		return nil
	}
	var opts []Option
	if l := e.current.Left(); l != nil {
		opts = append(opts, Option{Choice: ChoiceLeft, Room: l.Name()})
	}
	if r := e.current.Right(); r != nil {
		opts = append(opts, Option{Choice: ChoiceRight, Room: r.Name()})
	}
	return append(opts, Option{Choice: ChoiceExit})
}

// Collect runs the clue step for room without moving: a new clue is added
// and its suspect reported, a known clue only produces a duplicate notice.
func (e *Engine) Collect(room string) []Event {
	clue, ok := e.roomClues.ClueFor(room)
	if !ok {
		return []Event{{Kind: EventNoClue, Room: room}}
	}

	if e.clues.Contains(clue) {
		return []Event{{Kind: EventClueDuplicate, Room: room, Clue: clue}}
	}

	e.clues.Insert(clue)
	e.touch()
	events := []Event{{Kind: EventClueFound, Room: room, Clue: clue}}

	suspect, linked := e.index.Get(clue)
	if linked {
		events = append(events, Event{Kind: EventSuspectLinked, Room: room, Clue: clue, Suspect: suspect})
	} else {
		events = append(events, Event{Kind: EventNoSuspectLinked, Room: room, Clue: clue})
	}
	e.logger.Debug("Clue collected", "room", room, "clue", clue, "suspect", suspect)
	return events
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() *state.GameState {
	gs := &state.GameState{
		ID:        e.id,
		Status:    e.status.String(),
		Clues:     e.clues.InOrder(),
		Visited:   e.Visited(),
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
	}
	if e.current != nil {
		gs.Location = e.current.Name()
	}
	return gs
}

// Close releases the clue set and the room tree. It is safe to call more
// than once.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if !e.status.Terminal() {
		e.status = StatusExited
	}
	e.clues.Clear()
	released := e.tree.Release()
	e.current = nil
	e.logger.Debug("Engine closed", "rooms_released", released)
}

func (e *Engine) visit(room *mansion.Room) []Event {
	e.current = room
	e.visited = append(e.visited, room.Name())
	e.touch()

	events := []Event{{Kind: EventEnteredRoom, Room: room.Name()}}
	events = append(events, e.Collect(room.Name())...)

	if room.IsLeaf() {
		e.status = StatusDeadEnd
		e.logger.Debug("Dead end reached", "room", room.Name())
		return append(events, Event{Kind: EventDeadEnd, Room: room.Name()})
	}
	return append(events, e.awaiting())
}

func (e *Engine) awaiting() Event {
	return Event{Kind: EventAwaitingChoice, Room: e.current.Name(), Options: e.Options()}
}

func (e *Engine) touch() {
	e.updatedAt = time.Now()
}
