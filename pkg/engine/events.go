package engine

import "strings"

// Choice is a navigation decision made by the player.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceLeft
	ChoiceRight
	ChoiceExit
)

// ParseChoice reads the first rune of token case-insensitively:
// e = left (esquerda), d = right (direita), s = exit (sair).
func ParseChoice(token string) Choice {
	token = strings.TrimSpace(token)
	if token == "" {
		return ChoiceInvalid
	}
	switch strings.ToLower(token)[0] {
	case 'e':
		return ChoiceLeft
	case 'd':
		return ChoiceRight
	case 's':
		return ChoiceExit
	default:
		return ChoiceInvalid
	}
}

// Key is the token the player types for the choice.
func (c Choice) Key() string {
	switch c {
	case ChoiceLeft:
		return "e"
	case ChoiceRight:
		return "d"
	case ChoiceExit:
		return "s"
	default:
		return ""
	}
}

func (c Choice) String() string {
	switch c {
	case ChoiceLeft:
		return "left"
	case ChoiceRight:
		return "right"
	case ChoiceExit:
		return "exit"
	default:
		return "invalid"
	}
}

// Status is the exploration state outside of "at room R".
type Status int

const (
	StatusNotStarted Status = iota
	StatusExploring
	StatusExited
	StatusDeadEnd
)

func (s Status) String() string {
	switch s {
	case StatusExploring:
		return "exploring"
	case StatusExited:
		return "exited"
	case StatusDeadEnd:
		return "dead_end"
	default:
		return "not_started"
	}
}

// Terminal reports whether exploration is over.
func (s Status) Terminal() bool {
	return s == StatusExited || s == StatusDeadEnd
}

// EventKind identifies what happened during a transition.
type EventKind int

const (
	EventEnteredRoom EventKind = iota
	EventNoClue
	EventClueFound
	EventClueDuplicate
	EventSuspectLinked
	EventNoSuspectLinked
	EventDeadEnd
	EventAwaitingChoice
	EventInvalidChoice
	EventNoSuchRoom
	EventExited
)

var eventNames = map[EventKind]string{
	EventEnteredRoom:     "entered_room",
	EventNoClue:          "no_clue",
	EventClueFound:       "clue_found",
	EventClueDuplicate:   "clue_duplicate",
	EventSuspectLinked:   "suspect_linked",
	EventNoSuspectLinked: "no_suspect_linked",
	EventDeadEnd:         "dead_end",
	EventAwaitingChoice:  "awaiting_choice",
	EventInvalidChoice:   "invalid_choice",
	EventNoSuchRoom:      "no_such_room",
	EventExited:          "exited",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Option is a direction the player may take from the current room.
type Option struct {
	Choice Choice
	Room   string // empty for ChoiceExit
}

// Event is an observable side effect of a transition. Front-ends render
// events; they never change engine state.
type Event struct {
	Kind    EventKind
	Room    string
	Clue    string
	Suspect string
	Choice  Choice
	Options []Option
}
