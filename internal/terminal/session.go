package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/engine"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/schollz/closestmatch"
	"golang.org/x/text/cases"
)

// Result is the outcome of a finished session. Verdict is nil when the
// player declined to accuse anyone.
type Result struct {
	State   *state.GameState
	Verdict *judge.Verdict
}

// Session runs one game over a line-buffered text console.
type Session struct {
	reader   *bufio.Reader
	out      io.Writer
	engine   *engine.Engine
	renderer *Renderer
	logger   *slog.Logger
	title    string
	suspects []string
}

// NewSession wires a console to an engine. suspects are the known suspect
// names, used only for the did-you-mean hint.
func NewSession(in io.Reader, out io.Writer, eng *engine.Engine, renderer *Renderer) *Session {
	return &Session{
		reader:   bufio.NewReader(in),
		out:      out,
		engine:   eng,
		renderer: renderer,
		logger:   slog.Default(),
		title:    "Detective Quest",
		suspects: eng.Index().Suspects(),
	}
}

func (s *Session) WithLogger(logger *slog.Logger) *Session {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *Session) WithTitle(title string) *Session {
	s.title = title
	return s
}

// Run plays exploration to a terminal state, then asks for an accusation.
func (s *Session) Run() (*Result, error) {
	s.println(s.renderer.Banner(s.title))

	events, err := s.engine.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start exploration: %w", err)
	}
	s.render(events)

	for !s.engine.Status().Terminal() {
		s.print("Escolha: ")
		line, ok := s.readLine()
		choice := engine.ParseChoice(line)
		if !ok {
			// end of input leaves the mansion
			s.println("")
			choice = engine.ChoiceExit
		}

		events, err := s.engine.Step(choice)
		if err != nil {
			if errors.Is(err, engine.ErrFinished) {
				break
			}
			return nil, fmt.Errorf("exploration step failed: %w", err)
		}
		s.render(events)
	}

	gs := s.engine.Snapshot()
	s.logger.Info("Exploration finished", "status", gs.Status, "rooms", len(gs.Visited), "clues", len(gs.Clues))

	s.println("")
	s.println(s.renderer.Trail(gs.Trail()))
	s.println(s.renderer.ClueList(gs.Clues))

	s.println("")
	s.print("Quem você acusa? (Enter para encerrar sem acusar): ")
	accused, _ := s.readLine()
	accused = strings.TrimSpace(accused)
	if accused == "" {
		s.println("")
		s.println(s.renderer.Muted("Nenhuma acusação feita. Fim de jogo."))
		s.logger.Info("Game ended without accusation")
		return &Result{State: gs}, nil
	}

	if hint, ok := ClosestSuspect(s.suspects, accused); ok {
		s.println(s.renderer.Hint(accused, hint))
	}

	verdict := judge.Judge(s.engine.Clues(), s.engine.Index(), accused)
	s.println(s.renderer.Verdict(verdict))
	s.logger.Info("Accusation judged", "accused", accused, "count", verdict.Count, "sustained", verdict.Sustained)

	return &Result{State: gs, Verdict: &verdict}, nil
}

// ClosestSuspect returns a known suspect close to name when name itself is
// not one of suspects. A name that differs only in case maps to that suspect.
func ClosestSuspect(suspects []string, name string) (string, bool) {
	if len(suspects) == 0 || slices.Contains(suspects, name) {
		return "", false
	}
	fold := cases.Fold()
	folded := fold.String(name)
	for _, s := range suspects {
		if fold.String(s) == folded {
			return s, true
		}
	}
	cm := closestmatch.New(suspects, []int{2})
	closest := cm.Closest(name)
	return closest, closest != ""
}

// readLine returns the next input line without its line ending. Lines of
// any length are accepted; false means the input is exhausted.
func (s *Session) readLine() (string, bool) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.logger.Warn("Failed to read input", "error", err)
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) render(events []engine.Event) {
	for _, ev := range events {
		if text := s.renderer.Event(ev); text != "" {
			s.println(text)
		}
	}
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	_, _ = io.WriteString(s.out, text+"\n")
}
