package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/pkg/engine"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// Renderer turns engine events and verdicts into player-facing text.
type Renderer struct {
	width int

	title   lipgloss.Style
	room    lipgloss.Style
	clue    lipgloss.Style
	suspect lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
}

// NewRenderer creates a renderer writing to out. colorMode is one of the
// config color modes; wrapWidth 0 disables wrapping.
func NewRenderer(out io.Writer, colorMode string, wrapWidth int) *Renderer {
	lr := lipgloss.NewRenderer(out)
	switch colorMode {
	case config.ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(out) {
			lr.SetColorProfile(termenv.Ascii)
		}
	}

	return &Renderer{
		width:   wrapWidth,
		title:   lr.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // pink
		room:    lr.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),  // teal
		clue:    lr.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		suspect: lr.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // purple
		warn:    lr.NewStyle().Foreground(lipgloss.Color("196")),            // red
		muted:   lr.NewStyle().Foreground(lipgloss.Color("240")),            // dark grey
		good:    lr.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),  // green
		bad:     lr.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Renderer) wrap(s string) string {
	if r.width <= 0 {
		return s
	}
	return wordwrap.String(s, r.width)
}

// Banner is the opening title.
func (r *Renderer) Banner(title string) string {
	return r.title.Render(fmt.Sprintf("=== %s – Exploração da Mansão ===", title))
}

// Event renders one engine event. Events with nothing to show render as "".
func (r *Renderer) Event(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventEnteredRoom:
		return "\nVocê está na sala: " + r.room.Render(ev.Room)
	case engine.EventNoClue:
		return r.muted.Render("Nenhuma pista nesta sala.")
	case engine.EventClueFound:
		return "Pista encontrada: " + r.clue.Render(ev.Clue)
	case engine.EventSuspectLinked:
		return r.wrap("Esta pista aponta para: " + r.suspect.Render(ev.Suspect))
	case engine.EventNoSuspectLinked:
		return r.muted.Render("Nenhum suspeito ligado a esta pista.")
	case engine.EventClueDuplicate:
		return r.muted.Render("Pista já coletada: " + ev.Clue)
	case engine.EventDeadEnd:
		return "Não há mais caminhos a seguir. Exploração encerrada!"
	case engine.EventAwaitingChoice:
		return r.Menu(ev.Options)
	case engine.EventInvalidChoice:
		return r.warn.Render("Opção inválida!")
	case engine.EventNoSuchRoom:
		if ev.Choice == engine.ChoiceLeft {
			return r.warn.Render("Não existe sala à esquerda!")
		}
		return r.warn.Render("Não existe sala à direita!")
	case engine.EventExited:
		return "Saindo da exploração..."
	default:
		return ""
	}
}

// Menu lists only the directions that lead somewhere, plus exit.
func (r *Renderer) Menu(opts []engine.Option) string {
	var b strings.Builder
	b.WriteString("Para onde deseja ir?")
	for _, o := range opts {
		b.WriteString("\n ")
		b.WriteString(r.OptionLabel(o))
	}
	return b.String()
}

// OptionLabel renders a single menu line.
func (r *Renderer) OptionLabel(o engine.Option) string {
	switch o.Choice {
	case engine.ChoiceLeft:
		return fmt.Sprintf("%s - Ir para a esquerda (%s)", o.Choice.Key(), o.Room)
	case engine.ChoiceRight:
		return fmt.Sprintf("%s - Ir para a direita (%s)", o.Choice.Key(), o.Room)
	default:
		return engine.ChoiceExit.Key() + " - Sair da exploração"
	}
}

// Trail renders the path walked through the mansion.
func (r *Renderer) Trail(trail string) string {
	return r.wrap("Caminho percorrido: " + r.room.Render(trail))
}

// ClueList renders the collected clues, already in alphabetical order.
func (r *Renderer) ClueList(clues []string) string {
	if len(clues) == 0 {
		return r.muted.Render("Nenhuma pista coletada.")
	}
	var b strings.Builder
	b.WriteString(r.title.Render("Pistas coletadas (ordem alfabética):"))
	for _, c := range clues {
		b.WriteString("\n - ")
		b.WriteString(r.clue.Render(c))
	}
	return b.String()
}

// Verdict renders the tally and the verdict text.
func (r *Renderer) Verdict(v judge.Verdict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pistas que apontam para %s: %d\n", r.suspect.Render(v.Accused), v.Count)
	for _, c := range v.Evidence {
		fmt.Fprintf(&b, " - %s\n", r.clue.Render(c))
	}
	if v.Sustained {
		b.WriteString(r.good.Render(r.wrap(fmt.Sprintf("Acusação sustentada! As provas indicam %s como culpado(a).", v.Accused))))
	} else {
		b.WriteString(r.bad.Render(r.wrap(fmt.Sprintf("Acusação insuficiente. São necessárias ao menos %d pistas contra %s.", judge.Threshold, v.Accused))))
	}
	return b.String()
}

// Hint suggests a known suspect when the accused name matches none.
func (r *Renderer) Hint(accused, closest string) string {
	return r.warn.Render(r.wrap(fmt.Sprintf("Atenção: %q não é um suspeito conhecido. Você quis dizer %q?", accused, closest)))
}

// Muted renders secondary text.
func (r *Renderer) Muted(s string) string {
	return r.muted.Render(s)
}
