package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/detective-quest/internal/terminal"
	"github.com/jwebster45206/detective-quest/pkg/engine"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/muesli/reflow/wordwrap"
)

const PlaceHolderText = "Nome do suspeito (Enter vazio encerra sem acusar)"

type phase int

const (
	phaseExploring phase = iota
	phaseAccusing
	phaseDone
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	engine   *engine.Engine
	renderer *terminal.Renderer
	logger   *slog.Logger
	title    string

	logViewport  viewport.Model
	metaViewport viewport.Model
	input        textinput.Model
	lines        []string

	phase   phase
	verdict *judge.Verdict
	ready   bool
	width   int
	height  int
	err     error
	notice  string

	// Quit confirmation state
	showQuitModal bool

	// copyClues is swapped in tests
	copyClues func(string) error
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(eng *engine.Engine, renderer *terminal.Renderer, title string) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 80
	ti.Width = 50

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		engine:       eng,
		renderer:     renderer,
		logger:       slog.Default(),
		title:        title,
		logViewport:  logVp,
		metaViewport: metaVp,
		input:        ti,
		phase:        phaseExploring,
		copyClues:    clipboard.WriteAll,
	}
}

// Init has nothing to schedule; start has already entered the first room.
func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

// start runs the engine's first transition. It is called once from main
// before the program starts so the first room is on screen immediately.
func (m *ConsoleUI) start() error {
	events, err := m.engine.Start()
	if err != nil {
		return err
	}
	m.appendLine(m.renderer.Banner(m.title))
	m.appendEvents(events)
	m.afterTransition()
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.showQuitModal = true
			return m, nil
		}

		switch m.phase {
		case phaseExploring:
			return m.updateExploring(msg)
		case phaseAccusing:
			return m.updateAccusing(msg)
		case phaseDone:
			switch msg.Type {
			case tea.KeyEnter:
				return m, tea.Quit
			case tea.KeyRunes:
				if strings.EqualFold(string(msg.Runes), "q") {
					return m, tea.Quit
				}
			}
			return m, nil
		}
	}

	if m.phase == phaseAccusing {
		m.input, tiCmd = m.input.Update(msg)
	}
	m.logViewport, vpCmd = m.logViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m ConsoleUI) updateExploring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice engine.Choice
	switch msg.Type {
	case tea.KeyLeft:
		choice = engine.ChoiceLeft
	case tea.KeyRight:
		choice = engine.ChoiceRight
	case tea.KeyRunes:
		key := string(msg.Runes)
		if strings.EqualFold(key, "c") {
			m.copyNotebook()
			return m, nil
		}
		choice = engine.ParseChoice(key)
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}

	events, err := m.engine.Step(choice)
	if err != nil {
		m.err = err
		m.logger.Error("Exploration step failed", "error", err)
		m.refresh()
		return m, nil
	}
	m.notice = ""
	m.appendEvents(events)
	m.afterTransition()

	if m.phase == phaseAccusing {
		return m, textinput.Blink
	}
	return m, nil
}

func (m ConsoleUI) updateAccusing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	accused := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.input.Blur()
	m.phase = phaseDone

	if accused == "" {
		m.appendLine(m.renderer.Muted("Nenhuma acusação feita. Fim de jogo."))
		m.logger.Info("Game ended without accusation")
	} else {
		m.appendLine("Você acusa: " + accused)
		if hint, ok := terminal.ClosestSuspect(m.engine.Index().Suspects(), accused); ok {
			m.appendLine(m.renderer.Hint(accused, hint))
		}
		verdict := judge.Judge(m.engine.Clues(), m.engine.Index(), accused)
		m.verdict = &verdict
		m.appendLine(m.renderer.Verdict(verdict))
		m.logger.Info("Accusation judged", "accused", accused, "count", verdict.Count, "sustained", verdict.Sustained)
	}
	m.appendLine(m.renderer.Muted("Pressione Enter ou q para sair."))
	m.refresh()
	return m, nil
}

// afterTransition moves to the accusation phase once exploration is over.
func (m *ConsoleUI) afterTransition() {
	if m.engine.Status().Terminal() && m.phase == phaseExploring {
		m.phase = phaseAccusing
		m.appendLine("")
		m.appendLine(m.renderer.ClueList(m.engine.Clues().InOrder()))
		m.appendLine("")
		m.appendLine("Quem você acusa?")
		m.input.Focus()
	}
	m.refresh()
}

func (m *ConsoleUI) copyNotebook() {
	text := strings.Join(m.engine.Clues().InOrder(), "\n")
	if err := m.copyClues(text); err != nil {
		m.notice = "Não foi possível copiar as pistas."
		m.logger.Warn("Failed to copy clues", "error", err)
	} else {
		m.notice = "Pistas copiadas para a área de transferência."
	}
	m.refresh()
}

func (m *ConsoleUI) appendEvents(events []engine.Event) {
	for _, ev := range events {
		if text := m.renderer.Event(ev); text != "" {
			m.appendLine(text)
		}
	}
}

func (m *ConsoleUI) appendLine(line string) {
	m.lines = append(m.lines, line)
}

func (m *ConsoleUI) resize() {
	logWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - logWidth - 6

	m.logViewport.Width = logWidth - 2
	m.logViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.input.Width = logWidth - 8
}

// refresh rebuilds both panels from the current state.
func (m *ConsoleUI) refresh() {
	width := m.logViewport.Width - 6
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	for _, line := range m.lines {
		content.WriteString(wordwrap.String(line, width))
		content.WriteString("\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Erro: "+m.err.Error()) + "\n")
	}
	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()

	m.metaViewport.SetContent(m.writeMetadata())
}

func (m ConsoleUI) writeMetadata() string {
	gs := m.engine.Snapshot()

	var content strings.Builder
	content.WriteString(titleStyle.Render("INVESTIGAÇÃO") + "\n\n")
	content.WriteString(gs.Summary())
	if trail := gs.Trail(); trail != "" {
		content.WriteString("\nCaminho:\n")
		content.WriteString(wordwrap.String(trail, max(m.metaViewport.Width, 10)))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString("Comandos:\n")
	switch m.phase {
	case phaseExploring:
		content.WriteString("• e / ←: esquerda\n")
		content.WriteString("• d / →: direita\n")
		content.WriteString("• s: sair\n")
		content.WriteString("• c: copiar pistas\n")
	case phaseAccusing:
		content.WriteString("• Enter: acusar\n")
	case phaseDone:
		content.WriteString("• Enter / q: sair\n")
	}
	content.WriteString("• Ctrl+C: Quit\n")

	if m.notice != "" {
		content.WriteString("\n" + m.notice + "\n")
	}
	return content.String()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y", "s", "S":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.phase == phaseAccusing {
					m.input.Focus()
					return m, textinput.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Sair do jogo?"))
	content.WriteString("\n\n")
	content.WriteString("Deseja abandonar a investigação?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("S/Y para sair, N para continuar, Ctrl+C força a saída"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - logWidth - 6

	bottom := promptStyle.Render("Escolha: e / d / s")
	if m.phase == phaseAccusing {
		bottom = m.input.View()
	} else if m.phase == phaseDone {
		bottom = promptStyle.Render(fmt.Sprintf("Fim de jogo. %d pista(s) coletada(s).", m.engine.Clues().Len()))
	}

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(logWidth-4, 1))),
			bottom,
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}
