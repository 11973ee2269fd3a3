// console is the full-screen Detective Quest front-end.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/terminal"
	"github.com/jwebster45206/detective-quest/pkg/engine"
	"github.com/jwebster45206/detective-quest/pkg/world"
)

func main() {
	configFile := flag.String("config", "", "config file (default is ./config.yaml)")
	logFile := flag.String("log-file", "", "write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns stdout and stderr, so logs go to a file or nowhere.
	logOut, closeLog, err := openLog(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log := logger.Setup(cfg, logOut)

	w := world.Default()
	tree, err := w.Tree()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build the mansion: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(tree, w.RoomClues, w.Index())
	sessionLog := logger.WithSession(log, eng.ID())
	eng.WithLogger(sessionLog)
	defer eng.Close()

	ui := NewConsoleUI(eng, terminal.NewRenderer(os.Stdout, cfg.Color, 0), w.Title)
	ui.logger = sessionLog
	if err := ui.start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start the game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	gs := eng.Snapshot()
	fmt.Println(gs.Summary())
}

func openLog(path string) (*os.File, func(), error) {
	if path == "" {
		f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
