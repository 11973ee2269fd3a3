package main

import (
	"fmt"

	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/terminal"
	"github.com/jwebster45206/detective-quest/pkg/engine"
	"github.com/jwebster45206/detective-quest/pkg/world"
	"github.com/spf13/cobra"
)

var showState bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := world.Default()

		tree, err := w.Tree()
		if err != nil {
			logger.WithError(log, err).Error("Failed to build the mansion")
			return err
		}

		eng := engine.New(tree, w.RoomClues, w.Index())
		sessionLog := logger.WithSession(log, eng.ID())
		eng.WithLogger(sessionLog)
		defer eng.Close()

		renderer := terminal.NewRenderer(cmd.OutOrStdout(), cfg.Color, cfg.WrapWidth)
		res, err := terminal.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), eng, renderer).
			WithLogger(sessionLog).
			WithTitle(w.Title).
			Run()
		if err != nil {
			logger.WithError(sessionLog, err).Error("Game aborted")
			return err
		}

		if showState {
			data, err := res.State.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), string(data))
		}
		return nil
	},
}

func init() {
	playCmd.Flags().BoolVar(&showState, "json-state", false, "print the final game state as JSON on stderr")
}
