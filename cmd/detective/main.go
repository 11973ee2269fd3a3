// detective is the line-mode Detective Quest game: explore the mansion,
// collect clues, accuse a suspect.
//
// Usage:
//
//	detective play [--json-state]
//	detective world [--format text|yaml|json]
//	detective validate
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile  string
	logLevel string
	noColor  bool

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "detective",
	Short: "Detective Quest: explore the mansion and accuse a suspect",
	Long:  "Detective Quest is a text exploration game. Walk the rooms of the mansion,\ncollect the clues you find and accuse the suspect they point to.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.Version = version
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = config.ParseLogLevel(logLevel)
	}
	if noColor {
		cfg.Color = config.ColorNever
	}
	log = logger.Setup(cfg, cmd.ErrOrStderr())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
