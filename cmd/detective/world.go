package main

import (
	"fmt"
	"io"

	"github.com/jwebster45206/detective-quest/pkg/world"
	"github.com/spf13/cobra"
)

var worldFormat string

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Show the mansion layout, clues and suspects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := world.Export(world.Default(), worldFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in world data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := world.Default()
		fmt.Fprintf(cmd.OutOrStdout(), "Validating %s...\n", w.Title)
		return reportValidation(cmd.OutOrStdout(), w)
	},
}

// reportValidation prints every warning and error found in w.
func reportValidation(out io.Writer, w *world.World) error {
	v := &world.Validator{}
	err := v.Validate(w)
	for _, warning := range v.Warnings() {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
	if err != nil {
		for _, e := range v.Errors() {
			fmt.Fprintf(out, "error: %s\n", e)
		}
		return fmt.Errorf("world %q has %d validation error(s)", w.Title, len(v.Errors()))
	}

	fmt.Fprintln(out, "World data is valid!")
	return nil
}

func init() {
	worldCmd.Flags().StringVarP(&worldFormat, "format", "f", world.FormatText, "output format: text, yaml or json")
}
