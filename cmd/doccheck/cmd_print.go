package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/lookup"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Print the tag structure of every doc comment in a unit file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := java.Load(args[0])
			if err != nil {
				return err
			}
			_, targets, err := lookup.FromUnit(unit, config.Default())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for _, t := range targets {
				fmt.Fprintf(out, "%s\n%s\n\n", t, t.Comment)
			}
			return nil
		},
	}
}
