package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// errProblems is returned when checking found error-severity problems. It
// only sets the exit code.
var errProblems = errors.New("problems found")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:           "doccheck",
		Short:         "Check Javadoc comments against the declarations they document",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newAtCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
