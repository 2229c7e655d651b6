package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

// isInteractive is swapped in tests so the bare command does not try to open a terminal.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cssplayground",
		Short:         "Learn CSS layout by turning knobs and watching the stylesheet change",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateLogFormat(flags.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand on a terminal, open the playground
			if isInteractive() {
				return playCmdRunner(cmd, playOptions{root: flags})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatConsole, "Log output format (console or json)")

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newTopicsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
