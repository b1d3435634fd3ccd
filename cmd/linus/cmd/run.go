package cmd

import (
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a linus program",
		Long: `Reads FILE as UTF-8, evaluates every top-level expression and prints
the value of each one that is not none.

Token and tree dumps configured in the [debug] section go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFile(args[0])
		},
	}
}
