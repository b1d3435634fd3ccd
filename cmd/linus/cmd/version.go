package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "linus v%s\n", Version)
			fmt.Fprintf(a.out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(a.out, "  Go Version: %s\n", runtime.Version())
		},
	}
}
