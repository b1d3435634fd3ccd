package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ostnam/linus/pkg/driver"
	"github.com/ostnam/linus/pkg/eval"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Reads one line at a time and evaluates it. Bindings persist for the
whole session and errors do not end it.

Commands:
  :env    list the bound names
  :quit   leave the session (ctrl-D works too)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
}

func (a *app) repl() error {
	session := driver.NewSession(a.options())
	prompt := a.styles.prompt.Render(a.cfg.Repl.Prompt)
	input := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, prompt)
		if !input.Scan() { // ctrl-D
			fmt.Fprint(a.out, "\n")
			return input.Err()
		}
		line := strings.TrimSpace(input.Text())
		switch line {
		case "":
			continue
		case ":quit":
			return nil
		case ":env":
			a.printEnv(session.Env())
			continue
		}
		if err := session.Run(input.Text()); err != nil {
			a.printError(err)
		}
	}
}

func (a *app) printEnv(env *eval.Env) {
	for _, name := range env.Keys() {
		val, _ := env.Retrieve(name)
		fmt.Fprintf(a.out, "%s %s\n", a.styles.name.Render(name+":"), eval.Format(val))
	}
}
