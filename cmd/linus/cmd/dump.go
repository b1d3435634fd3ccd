package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostnam/linus/pkg/driver"
	"github.com/ostnam/linus/pkg/parser"
	"github.com/ostnam/linus/pkg/scanner"
	"github.com/ostnam/linus/pkg/tokens"
)

func newTokensCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Scans FILE and prints its tokens, one per line with the line number,
or as a YAML sequence.

Examples:
  linus tokens prog.ln
  linus tokens --format yaml prog.ln`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("--format must be text or yaml, got %q", format)
			}
			toks, err := scanFile(args[0])
			if err != nil {
				return err
			}
			return driver.WriteTokens(a.out, toks, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|yaml)")
	return cmd
}

func newAstCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the parsed trees of a file",
		Long: `Parses FILE and prints one tree per top-level expression.

The default format comes from debug.dump_format.

Examples:
  linus ast prog.ln
  linus ast --format sexpr prog.ln`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Debug.DumpFormat
			}
			toks, err := scanFile(args[0])
			if err != nil {
				return err
			}
			nodes, err := parser.Parse(toks)
			if err != nil {
				return &driver.StageError{Stage: driver.StageParsing, Err: err}
			}
			return driver.WriteTrees(a.out, nodes, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "tree", "output format (tree|sexpr|yaml)")
	return cmd
}

func scanFile(path string) ([]tokens.Token, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	toks, err := scanner.Scan([]rune(string(content)))
	if err != nil {
		return nil, &driver.StageError{Stage: driver.StageLexing, Err: err}
	}
	return toks, nil
}
