// Package driver runs source text through the scanner, the parser and the
// interpreter, keeping the symbol table alive between runs of a session.
package driver

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ostnam/linus/pkg/ast"
	"github.com/ostnam/linus/pkg/dump"
	"github.com/ostnam/linus/pkg/eval"
	"github.com/ostnam/linus/pkg/logging"
	"github.com/ostnam/linus/pkg/parser"
	"github.com/ostnam/linus/pkg/scanner"
	"github.com/ostnam/linus/pkg/tokens"
)

type Stage string

const (
	StageLexing  Stage = "lexing"
	StageParsing Stage = "parsing"
	StageRuntime Stage = "runtime"
)

// StageError tags a failure with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("Could not complete %s\n%v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Options struct {
	// Out receives the printed values.
	Out io.Writer
	// DumpOut receives token and tree dumps; nothing is dumped when nil.
	DumpOut    io.Writer
	DumpTokens bool
	DumpAST    bool
	// DumpFormat is one of tree, sexpr or yaml.
	DumpFormat string
	Logger     *log.Logger
}

type Session struct {
	opts   Options
	interp *eval.Interpreter
	log    *log.Logger
}

func NewSession(opts Options) *Session {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		opts:   opts,
		interp: eval.NewInterpreter(opts.Out, logger),
		log:    logger,
	}
}

func (s *Session) Env() *eval.Env {
	return s.interp.Env()
}

// Run executes one source text. Bindings made by earlier runs stay visible.
func (s *Session) Run(source string) error {
	start := time.Now()
	toks, err := scanner.Scan([]rune(source))
	if err != nil {
		return &StageError{Stage: StageLexing, Err: err}
	}
	s.log.Debug("scanned", "tokens", len(toks), "elapsed", time.Since(start))
	if err := s.dumpTokens(toks); err != nil {
		return err
	}

	start = time.Now()
	nodes, err := parser.Parse(toks)
	if err != nil {
		return &StageError{Stage: StageParsing, Err: err}
	}
	s.log.Debug("parsed", "expressions", len(nodes), "elapsed", time.Since(start))
	if err := s.dumpTrees(nodes); err != nil {
		return err
	}

	start = time.Now()
	if err := s.interp.Interpret(nodes); err != nil {
		return &StageError{Stage: StageRuntime, Err: err}
	}
	s.log.Debug("evaluated", "elapsed", time.Since(start), "bindings", len(s.interp.Env().Keys()))
	return nil
}

// RunFile reads the file at path as UTF-8 and runs it in a fresh session.
func RunFile(path string, opts Options) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return NewSession(opts).Run(string(content))
}

func (s *Session) dumpTokens(toks []tokens.Token) error {
	if !s.opts.DumpTokens || s.opts.DumpOut == nil {
		return nil
	}
	return WriteTokens(s.opts.DumpOut, toks, s.opts.DumpFormat)
}

func (s *Session) dumpTrees(nodes []ast.Ast) error {
	if !s.opts.DumpAST || s.opts.DumpOut == nil {
		return nil
	}
	return WriteTrees(s.opts.DumpOut, nodes, s.opts.DumpFormat)
}

// WriteTokens renders toks in format: yaml, or one token per line otherwise.
func WriteTokens(w io.Writer, toks []tokens.Token, format string) error {
	if format == "yaml" {
		return dump.Tokens(w, toks)
	}
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", tok.Line, tok); err != nil {
			return err
		}
	}
	return nil
}

// WriteTrees renders nodes in format: tree, sexpr or yaml.
func WriteTrees(w io.Writer, nodes []ast.Ast, format string) error {
	switch format {
	case "yaml":
		return dump.Trees(w, nodes)
	case "sexpr":
		for _, node := range nodes {
			if _, err := fmt.Fprintln(w, ast.Sexpr(node)); err != nil {
				return err
			}
		}
		return nil
	case "tree", "":
		for _, node := range nodes {
			ast.PrettyPrint(w, node)
		}
		return nil
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}
