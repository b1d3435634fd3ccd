// Package dump renders token streams and trees as YAML for debugging.
package dump

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ostnam/linus/pkg/ast"
	"github.com/ostnam/linus/pkg/tokens"
)

type Token struct {
	Type   string   `yaml:"type"`
	Lexeme string   `yaml:"lexeme,omitempty"`
	Value  *float64 `yaml:"value,omitempty"`
	Line   int      `yaml:"line"`
}

type Node struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name,omitempty"`
	Type     string `yaml:"type,omitempty"`
	Token    string `yaml:"token,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

func FromToken(tok tokens.Token) Token {
	out := Token{Type: tok.Type.String(), Line: tok.Line}
	switch tok.Type {
	case tokens.Num:
		val := tok.Value
		out.Lexeme = tok.Lexeme
		out.Value = &val
	case tokens.Indent, tokens.Dedent, tokens.Newline, tokens.EOF:
	default:
		out.Lexeme = tok.Lexeme
	}
	return out
}

func FromAst(node ast.Ast) Node {
	switch node := node.(type) {
	case ast.Assignment:
		return Node{
			Kind:     "assignment",
			Name:     node.Name,
			Type:     node.TypeDecl,
			Children: []Node{FromAst(node.Expr)},
		}
	case ast.FunctionCall:
		children := make([]Node, len(node.Operands))
		for i, operand := range node.Operands {
			children[i] = FromAst(operand)
		}
		return Node{Kind: "call", Token: node.Operator.String(), Children: children}
	case ast.Literal:
		return Node{Kind: "literal", Token: node.Token.String()}
	case ast.Operator:
		return Node{Kind: "operator", Token: node.Token.String()}
	case ast.Variable:
		return Node{Kind: "variable", Name: node.Name.Lexeme}
	default:
		return Node{Kind: fmt.Sprintf("unknown %T", node)}
	}
}

// Tokens writes toks as a YAML sequence.
func Tokens(w io.Writer, toks []tokens.Token) error {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = FromToken(tok)
	}
	return encode(w, out)
}

// Trees writes nodes as a YAML sequence.
func Trees(w io.Writer, nodes []ast.Ast) error {
	out := make([]Node, len(nodes))
	for i, node := range nodes {
		out[i] = FromAst(node)
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
