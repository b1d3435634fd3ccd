package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/ostnam/linus/pkg/tokens"
)

// Interface of every Ast node type
type Ast interface {
	node()
}

// AST node for `def name: type -> expr`
type Assignment struct {
	Name     string
	TypeDecl string
	Expr     Ast
}

// AST node for literal tokens: numbers, strings, booleans, none and EOF.
type Literal struct {
	Token tokens.Token
}

// AST node for the application of an operator or a named function to its
// operands. The number of operands isn't checked until evaluation.
type FunctionCall struct {
	Operator tokens.Token
	Operands []Ast
}

// AST node for an operator token standing on its own.
type Operator struct {
	Token tokens.Token
}

// AST node for a reference to a binding.
type Variable struct {
	Name tokens.Token
}

func (Assignment) node()   {}
func (Literal) node()      {}
func (FunctionCall) node() {}
func (Operator) node()     {}
func (Variable) node()     {}

// Pretty prints an AST node as an indented tree.
func PrettyPrint(w io.Writer, node Ast) {
	prettyPrint(w, node, 0)
}

func prettyPrint(w io.Writer, node Ast, indent int) {
	const INDENT_LVL = 3
	if indent == 0 {
		fmt.Fprint(w, strings.Repeat(" ", indent))
	} else {
		fmt.Fprint(w, strings.Repeat(" ", indent-1)+"|"+" ")
	}
	switch node := node.(type) {
	case Assignment:
		fmt.Fprintf(w, "Assignment: %s: %s\n", node.Name, node.TypeDecl)
		prettyPrint(w, node.Expr, indent+INDENT_LVL)
		return
	case FunctionCall:
		fmt.Fprintf(w, "FunctionCall: %s\n", spell(node.Operator))
		for _, operand := range node.Operands {
			prettyPrint(w, operand, indent+INDENT_LVL)
		}
		return
	case Literal:
		fmt.Fprintf(w, "Literal: %s", node.Token)
	case Operator:
		fmt.Fprintf(w, "Operator: %s", spell(node.Token))
	case Variable:
		fmt.Fprintf(w, "Variable: %s", node.Name.Lexeme)
	default:
		fmt.Fprintf(w, "Error pretty-printing AST, unknown node type: %T", node)
	}
	fmt.Fprint(w, "\n")
}

// Sexpr renders a node as a parenthesized expression, e.g.
// `( def x: num ( + 1 2 ) )`.
func Sexpr(node Ast) string {
	var sb strings.Builder
	writeSexpr(&sb, node)
	return strings.TrimSpace(sb.String())
}

func writeSexpr(sb *strings.Builder, node Ast) {
	switch node := node.(type) {
	case Assignment:
		fmt.Fprintf(sb, "( def %s: %s ", node.Name, node.TypeDecl)
		writeSexpr(sb, node.Expr)
		sb.WriteString(") ")
	case FunctionCall:
		sb.WriteString("( ")
		writeAtom(sb, node.Operator)
		for _, operand := range node.Operands {
			writeSexpr(sb, operand)
		}
		sb.WriteString(") ")
	case Literal:
		writeAtom(sb, node.Token)
	case Operator:
		writeAtom(sb, node.Token)
	case Variable:
		writeAtom(sb, node.Name)
	}
}

func writeAtom(sb *strings.Builder, tok tokens.Token) {
	if tok.Type == tokens.EOF {
		return
	}
	sb.WriteString(spell(tok))
	sb.WriteByte(' ')
}

func spell(tok tokens.Token) string {
	if s, ok := tokens.Spelling(tok.Type); ok {
		return s
	}
	return tok.Lexeme
}
