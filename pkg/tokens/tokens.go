package tokens

import (
	"fmt"
	"strings"
)

type Token struct {
	Type   TokType
	Lexeme string
	Value  float64
	Line   int
}

type TokType int8

const (
	// literals
	Identifier TokType = iota
	Str
	Num
	True
	False
	None
	// collections, reserved
	Seq
	Hash
	Group
	Choice
	// operators
	Add
	Subtract
	Divide
	Multiply
	GreaterThan
	LessThan
	GreaterThanOrEqual
	LessThanOrEqual
	Equal
	And
	Or
	Not
	// types
	TypeDecl
	TypeDelim
	// variables and functions
	Def
	Assign
	AnonFn
	// special expressions
	Do
	Let
	If
	Loop
	// blocks
	Indent
	Dedent
	LeftParen
	RightParen
	Appl
	Newline
	// exceptions
	Try
	Catch
	Finally
	Throw
	EOF
)

var names = [...]string{
	Identifier:         "Identifier",
	Str:                "Str",
	Num:                "Num",
	True:               "True",
	False:              "False",
	None:               "None",
	Seq:                "Seq",
	Hash:               "Hash",
	Group:              "Group",
	Choice:             "Choice",
	Add:                "Add",
	Subtract:           "Subtract",
	Divide:             "Divide",
	Multiply:           "Multiply",
	GreaterThan:        "GreaterThan",
	LessThan:           "LessThan",
	GreaterThanOrEqual: "GreaterThanOrEqual",
	LessThanOrEqual:    "LessThanOrEqual",
	Equal:              "Equal",
	And:                "And",
	Or:                 "Or",
	Not:                "Not",
	TypeDecl:           "TypeDecl",
	TypeDelim:          "TypeDelim",
	Def:                "Def",
	Assign:             "Assign",
	AnonFn:             "AnonFn",
	Do:                 "Do",
	Let:                "Let",
	If:                 "If",
	Loop:               "Loop",
	Indent:             "Indent",
	Dedent:             "Dedent",
	LeftParen:          "LeftParen",
	RightParen:         "RightParen",
	Appl:               "Appl",
	Newline:            "Newline",
	Try:                "Try",
	Catch:              "Catch",
	Finally:            "Finally",
	Throw:              "Throw",
	EOF:                "EOF",
}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("TokType(%d)", int8(t))
	}
	return names[t]
}

// Source spelling of the tokens whose text never varies.
var fixedSpellings = map[TokType]string{
	True:               "true",
	False:              "false",
	None:               "none",
	Add:                "+",
	Subtract:           "-",
	Divide:             "/",
	Multiply:           "*",
	GreaterThan:        ">",
	LessThan:           "<",
	GreaterThanOrEqual: ">=",
	LessThanOrEqual:    "<=",
	Equal:              "=",
	And:                "and",
	Or:                 "or",
	Not:                "not",
	TypeDelim:          ":",
	Def:                "def",
	Assign:             "->",
	AnonFn:             "\\",
	Do:                 "do",
	Let:                "let",
	Loop:               "loop",
	Indent:             "\n\t",
	Dedent:             "\n",
	LeftParen:          "(",
	RightParen:         ")",
	Appl:               "$",
	Newline:            "\n",
	Try:                "try",
	Catch:              "catch",
	Finally:            "finally",
	Throw:              "throw",
	EOF:                "",
}

// Spelling returns the fixed source text of a token type, if it has one.
func Spelling(t TokType) (string, bool) {
	s, ok := fixedSpellings[t]
	return s, ok
}

// Make builds a token carrying its fixed spelling as lexeme.
func Make(t TokType, line int) Token {
	return Token{Type: t, Lexeme: fixedSpellings[t], Line: line}
}

// IsOperator reports whether the type is one of the builtin operator tokens.
func (t TokType) IsOperator() bool {
	return t >= Add && t <= Not
}

// IsLayout reports whether the type is produced from line structure.
func (t TokType) IsLayout() bool {
	return t == Indent || t == Dedent || t == Newline
}

func (tok Token) String() string {
	switch tok.Type {
	case Identifier, Str, TypeDecl, Num:
		return fmt.Sprintf("%s(%s)", tok.Type, tok.Lexeme)
	default:
		return tok.Type.String()
	}
}

// Spell rebuilds source text from a token sequence. Scanning the result
// yields the same token types and lexemes.
func Spell(toks []Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if tok.Type == EOF {
			break
		}
		if i > 0 && !tok.Type.IsLayout() && !toks[i-1].Type.IsLayout() {
			sb.WriteByte(' ')
		}
		if s, ok := fixedSpellings[tok.Type]; ok {
			sb.WriteString(s)
		} else {
			sb.WriteString(tok.Lexeme)
		}
	}
	return sb.String()
}
