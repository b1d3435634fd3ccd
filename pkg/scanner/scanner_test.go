package scanner

import (
	"errors"
	"math"
	"testing"

	. "github.com/ostnam/linus/pkg/tokens"
)

func scanTypes(t *testing.T, src string) []TokType {
	t.Helper()
	toks, err := Scan([]rune(src))
	if err != nil {
		t.Fatalf("scan %q: unexpected error %v", src, err)
	}
	types := make([]TokType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func assertTypes(t *testing.T, src string, expected ...TokType) {
	t.Helper()
	got := scanTypes(t, src)
	if len(got) != len(expected) {
		t.Fatalf("scan %q: expected %v, got %v", src, expected, got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("scan %q: token %d: expected %s, got %s (all: %v)", src, i, expected[i], got[i], got)
		}
	}
}

func TestScanNumAssignment(t *testing.T) {
	toks, err := Scan([]rune("def x: num -> 1"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	expected := []Token{
		{Type: Def, Lexeme: "def", Line: 1},
		{Type: Identifier, Lexeme: "x", Line: 1},
		{Type: TypeDelim, Lexeme: ":", Line: 1},
		{Type: TypeDecl, Lexeme: "num", Line: 1},
		{Type: Assign, Lexeme: "->", Line: 1},
		{Type: Num, Lexeme: "1", Value: 1.0, Line: 1},
		{Type: EOF, Lexeme: "", Line: 1},
	}
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(toks), toks)
	}
	for i := range expected {
		if toks[i] != expected[i] {
			t.Errorf("token %d: expected %#v, got %#v", i, expected[i], toks[i])
		}
	}
}

func TestScanAssignmentsOfEachType(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		typeName string
		value    Token
	}{
		{"Str", `def s: str -> "this is a test"`, "str", Token{Type: Str, Lexeme: `"this is a test"`}},
		{"Bool", "def b: bool -> true", "bool", Token{Type: True, Lexeme: "true"}},
		{"None", "def n: _ -> none", "_", Token{Type: None, Lexeme: "none"}},
		{"Float", "def f: num -> 2.75", "num", Token{Type: Num, Lexeme: "2.75", Value: 2.75}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Scan([]rune(tc.src))
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if len(toks) != 7 {
				t.Fatalf("expected 7 tokens, got %v", toks)
			}
			if toks[3].Type != TypeDecl || toks[3].Lexeme != tc.typeName {
				t.Fatalf("expected TypeDecl(%s), got %s", tc.typeName, toks[3])
			}
			got := toks[5]
			got.Line = 0
			if got != tc.value {
				t.Fatalf("expected %#v, got %#v", tc.value, got)
			}
		})
	}
}

func TestScanOperators(t *testing.T) {
	assertTypes(t, "+ - / * > < >= <= = and or not",
		Add, Subtract, Divide, Multiply, GreaterThan, LessThan,
		GreaterThanOrEqual, LessThanOrEqual, Equal, And, Or, Not, EOF)
}

func TestScanTwoCharComparisonsConsumeBothChars(t *testing.T) {
	assertTypes(t, ">=1", GreaterThanOrEqual, Num, EOF)
	assertTypes(t, "<=1", LessThanOrEqual, Num, EOF)
}

func TestScanArrowVersusSubtract(t *testing.T) {
	assertTypes(t, "->", Assign, EOF)
	assertTypes(t, "-5", Subtract, Num, EOF)
	assertTypes(t, "- >", Subtract, GreaterThan, EOF)
}

func TestScanPunctuation(t *testing.T) {
	assertTypes(t, `: ( ) $ \`, TypeDelim, LeftParen, RightParen, Appl, AnonFn, EOF)
}

func TestScanKeywords(t *testing.T) {
	assertTypes(t, "def let try catch finally throw loop do",
		Def, Let, Try, Catch, Finally, Throw, Loop, Do, EOF)
	// `if` is not in the keyword table.
	assertTypes(t, "if", Identifier, EOF)
}

func TestScanCommentLineYieldsOnlyEOF(t *testing.T) {
	assertTypes(t, "# def x: num -> 1", EOF)
	assertTypes(t, "# comment\nfoo", Identifier, EOF)
	assertTypes(t, "foo # trailing", Identifier, EOF)
}

func TestScanWordStopsAtDelimiters(t *testing.T) {
	toks, err := Scan([]rune("abc:def)x#y"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	expected := []Token{
		{Type: Identifier, Lexeme: "abc"},
		{Type: TypeDelim, Lexeme: ":"},
		{Type: Def, Lexeme: "def"},
		{Type: RightParen, Lexeme: ")"},
		{Type: Identifier, Lexeme: "x"},
		{Type: EOF},
	}
	if len(toks) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, toks)
	}
	for i := range expected {
		if toks[i].Type != expected[i].Type || toks[i].Lexeme != expected[i].Lexeme {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], toks[i])
		}
	}
}

func TestScanUnterminatedStringRunsToEnd(t *testing.T) {
	toks, err := Scan([]rune("\"abc\ndef"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected string and EOF, got %v", toks)
	}
	if toks[0].Type != Str || toks[0].Lexeme != "\"abc\ndef" {
		t.Fatalf("expected raw unterminated string, got %#v", toks[0])
	}
}

func TestScanMalformedNumber(t *testing.T) {
	_, err := Scan([]rune("+ 1 1.2.3"))
	if err == nil {
		t.Fatalf("expected error")
	}
	var scanErr *Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if scanErr.Lexeme != "1.2.3" || scanErr.Line != 1 {
		t.Fatalf("unexpected error contents %#v", scanErr)
	}
}

func TestScanHugeNumberIsInfinite(t *testing.T) {
	src := "1"
	for i := 0; i < 400; i++ {
		src += "0"
	}
	toks, err := Scan([]rune(src))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !math.IsInf(toks[0].Value, 1) {
		t.Fatalf("expected +Inf, got %v", toks[0].Value)
	}
}

func TestScanIndentation(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		expected []TokType
	}{
		{
			name:     "IndentThenDedent",
			src:      "+ 1\n  2\nx",
			expected: []TokType{Add, Num, Indent, Num, Dedent, Identifier, EOF},
		},
		{
			name:     "TabIndent",
			src:      "a\n\tb\nc",
			expected: []TokType{Identifier, Indent, Identifier, Dedent, Identifier, EOF},
		},
		{
			name:     "PlainNewlines",
			src:      "a\nb\n",
			expected: []TokType{Identifier, Newline, Identifier, Newline, EOF},
		},
		{
			name:     "EachIndentedLineIndents",
			src:      "a\n  b\n  c\nd",
			expected: []TokType{Identifier, Indent, Identifier, Indent, Identifier, Dedent, Identifier, EOF},
		},
		{
			name:     "TrailingIndentedBlockHasNoDedent",
			src:      "a\n  b",
			expected: []TokType{Identifier, Indent, Identifier, EOF},
		},
		{
			name:     "NewlineAtEndWhileIndented",
			src:      "a\n  b\n",
			expected: []TokType{Identifier, Indent, Identifier, Dedent, EOF},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertTypes(t, tc.src, tc.expected...)
		})
	}
}

func TestScanBalancedIndentation(t *testing.T) {
	srcs := []string{
		"a\n  b\nc",
		"+ 1\n  * 2 3\n- 4 1\n\t5\nx",
		"a\nb\n  c\n\nd",
	}
	for _, src := range srcs {
		indents, dedents := 0, 0
		for _, tt := range scanTypes(t, src) {
			switch tt {
			case Indent:
				indents++
			case Dedent:
				dedents++
			}
		}
		if indents != dedents {
			t.Errorf("%q: %d indents vs %d dedents", src, indents, dedents)
		}
	}
}

func TestScanLineNumbers(t *testing.T) {
	toks, err := Scan([]rune("a\n# comment\nb \"x\ny\" c\nd"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	lines := map[string]int{}
	for _, tok := range toks {
		if tok.Type == Identifier || tok.Type == Str {
			lines[tok.Lexeme] = tok.Line
		}
	}
	expected := map[string]int{"a": 1, "b": 3, "\"x\ny\"": 3, "c": 4, "d": 5}
	for lexeme, line := range expected {
		if lines[lexeme] != line {
			t.Errorf("%q: expected line %d, got %d", lexeme, line, lines[lexeme])
		}
	}
}

func TestSpellRoundTrip(t *testing.T) {
	srcs := []string{
		"def x: num -> + 1 2.50",
		"def greeting: str -> \"hello world\"\ngreeting",
		"+ 1\n  * 2 3\n- 10 2 3",
		"not (and true false) $ or none",
		">= 3 2\n<= 1 1\n\\ foo -> bar",
	}
	for _, src := range srcs {
		first, err := Scan([]rune(src))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", src, err)
		}
		respelled := Spell(first)
		second, err := Scan([]rune(respelled))
		if err != nil {
			t.Fatalf("%q: rescan of %q failed: %v", src, respelled, err)
		}
		if len(first) != len(second) {
			t.Fatalf("%q: expected %v, got %v", src, first, second)
		}
		for i := range first {
			if first[i].Type != second[i].Type || first[i].Lexeme != second[i].Lexeme || first[i].Value != second[i].Value {
				t.Errorf("%q: token %d: expected %s, got %s", src, i, first[i], second[i])
			}
		}
	}
}
