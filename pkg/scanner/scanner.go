package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	. "github.com/ostnam/linus/pkg/tokens"
	"github.com/ostnam/linus/pkg/utils"
)

// Error is returned when a numeric literal can't be parsed. Nothing else
// stops a scan.
type Error struct {
	Line   int
	Lexeme string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: malformed number literal %q", e.Line, e.Lexeme)
}

type scanner struct {
	src      []rune
	pos      int
	line     int
	indented bool
	toks     []Token
}

// Scan splits the input into tokens, terminated by a single EOF token.
func Scan(input []rune) ([]Token, error) {
	s := &scanner{
		src:  input,
		line: 1,
		toks: make([]Token, 0, len(input)/2+1),
	}
	for !utils.IsAtEnd(s.src, s.pos) {
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.toks = append(s.toks, Make(EOF, s.line))
	return s.toks, nil
}

func (s *scanner) scanToken() error {
	start := s.pos
	line := s.line
	c := *utils.Advance(s.src, &s.pos)
	switch c {
	case '\n':
		s.line++
		switch {
		case s.peekIs(' ', '\t'):
			s.indented = true
			s.emit(Indent, line)
		case s.indented:
			s.indented = false
			s.emit(Dedent, line)
		default:
			s.emit(Newline, line)
		}
	case ' ', '\t', '\r':
	case '"':
		s.scanStrLiteral(start)
	case '#':
		s.consumeRestOfLine()
	case ':':
		s.emit(TypeDelim, line)
	case '(':
		s.emit(LeftParen, line)
	case ')':
		s.emit(RightParen, line)
	case '$':
		s.emit(Appl, line)
	case '\\':
		s.emit(AnonFn, line)
	case '-':
		if s.match('>') {
			s.emit(Assign, line)
		} else {
			s.emit(Subtract, line)
		}
	case '+':
		s.emit(Add, line)
	case '/':
		s.emit(Divide, line)
	case '*':
		s.emit(Multiply, line)
	case '>':
		if s.match('=') {
			s.emit(GreaterThanOrEqual, line)
		} else {
			s.emit(GreaterThan, line)
		}
	case '<':
		if s.match('=') {
			s.emit(LessThanOrEqual, line)
		} else {
			s.emit(LessThan, line)
		}
	case '=':
		s.emit(Equal, line)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.scanNumLiteral(start)
	default:
		s.scanWord(start)
	}
	return nil
}

// The literal keeps both quote characters. A missing closing quote runs the
// literal to the end of the input.
func (s *scanner) scanStrLiteral(start int) {
	line := s.line
	for {
		char := utils.Advance(s.src, &s.pos)
		if char == nil {
			break
		}
		if *char == '\n' {
			s.line++
		}
		if *char == '"' {
			break
		}
	}
	s.toks = append(s.toks, Token{Type: Str, Lexeme: string(s.src[start:s.pos]), Line: line})
}

func (s *scanner) scanNumLiteral(start int) error {
	for {
		c := utils.Peek(s.src, s.pos)
		if c == nil || !isDigitOrDot(*c) {
			break
		}
		s.pos++
	}
	lexeme := string(s.src[start:s.pos])
	val, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return &Error{Line: s.line, Lexeme: lexeme}
	}
	s.toks = append(s.toks, Token{Type: Num, Lexeme: lexeme, Value: val, Line: s.line})
	return nil
}

func isDigitOrDot(c rune) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

func (s *scanner) scanWord(start int) {
	for {
		c := utils.Peek(s.src, s.pos)
		if c == nil || unicode.IsSpace(*c) || *c == '#' || *c == ':' || *c == ')' {
			break
		}
		s.pos++
	}
	lexeme := string(s.src[start:s.pos])
	if tok, isKeyword := keywords[lexeme]; isKeyword {
		s.emit(tok, s.line)
		return
	}
	if typeNames[lexeme] {
		s.toks = append(s.toks, Token{Type: TypeDecl, Lexeme: lexeme, Line: s.line})
		return
	}
	s.toks = append(s.toks, Token{Type: Identifier, Lexeme: lexeme, Line: s.line})
}

// The newline is swallowed together with the comment.
func (s *scanner) consumeRestOfLine() {
	for c := utils.Advance(s.src, &s.pos); c != nil; c = utils.Advance(s.src, &s.pos) {
		if *c == '\n' {
			s.line++
			return
		}
	}
}

func (s *scanner) emit(t TokType, line int) {
	s.toks = append(s.toks, Make(t, line))
}

func (s *scanner) peekIs(vals ...rune) bool {
	return utils.PeekIs(s.src, s.pos, vals...)
}

func (s *scanner) match(r rune) bool {
	if s.peekIs(r) {
		s.pos++
		return true
	}
	return false
}

var keywords = map[string]TokType{
	"true":    True,
	"false":   False,
	"none":    None,
	"and":     And,
	"or":      Or,
	"not":     Not,
	"def":     Def,
	"let":     Let,
	"try":     Try,
	"catch":   Catch,
	"finally": Finally,
	"throw":   Throw,
	"loop":    Loop,
	"do":      Do,
}

var typeNames = map[string]bool{
	"num":  true,
	"str":  true,
	"_":    true,
	"bool": true,
}
