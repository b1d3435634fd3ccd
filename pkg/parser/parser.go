package parser

import (
	"errors"
	"fmt"

	"github.com/ostnam/linus/pkg/ast"
	. "github.com/ostnam/linus/pkg/tokens"
	"github.com/ostnam/linus/pkg/utils"
)

// Error describes a declaration that failed to parse.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type parser struct {
	tokens []Token
	pos    int
}

// Top-level parsing function. Every failed declaration is reported; the
// returned error joins them, one per line, and no trees are returned with it.
func Parse(tokens []Token) ([]ast.Ast, error) {
	p := &parser{tokens: tokens}
	res := []ast.Ast{}
	errs := []error{}
	for !utils.IsAtEnd(p.tokens, p.pos) && !p.check(EOF) {
		if p.check(Newline) {
			p.advance()
			continue
		}
		node, err := p.declaration()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		res = append(res, node)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

func (p *parser) declaration() (ast.Ast, error) {
	if !p.check(Def) {
		return p.expression()
	}
	p.advance()
	name := p.advance()
	if name == nil || name.Type != Identifier {
		return nil, p.errorf("Invalid variable name.")
	}
	delim, typeDecl := p.advance(), p.advance()
	if delim == nil || delim.Type != TypeDelim || typeDecl == nil || typeDecl.Type != TypeDecl || !p.check(Assign) {
		return nil, p.errorf("Error in global variable declaration: invalid syntax after \"def\"")
	}
	p.advance()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	// The expression may already have consumed the end of its line.
	if !utils.PreviousMatchesTokType(p.tokens, p.pos, Newline, Dedent) {
		if !p.check(Indent, LeftParen, Appl, Newline, EOF) {
			return nil, p.errorf("Error in global variable declaration: no expression following variable declaration.")
		}
		p.advance()
	}
	return ast.Assignment{
		Name:     name.Lexeme,
		TypeDecl: typeDecl.Lexeme,
		Expr:     expr,
	}, nil
}

func (p *parser) expression() (ast.Ast, error) {
	return p.functionCall()
}

func (p *parser) functionCall() (ast.Ast, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.startsOperand():
			operands, err := p.operands()
			if err != nil {
				return nil, err
			}
			var operator Token
			switch head := expr.(type) {
			case ast.Variable:
				operator = head.Name
			case ast.Operator:
				operator = head.Token
			default:
				return nil, p.errorf("Invalid function name")
			}
			expr = ast.FunctionCall{
				Operator: operator,
				Operands: operands,
			}
		case p.check(RightParen, Newline, Dedent):
			p.advance()
			return expr, nil
		default:
			return expr, nil
		}
	}
}

func (p *parser) startsOperand() bool {
	if p.check(Identifier, Str, Num, True, False, None, Appl, Indent, LeftParen) {
		return true
	}
	tok := utils.Peek(p.tokens, p.pos)
	return tok != nil && tok.Type.IsOperator()
}

// Collects operands up to, but not including, the closing delimiter.
func (p *parser) operands() ([]ast.Ast, error) {
	operands := []ast.Ast{}
	for {
		tok := utils.Peek(p.tokens, p.pos)
		if tok == nil {
			return operands, nil
		}
		switch {
		case tok.Type == RightParen || tok.Type == Dedent || tok.Type == EOF || tok.Type == Newline:
			return operands, nil
		case tok.Type == Appl || tok.Type == LeftParen || tok.Type == Indent:
			p.advance()
			operand, err := p.expression()
			if err != nil {
				return nil, err
			}
			operands = append(operands, operand)
		case tok.Type.IsOperator():
			operand, err := p.expression()
			if err != nil {
				return nil, err
			}
			operands = append(operands, operand)
		default:
			operand, err := p.primary()
			if err != nil {
				return nil, err
			}
			operands = append(operands, operand)
		}
	}
}

func (p *parser) primary() (ast.Ast, error) {
	tok := p.advance()
	if tok == nil {
		return nil, p.errorf("Problem advancing parser.")
	}
	switch {
	case tok.Type == Num || tok.Type == Str || tok.Type == EOF ||
		tok.Type == True || tok.Type == False || tok.Type == None:
		return ast.Literal{Token: *tok}, nil
	case tok.Type.IsOperator():
		return ast.Operator{Token: *tok}, nil
	case tok.Type == Identifier:
		return ast.Variable{Name: *tok}, nil
	case tok.Type == Appl:
		return nil, p.errorf("Cannot pass an application symbol ($) there.")
	default:
		return nil, p.errorf("Problem parsing primary.")
	}
}

// Advances the parsing state until the probable beginning of the next
// declaration, or the end of the token stream.
func (p *parser) synchronize() {
	for !utils.IsAtEnd(p.tokens, p.pos) && !p.check(EOF) {
		if utils.PreviousMatchesTokType(p.tokens, p.pos, Newline, Dedent) {
			return
		}
		p.advance()
	}
}

func (p *parser) advance() *Token {
	return utils.Advance(p.tokens, &p.pos)
}

func (p *parser) check(vals ...TokType) bool {
	return utils.PeekMatchesTokType(p.tokens, p.pos, vals...)
}

// errorf reports against the line of the last consumed token.
func (p *parser) errorf(format string, args ...any) *Error {
	line := 0
	if tok := utils.Previous(p.tokens, p.pos); tok != nil {
		line = tok.Line
	} else if tok := utils.Peek(p.tokens, p.pos); tok != nil {
		line = tok.Line
	}
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}
