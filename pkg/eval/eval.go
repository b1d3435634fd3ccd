package eval

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ostnam/linus/pkg/ast"
	"github.com/ostnam/linus/pkg/tokens"
)

type RunTimeError struct {
	Kind  RunTimeErrorKind
	Token tokens.Token
	Msg   string
}

func (self RunTimeError) Error() string {
	return self.Msg
}

type RunTimeErrorKind uint8

const (
	// Operand kinds that can never be combined, e.g. bool and num.
	TypeMismatch RunTimeErrorKind = iota
	// Operator not defined for otherwise compatible operands, e.g. `and` on nums.
	InvalidOperator
	// Any other operand pairing, e.g. two strings.
	OperandError
	VariableNotFound
	UnknownFunction
	NotEnoughArguments
	InvalidExpression
)

func (k RunTimeErrorKind) String() string {
	return [...]string{
		"TypeMismatch",
		"InvalidOperator",
		"OperandError",
		"VariableNotFound",
		"UnknownFunction",
		"NotEnoughArguments",
		"InvalidExpression",
	}[k]
}

// Interpreter evaluates trees against its own symbol table. It is not safe
// for concurrent use.
type Interpreter struct {
	env *Env
	out io.Writer
	log *log.Logger
}

// NewInterpreter returns an interpreter printing to out. A nil logger
// discards log output.
func NewInterpreter(out io.Writer, logger *log.Logger) *Interpreter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Interpreter{
		env: NewEnv(),
		out: out,
		log: logger,
	}
}

func (in *Interpreter) Env() *Env {
	return in.env
}

// Interpret evaluates nodes in order, printing every value other than none
// on its own line before moving to the next node. It stops at the first
// error.
func (in *Interpreter) Interpret(nodes []ast.Ast) error {
	for _, node := range nodes {
		val, err := in.Eval(node)
		if err != nil {
			return err
		}
		if val.Kind() == KindNone {
			continue
		}
		if _, err := fmt.Fprintln(in.out, Format(val)); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) Eval(node ast.Ast) (Value, error) {
	switch node := node.(type) {
	case ast.Literal:
		return evalLiteral(node.Token)

	case ast.Assignment:
		val, err := in.Eval(node.Expr)
		if err != nil {
			return nil, fmt.Errorf("in definition of %s: %w", node.Name, err)
		}
		in.env.Define(node.Name, val)
		in.log.Debug("bound", "name", node.Name, "declared", node.TypeDecl, "kind", val.Kind())
		return None{}, nil

	case ast.Variable:
		val, ok := in.env.Retrieve(node.Name.Lexeme)
		if !ok {
			return nil, RunTimeError{
				Kind:  VariableNotFound,
				Token: node.Name,
				Msg:   fmt.Sprintf("variable not found: %s", node.Name.Lexeme),
			}
		}
		return val, nil

	case ast.FunctionCall:
		switch node.Operator.Type {
		case tokens.Add, tokens.Subtract, tokens.Multiply, tokens.Divide,
			tokens.GreaterThan, tokens.LessThan, tokens.GreaterThanOrEqual, tokens.LessThanOrEqual,
			tokens.Equal, tokens.And, tokens.Or:
			return in.evalFold(node)
		case tokens.Not:
			return in.evalNot(node)
		default:
			return nil, RunTimeError{
				Kind:  UnknownFunction,
				Token: node.Operator,
				Msg:   fmt.Sprintf("function does not exist: %s", node.Operator.Lexeme),
			}
		}

	default:
		return nil, RunTimeError{
			Kind: InvalidExpression,
			Msg:  fmt.Sprintf("invalid expression: %T", node),
		}
	}
}

func evalLiteral(tok tokens.Token) (Value, error) {
	switch tok.Type {
	case tokens.Str:
		return Str{Val: tok.Lexeme}, nil
	case tokens.Num:
		return Num{Val: tok.Value}, nil
	case tokens.True:
		return Bool{Val: true}, nil
	case tokens.False:
		return Bool{Val: false}, nil
	case tokens.None, tokens.EOF:
		return None{}, nil
	case tokens.Identifier:
		return Str{Val: tok.Lexeme}, nil
	default:
		return nil, RunTimeError{
			Kind:  InvalidExpression,
			Token: tok,
			Msg:   fmt.Sprintf("not a literal: %s", tok),
		}
	}
}

// Operands are all evaluated first, then combined pairwise from the left:
// `- 10 2 3` is (10 - 2) - 3.
func (in *Interpreter) evalFold(call ast.FunctionCall) (Value, error) {
	if len(call.Operands) == 0 {
		return nil, notEnoughArguments(call.Operator)
	}
	vals := make([]Value, 0, len(call.Operands))
	for _, operand := range call.Operands {
		val, err := in.Eval(operand)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	acc := vals[0]
	for _, val := range vals[1:] {
		var err error
		acc, err = combine(call.Operator, acc, val)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func combine(op tokens.Token, lhs Value, rhs Value) (Value, error) {
	switch lhs := lhs.(type) {
	case Num:
		switch rhs := rhs.(type) {
		case Num:
			return numOp(op, lhs.Val, rhs.Val)
		case Bool:
			return nil, typeMismatch(op, lhs, rhs)
		}
	case Bool:
		switch rhs := rhs.(type) {
		case Bool:
			return boolOp(op, lhs.Val, rhs.Val)
		case Num:
			return nil, typeMismatch(op, lhs, rhs)
		}
	}
	return nil, RunTimeError{
		Kind:  OperandError,
		Token: op,
		Msg:   fmt.Sprintf("something wrong with operands: can't apply %s to %s and %s", op.Lexeme, lhs.Kind(), rhs.Kind()),
	}
}

func numOp(op tokens.Token, a float64, b float64) (Value, error) {
	switch op.Type {
	case tokens.Add:
		return Num{Val: a + b}, nil
	case tokens.Subtract:
		return Num{Val: a - b}, nil
	case tokens.Multiply:
		return Num{Val: a * b}, nil
	case tokens.Divide:
		return Num{Val: a / b}, nil
	case tokens.GreaterThan:
		return Bool{Val: a > b}, nil
	case tokens.LessThan:
		return Bool{Val: a < b}, nil
	case tokens.GreaterThanOrEqual:
		return Bool{Val: a >= b}, nil
	case tokens.LessThanOrEqual:
		return Bool{Val: a <= b}, nil
	case tokens.Equal:
		return Bool{Val: a == b}, nil
	default:
		return nil, invalidOperator(op, KindNum)
	}
}

func boolOp(op tokens.Token, a bool, b bool) (Value, error) {
	switch op.Type {
	case tokens.And:
		return Bool{Val: a && b}, nil
	case tokens.Or:
		return Bool{Val: a || b}, nil
	case tokens.Equal:
		return Bool{Val: a == b}, nil
	default:
		return nil, invalidOperator(op, KindBool)
	}
}

// Only the first operand of `not` is evaluated.
func (in *Interpreter) evalNot(call ast.FunctionCall) (Value, error) {
	if len(call.Operands) == 0 {
		return nil, notEnoughArguments(call.Operator)
	}
	val, err := in.Eval(call.Operands[0])
	if err != nil {
		return nil, err
	}
	switch val := val.(type) {
	case Bool:
		return Bool{Val: !val.Val}, nil
	case None:
		return Bool{Val: true}, nil
	default:
		return nil, RunTimeError{
			Kind:  TypeMismatch,
			Token: call.Operator,
			Msg:   fmt.Sprintf("can't apply function 'not' to type %s", val.Kind()),
		}
	}
}

func typeMismatch(op tokens.Token, lhs Value, rhs Value) error {
	return RunTimeError{
		Kind:  TypeMismatch,
		Token: op,
		Msg:   fmt.Sprintf("can't compare %s and %s", lhs.Kind(), rhs.Kind()),
	}
}

func invalidOperator(op tokens.Token, kind Kind) error {
	return RunTimeError{
		Kind:  InvalidOperator,
		Token: op,
		Msg:   fmt.Sprintf("unexpected operator %s for %s operands", op.Lexeme, kind),
	}
}

func notEnoughArguments(op tokens.Token) error {
	return RunTimeError{
		Kind:  NotEnoughArguments,
		Token: op,
		Msg:   fmt.Sprintf("not enough arguments to function '%s'", op.Lexeme),
	}
}
