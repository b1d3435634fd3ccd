package eval

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind uint8

const (
	KindNum Kind = iota
	KindStr
	KindBool
	KindNone
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	case KindBool:
		return "bool"
	case KindNone:
		return "none"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type Num struct {
	Val float64
}

func (Num) Kind() Kind { return KindNum }

// Str keeps the literal exactly as written, quote characters included.
type Str struct {
	Val string
}

func (Str) Kind() Kind { return KindStr }

type Bool struct {
	Val bool
}

func (Bool) Kind() Kind { return KindBool }

type None struct{}

func (None) Kind() Kind { return KindNone }

// Function is reserved for callable values; nothing produces one yet.
type Function struct {
	Name string
}

func (Function) Kind() Kind { return KindFunction }

// Format renders a value the way the interpreter prints it. None renders
// as the empty string.
func Format(val Value) string {
	switch val := val.(type) {
	case Num:
		return formatNum(val.Val)
	case Str:
		return val.Val
	case Bool:
		return strconv.FormatBool(val.Val)
	case Function:
		return fmt.Sprintf("<fn %s>", val.Name)
	default:
		return ""
	}
}

func formatNum(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
