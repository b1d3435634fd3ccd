package utils

import (
	"github.com/ostnam/linus/pkg/tokens"
)

func Peek[T any](str []T, pos int) *T {
	if pos < len(str) && pos >= 0 {
		return &str[pos]
	}
	return nil
}

func Previous[T any](str []T, pos int) *T {
	return Peek(str, pos-1)
}

func Advance[T any](str []T, pos *int) *T {
	if *pos >= len(str) || *pos < 0 {
		return nil
	}
	res := &str[*pos]
	*pos++
	return res
}

func IsAtEnd[T any](bytes []T, pos int) bool {
	return pos >= len(bytes)
}

// PeekIs reports whether the element at pos equals one of vals.
func PeekIs[T comparable](slice []T, pos int, vals ...T) bool {
	peeked := Peek(slice, pos)
	if peeked == nil {
		return false
	}
	for _, val := range vals {
		if *peeked == val {
			return true
		}
	}
	return false
}

func PeekMatchesTokType(slice []tokens.Token, pos int, vals ...tokens.TokType) bool {
	peeked := Peek(slice, pos)
	if peeked == nil {
		return false
	}
	for _, val := range vals {
		if val == peeked.Type {
			return true
		}
	}
	return false
}

func PreviousMatchesTokType(slice []tokens.Token, pos int, vals ...tokens.TokType) bool {
	return PeekMatchesTokType(slice, pos-1, vals...)
}
