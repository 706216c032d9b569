package parser

import (
	tdop "github.com/andychu/pratt-parsing-demo"
	"github.com/andychu/pratt-parsing-demo/lexer"
)

// Error codes used by parser:
const (
	UnexpectedEofError = tdop.SyntaxErrors + iota
	UnexpectedTokenError
	ExpectedTokenError
	NullPositionError
	LeftPositionError
)

func unexpectedEofError(t *lexer.Token) *tdop.Error {
	return tdop.FormatErrorPos(t, UnexpectedEofError, "Unexpected end of input")
}

func unexpectedTokenError(t *lexer.Token) *tdop.Error {
	return tdop.FormatErrorPos(t, UnexpectedTokenError, "Unexpected token %s", t)
}

func expectedTokenError(expected string, got *lexer.Token) *tdop.Error {
	return tdop.FormatErrorPos(got, ExpectedTokenError, "expected %s, got %s", expected, got)
}

func nullPositionError(t *lexer.Token) *tdop.Error {
	return tdop.FormatErrorPos(t, NullPositionError, "%s can't be used in prefix position", t)
}

func leftPositionError(t *lexer.Token) *tdop.Error {
	return tdop.FormatErrorPos(t, LeftPositionError, "%s can't be used in infix position", t)
}
