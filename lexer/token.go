package lexer

import (
	"fmt"
	"strconv"

	"github.com/andychu/pratt-parsing-demo/source"
)

// Token type tags produced by the scanner. Operator runs and brackets use
// the matched text itself as the type tag, so there are no constants for
// them.
const (
	NumberType = "number"
	NameType   = "name"
	EofType    = "eof"
)

// Token is an immutable lexeme: a type tag, the matched text, and an
// optional source position. Number tokens also carry their integer value.
type Token struct {
	tokenType string
	text      string
	num       int64
	src       *source.Source
	line, col int
}

func New(tokenType, text string, pos source.Pos) *Token {
	t := &Token{tokenType: tokenType, text: text, src: pos.Source(), line: pos.Line(), col: pos.Col()}
	if tokenType == NumberType {
		t.num, _ = strconv.ParseInt(text, 10, 64)
	}
	return t
}

// Derive creates a synthetic token positioned at an existing one. Grammars
// use it for composite forms whose node head is not a source lexeme.
func Derive(tokenType, text string, at *Token) *Token {
	return &Token{tokenType: tokenType, text: text, src: at.src, line: at.line, col: at.col}
}

func (t *Token) Type() string {
	return t.tokenType
}

func (t *Token) Text() string {
	return t.text
}

// Num returns the integer value of a number token, 0 for any other type.
func (t *Token) Num() int64 {
	return t.num
}

// Value returns the canonical literal value: the decimal integer value for
// number tokens, the matched text for everything else.
func (t *Token) Value() string {
	if t.tokenType == NumberType {
		return strconv.FormatInt(t.num, 10)
	}
	return t.text
}

func (t *Token) IsEof() bool {
	return t.tokenType == EofType
}

func (t *Token) Source() *source.Source {
	return t.src
}

func (t *Token) SourceName() string {
	if t.src == nil {
		return ""
	}
	return t.src.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// String renders the token the way it appears in parse error messages.
func (t *Token) String() string {
	return fmt.Sprintf("<Token %s %s>", t.tokenType, t.Value())
}

// EofToken creates the end-of-stream sentinel, positioned just past the end
// of s. Scan appends it after the last real token.
func EofToken(s *source.Source) *Token {
	line, col := 0, 0
	if s != nil {
		line, col = s.LineCol(s.Len())
	}
	return &Token{tokenType: EofType, text: "eof", src: s, line: line, col: col}
}
