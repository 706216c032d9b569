/*
Package tdop is a generic top-down operator precedence (Pratt) parsing
engine: a tokenizer producing a lookahead-1 token stream, a rule table
keyed by token type, and a precedence-climbing parse driver interleaving
the registered handlers.

Consists of subpackages:
  - source: source text and byte-offset to line/column bookkeeping;
  - lexer: the tokenizer and the lookahead-1 token stream;
  - ast: the immutable syntax tree built by parse handlers;
  - parser: the rule map, the registration API, and the parse driver;
  - examples/arith: a C-like expression grammar and REPL built on the engine.

Typical usage is:

1. Create a parser.RuleMap and register a grammar into it: Prefix for token
types that may start a (sub)expression, Infix or InfixRight for token types
that continue one. Handlers build ast.Node values and recurse through
parser.Parse for their operands.

2. Wrap each input in a lexer.Stream and call parser.Parse with a minimum
binding power of 0.

The engine has no built-in operators: precedence, associativity, and
semantic guards (assignability, callability, and the like) all live in the
registered handlers. A RuleMap is read-only once registration is done and
may back concurrent parses of different streams.
*/
package tdop

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error
// codes. Codes from 301 up are free for grammars built on the engine.
const (
	SyntaxErrors = 201 // used by parser
)

// Error is the error type used by tdop subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and
	// position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when
// constructing an error; source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
