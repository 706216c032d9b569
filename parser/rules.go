package parser

import (
	"github.com/andychu/pratt-parsing-demo/ast"
	"github.com/andychu/pratt-parsing-demo/lexer"
)

// NullHandler parses a token appearing in expression-start position. It
// must consume the current token (directly or through recursive Parse
// calls) and return the node for the primary or prefix form. bp is the
// binding power the rule was registered with.
type NullHandler func(rm *RuleMap, ts *lexer.Stream, bp int) (*ast.Node, error)

// LeftHandler parses a token appearing after a complete left operand. It
// must consume the operator token, plus any separator or closer its form
// requires, and return the extended node. rbp is the binding power floor
// for the operand(s) to its right.
type LeftHandler func(rm *RuleMap, ts *lexer.Stream, rbp int, left *ast.Node) (*ast.Node, error)

type nullRule struct {
	handler NullHandler
	bp      int
}

type leftRule struct {
	handler  LeftHandler
	lbp, rbp int
}

// RuleMap is the grammar: one rule per token type for each of the two
// positions a token may appear in. Registering a type in one position
// installs a failing placeholder in the other, so every registered type has
// defined behavior in both positions and a missing rule surfaces as a
// position-specific parse error. A RuleMap is populated once, before any
// parsing, and is read-only afterwards, so one map may back concurrent
// parses of different streams.
type RuleMap struct {
	null map[string]nullRule
	left map[string]leftRule
}

func NewRuleMap() *RuleMap {
	return &RuleMap{
		null: make(map[string]nullRule),
		left: make(map[string]leftRule),
	}
}

// Prefix installs handler for each listed type in expression-start
// position.
func (rm *RuleMap) Prefix(bp int, handler NullHandler, tokenTypes ...string) {
	for _, tt := range tokenTypes {
		rm.null[tt] = nullRule{handler, bp}
		if _, has := rm.left[tt]; !has {
			rm.left[tt] = leftRule{LeftError, 0, 0}
		}
	}
}

// Infix installs a left-associative rule for each listed type: the right
// operand is parsed at the operator's own binding power, so an equal-power
// operator on the right stops the recursion and nests to the left.
func (rm *RuleMap) Infix(bp int, handler LeftHandler, tokenTypes ...string) {
	rm.registerLeft(bp, bp, handler, tokenTypes)
}

// InfixRight installs a right-associative rule for each listed type: the
// right binding power is one below the left one, so an equal-power operator
// on the right is absorbed into the recursion and nests to the right. This
// is the only mechanism expressing associativity; Parse never consults an
// associativity flag.
func (rm *RuleMap) InfixRight(bp int, handler LeftHandler, tokenTypes ...string) {
	rm.registerLeft(bp, bp-1, handler, tokenTypes)
}

func (rm *RuleMap) registerLeft(lbp, rbp int, handler LeftHandler, tokenTypes []string) {
	for _, tt := range tokenTypes {
		rm.left[tt] = leftRule{handler, lbp, rbp}
		if _, has := rm.null[tt]; !has {
			rm.null[tt] = nullRule{NullError, 0}
		}
	}
}

// NullError is the failing rule for token types that may not start an
// expression. Grammars may also bind it explicitly to closers and the eof
// sentinel: the zero-power left placeholder installed alongside it is what
// makes such tokens terminate the parse loop cleanly.
func NullError(rm *RuleMap, ts *lexer.Stream, bp int) (*ast.Node, error) {
	return nil, nullPositionError(ts.Current())
}

// LeftError is the failing rule for token types that may not continue an
// expression.
func LeftError(rm *RuleMap, ts *lexer.Stream, rbp int, left *ast.Node) (*ast.Node, error) {
	return nil, leftPositionError(ts.Current())
}
