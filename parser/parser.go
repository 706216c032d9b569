// Package parser implements the precedence-climbing driver over a rule map.
package parser

import (
	"github.com/andychu/pratt-parsing-demo/ast"
	"github.com/andychu/pratt-parsing-demo/lexer"
)

// Parse consumes exactly the tokens forming one complete expression whose
// operators bind tighter than rbp, and returns its node. Handlers recurse
// through Parse with their rule's right binding power as the new floor.
//
// The null rule of the current token produces the initial left operand;
// left rules then extend it while their left binding power exceeds rbp.
// Each pass of the loop consumes at least the operator token, so parsing a
// finite stream always terminates. Recursion depth is bounded by the
// nesting depth of the input; there is no guard against pathologically deep
// expressions.
func Parse(rm *RuleMap, ts *lexer.Stream, rbp int) (*ast.Node, error) {
	cur := ts.Current()
	if cur.IsEof() {
		return nil, unexpectedEofError(cur)
	}

	rule, has := rm.null[cur.Type()]
	if !has {
		return nil, unexpectedTokenError(cur)
	}

	node, e := rule.handler(rm, ts, rule.bp)
	if e != nil {
		return nil, e
	}

	for {
		left, has := rm.left[ts.Current().Type()]
		if !has {
			return nil, unexpectedTokenError(ts.Current())
		}
		// A rule whose left binding power does not exceed rbp belongs to an
		// enclosing call.
		if rbp >= left.lbp {
			return node, nil
		}

		node, e = left.handler(rm, ts, left.rbp, node)
		if e != nil {
			return nil, e
		}
	}
}

// ParseString tokenizes text and parses one expression at binding power 0.
// Leftover tokens are not an error here; callers that require the whole
// input consumed must check the stream themselves.
func ParseString(rm *RuleMap, name, text string) (*ast.Node, error) {
	return Parse(rm, lexer.NewStringStream(name, text), 0)
}

// Eat asserts the type of the current token and advances past it. Handlers
// use it for closers and separators of multi-token forms.
func Eat(ts *lexer.Stream, tokenType string) error {
	if ts.Current().Type() != tokenType {
		return expectedTokenError(tokenType, ts.Current())
	}

	ts.Next()
	return nil
}
