package tdop_test

import (
	"fmt"

	"github.com/andychu/pratt-parsing-demo/ast"
	"github.com/andychu/pratt-parsing-demo/lexer"
	"github.com/andychu/pratt-parsing-demo/parser"
)

func Example() {
	rules := parser.NewRuleMap()

	// literals and names parse to leaves
	rules.Prefix(-1, func(rm *parser.RuleMap, ts *lexer.Stream, bp int) (*ast.Node, error) {
		return ast.New(ts.Next()), nil
	}, lexer.NameType, lexer.NumberType)

	// eof terminates the parse loop through its zero-power placeholder
	rules.Prefix(-1, parser.NullError, lexer.EofType)

	binary := func(rm *parser.RuleMap, ts *lexer.Stream, rbp int, left *ast.Node) (*ast.Node, error) {
		tok := ts.Next()
		right, e := parser.Parse(rm, ts, rbp)
		if e != nil {
			return nil, e
		}
		return ast.New(tok, left, right), nil
	}
	rules.Infix(25, binary, "*", "/")
	rules.Infix(23, binary, "+", "-")
	rules.InfixRight(27, binary, "**")

	for _, src := range []string{"1 + 2 * 3", "100 - 10 - 1", "2 ** 3 ** 2"} {
		node, e := parser.ParseString(rules, "example", src)
		if e != nil {
			fmt.Println(e)
			return
		}
		fmt.Println(node)
	}
	// Output:
	// (+ 1 (* 2 3))
	// (- (- 100 10) 1)
	// (** 2 (** 3 2))
}
