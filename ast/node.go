// Package ast defines the syntax tree produced by parse handlers.
package ast

import (
	"strings"

	"github.com/andychu/pratt-parsing-demo/lexer"
)

// Node is an immutable tree: a token plus an ordered list of child nodes.
// A node owns its children exclusively; subtrees are never shared and there
// are no cycles. Extending a node (e.g. appending an operand to an n-ary
// form) means building a new node, not mutating an old one.
type Node struct {
	token    *lexer.Token
	children []*Node
}

func New(token *lexer.Token, children ...*Node) *Node {
	return &Node{token: token, children: children}
}

func (n *Node) Token() *lexer.Token {
	return n.token
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child list, safe to append to.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.children))
	copy(res, n.children)
	return res
}

// Equal reports structural equality: the same token type and value at every
// node, and the same shape.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.token.Type() != other.token.Type() || n.token.Value() != other.token.Value() {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String renders the canonical parenthesized prefix form: a leaf is its
// token value, an interior node is "(type child1 child2 ...)". The
// rendering is a pure function of the tree.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if len(n.children) == 0 {
		b.WriteString(n.token.Value())
		return
	}

	b.WriteByte('(')
	b.WriteString(n.token.Type())
	for _, c := range n.children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}
