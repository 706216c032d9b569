// Package lexer turns source text into a lookahead-1 token stream.
//
// The lexical grammar is fixed: decimal digit runs are numbers, word runs
// are names, maximal runs of operator-symbol characters are operator tokens
// typed by their own text, and each of ( ) [ ] is a singleton token that
// never merges with its neighbors. Whitespace separates tokens; any other
// character outside these classes is skipped and produces no token at all,
// so unknown input surfaces later as a parse error, not a lexical one.
package lexer

import (
	"regexp"

	"github.com/andychu/pratt-parsing-demo/source"
)

// One capture group per token class, tried left to right at each position:
// digit runs, word runs, operator-symbol runs, singleton brackets. The
// braces count as ordinary operator symbols.
var tokenRe = regexp.MustCompile(`(\d+)|(\w+)|([-+*/%!~<>=&^|?:,{}]+)|([()\[\]])`)

// Scan tokenizes the entire source and appends the eof sentinel. It cannot
// fail: characters belonging to no token class are dropped.
func Scan(src *source.Source) []*Token {
	content := src.Content()
	matches := tokenRe.FindAllSubmatchIndex(content, -1)
	tokens := make([]*Token, 0, len(matches)+1)
	for _, m := range matches {
		for group := 1; group <= 4; group++ {
			lo, hi := m[2*group], m[2*group+1]
			if lo < 0 {
				continue
			}

			text := string(content[lo:hi])
			tokenType := text
			switch group {
			case 1:
				tokenType = NumberType
			case 2:
				tokenType = NameType
			}
			tokens = append(tokens, New(tokenType, text, source.NewPos(src, lo)))
			break
		}
	}
	return append(tokens, EofToken(src))
}

// Stream is a pull cursor over the tokens of one source, created for
// exactly one parse. Current is always defined: once the input is
// exhausted it is the eof sentinel, forever.
type Stream struct {
	tokens []*Token
	pos    int
}

func NewStream(src *source.Source) *Stream {
	return &Stream{tokens: Scan(src)}
}

func NewStringStream(name, text string) *Stream {
	return NewStream(source.New(name, []byte(text)))
}

// Current returns the next unconsumed token.
func (s *Stream) Current() *Token {
	return s.tokens[s.pos]
}

// Next advances the stream and returns the token that was current.
// Advancing at eof keeps returning the sentinel.
func (s *Stream) Next() *Token {
	t := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return t
}
