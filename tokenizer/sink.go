package tokenizer

import (
	"strings"
)

// TokenSink receives every token the tokenizer produces, one call per
// token, in document order, on the goroutine that called Feed. A method
// may return the state the tokenizer should switch to before it consumes
// the next code point; returning nil leaves the tokenizer's own transition
// in place. Start tags for script, style, textarea, title and the other
// raw-text elements already switch the tokenizer by themselves, so only a
// sink that needs to override that behavior (a tree builder tracking
// foreign content, say) returns a state.
//
// The tokenizer does not reuse a Token after handing it over.
type TokenSink interface {
	Doctype(tok *Token) *State
	StartTag(tok *Token) *State
	EndTag(tok *Token) *State
	Comment(tok *Token) *State
	Characters(tok *Token) *State
	EndOfFile(tok *Token) *State
}

// ErrorReporter receives parse errors as they are raised. Parse errors
// never stop the tokenizer; a sink that wants them implements this next to
// TokenSink and the tokenizer picks it up on construction.
type ErrorReporter interface {
	ParseError(e *ParseError)
}

// TokenCollector is a TokenSink that records everything it is given.
// Adjacent character tokens are merged into one, so two inputs that differ
// only in how their text was chunked collect the same token slice.
type TokenCollector struct {
	Tokens []Token
	Errors []ParseError

	chars strings.Builder
}

var _ TokenSink = (*TokenCollector)(nil)
var _ ErrorReporter = (*TokenCollector)(nil)

func (c *TokenCollector) flush() {
	if c.chars.Len() == 0 {
		return
	}
	c.Tokens = append(c.Tokens, Token{Type: CharacterToken, Data: c.chars.String()})
	c.chars.Reset()
}

func (c *TokenCollector) record(tok *Token) *State {
	c.flush()
	c.Tokens = append(c.Tokens, *tok)
	return nil
}

func (c *TokenCollector) Doctype(tok *Token) *State { return c.record(tok) }

func (c *TokenCollector) StartTag(tok *Token) *State { return c.record(tok) }

func (c *TokenCollector) EndTag(tok *Token) *State { return c.record(tok) }

func (c *TokenCollector) Comment(tok *Token) *State { return c.record(tok) }

func (c *TokenCollector) Characters(tok *Token) *State {
	c.chars.WriteString(tok.Data)
	return nil
}

func (c *TokenCollector) EndOfFile(tok *Token) *State { return c.record(tok) }

func (c *TokenCollector) ParseError(e *ParseError) {
	c.Errors = append(c.Errors, *e)
}
