package tokenizer

import (
	"strings"
)

//go:generate stringer -type=TokenType
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	EndOfFileToken
	CommentToken
	DoctypeToken
)

// Missing marks a doctype name, public identifier, or system identifier
// that was never seen in the input, which the spec keeps distinct from one
// that was present but empty.
const Missing = "MISSING"

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// Attribute is one name/value pair on a start tag, in the order it was
// lexed. Names are unique within a token; repeats are dropped where they
// are lexed (first occurrence wins).
type Attribute struct {
	Name  string
	Value string
}

// Token is a concrete token that is ready to be emitted. A token is built
// once, handed to the sink once, and never retained by the tokenizer
// afterwards.
type Token struct {
	Type             TokenType
	Attributes       []Attribute
	TagName          string
	PublicIdentifier string
	SystemIdentifier string
	ForceQuirks      bool
	SelfClosing      bool
	Data             string
}

// Attr returns the value of the named attribute and whether it is present.
func (t *Token) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// TokenBuilder accumulates the pieces of the token currently being lexed:
// tag name, attribute in progress, comment or doctype data, the character
// reference temp buffer, and the numeric reference code.
type TokenBuilder struct {
	attributes     []Attribute
	attributeKey   strings.Builder
	attributeValue strings.Builder
	name           strings.Builder
	nameSet        bool
	data           strings.Builder
	tempBuffer     strings.Builder
	publicID       strings.Builder
	systemID       strings.Builder
	selfClosing    bool
	forceQuirks    bool
	skipAttr       bool
	curTagType     tagType
	charRefCode    int
}

// NewTokenBuilder returns a builder ready for the first token.
func NewTokenBuilder() *TokenBuilder {
	b := &TokenBuilder{}
	b.Reset()
	return b
}

// Reset clears everything accumulated for the current token. The temp
// buffer is left alone; the character reference states own its lifetime and
// a reference can begin before a tag token is abandoned.
func (t *TokenBuilder) Reset() {
	t.attributes = t.attributes[:0]
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	// public and system identifiers start out missing, not empty
	t.publicID.Reset()
	t.systemID.Reset()
	t.publicID.WriteString(Missing)
	t.systemID.WriteString(Missing)
	t.data.Reset()
	t.name.Reset()
	t.nameSet = false
	t.selfClosing = false
	t.forceQuirks = false
	t.skipAttr = false
}

// EnableSelfClosing changes the self-closing flag to "set".
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks changes the force-quirks flag to "set".
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WritePublicIdentifierEmpty resets the public identifier from missing to
// present but empty; the quote that opens the identifier triggers this.
func (t *TokenBuilder) WritePublicIdentifierEmpty() {
	t.publicID.Reset()
}

// WriteSystemIdentifierEmpty resets the system identifier from missing to
// present but empty.
func (t *TokenBuilder) WriteSystemIdentifierEmpty() {
	t.systemID.Reset()
}

// WritePublicIdentifier appends a rune to the public identifier.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.publicID.WriteRune(r)
}

// WriteSystemIdentifier appends a rune to the system identifier.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.systemID.WriteRune(r)
}

// WriteAttributeName appends a rune to the current attribute's name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attributeKey.WriteRune(r)
}

// WriteData appends a rune to the current data section.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteAttributeValue appends a rune to the current attribute's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attributeValue.WriteRune(r)
}

// SkipDuplicateAttribute checks the attribute name just finished against
// the ones already committed. On a repeat it flags the pending attribute to
// be dropped at commit and reports true so the caller can raise the parse
// error.
func (t *TokenBuilder) SkipDuplicateAttribute() bool {
	name := t.attributeKey.String()
	for _, a := range t.attributes {
		if a.Name == name {
			t.skipAttr = true
			return true
		}
	}
	return false
}

// WriteName appends a rune to the tag or doctype name.
func (t *TokenBuilder) WriteName(r rune) {
	t.nameSet = true
	t.name.WriteRune(r)
}

// CommitAttribute finishes the pending name/value pair, appending it in
// lexing order unless it was flagged as a duplicate.
func (t *TokenBuilder) CommitAttribute() {
	if !t.skipAttr {
		if k := t.attributeKey.String(); k != "" {
			t.attributes = append(t.attributes, Attribute{Name: k, Value: t.attributeValue.String()})
		}
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.skipAttr = false
}

// WriteTempBuffer appends a rune to the temporary buffer.
func (t *TokenBuilder) WriteTempBuffer(r rune) {
	t.tempBuffer.WriteRune(r)
}

// WriteTempBufferString appends a whole string to the temporary buffer.
func (t *TokenBuilder) WriteTempBufferString(s string) {
	t.tempBuffer.WriteString(s)
}

// ResetTempBuffer clears the temporary buffer for the next state that needs
// it.
func (t *TokenBuilder) ResetTempBuffer() {
	t.tempBuffer.Reset()
}

// TempBuffer returns the current temporary buffer contents.
func (t *TokenBuilder) TempBuffer() string {
	return t.tempBuffer.String()
}

// SetCharRef sets the numeric character reference code.
func (t *TokenBuilder) SetCharRef(i int) {
	t.charRefCode = i
}

// GetCharRef returns the numeric character reference code.
func (t *TokenBuilder) GetCharRef() int {
	return t.charRefCode
}

// AddToCharRef adds a digit value to the numeric reference code, saturating
// above the Unicode range so a long run of digits cannot wrap around into a
// valid code point.
func (t *TokenBuilder) AddToCharRef(i int) {
	t.charRefCode += i
	if t.charRefCode > 0x10FFFF {
		t.charRefCode = 0x110000
	}
}

// MultByCharRef multiplies the numeric reference code by the radix,
// saturating above the Unicode range.
func (t *TokenBuilder) MultByCharRef(i int) {
	t.charRefCode *= i
	if t.charRefCode > 0x10FFFF {
		t.charRefCode = 0x110000
	}
}

// StartTagToken creates a start tag token from the builder contents.
func (t *TokenBuilder) StartTagToken() Token {
	t.CommitAttribute()
	attrs := make([]Attribute, len(t.attributes))
	copy(attrs, t.attributes)
	return Token{
		Type:        StartTagToken,
		TagName:     t.name.String(),
		Attributes:  attrs,
		SelfClosing: t.selfClosing,
	}
}

// EndTagToken creates an end tag token from the builder contents. The
// emitter drops attributes and the self-closing flag from end tags; they
// are carried here so it can tell whether to report them.
func (t *TokenBuilder) EndTagToken() Token {
	t.CommitAttribute()
	attrs := make([]Attribute, len(t.attributes))
	copy(attrs, t.attributes)
	return Token{
		Type:        EndTagToken,
		TagName:     t.name.String(),
		Attributes:  attrs,
		SelfClosing: t.selfClosing,
	}
}

// CharacterToken creates a character token carrying a run of text.
func (t *TokenBuilder) CharacterToken(data string) Token {
	return Token{
		Type: CharacterToken,
		Data: data,
	}
}

// EndOfFileToken creates an end of file token.
func (t *TokenBuilder) EndOfFileToken() Token {
	return Token{
		Type: EndOfFileToken,
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() Token {
	return Token{
		Type: CommentToken,
		Data: t.data.String(),
	}
}

// DoctypeToken creates a doctype token from the builder contents. A name
// that was never written comes out as Missing, matching the identifiers.
func (t *TokenBuilder) DoctypeToken() Token {
	name := t.name.String()
	if !t.nameSet {
		name = Missing
	}
	return Token{
		Type:             DoctypeToken,
		TagName:          name,
		ForceQuirks:      t.forceQuirks,
		PublicIdentifier: t.publicID.String(),
		SystemIdentifier: t.systemID.String(),
	}
}
