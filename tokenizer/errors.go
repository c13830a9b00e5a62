package tokenizer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a parse error from the HTML tokenization section of
// the WHATWG spec. Parse errors are diagnostics only; the tokenizer always
// recovers the way the spec prescribes and keeps going.
// See: https://html.spec.whatwg.org/multipage/parsing.html#parse-errors
type ErrorCode string

const (
	// ErrAbruptClosingOfEmptyComment indicates <!--> or <!---> closed a comment early.
	ErrAbruptClosingOfEmptyComment ErrorCode = "abrupt-closing-of-empty-comment"
	// ErrAbruptDoctypePublicIdentifier indicates '>' ended a doctype public identifier.
	ErrAbruptDoctypePublicIdentifier ErrorCode = "abrupt-doctype-public-identifier"
	// ErrAbruptDoctypeSystemIdentifier indicates '>' ended a doctype system identifier.
	ErrAbruptDoctypeSystemIdentifier ErrorCode = "abrupt-doctype-system-identifier"
	// ErrAbsenceOfDigitsInNumericCharacterReference indicates &# with no digits.
	ErrAbsenceOfDigitsInNumericCharacterReference ErrorCode = "absence-of-digits-in-numeric-character-reference"
	// ErrCDATAInHTMLContent indicates a CDATA section outside foreign content.
	ErrCDATAInHTMLContent ErrorCode = "cdata-in-html-content"
	// ErrCharacterReferenceOutsideUnicodeRange indicates a numeric reference above U+10FFFF.
	ErrCharacterReferenceOutsideUnicodeRange ErrorCode = "character-reference-outside-unicode-range"
	// ErrControlCharacterInInputStream indicates a control character in the input.
	ErrControlCharacterInInputStream ErrorCode = "control-character-in-input-stream"
	// ErrControlCharacterReference indicates a numeric reference to a control character.
	ErrControlCharacterReference ErrorCode = "control-character-reference"
	// ErrDuplicateAttribute indicates a repeated attribute name; the repeat is dropped.
	ErrDuplicateAttribute ErrorCode = "duplicate-attribute"
	// ErrEndTagWithAttributes indicates attributes on an end tag; they are dropped.
	ErrEndTagWithAttributes ErrorCode = "end-tag-with-attributes"
	// ErrEndTagWithTrailingSolidus indicates </tag/>; the flag is dropped.
	ErrEndTagWithTrailingSolidus ErrorCode = "end-tag-with-trailing-solidus"
	// ErrEOFBeforeTagName indicates end of input right after < or </.
	ErrEOFBeforeTagName ErrorCode = "eof-before-tag-name"
	// ErrEOFInCDATA indicates end of input inside a CDATA section.
	ErrEOFInCDATA ErrorCode = "eof-in-cdata"
	// ErrEOFInComment indicates end of input inside a comment.
	ErrEOFInComment ErrorCode = "eof-in-comment"
	// ErrEOFInDoctype indicates end of input inside a doctype.
	ErrEOFInDoctype ErrorCode = "eof-in-doctype"
	// ErrEOFInScriptHTMLCommentLikeText indicates end of input inside <script><!-- text.
	ErrEOFInScriptHTMLCommentLikeText ErrorCode = "eof-in-script-html-comment-like-text"
	// ErrEOFInTag indicates end of input inside a tag; the partial tag is dropped.
	ErrEOFInTag ErrorCode = "eof-in-tag"
	// ErrIncorrectlyClosedComment indicates a comment closed by --!>.
	ErrIncorrectlyClosedComment ErrorCode = "incorrectly-closed-comment"
	// ErrIncorrectlyOpenedComment indicates <! not opening a comment, doctype, or CDATA.
	ErrIncorrectlyOpenedComment ErrorCode = "incorrectly-opened-comment"
	// ErrInvalidCharacterSequenceAfterDoctypeName indicates junk where PUBLIC/SYSTEM belongs.
	ErrInvalidCharacterSequenceAfterDoctypeName ErrorCode = "invalid-character-sequence-after-doctype-name"
	// ErrInvalidFirstCharacterOfTagName indicates < followed by a non-letter.
	ErrInvalidFirstCharacterOfTagName ErrorCode = "invalid-first-character-of-tag-name"
	// ErrMissingAttributeValue indicates an attribute value that stops at = .
	ErrMissingAttributeValue ErrorCode = "missing-attribute-value"
	// ErrMissingDoctypeName indicates a doctype without a name.
	ErrMissingDoctypeName ErrorCode = "missing-doctype-name"
	// ErrMissingDoctypePublicIdentifier indicates PUBLIC with no identifier following.
	ErrMissingDoctypePublicIdentifier ErrorCode = "missing-doctype-public-identifier"
	// ErrMissingDoctypeSystemIdentifier indicates SYSTEM with no identifier following.
	ErrMissingDoctypeSystemIdentifier ErrorCode = "missing-doctype-system-identifier"
	// ErrMissingEndTagName indicates </>.
	ErrMissingEndTagName ErrorCode = "missing-end-tag-name"
	// ErrMissingQuoteBeforeDoctypePublicIdentifier indicates an unquoted public identifier.
	ErrMissingQuoteBeforeDoctypePublicIdentifier ErrorCode = "missing-quote-before-doctype-public-identifier"
	// ErrMissingQuoteBeforeDoctypeSystemIdentifier indicates an unquoted system identifier.
	ErrMissingQuoteBeforeDoctypeSystemIdentifier ErrorCode = "missing-quote-before-doctype-system-identifier"
	// ErrMissingSemicolonAfterCharacterReference indicates a reference resolved without ; .
	ErrMissingSemicolonAfterCharacterReference ErrorCode = "missing-semicolon-after-character-reference"
	// ErrMissingWhitespaceAfterDoctypePublicKeyword indicates PUBLIC"..." run together.
	ErrMissingWhitespaceAfterDoctypePublicKeyword ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	// ErrMissingWhitespaceAfterDoctypeSystemKeyword indicates SYSTEM"..." run together.
	ErrMissingWhitespaceAfterDoctypeSystemKeyword ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	// ErrMissingWhitespaceBeforeDoctypeName indicates <!DOCTYPEhtml run together.
	ErrMissingWhitespaceBeforeDoctypeName ErrorCode = "missing-whitespace-before-doctype-name"
	// ErrMissingWhitespaceBetweenAttributes indicates attributes run together.
	ErrMissingWhitespaceBetweenAttributes ErrorCode = "missing-whitespace-between-attributes"
	// ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers indicates "..."".." run together.
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	// ErrNestedComment indicates <!-- inside a comment.
	ErrNestedComment ErrorCode = "nested-comment"
	// ErrNoncharacterCharacterReference indicates a numeric reference to a noncharacter.
	ErrNoncharacterCharacterReference ErrorCode = "noncharacter-character-reference"
	// ErrNoncharacterInInputStream indicates a noncharacter in the input.
	ErrNoncharacterInInputStream ErrorCode = "noncharacter-in-input-stream"
	// ErrNullCharacterReference indicates &#0; which resolves to U+FFFD.
	ErrNullCharacterReference ErrorCode = "null-character-reference"
	// ErrSurrogateCharacterReference indicates a numeric reference to a surrogate.
	ErrSurrogateCharacterReference ErrorCode = "surrogate-character-reference"
	// ErrSurrogateInInputStream indicates a surrogate in the input.
	ErrSurrogateInInputStream ErrorCode = "surrogate-in-input-stream"
	// ErrUnexpectedCharacterAfterDoctypeSystemIdentifier indicates junk before > in a doctype.
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier ErrorCode = "unexpected-character-after-doctype-system-identifier"
	// ErrUnexpectedCharacterInAttributeName indicates " ' or < in an attribute name.
	ErrUnexpectedCharacterInAttributeName ErrorCode = "unexpected-character-in-attribute-name"
	// ErrUnexpectedCharacterInUnquotedAttributeValue indicates " ' < = or ` unquoted.
	ErrUnexpectedCharacterInUnquotedAttributeValue ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	// ErrUnexpectedEqualsSignBeforeAttributeName indicates an attribute name starting with = .
	ErrUnexpectedEqualsSignBeforeAttributeName ErrorCode = "unexpected-equals-sign-before-attribute-name"
	// ErrUnexpectedNullCharacter indicates a NUL handled per state.
	ErrUnexpectedNullCharacter ErrorCode = "unexpected-null-character"
	// ErrUnexpectedQuestionMarkInsteadOfTagName indicates <? which becomes a bogus comment.
	ErrUnexpectedQuestionMarkInsteadOfTagName ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	// ErrUnexpectedSolidusInTag indicates a stray / inside a tag.
	ErrUnexpectedSolidusInTag ErrorCode = "unexpected-solidus-in-tag"
	// ErrUnknownNamedCharacterReference indicates &name; not in the reference table.
	ErrUnknownNamedCharacterReference ErrorCode = "unknown-named-character-reference"
)

// ParseError is a non-fatal diagnostic tied to a position in the input.
// The tokenizer has already applied the spec's recovery rule by the time one
// is reported, so a ParseError is never returned from Feed.
type ParseError struct {
	Code    ErrorCode
	Line    int
	Column  int
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Code)
}

// ErrUnderrun signals that the input is exhausted mid-construct and the
// stream has not been finalized. It is the InputStream's "need more input"
// result, resolved by a later Feed; it is not a failure and never escapes
// from Feed.
var ErrUnderrun = errors.New("need more input")

// A UsageError reports misuse of the API by the caller: feeding after the
// final chunk, re-entering Feed from a sink callback, inserting when
// reentrant insertion is disabled, or invalid construction parameters. The
// tokenizer's state is not corrupted by the failed call.
type UsageError struct {
	Op  string
	err error
}

func (e *UsageError) Error() string { return e.Op + ": " + e.err.Error() }

func (e *UsageError) Unwrap() error { return e.err }

func usageErrorf(op, format string, args ...interface{}) error {
	return &UsageError{Op: op, err: errors.Errorf(format, args...)}
}

// IsUsageError reports whether any error in err's chain is a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
