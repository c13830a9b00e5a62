// Package tokenizer lexes HTML the way the WHATWG HTML standard says to:
// the same states, the same transitions, and the same recovery on malformed
// markup, over input that arrives in chunks of any size.
package tokenizer

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options configures a Tokenizer at construction.
type Options struct {
	// InitialState is the state the tokenizer starts in. The zero value is
	// DataState; fragment parsing starts in RCDATAState, RawTextState,
	// ScriptDataState or PlaintextState depending on the context element.
	InitialState State

	// LastStartTag seeds the "appropriate end tag" check, for fragment
	// parsing inside an element like textarea or script.
	LastStartTag string

	// ScriptingEnabled controls whether a noscript start tag switches the
	// tokenizer to RawTextState, mirroring a browser with scripting on.
	ScriptingEnabled bool

	// AllowReentrantInsertion permits Insert calls from inside a sink
	// callback, which is how document.write behaves.
	AllowReentrantInsertion bool

	// DiscardBOM drops a U+FEFF byte order mark at the very start of the
	// input.
	DiscardBOM bool

	// ExactErrors turns on the per-code-point preprocessing checks for
	// noncharacters and controls in the input stream. They cost a branch
	// per rune, so they are off unless asked for.
	ExactErrors bool

	// Profile accumulates wall time per state, readable through
	// StateTimes.
	Profile bool

	// Logger receives trace and debug output. Nil discards it.
	Logger *logrus.Logger
}

// DefaultOptions returns the options a document parse would use: scripting
// on, the byte order mark discarded, everything else off.
func DefaultOptions() Options {
	return Options{
		ScriptingEnabled: true,
		DiscardBOM:       true,
	}
}

// Tokenizer holds state for the various states of the tokenizer.
//
// A Tokenizer is created with NewTokenizer and driven by Feed. Tokens reach
// the sink during the Feed call that completes them; a token that straddles
// a chunk boundary is held until the chunk that finishes it. Once the final
// chunk has been processed and the end of file token delivered, Done
// reports true and further feeding fails with a UsageError. There is no
// teardown beyond dropping the instance.
type Tokenizer struct {
	opts                      Options
	sink                      TokenSink
	errs                      ErrorReporter
	done                      bool
	running                   bool
	waiting                   bool
	returnState, currentState State
	override                  *State
	stream                    *InputStream
	tokenBuilder              *TokenBuilder
	lastEmittedStartTagName   string
	inForeignContent          bool
	charBuf                   strings.Builder
	stateTimes                map[State]time.Duration
	log                       *logrus.Logger
}

// NewTokenizer creates a tokenizer that delivers tokens to sink. If sink
// also implements ErrorReporter it receives parse errors too.
func NewTokenizer(sink TokenSink, opts Options) (*Tokenizer, error) {
	if sink == nil {
		return nil, usageErrorf("NewTokenizer", "sink must not be nil")
	}
	if opts.InitialState > NumericCharacterReferenceEndState {
		return nil, usageErrorf("NewTokenizer", "unknown initial state %d", opts.InitialState)
	}
	if opts.InitialState >= CharacterReferenceState {
		return nil, usageErrorf("NewTokenizer", "cannot start in %s, a character reference needs a state to return to", opts.InitialState)
	}
	z := &Tokenizer{
		opts:                    opts,
		sink:                    sink,
		currentState:            opts.InitialState,
		stream:                  NewInputStream(),
		tokenBuilder:            NewTokenBuilder(),
		lastEmittedStartTagName: strings.ToLower(opts.LastStartTag),
		log:                     opts.Logger,
	}
	if z.log == nil {
		z.log = logrus.New()
		z.log.SetOutput(io.Discard)
	}
	if er, ok := sink.(ErrorReporter); ok {
		z.errs = er
	}
	if opts.Profile {
		z.stateTimes = make(map[State]time.Duration)
	}
	z.stream.discardBOM = opts.DiscardBOM
	z.stream.exactErrors = opts.ExactErrors
	z.stream.report = z.parseError
	return z, nil
}

// Feed hands the tokenizer the next chunk of the document and runs the
// state machine as far as the input allows. Tokens and parse errors are
// delivered synchronously, on this goroutine, before Feed returns. final
// marks the chunk as the last one; feeding anything after that is a
// UsageError.
func (z *Tokenizer) Feed(chunk string, final bool) error {
	if z.running {
		return usageErrorf("Feed", "called from inside a sink callback, use Insert")
	}
	if z.done || z.stream.Finalized() {
		return usageErrorf("Feed", "input was already final")
	}
	if err := z.stream.Feed(chunk); err != nil {
		return err
	}
	if final {
		z.stream.Finalize()
	}
	z.log.WithFields(logrus.Fields{"len": len(chunk), "final": final}).Debug("[TOKEN] feed")
	z.run()
	return nil
}

// Insert splices text into the stream at the read cursor, ahead of
// everything not yet consumed. Called from inside a sink callback it is
// the document.write case and requires AllowReentrantInsertion; called
// between feeds it just runs the machine over the new text.
func (z *Tokenizer) Insert(text string) error {
	if z.done {
		return usageErrorf("Insert", "input was already final")
	}
	if z.running && !z.opts.AllowReentrantInsertion {
		return usageErrorf("Insert", "reentrant insertion is disabled")
	}
	if err := z.stream.Insert(text); err != nil {
		return err
	}
	if !z.running {
		z.run()
	}
	return nil
}

// Done reports whether the end of file token has been delivered.
func (z *Tokenizer) Done() bool {
	return z.done
}

// SetState overrides the state the tokenizer will be in when it consumes
// the next code point. Tree builders call this between a token being
// emitted and the next consume, either from inside the sink callback or
// between feeds.
func (z *Tokenizer) SetState(s State) error {
	if z.done {
		return usageErrorf("SetState", "input was already final")
	}
	if s > NumericCharacterReferenceEndState {
		return usageErrorf("SetState", "unknown state %d", s)
	}
	next := s
	z.override = &next
	return nil
}

// SetForeignContent tells the tokenizer whether the adjusted current node
// is outside the HTML namespace. <![CDATA[ only opens a real CDATA section
// in foreign content; in HTML content it is a bogus comment.
func (z *Tokenizer) SetForeignContent(foreign bool) {
	z.inForeignContent = foreign
}

// SetLastStartTag overrides the tag name the "appropriate end tag" check
// compares against. Feeding a document keeps this current automatically;
// the knob exists for fragment cases.
func (z *Tokenizer) SetLastStartTag(name string) {
	z.lastEmittedStartTagName = strings.ToLower(name)
}

// Position reports the line, column and rune offset the next code point
// will be consumed at. Lines and columns start at 1.
func (z *Tokenizer) Position() (line, col, offset int) {
	return z.stream.Position()
}

// StateTimes returns the accumulated wall time spent in each state, or nil
// when the tokenizer was built without Profile.
func (z *Tokenizer) StateTimes() map[State]time.Duration {
	if z.stateTimes == nil {
		return nil
	}
	times := make(map[State]time.Duration, len(z.stateTimes))
	for s, d := range z.stateTimes {
		times[s] = d
	}
	return times
}

// run drives the state machine until the input underruns or the end of
// file token has been emitted.
func (z *Tokenizer) run() {
	z.running = true
	z.waiting = false
	defer func() { z.running = false }()
	for {
		if z.override != nil {
			z.currentState = *z.override
			z.override = nil
		}
		if z.done || z.waiting {
			return
		}
		if z.currentState == NumericCharacterReferenceEndState {
			// the only state that is not supposed to consume anything off
			// the bat, so it runs before the next read.
			var start time.Time
			if z.stateTimes != nil {
				start = time.Now()
			}
			z.currentState = z.numericCharacterReferenceEndStep()
			if z.stateTimes != nil {
				z.stateTimes[NumericCharacterReferenceEndState] += time.Since(start)
			}
			continue
		}
		r, err := z.stream.Next()
		if err != nil {
			if errors.Is(err, ErrUnderrun) {
				return
			}
			z.processRune(0, true)
			continue
		}
		z.processRune(r, false)
	}
}

func (z *Tokenizer) processRune(r rune, eof bool) {
	reconsume := true
	for reconsume {
		prev := z.currentState
		var start time.Time
		if z.stateTimes != nil {
			start = time.Now()
		}
		reconsume, z.currentState = z.stateToParser(prev)(r, eof)
		if z.stateTimes != nil {
			z.stateTimes[prev] += time.Since(start)
		}
		if z.log.IsLevelEnabled(logrus.TraceLevel) {
			z.log.WithFields(logrus.Fields{
				"rune": string(r),
				"eof":  eof,
				"from": prev.String(),
				"to":   z.currentState.String(),
			}).Trace("[TOKEN] step")
		}
		if z.waiting {
			return
		}
	}
}

// suspend puts back the rune the state was handed and parks the machine in
// resume until more input arrives. The state will see the same rune again
// on the next feed.
func (z *Tokenizer) suspend(r rune, resume State) (bool, State) {
	z.stream.Unread(r)
	z.waiting = true
	return false, resume
}

// parseError reports a parse error at the current stream position. Parse
// errors never stop the tokenizer.
func (z *Tokenizer) parseError(code ErrorCode) {
	line, col, offset := z.stream.Position()
	e := &ParseError{Code: code, Line: line, Column: col, Offset: offset}
	z.log.WithFields(logrus.Fields{"code": string(code), "line": line, "col": col}).Debug("[TOKEN] parse error")
	if z.errs != nil {
		z.errs.ParseError(e)
	}
}

func (z *Tokenizer) stateToParser(state State) stateHandler {
	switch state {
	case DataState:
		return z.dataStateParser
	case RCDATAState:
		return z.rcDataStateParser
	case RawTextState:
		return z.rawTextStateParser
	case ScriptDataState:
		return z.scriptDataStateParser
	case PlaintextState:
		return z.plaintextStateParser
	case TagOpenState:
		return z.tagOpenStateParser
	case EndTagOpenState:
		return z.endTagOpenStateParser
	case TagNameState:
		return z.tagNameStateParser
	case RCDATALessThanSignState:
		return z.rcDataLessThanSignStateParser
	case RCDATAEndTagOpenState:
		return z.rcDataEndTagOpenStateParser
	case RCDATAEndTagNameState:
		return z.rcDataEndTagNameStateParser
	case RawTextLessThanSignState:
		return z.rawTextLessThanSignStateParser
	case RawTextEndTagOpenState:
		return z.rawTextEndTagOpenStateParser
	case RawTextEndTagNameState:
		return z.rawTextEndTagNameStateParser
	case ScriptDataLessThanSignState:
		return z.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return z.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return z.scriptDataEndTagNameStateParser
	case ScriptDataEscapeStartState:
		return z.scriptDataEscapeStartStateParser
	case ScriptDataEscapeStartDashState:
		return z.scriptDataEscapeStartDashStateParser
	case ScriptDataEscapedState:
		return z.scriptDataEscapedStateParser
	case ScriptDataEscapedDashState:
		return z.scriptDataEscapedDashStateParser
	case ScriptDataEscapedDashDashState:
		return z.scriptDataEscapedDashDashStateParser
	case ScriptDataEscapedLessThanSignState:
		return z.scriptDataEscapedLessThanSignStateParser
	case ScriptDataEscapedEndTagOpenState:
		return z.scriptDataEscapedEndTagOpenStateParser
	case ScriptDataEscapedEndTagNameState:
		return z.scriptDataEscapedEndTagNameStateParser
	case ScriptDataDoubleEscapeStartState:
		return z.scriptDataDoubleEscapeStartStateParser
	case ScriptDataDoubleEscapedState:
		return z.scriptDataDoubleEscapedStateParser
	case ScriptDataDoubleEscapedDashState:
		return z.scriptDataDoubleEscapedDashStateParser
	case ScriptDataDoubleEscapedDashDashState:
		return z.scriptDataDoubleEscapedDashDashStateParser
	case ScriptDataDoubleEscapedLessThanSignState:
		return z.scriptDataDoubleEscapedLessThanSignStateParser
	case ScriptDataDoubleEscapeEndState:
		return z.scriptDataDoubleEscapeEndStateParser
	case BeforeAttributeNameState:
		return z.beforeAttributeNameStateParser
	case AttributeNameState:
		return z.attributeNameStateParser
	case AfterAttributeNameState:
		return z.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return z.beforeAttributeValueStateParser
	case AttributeValueDoubleQuotedState:
		return z.attributeValueDoubleQuotedStateParser
	case AttributeValueSingleQuotedState:
		return z.attributeValueSingleQuotedStateParser
	case AttributeValueUnquotedState:
		return z.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return z.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return z.selfClosingStartTagStateParser
	case BogusCommentState:
		return z.bogusCommentStateParser
	case MarkupDeclarationOpenState:
		return z.markupDeclarationOpenStateParser
	case CommentStartState:
		return z.commentStartStateParser
	case CommentStartDashState:
		return z.commentStartDashStateParser
	case CommentState:
		return z.commentStateParser
	case CommentLessThanSignState:
		return z.commentLessThanSignStateParser
	case CommentLessThanSignBangState:
		return z.commentLessThanSignBangStateParser
	case CommentLessThanSignBangDashState:
		return z.commentLessThanSignBangDashStateParser
	case CommentLessThanSignBangDashDashState:
		return z.commentLessThanSignBangDashDashStateParser
	case CommentEndDashState:
		return z.commentEndDashStateParser
	case CommentEndState:
		return z.commentEndStateParser
	case CommentEndBangState:
		return z.commentEndBangStateParser
	case DoctypeState:
		return z.doctypeStateParser
	case BeforeDoctypeNameState:
		return z.beforeDoctypeNameStateParser
	case DoctypeNameState:
		return z.doctypeNameStateParser
	case AfterDoctypeNameState:
		return z.afterDoctypeNameStateParser
	case AfterDoctypePublicKeywordState:
		return z.afterDoctypePublicKeywordStateParser
	case BeforeDoctypePublicIdentifierState:
		return z.beforeDoctypePublicIdentifierStateParser
	case DoctypePublicIdentifierDoubleQuotedState:
		return z.doctypePublicIdentifierDoubleQuotedStateParser
	case DoctypePublicIdentifierSingleQuotedState:
		return z.doctypePublicIdentifierSingleQuotedStateParser
	case AfterDoctypePublicIdentifierState:
		return z.afterDoctypePublicIdentifierStateParser
	case BetweenDoctypePublicAndSystemIdentifiersState:
		return z.betweenDoctypePublicAndSystemIdentifiersStateParser
	case AfterDoctypeSystemKeywordState:
		return z.afterDoctypeSystemKeywordStateParser
	case BeforeDoctypeSystemIdentifierState:
		return z.beforeDoctypeSystemIdentifierStateParser
	case DoctypeSystemIdentifierDoubleQuotedState:
		return z.doctypeSystemIdentifierDoubleQuotedStateParser
	case DoctypeSystemIdentifierSingleQuotedState:
		return z.doctypeSystemIdentifierSingleQuotedStateParser
	case AfterDoctypeSystemIdentifierState:
		return z.afterDoctypeSystemIdentifierStateParser
	case BogusDoctypeState:
		return z.bogusDoctypeStateParser
	case CDATASectionState:
		return z.cdataSectionStateParser
	case CDATASectionBracketState:
		return z.cdataSectionBracketStateParser
	case CDATASectionEndState:
		return z.cdataSectionEndStateParser
	case CharacterReferenceState:
		return z.characterReferenceStateParser
	case NamedCharacterReferenceState:
		return z.namedCharacterReferenceStateParser
	case AmbiguousAmpersandState:
		return z.ambiguousAmpersandStateParser
	case NumericCharacterReferenceState:
		return z.numericCharacterReferenceStateParser
	case HexadecimalCharacterReferenceStartState:
		return z.hexadecimalCharacterReferenceStartStateParser
	case DecimalCharacterReferenceStartState:
		return z.decimalCharacterReferenceStartStateParser
	case HexadecimalCharacterReferenceState:
		return z.hexadecimalCharacterReferenceStateParser
	case DecimalCharacterReferenceState:
		return z.decimalCharacterReferenceStateParser
	case NumericCharacterReferenceEndState:
		return z.numericCharacterReferenceEndStateParser
	}

	return nil
}

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}

	switch code {
	case 0xFFFE, 0xFFFF, 0x1FFFE, 0x1FFFF, 0x2FFFE, 0x2FFFF, 0x3FFFE, 0x3FFFF, 0x4FFFE, 0x4FFFF, 0x5FFFE, 0x5FFFF, 0x6FFFE, 0x6FFFF, 0x7FFFE, 0x7FFFF, 0x8FFFE, 0x8FFFF, 0x9FFFE, 0x9FFFF, 0xAFFFE, 0xAFFFF, 0xBFFFE, 0xBFFFF, 0xCFFFE, 0xCFFFF, 0xDFFFE, 0xDFFFF, 0xEFFFE, 0xEFFFF, 0xFFFFE, 0xFFFFF, 0x10FFFE, 0x10FFFF:
		return true
	default:
		return false
	}
}

func isC0Control(code int) bool {
	if code >= 0x00 && code <= 0x1F {
		return true
	}

	return false
}

func isControl(code int) bool {
	if isC0Control(code) || (code >= 0x7F && code <= 0x9F) {
		return true
	}

	return false
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isSurrogate(code int) bool {
	if code >= 0xD800 && code <= 0xDFFF {
		return true
	}
	return false
}

func isASCIIAlphanumeric(code int) bool {
	switch {
	case code >= '0' && code <= '9':
		return true
	case code >= 'a' && code <= 'z':
		return true
	case code >= 'A' && code <= 'Z':
		return true
	default:
		return false
	}
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 0x20
	}
	return r
}

// runesEqualFold reports whether rs spells out pat ignoring ASCII case.
func runesEqualFold(rs []rune, pat string) bool {
	ps := []rune(pat)
	if len(rs) != len(ps) {
		return false
	}
	for i := range ps {
		if asciiLower(rs[i]) != asciiLower(ps[i]) {
			return false
		}
	}
	return true
}

// viablePrefixFold reports whether rs is a prefix of pat ignoring ASCII
// case. A short peek that is still a viable prefix has to wait for more
// input before the lookahead can commit either way.
func viablePrefixFold(rs []rune, pat string) bool {
	ps := []rune(pat)
	if len(rs) > len(ps) {
		return false
	}
	for i := range rs {
		if asciiLower(rs[i]) != asciiLower(ps[i]) {
			return false
		}
	}
	return true
}

// viablePrefix is the case-sensitive version of viablePrefixFold.
func viablePrefix(rs []rune, pat string) bool {
	ps := []rune(pat)
	if len(rs) > len(ps) {
		return false
	}
	for i := range rs {
		if rs[i] != ps[i] {
			return false
		}
	}
	return true
}

func wasConsumedByAttribute(returnState State) bool {
	switch returnState {
	case AttributeValueDoubleQuotedState, AttributeValueSingleQuotedState, AttributeValueUnquotedState:
		return true
	}
	return false
}

func (z *Tokenizer) flushCodePointsAsCharacterReference() {
	if wasConsumedByAttribute(z.returnState) {
		for _, v := range z.tokenBuilder.TempBuffer() {
			z.tokenBuilder.WriteAttributeValue(v)
		}
	} else {
		z.emitString(z.tokenBuilder.TempBuffer())
	}
}

func (z *Tokenizer) isApprEndTagToken() bool {
	return z.lastEmittedStartTagName == z.tokenBuilder.name.String()
}

// emitChar appends one rune to the pending character run. Runs are handed
// to the sink as a single token when a non-character token interrupts
// them, at end of file, or when the run grows past charRunLimit; chunk
// boundaries never split a run.
func (z *Tokenizer) emitChar(r rune) {
	z.charBuf.WriteRune(r)
	if z.charBuf.Len() >= charRunLimit {
		z.flushChars()
	}
}

func (z *Tokenizer) emitString(s string) {
	z.charBuf.WriteString(s)
	if z.charBuf.Len() >= charRunLimit {
		z.flushChars()
	}
}

func (z *Tokenizer) flushChars() {
	if z.charBuf.Len() == 0 {
		return
	}
	tok := z.tokenBuilder.CharacterToken(z.charBuf.String())
	z.charBuf.Reset()
	z.deliver(&tok)
}

// deliver hands one token to the sink and records any state override the
// sink asks for. The end of file token finishes the tokenizer.
func (z *Tokenizer) deliver(tok *Token) {
	if z.log.IsLevelEnabled(logrus.DebugLevel) {
		z.log.WithFields(logrus.Fields{"type": tok.Type.String(), "tag": tok.TagName}).Debug("[TOKEN] emit")
	}
	var next *State
	switch tok.Type {
	case DoctypeToken:
		next = z.sink.Doctype(tok)
	case StartTagToken:
		next = z.sink.StartTag(tok)
	case EndTagToken:
		next = z.sink.EndTag(tok)
	case CommentToken:
		next = z.sink.Comment(tok)
	case CharacterToken:
		next = z.sink.Characters(tok)
	case EndOfFileToken:
		next = z.sink.EndOfFile(tok)
		z.done = true
	}
	if next != nil {
		z.override = next
	}
}

func (z *Tokenizer) emitComment() {
	z.flushChars()
	tok := z.tokenBuilder.CommentToken()
	z.deliver(&tok)
}

func (z *Tokenizer) emitDoctype() {
	z.flushChars()
	tok := z.tokenBuilder.DoctypeToken()
	z.deliver(&tok)
}

func (z *Tokenizer) emitEOF() {
	z.flushChars()
	tok := z.tokenBuilder.EndOfFileToken()
	z.deliver(&tok)
}

// emitCurrentTag finishes the tag being built, hands it to the sink, and
// picks the state to continue in. A sink override wins; otherwise start
// tags for the raw text elements switch the tokenizer themselves, the way
// tree construction would.
func (z *Tokenizer) emitCurrentTag() State {
	z.flushChars()
	var tok Token
	switch z.tokenBuilder.curTagType {
	case startTag:
		tok = z.tokenBuilder.StartTagToken()
		z.lastEmittedStartTagName = tok.TagName
	case endTag:
		tok = z.tokenBuilder.EndTagToken()
		if len(tok.Attributes) > 0 {
			z.parseError(ErrEndTagWithAttributes)
			tok.Attributes = nil
		}
		if tok.SelfClosing {
			z.parseError(ErrEndTagWithTrailingSolidus)
			tok.SelfClosing = false
		}
	}
	z.deliver(&tok)
	if z.override != nil {
		next := *z.override
		z.override = nil
		return next
	}
	if tok.Type == StartTagToken {
		if next, ok := z.nextStateAfterStartTag(tok.TagName); ok {
			return next
		}
	}
	return DataState
}

// nextStateAfterStartTag returns the state a freshly emitted start tag
// switches the tokenizer to, per the rules tree construction applies to
// the raw text and escapable raw text elements.
func (z *Tokenizer) nextStateAfterStartTag(name string) (State, bool) {
	switch name {
	case "title", "textarea":
		return RCDATAState, true
	case "style", "xmp", "iframe", "noembed", "noframes":
		return RawTextState, true
	case "noscript":
		if z.opts.ScriptingEnabled {
			return RawTextState, true
		}
		return DataState, false
	case "script":
		return ScriptDataState, true
	case "plaintext":
		return PlaintextState, true
	default:
		return DataState, false
	}
}

func (z *Tokenizer) dataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '&':
		z.returnState = DataState
		return false, CharacterReferenceState
	case '<':
		return false, TagOpenState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar(r)
		return false, DataState
	default:
		z.emitChar(r)
		return false, DataState
	}
}

func (z *Tokenizer) rcDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '&':
		z.returnState = RCDATAState
		return false, CharacterReferenceState
	case '<':
		return false, RCDATALessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, RCDATAState
	default:
		z.emitChar(r)
		return false, RCDATAState
	}
}

func (z *Tokenizer) rawTextStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '<':
		return false, RawTextLessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, RawTextState
	default:
		z.emitChar(r)
		return false, RawTextState
	}
}

func (z *Tokenizer) scriptDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '<':
		return false, ScriptDataLessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataState
	default:
		z.emitChar(r)
		return false, ScriptDataState
	}
}

func (z *Tokenizer) plaintextStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, PlaintextState
	default:
		z.emitChar(r)
		return false, PlaintextState
	}
}

func (z *Tokenizer) tagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFBeforeTagName)
		z.emitChar('<')
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '!':
		return false, MarkupDeclarationOpenState
	case '/':
		return false, EndTagOpenState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		z.tokenBuilder.curTagType = startTag
		return true, TagNameState
	case '?':
		z.parseError(ErrUnexpectedQuestionMarkInsteadOfTagName)
		z.tokenBuilder.Reset()
		return true, BogusCommentState
	default:
		z.parseError(ErrInvalidFirstCharacterOfTagName)
		z.emitChar('<')
		return true, DataState
	}
}

func (z *Tokenizer) endTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFBeforeTagName)
		z.emitChar('<')
		z.emitChar('/')
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		z.tokenBuilder.curTagType = endTag
		return true, TagNameState
	case '>':
		z.parseError(ErrMissingEndTagName)
		return false, DataState
	default:
		z.parseError(ErrInvalidFirstCharacterOfTagName)
		z.tokenBuilder.Reset()
		return true, BogusCommentState
	}
}

func (z *Tokenizer) tagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020': // tab, line feed, form feed, space
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, z.emitCurrentTag()
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, TagNameState
	case '\u0000': // null
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteName('\uFFFD')
		return false, TagNameState
	default:
		z.tokenBuilder.WriteName(r)
		return false, TagNameState
	}
}

func (z *Tokenizer) rcDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar('<')
		return true, RCDATAState
	}
	switch r {
	case '/':
		z.tokenBuilder.ResetTempBuffer()
		return false, RCDATAEndTagOpenState
	default:
		z.emitChar('<')
		return true, RCDATAState
	}
}

func (z *Tokenizer) defaultRcDataEndTagOpenStateParser() (bool, State) {
	z.emitChar('<')
	z.emitChar('/')
	return true, RCDATAState
}

func (z *Tokenizer) rcDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultRcDataEndTagOpenStateParser()
	}
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		z.tokenBuilder.curTagType = endTag
		return true, RCDATAEndTagNameState
	default:
		return z.defaultRcDataEndTagOpenStateParser()
	}
}

func (z *Tokenizer) defaultRcDataEndTagNameStateCase() (bool, State) {
	z.emitChar('<')
	z.emitChar('/')
	z.emitString(z.tokenBuilder.TempBuffer())
	return true, RCDATAState
}

func (z *Tokenizer) rcDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultRcDataEndTagNameStateCase()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		if z.isApprEndTagToken() {
			return false, BeforeAttributeNameState
		}
		return z.defaultRcDataEndTagNameStateCase()
	case '/':
		if z.isApprEndTagToken() {
			return false, SelfClosingStartTagState
		}
		return z.defaultRcDataEndTagNameStateCase()
	case '>':
		if z.isApprEndTagToken() {
			return false, z.emitCurrentTag()
		}
		return z.defaultRcDataEndTagNameStateCase()
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.WriteTempBuffer(r)
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, RCDATAEndTagNameState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		z.tokenBuilder.WriteTempBuffer(r)
		z.tokenBuilder.WriteName(r)
		return false, RCDATAEndTagNameState
	default:
		return z.defaultRcDataEndTagNameStateCase()
	}
}

func (z *Tokenizer) rawTextLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar('<')
		return true, RawTextState
	}
	switch r {
	case '/':
		z.tokenBuilder.ResetTempBuffer()
		return false, RawTextEndTagOpenState
	default:
		z.emitChar('<')
		return true, RawTextState
	}
}

func (z *Tokenizer) defaultRawTextEndTagOpenStateParser() (bool, State) {
	z.emitChar('<')
	z.emitChar('/')
	return true, RawTextState
}

func (z *Tokenizer) rawTextEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultRawTextEndTagOpenStateParser()
	}
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		z.tokenBuilder.curTagType = endTag
		return true, RawTextEndTagNameState
	default:
		return z.defaultRawTextEndTagOpenStateParser()
	}
}

func (z *Tokenizer) defaultRawTextEndTagNameStateCase() (bool, State) {
	z.emitChar('<')
	z.emitChar('/')
	z.emitString(z.tokenBuilder.TempBuffer())
	return true, RawTextState
}

func (z *Tokenizer) rawTextEndTagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultRawTextEndTagNameStateCase()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		if z.isApprEndTagToken() {
			return false, BeforeAttributeNameState
		}
		return z.defaultRawTextEndTagNameStateCase()
	case '/':
		if z.isApprEndTagToken() {
			return false, SelfClosingStartTagState
		}
		return z.defaultRawTextEndTagNameStateCase()
	case '>':
		if z.isApprEndTagToken() {
			return false, z.emitCurrentTag()
		}
		return z.defaultRawTextEndTagNameStateCase()
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.WriteTempBuffer(r)
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, RawTextEndTagNameState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		z.tokenBuilder.WriteTempBuffer(r)
		z.tokenBuilder.WriteName(r)
		return false, RawTextEndTagNameState
	default:
		return z.defaultRawTextEndTagNameStateCase()
	}
}

func (z *Tokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar('<')
		return true, ScriptDataState
	}
	switch r {
	case '/':
		z.tokenBuilder.ResetTempBuffer()
		return false, ScriptDataEndTagOpenState
	case '!':
		z.emitChar('<')
		z.emitChar('!')
		return false, ScriptDataEscapeStartState
	default:
		z.emitChar('<')
		return true, ScriptDataState
	}
}

func (z *Tokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar('<')
		z.emitChar('/')
		return true, ScriptDataState
	}
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		z.tokenBuilder.curTagType = endTag
		return true, ScriptDataEndTagNameState
	default:
		z.emitChar('<')
		z.emitChar('/')
		return true, ScriptDataState
	}
}

func (z *Tokenizer) defaultScriptDataEndTagNameStateCase() (bool, State) {
	z.emitChar('<')
	z.emitChar('/')
	z.emitString(z.tokenBuilder.TempBuffer())
	return true, ScriptDataState
}

func (z *Tokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultScriptDataEndTagNameStateCase()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		if z.isApprEndTagToken() {
			return false, BeforeAttributeNameState
		}
		return z.defaultScriptDataEndTagNameStateCase()
	case '/':
		if z.isApprEndTagToken() {
			return false, SelfClosingStartTagState
		}
		return z.defaultScriptDataEndTagNameStateCase()
	case '>':
		if z.isApprEndTagToken() {
			return false, z.emitCurrentTag()
		}
		return z.defaultScriptDataEndTagNameStateCase()
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.WriteTempBuffer(r)
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, ScriptDataEndTagNameState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		z.tokenBuilder.WriteTempBuffer(r)
		z.tokenBuilder.WriteName(r)
		return false, ScriptDataEndTagNameState
	default:
		return z.defaultScriptDataEndTagNameStateCase()
	}
}

func (z *Tokenizer) scriptDataEscapeStartStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataEscapeStartDashState
	default:
		return true, ScriptDataState
	}
}

func (z *Tokenizer) scriptDataEscapeStartDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataEscapedDashDashState
	default:
		return true, ScriptDataState
	}
}

func (z *Tokenizer) scriptDataEscapedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInScriptHTMLCommentLikeText)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataEscapedDashState
	case '<':
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		z.emitChar(r)
		return false, ScriptDataEscapedState
	}
}

func (z *Tokenizer) scriptDataEscapedDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInScriptHTMLCommentLikeText)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataEscapedDashDashState
	case '<':
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		z.emitChar(r)
		return false, ScriptDataEscapedState
	}
}

func (z *Tokenizer) scriptDataEscapedDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInScriptHTMLCommentLikeText)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataEscapedDashDashState
	case '<':
		return false, ScriptDataEscapedLessThanSignState
	case '>':
		z.emitChar('>')
		return false, ScriptDataState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		z.emitChar(r)
		return false, ScriptDataEscapedState
	}
}

func (z *Tokenizer) scriptDataEscapedLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar('<')
		return true, ScriptDataEscapedState
	}
	switch r {
	case '/':
		z.tokenBuilder.ResetTempBuffer()
		return false, ScriptDataEscapedEndTagOpenState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.ResetTempBuffer()
		z.emitChar('<')
		return true, ScriptDataDoubleEscapeStartState
	default:
		z.emitChar('<')
		return true, ScriptDataEscapedState
	}
}

func (z *Tokenizer) scriptDataEscapedEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar('<')
		z.emitChar('/')
		return true, ScriptDataEscapedState
	}
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		z.tokenBuilder.curTagType = endTag
		return true, ScriptDataEscapedEndTagNameState
	default:
		z.emitChar('<')
		z.emitChar('/')
		return true, ScriptDataEscapedState
	}
}

func (z *Tokenizer) defaultScriptDataEscapedEndTagNameStateCase() (bool, State) {
	z.emitChar('<')
	z.emitChar('/')
	z.emitString(z.tokenBuilder.TempBuffer())
	return true, ScriptDataEscapedState
}

func (z *Tokenizer) scriptDataEscapedEndTagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultScriptDataEscapedEndTagNameStateCase()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		if z.isApprEndTagToken() {
			return false, BeforeAttributeNameState
		}
		return z.defaultScriptDataEscapedEndTagNameStateCase()
	case '/':
		if z.isApprEndTagToken() {
			return false, SelfClosingStartTagState
		}
		return z.defaultScriptDataEscapedEndTagNameStateCase()
	case '>':
		if z.isApprEndTagToken() {
			return false, z.emitCurrentTag()
		}
		return z.defaultScriptDataEscapedEndTagNameStateCase()
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.WriteTempBuffer(r)
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, ScriptDataEscapedEndTagNameState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		z.tokenBuilder.WriteTempBuffer(r)
		z.tokenBuilder.WriteName(r)
		return false, ScriptDataEscapedEndTagNameState
	default:
		return z.defaultScriptDataEscapedEndTagNameStateCase()
	}
}

func (z *Tokenizer) scriptDataDoubleEscapeStartStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataEscapedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020', '/', '>':
		z.emitChar(r)
		if z.tokenBuilder.TempBuffer() == "script" {
			return false, ScriptDataDoubleEscapedState
		}
		return false, ScriptDataEscapedState
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.emitChar(r)
		r += 0x20
		z.tokenBuilder.WriteTempBuffer(r)
		return false, ScriptDataDoubleEscapeStartState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		z.emitChar(r)
		z.tokenBuilder.WriteTempBuffer(r)
		return false, ScriptDataDoubleEscapeStartState
	default:
		return true, ScriptDataEscapedState
	}
}

func (z *Tokenizer) scriptDataDoubleEscapedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInScriptHTMLCommentLikeText)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataDoubleEscapedDashState
	case '<':
		z.emitChar('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		z.emitChar(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) scriptDataDoubleEscapedDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInScriptHTMLCommentLikeText)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		z.emitChar('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		z.emitChar(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) scriptDataDoubleEscapedDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInScriptHTMLCommentLikeText)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.emitChar('-')
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		z.emitChar('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '>':
		z.emitChar('>')
		return false, ScriptDataState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.emitChar('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		z.emitChar(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) scriptDataDoubleEscapedLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataDoubleEscapedState
	}
	switch r {
	case '/':
		z.tokenBuilder.ResetTempBuffer()
		z.emitChar('/')
		return false, ScriptDataDoubleEscapeEndState
	default:
		return true, ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) scriptDataDoubleEscapeEndStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataDoubleEscapedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020', '/', '>':
		z.emitChar(r)
		if z.tokenBuilder.TempBuffer() == "script" {
			return false, ScriptDataEscapedState
		}
		return false, ScriptDataDoubleEscapedState
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.emitChar(r)
		r += 0x20
		z.tokenBuilder.WriteTempBuffer(r)
		return false, ScriptDataDoubleEscapeEndState
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		z.emitChar(r)
		z.tokenBuilder.WriteTempBuffer(r)
		return false, ScriptDataDoubleEscapeEndState
	default:
		return true, ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeAttributeNameState
	case '/', '>':
		return true, AfterAttributeNameState
	case '=':
		z.parseError(ErrUnexpectedEqualsSignBeforeAttributeName)
		// starts a new attribute whose name is the equals sign itself
		z.tokenBuilder.CommitAttribute()
		z.tokenBuilder.WriteAttributeName(r)
		return false, AttributeNameState
	default:
		z.tokenBuilder.CommitAttribute()
		return true, AttributeNameState
	}
}

func (z *Tokenizer) attributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.checkDuplicateAttribute()
		return true, AfterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020', '/', '>':
		z.checkDuplicateAttribute()
		return true, AfterAttributeNameState
	case '=':
		z.checkDuplicateAttribute()
		return false, BeforeAttributeValueState
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.WriteAttributeName(r + 0x20)
		return false, AttributeNameState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteAttributeName('\uFFFD')
		return false, AttributeNameState
	case '"', '\'', '<':
		z.parseError(ErrUnexpectedCharacterInAttributeName)
		z.tokenBuilder.WriteAttributeName(r)
		return false, AttributeNameState
	default:
		z.tokenBuilder.WriteAttributeName(r)
		return false, AttributeNameState
	}
}

// checkDuplicateAttribute runs when the tokenizer leaves the attribute
// name state. A name already on the token flags the pending attribute to
// be dropped; its value is still lexed, just never committed.
func (z *Tokenizer) checkDuplicateAttribute() {
	if z.tokenBuilder.SkipDuplicateAttribute() {
		z.parseError(ErrDuplicateAttribute)
	}
}

func (z *Tokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, AfterAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '=':
		return false, BeforeAttributeValueState
	case '>':
		return false, z.emitCurrentTag()
	default:
		z.tokenBuilder.CommitAttribute()
		return true, AttributeNameState
	}
}

func (z *Tokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AttributeValueUnquotedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeAttributeValueState
	case '"':
		return false, AttributeValueDoubleQuotedState
	case '\'':
		return false, AttributeValueSingleQuotedState
	case '>':
		z.parseError(ErrMissingAttributeValue)
		return false, z.emitCurrentTag()
	default:
		return true, AttributeValueUnquotedState
	}
}

func (z *Tokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '"':
		return false, AfterAttributeValueQuotedState
	case '&':
		z.returnState = AttributeValueDoubleQuotedState
		return false, CharacterReferenceState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteAttributeValue('\uFFFD')
		return false, AttributeValueDoubleQuotedState
	default:
		z.tokenBuilder.WriteAttributeValue(r)
		return false, AttributeValueDoubleQuotedState
	}
}

func (z *Tokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\'':
		return false, AfterAttributeValueQuotedState
	case '&':
		z.returnState = AttributeValueSingleQuotedState
		return false, CharacterReferenceState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteAttributeValue('\uFFFD')
		return false, AttributeValueSingleQuotedState
	default:
		z.tokenBuilder.WriteAttributeValue(r)
		return false, AttributeValueSingleQuotedState
	}
}

func (z *Tokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeAttributeNameState
	case '&':
		z.returnState = AttributeValueUnquotedState
		return false, CharacterReferenceState
	case '>':
		return false, z.emitCurrentTag()
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteAttributeValue('\uFFFD')
		return false, AttributeValueUnquotedState
	case '"', '\'', '<', '=', '`':
		z.parseError(ErrUnexpectedCharacterInUnquotedAttributeValue)
		z.tokenBuilder.WriteAttributeValue(r)
		return false, AttributeValueUnquotedState
	default:
		z.tokenBuilder.WriteAttributeValue(r)
		return false, AttributeValueUnquotedState
	}
}

func (z *Tokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, z.emitCurrentTag()
	default:
		z.parseError(ErrMissingWhitespaceBetweenAttributes)
		return true, BeforeAttributeNameState
	}
}

func (z *Tokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInTag)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '>':
		z.tokenBuilder.EnableSelfClosing()
		return false, z.emitCurrentTag()
	default:
		z.parseError(ErrUnexpectedSolidusInTag)
		return true, BeforeAttributeNameState
	}
}

func (z *Tokenizer) bogusCommentStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitComment()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '>':
		z.emitComment()
		return false, DataState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteData('\uFFFD')
		return false, BogusCommentState
	default:
		z.tokenBuilder.WriteData(r)
		return false, BogusCommentState
	}
}

func (z *Tokenizer) defaultMarkupDeclarationOpenStateParser() (bool, State) {
	z.parseError(ErrIncorrectlyOpenedComment)
	z.tokenBuilder.Reset()
	return true, BogusCommentState
}

func (z *Tokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return z.defaultMarkupDeclarationOpenStateParser()
	}
	switch r {
	case '-':
		peeked, err := z.stream.Peek(1)
		if errors.Is(err, ErrUnderrun) {
			return z.suspend(r, MarkupDeclarationOpenState)
		}
		if len(peeked) == 1 && peeked[0] == '-' {
			z.stream.Discard(1)
			z.tokenBuilder.Reset()
			return false, CommentStartState
		}
		return z.defaultMarkupDeclarationOpenStateParser()
	case 'D', 'd':
		peeked, err := z.stream.Peek(6)
		if errors.Is(err, ErrUnderrun) && viablePrefixFold(peeked, "octype") {
			return z.suspend(r, MarkupDeclarationOpenState)
		}
		if runesEqualFold(peeked, "octype") {
			z.stream.Discard(6)
			return false, DoctypeState
		}
		return z.defaultMarkupDeclarationOpenStateParser()
	case '[':
		peeked, err := z.stream.Peek(6)
		if errors.Is(err, ErrUnderrun) && viablePrefix(peeked, "CDATA[") {
			return z.suspend(r, MarkupDeclarationOpenState)
		}
		if string(peeked) == "CDATA[" {
			z.stream.Discard(6)
			if z.inForeignContent {
				return false, CDATASectionState
			}
			z.parseError(ErrCDATAInHTMLContent)
			z.tokenBuilder.Reset()
			for _, c := range "[CDATA[" {
				z.tokenBuilder.WriteData(c)
			}
			return false, BogusCommentState
		}
		return z.defaultMarkupDeclarationOpenStateParser()
	default:
		return z.defaultMarkupDeclarationOpenStateParser()
	}
}

func (z *Tokenizer) commentStartStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentState
	}
	switch r {
	case '-':
		return false, CommentStartDashState
	case '>':
		z.parseError(ErrAbruptClosingOfEmptyComment)
		z.emitComment()
		return false, DataState
	default:
		return true, CommentState
	}
}

func (z *Tokenizer) commentStartDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInComment)
		z.emitComment()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		return false, CommentEndState
	case '>':
		z.parseError(ErrAbruptClosingOfEmptyComment)
		z.emitComment()
		return false, DataState
	default:
		z.tokenBuilder.WriteData('-')
		return true, CommentState
	}
}

func (z *Tokenizer) commentStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInComment)
		z.emitComment()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '<':
		z.tokenBuilder.WriteData(r)
		return false, CommentLessThanSignState
	case '-':
		return false, CommentEndDashState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteData('\uFFFD')
		return false, CommentState
	default:
		z.tokenBuilder.WriteData(r)
		return false, CommentState
	}
}

func (z *Tokenizer) commentLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentState
	}
	switch r {
	case '!':
		z.tokenBuilder.WriteData(r)
		return false, CommentLessThanSignBangState
	case '<':
		z.tokenBuilder.WriteData(r)
		return false, CommentLessThanSignState
	default:
		return true, CommentState
	}
}

func (z *Tokenizer) commentLessThanSignBangStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentState
	}
	switch r {
	case '-':
		return false, CommentLessThanSignBangDashState
	default:
		return true, CommentState
	}
}

func (z *Tokenizer) commentLessThanSignBangDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentEndDashState
	}
	switch r {
	case '-':
		return false, CommentLessThanSignBangDashDashState
	default:
		return true, CommentEndDashState
	}
}

func (z *Tokenizer) commentLessThanSignBangDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentEndState
	}
	switch r {
	case '>':
		return true, CommentEndState
	default:
		z.parseError(ErrNestedComment)
		return true, CommentEndState
	}
}

func (z *Tokenizer) commentEndDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInComment)
		z.emitComment()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		return false, CommentEndState
	default:
		z.tokenBuilder.WriteData('-')
		return true, CommentState
	}
}

func (z *Tokenizer) commentEndStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInComment)
		z.emitComment()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '>':
		z.emitComment()
		return false, DataState
	case '!':
		return false, CommentEndBangState
	case '-':
		z.tokenBuilder.WriteData('-')
		return false, CommentEndState
	default:
		z.tokenBuilder.WriteData('-')
		z.tokenBuilder.WriteData('-')
		return true, CommentState
	}
}

func (z *Tokenizer) commentEndBangStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInComment)
		z.emitComment()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '-':
		z.tokenBuilder.WriteData('-')
		z.tokenBuilder.WriteData('-')
		z.tokenBuilder.WriteData('!')
		return false, CommentEndDashState
	case '>':
		z.parseError(ErrIncorrectlyClosedComment)
		z.emitComment()
		return false, DataState
	default:
		z.tokenBuilder.WriteData('-')
		z.tokenBuilder.WriteData('-')
		z.tokenBuilder.WriteData('!')
		return true, CommentState
	}
}

func (z *Tokenizer) doctypeStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.Reset()
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeDoctypeNameState
	case '>':
		return true, BeforeDoctypeNameState
	default:
		z.parseError(ErrMissingWhitespaceBeforeDoctypeName)
		return true, BeforeDoctypeNameState
	}
}

func (z *Tokenizer) beforeDoctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.Reset()
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeDoctypeNameState
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		z.tokenBuilder.Reset()
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, DoctypeNameState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.Reset()
		z.tokenBuilder.WriteName('\uFFFD')
		return false, DoctypeNameState
	case '>':
		z.parseError(ErrMissingDoctypeName)
		z.tokenBuilder.Reset()
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.tokenBuilder.Reset()
		z.tokenBuilder.WriteName(r)
		return false, DoctypeNameState
	}
}

func (z *Tokenizer) doctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, AfterDoctypeNameState
	case '>':
		z.emitDoctype()
		return false, DataState
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		r += 0x20
		z.tokenBuilder.WriteName(r)
		return false, DoctypeNameState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteName('\uFFFD')
		return false, DoctypeNameState
	default:
		z.tokenBuilder.WriteName(r)
		return false, DoctypeNameState
	}
}

func (z *Tokenizer) afterDoctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, AfterDoctypeNameState
	case '>':
		z.emitDoctype()
		return false, DataState
	default:
		// the PUBLIC and SYSTEM keywords start at the current character
		peeked, err := z.stream.Peek(5)
		rest := append([]rune{r}, peeked...)
		if errors.Is(err, ErrUnderrun) && (viablePrefixFold(rest, "public") || viablePrefixFold(rest, "system")) {
			return z.suspend(r, AfterDoctypeNameState)
		}
		if runesEqualFold(rest, "public") {
			z.stream.Discard(5)
			return false, AfterDoctypePublicKeywordState
		}
		if runesEqualFold(rest, "system") {
			z.stream.Discard(5)
			return false, AfterDoctypeSystemKeywordState
		}
		z.parseError(ErrInvalidCharacterSequenceAfterDoctypeName)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) afterDoctypePublicKeywordStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeDoctypePublicIdentifierState
	case '"':
		z.parseError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		z.tokenBuilder.WritePublicIdentifierEmpty()
		return false, DoctypePublicIdentifierDoubleQuotedState
	case '\'':
		z.parseError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		z.tokenBuilder.WritePublicIdentifierEmpty()
		return false, DoctypePublicIdentifierSingleQuotedState
	case '>':
		z.parseError(ErrMissingDoctypePublicIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.parseError(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) beforeDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeDoctypePublicIdentifierState
	case '"':
		z.tokenBuilder.WritePublicIdentifierEmpty()
		return false, DoctypePublicIdentifierDoubleQuotedState
	case '\'':
		z.tokenBuilder.WritePublicIdentifierEmpty()
		return false, DoctypePublicIdentifierSingleQuotedState
	case '>':
		z.parseError(ErrMissingDoctypePublicIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.parseError(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) doctypePublicIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '"':
		return false, AfterDoctypePublicIdentifierState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WritePublicIdentifier('\uFFFD')
		return false, DoctypePublicIdentifierDoubleQuotedState
	case '>':
		z.parseError(ErrAbruptDoctypePublicIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.tokenBuilder.WritePublicIdentifier(r)
		return false, DoctypePublicIdentifierDoubleQuotedState
	}
}

func (z *Tokenizer) doctypePublicIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\'':
		return false, AfterDoctypePublicIdentifierState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WritePublicIdentifier('\uFFFD')
		return false, DoctypePublicIdentifierSingleQuotedState
	case '>':
		z.parseError(ErrAbruptDoctypePublicIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.tokenBuilder.WritePublicIdentifier(r)
		return false, DoctypePublicIdentifierSingleQuotedState
	}
}

func (z *Tokenizer) afterDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BetweenDoctypePublicAndSystemIdentifiersState
	case '>':
		z.emitDoctype()
		return false, DataState
	case '"':
		z.parseError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.parseError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierSingleQuotedState
	default:
		z.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BetweenDoctypePublicAndSystemIdentifiersState
	case '>':
		z.emitDoctype()
		return false, DataState
	case '"':
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierSingleQuotedState
	default:
		z.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) afterDoctypeSystemKeywordStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeDoctypeSystemIdentifierState
	case '"':
		z.parseError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.parseError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierSingleQuotedState
	case '>':
		z.parseError(ErrMissingDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) beforeDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, BeforeDoctypeSystemIdentifierState
	case '"':
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.tokenBuilder.WriteSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierSingleQuotedState
	case '>':
		z.parseError(ErrMissingDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '"':
		return false, AfterDoctypeSystemIdentifierState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteSystemIdentifier('\uFFFD')
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '>':
		z.parseError(ErrAbruptDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.tokenBuilder.WriteSystemIdentifier(r)
		return false, DoctypeSystemIdentifierDoubleQuotedState
	}
}

func (z *Tokenizer) doctypeSystemIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\'':
		return false, AfterDoctypeSystemIdentifierState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		z.tokenBuilder.WriteSystemIdentifier('\uFFFD')
		return false, DoctypeSystemIdentifierSingleQuotedState
	case '>':
		z.parseError(ErrAbruptDoctypeSystemIdentifier)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		return false, DataState
	default:
		z.tokenBuilder.WriteSystemIdentifier(r)
		return false, DoctypeSystemIdentifierSingleQuotedState
	}
}

func (z *Tokenizer) afterDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInDoctype)
		z.tokenBuilder.EnableForceQuirks()
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		return false, AfterDoctypeSystemIdentifierState
	case '>':
		z.emitDoctype()
		return false, DataState
	default:
		z.parseError(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier)
		return true, BogusDoctypeState
	}
}

func (z *Tokenizer) bogusDoctypeStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitDoctype()
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case '>':
		z.emitDoctype()
		return false, DataState
	case '\u0000':
		z.parseError(ErrUnexpectedNullCharacter)
		return false, BogusDoctypeState
	default:
		return false, BogusDoctypeState
	}
}

func (z *Tokenizer) cdataSectionStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrEOFInCDATA)
		z.emitEOF()
		return false, DataState
	}
	switch r {
	case ']':
		return false, CDATASectionBracketState
	default:
		z.emitChar(r)
		return false, CDATASectionState
	}
}

func (z *Tokenizer) cdataSectionBracketStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar(']')
		return true, CDATASectionState
	}
	switch r {
	case ']':
		return false, CDATASectionEndState
	default:
		z.emitChar(']')
		return true, CDATASectionState
	}
}

func (z *Tokenizer) cdataSectionEndStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.emitChar(']')
		z.emitChar(']')
		return true, CDATASectionState
	}
	switch r {
	case ']':
		z.emitChar(']')
		return false, CDATASectionEndState
	case '>':
		return false, DataState
	default:
		z.emitChar(']')
		z.emitChar(']')
		return true, CDATASectionState
	}
}

func (z *Tokenizer) characterReferenceStateParser(r rune, eof bool) (bool, State) {
	z.tokenBuilder.ResetTempBuffer()
	z.tokenBuilder.WriteTempBuffer('&')
	if eof {
		z.flushCodePointsAsCharacterReference()
		return true, z.returnState
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		return true, NamedCharacterReferenceState
	case '#':
		z.tokenBuilder.WriteTempBuffer(r)
		return false, NumericCharacterReferenceState
	default:
		z.flushCodePointsAsCharacterReference()
		return true, z.returnState
	}
}

// namedCharacterReferenceStateParser matches the longest reference name at
// the cursor in one go rather than rune by rune, which is why it puts its
// input back first. On underrun the whole match is retried on the next
// feed.
func (z *Tokenizer) namedCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if !eof {
		z.stream.Unread(r)
	}
	name, value, next, hasNext, err := matchNamedCharRef(z.stream)
	if err != nil {
		z.waiting = true
		return false, NamedCharacterReferenceState
	}
	if name == "" {
		z.flushCodePointsAsCharacterReference()
		return false, AmbiguousAmpersandState
	}
	for _, c := range name {
		z.tokenBuilder.WriteTempBuffer(c)
	}
	withSemicolon := name[len(name)-1] == ';'
	if wasConsumedByAttribute(z.returnState) && !withSemicolon && hasNext && (next == '=' || isASCIIAlphanumeric(int(next))) {
		// historically &not followed by =, a letter or a digit inside an
		// attribute stays literal text
		z.flushCodePointsAsCharacterReference()
		return false, z.returnState
	}
	if !withSemicolon {
		z.parseError(ErrMissingSemicolonAfterCharacterReference)
	}
	z.tokenBuilder.ResetTempBuffer()
	z.tokenBuilder.WriteTempBufferString(value)
	z.flushCodePointsAsCharacterReference()
	return false, z.returnState
}

func (z *Tokenizer) ambiguousAmpersandStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, z.returnState
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		if wasConsumedByAttribute(z.returnState) {
			z.tokenBuilder.WriteAttributeValue(r)
		} else {
			z.emitChar(r)
		}
		return false, AmbiguousAmpersandState
	case ';':
		z.parseError(ErrUnknownNamedCharacterReference)
		return true, z.returnState
	default:
		return true, z.returnState
	}
}

func (z *Tokenizer) numericCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	z.tokenBuilder.SetCharRef(0)
	if eof {
		return true, DecimalCharacterReferenceStartState
	}
	switch r {
	case 'x', 'X':
		z.tokenBuilder.WriteTempBuffer(r)
		return false, HexadecimalCharacterReferenceStartState
	default:
		return true, DecimalCharacterReferenceStartState
	}
}

func (z *Tokenizer) hexadecimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrAbsenceOfDigitsInNumericCharacterReference)
		z.flushCodePointsAsCharacterReference()
		return true, z.returnState
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f', 'A', 'B', 'C', 'D', 'E', 'F':
		return true, HexadecimalCharacterReferenceState
	default:
		z.parseError(ErrAbsenceOfDigitsInNumericCharacterReference)
		z.flushCodePointsAsCharacterReference()
		return true, z.returnState
	}
}

func (z *Tokenizer) decimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrAbsenceOfDigitsInNumericCharacterReference)
		z.flushCodePointsAsCharacterReference()
		return true, z.returnState
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true, DecimalCharacterReferenceState
	default:
		z.parseError(ErrAbsenceOfDigitsInNumericCharacterReference)
		z.flushCodePointsAsCharacterReference()
		return true, z.returnState
	}
}

func (z *Tokenizer) hexadecimalCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrMissingSemicolonAfterCharacterReference)
		return false, NumericCharacterReferenceEndState
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		z.tokenBuilder.MultByCharRef(16)
		z.tokenBuilder.AddToCharRef(int(r) - 0x30)
		return false, HexadecimalCharacterReferenceState
	case 'A', 'B', 'C', 'D', 'E', 'F':
		z.tokenBuilder.MultByCharRef(16)
		z.tokenBuilder.AddToCharRef(int(r) - 0x37)
		return false, HexadecimalCharacterReferenceState
	case 'a', 'b', 'c', 'd', 'e', 'f':
		z.tokenBuilder.MultByCharRef(16)
		z.tokenBuilder.AddToCharRef(int(r) - 0x57)
		return false, HexadecimalCharacterReferenceState
	case ';':
		return false, NumericCharacterReferenceEndState
	default:
		z.parseError(ErrMissingSemicolonAfterCharacterReference)
		z.stream.Unread(r)
		return false, NumericCharacterReferenceEndState
	}
}

func (z *Tokenizer) decimalCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if eof {
		z.parseError(ErrMissingSemicolonAfterCharacterReference)
		return false, NumericCharacterReferenceEndState
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		z.tokenBuilder.MultByCharRef(10)
		z.tokenBuilder.AddToCharRef(int(r) - 0x30)
		return false, DecimalCharacterReferenceState
	case ';':
		return false, NumericCharacterReferenceEndState
	default:
		z.parseError(ErrMissingSemicolonAfterCharacterReference)
		z.stream.Unread(r)
		return false, NumericCharacterReferenceEndState
	}
}

// numericCharacterReferenceEndStateParser exists so the state has an entry
// in the dispatch table, but the run loop never consumes input for this
// state; it calls numericCharacterReferenceEndStep directly.
func (z *Tokenizer) numericCharacterReferenceEndStateParser(r rune, eof bool) (bool, State) {
	return false, z.numericCharacterReferenceEndStep()
}

// numericCharacterReferenceEndStep validates the accumulated code point
// and flushes it. The digit states already gave back any rune that ended
// the reference, so this step touches no input.
func (z *Tokenizer) numericCharacterReferenceEndStep() State {
	code := z.tokenBuilder.GetCharRef()
	switch {
	case code == 0x00:
		z.parseError(ErrNullCharacterReference)
		z.tokenBuilder.SetCharRef(0xFFFD)
	case code > 0x10FFFF:
		z.parseError(ErrCharacterReferenceOutsideUnicodeRange)
		z.tokenBuilder.SetCharRef(0xFFFD)
	case isSurrogate(code):
		z.parseError(ErrSurrogateCharacterReference)
		z.tokenBuilder.SetCharRef(0xFFFD)
	case isNonCharacter(code):
		z.parseError(ErrNoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		z.parseError(ErrControlCharacterReference)
		if repl, ok := numericCharRefReplacements[code]; ok {
			z.tokenBuilder.SetCharRef(int(repl))
		}
	}
	z.tokenBuilder.ResetTempBuffer()
	z.tokenBuilder.WriteTempBuffer(rune(z.tokenBuilder.GetCharRef()))
	z.flushCodePointsAsCharacterReference()
	return z.returnState
}

// a stateHandler is a func that takes in a rune and a bool representing
// the end of file and returns whether to reconsume and the next state to
// transition to.
type stateHandler func(in rune, eof bool) (bool, State)

// State identifies one state of the tokenizer state machine. The names
// follow the WHATWG HTML specification section 13.2.5.
//
//go:generate stringer -type=State
type State uint

const (
	DataState State = iota
	RCDATAState
	RawTextState
	ScriptDataState
	PlaintextState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RawTextLessThanSignState
	RawTextEndTagOpenState
	RawTextEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	AfterDoctypePublicKeywordState
	BeforeDoctypePublicIdentifierState
	DoctypePublicIdentifierDoubleQuotedState
	DoctypePublicIdentifierSingleQuotedState
	AfterDoctypePublicIdentifierState
	BetweenDoctypePublicAndSystemIdentifiersState
	AfterDoctypeSystemKeywordState
	BeforeDoctypeSystemIdentifierState
	DoctypeSystemIdentifierDoubleQuotedState
	DoctypeSystemIdentifierSingleQuotedState
	AfterDoctypeSystemIdentifierState
	BogusDoctypeState
	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState
	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)
