package tokenizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer(t *testing.T) (*Tokenizer, *TokenCollector) {
	t.Helper()
	c := &TokenCollector{}
	z, err := NewTokenizer(c, Options{})
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	return z, c
}

// collect runs a whole document through a fresh tokenizer and returns the
// recorded tokens and parse errors.
func collect(t *testing.T, in string, opts Options) *TokenCollector {
	t.Helper()
	c := &TokenCollector{}
	z, err := NewTokenizer(c, opts)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if err := z.Feed(in, true); err != nil {
		t.Fatalf("Feed(%q): %v", in, err)
	}
	return c
}

func errorCodes(errs []ParseError) []ErrorCode {
	codes := make([]ErrorCode, 0, len(errs))
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestTokenizerAttributeAccuracy(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		inHTML string
		attrs  map[string]string
	}{
		{
			inHTML: `<img src="mySrc">`,
			attrs:  map[string]string{"src": "mySrc"},
		},
		{
			inHTML: `<img src='mySrc'>`,
			attrs:  map[string]string{"src": "mySrc"},
		},
		{
			inHTML: `<img src=mySrc>`,
			attrs:  map[string]string{"src": "mySrc"},
		},
		{
			inHTML: `<img src1="a" src2='b' src3=c>`,
			attrs:  map[string]string{"src1": "a", "src2": "b", "src3": "c"},
		},
		{
			inHTML: `<img  src  =  "a"  >`,
			attrs:  map[string]string{"src": "a"},
		},
		{
			inHTML: `<img SRC="a">`,
			attrs:  map[string]string{"src": "a"},
		},
		{
			inHTML: `<img src="A&amp;B">`,
			attrs:  map[string]string{"src": "A&B"},
		},
		{
			// the second occurrence of a name is dropped, value and all
			inHTML: `<img src="a" src="b">`,
			attrs:  map[string]string{"src": "a"},
		},
		{
			inHTML: `<a A=x a=y>`,
			attrs:  map[string]string{"a": "x"},
		},
		{
			// whitespace between the name and = still belongs to the same
			// attribute
			inHTML: `<a b =c>`,
			attrs:  map[string]string{"b": "c"},
		},
		{
			inHTML: `<a b=c"d>`,
			attrs:  map[string]string{"b": `c"d`},
		},
		{
			inHTML: `<img src>`,
			attrs:  map[string]string{"src": ""},
		},
		{
			inHTML: `<img src/>`,
			attrs:  map[string]string{"src": ""},
		},
		{
			inHTML: `<img =abc>`,
			attrs:  map[string]string{"=abc": ""},
		},
		{
			inHTML: `<a b="x" C>`,
			attrs:  map[string]string{"b": "x", "c": ""},
		},
		{
			inHTML: `<a xml:lang="en">`,
			attrs:  map[string]string{"xml:lang": "en"},
		},
		{
			inHTML: `<a b="">`,
			attrs:  map[string]string{"b": ""},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			c := collect(t, tt.inHTML, Options{})
			var tag *Token
			for i := range c.Tokens {
				if c.Tokens[i].Type == StartTagToken {
					tag = &c.Tokens[i]
					break
				}
			}
			if tag == nil {
				t.Fatalf("no start tag token in %v", c.Tokens)
			}
			if len(tag.Attributes) != len(tt.attrs) {
				t.Errorf("got %d attributes, expected %d: %v", len(tag.Attributes), len(tt.attrs), tag.Attributes)
			}
			for _, a := range tag.Attributes {
				want, ok := tt.attrs[a.Name]
				if !ok {
					t.Errorf("unexpected attribute %q", a.Name)
					continue
				}
				if a.Value != want {
					t.Errorf("attribute %q: got value %q, expected %q", a.Name, a.Value, want)
				}
			}
		})
	}
}

func TestTokenizerAttributeOrder(t *testing.T) {
	t.Parallel()
	c := collect(t, `<a z=1 a=2 m=3>`, Options{})
	want := []Attribute{{"z", "1"}, {"a", "2"}, {"m", "3"}}
	if len(c.Tokens) == 0 || c.Tokens[0].Type != StartTagToken {
		t.Fatalf("expected a start tag first, got %v", c.Tokens)
	}
	if got := c.Tokens[0].Attributes; !reflect.DeepEqual(got, want) {
		t.Errorf("got attributes %v, expected lexing order %v", got, want)
	}
}

// TestStateParsers checks single transitions of the state machine: one rune
// in, one (reconsume, next state) pair out. States that look ahead in the
// stream (markupDeclarationOpenState on -, d and [, namedCharacterReference
// State, the keyword branch of afterDoctypeNameState) are exercised end to
// end in TestParseStatefulness and TestHTML5Lib instead of here.
func TestStateParsers(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		inRune            rune
		startingState     State
		shouldReconsume   bool
		nextExpectedState State
	}{
		{'&', DataState, false, CharacterReferenceState},
		{'<', DataState, false, TagOpenState},
		{'a', DataState, false, DataState},
		{'\u0000', DataState, false, DataState},

		{'&', RCDATAState, false, CharacterReferenceState},
		{'<', RCDATAState, false, RCDATALessThanSignState},
		{'x', RCDATAState, false, RCDATAState},

		{'<', RawTextState, false, RawTextLessThanSignState},
		{'x', RawTextState, false, RawTextState},

		{'<', ScriptDataState, false, ScriptDataLessThanSignState},
		{'x', ScriptDataState, false, ScriptDataState},

		{'x', PlaintextState, false, PlaintextState},
		{'\u0000', PlaintextState, false, PlaintextState},

		{'!', TagOpenState, false, MarkupDeclarationOpenState},
		{'/', TagOpenState, false, EndTagOpenState},
		{'d', TagOpenState, true, TagNameState},
		{'D', TagOpenState, true, TagNameState},
		{'?', TagOpenState, true, BogusCommentState},
		{'1', TagOpenState, true, DataState},

		{'d', EndTagOpenState, true, TagNameState},
		{'>', EndTagOpenState, false, DataState},
		{'1', EndTagOpenState, true, BogusCommentState},

		{'\u0009', TagNameState, false, BeforeAttributeNameState},
		{'\u000A', TagNameState, false, BeforeAttributeNameState},
		{'\u000C', TagNameState, false, BeforeAttributeNameState},
		{' ', TagNameState, false, BeforeAttributeNameState},
		{'/', TagNameState, false, SelfClosingStartTagState},
		{'>', TagNameState, false, DataState},
		{'a', TagNameState, false, TagNameState},
		{'A', TagNameState, false, TagNameState},
		{'\u0000', TagNameState, false, TagNameState},

		{'/', RCDATALessThanSignState, false, RCDATAEndTagOpenState},
		{'x', RCDATALessThanSignState, true, RCDATAState},

		{'a', RCDATAEndTagOpenState, true, RCDATAEndTagNameState},
		{'1', RCDATAEndTagOpenState, true, RCDATAState},

		{'a', RCDATAEndTagNameState, false, RCDATAEndTagNameState},
		{'A', RCDATAEndTagNameState, false, RCDATAEndTagNameState},

		{'/', RawTextLessThanSignState, false, RawTextEndTagOpenState},
		{'p', RawTextLessThanSignState, true, RawTextState},

		{'p', RawTextEndTagOpenState, true, RawTextEndTagNameState},
		{'-', RawTextEndTagOpenState, true, RawTextState},

		{'p', RawTextEndTagNameState, false, RawTextEndTagNameState},

		{'/', ScriptDataLessThanSignState, false, ScriptDataEndTagOpenState},
		{'!', ScriptDataLessThanSignState, false, ScriptDataEscapeStartState},
		{'v', ScriptDataLessThanSignState, true, ScriptDataState},

		{'s', ScriptDataEndTagOpenState, true, ScriptDataEndTagNameState},
		{'1', ScriptDataEndTagOpenState, true, ScriptDataState},

		{'s', ScriptDataEndTagNameState, false, ScriptDataEndTagNameState},

		{'-', ScriptDataEscapeStartState, false, ScriptDataEscapeStartDashState},
		{'v', ScriptDataEscapeStartState, true, ScriptDataState},

		{'-', ScriptDataEscapeStartDashState, false, ScriptDataEscapedDashDashState},
		{'v', ScriptDataEscapeStartDashState, true, ScriptDataState},

		{'-', ScriptDataEscapedState, false, ScriptDataEscapedDashState},
		{'<', ScriptDataEscapedState, false, ScriptDataEscapedLessThanSignState},
		{'v', ScriptDataEscapedState, false, ScriptDataEscapedState},

		{'-', ScriptDataEscapedDashState, false, ScriptDataEscapedDashDashState},
		{'<', ScriptDataEscapedDashState, false, ScriptDataEscapedLessThanSignState},
		{'v', ScriptDataEscapedDashState, false, ScriptDataEscapedState},

		{'-', ScriptDataEscapedDashDashState, false, ScriptDataEscapedDashDashState},
		{'<', ScriptDataEscapedDashDashState, false, ScriptDataEscapedLessThanSignState},
		{'>', ScriptDataEscapedDashDashState, false, ScriptDataState},
		{'v', ScriptDataEscapedDashDashState, false, ScriptDataEscapedState},

		{'/', ScriptDataEscapedLessThanSignState, false, ScriptDataEscapedEndTagOpenState},
		{'a', ScriptDataEscapedLessThanSignState, true, ScriptDataDoubleEscapeStartState},
		{'1', ScriptDataEscapedLessThanSignState, true, ScriptDataEscapedState},

		{'a', ScriptDataEscapedEndTagOpenState, true, ScriptDataEscapedEndTagNameState},
		{'1', ScriptDataEscapedEndTagOpenState, true, ScriptDataEscapedState},

		{'a', ScriptDataEscapedEndTagNameState, false, ScriptDataEscapedEndTagNameState},

		// the temp buffer is empty in a fresh tokenizer, so / > and
		// whitespace resolve to the escaped state, not the double escaped
		// one
		{'s', ScriptDataDoubleEscapeStartState, false, ScriptDataDoubleEscapeStartState},
		{' ', ScriptDataDoubleEscapeStartState, false, ScriptDataEscapedState},
		{'1', ScriptDataDoubleEscapeStartState, true, ScriptDataEscapedState},

		{'-', ScriptDataDoubleEscapedState, false, ScriptDataDoubleEscapedDashState},
		{'<', ScriptDataDoubleEscapedState, false, ScriptDataDoubleEscapedLessThanSignState},
		{'v', ScriptDataDoubleEscapedState, false, ScriptDataDoubleEscapedState},

		{'-', ScriptDataDoubleEscapedDashState, false, ScriptDataDoubleEscapedDashDashState},
		{'<', ScriptDataDoubleEscapedDashState, false, ScriptDataDoubleEscapedLessThanSignState},
		{'v', ScriptDataDoubleEscapedDashState, false, ScriptDataDoubleEscapedState},

		{'-', ScriptDataDoubleEscapedDashDashState, false, ScriptDataDoubleEscapedDashDashState},
		{'<', ScriptDataDoubleEscapedDashDashState, false, ScriptDataDoubleEscapedLessThanSignState},
		{'>', ScriptDataDoubleEscapedDashDashState, false, ScriptDataState},
		{'v', ScriptDataDoubleEscapedDashDashState, false, ScriptDataDoubleEscapedState},

		{'/', ScriptDataDoubleEscapedLessThanSignState, false, ScriptDataDoubleEscapeEndState},
		{'v', ScriptDataDoubleEscapedLessThanSignState, true, ScriptDataDoubleEscapedState},

		{'s', ScriptDataDoubleEscapeEndState, false, ScriptDataDoubleEscapeEndState},
		{' ', ScriptDataDoubleEscapeEndState, false, ScriptDataDoubleEscapedState},
		{'1', ScriptDataDoubleEscapeEndState, true, ScriptDataDoubleEscapedState},

		{' ', BeforeAttributeNameState, false, BeforeAttributeNameState},
		{'/', BeforeAttributeNameState, true, AfterAttributeNameState},
		{'>', BeforeAttributeNameState, true, AfterAttributeNameState},
		{'=', BeforeAttributeNameState, false, AttributeNameState},
		{'a', BeforeAttributeNameState, true, AttributeNameState},

		{' ', AttributeNameState, true, AfterAttributeNameState},
		{'/', AttributeNameState, true, AfterAttributeNameState},
		{'=', AttributeNameState, false, BeforeAttributeValueState},
		{'A', AttributeNameState, false, AttributeNameState},
		{'"', AttributeNameState, false, AttributeNameState},
		{'\u0000', AttributeNameState, false, AttributeNameState},

		{' ', AfterAttributeNameState, false, AfterAttributeNameState},
		{'/', AfterAttributeNameState, false, SelfClosingStartTagState},
		{'=', AfterAttributeNameState, false, BeforeAttributeValueState},
		{'>', AfterAttributeNameState, false, DataState},
		{'a', AfterAttributeNameState, true, AttributeNameState},

		{' ', BeforeAttributeValueState, false, BeforeAttributeValueState},
		{'"', BeforeAttributeValueState, false, AttributeValueDoubleQuotedState},
		{'\'', BeforeAttributeValueState, false, AttributeValueSingleQuotedState},
		{'>', BeforeAttributeValueState, false, DataState},
		{'a', BeforeAttributeValueState, true, AttributeValueUnquotedState},

		{'"', AttributeValueDoubleQuotedState, false, AfterAttributeValueQuotedState},
		{'&', AttributeValueDoubleQuotedState, false, CharacterReferenceState},
		{'a', AttributeValueDoubleQuotedState, false, AttributeValueDoubleQuotedState},

		{'\'', AttributeValueSingleQuotedState, false, AfterAttributeValueQuotedState},
		{'&', AttributeValueSingleQuotedState, false, CharacterReferenceState},
		{'a', AttributeValueSingleQuotedState, false, AttributeValueSingleQuotedState},

		{' ', AttributeValueUnquotedState, false, BeforeAttributeNameState},
		{'&', AttributeValueUnquotedState, false, CharacterReferenceState},
		{'>', AttributeValueUnquotedState, false, DataState},
		{'\'', AttributeValueUnquotedState, false, AttributeValueUnquotedState},
		{'a', AttributeValueUnquotedState, false, AttributeValueUnquotedState},

		{' ', AfterAttributeValueQuotedState, false, BeforeAttributeNameState},
		{'/', AfterAttributeValueQuotedState, false, SelfClosingStartTagState},
		{'>', AfterAttributeValueQuotedState, false, DataState},
		{'a', AfterAttributeValueQuotedState, true, BeforeAttributeNameState},

		{'>', SelfClosingStartTagState, false, DataState},
		{'a', SelfClosingStartTagState, true, BeforeAttributeNameState},

		{'>', BogusCommentState, false, DataState},
		{'a', BogusCommentState, false, BogusCommentState},
		{'\u0000', BogusCommentState, false, BogusCommentState},

		{'x', MarkupDeclarationOpenState, true, BogusCommentState},

		{'-', CommentStartState, false, CommentStartDashState},
		{'>', CommentStartState, false, DataState},
		{'a', CommentStartState, true, CommentState},

		{'-', CommentStartDashState, false, CommentEndState},
		{'>', CommentStartDashState, false, DataState},
		{'a', CommentStartDashState, true, CommentState},

		{'<', CommentState, false, CommentLessThanSignState},
		{'-', CommentState, false, CommentEndDashState},
		{'a', CommentState, false, CommentState},

		{'!', CommentLessThanSignState, false, CommentLessThanSignBangState},
		{'<', CommentLessThanSignState, false, CommentLessThanSignState},
		{'a', CommentLessThanSignState, true, CommentState},

		{'-', CommentLessThanSignBangState, false, CommentLessThanSignBangDashState},
		{'a', CommentLessThanSignBangState, true, CommentState},

		{'-', CommentLessThanSignBangDashState, false, CommentLessThanSignBangDashDashState},
		{'a', CommentLessThanSignBangDashState, true, CommentEndDashState},

		{'>', CommentLessThanSignBangDashDashState, true, CommentEndState},
		{'a', CommentLessThanSignBangDashDashState, true, CommentEndState},

		{'-', CommentEndDashState, false, CommentEndState},
		{'a', CommentEndDashState, true, CommentState},

		{'>', CommentEndState, false, DataState},
		{'!', CommentEndState, false, CommentEndBangState},
		{'-', CommentEndState, false, CommentEndState},
		{'a', CommentEndState, true, CommentState},

		{'-', CommentEndBangState, false, CommentEndDashState},
		{'>', CommentEndBangState, false, DataState},
		{'a', CommentEndBangState, true, CommentState},

		{' ', DoctypeState, false, BeforeDoctypeNameState},
		{'>', DoctypeState, true, BeforeDoctypeNameState},
		{'h', DoctypeState, true, BeforeDoctypeNameState},

		{' ', BeforeDoctypeNameState, false, BeforeDoctypeNameState},
		{'H', BeforeDoctypeNameState, false, DoctypeNameState},
		{'h', BeforeDoctypeNameState, false, DoctypeNameState},
		{'>', BeforeDoctypeNameState, false, DataState},

		{' ', DoctypeNameState, false, AfterDoctypeNameState},
		{'>', DoctypeNameState, false, DataState},
		{'H', DoctypeNameState, false, DoctypeNameState},

		{' ', AfterDoctypeNameState, false, AfterDoctypeNameState},
		{'>', AfterDoctypeNameState, false, DataState},

		{' ', AfterDoctypePublicKeywordState, false, BeforeDoctypePublicIdentifierState},
		{'"', AfterDoctypePublicKeywordState, false, DoctypePublicIdentifierDoubleQuotedState},
		{'\'', AfterDoctypePublicKeywordState, false, DoctypePublicIdentifierSingleQuotedState},
		{'>', AfterDoctypePublicKeywordState, false, DataState},
		{'a', AfterDoctypePublicKeywordState, true, BogusDoctypeState},

		{' ', BeforeDoctypePublicIdentifierState, false, BeforeDoctypePublicIdentifierState},
		{'"', BeforeDoctypePublicIdentifierState, false, DoctypePublicIdentifierDoubleQuotedState},
		{'>', BeforeDoctypePublicIdentifierState, false, DataState},
		{'a', BeforeDoctypePublicIdentifierState, true, BogusDoctypeState},

		{'"', DoctypePublicIdentifierDoubleQuotedState, false, AfterDoctypePublicIdentifierState},
		{'a', DoctypePublicIdentifierDoubleQuotedState, false, DoctypePublicIdentifierDoubleQuotedState},
		{'>', DoctypePublicIdentifierDoubleQuotedState, false, DataState},

		{'\'', DoctypePublicIdentifierSingleQuotedState, false, AfterDoctypePublicIdentifierState},
		{'a', DoctypePublicIdentifierSingleQuotedState, false, DoctypePublicIdentifierSingleQuotedState},

		{' ', AfterDoctypePublicIdentifierState, false, BetweenDoctypePublicAndSystemIdentifiersState},
		{'>', AfterDoctypePublicIdentifierState, false, DataState},
		{'"', AfterDoctypePublicIdentifierState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'\'', AfterDoctypePublicIdentifierState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'a', AfterDoctypePublicIdentifierState, true, BogusDoctypeState},

		{' ', BetweenDoctypePublicAndSystemIdentifiersState, false, BetweenDoctypePublicAndSystemIdentifiersState},
		{'>', BetweenDoctypePublicAndSystemIdentifiersState, false, DataState},
		{'"', BetweenDoctypePublicAndSystemIdentifiersState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'\'', BetweenDoctypePublicAndSystemIdentifiersState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'a', BetweenDoctypePublicAndSystemIdentifiersState, true, BogusDoctypeState},

		{' ', AfterDoctypeSystemKeywordState, false, BeforeDoctypeSystemIdentifierState},
		{'"', AfterDoctypeSystemKeywordState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'\'', AfterDoctypeSystemKeywordState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'>', AfterDoctypeSystemKeywordState, false, DataState},
		{'a', AfterDoctypeSystemKeywordState, true, BogusDoctypeState},

		{' ', BeforeDoctypeSystemIdentifierState, false, BeforeDoctypeSystemIdentifierState},
		{'"', BeforeDoctypeSystemIdentifierState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'\'', BeforeDoctypeSystemIdentifierState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'>', BeforeDoctypeSystemIdentifierState, false, DataState},
		{'a', BeforeDoctypeSystemIdentifierState, true, BogusDoctypeState},

		{'"', DoctypeSystemIdentifierDoubleQuotedState, false, AfterDoctypeSystemIdentifierState},
		{'a', DoctypeSystemIdentifierDoubleQuotedState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'>', DoctypeSystemIdentifierDoubleQuotedState, false, DataState},

		{'\'', DoctypeSystemIdentifierSingleQuotedState, false, AfterDoctypeSystemIdentifierState},
		{'a', DoctypeSystemIdentifierSingleQuotedState, false, DoctypeSystemIdentifierSingleQuotedState},

		{' ', AfterDoctypeSystemIdentifierState, false, AfterDoctypeSystemIdentifierState},
		{'>', AfterDoctypeSystemIdentifierState, false, DataState},
		{'a', AfterDoctypeSystemIdentifierState, true, BogusDoctypeState},

		{'>', BogusDoctypeState, false, DataState},
		{'a', BogusDoctypeState, false, BogusDoctypeState},
		{'\u0000', BogusDoctypeState, false, BogusDoctypeState},

		{']', CDATASectionState, false, CDATASectionBracketState},
		{'a', CDATASectionState, false, CDATASectionState},

		{']', CDATASectionBracketState, false, CDATASectionEndState},
		{'a', CDATASectionBracketState, true, CDATASectionState},

		{']', CDATASectionEndState, false, CDATASectionEndState},
		{'>', CDATASectionEndState, false, DataState},
		{'a', CDATASectionEndState, true, CDATASectionState},

		// dataState is the return state in a fresh tokenizer
		{'a', CharacterReferenceState, true, NamedCharacterReferenceState},
		{'7', CharacterReferenceState, true, NamedCharacterReferenceState},
		{'#', CharacterReferenceState, false, NumericCharacterReferenceState},
		{' ', CharacterReferenceState, true, DataState},

		{'a', AmbiguousAmpersandState, false, AmbiguousAmpersandState},
		{';', AmbiguousAmpersandState, true, DataState},
		{' ', AmbiguousAmpersandState, true, DataState},

		{'x', NumericCharacterReferenceState, false, HexadecimalCharacterReferenceStartState},
		{'X', NumericCharacterReferenceState, false, HexadecimalCharacterReferenceStartState},
		{'5', NumericCharacterReferenceState, true, DecimalCharacterReferenceStartState},

		{'f', HexadecimalCharacterReferenceStartState, true, HexadecimalCharacterReferenceState},
		{'F', HexadecimalCharacterReferenceStartState, true, HexadecimalCharacterReferenceState},
		{'g', HexadecimalCharacterReferenceStartState, true, DataState},

		{'5', DecimalCharacterReferenceStartState, true, DecimalCharacterReferenceState},
		{'a', DecimalCharacterReferenceStartState, true, DataState},

		{'5', HexadecimalCharacterReferenceState, false, HexadecimalCharacterReferenceState},
		{'C', HexadecimalCharacterReferenceState, false, HexadecimalCharacterReferenceState},
		{'c', HexadecimalCharacterReferenceState, false, HexadecimalCharacterReferenceState},
		{';', HexadecimalCharacterReferenceState, false, NumericCharacterReferenceEndState},
		{'g', HexadecimalCharacterReferenceState, false, NumericCharacterReferenceEndState},

		{'5', DecimalCharacterReferenceState, false, DecimalCharacterReferenceState},
		{';', DecimalCharacterReferenceState, false, NumericCharacterReferenceEndState},
		{'a', DecimalCharacterReferenceState, false, NumericCharacterReferenceEndState},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q in %s", tt.inRune, tt.startingState), func(t *testing.T) {
			t.Parallel()
			z, _ := newTestTokenizer(t)
			reconsume, next := z.stateToParser(tt.startingState)(tt.inRune, false)
			if reconsume != tt.shouldReconsume {
				t.Errorf("got reconsume %v, expected %v", reconsume, tt.shouldReconsume)
			}
			if next != tt.nextExpectedState {
				t.Errorf("got next state %s, expected %s", next, tt.nextExpectedState)
			}
		})
	}
}

// TestParseStatefulness feeds partial documents and checks where the
// machine parked: the current state, what the token builder holds, and
// whether a lookahead suspended waiting for more input.
func TestParseStatefulness(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name   string
		inHTML string
		opts   Options
		check  func(t *testing.T, z *Tokenizer, c *TokenCollector)
	}{
		{
			name:   "mid tag name",
			inHTML: "<di",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != TagNameState {
					t.Errorf("got state %s, expected %s", z.currentState, TagNameState)
				}
				if got := z.tokenBuilder.name.String(); got != "di" {
					t.Errorf("got pending tag name %q, expected %q", got, "di")
				}
				if len(c.Tokens) != 0 {
					t.Errorf("no tokens should be out yet, got %v", c.Tokens)
				}
			},
		},
		{
			name:   "mid attribute value",
			inHTML: `<a href="x`,
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != AttributeValueDoubleQuotedState {
					t.Errorf("got state %s, expected %s", z.currentState, AttributeValueDoubleQuotedState)
				}
				if got := z.tokenBuilder.attributeKey.String(); got != "href" {
					t.Errorf("got pending attribute name %q, expected %q", got, "href")
				}
				if got := z.tokenBuilder.attributeValue.String(); got != "x" {
					t.Errorf("got pending attribute value %q, expected %q", got, "x")
				}
			},
		},
		{
			name:   "mid comment",
			inHTML: "<!--ab",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != CommentState {
					t.Errorf("got state %s, expected %s", z.currentState, CommentState)
				}
				if got := z.tokenBuilder.data.String(); got != "ab" {
					t.Errorf("got pending comment data %q, expected %q", got, "ab")
				}
			},
		},
		{
			name:   "named reference waits for more input",
			inHTML: "&am",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if !z.waiting {
					t.Error("the machine should be suspended on the reference lookahead")
				}
				if z.currentState != NamedCharacterReferenceState {
					t.Errorf("got state %s, expected %s", z.currentState, NamedCharacterReferenceState)
				}
				if got := z.stream.Len(); got != 2 {
					t.Errorf("the match should have rewound the stream, got %d pending runes, expected 2", got)
				}
			},
		},
		{
			name:   "doctype keyword waits for more input",
			inHTML: "<!DOCTYPE html P",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if !z.waiting {
					t.Error("the machine should be suspended on the keyword lookahead")
				}
				if z.currentState != AfterDoctypeNameState {
					t.Errorf("got state %s, expected %s", z.currentState, AfterDoctypeNameState)
				}
				if got := z.stream.Len(); got != 1 {
					t.Errorf("got %d pending runes, expected the P to be back in the stream", got)
				}
			},
		},
		{
			name:   "comment open waits for more input",
			inHTML: "<!-",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if !z.waiting {
					t.Error("the machine should be suspended on the dash lookahead")
				}
				if z.currentState != MarkupDeclarationOpenState {
					t.Errorf("got state %s, expected %s", z.currentState, MarkupDeclarationOpenState)
				}
			},
		},
		{
			name:   "cdata open waits for more input",
			inHTML: "<![CD",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if !z.waiting {
					t.Error("the machine should be suspended on the CDATA lookahead")
				}
				if got := z.stream.Len(); got != 3 {
					t.Errorf("got %d pending runes, expected 3", got)
				}
			},
		},
		{
			name:   "title switches to rcdata",
			inHTML: "<title>",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != RCDATAState {
					t.Errorf("got state %s, expected %s", z.currentState, RCDATAState)
				}
				if z.lastEmittedStartTagName != "title" {
					t.Errorf("got last start tag %q, expected %q", z.lastEmittedStartTagName, "title")
				}
			},
		},
		{
			name:   "textarea switches to rcdata",
			inHTML: "<textarea>",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != RCDATAState {
					t.Errorf("got state %s, expected %s", z.currentState, RCDATAState)
				}
			},
		},
		{
			name:   "script switches to script data",
			inHTML: "<script>",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != ScriptDataState {
					t.Errorf("got state %s, expected %s", z.currentState, ScriptDataState)
				}
			},
		},
		{
			name:   "style switches to rawtext",
			inHTML: "<style>",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != RawTextState {
					t.Errorf("got state %s, expected %s", z.currentState, RawTextState)
				}
			},
		},
		{
			name:   "plaintext switches for good",
			inHTML: "<plaintext>",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != PlaintextState {
					t.Errorf("got state %s, expected %s", z.currentState, PlaintextState)
				}
			},
		},
		{
			name:   "noscript with scripting on",
			inHTML: "<noscript>",
			opts:   Options{ScriptingEnabled: true},
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != RawTextState {
					t.Errorf("got state %s, expected %s", z.currentState, RawTextState)
				}
			},
		},
		{
			name:   "noscript with scripting off",
			inHTML: "<noscript>",
			check: func(t *testing.T, z *Tokenizer, c *TokenCollector) {
				if z.currentState != DataState {
					t.Errorf("got state %s, expected %s", z.currentState, DataState)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &TokenCollector{}
			z, err := NewTokenizer(c, tt.opts)
			if err != nil {
				t.Fatalf("NewTokenizer: %v", err)
			}
			if err := z.Feed(tt.inHTML, false); err != nil {
				t.Fatalf("Feed(%q): %v", tt.inHTML, err)
			}
			tt.check(t, z, c)
		})
	}
}

// TestStreamingInvariance checks that the tokens and parse errors coming
// out of a document do not depend on how the document was cut into chunks.
func TestStreamingInvariance(t *testing.T) {
	t.Parallel()
	docs := []string{
		`<div class="a&amp;b">x&notit;y</div>`,
		`<script>var x = "<div>";</script>`,
		`<!DOCTYPE html><html><!--c--><title>t&lt;</title>`,
		"a\r\nb\rc",
		`<!DOCTYPE html PUBLIC "p" "s">x`,
		`<textarea></textarea>done`,
		`&#x26;&#38;&amp;`,
		`éé<b a='é'>`,
		`<![CDATA[x]]>`,
		`<ul><li a=1 b c=''><!--[if]--></ul>`,
	}

	for _, doc := range docs {
		doc := doc
		t.Run(doc, func(t *testing.T) {
			t.Parallel()
			want := collect(t, doc, Options{})
			runes := []rune(doc)
			for i := 0; i <= len(runes); i++ {
				c := &TokenCollector{}
				z, err := NewTokenizer(c, Options{})
				require.NoError(t, err)
				require.NoError(t, z.Feed(string(runes[:i]), false))
				require.NoError(t, z.Feed(string(runes[i:]), true))
				require.Equal(t, want.Tokens, c.Tokens, "split after %d runes", i)
				require.Equal(t, want.Errors, c.Errors, "split after %d runes", i)
			}

			c := &TokenCollector{}
			z, err := NewTokenizer(c, Options{})
			require.NoError(t, err)
			for _, r := range runes {
				require.NoError(t, z.Feed(string(r), false))
			}
			require.NoError(t, z.Feed("", true))
			assert.Equal(t, want.Tokens, c.Tokens, "fed one rune at a time")
			assert.Equal(t, want.Errors, c.Errors, "fed one rune at a time")
		})
	}
}

// serializeTokens renders tokens back to markup, quoting attribute values
// and escaping the characters the tokenizer would reinterpret.
func serializeTokens(tokens []Token) string {
	text := strings.NewReplacer("&", "&amp;", "<", "&lt;")
	attr := strings.NewReplacer("&", "&amp;", `"`, "&quot;")
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Type {
		case CharacterToken:
			b.WriteString(text.Replace(tok.Data))
		case StartTagToken:
			b.WriteByte('<')
			b.WriteString(tok.TagName)
			for _, a := range tok.Attributes {
				fmt.Fprintf(&b, " %s=%q", a.Name, attr.Replace(a.Value))
			}
			if tok.SelfClosing {
				b.WriteByte('/')
			}
			b.WriteByte('>')
		case EndTagToken:
			fmt.Fprintf(&b, "</%s>", tok.TagName)
		case CommentToken:
			fmt.Fprintf(&b, "<!--%s-->", tok.Data)
		case DoctypeToken:
			b.WriteString("<!DOCTYPE")
			if tok.TagName != Missing {
				b.WriteByte(' ')
				b.WriteString(tok.TagName)
			}
			if tok.PublicIdentifier != Missing {
				fmt.Fprintf(&b, " PUBLIC %q", tok.PublicIdentifier)
				if tok.SystemIdentifier != Missing {
					fmt.Fprintf(&b, " %q", tok.SystemIdentifier)
				}
			} else if tok.SystemIdentifier != Missing {
				fmt.Fprintf(&b, " SYSTEM %q", tok.SystemIdentifier)
			}
			b.WriteByte('>')
		case EndOfFileToken:
		}
	}
	return b.String()
}

// TestRoundTrip tokenizes the serialized form of a token stream a second
// time. Entity expansion and case folding already happened on the first
// pass, so the serialized document is a fixed point: the second pass has
// to produce the same tokens.
func TestRoundTrip(t *testing.T) {
	t.Parallel()
	docs := []string{
		`<div class="a" id="b">x</div>`,
		`<!DOCTYPE html><p>1 &amp; 2</p>`,
		`<!DOCTYPE html PUBLIC "-//W3C" "sys"><html>`,
		`<br/><!--note--><TITLE>t</TITLE>`,
		`<img src="/x.png" alt="a b">text`,
		`<a href="?x=1&amp;y=2">&lt;escaped&gt;</a>`,
	}
	for _, doc := range docs {
		doc := doc
		t.Run(doc, func(t *testing.T) {
			t.Parallel()
			first := collect(t, doc, Options{})
			second := collect(t, serializeTokens(first.Tokens), Options{})
			assert.Equal(t, first.Tokens, second.Tokens)
		})
	}
}

func TestRawTextContainment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		opts Options
		want []Token
	}{
		{
			name: "script keeps markup as text",
			in:   `<script>var x = "<div>";</script>`,
			want: []Token{
				{Type: StartTagToken, TagName: "script", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `var x = "<div>";`},
				{Type: EndTagToken, TagName: "script", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "style is raw text",
			in:   `<style>a > b { color: red; }</style>`,
			want: []Token{
				{Type: StartTagToken, TagName: "style", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `a > b { color: red; }`},
				{Type: EndTagToken, TagName: "style", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "rcdata decodes references but not tags",
			in:   `<title>a &amp; <b></title>`,
			want: []Token{
				{Type: StartTagToken, TagName: "title", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `a & <b>`},
				{Type: EndTagToken, TagName: "title", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "rawtext does not decode references",
			in:   `<style>&amp;</style>`,
			want: []Token{
				{Type: StartTagToken, TagName: "style", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `&amp;`},
				{Type: EndTagToken, TagName: "style", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "textarea end tag must match",
			in:   `<textarea></div></textarea>`,
			want: []Token{
				{Type: StartTagToken, TagName: "textarea", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `</div>`},
				{Type: EndTagToken, TagName: "textarea", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "plaintext never ends",
			in:   `<plaintext>a</plaintext>`,
			want: []Token{
				{Type: StartTagToken, TagName: "plaintext", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `a</plaintext>`},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "script double escape",
			in:   `<script><!--<script>a</script>--></script>`,
			want: []Token{
				{Type: StartTagToken, TagName: "script", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `<!--<script>a</script>-->`},
				{Type: EndTagToken, TagName: "script", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "noscript is raw text with scripting on",
			in:   `<noscript><b></noscript>`,
			opts: Options{ScriptingEnabled: true},
			want: []Token{
				{Type: StartTagToken, TagName: "noscript", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: `<b>`},
				{Type: EndTagToken, TagName: "noscript", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "noscript parses normally with scripting off",
			in:   `<noscript><b></noscript>`,
			want: []Token{
				{Type: StartTagToken, TagName: "noscript", Attributes: []Attribute{}},
				{Type: StartTagToken, TagName: "b", Attributes: []Attribute{}},
				{Type: EndTagToken, TagName: "noscript", Attributes: []Attribute{}},
				{Type: EndOfFileToken},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := collect(t, tt.in, tt.opts)
			assert.Equal(t, tt.want, c.Tokens)
			assert.Empty(t, c.Errors)
		})
	}
}

func TestAppropriateEndTag(t *testing.T) {
	t.Parallel()
	// the end tag name may be followed by whitespace and attributes once it
	// matches the open element
	c := collect(t, "<textarea></textarea >x", Options{})
	want := []Token{
		{Type: StartTagToken, TagName: "textarea", Attributes: []Attribute{}},
		{Type: EndTagToken, TagName: "textarea", Attributes: []Attribute{}},
		{Type: CharacterToken, Data: "x"},
		{Type: EndOfFileToken},
	}
	assert.Equal(t, want, c.Tokens)
}

// forcingSink returns a state override from the start tag callback, the way
// a tree builder redirects the tokenizer for element-specific content.
type forcingSink struct {
	TokenCollector
	on    string
	force State
}

func (s *forcingSink) StartTag(tok *Token) *State {
	s.TokenCollector.StartTag(tok)
	if tok.TagName == s.on {
		next := s.force
		return &next
	}
	return nil
}

func TestSinkStateOverride(t *testing.T) {
	t.Parallel()

	t.Run("force plaintext", func(t *testing.T) {
		t.Parallel()
		s := &forcingSink{on: "listing", force: PlaintextState}
		z, err := NewTokenizer(s, Options{})
		require.NoError(t, err)
		require.NoError(t, z.Feed("<listing>a<b>", true))
		want := []Token{
			{Type: StartTagToken, TagName: "listing", Attributes: []Attribute{}},
			{Type: CharacterToken, Data: "a<b>"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, s.Tokens)
	})

	t.Run("override beats the script data switch", func(t *testing.T) {
		t.Parallel()
		s := &forcingSink{on: "script", force: DataState}
		z, err := NewTokenizer(s, Options{})
		require.NoError(t, err)
		require.NoError(t, z.Feed("<script><b>x</b></script>", true))
		want := []Token{
			{Type: StartTagToken, TagName: "script", Attributes: []Attribute{}},
			{Type: StartTagToken, TagName: "b", Attributes: []Attribute{}},
			{Type: CharacterToken, Data: "x"},
			{Type: EndTagToken, TagName: "b", Attributes: []Attribute{}},
			{Type: EndTagToken, TagName: "script", Attributes: []Attribute{}},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, s.Tokens)
	})

	t.Run("set state between feeds", func(t *testing.T) {
		t.Parallel()
		c := &TokenCollector{}
		z, err := NewTokenizer(c, Options{})
		require.NoError(t, err)
		require.NoError(t, z.Feed("<x>", false))
		require.NoError(t, z.SetState(PlaintextState))
		require.NoError(t, z.Feed("<y>", true))
		want := []Token{
			{Type: StartTagToken, TagName: "x", Attributes: []Attribute{}},
			{Type: CharacterToken, Data: "<y>"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, c.Tokens)
	})
}

func TestCDATASections(t *testing.T) {
	t.Parallel()

	t.Run("foreign content gets real cdata", func(t *testing.T) {
		t.Parallel()
		c := &TokenCollector{}
		z, err := NewTokenizer(c, Options{})
		require.NoError(t, err)
		z.SetForeignContent(true)
		require.NoError(t, z.Feed("<![CDATA[x<y]]>", true))
		want := []Token{
			{Type: CharacterToken, Data: "x<y"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, c.Tokens)
		assert.Empty(t, c.Errors)
	})

	t.Run("brackets inside the section", func(t *testing.T) {
		t.Parallel()
		c := &TokenCollector{}
		z, err := NewTokenizer(c, Options{})
		require.NoError(t, err)
		z.SetForeignContent(true)
		require.NoError(t, z.Feed("<![CDATA[a]]b]]>", true))
		want := []Token{
			{Type: CharacterToken, Data: "a]]b"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, c.Tokens)
	})

	t.Run("html content gets a bogus comment", func(t *testing.T) {
		t.Parallel()
		c := collect(t, "<![CDATA[x<y]]>", Options{})
		want := []Token{
			{Type: CommentToken, Data: "[CDATA[x<y]]"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, c.Tokens)
		assert.Equal(t, []ErrorCode{ErrCDATAInHTMLContent}, errorCodes(c.Errors))
	})
}

func TestConstructionErrors(t *testing.T) {
	t.Parallel()

	_, err := NewTokenizer(nil, Options{})
	require.Error(t, err)
	assert.True(t, IsUsageError(err))

	_, err = NewTokenizer(&TokenCollector{}, Options{InitialState: State(200)})
	require.Error(t, err)
	assert.True(t, IsUsageError(err))

	// the character reference states have no return state to go back to
	_, err = NewTokenizer(&TokenCollector{}, Options{InitialState: CharacterReferenceState})
	require.Error(t, err)
	assert.True(t, IsUsageError(err))

	z, _ := newTestTokenizer(t)
	err = z.SetState(State(999))
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
}

func TestFeedAfterFinal(t *testing.T) {
	t.Parallel()
	z, c := newTestTokenizer(t)
	require.NoError(t, z.Feed("<p>", true))
	assert.True(t, z.Done())
	assert.Equal(t, EndOfFileToken, c.Tokens[len(c.Tokens)-1].Type)

	err := z.Feed("more", false)
	require.Error(t, err)
	assert.True(t, IsUsageError(err))

	err = z.Insert("more")
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
}

func TestEOFInTagDropsPartialTag(t *testing.T) {
	t.Parallel()
	c := collect(t, "<di", Options{})
	assert.Equal(t, []Token{{Type: EndOfFileToken}}, c.Tokens)
	assert.Equal(t, []ErrorCode{ErrEOFInTag}, errorCodes(c.Errors))

	// the same prefix completes fine when more input arrives instead
	c2 := &TokenCollector{}
	z, err := NewTokenizer(c2, Options{})
	require.NoError(t, err)
	require.NoError(t, z.Feed("<di", false))
	require.NoError(t, z.Feed("v>", true))
	want := []Token{
		{Type: StartTagToken, TagName: "div", Attributes: []Attribute{}},
		{Type: EndOfFileToken},
	}
	assert.Equal(t, want, c2.Tokens)
	assert.Empty(t, c2.Errors)
}

// reentrantFeedSink tries to feed from inside a callback, which has to fail
// without corrupting the parse in progress.
type reentrantFeedSink struct {
	TokenCollector
	z   *Tokenizer
	err error
}

func (s *reentrantFeedSink) StartTag(tok *Token) *State {
	if s.err == nil {
		s.err = s.z.Feed("x", false)
	}
	return s.TokenCollector.StartTag(tok)
}

func TestReentrantFeedRejected(t *testing.T) {
	t.Parallel()
	s := &reentrantFeedSink{}
	z, err := NewTokenizer(s, Options{})
	require.NoError(t, err)
	s.z = z
	require.NoError(t, z.Feed("<b>x</b>", true))
	require.Error(t, s.err)
	assert.True(t, IsUsageError(s.err))
	want := []Token{
		{Type: StartTagToken, TagName: "b", Attributes: []Attribute{}},
		{Type: CharacterToken, Data: "x"},
		{Type: EndTagToken, TagName: "b", Attributes: []Attribute{}},
		{Type: EndOfFileToken},
	}
	assert.Equal(t, want, s.Tokens)
}

// writeSink inserts text at the cursor from inside a start tag callback,
// the shape of document.write.
type writeSink struct {
	TokenCollector
	z     *Tokenizer
	on    string
	text  string
	fired bool
	err   error
}

func (s *writeSink) StartTag(tok *Token) *State {
	st := s.TokenCollector.StartTag(tok)
	if !s.fired && tok.TagName == s.on {
		s.fired = true
		s.err = s.z.Insert(s.text)
	}
	return st
}

func TestInsert(t *testing.T) {
	t.Parallel()

	t.Run("reentrant insertion lands before pending input", func(t *testing.T) {
		t.Parallel()
		s := &writeSink{on: "script", text: "<b></b>"}
		z, err := NewTokenizer(s, Options{AllowReentrantInsertion: true})
		require.NoError(t, err)
		s.z = z
		require.NoError(t, z.Feed("<script></script>after", true))
		require.NoError(t, s.err)
		// the inserted text is script data, so it comes out as text, not
		// tags
		want := []Token{
			{Type: StartTagToken, TagName: "script", Attributes: []Attribute{}},
			{Type: CharacterToken, Data: "<b></b>"},
			{Type: EndTagToken, TagName: "script", Attributes: []Attribute{}},
			{Type: CharacterToken, Data: "after"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, s.Tokens)
	})

	t.Run("reentrant insertion disabled", func(t *testing.T) {
		t.Parallel()
		s := &writeSink{on: "script", text: "<b></b>"}
		z, err := NewTokenizer(s, Options{})
		require.NoError(t, err)
		s.z = z
		require.NoError(t, z.Feed("<script></script>", true))
		require.Error(t, s.err)
		assert.True(t, IsUsageError(s.err))
	})

	t.Run("insert between feeds", func(t *testing.T) {
		t.Parallel()
		c := &TokenCollector{}
		z, err := NewTokenizer(c, Options{})
		require.NoError(t, err)
		require.NoError(t, z.Feed("<a>", false))
		require.NoError(t, z.Insert("x"))
		require.NoError(t, z.Feed("", true))
		want := []Token{
			{Type: StartTagToken, TagName: "a", Attributes: []Attribute{}},
			{Type: CharacterToken, Data: "x"},
			{Type: EndOfFileToken},
		}
		assert.Equal(t, want, c.Tokens)
	})
}

func TestFragmentContexts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		opts Options
		want []Token
	}{
		{
			name: "textarea fragment",
			in:   "a</textarea>b",
			opts: Options{InitialState: RCDATAState, LastStartTag: "textarea"},
			want: []Token{
				{Type: CharacterToken, Data: "a"},
				{Type: EndTagToken, TagName: "textarea", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: "b"},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "script fragment",
			in:   "1</script>2",
			opts: Options{InitialState: ScriptDataState, LastStartTag: "SCRIPT"},
			want: []Token{
				{Type: CharacterToken, Data: "1"},
				{Type: EndTagToken, TagName: "script", Attributes: []Attribute{}},
				{Type: CharacterToken, Data: "2"},
				{Type: EndOfFileToken},
			},
		},
		{
			name: "plaintext fragment",
			in:   "<a>&amp;",
			opts: Options{InitialState: PlaintextState},
			want: []Token{
				{Type: CharacterToken, Data: "<a>&amp;"},
				{Type: EndOfFileToken},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := collect(t, tt.in, tt.opts)
			assert.Equal(t, tt.want, c.Tokens)
		})
	}
}

func TestBOMHandling(t *testing.T) {
	t.Parallel()

	c := collect(t, "\uFEFFa", DefaultOptions())
	assert.Equal(t, []Token{
		{Type: CharacterToken, Data: "a"},
		{Type: EndOfFileToken},
	}, c.Tokens)

	// the zero options keep the mark
	c = collect(t, "\uFEFFa", Options{})
	assert.Equal(t, []Token{
		{Type: CharacterToken, Data: "\uFEFFa"},
		{Type: EndOfFileToken},
	}, c.Tokens)

	// only the first code point of the stream is a candidate
	c = collect(t, "a\uFEFF", DefaultOptions())
	assert.Equal(t, []Token{
		{Type: CharacterToken, Data: "a\uFEFF"},
		{Type: EndOfFileToken},
	}, c.Tokens)
}

func TestExactErrors(t *testing.T) {
	t.Parallel()

	c := collect(t, "a\u0001b", Options{ExactErrors: true})
	assert.Equal(t, []ErrorCode{ErrControlCharacterInInputStream}, errorCodes(c.Errors))

	c = collect(t, "a\uFDD0b", Options{ExactErrors: true})
	assert.Equal(t, []ErrorCode{ErrNoncharacterInInputStream}, errorCodes(c.Errors))

	// off by default
	c = collect(t, "a\u0001\uFDD0b", Options{})
	assert.Empty(t, c.Errors)
}

func TestPositionReporting(t *testing.T) {
	t.Parallel()
	c := collect(t, "a\n<1", Options{})
	require.Len(t, c.Errors, 1)
	e := c.Errors[0]
	assert.Equal(t, ErrInvalidFirstCharacterOfTagName, e.Code)
	assert.Equal(t, 2, e.Line)
	assert.Equal(t, 3, e.Column)
	assert.Equal(t, 4, e.Offset)

	// a second line continues counting columns from one
	c = collect(t, "<p>\n<p>\n &#; x", Options{})
	require.Len(t, c.Errors, 1)
	e = c.Errors[0]
	assert.Equal(t, ErrAbsenceOfDigitsInNumericCharacterReference, e.Code)
	assert.Equal(t, 3, e.Line)
	assert.Equal(t, 5, e.Column)
	assert.Equal(t, 12, e.Offset)
}

func TestStateTimes(t *testing.T) {
	t.Parallel()
	c := &TokenCollector{}
	z, err := NewTokenizer(c, Options{Profile: true})
	require.NoError(t, err)
	require.NoError(t, z.Feed("<b>hello</b>", true))
	times := z.StateTimes()
	require.NotNil(t, times)
	assert.NotEmpty(t, times)

	z2, _ := newTestTokenizer(t)
	require.NoError(t, z2.Feed("x", true))
	assert.Nil(t, z2.StateTimes())
}

func TestLoggerOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.TraceLevel)
	c := &TokenCollector{}
	z, err := NewTokenizer(c, Options{Logger: log})
	require.NoError(t, err)
	require.NoError(t, z.Feed("<b>x", true))
	assert.Contains(t, buf.String(), "[TOKEN]")
}

// The html5lib-tests token format, the lingua franca for comparing HTML
// tokenizers. Files under testdata/tokenizer use a subset of it: no double
// escaping, and errors carry only their codes.
type html5LibFile struct {
	Tests []html5LibTest `json:"tests"`
}

type html5LibTest struct {
	Description   string          `json:"description"`
	Input         string          `json:"input"`
	Output        [][]interface{} `json:"output"`
	InitialStates []string        `json:"initialStates"`
	LastStartTag  string          `json:"lastStartTag"`
	Errors        []html5LibError `json:"errors"`
}

type html5LibError struct {
	Code string `json:"code"`
}

func getInitState(name string) (State, bool) {
	switch name {
	case "Data state":
		return DataState, true
	case "PLAINTEXT state":
		return PlaintextState, true
	case "RCDATA state":
		return RCDATAState, true
	case "RAWTEXT state":
		return RawTextState, true
	case "Script data state":
		return ScriptDataState, true
	case "CDATA section state":
		return CDATASectionState, true
	}
	return DataState, false
}

// formatOutputs converts the JSON output arrays into the tokens the
// collector should have recorded, merged and terminated the same way.
func formatOutputs(t *testing.T, outputs [][]interface{}) []Token {
	t.Helper()
	var tokens []Token
	for _, v := range outputs {
		kind, ok := v[0].(string)
		if !ok {
			t.Fatalf("malformed output entry %v", v)
		}
		switch kind {
		case "Character":
			data := v[1].(string)
			if n := len(tokens); n > 0 && tokens[n-1].Type == CharacterToken {
				tokens[n-1].Data += data
				continue
			}
			tokens = append(tokens, Token{Type: CharacterToken, Data: data})
		case "StartTag":
			tok := Token{Type: StartTagToken, TagName: v[1].(string), Attributes: []Attribute{}}
			for name, value := range v[2].(map[string]interface{}) {
				tok.Attributes = append(tok.Attributes, Attribute{Name: name, Value: value.(string)})
			}
			if len(v) > 3 {
				tok.SelfClosing = v[3].(bool)
			}
			tokens = append(tokens, tok)
		case "EndTag":
			tokens = append(tokens, Token{Type: EndTagToken, TagName: v[1].(string), Attributes: []Attribute{}})
		case "Comment":
			tokens = append(tokens, Token{Type: CommentToken, Data: v[1].(string)})
		case "DOCTYPE":
			tok := Token{
				Type:             DoctypeToken,
				TagName:          Missing,
				PublicIdentifier: Missing,
				SystemIdentifier: Missing,
			}
			if s, ok := v[1].(string); ok {
				tok.TagName = s
			}
			if s, ok := v[2].(string); ok {
				tok.PublicIdentifier = s
			}
			if s, ok := v[3].(string); ok {
				tok.SystemIdentifier = s
			}
			tok.ForceQuirks = !v[4].(bool)
			tokens = append(tokens, tok)
		default:
			t.Fatalf("unknown output token kind %q", kind)
		}
	}
	return append(tokens, Token{Type: EndOfFileToken})
}

// sortedAttrs returns tokens with each attribute list sorted by name, since
// the JSON object the expectations use has no order to preserve.
func sortedAttrs(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	for i := range out {
		if len(out[i].Attributes) == 0 {
			if out[i].Type == StartTagToken || out[i].Type == EndTagToken {
				out[i].Attributes = []Attribute{}
			}
			continue
		}
		attrs := make([]Attribute, len(out[i].Attributes))
		copy(attrs, out[i].Attributes)
		sort.Slice(attrs, func(a, b int) bool { return attrs[a].Name < attrs[b].Name })
		out[i].Attributes = attrs
	}
	return out
}

func TestHTML5Lib(t *testing.T) {
	t.Parallel()
	dir := filepath.Join("testdata", "tokenizer")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".test" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("reading %s: %v", entry.Name(), err)
		}
		var file html5LibFile
		if err := json.Unmarshal(raw, &file); err != nil {
			t.Fatalf("parsing %s: %v", entry.Name(), err)
		}
		for _, tt := range file.Tests {
			tt := tt
			states := tt.InitialStates
			if len(states) == 0 {
				states = []string{"Data state"}
			}
			for _, stateName := range states {
				stateName := stateName
				t.Run(tt.Description+"/"+stateName, func(t *testing.T) {
					t.Parallel()
					initState, ok := getInitState(stateName)
					if !ok {
						t.Fatalf("unknown initial state %q", stateName)
					}
					c := &TokenCollector{}
					z, err := NewTokenizer(c, Options{
						InitialState: initState,
						LastStartTag: tt.LastStartTag,
					})
					if err != nil {
						t.Fatalf("NewTokenizer: %v", err)
					}
					if err := z.Feed(tt.Input, true); err != nil {
						t.Fatalf("Feed(%q): %v", tt.Input, err)
					}

					want := sortedAttrs(formatOutputs(t, tt.Output))
					got := sortedAttrs(c.Tokens)
					if !reflect.DeepEqual(got, want) {
						t.Errorf("got tokens %v, expected %v", got, want)
					}

					wantCodes := make([]ErrorCode, 0, len(tt.Errors))
					for _, e := range tt.Errors {
						wantCodes = append(wantCodes, ErrorCode(e.Code))
					}
					gotCodes := errorCodes(c.Errors)
					if !reflect.DeepEqual(gotCodes, wantCodes) {
						t.Errorf("got parse errors %v, expected %v", gotCodes, wantCodes)
					}
				})
			}
		}
	}
}
