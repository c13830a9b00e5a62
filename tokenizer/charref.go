package tokenizer

import (
	"github.com/pkg/errors"
)

// charRefNode is one node of the named character reference trie. A
// non-empty value marks the end of a complete reference name; names that
// are prefixes of longer names (not vs notin;) carry a value on an
// interior node.
type charRefNode struct {
	children map[rune]*charRefNode
	value    string
}

// charRefTrie indexes namedCharRefs by rune so a match can walk the input
// one code point at a time and remember the longest complete name seen.
var charRefTrie = buildCharRefTrie()

func buildCharRefTrie() *charRefNode {
	root := &charRefNode{children: map[rune]*charRefNode{}}
	for name, value := range namedCharRefs {
		node := root
		for _, r := range name {
			next := node.children[r]
			if next == nil {
				next = &charRefNode{children: map[rune]*charRefNode{}}
				node.children[r] = next
			}
			node = next
		}
		node.value = value
	}
	return root
}

// matchNamedCharRef consumes the longest named character reference at the
// stream cursor. It reports the matched name without the leading ampersand,
// its expansion, and the input rune that follows the name when one was
// seen; name == "" means nothing at the cursor opens any reference name.
//
// On ErrUnderrun the cursor is rewound to where it started so the whole
// match can be retried once more input arrives.
func matchNamedCharRef(stream *InputStream) (name, value string, next rune, hasNext bool, err error) {
	stream.Mark()
	node := charRefTrie
	var walked []rune
	best := 0
	for {
		r, rerr := stream.Next()
		if rerr != nil {
			if errors.Is(rerr, ErrUnderrun) {
				stream.Reset()
				return "", "", 0, false, ErrUnderrun
			}
			// end of input ends the walk
			break
		}
		walked = append(walked, r)
		node = node.children[r]
		if node == nil {
			break
		}
		if node.value != "" {
			best = len(walked)
			value = node.value
		}
	}
	stream.Reset()
	if best == 0 {
		return "", "", 0, false, nil
	}
	if _, derr := stream.Discard(best); derr != nil {
		// the runes were already read once, so this cannot happen
		return "", "", 0, false, derr
	}
	if best < len(walked) {
		next = walked[best]
		hasNext = true
	}
	return string(walked[:best]), value, next, hasNext, nil
}

// numericCharRefReplacements maps the C1 control range of a numeric
// character reference to the Windows-1252 characters authors almost always
// meant, per the tokenizer's numeric character reference end state.
var numericCharRefReplacements = map[int]rune{
	0x80: '€', // EURO SIGN
	0x82: '‚', // SINGLE LOW-9 QUOTATION MARK
	0x83: 'ƒ', // LATIN SMALL LETTER F WITH HOOK
	0x84: '„', // DOUBLE LOW-9 QUOTATION MARK
	0x85: '…', // HORIZONTAL ELLIPSIS
	0x86: '†', // DAGGER
	0x87: '‡', // DOUBLE DAGGER
	0x88: 'ˆ', // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: '‰', // PER MILLE SIGN
	0x8A: 'Š', // LATIN CAPITAL LETTER S WITH CARON
	0x8B: '‹', // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: 'Œ', // LATIN CAPITAL LIGATURE OE
	0x8E: 'Ž', // LATIN CAPITAL LETTER Z WITH CARON
	0x91: '‘', // LEFT SINGLE QUOTATION MARK
	0x92: '’', // RIGHT SINGLE QUOTATION MARK
	0x93: '“', // LEFT DOUBLE QUOTATION MARK
	0x94: '”', // RIGHT DOUBLE QUOTATION MARK
	0x95: '•', // BULLET
	0x96: '–', // EN DASH
	0x97: '—', // EM DASH
	0x98: '˜', // SMALL TILDE
	0x99: '™', // TRADE MARK SIGN
	0x9A: 'š', // LATIN SMALL LETTER S WITH CARON
	0x9B: '›', // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: 'œ', // LATIN SMALL LIGATURE OE
	0x9E: 'ž', // LATIN SMALL LETTER Z WITH CARON
	0x9F: 'Ÿ', // LATIN CAPITAL LETTER Y WITH DIAERESIS
}
