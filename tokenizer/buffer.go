package tokenizer

import (
	"io"
)

// charRunLimit caps how much character data coalesces into one Character
// token. The cap is a fixed constant so the flush points depend only on
// content, never on how the input was chunked.
const charRunLimit = 4096

// segment is one contiguous piece of pending input. Only the front segment
// is ever partially consumed.
type segment []rune

// InputStream holds the pending input text as a deque of segments: Feed
// appends at the back, Insert and Unread push at the front, and the cursor
// consumes from the front, popping segments as they drain. Lower segments
// are never mutated while one sits in front of them, which is what makes
// document.write-style insertion safe.
//
// Feeding normalizes the input the way the parsing spec's preprocessing
// stage does: CRLF and lone CR become LF (tracked across chunk boundaries),
// and an optional leading byte order mark is dropped. The state machine
// never sees a carriage return.
type InputStream struct {
	segments []segment
	off      int // consumed prefix of segments[0]
	final    bool
	started  bool // a first rune has been seen (BOM window closed)
	pendingCR bool

	discardBOM  bool
	exactErrors bool
	report      func(ErrorCode)

	// single outstanding backtrack point for speculative matches
	marked  bool
	history []rune
	mark    position

	pos position
	// highest offset ever consumed; runes re-read after Unread or Reset
	// sit at or below it and are not re-checked
	maxOffset int
}

type position struct {
	line, col, offset int
	// column to restore when a line feed is pushed back
	prevCol int
}

// NewInputStream returns an empty, unfinalized stream positioned at 1:1.
func NewInputStream() *InputStream {
	return &InputStream{pos: position{line: 1, col: 1}}
}

// Feed appends a chunk of input. Feeding a finalized stream is caller
// misuse.
func (s *InputStream) Feed(chunk string) error {
	if s.final {
		return usageErrorf("Feed", "input after the final chunk")
	}
	if chunk == "" {
		return nil
	}
	seg := s.normalize(chunk)
	if len(seg) > 0 {
		s.segments = append(s.segments, seg)
	}
	return nil
}

// Insert pushes text in front of the cursor, ahead of everything already
// pending. The text joins the stream at the current position, so marks taken
// before the insertion point stay valid.
func (s *InputStream) Insert(text string) error {
	if s.final {
		return usageErrorf("Insert", "input after the final chunk")
	}
	if text == "" {
		return nil
	}
	seg := s.normalizeInserted(text)
	if len(seg) == 0 {
		return nil
	}
	s.pushFront(seg)
	return nil
}

// Finalize marks the stream complete: once the pending segments drain, Next
// reports io.EOF instead of ErrUnderrun.
func (s *InputStream) Finalize() {
	s.final = true
}

// Finalized reports whether the final chunk has been fed.
func (s *InputStream) Finalized() bool {
	return s.final
}

// Len returns the number of pending runes.
func (s *InputStream) Len() int {
	n := -s.off
	for _, seg := range s.segments {
		n += len(seg)
	}
	return n
}

// Next consumes and returns one rune. It returns ErrUnderrun when the
// pending input is drained but more may still arrive, and io.EOF once the
// stream is finalized and empty.
func (s *InputStream) Next() (rune, error) {
	for len(s.segments) > 0 && s.off >= len(s.segments[0]) {
		s.segments = s.segments[1:]
		s.off = 0
	}
	if len(s.segments) == 0 {
		if s.final {
			return 0, io.EOF
		}
		return 0, ErrUnderrun
	}
	r := s.segments[0][s.off]
	s.off++
	if s.marked {
		s.history = append(s.history, r)
	}
	s.advance(r)
	return r, nil
}

// Peek returns the next k runes without consuming them. When fewer than k
// are pending it returns what there is, with ErrUnderrun unless the stream
// is finalized.
func (s *InputStream) Peek(k int) ([]rune, error) {
	out := make([]rune, 0, k)
	off := s.off
	for _, seg := range s.segments {
		for _, r := range seg[off:] {
			out = append(out, r)
			if len(out) == k {
				return out, nil
			}
		}
		off = 0
	}
	if !s.final {
		return out, ErrUnderrun
	}
	return out, nil
}

// Discard consumes n runes, returning how many were dropped. Callers use it
// after a Peek has already decided what the runes mean.
func (s *InputStream) Discard(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := s.Next(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Unread pushes runes back in front of the cursor in the order given, so an
// immediate Next returns rs[0] again. Unread is the explicit pushback the
// reconsume and suspension paths rely on; it must not be called while a
// mark is outstanding.
func (s *InputStream) Unread(rs ...rune) {
	if len(rs) == 0 {
		return
	}
	for i := len(rs) - 1; i >= 0; i-- {
		s.retreat(rs[i])
	}
	seg := make(segment, len(rs))
	copy(seg, rs)
	s.pushFront(seg)
}

// Mark records the current position as a backtrack point. Consumed runes
// are retained until the mark is resolved, so a speculative match can
// straddle Feed boundaries. One mark may be outstanding at a time.
func (s *InputStream) Mark() {
	s.marked = true
	s.history = s.history[:0]
	s.mark = s.pos
}

// Reset rewinds the cursor to the mark, re-queueing everything consumed
// since, and clears the mark.
func (s *InputStream) Reset() {
	if !s.marked {
		return
	}
	s.marked = false
	if len(s.history) > 0 {
		seg := make(segment, len(s.history))
		copy(seg, s.history)
		s.pushFront(seg)
		s.history = s.history[:0]
	}
	s.pos = s.mark
}

// Unmark drops the mark, keeping the cursor where it is.
func (s *InputStream) Unmark() {
	s.marked = false
	s.history = s.history[:0]
}

// Position returns the 1-based line and column of the cursor plus its
// absolute rune offset.
func (s *InputStream) Position() (line, col, offset int) {
	return s.pos.line, s.pos.col, s.pos.offset
}

func (s *InputStream) pushFront(seg segment) {
	if s.off > 0 {
		s.segments[0] = s.segments[0][s.off:]
		s.off = 0
	}
	s.segments = append([]segment{seg}, s.segments...)
}

func (s *InputStream) advance(r rune) {
	s.pos.offset++
	if r == '\n' {
		s.pos.line++
		s.pos.prevCol = s.pos.col
		s.pos.col = 1
	} else {
		s.pos.col++
	}
	if s.pos.offset > s.maxOffset {
		s.maxOffset = s.pos.offset
		if s.exactErrors {
			s.checkStreamRune(r)
		}
	}
}

func (s *InputStream) retreat(r rune) {
	s.pos.offset--
	if r == '\n' {
		s.pos.line--
		s.pos.col = s.pos.prevCol
	} else {
		s.pos.col--
	}
}

// normalize applies the preprocessing rules to a fed chunk: CRLF and CR
// become LF, with a carriage return at a chunk boundary remembered so the
// line feed opening the next chunk is still swallowed, and a leading BOM is
// dropped when configured.
func (s *InputStream) normalize(chunk string) segment {
	seg := make(segment, 0, len(chunk))
	for _, r := range chunk {
		if s.pendingCR {
			s.pendingCR = false
			if r == '\n' {
				continue
			}
		}
		if !s.started {
			s.started = true
			if s.discardBOM && r == '\uFEFF' {
				continue
			}
		}
		if r == '\r' {
			s.pendingCR = true
			r = '\n'
		}
		seg = append(seg, r)
	}
	return seg
}

// normalizeInserted newline-normalizes inserted text on its own: the
// insertion is a self-contained stream joined at the cursor, so its trailing
// carriage return does not pair with whatever follows in the outer stream.
func (s *InputStream) normalizeInserted(text string) segment {
	seg := make(segment, 0, len(text))
	var cr bool
	for _, r := range text {
		if cr && r == '\n' {
			cr = false
			continue
		}
		cr = r == '\r'
		if cr {
			r = '\n'
		}
		seg = append(seg, r)
	}
	return seg
}

// checkStreamRune reports the preprocessing-stage errors for a net-new rune
// the cursor just passed. These per-character checks only run with exact
// errors on; they cost a branch per rune.
func (s *InputStream) checkStreamRune(r rune) {
	if s.report == nil {
		return
	}
	code := int(r)
	switch {
	case isNonCharacter(code):
		s.report(ErrNoncharacterInInputStream)
	case code != 0 && isControl(code) && !isASCIIWhitespace(code):
		s.report(ErrControlCharacterInInputStream)
	}
}
