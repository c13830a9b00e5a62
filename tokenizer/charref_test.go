package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refStream(t *testing.T, in string, final bool) *InputStream {
	t.Helper()
	s := NewInputStream()
	require.NoError(t, s.Feed(in))
	if final {
		s.Finalize()
	}
	return s
}

func TestMatchNamedCharRef(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		in        string
		name      string
		value     string
		next      rune
		hasNext   bool
		remaining int
	}{
		// the full reference consumes through the semicolon, the walk sees
		// the rune after it before giving up on a longer name
		{"amp;x", "amp;", "&", 'x', true, 1},
		// the legacy prefix wins when the longer walk dead ends, and the
		// rune that broke the walk comes back
		{"notit;", "not", "¬", 'i', true, 3},
		{"notin;", "notin;", "∉", 0, false, 0},
		{"not", "not", "¬", 0, false, 0},
		{"noty", "not", "¬", 'y', true, 1},
		{"not=", "not", "¬", '=', true, 1},
		// uppercase legacy names are distinct table entries
		{"AMP;", "AMP;", "&", 0, false, 0},
		{"AMP", "AMP", "&", 0, false, 0},
		// no entity starts this way, everything is rewound
		{"xyz", "", "", 0, false, 3},
		{"acE;", "acE;", "∾̳", 0, false, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			s := refStream(t, tt.in, true)
			name, value, next, hasNext, err := matchNamedCharRef(s)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.hasNext, hasNext)
			if tt.hasNext {
				assert.Equal(t, tt.next, next)
			}
			assert.Equal(t, tt.remaining, s.Len())
		})
	}
}

func TestMatchNamedCharRefUnderrun(t *testing.T) {
	t.Parallel()
	s := refStream(t, "no", false)

	_, _, _, _, err := matchNamedCharRef(s)
	require.ErrorIs(t, err, ErrUnderrun)
	// nothing may be consumed on underrun, the caller retries the whole
	// match once more input arrives
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Feed("t;x"))
	name, value, next, hasNext, err := matchNamedCharRef(s)
	require.NoError(t, err)
	assert.Equal(t, "not;", name)
	assert.Equal(t, "¬", value)
	assert.True(t, hasNext)
	assert.Equal(t, 'x', next)
	assert.Equal(t, 1, s.Len())
}

func TestMatchNamedCharRefFinalCutsTheWalk(t *testing.T) {
	t.Parallel()
	// same prefix as above, but the stream ends here, so the best match so
	// far is taken instead of waiting
	s := refStream(t, "no", true)
	name, value, _, hasNext, err := matchNamedCharRef(s)
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, "", value)
	assert.False(t, hasNext)
	assert.Equal(t, 2, s.Len())

	s = refStream(t, "gt", true)
	name, value, _, hasNext, err = matchNamedCharRef(s)
	require.NoError(t, err)
	assert.Equal(t, "gt", name)
	assert.Equal(t, ">", value)
	assert.False(t, hasNext)
	assert.Equal(t, 0, s.Len())
}

func TestNumericCharRefReplacements(t *testing.T) {
	t.Parallel()
	assert.Len(t, numericCharRefReplacements, 27)
	assert.Equal(t, '€', numericCharRefReplacements[0x80])
	assert.Equal(t, 'Œ', numericCharRefReplacements[0x8C])
	assert.Equal(t, '™', numericCharRefReplacements[0x99])
	assert.Equal(t, 'Ÿ', numericCharRefReplacements[0x9F])

	// the holes in the windows-1252 table stay holes
	for _, missing := range []int{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		_, ok := numericCharRefReplacements[missing]
		assert.False(t, ok, "0x%02X should have no replacement", missing)
	}
}

func TestEntityTable(t *testing.T) {
	t.Parallel()
	// both forms of the historical names are separate entries
	for _, name := range []string{"amp", "amp;", "lt", "lt;", "gt", "gt;", "quot", "quot;", "nbsp", "nbsp;"} {
		if _, ok := namedCharRefs[name]; !ok {
			t.Errorf("missing entity %q", name)
		}
	}
	// semicolon only entities must not match without one
	if _, ok := namedCharRefs["notin"]; ok {
		t.Error("notin should require its semicolon")
	}
	if got := namedCharRefs["nbsp;"]; got != "\u00a0" {
		t.Errorf("nbsp; = %q, expected %q", got, "\u00a0")
	}
}
