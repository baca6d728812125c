package sahilm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Name(t *testing.T) {
	assert.Equal(t, "sahilm", New().Name())
}

func TestEngine_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{"scattered", "abc", "xaxbxc"},
		{"word starts", "fb", "foo_bar"},
		{"multibyte text", "ñb", "ñaab"},
		{"multibyte pattern", "éf", "caféfe"},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, text := []rune(tt.pattern), []rune(tt.text)

			got, ok := e.Match(pattern, text)

			require.True(t, ok)
			require.Len(t, got, len(pattern))
			for i, p := range got {
				assert.Equal(t, pattern[i], text[p], "position %d", i)
				if i > 0 {
					assert.Greater(t, p, got[i-1])
				}
			}
		})
	}
}

func TestEngine_NoMatch(t *testing.T) {
	e := New()

	_, ok := e.Match([]rune("abc"), []rune("acb"))
	assert.False(t, ok)

	_, ok = e.Match([]rune(""), []rune("abc"))
	assert.False(t, ok)

	_, ok = e.Match([]rune("abcd"), []rune("abc"))
	assert.False(t, ok)
}
