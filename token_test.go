package sigil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "ME"},
		{"cat", "MNQXI"},
		{"hello", "NBSWY3DP"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeText(tt.in), "EncodeText(%q)", tt.in)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"cat",
		"hello, world",
		"Привет",
		"日本語のテキスト",
		"🜏 sigil 🜔",
		"\x00\x01\x7f",
		"_snake_case_identifier_with_a_long_tail",
	}
	for _, in := range inputs {
		got, err := DecodeToken(EncodeText(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, got)
	}
}

func TestDecodeTokenAcceptsPadding(t *testing.T) {
	got, err := DecodeToken("MNQXI===")
	require.NoError(t, err)
	assert.Equal(t, "cat", got)
}

func TestDecodeTokenErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"one trailing symbol", "M"},
		{"three trailing symbols", "MNQ"},
		{"six trailing symbols", "MNQXIA"},
		{"lower case", "mnqxi"},
		{"digit outside alphabet", "MN1X"},
		{"punctuation", "/w"},
		{"invalid utf-8", "74"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode))

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.token, de.Token)
			assert.NotEmpty(t, de.Reason)
		})
	}
}

func TestCharToken(t *testing.T) {
	assert.Equal(t, HashToken{Val1: 12, Val2: 4}, CharToken('a'))
	assert.Equal(t, HashToken{Val1: 12, Val2: 8}, CharToken('b'))
	assert.Equal(t, HashToken{Val1: 6, Val2: 4}, CharToken('1'))
	assert.Equal(t, HashToken{Val1: 24, Val2: 14}, CharToken('é'))
}

func TestCharTokenDeterministic(t *testing.T) {
	for _, r := range "aZ9_éж日🜏" {
		first := CharToken(r)
		for range 10 {
			assert.Equal(t, first, CharToken(r))
		}
	}
}

func TestCharTokenSingleByteVal2(t *testing.T) {
	for r := rune(0); r < 0x80; r++ {
		tok := CharToken(r)
		assert.Zero(t, tok.Val2%4, "Val2 of %q = %d", r, tok.Val2)
		assert.GreaterOrEqual(t, tok.Val1, 0)
		assert.Less(t, tok.Val1, 32)
	}
}
