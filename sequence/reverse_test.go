package sequence_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvrec/sequence"
)

func TestReverse_Cases(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ba"},
		{"recursion", "noisrucer"},
		{"racecar", "racecar"},
		{"привет", "тевирп"},
		{"go👋", "👋og"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sequence.Reverse(tc.in), "Reverse(%q)", tc.in)
	}
}

// TestReverse_Involution: reversing twice restores the input.
func TestReverse_Involution(t *testing.T) {
	for _, s := range []string{"", "x", "hello, world", "日本語テキスト", "mixed ascii и кириллица"} {
		assert.Equal(t, s, sequence.Reverse(sequence.Reverse(s)), "s=%q", s)
	}
}

// TestReverse_KeepsUTF8Valid ensures runes are moved as whole units.
func TestReverse_KeepsUTF8Valid(t *testing.T) {
	out := sequence.Reverse("añb€")
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "€bña", out)
}

// TestReverse_InvalidBytes moves stray bytes one at a time.
func TestReverse_InvalidBytes(t *testing.T) {
	in := "a\xffb"
	assert.Equal(t, "b\xffa", sequence.Reverse(in))
	assert.Equal(t, in, sequence.Reverse(sequence.Reverse(in)))
}
