package sequence

import "unicode/utf8"

// Reverse returns s with its characters in reverse order, computed as
// Reverse(rest) + first, where first is the leading rune of s.
//
// Runes are moved as whole byte groups, so valid UTF-8 stays valid.
// A byte that does not start a valid encoding is moved on its own.
//
// Complexity: Time O(n²), Stack O(n) in the number of runes.
func Reverse(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)

	return Reverse(s[size:]) + s[:size]
}
