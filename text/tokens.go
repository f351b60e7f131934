package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// nbsp replaces a lone space token so the gap survives HTML whitespace
// collapsing.
const nbsp = "\u00a0"

// Token is a word or a run of whitespace.
type Token struct {
	Text  string
	Space bool
}

// Tokenize splits s into alternating word and whitespace tokens in reading
// order. The text is NFC-normalized first; a whitespace token consisting of
// a single U+0020 becomes U+00A0. Empty tokens are never produced.
func Tokenize(s string) []Token {
	s = norm.NFC.String(s)

	var tokens []Token
	start := 0
	inSpace := false
	for i, r := range s {
		sp := isSpace(r)
		if i > start && sp != inSpace {
			tokens = append(tokens, newToken(s[start:i], inSpace))
			start = i
		}
		inSpace = sp
	}
	if start < len(s) {
		tokens = append(tokens, newToken(s[start:], inSpace))
	}
	return tokens
}

func newToken(s string, space bool) Token {
	if space && s == " " {
		s = nbsp
	}
	return Token{Text: s, Space: space}
}

// isSpace matches the whitespace class used for word splitting, which
// includes the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// splitLines splits s on "\n" and "\r\n".
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// isBlank reports whether s contains only whitespace.
func isBlank(s string) bool {
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		if !isSpace(r) {
			return false
		}
		s = s[n:]
	}
	return true
}
