package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{"empty", "", nil},
		{"single word", "Impact", []Token{{Text: "Impact"}}},
		{
			name: "single spaces become nbsp",
			in:   "a b",
			want: []Token{{Text: "a"}, {Text: "\u00a0", Space: true}, {Text: "b"}},
		},
		{
			name: "runs are kept verbatim",
			in:   "a  b\tc",
			want: []Token{
				{Text: "a"}, {Text: "  ", Space: true}, {Text: "b"},
				{Text: "\t", Space: true}, {Text: "c"},
			},
		},
		{
			name: "leading and trailing space",
			in:   " go ",
			want: []Token{{Text: "\u00a0", Space: true}, {Text: "go"}, {Text: "\u00a0", Space: true}},
		},
		{
			name: "nfc normalization",
			in:   "cafe\u0301",
			want: []Token{{Text: "caf\u00e9"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("one\r\ntwo\nthree")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitLines = %q, want %q", got, want)
	}
}
