package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
			want:  "",
		},
		{
			name:  "running footer removed",
			input: "some text 12 | 13 more text",
			want:  "some text more text",
		},
		{
			name:  "standalone page number removed",
			input: "line one\n42\nline two",
			want:  "line one\n\nline two",
		},
		{
			name:  "blank line runs collapse to one blank line",
			input: "para one\n\n\n\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "space runs collapse",
			input: "too    many   spaces",
			want:  "too many spaces",
		},
		{
			// Stray-character removal runs after the space collapse, so the
			// spaces around a removed character are left as-is.
			name:  "stray characters stripped",
			input: "star ★ and bullet • gone",
			want:  "star  and bullet  gone",
		},
		{
			name:  "common punctuation kept",
			input: `keep [these], (marks)! "all" of; them: {ok}? - end.`,
			want:  `keep [these], (marks)! "all" of; them: {ok}? - end.`,
		},
		{
			name:  "accented letters survive",
			input: "a café in München",
			want:  "a café in München",
		},
		{
			name:  "uppercase chapter numbers normalized",
			input: "CHAPTER 7 The Payoff",
			want:  "CHAPTER The Payoff",
		},
		{
			name:  "mixed case chapter numbers normalized",
			input: "Chapter 12 begins here",
			want:  "CHAPTER begins here",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "\n\n  body text  \n\n",
			want:  "body text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain unremarkable text",
		"some text 12 | 13 more\n7\n\n\n\nnext para   with   spaces",
		"CHAPTER 3\nThe body of the chapter.\n\nAnother paragraph.",
		"1 What is deep learning\nIntro text here.\n2 Neural networks\nMore text.",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean should be idempotent for %q", in)
	}
}
