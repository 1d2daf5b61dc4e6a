// Package textclean removes common PDF extraction artifacts from raw text.
package textclean

import (
	"regexp"
	"strings"
)

var (
	// Running footers like "12 | 13".
	footerRe = regexp.MustCompile(`\b\d+\s*\|\s*\d+\b`)
	// Lines holding nothing but a page number.
	pageNumberRe = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	// Three or more consecutive newlines (allowing whitespace between them).
	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	// Runs of space characters. Deliberately not \s: newlines survive this pass.
	spaceRunRe = regexp.MustCompile(` +`)
	// Anything outside word characters, whitespace, and common punctuation.
	// Spelled out as letter/number classes because Go's \w is ASCII-only and
	// accented letters must survive.
	strayCharRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:()\[\]{}"'-]`)
	// Numbered chapter headings; numbers are stripped so repeated headings
	// collapse to a single recognizable form.
	chapterUpperRe = regexp.MustCompile(`(?i)CHAPTER\s+\d+`)
	chapterTitleRe = regexp.MustCompile(`Chapter\s+\d+`)
)

// Clean strips page-number footers, standalone page numbers, excess whitespace,
// and stray non-printable punctuation from raw extracted text, and normalizes
// numbered chapter headings. It never fails; empty input yields "".
//
// The passes run in a fixed order: later passes assume the whitespace
// normalization done by earlier ones.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := footerRe.ReplaceAllString(raw, "")
	cleaned = pageNumberRe.ReplaceAllString(cleaned, "")
	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
	cleaned = strayCharRe.ReplaceAllString(cleaned, "")
	cleaned = chapterUpperRe.ReplaceAllString(cleaned, "CHAPTER")
	cleaned = chapterTitleRe.ReplaceAllString(cleaned, "Chapter")

	return strings.TrimSpace(cleaned)
}
