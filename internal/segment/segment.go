// Package segment locates chapter boundaries in cleaned text and cuts the text
// into ordered chapters.
//
// PDF extraction destroys structural markup, so boundaries are inferred from
// line patterns. Three strategies are tried in order, each only when the
// previous one found nothing: structured chapter headings, loose numbered
// sections, and finally blank-line-delimited paragraph blocks.
package segment

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"chapterize/internal/book"
)

// Config controls boundary detection.
type Config struct {
	MaxChapters   int // Cap on heading-derived boundaries. Bounds runaway false positives.
	MinBlockChars int // Paragraph blocks at or below this length are discarded.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxChapters:   14,
		MinBlockChars: 100,
	}
}

// Main-chapter heading patterns, in priority order. Matched against the
// trimmed line; the trailing [^.]* rejects lines with sentence-ending periods,
// which are prose rather than headings.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\s+[A-Z][^.]*$`),                     // "1 What is deep learning"
	regexp.MustCompile(`^Chapter\s+\d+\s*[:\-]?\s*[A-Z][^.]*$`),  // "Chapter 1: What is deep learning"
	regexp.MustCompile(`(?i)^CHAPTER\s+\d+\s*[:\-]?\s*[A-Z][^.]*$`), // "CHAPTER 1 WHAT IS DEEP LEARNING"
}

// Front-matter and back-matter labels. A line consisting solely of one of
// these is never a chapter boundary.
var frontMatterRe = regexp.MustCompile(`(?i)^(preface|acknowledgments?|about\s+(this|the)\s+(book|author|cover)|brief\s+contents?|contents?|appendix|index|conclusions?|references?|bibliography|glossary)$`)

var (
	// Pulls the title text out of a matched heading line.
	headingTitleRe = regexp.MustCompile(`(?i)^(?:chapter\s+)?\d+\s*[:\-]?\s+(.+)$`)
	// Stray page reference trailing the title, e.g. "Introduction 42".
	trailingPageRe = regexp.MustCompile(`\s+\d+$`)
	// Trailing all-caps running-header fragment, e.g. "Introduction PART ONE".
	trailingCapsRe = regexp.MustCompile(`\s+[A-Z][A-Z\s]*$`)

	// Loose numbered sections: "1. Title" or "1 Title".
	looseSectionRe = regexp.MustCompile(`^\d+[.\s]\s*[A-Z][^.]*$`)
	// Decimal subsection numbers like "1.2 Methods" are not chapters.
	subsectionRe = regexp.MustCompile(`^\d+\.\d+`)
	looseTitleRe = regexp.MustCompile(`^\d+[.\s]\s*(.+)$`)

	paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)
)

// boundary marks the line index where a chapter is judged to begin.
type boundary struct {
	line  int
	title string
}

// Segmenter splits cleaned document text into chapters.
type Segmenter struct {
	cfg Config
	log zerolog.Logger
}

// New returns a Segmenter with the given config; zero config fields fall back
// to the defaults.
func New(cfg Config, log zerolog.Logger) *Segmenter {
	def := DefaultConfig()
	if cfg.MaxChapters <= 0 {
		cfg.MaxChapters = def.MaxChapters
	}
	if cfg.MinBlockChars <= 0 {
		cfg.MinBlockChars = def.MinBlockChars
	}
	return &Segmenter{cfg: cfg, log: log}
}

// Split cuts cleaned text into ordered chapters. Deterministic and total:
// empty input yields nil, and any non-empty input with at least one
// sufficiently long paragraph block yields at least one chapter.
func (s *Segmenter) Split(cleaned string) []book.Chapter {
	if strings.TrimSpace(cleaned) == "" {
		return nil
	}

	lines := strings.Split(cleaned, "\n")

	bounds := findHeadings(lines, s.cfg.MaxChapters)
	if len(bounds) == 0 {
		s.log.Info().Msg("no main chapter headings found, trying numbered sections")
		bounds = findNumberedSections(lines)
	}
	if len(bounds) == 0 {
		s.log.Info().Msg("no chapter patterns found, splitting by content blocks")
		return splitBlocks(cleaned, s.cfg.MinBlockChars)
	}

	chapters := cut(lines, bounds)
	s.log.Info().Int("chapters", len(chapters)).Msg("split into chapters")
	for i, ch := range chapters {
		s.log.Debug().Int("chapter", i+1).Str("title", ch.Title).Msg("chapter boundary")
	}
	return chapters
}

// findHeadings scans for structured chapter headings. Front-matter labels are
// skipped, a given title is recorded only the first time it appears (tables of
// contents repeat chapter lines), and at most maxChapters boundaries are kept.
func findHeadings(lines []string, maxChapters int) []boundary {
	var found []boundary
	seen := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if frontMatterRe.MatchString(trimmed) {
			continue
		}
		for _, p := range headingPatterns {
			if !p.MatchString(trimmed) {
				continue
			}
			if m := headingTitleRe.FindStringSubmatch(trimmed); m != nil {
				title := strings.TrimSpace(m[1])
				title = trailingPageRe.ReplaceAllString(title, "")
				title = trailingCapsRe.ReplaceAllString(title, "")
				if !seen[title] {
					seen[title] = true
					found = append(found, boundary{line: i, title: title})
				}
			}
			break
		}
	}

	sort.Slice(found, func(a, b int) bool { return found[a].line < found[b].line })
	if len(found) > maxChapters {
		found = found[:maxChapters]
	}
	return found
}

// findNumberedSections is the looser second pass: any "1. Title" or "1 Title"
// line counts, excluding decimal subsection numbers. No front-matter
// filtering, duplicate suppression, or cap.
func findNumberedSections(lines []string) []boundary {
	var found []boundary
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !looseSectionRe.MatchString(trimmed) || subsectionRe.MatchString(trimmed) {
			continue
		}
		title := fmt.Sprintf("Chapter %d", len(found)+1)
		if m := looseTitleRe.FindStringSubmatch(trimmed); m != nil {
			title = strings.TrimSpace(m[1])
		}
		found = append(found, boundary{line: i, title: title})
	}
	return found
}

// splitBlocks is the last-resort pass: paragraph blocks become chapters with
// synthetic sequential titles. Blocks at or below minChars after trimming are
// too short to be chapters and are dropped.
func splitBlocks(text string, minChars int) []book.Chapter {
	var chapters []book.Chapter
	for _, block := range paragraphBreakRe.Split(text, -1) {
		block = strings.TrimSpace(block)
		if len(block) <= minChars {
			continue
		}
		chapters = append(chapters, book.Chapter{
			Title: fmt.Sprintf("Chapter %d", len(chapters)+1),
			Body:  block,
		})
	}
	return chapters
}

// cut slices the line sequence at the boundaries. Chapter i spans from its
// boundary line up to the next boundary's line; the first chapter starts at
// line 0 regardless of where its boundary sits, so front matter is never lost.
// Chapters that trim to empty are dropped.
func cut(lines []string, bounds []boundary) []book.Chapter {
	var chapters []book.Chapter
	for i, b := range bounds {
		start := b.line
		if i == 0 {
			start = 0
		}
		end := len(lines)
		if i+1 < len(bounds) {
			end = bounds[i+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if body == "" {
			continue
		}
		chapters = append(chapters, book.Chapter{Title: b.title, Body: body})
	}
	return chapters
}
