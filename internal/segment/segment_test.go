package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSegmenter() *Segmenter {
	return New(DefaultConfig(), zerolog.Nop())
}

// buildLines joins lines with newline, padding unnamed positions with prose.
func buildLines(n int, headings map[int]string) string {
	lines := make([]string, n)
	for i := range lines {
		if h, ok := headings[i]; ok {
			lines[i] = h
		} else {
			lines[i] = fmt.Sprintf("ordinary prose line %d with no heading shape.", i)
		}
	}
	return strings.Join(lines, "\n")
}

func TestSplit_EmptyInput(t *testing.T) {
	assert.Empty(t, newTestSegmenter().Split(""))
	assert.Empty(t, newTestSegmenter().Split("   \n\n  "))
}

func TestSplit_TwoHeadings(t *testing.T) {
	text := buildLines(100, map[int]string{
		0:  "1 Introduction",
		50: "2 Deep Learning",
	})
	chapters := newTestSegmenter().Split(text)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Introduction", chapters[0].Title)
	assert.Equal(t, "Deep Learning", chapters[1].Title)

	// Chapter 1 spans lines [0,50), chapter 2 spans [50,end).
	assert.True(t, strings.HasPrefix(chapters[0].Body, "1 Introduction"))
	assert.Contains(t, chapters[0].Body, "prose line 49")
	assert.NotContains(t, chapters[0].Body, "2 Deep Learning")
	assert.True(t, strings.HasPrefix(chapters[1].Body, "2 Deep Learning"))
	assert.Contains(t, chapters[1].Body, "prose line 99")
}

func TestSplit_FirstChapterStartsAtLineZero(t *testing.T) {
	// The heading sits at line 10, but the first chapter still includes the
	// lines before it.
	text := buildLines(40, map[int]string{
		10: "1 Getting Started",
		25: "2 Moving On",
	})
	chapters := newTestSegmenter().Split(text)

	require.Len(t, chapters, 2)
	assert.Contains(t, chapters[0].Body, "prose line 0")
	assert.Contains(t, chapters[0].Body, "1 Getting Started")
}

func TestSplit_FrontMatterNeverABoundary(t *testing.T) {
	labels := []string{
		"Preface", "preface", "  PREFACE  ",
		"Acknowledgments", "Acknowledgment",
		"About this book", "About the Author", "about the cover",
		"Contents", "Brief Contents",
		"Appendix", "Index", "Conclusions", "References", "Bibliography", "Glossary",
	}
	for _, label := range labels {
		text := buildLines(30, map[int]string{
			5:  label,
			20: "1 Real Chapter",
		})
		chapters := newTestSegmenter().Split(text)
		require.Len(t, chapters, 1, "label %q should not be a boundary", label)
		assert.Equal(t, "Real Chapter", chapters[0].Title)
	}
}

func TestSplit_DuplicateTitleSuppressed(t *testing.T) {
	// A table-of-contents line repeats the chapter heading; only the earlier
	// occurrence becomes a boundary.
	text := buildLines(60, map[int]string{
		3:  "1 Introduction",
		30: "1 Introduction",
		45: "2 Conclusion Drawing",
	})
	chapters := newTestSegmenter().Split(text)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Introduction", chapters[0].Title)
	// The duplicate at line 30 did not cut the text: lines through 44 belong
	// to chapter 1.
	assert.Contains(t, chapters[0].Body, "prose line 44")
}

func TestSplit_BoundariesCapped(t *testing.T) {
	headings := make(map[int]string)
	for i := 0; i < 20; i++ {
		headings[i*10] = fmt.Sprintf("%d Topic Number%d", i+1, i+1)
	}
	text := buildLines(220, headings)

	chapters := newTestSegmenter().Split(text)
	assert.Len(t, chapters, 14)
}

func TestSplit_CapIsConfigurable(t *testing.T) {
	headings := make(map[int]string)
	for i := 0; i < 8; i++ {
		headings[i*10] = fmt.Sprintf("%d Topic Number%d", i+1, i+1)
	}
	text := buildLines(100, headings)

	s := New(Config{MaxChapters: 3, MinBlockChars: 100}, zerolog.Nop())
	chapters := s.Split(text)
	assert.Len(t, chapters, 3)
}

func TestSplit_TitleCleanup(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{"trailing page number stripped", "1 Introduction 42", "Introduction"},
		{"trailing all-caps phrase stripped", "1 Introduction PART ONE", "Introduction"},
		{"chapter prefix with colon", "Chapter 1: Deep Learning", "Deep Learning"},
		{"uppercase chapter prefix", "CHAPTER 2 ADVANCED TOPICS", "ADVANCED"},
		{"plain heading untouched", "1 What is deep learning", "What is deep learning"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := buildLines(20, map[int]string{5: tt.heading})
			chapters := newTestSegmenter().Split(text)
			require.NotEmpty(t, chapters)
			assert.Equal(t, tt.want, chapters[0].Title)
		})
	}
}

func TestSplit_ProseLinesAreNotHeadings(t *testing.T) {
	// A line starting with a number but ending in a sentence period is prose.
	text := strings.Join([]string{
		"3 little pigs built houses. One used straw.",
		"Some more prose on the next line.",
	}, "\n")

	s := New(Config{MaxChapters: 14, MinBlockChars: 10}, zerolog.Nop())
	chapters := s.Split(text)

	// No heading or numbered-section match; the paragraph fallback kicks in.
	require.Len(t, chapters, 1)
	assert.Equal(t, "Chapter 1", chapters[0].Title)
}

func TestSplit_NumberedSectionFallback(t *testing.T) {
	// "1. Title" lines do not match the main heading patterns (the period
	// follows the number directly), so the looser second pass handles them.
	text := buildLines(60, map[int]string{
		0:  "1. Getting Started",
		30: "2. Advanced Usage",
	})
	chapters := newTestSegmenter().Split(text)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Getting Started", chapters[0].Title)
	assert.Equal(t, "Advanced Usage", chapters[1].Title)
}

func TestSplit_NumberedSectionSkipsSubsections(t *testing.T) {
	text := buildLines(60, map[int]string{
		0:  "1. Getting Started",
		20: "1.2 A Subsection Heading",
		40: "2. Advanced Usage",
	})
	chapters := newTestSegmenter().Split(text)

	require.Len(t, chapters, 2)
	assert.Contains(t, chapters[0].Body, "1.2 A Subsection Heading")
}

func TestSplit_ParagraphBlockFallback(t *testing.T) {
	long1 := strings.Repeat("a", 150)
	short := strings.Repeat("b", 40)
	long2 := strings.Repeat("c", 200)
	text := long1 + "\n\n" + short + "\n\n" + long2

	chapters := newTestSegmenter().Split(text)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Chapter 1", chapters[0].Title)
	assert.Equal(t, "Chapter 2", chapters[1].Title)
	assert.Equal(t, long1, chapters[0].Body)
	assert.Equal(t, long2, chapters[1].Body)
}

func TestSplit_BodiesComeFromInput(t *testing.T) {
	// Concatenated chapter bodies contain no text that is not in the input.
	text := buildLines(80, map[int]string{
		0:  "1 Alpha Waves",
		40: "2 Beta Waves",
	})
	chapters := newTestSegmenter().Split(text)
	require.NotEmpty(t, chapters)

	for _, ch := range chapters {
		for _, line := range strings.Split(ch.Body, "\n") {
			assert.Contains(t, text, line)
		}
	}
}
