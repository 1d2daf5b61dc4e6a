package book

// Chapter is one contiguous span of the cleaned document text.
type Chapter struct {
	Title string // Derived heading text; empty when no pattern-derived title exists.
	Body  string // Chapter text, trimmed, never empty once emitted.
}

// Result summarizes a completed processing run.
type Result struct {
	BookID   string // Sanitized directory name derived from the source filename.
	Dir      string // Absolute or relative path of the book directory.
	Chapters int    // Number of chapter files written.
}
