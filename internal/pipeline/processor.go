// Package pipeline runs one PDF through extraction, cleaning, segmentation,
// and persistence. Everything is synchronous: one document is processed
// start-to-finish before control returns to the caller.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"chapterize/internal/book"
	"chapterize/internal/bookstore"
	"chapterize/internal/config"
	"chapterize/internal/extract"
	"chapterize/internal/segment"
	"chapterize/internal/textclean"
)

// ErrNoChapters means cleaning succeeded but segmentation produced nothing.
// The paragraph-block fallback makes this rare, but it is guarded anyway.
var ErrNoChapters = errors.New("no chapters could be extracted")

// Extractor yields the full text of a document at a path.
type Extractor interface {
	Extract(path string) (string, error)
}

// Processor ties the pipeline stages together.
type Processor struct {
	extractor Extractor
	segmenter *segment.Segmenter
	store     *bookstore.Store
	log       zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) *Processor {
	return &Processor{
		extractor: extract.NewPDFExtractor(cfg.PDFFallbackPdftotext, log),
		segmenter: segment.New(segment.Config{
			MaxChapters:   cfg.MaxChapters,
			MinBlockChars: cfg.MinBlockChars,
		}, log),
		store: bookstore.New(cfg.MediaDir, log),
		log:   log,
	}
}

// Store exposes the underlying book store for listing and viewing commands.
func (p *Processor) Store() *bookstore.Store {
	return p.store
}

// ValidatePDFPath checks that path names an existing regular file with a .pdf
// suffix (case-insensitive) before any processing begins.
func ValidatePDFPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a PDF file", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%s is not a PDF file", path)
	}
	return nil
}

// Process runs the full pipeline on one PDF and returns where the book was
// written. Every failure is returned as an error; nothing panics and nothing
// is retried.
func (p *Processor) Process(path, format string) (book.Result, error) {
	if err := ValidatePDFPath(path); err != nil {
		return book.Result{}, err
	}

	p.log.Info().Str("file", path).Str("format", format).Msg("processing PDF")

	raw, err := p.extractor.Extract(path)
	if err != nil {
		return book.Result{}, err
	}

	cleaned := textclean.Clean(raw)
	p.log.Info().Int("chars", len(cleaned)).Msg("text cleaned")

	chapters := p.segmenter.Split(cleaned)
	if len(chapters) == 0 {
		return book.Result{}, ErrNoChapters
	}

	bookID := bookstore.DeriveBookID(path)
	dir, err := p.store.Persist(bookID, chapters, format)
	if err != nil {
		return book.Result{}, err
	}

	result := book.Result{BookID: bookID, Dir: dir, Chapters: len(chapters)}
	p.log.Info().Str("dir", dir).Int("chapters", result.Chapters).Msg("processing complete")
	return result, nil
}
