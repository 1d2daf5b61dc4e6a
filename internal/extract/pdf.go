// Package extract pulls plain text out of PDF files.
package extract

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// ErrNoText means no strategy produced any text. Image-only scans and corrupt
// files end up here.
var ErrNoText = errors.New("no extractable text in PDF")

// PDFExtractor extracts text with the Go library first, then falls back to
// pdftotext if available.
type PDFExtractor struct {
	FallbackPdftotext bool

	log zerolog.Logger
}

func NewPDFExtractor(fallbackPdftotext bool, log zerolog.Logger) *PDFExtractor {
	return &PDFExtractor{
		FallbackPdftotext: fallbackPdftotext,
		log:               log,
	}
}

// Extract returns the concatenated text of all pages. The first strategy to
// yield non-blank text wins; if both come up empty, ErrNoText is returned.
func (e *PDFExtractor) Extract(path string) (string, error) {
	e.log.Info().Str("file", path).Msg("extracting text")

	text, err := extractPDFText(path)
	if err == nil && strings.TrimSpace(text) != "" {
		e.log.Info().Int("chars", len(text)).Msg("extracted text with pdf library")
		return text, nil
	}

	if e.FallbackPdftotext {
		e.log.Debug().Err(err).Msg("library extraction came up empty, trying pdftotext")
		text, err = extractPdftotext(path)
		if err == nil && strings.TrimSpace(text) != "" {
			e.log.Info().Int("chars", len(text)).Msg("extracted text with pdftotext")
			return text, nil
		}
	}

	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return "", ErrNoText
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
