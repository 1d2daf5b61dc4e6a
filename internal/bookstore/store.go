// Package bookstore persists segmented chapters as numbered files under a
// per-book directory and lists previously processed output.
package bookstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"chapterize/internal/book"
)

// maxTitleLen bounds the sanitized title portion of a chapter filename.
const maxTitleLen = 50

// Recognized chapter file extensions.
var outputExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

var (
	// Go's \w is ASCII-only; letter/number classes keep accented titles intact.
	unsafeCharRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// DeriveBookID converts a source path into a filesystem-safe directory name:
// the base filename without extension, stripped of special characters, with
// whitespace runs replaced by single underscores.
func DeriveBookID(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	id := unsafeCharRe.ReplaceAllString(base, "")
	id = spaceRunRe.ReplaceAllString(id, "_")
	return strings.Trim(id, "_")
}

// Store reads and writes books under a single media root directory.
type Store struct {
	root string
	log  zerolog.Logger
}

func New(root string, log zerolog.Logger) *Store {
	return &Store{root: root, log: log}
}

// Root returns the media root directory.
func (s *Store) Root() string {
	return s.root
}

// Persist writes each chapter to its own file under <root>/<bookID>,
// overwriting files with the same names from earlier runs. Writes are not
// atomic: on error the operation aborts and chapters already written remain
// on disk.
func (s *Store) Persist(bookID string, chapters []book.Chapter, format string) (string, error) {
	dir := filepath.Join(s.root, bookID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create book folder: %w", err)
	}
	s.log.Debug().Str("dir", dir).Msg("created book folder")

	for i, ch := range chapters {
		name := chapterFilename(i+1, ch.Title, format)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(ch.Body), 0o644); err != nil {
			return "", fmt.Errorf("write chapter %d: %w", i+1, err)
		}
		s.log.Debug().Int("chapter", i+1).Str("file", name).Msg("saved chapter")
	}

	s.log.Info().Int("chapters", len(chapters)).Str("dir", dir).Msg("book saved")
	return dir, nil
}

// chapterFilename names a chapter file from its 1-based position. Titled
// chapters get a 2-digit index plus the sanitized title; untitled ones fall
// back to a 3-digit sequential name. Zero-padding keeps lexicographic order
// equal to chapter order.
func chapterFilename(pos int, title, format string) string {
	clean := unsafeCharRe.ReplaceAllString(title, "")
	clean = spaceRunRe.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_")
	if len(clean) > maxTitleLen {
		clean = clean[:maxTitleLen]
	}
	if clean == "" {
		return fmt.Sprintf("chapter_%03d.%s", pos, format)
	}
	return fmt.Sprintf("%02d_%s.%s", pos, clean, format)
}

// ListBooks returns the book directories under the media root. A missing root
// simply means no books yet.
func (s *Store) ListBooks() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read media dir: %w", err)
	}

	var books []string
	for _, e := range entries {
		if e.IsDir() {
			books = append(books, e.Name())
		}
	}
	return books, nil
}

// ListChapters returns the chapter filenames of a book, lexicographically
// sorted. Files without a recognized output extension are ignored.
func (s *Store) ListChapters(bookID string) ([]string, error) {
	dir := filepath.Join(s.root, bookID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read book folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if outputExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadChapter returns the contents of one chapter file.
func (s *Store) ReadChapter(bookID, filename string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, bookID, filename))
	if err != nil {
		return "", fmt.Errorf("read chapter file: %w", err)
	}
	return string(data), nil
}
