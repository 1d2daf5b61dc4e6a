package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chapterize/internal/bookstore"
	"chapterize/internal/config"
	"chapterize/internal/pipeline"
	"chapterize/internal/settings"
)

// session holds everything the interactive menu needs across prompts.
type session struct {
	in    *bufio.Reader
	cfg   config.Config
	proc  *pipeline.Processor
	store *bookstore.Store
	prefs *settings.Settings
}

// runInteractive shows the numbered menu until the user exits or stdin
// closes. Invalid entries re-prompt; they never terminate the process.
func runInteractive() error {
	cfg := config.Load()
	proc := pipeline.New(cfg, newLogger())

	s := &session{
		in:    bufio.NewReader(os.Stdin),
		cfg:   cfg,
		proc:  proc,
		store: proc.Store(),
		prefs: settings.New(cfg.SettingsFile),
	}

	for {
		s.printMenu()
		choice, err := s.promptInt("Enter your choice: ", 0, 5)
		if err != nil {
			return nil // stdin closed
		}

		switch choice {
		case 0:
			fmt.Println("Goodbye!")
			return nil
		case 1:
			s.processPDF()
		case 2:
			s.changeOutputFormat()
		case 3:
			s.browseBooks()
		case 4:
			s.viewChapterText()
		case 5:
			s.selectBookByIndex()
		}

		fmt.Println("\n" + strings.Repeat("=", 40) + "\n")
	}
}

func (s *session) printMenu() {
	fmt.Println("chapterize - PDF Text Extraction Tool")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Select an option:")
	fmt.Println("1. Process PDF file")
	fmt.Printf("2. Change output format (currently '%s')\n", s.prefs.OutputFormat())
	fmt.Println("3. List processed books and select one")
	fmt.Println("4. View chapter text")
	fmt.Println("5. Select book by index")
	fmt.Println("0. Exit")
}

// readLine reads one trimmed input line. An error means stdin is gone and the
// caller should bail out of its prompt loop.
func (s *session) readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-prompts until the user enters an integer in [min, max].
func (s *session) promptInt(prompt string, min, max int) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= min && n <= max {
			return n, nil
		}
		fmt.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
	}
}

// processPDF prompts for a path, validates it, and runs the pipeline with the
// saved output format.
func (s *session) processPDF() {
	var path string
	for {
		line, err := s.readLine("Enter the path to the PDF file: ")
		if err != nil {
			return
		}
		if line == "" {
			fmt.Println("Please enter a valid path.")
			continue
		}
		if strings.HasPrefix(line, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				line = home + line[1:]
			}
		}
		if err := pipeline.ValidatePDFPath(line); err != nil {
			fmt.Println("File must be an existing PDF. Please check the path.")
			continue
		}
		path = line
		break
	}

	format := s.prefs.OutputFormat()
	fmt.Printf("Processing PDF: %s\n", path)
	fmt.Printf("Output format: %s\n", format)

	result, err := s.proc.Process(path, format)
	if err != nil {
		fmt.Println("\nFailed to process PDF")
		fmt.Println("The PDF may be image-based or corrupted")
		return
	}
	fmt.Println("\nPDF processed successfully!")
	fmt.Printf("Output folder: %s\n", result.Dir)
	fmt.Printf("Chapters saved: %d\n", result.Chapters)
}

func (s *session) changeOutputFormat() {
	current := s.prefs.OutputFormat()
	fmt.Printf("\nCurrent output format: %s\n", current)
	fmt.Println("Available formats:")
	for i, f := range settings.SupportedFormats {
		marker := ""
		if f == current {
			marker = " (current)"
		}
		fmt.Printf("%d. %s%s\n", i+1, f, marker)
	}

	choice, err := s.promptInt(fmt.Sprintf("Select format (1-%d): ", len(settings.SupportedFormats)), 1, len(settings.SupportedFormats))
	if err != nil {
		return
	}
	selected := settings.SupportedFormats[choice-1]
	if selected == current {
		fmt.Println("Format is already set to this option.")
		return
	}
	if err := s.prefs.SetOutputFormat(selected); err != nil {
		fmt.Println("Failed to save format setting")
		return
	}
	fmt.Printf("Output format changed to '%s'\n", selected)
}

// listBooks prints the books and returns them, or nil when there are none.
func (s *session) listBooks() []string {
	books, err := s.store.ListBooks()
	if err != nil {
		fmt.Println("No media directory found.")
		return nil
	}
	printBooks(s.store, books)
	return books
}

// browseBooks lists books and optionally drills into one; Enter returns to
// the menu.
func (s *session) browseBooks() {
	books := s.listBooks()
	if len(books) == 0 {
		return
	}

	for {
		line, err := s.readLine(fmt.Sprintf("\nSelect a book (1-%d) or press Enter to return: ", len(books)))
		if err != nil || line == "" {
			return
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > len(books) {
			fmt.Printf("Invalid selection. Please enter a number between 1 and %d.\n", len(books))
			continue
		}

		selected := books[n-1]
		fmt.Printf("\nSelected book: %s\n", selected)
		s.showChapter(selected)
		return
	}
}

// viewChapterText walks the full book-then-chapter selection.
func (s *session) viewChapterText() {
	books := s.listBooks()
	if len(books) == 0 {
		return
	}
	choice, err := s.promptInt(fmt.Sprintf("\nSelect a book (1-%d): ", len(books)), 1, len(books))
	if err != nil {
		return
	}
	s.showChapter(books[choice-1])
}

func (s *session) selectBookByIndex() {
	books := s.listBooks()
	if len(books) == 0 {
		return
	}
	choice, err := s.promptInt(fmt.Sprintf("\nEnter book index (1-%d): ", len(books)), 1, len(books))
	if err != nil {
		return
	}
	selected := books[choice-1]
	fmt.Printf("\nSelected book: %s\n", selected)
	s.showChapter(selected)
}

// showChapter lists a book's chapters, prompts for one, and prints it.
func (s *session) showChapter(bookID string) {
	chapters, err := s.store.ListChapters(bookID)
	if err != nil || len(chapters) == 0 {
		fmt.Println("No chapter files found in this book.")
		return
	}

	fmt.Printf("\nChapters in '%s':\n", bookID)
	for i, ch := range chapters {
		fmt.Printf("%d. %s\n", i+1, ch)
	}

	choice, err := s.promptInt(fmt.Sprintf("\nSelect a chapter (1-%d): ", len(chapters)), 1, len(chapters))
	if err != nil {
		return
	}
	if err := displayChapter(s.store, bookID, chapters[choice-1]); err != nil {
		fmt.Printf("Error reading chapter file: %v\n", err)
	}
}
