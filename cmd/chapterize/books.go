package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chapterize/internal/bookstore"
	"chapterize/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List processed books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := bookstore.New(config.Load().MediaDir, newLogger())
		books, err := store.ListBooks()
		if err != nil {
			return err
		}
		printBooks(store, books)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <book> <chapter-file>",
	Short: "Print the text of one chapter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := bookstore.New(config.Load().MediaDir, newLogger())
		return displayChapter(store, args[0], args[1])
	},
}

var bookCmd = &cobra.Command{
	Use:   "book <index>",
	Short: "Select a book by index and print its first chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("book index must be a number, got %q", args[0])
		}

		store := bookstore.New(config.Load().MediaDir, newLogger())
		books, err := store.ListBooks()
		if err != nil {
			return err
		}
		printBooks(store, books)
		if len(books) == 0 {
			return nil
		}
		if index < 1 || index > len(books) {
			return fmt.Errorf("book index %d is out of range (1-%d)", index, len(books))
		}

		selected := books[index-1]
		fmt.Printf("Selected book: %s\n", selected)

		chapters, err := store.ListChapters(selected)
		if err != nil {
			return err
		}
		if len(chapters) == 0 {
			fmt.Println("No chapter files found in this book.")
			return nil
		}

		fmt.Printf("\nChapters in '%s':\n", selected)
		for i, ch := range chapters {
			fmt.Printf("%d. %s\n", i+1, ch)
		}

		fmt.Printf("\nDisplaying first chapter: %s\n", chapters[0])
		return displayChapter(store, selected, chapters[0])
	},
}

// printBooks lists books with their chapter counts, 1-indexed for selection.
func printBooks(store *bookstore.Store, books []string) {
	if len(books) == 0 {
		fmt.Println("No processed books found.")
		return
	}
	fmt.Println("\nProcessed books:")
	for i, b := range books {
		count := 0
		if chapters, err := store.ListChapters(b); err == nil {
			count = len(chapters)
		}
		fmt.Printf("%d. %s (%d chapters)\n", i+1, b, count)
	}
}

// displayChapter prints a chapter's text between separator rules.
func displayChapter(store *bookstore.Store, bookID, filename string) error {
	content, err := store.ReadChapter(bookID, filename)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n", rule)
	fmt.Printf("Chapter: %s\n", filename)
	fmt.Printf("Book: %s\n", bookID)
	fmt.Println(rule)
	fmt.Println(content)
	fmt.Println(rule)
	return nil
}
