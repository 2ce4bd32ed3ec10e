// Package cmd implements the fw CLI to track monthly fund holdings.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/rsarin/fundwatch"
)

// Register the subcommands.
// A main package calls Register() to wire subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "book")
	c.Register(&holdingCmd{}, "book")
	c.Register(&monthsCmd{}, "book")

	c.Register(&changesCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "holdings.json", "Path to the book file holding the monthly snapshots (JSON)")

// LoadBook loads the app book file. Missing or corrupt files degrade to an
// empty book with a logged warning; that policy lives in the root package.
func LoadBook() *fundwatch.Book {
	return fundwatch.LoadBook(*bookFile)
}

// SaveBook persists the book into the app book file.
func SaveBook(b *fundwatch.Book) error {
	return fundwatch.SaveBook(*bookFile, b)
}
