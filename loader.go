package fundwatch

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// LoadBook reads the persisted book from path with the lenient policy of
// the tool: a missing file is a normal first run and yields an empty book;
// a corrupt file is logged as a warning and also yields an empty book, so
// startup never aborts on persisted state. Callers needing strict failure
// should use DecodeBook directly.
func LoadBook(path string) *Book {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not read book %q: %v, starting with an empty book", path, err)
		}
		return NewBook()
	}
	b, err := DecodeBook(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: could not decode book %q: %v, starting with an empty book", path, err)
		return NewBook()
	}
	return b
}

// SaveBook writes the whole book to path. The book is first written to a
// temporary file in the same directory and then renamed over the old file,
// so a crash mid-write leaves the prior valid state in place.
func SaveBook(path string, b *Book) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBook(tmp, b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not save book %q: %w", path, err)
	}
	return nil
}
