package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/zjrosen/edi/internal/buffer"
	"github.com/zjrosen/edi/internal/log"
	"github.com/zjrosen/edi/internal/textfile"
)

// openDocument loads path into a document. An empty path gives an unnamed
// buffer; a path that does not exist yet gives an empty buffer bound to it
// and the status message to show.
func openDocument(store *textfile.Store, path string, tabStop int) (*buffer.Document, string, error) {
	if path == "" {
		return buffer.New(tabStop), "", nil
	}

	lines, err := store.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(log.CatFile, "new file", "path", path)
		doc := buffer.New(tabStop)
		doc.SetFilename(path)
		return doc, "New file", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("opening file: %w", err)
	}

	doc := buffer.FromLines(lines, tabStop)
	doc.SetFilename(path)
	return doc, "", nil
}
