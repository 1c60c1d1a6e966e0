package editor

import (
	"errors"

	"github.com/zjrosen/edi/internal/log"
	"github.com/zjrosen/edi/internal/textfile"
)

// insertChar inserts b at the cursor. On the virtual row an empty row is
// created first.
func (s *Session) insertChar(b byte) {
	if s.view.Y == s.doc.RowCount() {
		s.doc.InsertRowAt(s.doc.RowCount(), nil)
	}
	s.doc.InsertChar(s.view.Y, s.view.X, b)
	s.view.X++
}

// insertNewline breaks the row at the cursor and moves to the start of the
// new row.
func (s *Session) insertNewline() {
	if s.view.X == 0 {
		s.doc.InsertRowAt(s.view.Y, nil)
	} else {
		s.doc.SplitRowAt(s.view.Y, s.view.X)
	}
	s.view.Y++
	s.view.X = 0
}

// deleteChar removes the byte left of the cursor, joining with the previous
// row at column 0. Nothing happens at the very start of the document or on
// the virtual row.
func (s *Session) deleteChar() {
	y, x := s.view.Y, s.view.X
	if y == s.doc.RowCount() || (x == 0 && y == 0) {
		return
	}
	if x > 0 {
		s.doc.DeleteChar(y, x-1)
		s.view.X--
		return
	}
	at, _ := s.doc.JoinWithPrevious(y)
	s.view.Y--
	s.view.X = at
}

// save writes the document, asking for a name first when it has none.
func (s *Session) save() {
	if s.doc.Filename() == "" {
		s.openPrompt("Save as: %s", s.saveAs)
		return
	}
	s.write()
}

func (s *Session) saveAs(name string) {
	s.doc.SetFilename(name)
	s.write()
}

func (s *Session) write() {
	name := s.doc.Filename()
	n, err := s.saver.Save(name, s.doc.Lines())
	if err != nil {
		log.ErrorErr(log.CatFile, "save failed", err, "path", name)
		var fileErr *textfile.Error
		if errors.As(err, &fileErr) {
			err = fileErr.Err
		}
		s.SetStatusMessage("Error while saving: %s", err)
		return
	}
	s.doc.MarkSaved()
	s.SetStatusMessage("%d bytes written to disk", n)
}
