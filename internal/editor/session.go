// Package editor holds the editing session: the document, the cursor and
// viewport over it, and the key dispatch that mutates them.
package editor

import (
	"fmt"
	"time"

	"github.com/zjrosen/edi/internal/buffer"
	"github.com/zjrosen/edi/internal/keys"
	"github.com/zjrosen/edi/internal/log"
	"github.com/zjrosen/edi/internal/screen"
	"github.com/zjrosen/edi/internal/view"
)

// DefaultQuitTimes is how many consecutive quit keys discard unsaved changes.
const DefaultQuitTimes = 2

// statusRows is the space under the text area taken by the status bar and
// the message line.
const statusRows = 2

// Action tells the main loop what to do after a key.
type Action int

const (
	ActionNone    Action = iota
	ActionRefresh        // re-query the window size, then redraw
	ActionQuit
)

// Saver persists the document.
type Saver interface {
	Save(path string, lines [][]byte) (int, error)
}

// Options configures a Session.
type Options struct {
	QuitTimes      int
	Version        string
	MessageTimeout time.Duration
}

// Session is one editing session. It is not safe for concurrent use.
type Session struct {
	doc        *buffer.Document
	view       *view.View
	keys       keys.KeyMap
	compositor *screen.Compositor
	saver      Saver

	msg    screen.Message
	prompt *prompt
	now    func() time.Time

	quitTimes int
	quitLeft  int
}

// New starts a session on doc for a terminal window of windowRows by
// windowCols cells.
func New(doc *buffer.Document, saver Saver, windowRows, windowCols int, opts Options) *Session {
	if opts.QuitTimes <= 0 {
		opts.QuitTimes = DefaultQuitTimes
	}
	s := &Session{
		doc:        doc,
		view:       view.New(1, 1),
		keys:       keys.DefaultKeyMap(),
		compositor: screen.New(opts.Version, opts.MessageTimeout),
		saver:      saver,
		now:        time.Now,
		quitTimes:  opts.QuitTimes,
		quitLeft:   opts.QuitTimes,
	}
	s.SetWindowSize(windowRows, windowCols)
	s.SetStatusMessage("%s", keys.HelpLine(s.keys.ShortHelp()))
	return s
}

// Document returns the document being edited.
func (s *Session) Document() *buffer.Document { return s.doc }

// Cursor returns the cursor in buffer coordinates.
func (s *Session) Cursor() view.Cursor { return s.view.Cursor }

// Message returns the current status message text.
func (s *Session) Message() string { return s.msg.Text }

// Prompting reports whether the session is reading a file name.
func (s *Session) Prompting() bool { return s.prompt != nil }

// SetWindowSize fits the text area to a terminal window, leaving room for the
// status bar and message line.
func (s *Session) SetWindowSize(rows, cols int) {
	s.view.Resize(rows-statusRows, cols)
	s.view.Reflow(s.doc)
}

// SetStatusMessage replaces the status message and restarts its expiry.
func (s *Session) SetStatusMessage(format string, args ...any) {
	s.msg = screen.Message{Text: fmt.Sprintf(format, args...), At: s.now()}
}

// Frame reflows the viewport and renders the whole screen.
func (s *Session) Frame() []byte {
	if s.prompt != nil {
		// The prompt stays on screen for as long as it is open.
		s.msg.At = s.now()
	}
	s.view.Reflow(s.doc)
	frame := s.compositor.Compose(s.doc, s.view, s.msg)
	log.Debug(log.CatRender, "frame", "bytes", len(frame), "row_offset", s.view.RowOffset, "col_offset", s.view.ColOffset)
	return frame
}
