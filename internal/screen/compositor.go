// Package screen composes a full terminal frame from the document and view.
//
// A frame is built in memory and handed back as one byte slice; the caller
// writes it with a single Write so the terminal never shows a half-drawn
// screen.
package screen

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// DefaultMessageTimeout is how long a status message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

const (
	filler       = "~"
	noName       = "[No Name]"
	maxNameWidth = 20
)

// Document is the content the compositor draws.
type Document interface {
	RowCount() int
	RenderRow(y int) []byte
	Filename() string
	Modified() bool
}

// Viewport is the window and cursor the compositor draws.
type Viewport interface {
	Offsets() (rowOffset, colOffset int)
	Size() (rows, cols int)
	CursorRow() int
	ScreenPosition() (row, col int)
}

// Message is a transient status line message.
type Message struct {
	Text string
	At   time.Time
}

// Compositor renders frames.
type Compositor struct {
	Version        string
	MessageTimeout time.Duration

	now func() time.Time
}

// New returns a compositor that shows version in the welcome banner.
func New(version string, messageTimeout time.Duration) *Compositor {
	if messageTimeout <= 0 {
		messageTimeout = DefaultMessageTimeout
	}
	return &Compositor{
		Version:        version,
		MessageTimeout: messageTimeout,
		now:            time.Now,
	}
}

// Compose renders one frame: hidden cursor, text rows, status bar, message
// line, then the cursor placed and shown again.
func (c *Compositor) Compose(doc Document, vp Viewport, msg Message) []byte {
	var buf bytes.Buffer

	buf.WriteString(ansi.HideCursor)
	buf.WriteString(ansi.CursorHomePosition)
	c.drawRows(&buf, doc, vp)
	c.drawStatusBar(&buf, doc, vp)
	c.drawMessageBar(&buf, vp, msg)

	row, col := vp.ScreenPosition()
	buf.WriteString(ansi.CursorPosition(col, row))
	buf.WriteString(ansi.ShowCursor)
	return buf.Bytes()
}

func (c *Compositor) drawRows(buf *bytes.Buffer, doc Document, vp Viewport) {
	rowOffset, colOffset := vp.Offsets()
	rows, cols := vp.Size()
	count := doc.RowCount()

	for y := range rows {
		fileRow := y + rowOffset
		switch {
		case fileRow < count:
			buf.Write(clip(doc.RenderRow(fileRow), colOffset, cols))
		case count == 0 && y == rows/3:
			c.drawWelcome(buf, cols)
		default:
			buf.WriteString(filler)
		}
		buf.WriteString(ansi.EraseLineRight)
		buf.WriteString("\r\n")
	}
}

// clip returns render[offset : offset+width], bounded by the row length.
func clip(render []byte, offset, width int) []byte {
	if offset >= len(render) {
		return nil
	}
	end := min(offset+width, len(render))
	return render[offset:end]
}

func (c *Compositor) drawWelcome(buf *bytes.Buffer, cols int) {
	welcome := "Edi - a small text editor -- Version: " + c.Version
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		buf.WriteString(filler)
		padding--
	}
	buf.Write(bytes.Repeat([]byte{' '}, padding))
	buf.WriteString(welcome)
}

func (c *Compositor) drawStatusBar(buf *bytes.Buffer, doc Document, vp Viewport) {
	_, cols := vp.Size()

	name := doc.Filename()
	if name == "" {
		name = noName
	}
	if len(name) > maxNameWidth {
		name = name[:maxNameWidth]
	}
	modified := ""
	if doc.Modified() {
		modified = "(modified)"
	}
	left := fmt.Sprintf("%s - %d lines %s", name, doc.RowCount(), modified)
	right := strconv.Itoa(vp.CursorRow()+1) + "/" + strconv.Itoa(doc.RowCount())

	if len(left) > cols {
		left = left[:cols]
	}
	line := make([]byte, 0, cols)
	line = append(line, left...)
	for len(line) < cols {
		if cols-len(line) == len(right) {
			line = append(line, right...)
			break
		}
		line = append(line, ' ')
	}

	buf.WriteString(ansi.Style{}.Reverse(true).Styled(string(line)))
	buf.WriteString("\r\n")
}

func (c *Compositor) drawMessageBar(buf *bytes.Buffer, vp Viewport, msg Message) {
	buf.WriteString(ansi.EraseLineRight)
	if msg.Text == "" || c.now().Sub(msg.At) >= c.MessageTimeout {
		return
	}
	_, cols := vp.Size()
	text := msg.Text
	if len(text) > cols {
		text = text[:cols]
	}
	buf.WriteString(text)
}
