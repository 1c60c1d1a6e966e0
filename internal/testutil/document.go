package testutil

import (
	"testing"

	"github.com/zjrosen/edi/internal/buffer"
)

// DocBuilder accumulates lines and settings for a test document.
type DocBuilder struct {
	t        testing.TB
	lines    []string
	tabStop  int
	filename string
}

// NewDocBuilder creates a builder for an empty, unnamed document.
func NewDocBuilder(t testing.TB) *DocBuilder {
	t.Helper()
	return &DocBuilder{t: t, tabStop: buffer.DefaultTabStop}
}

// WithLines appends lines.
func (b *DocBuilder) WithLines(lines ...string) *DocBuilder {
	b.lines = append(b.lines, lines...)
	return b
}

// WithTabStop sets the tab width.
func (b *DocBuilder) WithTabStop(n int) *DocBuilder {
	b.tabStop = n
	return b
}

// WithFilename binds the document to name.
func (b *DocBuilder) WithFilename(name string) *DocBuilder {
	b.filename = name
	return b
}

// Build returns the document. It is not marked modified.
func (b *DocBuilder) Build() *buffer.Document {
	b.t.Helper()
	raw := make([][]byte, len(b.lines))
	for i, l := range b.lines {
		raw[i] = []byte(l)
	}
	doc := buffer.FromLines(raw, b.tabStop)
	doc.SetFilename(b.filename)
	if doc.Modified() {
		b.t.Fatalf("freshly built document is marked modified")
	}
	return doc
}

// Document is shorthand for a document holding lines with the default tab stop.
func Document(t testing.TB, lines ...string) *buffer.Document {
	t.Helper()
	return NewDocBuilder(t).WithLines(lines...).Build()
}

// Lines returns the rows of doc as strings.
func Lines(doc *buffer.Document) []string {
	out := make([]string, 0, doc.RowCount())
	for _, l := range doc.Lines() {
		out = append(out, string(l))
	}
	return out
}
