package buffer

import "slices"

// Document is an ordered, index-addressed sequence of rows plus the identity of
// the file it was loaded from. Every mutation marks the document modified.
type Document struct {
	rows     []*Row
	tabStop  int
	modified bool
	filename string
}

// New returns an empty, unnamed document.
func New(tabStop int) *Document {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Document{tabStop: tabStop}
}

// FromLines builds a document with one row per line. The result is not
// marked modified.
func FromLines(lines [][]byte, tabStop int) *Document {
	d := New(tabStop)
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(line, d.tabStop))
	}
	return d
}

// TabStop returns the tab width used to render rows.
func (d *Document) TabStop() int { return d.tabStop }

// RowCount returns the number of rows.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns row y, or nil when y is out of range.
func (d *Document) Row(y int) *Row {
	if y < 0 || y >= len(d.rows) {
		return nil
	}
	return d.rows[y]
}

// RowLen returns the byte length of row y, or 0 when y is out of range.
func (d *Document) RowLen(y int) int {
	if r := d.Row(y); r != nil {
		return r.Len()
	}
	return 0
}

// RenderColumn maps (y, x) to a render column; 0 outside the document.
func (d *Document) RenderColumn(y, x int) int {
	if r := d.Row(y); r != nil {
		return r.RenderColumn(x)
	}
	return 0
}

// RenderRow returns the render bytes of row y, or nil when y is out of range.
func (d *Document) RenderRow(y int) []byte {
	if r := d.Row(y); r != nil {
		return r.Render()
	}
	return nil
}

// Lines returns the raw bytes of every row, in order.
func (d *Document) Lines() [][]byte {
	lines := make([][]byte, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.Chars()
	}
	return lines
}

// Modified reports whether the document changed since it was loaded or saved.
func (d *Document) Modified() bool { return d.modified }

// MarkSaved clears the modified flag.
func (d *Document) MarkSaved() { d.modified = false }

// Filename returns the file identity, empty for an unnamed buffer.
func (d *Document) Filename() string { return d.filename }

// SetFilename binds the document to a file name.
func (d *Document) SetFilename(name string) { d.filename = name }

// InsertRowAt inserts a new row holding text at index, shifting later rows
// down. index may equal RowCount to append.
func (d *Document) InsertRowAt(index int, text []byte) bool {
	if index < 0 || index > len(d.rows) {
		return false
	}
	d.rows = slices.Insert(d.rows, index, NewRow(text, d.tabStop))
	d.modified = true
	return true
}

// DeleteRow removes row index.
func (d *Document) DeleteRow(index int) bool {
	if index < 0 || index >= len(d.rows) {
		return false
	}
	d.rows = slices.Delete(d.rows, index, index+1)
	d.modified = true
	return true
}

// InsertChar inserts b into row y at column at. An out of range column is
// clamped to the end of the row.
func (d *Document) InsertChar(y, at int, b byte) bool {
	r := d.Row(y)
	if r == nil {
		return false
	}
	r.insertByte(at, b)
	d.modified = true
	return true
}

// DeleteChar removes the byte at column at of row y.
func (d *Document) DeleteChar(y, at int) bool {
	r := d.Row(y)
	if r == nil || !r.deleteByte(at) {
		return false
	}
	d.modified = true
	return true
}

// AppendBytes concatenates b to the end of row y.
func (d *Document) AppendBytes(y int, b []byte) bool {
	r := d.Row(y)
	if r == nil {
		return false
	}
	r.appendBytes(b)
	d.modified = true
	return true
}

// SplitRowAt moves chars[x:] of row y into a new row at y+1.
func (d *Document) SplitRowAt(y, x int) bool {
	r := d.Row(y)
	if r == nil {
		return false
	}
	suffix := r.truncate(x)
	return d.InsertRowAt(y+1, suffix)
}

// JoinWithPrevious appends row y to row y-1 and removes row y. It returns the
// column in row y-1 where the joined text starts.
func (d *Document) JoinWithPrevious(y int) (int, bool) {
	if y <= 0 || y >= len(d.rows) {
		return 0, false
	}
	prev := d.rows[y-1]
	at := prev.Len()
	d.AppendBytes(y-1, d.rows[y].Chars())
	d.DeleteRow(y)
	return at, true
}
