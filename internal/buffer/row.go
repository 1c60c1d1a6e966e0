// Package buffer holds the line-oriented document model: rows of raw bytes with a
// derived, tab-expanded render form, and the edit operations that keep the two in
// step.
package buffer

import "slices"

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 8

// Row is one line of the document.
// render is always regenerated from chars; it is never patched in place.
type Row struct {
	chars   []byte
	render  []byte
	tabStop int
}

// NewRow creates a row owning a copy of text.
func NewRow(text []byte, tabStop int) *Row {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	r := &Row{
		chars:   slices.Clone(text),
		tabStop: tabStop,
	}
	if r.chars == nil {
		r.chars = []byte{}
	}
	r.update()
	return r
}

// Chars returns the raw bytes of the row. Callers must not modify the result.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the tab-expanded bytes. Callers must not modify the result.
func (r *Row) Render() []byte { return r.render }

// Len returns the number of raw bytes.
func (r *Row) Len() int { return len(r.chars) }

// RenderLen returns the number of render bytes.
func (r *Row) RenderLen() int { return len(r.render) }

// RenderColumn maps buffer column x to its render column.
func (r *Row) RenderColumn(x int) int {
	return RenderColumn(r.chars, x, r.tabStop)
}

func (r *Row) update() {
	r.render = Render(r.chars, r.tabStop)
}

// insertByte splices b in at, clamping at to [0, len].
func (r *Row) insertByte(at int, b byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = slices.Insert(r.chars, at, b)
	r.update()
}

// deleteByte removes the byte at at. It reports false when at is out of range.
func (r *Row) deleteByte(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = slices.Delete(r.chars, at, at+1)
	r.update()
	return true
}

func (r *Row) appendBytes(b []byte) {
	r.chars = append(r.chars, b...)
	r.update()
}

// truncate cuts the row to chars[:x] and returns a copy of the removed suffix.
func (r *Row) truncate(x int) []byte {
	x = min(max(x, 0), len(r.chars))
	suffix := slices.Clone(r.chars[x:])
	r.chars = r.chars[:x:x]
	r.update()
	return suffix
}
