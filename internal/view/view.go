// Package view maps buffer coordinates onto the screen.
//
// A View tracks the cursor in buffer coordinates (X bytes into row Y), the
// derived render column, and the window of rows and columns currently visible.
// Y may equal the row count: that virtual row sits just past the last line and
// is where new text is appended.
package view

// Document is the read-only view of the text that cursor movement needs.
type Document interface {
	RowCount() int
	RowLen(y int) int
	RenderColumn(y, x int) int
}

// Direction is a single-step cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cursor is a position in buffer coordinates.
type Cursor struct {
	X int
	Y int
}

// View holds the cursor and the visible window over a document.
type View struct {
	Cursor

	renderX int

	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
}

// New returns a view for a text area of rows by cols cells.
func New(rows, cols int) *View {
	v := &View{}
	v.Resize(rows, cols)
	return v
}

// Resize changes the text area. A window too short for any text rows leaves
// zero rows; the column count is kept at one or more.
func (v *View) Resize(rows, cols int) {
	v.ScreenRows = max(rows, 0)
	v.ScreenCols = max(cols, 1)
}

// RenderX returns the render column computed by the last Reflow.
func (v *View) RenderX() int { return v.renderX }

// Move applies one cursor step. Left and Right wrap across row boundaries;
// after any step X is clamped to the length of the row the cursor lands on.
func (v *View) Move(doc Document, dir Direction) {
	count := doc.RowCount()
	switch dir {
	case Left:
		if v.X > 0 {
			v.X--
		} else if v.Y > 0 {
			v.Y--
			v.X = doc.RowLen(v.Y)
		}
	case Right:
		if v.Y < count && v.X < doc.RowLen(v.Y) {
			v.X++
		} else if v.Y < count {
			v.Y++
			v.X = 0
		}
	case Up:
		if v.Y > 0 {
			v.Y--
		}
	case Down:
		if v.Y < count {
			v.Y++
		}
	}
	v.clampX(doc)
}

// Page moves a full screen. The cursor is first parked on the top (Up) or
// bottom (Down) visible row, then ScreenRows single steps are replayed so the
// usual clamping applies.
func (v *View) Page(doc Document, dir Direction) {
	if v.ScreenRows == 0 {
		return
	}
	switch dir {
	case Up:
		v.Y = v.RowOffset
	case Down:
		v.Y = min(v.RowOffset+v.ScreenRows-1, doc.RowCount())
	default:
		return
	}
	v.clampX(doc)
	for range v.ScreenRows {
		v.Move(doc, dir)
	}
}

// Home moves to the start of the row.
func (v *View) Home() { v.X = 0 }

// End moves past the last byte of the current row. On the virtual row the
// cursor stays at column 0.
func (v *View) End(doc Document) {
	if v.Y < doc.RowCount() {
		v.X = doc.RowLen(v.Y)
	}
}

// SetCursor places the cursor and clamps it into the document.
func (v *View) SetCursor(doc Document, x, y int) {
	v.Y = min(max(y, 0), doc.RowCount())
	v.X = x
	v.clampX(doc)
}

func (v *View) clampX(doc Document) {
	rowLen := 0
	if v.Y < doc.RowCount() {
		rowLen = doc.RowLen(v.Y)
	}
	v.X = min(max(v.X, 0), rowLen)
}
