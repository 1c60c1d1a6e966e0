package view

// Reflow recomputes the render column and scrolls the window so the cursor is
// visible. It must run after every movement and every edit.
func (v *View) Reflow(doc Document) {
	v.renderX = 0
	if v.Y < doc.RowCount() {
		v.renderX = doc.RenderColumn(v.Y, v.X)
	}

	// Scroll up if the cursor is above the window, down if below. With no
	// text rows the window is pinned to the cursor row.
	rows := max(v.ScreenRows, 1)
	v.RowOffset = min(v.RowOffset, v.Y)
	if v.Y >= v.RowOffset+rows {
		v.RowOffset = v.Y - rows + 1
	}

	v.ColOffset = min(v.ColOffset, v.renderX)
	if v.renderX >= v.ColOffset+v.ScreenCols {
		v.ColOffset = v.renderX - v.ScreenCols + 1
	}
}

// ScreenPosition returns the 1-based (row, col) cell of the cursor on screen.
func (v *View) ScreenPosition() (row, col int) {
	return v.Y - v.RowOffset + 1, v.renderX - v.ColOffset + 1
}

// Offsets returns the first visible row and render column.
func (v *View) Offsets() (rowOffset, colOffset int) {
	return v.RowOffset, v.ColOffset
}

// Size returns the text area in rows and columns.
func (v *View) Size() (rows, cols int) {
	return v.ScreenRows, v.ScreenCols
}

// CursorRow returns the buffer row of the cursor.
func (v *View) CursorRow() int { return v.Y }
