package buffer

import "bytes"

// Render expands every tab in chars to spaces up to the next multiple of
// tabStop. A tab always produces at least one space.
func Render(chars []byte, tabStop int) []byte {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	tabs := bytes.Count(chars, []byte{'\t'})
	out := make([]byte, 0, len(chars)+tabs*(tabStop-1))
	for _, c := range chars {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// RenderColumn returns the render column of buffer column x. It applies the
// same expansion as Render to chars[:x], so RenderColumn(chars, len(chars))
// equals len(Render(chars)).
func RenderColumn(chars []byte, x, tabStop int) int {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	x = min(max(x, 0), len(chars))
	rx := 0
	for _, c := range chars[:x] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}
