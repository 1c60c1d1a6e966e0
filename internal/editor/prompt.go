package editor

import "github.com/zjrosen/edi/internal/input"

// prompt reads a line of text in the message bar. It has no cancel key; only
// a non-empty Enter closes it.
type prompt struct {
	format   string
	input    []byte
	onCommit func(string)
}

func (s *Session) openPrompt(format string, onCommit func(string)) {
	s.prompt = &prompt{format: format, onCommit: onCommit}
	s.showPrompt()
}

func (s *Session) showPrompt() {
	s.SetStatusMessage(s.prompt.format, s.prompt.input)
}

func (s *Session) handlePrompt(k input.Key) {
	p := s.prompt
	switch {
	case k.Kind == input.KindEnter:
		if len(p.input) == 0 {
			break
		}
		s.prompt = nil
		s.SetStatusMessage("")
		p.onCommit(string(p.input))
		return
	case k.Kind == input.KindPrintable && isPromptByte(k.Byte):
		p.input = append(p.input, k.Byte)
	}
	s.showPrompt()
}

// isPromptByte accepts printable ASCII only.
func isPromptByte(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
