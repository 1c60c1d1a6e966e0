package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/edi/internal/input"
	"github.com/zjrosen/edi/internal/log"
	"github.com/zjrosen/edi/internal/view"
)

// HandleKey applies one key to the session.
func (s *Session) HandleKey(k input.Key) Action {
	if s.prompt != nil {
		s.handlePrompt(k)
		s.view.Reflow(s.doc)
		return ActionNone
	}

	if key.Matches(k, s.keys.Quit) {
		return s.quit()
	}

	action := s.dispatch(k)
	s.quitLeft = s.quitTimes
	s.view.Reflow(s.doc)
	return action
}

// quit asks for confirmation while there are unsaved changes: the quit key
// has to be pressed quitTimes times in a row.
func (s *Session) quit() Action {
	if s.doc.Modified() && s.quitLeft > 1 {
		s.quitLeft--
		s.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", s.quitLeft)
		log.Debug(log.CatEdit, "quit blocked by unsaved changes", "remaining", s.quitLeft)
		return ActionNone
	}
	log.Info(log.CatEdit, "quit", "modified", s.doc.Modified())
	return ActionQuit
}

func (s *Session) dispatch(k input.Key) Action {
	switch {
	case key.Matches(k, s.keys.Enter):
		s.insertNewline()
	case key.Matches(k, s.keys.Up):
		s.view.Move(s.doc, view.Up)
	case key.Matches(k, s.keys.Down):
		s.view.Move(s.doc, view.Down)
	case key.Matches(k, s.keys.Left):
		s.view.Move(s.doc, view.Left)
	case key.Matches(k, s.keys.Right):
		s.view.Move(s.doc, view.Right)
	case key.Matches(k, s.keys.PageUp):
		s.view.Page(s.doc, view.Up)
	case key.Matches(k, s.keys.PageDown):
		s.view.Page(s.doc, view.Down)
	case key.Matches(k, s.keys.Home):
		s.view.Home()
	case key.Matches(k, s.keys.End):
		s.view.End(s.doc)
	case key.Matches(k, s.keys.Backspace):
		s.deleteChar()
	case key.Matches(k, s.keys.Delete):
		s.view.Move(s.doc, view.Right)
		s.deleteChar()
	case key.Matches(k, s.keys.Save):
		s.save()
	case key.Matches(k, s.keys.Refresh):
		return ActionRefresh
	case key.Matches(k, s.keys.Escape):
	case k.Kind == input.KindPrintable:
		s.insertChar(k.Byte)
	default:
		log.Debug(log.CatInput, "unbound key", "key", k)
	}
	return ActionNone
}
