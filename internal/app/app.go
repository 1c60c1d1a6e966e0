// Package app contains the main loop: draw a frame, read a key, apply it.
package app

import (
	"fmt"
	"io"

	"github.com/zjrosen/edi/internal/editor"
	"github.com/zjrosen/edi/internal/input"
	"github.com/zjrosen/edi/internal/log"
)

// Terminal is the device the loop draws on and reads keys from. Read must
// return (0, nil) when no input arrived within its timeout.
type Terminal interface {
	io.ReadWriter
	Size() (rows, cols int, err error)
	ClearScreen() error
}

// Model drives one editing session against a terminal.
type Model struct {
	term    Terminal
	session *editor.Session
	decoder *input.Decoder
}

// New returns a loop for session drawing on term.
func New(term Terminal, session *editor.Session) *Model {
	return &Model{
		term:    term,
		session: session,
		decoder: input.NewDecoder(term),
	}
}

// Run loops until the session asks to quit or the terminal fails. The screen
// is cleared on the way out in both cases.
func (m *Model) Run() (err error) {
	defer func() {
		if cerr := m.term.ClearScreen(); cerr != nil && err == nil {
			err = fmt.Errorf("clearing screen: %w", cerr)
		}
	}()

	if err := m.draw(); err != nil {
		return err
	}
	for k, err := range m.decoder.Keys() {
		if err != nil {
			log.ErrorErr(log.CatInput, "read failed", err)
			return err
		}

		switch m.session.HandleKey(k) {
		case editor.ActionQuit:
			return nil
		case editor.ActionRefresh:
			if err := m.refresh(); err != nil {
				return err
			}
		}

		if err := m.draw(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) draw() error {
	if _, err := m.term.Write(m.session.Frame()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func (m *Model) refresh() error {
	rows, cols, err := m.term.Size()
	if err != nil {
		return err
	}
	log.Debug(log.CatTerm, "window size", "rows", rows, "cols", cols)
	m.session.SetWindowSize(rows, cols)
	return nil
}
