// Package terminal hosts the widget on a line-oriented terminal: each line
// typed is the input field's value followed by an Enter key-up.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"terrain_alert/internal/widget"
	"terrain_alert/internal/widget/view"
)

// Commands understood by Run besides plain place names.
const (
	CommandClose = ":close"
	CommandQuit  = ":q"
)

// Screen implements the widget surfaces over a writer.
type Screen struct {
	mu      sync.Mutex
	out     io.Writer
	value   string
	content *view.Modal
	visible bool
}

// NewScreen creates a screen writing to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// Elements returns the screen as a widget element set.
func (s *Screen) Elements() widget.Elements {
	return widget.Elements{Input: s, Status: s, Content: s, Modal: s}
}

// SetValue sets the input line.
func (s *Screen) SetValue(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

// Value implements widget.Input.
func (s *Screen) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// SetText implements widget.StatusArea. Clearing prints nothing.
func (s *Screen) SetText(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, text)
}

// SetContent implements widget.ContentArea.
func (s *Screen) SetContent(m view.Modal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = &m
}

// Show implements widget.Modal by printing the current content.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	if s.content == nil {
		return
	}
	if err := view.WriteText(s.out, *s.content); err != nil {
		fmt.Fprintln(s.out, "render error:", err)
	}
	fmt.Fprintf(s.out, "(%s to dismiss)\n", CommandClose)
}

// Hide implements widget.Modal.
func (s *Screen) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.visible {
		return
	}
	s.visible = false
	fmt.Fprintln(s.out, "(closed)")
}

// Visible reports whether the modal is shown.
func (s *Screen) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Run feeds lines from in to the widget until EOF, CommandQuit or ctx ends.
// Pending submissions are waited for before Run returns.
func Run(ctx context.Context, in io.Reader, w *widget.Widget) error {
	events := make(chan widget.Event)
	dispose := w.Bind(ctx, events)
	defer dispose()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		var batch []widget.Event
		switch strings.TrimSpace(line) {
		case CommandQuit:
			return nil
		case CommandClose:
			batch = []widget.Event{{Kind: widget.EventClick, Target: widget.TargetCloseControl}}
		default:
			batch = []widget.Event{
				{Kind: widget.EventInput, Value: line},
				{Kind: widget.EventKeyUp, Key: widget.KeyEnter},
			}
		}

		for _, ev := range batch {
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
