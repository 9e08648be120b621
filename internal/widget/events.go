package widget

import (
	"context"
	"errors"

	"terrain_alert/platform/apperr"
	"terrain_alert/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EventKind is the kind of a UI event delivered to Bind.
type EventKind int

const (
	// EventKeyUp is a key released while the input field has focus.
	EventKeyUp EventKind = iota
	// EventClick is a click on the modal, its overlay or its close control.
	EventClick
	// EventSubmit is an explicit submit action (a search button).
	EventSubmit
	// EventInput is the user editing the input field.
	EventInput
)

// Event is a UI event.
type Event struct {
	Kind   EventKind
	Key    string // EventKeyUp only
	Target Target // EventClick only
	Value  string // EventInput only
}

// EditableInput is an Input whose value can be replaced by EventInput.
type EditableInput interface {
	Input
	SetValue(value string)
}

// Bind registers the widget's handlers against an event stream and returns a
// disposer. Each submission runs on its own goroutine so the surfaces stay
// interactive while a request is pending.
//
// dispose stops dispatching and waits for in-flight submissions to resolve;
// it never cancels them. Bind also stops when events is closed or ctx ends.
// After dispose, or once ctx ends, events is no longer read: hosts must stop
// sending, since a send on an unbuffered channel would block forever.
func (w *Widget) Bind(ctx context.Context, events <-chan Event) (dispose func()) {
	loopCtx, cancel := context.WithCancel(ctx)
	submitCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.Go(func() error {
		for {
			select {
			case <-loopCtx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				w.dispatch(submitCtx, &g, ev)
			}
		}
	})

	return func() {
		cancel()
		_ = g.Wait()
	}
}

func (w *Widget) dispatch(ctx context.Context, g *errgroup.Group, ev Event) {
	switch ev.Kind {
	case EventInput:
		if in, ok := w.el.Input.(EditableInput); ok {
			in.SetValue(ev.Value)
		}
	case EventClick:
		w.HandleClick(ev.Target)
	case EventKeyUp:
		if ev.Key != KeyEnter {
			return
		}
		w.spawnSubmit(ctx, g)
	case EventSubmit:
		w.spawnSubmit(ctx, g)
	}
}

// spawnSubmit reads the field value at dispatch time, like a handler reading
// the input when the event fires.
func (w *Widget) spawnSubmit(ctx context.Context, g *errgroup.Group) {
	raw := w.el.Input.Value()
	ctx = context.WithValue(ctx, logger.SubmissionIDKey, uuid.NewString())

	g.Go(func() error {
		err := w.Submit(ctx, raw)
		if err != nil && !errors.Is(err, ErrSuperseded) && apperr.GetKind(err) != apperr.KindValidation {
			w.log.WithContext(ctx).Debug("submission finished with error", "kind", apperr.GetKind(err).String())
		}
		// Submission errors are already on the status area.
		return nil
	})
}
