// Package widget implements the location query widget: it validates a typed
// place, submits it to the prediction endpoint and shows either the result
// modal or a message in the status area.
//
// The widget never touches a concrete display. Hosts inject an Elements set
// (a terminal, a server-rendered page, a test recorder) and drive the widget
// through Submit, Close, HandleKey and HandleClick, or through Bind.
package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"terrain_alert/internal/predict"
	"terrain_alert/internal/widget/view"
	"terrain_alert/platform/apperr"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"
)

// Status area messages.
const (
	MsgEnterLocation = "⚠️ Please enter a location."
	MsgServerError   = "❌ Server error. Please try again."
	errorPrefix      = "❌ "
)

// KeyEnter is the key name that submits the input field.
const KeyEnter = "Enter"

// ErrSuperseded is returned by Submit when a newer submission was dispatched
// before this one resolved and the response was discarded.
var ErrSuperseded = errors.New("widget: response superseded by a newer submission")

// Input is the text field the user types a place into.
type Input interface {
	Value() string
}

// StatusArea shows short validation and error messages.
type StatusArea interface {
	SetText(text string)
}

// ContentArea is the modal's content region.
type ContentArea interface {
	SetContent(m view.Modal)
}

// Modal is the overlay that presents a prediction.
type Modal interface {
	Show()
	Hide()
}

// Elements are the display surfaces the widget writes to.
type Elements struct {
	Input   Input
	Status  StatusArea
	Content ContentArea
	Modal   Modal
}

// Target identifies what a click landed on.
type Target int

const (
	// TargetContent is anything inside the modal's content area.
	TargetContent Target = iota
	// TargetOverlay is the modal's background overlay itself.
	TargetOverlay
	// TargetCloseControl is the dedicated close button.
	TargetCloseControl
)

// Option configures a Widget.
type Option func(*Widget)

// WithClock replaces time.Now for the modal timestamp.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// WithDropStale makes the widget discard responses of submissions that were
// overtaken by a newer one. Without it the last response to resolve wins.
func WithDropStale(enabled bool) Option {
	return func(w *Widget) { w.dropStale = enabled }
}

// WithValidator injects a shared validator instance.
func WithValidator(val *validator.Validator) Option {
	return func(w *Widget) { w.val = val }
}

// Widget is the location query widget. It is safe for concurrent use;
// surface writes are serialized.
type Widget struct {
	predictor predict.Predictor
	el        Elements
	log       *logger.Logger
	val       *validator.Validator
	now       func() time.Time
	dropStale bool

	mu  sync.Mutex
	seq atomic.Uint64
}

// New creates a widget bound to the given surfaces.
func New(predictor predict.Predictor, el Elements, log *logger.Logger, opts ...Option) *Widget {
	w := &Widget{
		predictor: predictor,
		el:        el,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.val == nil {
		w.val = validator.New()
	}
	return w
}

// ParseQuery trims raw and rejects blank input.
func (w *Widget) ParseQuery(raw string) (string, error) {
	place := strings.TrimSpace(raw)
	if err := w.val.Var(place, "required"); err != nil {
		return "", apperr.Validation("please enter a location").WithOp("parse query")
	}
	return place, nil
}

// Submit runs one submission for raw. The display is fully updated before it
// returns; the returned error only tells callers which branch was taken.
func (w *Widget) Submit(ctx context.Context, raw string) error {
	w.mu.Lock()
	w.el.Status.SetText("")
	w.mu.Unlock()

	place, err := w.ParseQuery(raw)
	if err != nil {
		w.mu.Lock()
		w.el.Status.SetText(MsgEnterLocation)
		w.mu.Unlock()
		return err
	}

	seq := w.seq.Add(1)
	resp, err := w.predictor.Predict(ctx, place)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dropStale && seq != w.seq.Load() {
		w.log.WithContext(ctx).Debug("stale prediction response dropped", "place", place, "seq", seq)
		return ErrSuperseded
	}

	if err != nil {
		switch apperr.GetKind(err) {
		case apperr.KindApplication:
			w.el.Status.SetText(errorPrefix + apperr.MessageOf(err))
		case apperr.KindValidation:
			w.el.Status.SetText(MsgEnterLocation)
		default:
			w.log.WithContext(ctx).PredictionError(place, err)
			w.el.Status.SetText(MsgServerError)
		}
		return err
	}

	w.el.Content.SetContent(view.Render(resp, w.now()))
	w.el.Modal.Show()
	return nil
}

// Close hides the modal.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.el.Modal.Hide()
}

// HandleKey reacts to a key released in the input field. Enter submits the
// current field value; every Enter is one submission.
func (w *Widget) HandleKey(ctx context.Context, key string) error {
	if key != KeyEnter {
		return nil
	}
	return w.Submit(ctx, w.el.Input.Value())
}

// HandleClick closes the modal for clicks on the close control or directly
// on the overlay. Clicks inside the content area are ignored.
func (w *Widget) HandleClick(target Target) {
	switch target {
	case TargetOverlay, TargetCloseControl:
		w.Close()
	}
}
