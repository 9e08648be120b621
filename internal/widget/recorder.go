package widget

import (
	"sync"

	"terrain_alert/internal/widget/view"
)

// Snapshot is the visible state of a Recorder.
type Snapshot struct {
	Value        string
	Status       string
	Modal        *view.Modal
	ModalVisible bool
}

// Recorder is an in-memory display: it implements every surface and records
// what was written. The web host renders pages from it; tests use it as the
// mock element set.
type Recorder struct {
	mu      sync.Mutex
	value   string
	status  string
	content *view.Modal
	visible bool
}

// NewRecorder creates a recorder whose input field holds value.
func NewRecorder(value string) *Recorder {
	return &Recorder{value: value}
}

// Elements returns the recorder as a widget element set.
func (r *Recorder) Elements() Elements {
	return Elements{Input: r, Status: r, Content: r, Modal: r}
}

// SetValue changes the input field.
func (r *Recorder) SetValue(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
}

// Value implements Input.
func (r *Recorder) Value() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// SetText implements StatusArea.
func (r *Recorder) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = text
}

// SetContent implements ContentArea.
func (r *Recorder) SetContent(m view.Modal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = &m
}

// Show implements Modal.
func (r *Recorder) Show() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = true
}

// Hide implements Modal.
func (r *Recorder) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = false
}

// Snapshot returns a copy of the current state.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{Value: r.value, Status: r.status, ModalVisible: r.visible}
	if r.content != nil {
		m := *r.content
		s.Modal = &m
	}
	return s
}
