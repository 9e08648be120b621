package widget

import (
	"context"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBind_DispatchesEvents(t *testing.T) {
	p := &fakePredictor{resp: parisResponse()}
	rec := NewRecorder("Paris")
	w := newTestWidget(p, rec)

	events := make(chan Event)
	dispose := w.Bind(context.Background(), events)

	events <- Event{Kind: EventKeyUp, Key: "s"}
	events <- Event{Kind: EventKeyUp, Key: KeyEnter}
	waitFor(t, func() bool { return rec.Snapshot().ModalVisible })

	events <- Event{Kind: EventClick, Target: TargetContent}
	if !rec.Snapshot().ModalVisible {
		t.Fatal("expected click inside content to keep modal open")
	}

	events <- Event{Kind: EventClick, Target: TargetOverlay}
	waitFor(t, func() bool { return !rec.Snapshot().ModalVisible })

	events <- Event{Kind: EventInput, Value: "Lyon"}
	events <- Event{Kind: EventSubmit}
	dispose()

	calls := p.calls()
	if len(calls) != 2 || calls[0] != "Paris" || calls[1] != "Lyon" {
		t.Fatalf("expected Paris then Lyon, got %v", calls)
	}
}

func TestBind_EnterIsSameAsSubmit(t *testing.T) {
	for _, ev := range []Event{{Kind: EventKeyUp, Key: KeyEnter}, {Kind: EventSubmit}} {
		p := &fakePredictor{resp: parisResponse()}
		rec := NewRecorder("  Paris  ")
		w := newTestWidget(p, rec)

		events := make(chan Event, 1)
		dispose := w.Bind(context.Background(), events)
		events <- ev
		waitFor(t, func() bool { return rec.Snapshot().ModalVisible })
		dispose()

		calls := p.calls()
		if len(calls) != 1 || calls[0] != "Paris" {
			t.Fatalf("event %+v: expected one Paris request, got %v", ev, calls)
		}
	}
}

func TestBind_DisposeWaitsForInFlight(t *testing.T) {
	g := &gatedPredictor{
		gates: map[string]chan struct{}{"Paris": make(chan struct{})},
		start: make(chan string, 1),
	}
	rec := NewRecorder("Paris")
	w := newTestWidget(&fakePredictor{}, rec)
	w.predictor = g

	events := make(chan Event)
	dispose := w.Bind(context.Background(), events)
	events <- Event{Kind: EventSubmit}
	<-g.start

	done := make(chan struct{})
	go func() {
		dispose()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("expected dispose to wait for the pending submission")
	case <-time.After(50 * time.Millisecond):
	}

	close(g.gates["Paris"])
	<-done

	if !rec.Snapshot().ModalVisible {
		t.Fatal("expected pending submission to complete and render")
	}
}

func TestBind_StopsReadingAfterDispose(t *testing.T) {
	p := &fakePredictor{resp: parisResponse()}
	rec := NewRecorder("Paris")
	w := newTestWidget(p, rec)

	events := make(chan Event)
	var dispose func() = w.Bind(context.Background(), events)
	dispose()

	select {
	case events <- Event{Kind: EventSubmit}:
		t.Fatal("expected no reader after dispose")
	case <-time.After(50 * time.Millisecond):
	}

	if len(p.calls()) != 0 {
		t.Fatalf("expected no submissions, got %v", p.calls())
	}
}
