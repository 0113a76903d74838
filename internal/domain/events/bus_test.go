package events

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type recordingObserver struct {
	seen []Event
	err  error
}

func (o *recordingObserver) Notify(ev Event) error {
	o.seen = append(o.seen, ev)
	return o.err
}

type panickingObserver struct{}

func (panickingObserver) Notify(Event) error { panic("boom") }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestBus_PublishInRegistrationOrder(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	bus := NewBus(quietLogger(), first, second)

	bus.Publish(KindCarBooked, map[string]any{"vehicle_id": "v-1"})

	for _, o := range []*recordingObserver{first, second} {
		if len(o.seen) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(o.seen))
		}
		if o.seen[0].Kind != KindCarBooked {
			t.Fatalf("unexpected kind %q", o.seen[0].Kind)
		}
		if o.seen[0].Payload["vehicle_id"] != "v-1" {
			t.Fatalf("unexpected payload: %+v", o.seen[0].Payload)
		}
	}
}

func TestBus_FailingObserverDoesNotStarveTheRest(t *testing.T) {
	failing := &recordingObserver{err: errors.New("sink down")}
	healthy := &recordingObserver{}
	bus := NewBus(quietLogger(), failing, healthy)

	bus.Publish(KindCarOutOfRange, map[string]any{"vehicle_id": "v-2"})

	if len(failing.seen) != 1 {
		t.Fatalf("failing observer should still be called once, got %d", len(failing.seen))
	}
	if len(healthy.seen) != 1 {
		t.Fatalf("healthy observer must receive the event, got %d", len(healthy.seen))
	}
}

func TestBus_PanickingObserverIsIsolated(t *testing.T) {
	healthy := &recordingObserver{}
	bus := NewBus(quietLogger(), panickingObserver{}, healthy)

	// Must not propagate the panic to the publishing caller.
	bus.Publish(KindDamageClaimFiled, nil)

	if len(healthy.seen) != 1 {
		t.Fatalf("healthy observer must receive the event, got %d", len(healthy.seen))
	}
}

func TestBus_NoObservers(t *testing.T) {
	bus := NewBus(quietLogger())
	bus.Publish(KindCarStatusChanged, nil)

	var nilBus *Bus
	nilBus.Publish(KindCarStatusChanged, nil)
}
