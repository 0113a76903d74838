package events

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Event kinds published by the fleet lifecycle. Observers key their
// formatting and filtering off these tags.
const (
	KindCarBooked          = "car_booked"
	KindBookingCompleted   = "booking_completed"
	KindBookingCancelled   = "booking_cancelled"
	KindCarStatusChanged   = "car_status_changed"
	KindCarOutOfRange      = "car_out_of_range"
	KindCarReturnedToRange = "car_returned_to_range"
	KindDamageClaimFiled   = "damage_claim_filed"
)

// Event is an ephemeral lifecycle notification. It only exists for the
// duration of a Publish call, is never persisted by the bus, and is
// delivered at most once per observer.
type Event struct {
	Kind    string
	Payload map[string]any
}

// Observer receives fan-out notifications of lifecycle and geofence
// events. Implementations are expected to be idempotent consumers:
// there is no retry or redelivery when one fails.
type Observer interface {
	Notify(event Event) error
}

// Bus fans events out to a fixed, ordered set of observers. Delivery is
// synchronous and blocking with respect to the Publish call; there is
// no queue, acknowledgment, or at-least-once guarantee.
//
// The observer list is injected at construction and never mutated,
// so a Bus is safe to share across request handlers.
type Bus struct {
	observers []Observer
	log       logrus.FieldLogger
}

func NewBus(log logrus.FieldLogger, observers ...Observer) *Bus {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bus{observers: observers, log: log}
}

// Publish delivers the event to every observer in registration order.
// A failing or panicking observer is logged and skipped; it never
// prevents delivery to the remaining observers and never propagates to
// the caller.
func (b *Bus) Publish(kind string, payload map[string]any) {
	if b == nil {
		return
	}
	ev := Event{Kind: kind, Payload: payload}
	for i, obs := range b.observers {
		if err := b.deliver(obs, ev); err != nil {
			b.log.WithFields(logrus.Fields{
				"event":    kind,
				"observer": i,
			}).Warnf("observer failed: %v", err)
		}
	}
}

func (b *Bus) deliver(obs Observer, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	return obs.Notify(ev)
}
