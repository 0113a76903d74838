package notify

import (
	"fmt"

	"car_rental/internal/domain/events"

	"github.com/sirupsen/logrus"
)

// AdminNotifier surfaces lifecycle events to the back-office operators
// through the structured log stream. It stands in for the SMS/email
// channel the operations team reads in production.
type AdminNotifier struct {
	log logrus.FieldLogger
}

var _ events.Observer = (*AdminNotifier)(nil)

func NewAdminNotifier(log logrus.FieldLogger) *AdminNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AdminNotifier{log: log}
}

func (n *AdminNotifier) Notify(ev events.Event) error {
	entry := n.log.WithField("event", ev.Kind)
	for k, v := range ev.Payload {
		entry = entry.WithField(k, v)
	}

	switch ev.Kind {
	case events.KindCarOutOfRange:
		entry.Warn(describe(ev))
	case events.KindDamageClaimFiled:
		entry.Warn(describe(ev))
	default:
		entry.Info(describe(ev))
	}
	return nil
}

// describe renders the one-line operator message for an event.
func describe(ev events.Event) string {
	plate := stringField(ev.Payload, "license_plate")
	switch ev.Kind {
	case events.KindCarBooked:
		return fmt.Sprintf("vehicle %s booked", plate)
	case events.KindBookingCompleted:
		return fmt.Sprintf("booking for vehicle %s completed", plate)
	case events.KindBookingCancelled:
		return fmt.Sprintf("booking for vehicle %s cancelled", plate)
	case events.KindCarStatusChanged:
		return fmt.Sprintf("vehicle %s changed status to %s", plate, stringField(ev.Payload, "new_status"))
	case events.KindCarOutOfRange:
		return fmt.Sprintf("vehicle %s left the allowed zone (%.1f km from anchor)", plate, floatField(ev.Payload, "distance_km"))
	case events.KindCarReturnedToRange:
		return fmt.Sprintf("vehicle %s returned to the allowed zone", plate)
	case events.KindDamageClaimFiled:
		return fmt.Sprintf("damage claim filed for vehicle %s (%s)", plate, stringField(ev.Payload, "status"))
	default:
		return "fleet event"
	}
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return "?"
}

func floatField(payload map[string]any, key string) float64 {
	if v, ok := payload[key].(float64); ok {
		return v
	}
	return 0
}
