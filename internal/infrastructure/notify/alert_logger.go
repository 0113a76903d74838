package notify

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"car_rental/internal/domain/events"

	"github.com/sirupsen/logrus"
)

// AlertLogger appends geofence alerts to a dedicated file so they
// survive restarts and log rotation of the main stream. Only range
// crossings are recorded; all other events pass through untouched.
type AlertLogger struct {
	mu  sync.Mutex
	log *logrus.Logger
}

var _ events.Observer = (*AlertLogger)(nil)

// NewAlertLogger opens (creating if needed) the append-only alert file.
func NewAlertLogger(path string) (*AlertLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	return &AlertLogger{log: log}, nil
}

func (a *AlertLogger) Notify(ev events.Event) error {
	switch ev.Kind {
	case events.KindCarOutOfRange, events.KindCarReturnedToRange:
	default:
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.log.WithField("event", ev.Kind)
	for k, v := range ev.Payload {
		entry = entry.WithField(k, v)
	}
	entry.Warn("geofence alert")
	return nil
}
