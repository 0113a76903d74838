package config

import (
	"os"
	"strconv"

	"car_rental/internal/domain/entities"
)

// Settings carries the deployment configuration consumed by the core.
// Values come from environment variables with local-friendly defaults;
// .env files are loaded through godotenv in main.
type Settings struct {
	// MaxAllowedDistanceKm is the geofence radius around a vehicle's
	// rental anchor.
	MaxAllowedDistanceKm float64

	// DailyRates overrides the per-category catalog rates.
	DailyRates map[entities.VehicleCategory]float64

	// AlertLogPath is where the append-only alert sink writes.
	AlertLogPath string

	// KafkaBrokers / KafkaAuditTopic enable the Kafka audit observer
	// when both are set.
	KafkaBrokers    string
	KafkaAuditTopic string
}

// Load reads settings from the environment.
//
// Supported env vars:
//   - MAX_ALLOWED_DISTANCE_KM (default: 50)
//   - DAILY_RATE_ECONOMY / DAILY_RATE_LUXURY / DAILY_RATE_SUV (optional)
//   - ALERT_LOG_PATH (default: logs/alerts.log)
//   - KAFKA_BROKERS, KAFKA_AUDIT_TOPIC (optional)
func Load() Settings {
	s := Settings{
		MaxAllowedDistanceKm: getenvFloat("MAX_ALLOWED_DISTANCE_KM", 50),
		DailyRates:           map[entities.VehicleCategory]float64{},
		AlertLogPath:         getenvDefault("ALERT_LOG_PATH", "logs/alerts.log"),
		KafkaBrokers:         os.Getenv("KAFKA_BROKERS"),
		KafkaAuditTopic:      os.Getenv("KAFKA_AUDIT_TOPIC"),
	}

	for category, key := range map[entities.VehicleCategory]string{
		entities.CategoryEconomy: "DAILY_RATE_ECONOMY",
		entities.CategoryLuxury:  "DAILY_RATE_LUXURY",
		entities.CategorySUV:     "DAILY_RATE_SUV",
	} {
		if rate := getenvFloat(key, 0); rate > 0 {
			s.DailyRates[category] = rate
		}
	}

	return s
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
