package fleet

import (
	"errors"
	"testing"

	"car_rental/internal/domain/entities"
)

func TestApply_TransitionTable(t *testing.T) {
	cases := []struct {
		name    string
		from    entities.VehicleStatus
		action  Action
		want    entities.VehicleStatus
		wantErr bool
	}{
		{"available book", entities.VehicleStatusAvailable, ActionBook, entities.VehicleStatusBooked, false},
		{"available maintenance", entities.VehicleStatusAvailable, ActionStartMaintenance, entities.VehicleStatusMaintenance, false},
		{"available complete service", entities.VehicleStatusAvailable, ActionCompleteService, entities.VehicleStatusAvailable, true},
		{"booked book again", entities.VehicleStatusBooked, ActionBook, entities.VehicleStatusBooked, true},
		{"booked complete", entities.VehicleStatusBooked, ActionCompleteService, entities.VehicleStatusAvailable, false},
		{"booked maintenance", entities.VehicleStatusBooked, ActionStartMaintenance, entities.VehicleStatusBooked, true},
		{"in_service complete", entities.VehicleStatusInService, ActionCompleteService, entities.VehicleStatusAvailable, false},
		{"in_service maintenance", entities.VehicleStatusInService, ActionStartMaintenance, entities.VehicleStatusMaintenance, false},
		{"in_service book", entities.VehicleStatusInService, ActionBook, entities.VehicleStatusInService, true},
		{"maintenance complete", entities.VehicleStatusMaintenance, ActionCompleteService, entities.VehicleStatusAvailable, false},
		{"maintenance again", entities.VehicleStatusMaintenance, ActionStartMaintenance, entities.VehicleStatusMaintenance, true},
		{"maintenance book", entities.VehicleStatusMaintenance, ActionBook, entities.VehicleStatusMaintenance, true},
		{"out_of_range book", entities.VehicleStatusOutOfRange, ActionBook, entities.VehicleStatusOutOfRange, true},
		{"out_of_range complete", entities.VehicleStatusOutOfRange, ActionCompleteService, entities.VehicleStatusAvailable, false},
		{"out_of_range maintenance", entities.VehicleStatusOutOfRange, ActionStartMaintenance, entities.VehicleStatusOutOfRange, true},
		{"out_of_range return", entities.VehicleStatusOutOfRange, ActionReturnToRange, entities.VehicleStatusAvailable, false},
		{"available return", entities.VehicleStatusAvailable, ActionReturnToRange, entities.VehicleStatusAvailable, true},
		{"unknown state", entities.VehicleStatus("scrapped"), ActionBook, entities.VehicleStatus("scrapped"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.from, tc.action)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				if got != tc.from {
					t.Fatalf("rejected action must not change state: got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestApply_GeofenceEntersOutOfRangeFromAnyOperationalState(t *testing.T) {
	for _, from := range []entities.VehicleStatus{
		entities.VehicleStatusAvailable,
		entities.VehicleStatusBooked,
		entities.VehicleStatusInService,
		entities.VehicleStatusMaintenance,
	} {
		got, err := Apply(from, ActionWentOutOfRange)
		if err != nil {
			t.Fatalf("from %s: unexpected error: %v", from, err)
		}
		if got != entities.VehicleStatusOutOfRange {
			t.Fatalf("from %s: expected out_of_range, got %s", from, got)
		}
	}

	// Already out of range; the detector must not fire twice.
	if _, err := Apply(entities.VehicleStatusOutOfRange, ActionWentOutOfRange); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCanBook(t *testing.T) {
	if !CanBook(entities.VehicleStatusAvailable) {
		t.Fatal("available vehicle must be bookable")
	}
	for _, s := range []entities.VehicleStatus{
		entities.VehicleStatusBooked,
		entities.VehicleStatusInService,
		entities.VehicleStatusMaintenance,
		entities.VehicleStatusOutOfRange,
	} {
		if CanBook(s) {
			t.Fatalf("%s vehicle must not be bookable", s)
		}
	}
}

func TestReturnTarget(t *testing.T) {
	if got := ReturnTarget(entities.VehicleStatusBooked); got != entities.VehicleStatusBooked {
		t.Fatalf("expected booked, got %s", got)
	}
	if got := ReturnTarget(entities.VehicleStatusInService); got != entities.VehicleStatusInService {
		t.Fatalf("expected in_service, got %s", got)
	}
	if got := ReturnTarget(""); got != entities.VehicleStatusAvailable {
		t.Fatalf("expected available fallback, got %s", got)
	}
	if got := ReturnTarget(entities.VehicleStatusOutOfRange); got != entities.VehicleStatusAvailable {
		t.Fatalf("expected available fallback, got %s", got)
	}
}
