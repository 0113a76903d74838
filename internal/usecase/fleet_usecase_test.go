package usecase

import (
	"context"
	"errors"
	"testing"

	"car_rental/internal/domain/entities"
	"car_rental/internal/domain/events"
	"car_rental/internal/domain/fleet"
	"car_rental/internal/usecase/interfaces"
	mock_interfaces "car_rental/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFleetUseCase_AddVehicle(t *testing.T) {
	t.Run("missing license plate", func(t *testing.T) {
		uc := NewFleetUseCase(nil, testBus(&capturedEvents{}), nil, quietLogger())
		_, err := uc.AddVehicle(context.Background(), AddVehicleInput{Model: "Civic", Category: entities.CategoryEconomy})
		if !errors.Is(err, ErrInvalidLicensePlate) {
			t.Fatalf("expected ErrInvalidLicensePlate, got %v", err)
		}
	})

	t.Run("anchor requires both coordinates", func(t *testing.T) {
		uc := NewFleetUseCase(nil, testBus(&capturedEvents{}), nil, quietLogger())
		lat := 33.6844
		_, err := uc.AddVehicle(context.Background(), AddVehicleInput{
			LicensePlate: "ABC-123",
			Model:        "Civic",
			Category:     entities.CategoryEconomy,
			AnchorLat:    &lat,
		})
		if !errors.Is(err, ErrIncompleteAnchor) {
			t.Fatalf("expected ErrIncompleteAnchor, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewFleetUseCase(nil, testBus(&capturedEvents{}), nil, quietLogger())
		_, err := uc.AddVehicle(context.Background(), AddVehicleInput{
			LicensePlate: "ABC-123",
			Model:        "Civic",
			Category:     "convertible",
		})
		if !errors.Is(err, fleet.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("category profile fills rate and tracker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewFleetUseCase(vehicles, testBus(&capturedEvents{}), nil, quietLogger())

		vehicles.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ID == "" {
					t.Fatal("vehicle must be assigned an id before persisting")
				}
				if v.Status != entities.VehicleStatusAvailable {
					t.Fatalf("new vehicle must start available, got %s", v.Status)
				}
				if v.DailyRate != 100 || v.TrackerType != "PremiumGPS" || v.TrackerInterval != 60 {
					t.Fatalf("luxury profile not applied: %+v", v)
				}
				if v.AnchorLocation == nil || v.AnchorLocation.Latitude != 33.6844 {
					t.Fatalf("anchor not persisted: %+v", v.AnchorLocation)
				}
				return v, nil
			},
		)

		lat, lng := 33.6844, 73.0479
		v, err := uc.AddVehicle(context.Background(), AddVehicleInput{
			LicensePlate: "LUX-001",
			Model:        "S-Class",
			Category:     entities.CategoryLuxury,
			AnchorLat:    &lat,
			AnchorLng:    &lng,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Category != entities.CategoryLuxury {
			t.Fatalf("unexpected vehicle: %+v", v)
		}
	})

	t.Run("duplicate license plate is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewFleetUseCase(vehicles, testBus(&capturedEvents{}), nil, quietLogger())

		vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Vehicle{}, interfaces.ErrLicensePlateTaken)

		_, err := uc.AddVehicle(context.Background(), AddVehicleInput{
			LicensePlate: "ABC-123",
			Model:        "Civic",
			Category:     entities.CategoryEconomy,
		})
		if !errors.Is(err, ErrDuplicateLicensePlate) {
			t.Fatalf("expected ErrDuplicateLicensePlate, got %v", err)
		}
	})

	t.Run("rate override beats the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		overrides := map[entities.VehicleCategory]float64{entities.CategoryEconomy: 42}
		uc := NewFleetUseCase(vehicles, testBus(&capturedEvents{}), overrides, quietLogger())

		vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.DailyRate != 42 {
					t.Fatalf("expected overridden rate 42, got %v", v.DailyRate)
				}
				return v, nil
			},
		)

		if _, err := uc.AddVehicle(context.Background(), AddVehicleInput{
			LicensePlate: "ECO-001",
			Model:        "Corolla",
			Category:     entities.CategoryEconomy,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFleetUseCase_LifecycleActions(t *testing.T) {
	t.Run("complete service returns the vehicle to available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		sink := &capturedEvents{}
		uc := NewFleetUseCase(vehicles, testBus(sink), nil, quietLogger())

		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").
			Return(entities.Vehicle{ID: "v-1", LicensePlate: "ABC-123", Status: entities.VehicleStatusInService}, nil)
		vehicles.EXPECT().TransitionStatus(gomock.Any(), "v-1", entities.VehicleStatusInService, entities.VehicleStatusAvailable).
			Return(entities.Vehicle{ID: "v-1", LicensePlate: "ABC-123", Status: entities.VehicleStatusAvailable}, true, nil)

		v, err := uc.CompleteService(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != entities.VehicleStatusAvailable {
			t.Fatalf("expected available, got %s", v.Status)
		}
		if len(sink.events) != 1 || sink.events[0].Kind != events.KindCarStatusChanged {
			t.Fatalf("expected car_status_changed, got %+v", sink.events)
		}
		if sink.events[0].Payload["new_status"] != "available" {
			t.Fatalf("unexpected payload: %+v", sink.events[0].Payload)
		}
	})

	t.Run("maintenance is not allowed on a booked vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		sink := &capturedEvents{}
		uc := NewFleetUseCase(vehicles, testBus(sink), nil, quietLogger())

		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").
			Return(entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusBooked}, nil)

		_, err := uc.StartMaintenance(context.Background(), "v-1")
		if !errors.Is(err, fleet.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if len(sink.events) != 0 {
			t.Fatalf("no event expected on a refused action, got %+v", sink.events)
		}
	})

	t.Run("conditional update loser surfaces as invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewFleetUseCase(vehicles, testBus(&capturedEvents{}), nil, quietLogger())

		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").
			Return(entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusAvailable}, nil)
		vehicles.EXPECT().TransitionStatus(gomock.Any(), "v-1", entities.VehicleStatusAvailable, entities.VehicleStatusMaintenance).
			Return(entities.Vehicle{}, false, nil)

		_, err := uc.StartMaintenance(context.Background(), "v-1")
		if !errors.Is(err, fleet.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewFleetUseCase(vehicles, testBus(&capturedEvents{}), nil, quietLogger())

		vehicles.EXPECT().GetByID(gomock.Any(), "v-404").Return(entities.Vehicle{}, nil)

		_, err := uc.CompleteService(context.Background(), "v-404")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestFleetUseCase_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewFleetUseCase(vehicles, testBus(&capturedEvents{}), nil, quietLogger())

	vehicles.EXPECT().List(gomock.Any(), entities.VehicleStatus(""), entities.VehicleCategory("")).Return([]entities.Vehicle{
		{ID: "v-1", Status: entities.VehicleStatusAvailable},
		{ID: "v-2", Status: entities.VehicleStatusAvailable},
		{ID: "v-3", Status: entities.VehicleStatusBooked},
		{ID: "v-4", Status: entities.VehicleStatusInService},
		{ID: "v-5", Status: entities.VehicleStatusOutOfRange},
	}, nil)

	stats, err := uc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := FleetStatistics{Total: 5, Available: 2, Booked: 1, InService: 1, OutOfRange: 1}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}
