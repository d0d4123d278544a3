package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Azhar512/tassiecar/internal/models"
)

// VehicleChange is a push-style change notification. Subscribers are
// expected to refetch the whole list on any event; the dataset is small
// enough that an unscoped refetch beats incremental merging.
type VehicleChange struct {
	Action    string `json:"action"` // INSERT | UPDATE | DELETE
	VehicleID string `json:"vehicleId"`
}

type VehicleService struct {
	repo models.VehicleRepo

	mu   sync.Mutex
	subs map[chan VehicleChange]struct{}
}

func NewVehicleService(repo models.VehicleRepo) *VehicleService {
	return &VehicleService{
		repo: repo,
		subs: make(map[chan VehicleChange]struct{}),
	}
}

func (vs *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return vs.repo.ListVehicles(ctx)
}

func (vs *VehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	if id == "" {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	return vs.repo.GetVehicleByID(ctx, id)
}

func (vs *VehicleService) Create(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid vehicle data: %v", err)
	}
	vehicle, err := vs.repo.CreateVehicle(ctx, input)
	if err != nil {
		return nil, err
	}
	vs.notify("INSERT", vehicle.ID)
	return vehicle, nil
}

func (vs *VehicleService) Update(ctx context.Context, id string, input models.VehicleInput) (*models.Vehicle, error) {
	if id == "" {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid vehicle data: %v", err)
	}
	vehicle, err := vs.repo.UpdateVehicle(ctx, id, input)
	if err != nil {
		return nil, err
	}
	vs.notify("UPDATE", vehicle.ID)
	return vehicle, nil
}

// Delete is immediate and unconditional; bookings referencing the vehicle
// are left untouched.
func (vs *VehicleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("vehicle ID is required")
	}
	if err := vs.repo.DeleteVehicle(ctx, id); err != nil {
		return err
	}
	vs.notify("DELETE", id)
	return nil
}

// Subscribe registers a change listener. The returned cancel func must be
// called when the listener goes away.
func (vs *VehicleService) Subscribe() (<-chan VehicleChange, func()) {
	ch := make(chan VehicleChange, 8)
	vs.mu.Lock()
	vs.subs[ch] = struct{}{}
	vs.mu.Unlock()

	cancel := func() {
		vs.mu.Lock()
		delete(vs.subs, ch)
		vs.mu.Unlock()
	}
	return ch, cancel
}

// notify broadcasts without blocking: a slow or gone subscriber drops
// events rather than stalling a mutation.
func (vs *VehicleService) notify(action, id string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	for ch := range vs.subs {
		select {
		case ch <- VehicleChange{Action: action, VehicleID: id}:
		default:
		}
	}
}
