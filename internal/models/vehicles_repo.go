package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	data, _, err := su.client.
		From(VehiclesTable).
		Select("*", "", false).
		Order("type", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %v", err)
	}

	var rows []vehicleRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicles: %v", err)
	}

	vehicles := make([]Vehicle, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, row.toVehicle())
	}
	return vehicles, nil
}

func (su *SupabaseRepo) GetVehicleByID(ctx context.Context, id string) (*Vehicle, error) {
	data, _, err := su.client.
		From(VehiclesTable).
		Select("*", "", false).
		Eq("id", id).
		Single().
		Execute()
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle %s: %v", id, err)
	}

	var row vehicleRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle %s: %v", id, err)
	}
	vehicle := row.toVehicle()
	return &vehicle, nil
}

func (su *SupabaseRepo) CreateVehicle(ctx context.Context, input VehicleInput) (*Vehicle, error) {
	data, _, err := su.client.
		From(VehiclesTable).
		Insert(vehicleInputRow(input), false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle %q: %v", input.Name, err)
	}

	rows, err := decodeRows[vehicleRow](data)
	if err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("no vehicle returned after create %q: %v", input.Name, err)
	}
	vehicle := rows[0].toVehicle()
	return &vehicle, nil
}

func (su *SupabaseRepo) UpdateVehicle(ctx context.Context, id string, input VehicleInput) (*Vehicle, error) {
	data, _, err := su.client.
		From(VehiclesTable).
		Update(vehicleInputRow(input), "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle %s: %v", id, err)
	}

	rows, err := decodeRows[vehicleRow](data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated vehicle %s: %v", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no vehicle found to update: %s", id)
	}
	vehicle := rows[0].toVehicle()
	return &vehicle, nil
}

// DeleteVehicle removes the vehicle unconditionally. There is no check for
// in-flight bookings referencing it; historical bookings keep their
// vehicle_id and render without vehicle details.
func (su *SupabaseRepo) DeleteVehicle(ctx context.Context, id string) error {
	_, _, err := su.client.
		From(VehiclesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %v", id, err)
	}
	return nil
}

// decodeRows unmarshals a PostgREST row-array response.
func decodeRows[T any](data []byte) ([]T, error) {
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
