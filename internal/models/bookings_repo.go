package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListBookings(ctx context.Context) ([]Booking, error) {
	data, _, err := su.client.
		From(BookingsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %v", err)
	}

	rows, err := decodeRows[bookingRow](data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %v", err)
	}

	bookings := make([]Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.toBooking())
	}
	return bookings, nil
}

func (su *SupabaseRepo) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	data, _, err := su.client.
		From(BookingsTable).
		Select("*", "", false).
		Eq("id", id).
		Single().
		Execute()
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %v", id, err)
	}

	var row bookingRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking %s: %v", id, err)
	}
	booking := row.toBooking()
	return &booking, nil
}

func (su *SupabaseRepo) CreateBooking(ctx context.Context, req BookingRequest, totalPrice float64) (*Booking, error) {
	data, _, err := su.client.
		From(BookingsTable).
		Insert(bookingRequestRow(req, totalPrice), false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create booking for %s: %v", req.Email, err)
	}

	rows, err := decodeRows[bookingRow](data)
	if err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("no booking returned after create for %s: %v", req.Email, err)
	}
	booking := rows[0].toBooking()
	return &booking, nil
}

func (su *SupabaseRepo) UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error) {
	data, _, err := su.client.
		From(BookingsTable).
		Update(map[string]interface{}{"status": status}, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status %s: %v", id, err)
	}

	rows, err := decodeRows[bookingRow](data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated booking %s: %v", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no booking found to update: %s", id)
	}
	booking := rows[0].toBooking()
	return &booking, nil
}

func (su *SupabaseRepo) UpdateBooking(ctx context.Context, id string, updates BookingUpdate) (*Booking, error) {
	cols := bookingUpdateColumns(updates)
	if len(cols) == 0 {
		return nil, fmt.Errorf("no fields to update for booking %s", id)
	}

	data, _, err := su.client.
		From(BookingsTable).
		Update(cols, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %v", id, err)
	}

	rows, err := decodeRows[bookingRow](data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated booking %s: %v", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no booking found to update: %s", id)
	}
	booking := rows[0].toBooking()
	return &booking, nil
}
