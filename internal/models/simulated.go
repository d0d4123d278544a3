package models

import (
	"context"
	"time"
)

// Simulated-latency facade. Wraps the real repositories with fixed
// artificial delays so UI loading states are observable in development.
// Reads wait the base latency; writes a little longer, booking creation
// longest. Disabled in production, where real network latency stands in.
const (
	baseLatency         = 800 * time.Millisecond
	writeExtraLatency   = 200 * time.Millisecond
	bookingExtraLatency = 500 * time.Millisecond
	cancelExtraLatency  = 300 * time.Millisecond
)

// sleep waits the given duration but gives up early when the request
// context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type SimulatedVehicleRepo struct {
	inner VehicleRepo
}

func NewSimulatedVehicleRepo(inner VehicleRepo) *SimulatedVehicleRepo {
	return &SimulatedVehicleRepo{inner: inner}
}

func (s *SimulatedVehicleRepo) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.ListVehicles(ctx)
}

func (s *SimulatedVehicleRepo) GetVehicleByID(ctx context.Context, id string) (*Vehicle, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.GetVehicleByID(ctx, id)
}

func (s *SimulatedVehicleRepo) CreateVehicle(ctx context.Context, input VehicleInput) (*Vehicle, error) {
	if err := sleep(ctx, baseLatency+writeExtraLatency); err != nil {
		return nil, err
	}
	return s.inner.CreateVehicle(ctx, input)
}

func (s *SimulatedVehicleRepo) UpdateVehicle(ctx context.Context, id string, input VehicleInput) (*Vehicle, error) {
	if err := sleep(ctx, baseLatency+writeExtraLatency); err != nil {
		return nil, err
	}
	return s.inner.UpdateVehicle(ctx, id, input)
}

func (s *SimulatedVehicleRepo) DeleteVehicle(ctx context.Context, id string) error {
	if err := sleep(ctx, baseLatency+writeExtraLatency); err != nil {
		return err
	}
	return s.inner.DeleteVehicle(ctx, id)
}

type SimulatedBookingRepo struct {
	inner BookingRepo
}

func NewSimulatedBookingRepo(inner BookingRepo) *SimulatedBookingRepo {
	return &SimulatedBookingRepo{inner: inner}
}

func (s *SimulatedBookingRepo) ListBookings(ctx context.Context) ([]Booking, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.ListBookings(ctx)
}

func (s *SimulatedBookingRepo) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.GetBookingByID(ctx, id)
}

func (s *SimulatedBookingRepo) CreateBooking(ctx context.Context, req BookingRequest, totalPrice float64) (*Booking, error) {
	if err := sleep(ctx, baseLatency+bookingExtraLatency); err != nil {
		return nil, err
	}
	return s.inner.CreateBooking(ctx, req, totalPrice)
}

func (s *SimulatedBookingRepo) UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error) {
	if err := sleep(ctx, baseLatency+cancelExtraLatency); err != nil {
		return nil, err
	}
	return s.inner.UpdateBookingStatus(ctx, id, status)
}

func (s *SimulatedBookingRepo) UpdateBooking(ctx context.Context, id string, updates BookingUpdate) (*Booking, error) {
	if err := sleep(ctx, baseLatency+bookingExtraLatency); err != nil {
		return nil, err
	}
	return s.inner.UpdateBooking(ctx, id, updates)
}

type SimulatedMessageRepo struct {
	inner MessageRepo
}

func NewSimulatedMessageRepo(inner MessageRepo) *SimulatedMessageRepo {
	return &SimulatedMessageRepo{inner: inner}
}

func (s *SimulatedMessageRepo) ListMessages(ctx context.Context) ([]Message, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.ListMessages(ctx)
}

func (s *SimulatedMessageRepo) CreateMessage(ctx context.Context, msg NewMessage) (*Message, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.CreateMessage(ctx, msg)
}

func (s *SimulatedMessageRepo) ReplyToMessage(ctx context.Context, id string, reply string) (*Message, error) {
	if err := sleep(ctx, baseLatency); err != nil {
		return nil, err
	}
	return s.inner.ReplyToMessage(ctx, id, reply)
}
