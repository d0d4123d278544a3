package models

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
)

var Validate = validator.New()

const (
	VehiclesTable = "vehicles"
	BookingsTable = "bookings"
	MessagesTable = "messages"
)

// PostgREST reports "no rows" for a .single() request with this code.
// Repositories translate it into an explicit absent result so callers can
// branch without string matching.
const pgrstNoRows = "PGRST116"

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), pgrstNoRows)
}

type VehicleRepo interface {
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	// GetVehicleByID returns (nil, nil) when no such vehicle exists.
	GetVehicleByID(ctx context.Context, id string) (*Vehicle, error)
	CreateVehicle(ctx context.Context, input VehicleInput) (*Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, input VehicleInput) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type BookingRepo interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	// GetBookingByID returns (nil, nil) when no such booking exists.
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	CreateBooking(ctx context.Context, req BookingRequest, totalPrice float64) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error)
	UpdateBooking(ctx context.Context, id string, updates BookingUpdate) (*Booking, error)
}

type MessageRepo interface {
	ListMessages(ctx context.Context) ([]Message, error)
	CreateMessage(ctx context.Context, msg NewMessage) (*Message, error)
	ReplyToMessage(ctx context.Context, id string, reply string) (*Message, error)
}

// SupabaseRepo implements every entity repository against the shared
// Supabase client. One configured connection, reused everywhere.
type SupabaseRepo struct {
	client *supabase.Client
}

func SupabaseNewRepo(client *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{client: client}
}
