package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Azhar512/tassiecar/internal/models"
)

var (
	// ErrBookingNotFound is the single generic outcome for a failed lookup.
	// It deliberately does not distinguish a wrong email from a wrong code.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidLookup is returned before the data layer is even consulted,
	// when the supplied credentials are syntactically unusable.
	ErrInvalidLookup = errors.New("a valid email and a confirmation code of at least 6 characters are required")
	ErrVehicleGone   = errors.New("selected vehicle no longer exists")
)

const minConfirmationCodeLen = 6

type BookingService struct {
	bookings models.BookingRepo
	vehicles models.VehicleRepo
}

func NewBookingService(bookings models.BookingRepo, vehicles models.VehicleRepo) *BookingService {
	return &BookingService{
		bookings: bookings,
		vehicles: vehicles,
	}
}

// RentalDays is the billable day count for a date range: the ceiling of
// the elapsed time in days, never less than one.
func RentalDays(pickup, ret time.Time) int {
	if pickup.IsZero() || ret.IsZero() {
		return 1
	}
	diff := ret.Sub(pickup)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// QuoteTotal prices a rental: vehicle price times days, plus each selected
// extra's per-day price times days. Unknown extra ids contribute nothing.
func QuoteTotal(vehiclePrice float64, days int, extraIDs []string) float64 {
	extrasPerDay := 0.0
	for _, id := range extraIDs {
		if extra, ok := models.ExtraByID(id); ok {
			extrasPerDay += extra.Price
		}
	}
	return vehiclePrice*float64(days) + float64(days)*extrasPerDay
}

// Quote recomputes days and total for the current selection. Nothing is
// cached; every call reprices from the vehicle's current daily rate.
func (s *BookingService) Quote(ctx context.Context, vehicleID string, pickup, ret time.Time, extraIDs []string) (int, float64, error) {
	vehicle, err := s.vehicles.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return 0, 0, err
	}
	if vehicle == nil {
		return 0, 0, ErrVehicleGone
	}
	days := RentalDays(pickup, ret)
	return days, QuoteTotal(vehicle.Price, days, extraIDs), nil
}

// Create validates and submits a booking. The total is computed here from
// the vehicle's current price, the date range and the extras; status is
// forced to confirmed by the data layer.
func (s *BookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid booking data: %v", err)
	}

	pickup := req.PickupAt()
	ret := req.ReturnAt()
	if !ret.After(pickup) {
		return nil, fmt.Errorf("return date and time must be after the pickup date and time")
	}

	_, total, err := s.Quote(ctx, req.VehicleID, pickup, ret, req.Extras)
	if err != nil {
		return nil, err
	}

	return s.bookings.CreateBooking(ctx, req, total)
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.ListBookings(ctx)
}

func (s *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookings.GetBookingByID(ctx, id)
}

// Lookup retrieves a booking by customer credentials: the stored email
// must match case-insensitively and the upper-cased booking id must start
// with the upper-cased code. A linear scan is fine at this fleet's scale.
func (s *BookingService) Lookup(ctx context.Context, email, code string) (*models.Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.ToUpper(strings.TrimSpace(code))

	if models.Validate.Var(email, "required,email") != nil || len(code) < minConfirmationCodeLen {
		return nil, ErrInvalidLookup
	}

	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		b := &bookings[i]
		if strings.ToLower(b.Email) == email && strings.HasPrefix(strings.ToUpper(b.ID), code) {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// CanCancel reports whether the cancel action is offered to the customer:
// only confirmed bookings whose pickup is still in the future.
func CanCancel(b *models.Booking, now time.Time) bool {
	return b.Status == models.StatusConfirmed && b.PickupAt().After(now)
}

// Cancel flips a confirmed booking to cancelled via the shared
// status-update primitive. Both the customer flow and the admin surface
// go through here. The 24-hour non-refund policy is disclosed to the
// customer but not enforced; enforcement belongs on the backend.
func (s *BookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("booking %s is already %s", booking.ConfirmationCode(), booking.Status)
	}
	return s.bookings.UpdateBookingStatus(ctx, id, models.StatusCancelled)
}

// CancelAsCustomer additionally requires the pickup to be upcoming, the
// condition under which the customer-facing affordance is shown at all.
func (s *BookingService) CancelAsCustomer(ctx context.Context, id string, now time.Time) (*models.Booking, error) {
	booking, err := s.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !CanCancel(booking, now) {
		return nil, fmt.Errorf("this booking can no longer be cancelled")
	}
	return s.bookings.UpdateBookingStatus(ctx, id, models.StatusCancelled)
}

// Update applies a partial field update. No UI exposes this; it exists for
// support tooling and keeps parity with the data layer.
func (s *BookingService) Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.Booking, error) {
	return s.bookings.UpdateBooking(ctx, id, updates)
}
