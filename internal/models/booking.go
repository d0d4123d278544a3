package models

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	// StatusCompleted exists in the vocabulary and is accepted on read, but
	// no write path produces it.
	StatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID              string        `json:"id"`
	VehicleID       string        `json:"vehicleId"`
	PickupLocation  string        `json:"pickupLocation"`
	DropoffLocation string        `json:"dropoffLocation"`
	PickupDate      string        `json:"pickupDate"` // YYYY-MM-DD
	PickupTime      string        `json:"pickupTime"` // HH:MM, 24h
	ReturnDate      string        `json:"returnDate"`
	ReturnTime      string        `json:"returnTime"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	TotalPrice      float64       `json:"totalPrice"`
	Extras          []string      `json:"extras"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// ConfirmationCode is what customers quote to retrieve a booking: the
// leading segment of the opaque id, upper-cased. Lookup matches any
// case-insensitive prefix of the id, so older confirmation emails stay
// valid. A dedicated generated code could replace this behind this one
// accessor.
func (b *Booking) ConfirmationCode() string {
	segment, _, _ := strings.Cut(b.ID, "-")
	return strings.ToUpper(segment)
}

// PickupAt combines the pickup date and time fields. The zero time is
// returned when either field is unset or malformed.
func (b *Booking) PickupAt() time.Time {
	return combineDateTime(b.PickupDate, b.PickupTime)
}

func (b *Booking) ReturnAt() time.Time {
	return combineDateTime(b.ReturnDate, b.ReturnTime)
}

func combineDateTime(date, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BookingRequest is the submission payload. The server recomputes the
// total from the vehicle, the date range and the extras; a client-sent
// total is never trusted.
type BookingRequest struct {
	VehicleID       string   `json:"vehicleId" validate:"required"`
	PickupLocation  string   `json:"pickupLocation" validate:"required"`
	DropoffLocation string   `json:"dropoffLocation" validate:"required"`
	PickupDate      string   `json:"pickupDate" validate:"required,datetime=2006-01-02"`
	PickupTime      string   `json:"pickupTime" validate:"required,datetime=15:04"`
	ReturnDate      string   `json:"returnDate" validate:"required,datetime=2006-01-02"`
	ReturnTime      string   `json:"returnTime" validate:"required,datetime=15:04"`
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	Extras          []string `json:"extras"`
}

func (r *BookingRequest) PickupAt() time.Time {
	return combineDateTime(r.PickupDate, r.PickupTime)
}

func (r *BookingRequest) ReturnAt() time.Time {
	return combineDateTime(r.ReturnDate, r.ReturnTime)
}

// BookingUpdate carries optional field updates. The modify surface is not
// exposed in any UI; the data layer still supports it (admin tooling,
// support scripts).
type BookingUpdate struct {
	VehicleID       *string        `json:"vehicleId,omitempty"`
	PickupLocation  *string        `json:"pickupLocation,omitempty"`
	DropoffLocation *string        `json:"dropoffLocation,omitempty"`
	PickupDate      *string        `json:"pickupDate,omitempty"`
	PickupTime      *string        `json:"pickupTime,omitempty"`
	ReturnDate      *string        `json:"returnDate,omitempty"`
	ReturnTime      *string        `json:"returnTime,omitempty"`
	FirstName       *string        `json:"firstName,omitempty"`
	LastName        *string        `json:"lastName,omitempty"`
	Email           *string        `json:"email,omitempty"`
	Phone           *string        `json:"phone,omitempty"`
	TotalPrice      *float64       `json:"totalPrice,omitempty"`
	Extras          *[]string      `json:"extras,omitempty"`
	Status          *BookingStatus `json:"status,omitempty"`
}
