package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/validation"
)

// WizardStep enumerates the booking flow. Transitions are strictly linear;
// Continue and Back move one step at a time and nothing skips ahead.
type WizardStep int

const (
	StepDetails WizardStep = iota + 1
	StepExtras
	StepContact
	StepConfirm
	StepSubmitted
)

func (s WizardStep) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepExtras:
		return "extras"
	case StepContact:
		return "contact"
	case StepConfirm:
		return "confirm"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrMissingDetails   = errors.New("please fill in all rental details before continuing")
	ErrMissingDropoff   = errors.New("please select a drop-off location for one-way rental")
	ErrPickupInPast     = errors.New("pickup date and time cannot be in the past")
	ErrReturnNotAfter   = errors.New("return date and time must be after the pickup date and time")
	ErrMissingContact   = errors.New("please fill in all contact details")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrNotReadyToSubmit = errors.New("booking is not ready to submit")
	ErrSubmitRequired   = errors.New("use submit to complete the booking from the confirm step")
	ErrAlreadySubmitted = errors.New("booking has already been submitted")
)

// RentalDetails is the first step's state. Dates and times are kept as the
// customer entered them (YYYY-MM-DD, HH:MM) and combined only for guards
// and pricing.
type RentalDetails struct {
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	SameDropoff     bool   `json:"sameDropoff"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	ReturnDate      string `json:"returnDate"`
	ReturnTime      string `json:"returnTime"`
	VehicleID       string `json:"vehicleId"`
}

// WizardPrefill carries the booking entry point's query parameters. They
// seed form state only; nothing is validated against availability here.
type WizardPrefill struct {
	PickupLocation  string
	DropoffLocation string
	PickupDate      string
	ReturnDate      string
	VehicleType     string
	VehicleID       string
}

// BookingWizard is one customer's in-progress booking session. mu
// serializes access to this session only; the store's lock guards just
// the session map.
type BookingWizard struct {
	mu sync.Mutex

	ID   string
	Step WizardStep
	// VehicleType preselects the category filter on the vehicle picker.
	// It never constrains which vehicle may actually be chosen.
	VehicleType string
	Details     RentalDetails
	Extras      []string
	contact     *validation.Form
	CreatedAt   time.Time
}

func contactForm() *validation.Form {
	initial := map[string]any{
		"firstName": "",
		"lastName":  "",
		"email":     "",
		"phone":     "",
	}
	rules := map[string]validation.Rules{
		"firstName": validation.Required(),
		"lastName":  validation.Required(),
		"email":     validation.Email(),
		"phone":     validation.Phone(),
	}
	return validation.NewForm(initial, rules)
}

func NewBookingWizard(id string, prefill WizardPrefill, now time.Time) *BookingWizard {
	return &BookingWizard{
		ID:          id,
		Step:        StepDetails,
		VehicleType: prefill.VehicleType,
		Details: RentalDetails{
			PickupLocation:  prefill.PickupLocation,
			DropoffLocation: prefill.DropoffLocation,
			SameDropoff:     prefill.DropoffLocation == "",
			PickupDate:      prefill.PickupDate,
			ReturnDate:      prefill.ReturnDate,
			VehicleID:       prefill.VehicleID,
		},
		Extras:    []string{},
		contact:   contactForm(),
		CreatedAt: now,
	}
}

func (w *BookingWizard) SetDetails(details RentalDetails) {
	w.Details = details
}

// ToggleExtra adds or removes an add-on. Any subset of extras, including
// none, is acceptable; there is no guard on this step.
func (w *BookingWizard) ToggleExtra(extraID string) {
	for i, id := range w.Extras {
		if id == extraID {
			w.Extras = append(w.Extras[:i], w.Extras[i+1:]...)
			return
		}
	}
	w.Extras = append(w.Extras, extraID)
}

func (w *BookingWizard) SetContactField(name string, value string) {
	w.contact.UpdateField(name, value)
}

func (w *BookingWizard) ContactField(name string) (validation.Field, bool) {
	return w.contact.Field(name)
}

func (w *BookingWizard) contactValue(name string) string {
	field, _ := w.contact.Field(name)
	s, _ := field.Value.(string)
	return s
}

func (w *BookingWizard) pickupAt() time.Time {
	return combineWizardDateTime(w.Details.PickupDate, w.Details.PickupTime)
}

func (w *BookingWizard) returnAt() time.Time {
	return combineWizardDateTime(w.Details.ReturnDate, w.Details.ReturnTime)
}

func combineWizardDateTime(date, clock string) time.Time {
	if date == "" || clock == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Next advances one step after this step's guard passes.
func (w *BookingWizard) Next(now time.Time) error {
	switch w.Step {
	case StepDetails:
		if err := w.checkDetails(now); err != nil {
			return err
		}
	case StepExtras:
		// no guard
	case StepContact:
		if err := w.checkContact(); err != nil {
			return err
		}
	case StepConfirm:
		// Confirm is the final interactive step; the only way forward
		// is Submit.
		return ErrSubmitRequired
	case StepSubmitted:
		return ErrAlreadySubmitted
	}
	w.Step++
	return nil
}

// Back returns to the previous step. Moving backwards never loses state.
func (w *BookingWizard) Back() {
	if w.Step > StepDetails && w.Step < StepSubmitted {
		w.Step--
	}
}

func (w *BookingWizard) checkDetails(now time.Time) error {
	d := w.Details
	if d.PickupLocation == "" || d.PickupDate == "" || d.PickupTime == "" ||
		d.ReturnDate == "" || d.ReturnTime == "" || d.VehicleID == "" {
		return ErrMissingDetails
	}
	if !d.SameDropoff && d.DropoffLocation == "" {
		return ErrMissingDropoff
	}

	pickup := w.pickupAt()
	ret := w.returnAt()
	if pickup.IsZero() || ret.IsZero() {
		return ErrMissingDetails
	}
	if pickup.Before(now) {
		return ErrPickupInPast
	}
	if !ret.After(pickup) {
		return ErrReturnNotAfter
	}
	return nil
}

func (w *BookingWizard) checkContact() error {
	if w.contactValue("firstName") == "" || w.contactValue("lastName") == "" ||
		w.contactValue("email") == "" || w.contactValue("phone") == "" {
		return ErrMissingContact
	}
	if !validation.EmailPattern.MatchString(w.contactValue("email")) {
		return ErrInvalidEmail
	}
	return nil
}

// Request assembles the submission payload from the wizard's current
// state. When pickup and drop-off are the same, the pickup location is
// used for both.
func (w *BookingWizard) Request() models.BookingRequest {
	dropoff := w.Details.DropoffLocation
	if w.Details.SameDropoff {
		dropoff = w.Details.PickupLocation
	}
	return models.BookingRequest{
		VehicleID:       w.Details.VehicleID,
		PickupLocation:  w.Details.PickupLocation,
		DropoffLocation: dropoff,
		PickupDate:      w.Details.PickupDate,
		PickupTime:      w.Details.PickupTime,
		ReturnDate:      w.Details.ReturnDate,
		ReturnTime:      w.Details.ReturnTime,
		FirstName:       w.contactValue("firstName"),
		LastName:        w.contactValue("lastName"),
		Email:           w.contactValue("email"),
		Phone:           w.contactValue("phone"),
		Extras:          w.Extras,
	}
}

// Quote reprices the current selection. Called on demand; the figure is
// never stored ahead of submission.
func (w *BookingWizard) Quote(ctx context.Context, bookings *BookingService) (int, float64, error) {
	if w.Details.VehicleID == "" {
		return RentalDays(w.pickupAt(), w.returnAt()), 0, nil
	}
	return bookings.Quote(ctx, w.Details.VehicleID, w.pickupAt(), w.returnAt(), w.Extras)
}

// Submit creates the booking. On failure the wizard stays on Confirm so
// the customer can retry; submission failure is never fatal to the
// session.
func (w *BookingWizard) Submit(ctx context.Context, bookings *BookingService) (*models.Booking, error) {
	if w.Step == StepSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if w.Step != StepConfirm {
		return nil, ErrNotReadyToSubmit
	}

	booking, err := bookings.Create(ctx, w.Request())
	if err != nil {
		return nil, err
	}
	w.Step = StepSubmitted
	return booking, nil
}
