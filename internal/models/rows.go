package models

import "time"

// Row types mirror the external storage convention (snake_case column
// names, string timestamps as PostgREST serializes them). Everything that
// crosses the wire to Supabase goes through these; the rest of the
// application only ever sees the internal-convention structs.

type vehicleRow struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Category     VehicleCategory `json:"type"`
	Image        string          `json:"image"`
	Price        float64         `json:"price"`
	Passengers   int             `json:"passengers"`
	Luggage      int             `json:"luggage"`
	Fuel         string          `json:"fuel"`
	Transmission Transmission    `json:"transmission"`
	Description  string          `json:"description"`
	CreatedAt    string          `json:"created_at,omitempty"`
}

type bookingRow struct {
	ID              string        `json:"id,omitempty"`
	VehicleID       string        `json:"vehicle_id"`
	PickupLocation  string        `json:"pickup_location"`
	DropoffLocation string        `json:"dropoff_location"`
	PickupDate      string        `json:"pickup_date"`
	PickupTime      string        `json:"pickup_time"`
	ReturnDate      string        `json:"return_date"`
	ReturnTime      string        `json:"return_time"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	TotalPrice      float64       `json:"total_price"`
	Extras          []string      `json:"extras"`
	Status          BookingStatus `json:"status"`
	CreatedAt       string        `json:"created_at,omitempty"`
}

type messageRow struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Reply     string `json:"reply,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (r vehicleRow) toVehicle() Vehicle {
	return Vehicle{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		// Legacy rows may still carry a development asset path.
		Image:        NormalizeImagePath(r.Image),
		Price:        r.Price,
		Passengers:   r.Passengers,
		Luggage:      r.Luggage,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		Description:  r.Description,
	}
}

func vehicleInputRow(input VehicleInput) vehicleRow {
	return vehicleRow{
		Name:         input.Name,
		Category:     input.Category,
		Image:        NormalizeImagePath(input.Image),
		Price:        input.Price,
		Passengers:   input.Passengers,
		Luggage:      input.Luggage,
		Fuel:         input.Fuel,
		Transmission: input.Transmission,
		Description:  input.Description,
	}
}

func (r bookingRow) toBooking() Booking {
	extras := r.Extras
	if extras == nil {
		extras = []string{}
	}
	return Booking{
		ID:              r.ID,
		VehicleID:       r.VehicleID,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		ReturnDate:      r.ReturnDate,
		ReturnTime:      r.ReturnTime,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		TotalPrice:      r.TotalPrice,
		Extras:          extras,
		Status:          r.Status,
		CreatedAt:       parseTimestamp(r.CreatedAt),
	}
}

// bookingRequestRow builds the insert row for a submission. Status is
// forced to confirmed on every create; the total comes from the server's
// own computation, never the client.
func bookingRequestRow(req BookingRequest, totalPrice float64) bookingRow {
	extras := req.Extras
	if extras == nil {
		extras = []string{}
	}
	return bookingRow{
		VehicleID:       req.VehicleID,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupDate:      req.PickupDate,
		PickupTime:      req.PickupTime,
		ReturnDate:      req.ReturnDate,
		ReturnTime:      req.ReturnTime,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		TotalPrice:      totalPrice,
		Extras:          extras,
		Status:          StatusConfirmed,
	}
}

// bookingUpdateColumns translates the optional-field update into the
// external column names, skipping unset fields.
func bookingUpdateColumns(u BookingUpdate) map[string]interface{} {
	cols := map[string]interface{}{}
	if u.VehicleID != nil {
		cols["vehicle_id"] = *u.VehicleID
	}
	if u.PickupLocation != nil {
		cols["pickup_location"] = *u.PickupLocation
	}
	if u.DropoffLocation != nil {
		cols["dropoff_location"] = *u.DropoffLocation
	}
	if u.PickupDate != nil {
		cols["pickup_date"] = *u.PickupDate
	}
	if u.PickupTime != nil {
		cols["pickup_time"] = *u.PickupTime
	}
	if u.ReturnDate != nil {
		cols["return_date"] = *u.ReturnDate
	}
	if u.ReturnTime != nil {
		cols["return_time"] = *u.ReturnTime
	}
	if u.FirstName != nil {
		cols["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		cols["last_name"] = *u.LastName
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	if u.TotalPrice != nil {
		cols["total_price"] = *u.TotalPrice
	}
	if u.Extras != nil {
		cols["extras"] = *u.Extras
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

func (r messageRow) toMessage() Message {
	return Message{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		Reply:     r.Reply,
		CreatedAt: parseTimestamp(r.CreatedAt),
	}
}

func newMessageRow(msg NewMessage) messageRow {
	return messageRow{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Message,
	}
}

// parseTimestamp handles the timestamp shapes PostgREST emits. A row that
// predates the created_at column parses to the zero time.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
