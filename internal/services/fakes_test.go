package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Azhar512/tassiecar/internal/models"
)

// In-memory repository fakes backing the service tests. They mirror the
// contract of the real data layer, including (nil, nil) for absent rows.

type fakeVehicleRepo struct {
	vehicles []models.Vehicle
	nextID   int
	listErr  error
}

func (f *fakeVehicleRepo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Vehicle, len(f.vehicles))
	copy(out, f.vehicles)
	return out, nil
}

func (f *fakeVehicleRepo) GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	for i := range f.vehicles {
		if f.vehicles[i].ID == id {
			v := f.vehicles[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleRepo) CreateVehicle(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error) {
	f.nextID++
	v := models.Vehicle{
		ID:           fmt.Sprintf("veh-%d", f.nextID),
		Name:         input.Name,
		Category:     input.Category,
		Image:        models.NormalizeImagePath(input.Image),
		Price:        input.Price,
		Passengers:   input.Passengers,
		Luggage:      input.Luggage,
		Fuel:         input.Fuel,
		Transmission: input.Transmission,
		Description:  input.Description,
	}
	f.vehicles = append(f.vehicles, v)
	return &v, nil
}

func (f *fakeVehicleRepo) UpdateVehicle(ctx context.Context, id string, input models.VehicleInput) (*models.Vehicle, error) {
	for i := range f.vehicles {
		if f.vehicles[i].ID == id {
			f.vehicles[i] = models.Vehicle{
				ID:           id,
				Name:         input.Name,
				Category:     input.Category,
				Image:        models.NormalizeImagePath(input.Image),
				Price:        input.Price,
				Passengers:   input.Passengers,
				Luggage:      input.Luggage,
				Fuel:         input.Fuel,
				Transmission: input.Transmission,
				Description:  input.Description,
			}
			v := f.vehicles[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("vehicle %s not found", id)
}

func (f *fakeVehicleRepo) DeleteVehicle(ctx context.Context, id string) error {
	for i := range f.vehicles {
		if f.vehicles[i].ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBookingRepo struct {
	bookings  []models.Booking
	nextID    int
	createErr error
	created   []models.Booking
}

func (f *fakeBookingRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, req models.BookingRequest, totalPrice float64) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	b := models.Booking{
		ID:              fmt.Sprintf("bk%04d-%d", f.nextID, f.nextID),
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
		Extras:          req.Extras,
		Status:          models.StatusConfirmed,
		CreatedAt:       time.Now(),
	}
	f.bookings = append(f.bookings, b)
	f.created = append(f.created, b)
	return &b, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

func (f *fakeBookingRepo) UpdateBooking(ctx context.Context, id string, updates models.BookingUpdate) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			if updates.Status != nil {
				f.bookings[i].Status = *updates.Status
			}
			if updates.TotalPrice != nil {
				f.bookings[i].TotalPrice = *updates.TotalPrice
			}
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}
