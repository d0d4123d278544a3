package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/services"
)

// memVehicleRepo and memBookingRepo are just enough data layer to drive
// the handlers through real HTTP round-trips.

type memVehicleRepo struct {
	vehicles []models.Vehicle
	getErr   error
}

func (m *memVehicleRepo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return append([]models.Vehicle{}, m.vehicles...), nil
}

func (m *memVehicleRepo) GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			v := m.vehicles[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (m *memVehicleRepo) CreateVehicle(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error) {
	v := models.Vehicle{
		ID:           fmt.Sprintf("veh-%d", len(m.vehicles)+1),
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
	m.vehicles = append(m.vehicles, v)
	return &v, nil
}

func (m *memVehicleRepo) UpdateVehicle(ctx context.Context, id string, input models.VehicleInput) (*models.Vehicle, error) {
	return nil, fmt.Errorf("vehicle %s not found", id)
}

func (m *memVehicleRepo) DeleteVehicle(ctx context.Context, id string) error { return nil }

type memBookingRepo struct {
	bookings []models.Booking
}

func (m *memBookingRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return append([]models.Booking{}, m.bookings...), nil
}

func (m *memBookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) CreateBooking(ctx context.Context, req models.BookingRequest, totalPrice float64) (*models.Booking, error) {
	b := models.Booking{
		ID:              fmt.Sprintf("bk%04d-%d", len(m.bookings)+1, len(m.bookings)+1),
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
	}
	m.bookings = append(m.bookings, b)
	return &b, nil
}

func (m *memBookingRepo) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

func (m *memBookingRepo) UpdateBooking(ctx context.Context, id string, updates models.BookingUpdate) (*models.Booking, error) {
	return m.GetBookingByID(ctx, id)
}

func testRouter(vehicles *memVehicleRepo, bookings *memBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	vs := services.NewVehicleService(vehicles)
	bs := services.NewBookingService(bookings, vehicles)
	store := services.NewWizardStore()

	r := gin.New()
	r.GET("/vehicles", ListVehicles(vs))
	r.GET("/vehicles/:id", GetVehicle(vs))
	r.GET("/locations", ListLocations())
	r.GET("/extras", ListExtras())
	r.POST("/bookings", CreateBooking(bs))
	r.POST("/bookings/lookup", LookupBooking(bs))
	r.POST("/bookings/:id/cancel", CancelBooking(bs))
	r.POST("/booking/sessions", CreateSession(store, bs))
	r.GET("/booking/sessions/:id", GetSession(store, bs))
	r.PATCH("/booking/sessions/:id", UpdateSession(store, bs))
	r.POST("/booking/sessions/:id/next", AdvanceSession(store, bs))
	r.POST("/booking/sessions/:id/submit", SubmitSession(store, bs))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, helpers.ApiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp helpers.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func seededVehicles() *memVehicleRepo {
	return &memVehicleRepo{vehicles: []models.Vehicle{{
		ID:           "veh-1",
		Name:         "Toyota Corolla",
		Category:     models.CategoryEconomy,
		Image:        "/vehicles/corolla.jpg",
		Price:        45,
		Passengers:   5,
		Luggage:      2,
		Fuel:         "Petrol",
		Transmission: models.TransmissionAutomatic,
	}}}
}

func TestListVehiclesEndpoint(t *testing.T) {
	r := testRouter(seededVehicles(), &memBookingRepo{})

	rec, resp := doJSON(t, r, http.MethodGet, "/vehicles", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Total)
}

func TestGetVehicleEndpoint(t *testing.T) {
	r := testRouter(seededVehicles(), &memBookingRepo{})

	rec, resp := doJSON(t, r, http.MethodGet, "/vehicles/veh-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	// The detail view carries the category's marketing info.
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	info, ok := data["categoryInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "economy", info["id"])

	rec, resp = doJSON(t, r, http.MethodGet, "/vehicles/veh-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestCatalogEndpoints(t *testing.T) {
	r := testRouter(seededVehicles(), &memBookingRepo{})

	rec, resp := doJSON(t, r, http.MethodGet, "/locations", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(models.Locations), resp.Total)

	rec, resp = doJSON(t, r, http.MethodGet, "/locations?q=launceston", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, resp.Total)

	rec, resp = doJSON(t, r, http.MethodGet, "/locations?type=airport", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, resp.Total)

	rec, resp = doJSON(t, r, http.MethodGet, "/extras", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(models.Extras), resp.Total)
}

func TestCreateBookingEndpoint(t *testing.T) {
	bookings := &memBookingRepo{}
	r := testRouter(seededVehicles(), bookings)

	rec, resp := doJSON(t, r, http.MethodPost, "/bookings", models.BookingRequest{
		VehicleID:       "veh-1",
		PickupLocation:  "hobart-airport",
		DropoffLocation: "hobart-airport",
		PickupDate:      "2030-01-10",
		PickupTime:      "09:00",
		ReturnDate:      "2030-01-12",
		ReturnTime:      "09:00",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "0361234567",
		Extras:          []string{"gps", "insurance"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, resp.Error)
	assert.True(t, resp.Success)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, 160.0, bookings.bookings[0].TotalPrice)
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	r := testRouter(&memVehicleRepo{}, &memBookingRepo{})

	rec, resp := doJSON(t, r, http.MethodPost, "/bookings", models.BookingRequest{
		VehicleID:       "veh-gone",
		PickupLocation:  "hobart-airport",
		DropoffLocation: "hobart-airport",
		PickupDate:      "2030-01-10",
		PickupTime:      "09:00",
		ReturnDate:      "2030-01-12",
		ReturnTime:      "09:00",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "0361234567",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestLookupBookingEndpoint(t *testing.T) {
	bookings := &memBookingRepo{bookings: []models.Booking{{
		ID:              "ab12cd34-9f00-4c2e-8d11-000000000001",
		Email:           "jane@example.com",
		Status:          models.StatusConfirmed,
		PickupLocation:  "hobart-airport",
		DropoffLocation: "launceston",
		PickupDate:      "2030-01-10",
		PickupTime:      "09:00",
	}}}
	r := testRouter(seededVehicles(), bookings)

	rec, resp := doJSON(t, r, http.MethodPost, "/bookings/lookup", map[string]string{
		"email":            "JANE@example.com",
		"confirmationCode": "ab12cd34",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	// Location ids come back resolved to display names.
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hobart Airport", data["pickupLocationName"])
	assert.Equal(t, "Launceston CBD", data["dropoffLocationName"])

	// Wrong credentials produce one generic message.
	rec, resp = doJSON(t, r, http.MethodPost, "/bookings/lookup", map[string]string{
		"email":            "someone@else.com",
		"confirmationCode": "ab12cd34",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "booking not found, please check your email and confirmation code", resp.Error)

	// Unusable credentials fail before the data layer.
	rec, _ = doJSON(t, r, http.MethodPost, "/bookings/lookup", map[string]string{
		"email":            "jane@example.com",
		"confirmationCode": "ab",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBookingEndpoint(t *testing.T) {
	bookings := &memBookingRepo{bookings: []models.Booking{
		{ID: "bk-1", Status: models.StatusConfirmed, PickupDate: "2030-01-10", PickupTime: "09:00"},
		{ID: "bk-2", Status: models.StatusCancelled, PickupDate: "2030-01-10", PickupTime: "09:00"},
	}}
	r := testRouter(seededVehicles(), bookings)

	rec, resp := doJSON(t, r, http.MethodPost, "/bookings/bk-1/cancel", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, models.StatusCancelled, bookings.bookings[0].Status)

	rec, _ = doJSON(t, r, http.MethodPost, "/bookings/bk-2/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPost, "/bookings/bk-404/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func sessionID(t *testing.T, resp helpers.ApiResponse) string {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestWizardSessionFlow(t *testing.T) {
	bookings := &memBookingRepo{}
	r := testRouter(seededVehicles(), bookings)

	rec, resp := doJSON(t, r, http.MethodPost, "/booking/sessions?pickupLocation=hobart-airport", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := sessionID(t, resp)

	// Advancing with incomplete details is refused and the step stays put.
	rec, resp = doJSON(t, r, http.MethodPost, "/booking/sessions/"+id+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	details := services.RentalDetails{
		PickupLocation: "hobart-airport",
		SameDropoff:    true,
		PickupDate:     "2030-01-10",
		PickupTime:     "09:00",
		ReturnDate:     "2030-01-12",
		ReturnTime:     "09:00",
		VehicleID:      "veh-1",
	}
	rec, resp = doJSON(t, r, http.MethodPatch, "/booking/sessions/"+id, map[string]any{"details": details})
	require.Equal(t, http.StatusOK, rec.Code)

	// details -> extras -> contact
	rec, _ = doJSON(t, r, http.MethodPost, "/booking/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, r, http.MethodPost, "/booking/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(t, r, http.MethodPatch, "/booking/sessions/"+id, map[string]any{
		"contact": map[string]string{
			"firstName": "Jane",
			"lastName":  "Doe",
			"email":     "jane@example.com",
			"phone":     "0361234567",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(t, r, http.MethodPost, "/booking/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Submitting twice is a conflict, not a second booking.
	rec, resp = doJSON(t, r, http.MethodPost, "/booking/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusCreated, rec.Code, resp.Error)
	require.Len(t, bookings.bookings, 1)

	rec, _ = doJSON(t, r, http.MethodPost, "/booking/sessions/"+id+"/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, bookings.bookings, 1)
}

func wizardDetails() services.RentalDetails {
	return services.RentalDetails{
		PickupLocation: "hobart-airport",
		SameDropoff:    true,
		PickupDate:     "2030-01-10",
		PickupTime:     "09:00",
		ReturnDate:     "2030-01-12",
		ReturnTime:     "09:00",
		VehicleID:      "veh-1",
	}
}

func TestSessionViewSurfacesQuoteFailure(t *testing.T) {
	vehicles := seededVehicles()
	r := testRouter(vehicles, &memBookingRepo{})

	rec, resp := doJSON(t, r, http.MethodPost, "/booking/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := sessionID(t, resp)

	rec, _ = doJSON(t, r, http.MethodPatch, "/booking/sessions/"+id, map[string]any{"details": wizardDetails()})
	require.Equal(t, http.StatusOK, rec.Code)

	// A backend failure must not render as a zero quote.
	vehicles.getErr = errors.New("connection reset")
	rec, resp = doJSON(t, r, http.MethodGet, "/booking/sessions/"+id, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
}

func TestSessionViewZeroQuoteWhenVehicleGone(t *testing.T) {
	r := testRouter(seededVehicles(), &memBookingRepo{})

	rec, resp := doJSON(t, r, http.MethodPost, "/booking/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := sessionID(t, resp)

	// A vehicle deleted mid-flow keeps the session usable at a zero quote.
	details := wizardDetails()
	details.VehicleID = "veh-404"
	rec, resp = doJSON(t, r, http.MethodPatch, "/booking/sessions/"+id, map[string]any{"details": details})
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.0, data["total"])
}

func TestWizardUnknownSession(t *testing.T) {
	r := testRouter(seededVehicles(), &memBookingRepo{})

	rec, _ := doJSON(t, r, http.MethodGet, "/booking/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
