package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/gin-gonic/gin"
)

// cancellationPolicy is shown with every customer-facing booking. It is a
// disclosure only; nothing here enforces it.
const cancellationPolicy = "Free cancellation up to 24 hours before pickup. Cancellations within 24 hours of pickup are non-refundable."

// bookingView decorates a booking with the customer-facing derived fields.
type bookingView struct {
	models.Booking
	ConfirmationCode    string `json:"confirmationCode"`
	PickupLocationName  string `json:"pickupLocationName"`
	DropoffLocationName string `json:"dropoffLocationName"`
	CanCancel           bool   `json:"canCancel"`
	CancellationPolicy  string `json:"cancellationPolicy"`
}

// locationName resolves a location id for display. An id no longer in
// the catalog falls back to the raw id so old bookings still render.
func locationName(id string) string {
	if loc, ok := models.LocationByID(id); ok {
		return loc.Name
	}
	return id
}

func viewOf(b *models.Booking, now time.Time) bookingView {
	return bookingView{
		Booking:             *b,
		ConfirmationCode:    b.ConfirmationCode(),
		PickupLocationName:  locationName(b.PickupLocation),
		DropoffLocationName: locationName(b.DropoffLocation),
		CanCancel:           services.CanCancel(b, now),
		CancellationPolicy:  cancellationPolicy,
	}
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.Create(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrVehicleGone) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("failed to create booking, please try again"))
			return
		}

		view := viewOf(booking, time.Now())
		c.JSON(http.StatusCreated, helpers.SuccessResponse(view, "Booking submitted successfully"))
	}
}

type lookupRequest struct {
	Email            string `json:"email"`
	ConfirmationCode string `json:"confirmationCode"`
}

func LookupBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lookupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.Lookup(c.Request.Context(), req.Email, req.ConfirmationCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidLookup):
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			case errors.Is(err, services.ErrBookingNotFound):
				// One generic outcome regardless of which credential was wrong.
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("booking not found, please check your email and confirmation code"))
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("failed to look up booking, please try again"))
			}
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(viewOf(booking, time.Now()), ""))
	}
}

// CancelBooking is the customer path: only confirmed, upcoming bookings.
func CancelBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("booking ID is required"))
			return
		}

		booking, err := bs.CancelAsCustomer(c.Request.Context(), id, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusConflict, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(viewOf(booking, time.Now()), "Booking cancelled successfully"))
	}
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.ListResponse(bookings, len(bookings)))
	}
}

// AdminCancelBooking uses the same status-update primitive as the
// customer flow, minus the upcoming-pickup requirement.
func AdminCancelBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("booking ID is required"))
			return
		}

		booking, err := bs.Cancel(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusConflict, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(booking, "Booking cancelled successfully"))
	}
}
