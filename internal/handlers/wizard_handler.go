package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/Azhar512/tassiecar/internal/validation"
	"github.com/gin-gonic/gin"
)

// sessionView is the wizard state served back after every operation: the
// current step, the collected fields, and a freshly computed quote.
type sessionView struct {
	ID          string                      `json:"id"`
	Step        string                      `json:"step"`
	VehicleType string                      `json:"vehicleType,omitempty"`
	Details     services.RentalDetails      `json:"details"`
	Extras      []string                    `json:"extras"`
	Contact     map[string]validation.Field `json:"contact"`
	Days        int                         `json:"days"`
	Total       float64                     `json:"total"`
	Booking     *bookingView                `json:"booking,omitempty"`
}

func buildView(c *gin.Context, w *services.BookingWizard, bs *services.BookingService, booking *models.Booking) (sessionView, error) {
	contact := map[string]validation.Field{}
	for _, name := range []string{"firstName", "lastName", "email", "phone"} {
		if field, ok := w.ContactField(name); ok {
			contact[name] = field
		}
	}

	// Repriced on every view; never cached ahead of submission. A vehicle
	// deleted mid-flow leaves the quote at zero so the customer can pick
	// again; any other pricing failure is surfaced, never rendered as $0.
	days, total, err := w.Quote(c.Request.Context(), bs)
	switch {
	case errors.Is(err, services.ErrVehicleGone):
		days, total = 0, 0
	case err != nil:
		return sessionView{}, err
	}

	view := sessionView{
		ID:          w.ID,
		Step:        w.Step.String(),
		VehicleType: w.VehicleType,
		Details:     w.Details,
		Extras:      w.Extras,
		Contact:     contact,
		Days:        days,
		Total:       total,
	}
	if booking != nil {
		b := viewOf(booking, time.Now())
		view.Booking = &b
	}
	return view, nil
}

const quoteFailureMessage = "failed to price the booking, please try again"

// CreateSession opens a wizard session. Query parameters pre-fill form
// state only; nothing is checked against availability here.
func CreateSession(store *services.WizardStore, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefill := services.WizardPrefill{
			PickupLocation:  c.Query("pickupLocation"),
			DropoffLocation: c.Query("dropoffLocation"),
			PickupDate:      c.Query("pickupDate"),
			ReturnDate:      c.Query("returnDate"),
			VehicleType:     c.Query("vehicleType"),
			VehicleID:       c.Query("vehicleId"),
		}

		wizard := store.Create(prefill)
		var view sessionView
		var viewErr error
		_ = store.With(wizard.ID, func(w *services.BookingWizard) error {
			view, viewErr = buildView(c, w, bs, nil)
			return nil
		})
		if viewErr != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(quoteFailureMessage))
			return
		}
		c.JSON(http.StatusCreated, helpers.SuccessResponse(view, "Booking session created"))
	}
}

func GetSession(store *services.WizardStore, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view sessionView
		var viewErr error
		err := store.With(c.Param("id"), func(w *services.BookingWizard) error {
			view, viewErr = buildView(c, w, bs, nil)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}
		if viewErr != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(quoteFailureMessage))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(view, ""))
	}
}

type sessionUpdateRequest struct {
	Details     *services.RentalDetails `json:"details"`
	ToggleExtra *string                 `json:"toggleExtra"`
	Contact     map[string]string       `json:"contact"`
}

// UpdateSession applies field changes to the current step. Contact fields
// run through the validation rules and come back with their per-field
// error and touched state.
func UpdateSession(store *services.WizardStore, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sessionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		var view sessionView
		var viewErr error
		err := store.With(c.Param("id"), func(w *services.BookingWizard) error {
			if req.Details != nil {
				w.SetDetails(*req.Details)
			}
			if req.ToggleExtra != nil {
				w.ToggleExtra(*req.ToggleExtra)
			}
			for name, value := range req.Contact {
				w.SetContactField(name, value)
			}
			view, viewErr = buildView(c, w, bs, nil)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}
		if viewErr != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(quoteFailureMessage))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(view, ""))
	}
}

// AdvanceSession moves one step forward after the current step's guard
// passes. A guard failure leaves the session on the same step.
func AdvanceSession(store *services.WizardStore, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view sessionView
		var guardErr, viewErr error
		err := store.With(c.Param("id"), func(w *services.BookingWizard) error {
			guardErr = w.Next(time.Now())
			view, viewErr = buildView(c, w, bs, nil)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}
		if guardErr != nil {
			c.JSON(http.StatusUnprocessableEntity, helpers.ErrorResponse(guardErr.Error()))
			return
		}
		if viewErr != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(quoteFailureMessage))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(view, ""))
	}
}

func BackSession(store *services.WizardStore, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view sessionView
		var viewErr error
		err := store.With(c.Param("id"), func(w *services.BookingWizard) error {
			w.Back()
			view, viewErr = buildView(c, w, bs, nil)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}
		if viewErr != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(quoteFailureMessage))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(view, ""))
	}
}

// SubmitSession creates the booking. On failure the session stays on the
// Confirm step and the customer may retry.
func SubmitSession(store *services.WizardStore, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view sessionView
		var submitErr, viewErr error
		err := store.With(c.Param("id"), func(w *services.BookingWizard) error {
			var booking *models.Booking
			booking, submitErr = w.Submit(c.Request.Context(), bs)
			view, viewErr = buildView(c, w, bs, booking)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}
		if submitErr != nil {
			switch {
			case errors.Is(submitErr, services.ErrNotReadyToSubmit), errors.Is(submitErr, services.ErrAlreadySubmitted):
				c.JSON(http.StatusConflict, helpers.ErrorResponse(submitErr.Error()))
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("failed to create booking, please try again"))
			}
			return
		}
		if viewErr != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(quoteFailureMessage))
			return
		}
		c.JSON(http.StatusCreated, helpers.SuccessResponse(view, "Booking submitted successfully"))
	}
}
