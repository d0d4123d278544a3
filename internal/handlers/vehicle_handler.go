package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/gin-gonic/gin"
)

func ListVehicles(vs *services.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicles, err := vs.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.ListResponse(vehicles, len(vehicles)))
	}
}

// vehicleView is the detail response: the vehicle plus its category's
// marketing blurb for the detail page.
type vehicleView struct {
	models.Vehicle
	CategoryInfo *models.CategoryInfo `json:"categoryInfo,omitempty"`
}

func GetVehicle(vs *services.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("vehicle ID is required"))
			return
		}

		vehicle, err := vs.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if vehicle == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("vehicle not found"))
			return
		}

		view := vehicleView{Vehicle: *vehicle}
		if info, ok := models.CategoryByType(vehicle.Category); ok {
			view.CategoryInfo = &info
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(view, ""))
	}
}

// VehicleEvents streams change notifications so list clients can refetch.
// Events carry only the action and the vehicle id; subscribers are
// expected to refetch the whole list.
func VehicleEvents(vs *services.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ch, cancel := vs.Subscribe()
		defer cancel()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case change := <-ch:
				c.SSEvent("change", change)
				return true
			}
		})
	}
}

func CreateVehicle(vs *services.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.VehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		vehicle, err := vs.Create(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, helpers.SuccessResponse(vehicle, "Vehicle created successfully"))
	}
}

func UpdateVehicle(vs *services.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		var input models.VehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		vehicle, err := vs.Update(c.Request.Context(), id, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(vehicle, "Vehicle updated successfully"))
	}
}

func DeleteVehicle(vs *services.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("vehicle ID is required"))
			return
		}

		if err := vs.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Vehicle deleted successfully"))
	}
}

// ListLocations serves the static pickup/drop-off catalog, optionally
// filtered by location type or a text query.
func ListLocations() gin.HandlerFunc {
	return func(c *gin.Context) {
		var locations []models.Location
		if t := c.Query("type"); t != "" {
			locations = models.LocationsByType(models.LocationType(t))
		} else {
			locations = models.SearchLocations(c.Query("q"))
		}
		c.JSON(http.StatusOK, helpers.ListResponse(locations, len(locations)))
	}
}

func ListExtras() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, helpers.ListResponse(models.Extras, len(models.Extras)))
	}
}

func ListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, helpers.ListResponse(models.Categories, len(models.Categories)))
	}
}
