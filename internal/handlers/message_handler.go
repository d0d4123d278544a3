package handlers

import (
	"net/http"
	"strings"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/gin-gonic/gin"
)

// SendMessage handles both the contact form and the support widget.
func SendMessage(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg models.NewMessage
		if err := c.ShouldBindJSON(&msg); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := ms.Send(c.Request.Context(), msg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("failed to send message, please try again"))
			return
		}
		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "Message sent successfully"))
	}
}

func ListMessages(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := ms.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.ListResponse(messages, len(messages)))
	}
}

type replyRequest struct {
	Reply string `json:"reply"`
}

func ReplyMessage(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		var req replyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		message, err := ms.Reply(c.Request.Context(), id, req.Reply)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(message, "Reply saved successfully"))
	}
}
