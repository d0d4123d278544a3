package handlers

import (
	"errors"
	"net/http"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/middleware"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin and stores the session in httpOnly
// cookies. Valid credentials without the admin role are rejected and the
// session revoked.
func Login(as *services.AuthService, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		tokenRes, err := as.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrNotAdmin) {
				c.JSON(http.StatusForbidden, helpers.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse(err.Error()))
			return
		}

		middleware.SetSessionCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn, isProduction)
		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"id":    tokenRes.User.ID,
			"email": tokenRes.User.Email,
			"role":  helpers.AdminRole,
		}, "Welcome back, Admin"))
	}
}

func Logout(as *services.AuthService, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("access_token")
		_ = as.Logout(c.Request.Context(), token)
		middleware.ClearSessionCookies(c, isProduction)
		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Signed out"))
	}
}

// Me resolves the current session for the front end's access gate: is
// there a session, and does it carry the admin role.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("no active session"))
			return
		}
		claims, ok := user.(*helpers.CustomClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid session claims"))
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"id":      claims.Subject,
			"email":   claims.Email,
			"role":    claims.MetadataRole(),
			"isAdmin": claims.IsAdmin(),
		}, ""))
	}
}
