package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		)
	}
}

// ErrorHandler provides centralized error handling. Nothing here is fatal
// to the process; an unhandled error becomes one generic response and the
// next request proceeds normally.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}
	}
}

// AuthMiddleware resolves the session from the access-token cookie. An
// expired token is transparently refreshed from the refresh-token cookie
// before the request is rejected. The resolved claims land in the context
// under "user".
func AuthMiddleware(authService *services.AuthService, logger *slog.Logger, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("no active session"))
			c.Abort()
			return
		}

		claims, err := helpers.ValidateToken(token)
		if err != nil {
			refreshToken, refreshErr := c.Cookie("refresh_token")
			if refreshErr != nil {
				c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("session expired"))
				c.Abort()
				return
			}

			tokenRes, refreshErr := authService.Refresh(c.Request.Context(), refreshToken)
			if refreshErr != nil {
				logger.Error("Token refresh failed", "error", refreshErr)
				c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("session expired"))
				c.Abort()
				return
			}

			logger.Info("Token refreshed",
				"user_id", tokenRes.User.ID,
				"expires_in", tokenRes.ExpiresIn,
			)
			SetSessionCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn, isProduction)

			claims, err = helpers.ValidateToken(tokenRes.AccessToken)
			if err != nil {
				c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("session expired"))
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireAdmin is the access gate for the admin surface. A session that
// lacks the admin role gets a static access-denied body, not a redirect.
// This gate is a UX convenience; the backend's row-level policy is the
// actual trust boundary.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("no active session"))
			c.Abort()
			return
		}
		claims, ok := user.(*helpers.CustomClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid session claims"))
			c.Abort()
			return
		}
		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("access denied: you do not have the necessary permissions to access this area"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookies writes the httpOnly session cookies. Shared by the
// login handler and the refresh path so the attributes cannot diverge.
func SetSessionCookies(c *gin.Context, accessToken, refreshToken string, expiresIn int, secure bool) {
	c.SetCookie("access_token", accessToken, expiresIn, "/", "", secure, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*30, "/", "", secure, true)
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(c *gin.Context, secure bool) {
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
}
