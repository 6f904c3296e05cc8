package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bidfair/backend/internal/model"
)

const authUserKey = "auth_user"

// Authenticator turns a bearer token into the request context identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.AuthUser, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetAuthUser(c)
		if user == nil || user.Role != model.RoleAdmin {
			c.JSON(http.StatusForbidden, model.ErrorResponse{Error: "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequestLogger emits one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("http request")
	}
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
