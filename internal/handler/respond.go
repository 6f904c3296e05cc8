package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bidfair/backend/internal/model"
	"github.com/bidfair/backend/internal/service"
)

// writeServiceError maps domain errors to transport status codes.
// Unexpected failures are logged with their cause and surfaced
// generically.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, model.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, model.ErrorResponse{Error: "already exists"})
	default:
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "server error"})
	}
}

func writeBindError(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"error":  err.Error(),
	}).Warn("invalid request payload")
	c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
}
