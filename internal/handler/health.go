package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bidfair/backend/internal/model"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}
