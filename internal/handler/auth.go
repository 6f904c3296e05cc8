package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bidfair/backend/internal/model"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.AuthUser, error)
	AllowSignup() bool
}

type AuthHandler struct {
	svc AuthServiceInterface
}

func NewAuthHandler(svc AuthServiceInterface) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /auth/register. Signup can be disabled via
// configuration, in which case the endpoint answers 403.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout. Revokes the presented bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "logged_out"})
}
