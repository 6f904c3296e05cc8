package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bidfair/backend/internal/model"
)

type UserServiceInterface interface {
	Details(ctx context.Context, callerID string) (*model.UserDTO, error)
	Get(ctx context.Context, id string) (*model.UserDTO, error)
	Create(ctx context.Context, req model.CreateUserRequest) (*model.UserDTO, error)
	List(ctx context.Context, params model.PageParams) (*model.UserList, error)
	Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.UserDTO, error)
	Remove(ctx context.Context, id string) error
}

type UserHandler struct {
	svc UserServiceInterface
}

func NewUserHandler(svc UserServiceInterface) *UserHandler {
	return &UserHandler{svc: svc}
}

// Details handles GET /users/details, the caller's own profile.
func (h *UserHandler) Details(c *gin.Context) {
	user := GetAuthUser(c)
	dto, err := h.svc.Details(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Create handles POST /users. Admin only.
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	dto, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

// List handles GET /users. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	params, ok := pageParams(c)
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get handles GET /users/:id. Admin only.
func (h *UserHandler) Get(c *gin.Context) {
	dto, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Update handles PATCH /users/:id. Admin only.
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	dto, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Delete handles DELETE /users/:id. Admin only.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}
