package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bidfair/backend/internal/model"
)

type BidServiceInterface interface {
	Create(ctx context.Context, req model.CreateBidRequest, callerID string) (*model.BidDTO, error)
	Get(ctx context.Context, id, viewerID string) (*model.BidDTO, error)
	List(ctx context.Context, params model.PageParams, viewerID string) (*model.BidList, error)
	Update(ctx context.Context, id string, req model.UpdateBidRequest, callerID string) (*model.BidDTO, error)
	Remove(ctx context.Context, id, callerID string) (*model.BidDTO, error)
}

type BidHandler struct {
	svc BidServiceInterface
}

func NewBidHandler(svc BidServiceInterface) *BidHandler {
	return &BidHandler{svc: svc}
}

// Create handles POST /bids. The bidder is always the caller.
func (h *BidHandler) Create(c *gin.Context) {
	var req model.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user := GetAuthUser(c)
	dto, err := h.svc.Create(c.Request.Context(), req, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

// List handles GET /bids.
func (h *BidHandler) List(c *gin.Context) {
	params, ok := pageParams(c)
	if !ok {
		return
	}

	user := GetAuthUser(c)
	list, err := h.svc.List(c.Request.Context(), params, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get handles GET /bids/:id.
func (h *BidHandler) Get(c *gin.Context) {
	user := GetAuthUser(c)
	dto, err := h.svc.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Update handles PATCH /bids/:id. Only the bidder may change the price.
func (h *BidHandler) Update(c *gin.Context) {
	var req model.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user := GetAuthUser(c)
	dto, err := h.svc.Update(c.Request.Context(), c.Param("id"), req, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Delete handles DELETE /bids/:id.
func (h *BidHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	dto, err := h.svc.Remove(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}
