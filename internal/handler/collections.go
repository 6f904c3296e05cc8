package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bidfair/backend/internal/model"
)

type CollectionServiceInterface interface {
	Create(ctx context.Context, req model.CreateCollectionRequest, ownerID string) (*model.CollectionDTO, error)
	Get(ctx context.Context, id, viewerID string) (*model.CollectionDTO, error)
	List(ctx context.Context, params model.PageParams, viewerID string, excludeViewer bool) (*model.CollectionList, error)
	ListOwn(ctx context.Context, params model.PageParams, viewerID string) (*model.CollectionList, error)
	Update(ctx context.Context, id string, req model.UpdateCollectionRequest, callerID string) (*model.CollectionDTO, error)
	Remove(ctx context.Context, id, callerID string) (*model.CollectionDTO, error)
	Bids(ctx context.Context, collectionID, viewerID string) ([]model.BidDTO, error)
	BidsForCollections(ctx context.Context, collectionIDs []string, viewerID string) ([]model.CollectionBids, error)
	AcceptBid(ctx context.Context, collectionID, bidID, callerID string) (*model.BidDTO, error)
	RejectBid(ctx context.Context, collectionID, bidID, callerID string) (*model.BidDTO, error)
}

type CollectionHandler struct {
	svc CollectionServiceInterface
}

func NewCollectionHandler(svc CollectionServiceInterface) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// Create handles POST /collections. The owner is always the caller.
func (h *CollectionHandler) Create(c *gin.Context) {
	var req model.CreateCollectionRequest
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

// List handles GET /collections. ?excludeCurrentUser=true hides the
// caller's own listings from the page.
func (h *CollectionHandler) List(c *gin.Context) {
	params, ok := pageParams(c)
	if !ok {
		return
	}

	excludeCurrentUser, _ := strconv.ParseBool(c.DefaultQuery("excludeCurrentUser", "false"))

	user := GetAuthUser(c)
	list, err := h.svc.List(c.Request.Context(), params, user.ID, excludeCurrentUser)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListMine handles GET /collections/mine.
func (h *CollectionHandler) ListMine(c *gin.Context) {
	params, ok := pageParams(c)
	if !ok {
		return
	}

	user := GetAuthUser(c)
	list, err := h.svc.ListOwn(c.Request.Context(), params, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get handles GET /collections/:id.
func (h *CollectionHandler) Get(c *gin.Context) {
	user := GetAuthUser(c)
	dto, err := h.svc.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Update handles PATCH /collections/:id.
func (h *CollectionHandler) Update(c *gin.Context) {
	var req model.UpdateCollectionRequest
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

// Delete handles DELETE /collections/:id.
func (h *CollectionHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	dto, err := h.svc.Remove(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Bids handles GET /collections/:id/bids.
func (h *CollectionHandler) Bids(c *gin.Context) {
	user := GetAuthUser(c)
	bids, err := h.svc.Bids(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bids)
}

// BidsForCollections handles POST /collections/bids, the batch lookup
// the dashboard uses to fetch bids for every visible listing at once.
func (h *CollectionHandler) BidsForCollections(c *gin.Context) {
	var req model.CollectionBidsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user := GetAuthUser(c)
	result, err := h.svc.BidsForCollections(c.Request.Context(), req.CollectionIDs, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AcceptBid handles POST /collections/accept-bid.
func (h *CollectionHandler) AcceptBid(c *gin.Context) {
	var req model.BidDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user := GetAuthUser(c)
	dto, err := h.svc.AcceptBid(c.Request.Context(), req.CollectionID, req.BidID, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// RejectBid handles POST /collections/reject-bid.
func (h *CollectionHandler) RejectBid(c *gin.Context) {
	var req model.BidDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user := GetAuthUser(c)
	dto, err := h.svc.RejectBid(c.Request.Context(), req.CollectionID, req.BidID, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func pageParams(c *gin.Context) (model.PageParams, bool) {
	params, err := model.ParsePageParams(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return model.PageParams{}, false
	}
	return params, true
}
