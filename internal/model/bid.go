package model

import "time"

type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidAccepted BidStatus = "accepted"
	BidRejected BidStatus = "rejected"
)

func (s BidStatus) Valid() bool {
	return s == BidPending || s == BidAccepted || s == BidRejected
}

type Bid struct {
	ID           string
	CollectionID string
	UserID       string
	Price        float64
	Status       BidStatus
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// BidDTO is the per-viewer projection of a bid.
type BidDTO struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collectionId"`
	Price        float64   `json:"price"`
	Status       BidStatus `json:"status"`
	IsOwner      bool      `json:"isOwner"`
}

func ToBidDTO(b *Bid, viewerID string) BidDTO {
	return BidDTO{
		ID:           b.ID,
		CollectionID: b.CollectionID,
		Price:        b.Price,
		Status:       b.Status,
		IsOwner:      b.UserID == viewerID,
	}
}

type CreateBidRequest struct {
	CollectionID string  `json:"collectionId" binding:"required,uuid"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

type UpdateBidRequest struct {
	Price *float64 `json:"price"`
}

type BidDecisionRequest struct {
	CollectionID string `json:"collectionId" binding:"required,uuid"`
	BidID        string `json:"bidId" binding:"required,uuid"`
}

type CollectionBidsRequest struct {
	CollectionIDs []string `json:"collectionIds" binding:"required,min=1,dive,uuid"`
}

type BidList struct {
	Data       []BidDTO `json:"data"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

// CollectionBids groups the bids of one collection in batch lookups.
type CollectionBids struct {
	CollectionID string   `json:"collectionId"`
	Bids         []BidDTO `json:"bids"`
}
