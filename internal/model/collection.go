package model

import "time"

type Collection struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Stock       int
	Price       float64
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CollectionDTO is the per-viewer projection of a collection. IsOwner is
// computed against the requesting user on every read, never stored.
type CollectionDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	IsOwner     bool    `json:"isOwner"`
}

func ToCollectionDTO(c *Collection, viewerID string) CollectionDTO {
	return CollectionDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Stock:       c.Stock,
		Price:       c.Price,
		IsOwner:     c.UserID == viewerID,
	}
}

type CreateCollectionRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateCollectionRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price"`
}

func (r UpdateCollectionRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Stock == nil && r.Price == nil
}

type CollectionList struct {
	Data       []CollectionDTO `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// CollectionFilter narrows collection list queries. Zero value means no
// filtering beyond the soft-delete exclusion.
type CollectionFilter struct {
	OwnerID        string
	ExcludeOwnerID string
}
