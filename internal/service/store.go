package service

import (
	"context"

	"github.com/bidfair/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=service

// UserStore is the persistence surface the user and auth services need.
// *db.Postgres implements every store interface.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, error)
	CountUsers(ctx context.Context) (int, error)
	UpdateUser(ctx context.Context, u *model.User) (*model.User, error)
	SoftDeleteUser(ctx context.Context, id string) error
}

type CollectionStore interface {
	CreateCollection(ctx context.Context, c *model.Collection) (*model.Collection, error)
	GetCollection(ctx context.Context, id string) (*model.Collection, error)
	ListCollections(ctx context.Context, filter model.CollectionFilter, offset, limit int) ([]model.Collection, error)
	CountCollections(ctx context.Context, filter model.CollectionFilter) (int, error)
	UpdateCollection(ctx context.Context, c *model.Collection) (*model.Collection, error)
	SoftDeleteCollection(ctx context.Context, id string) error
	AcceptBid(ctx context.Context, collectionID, bidID string) (*model.Bid, error)
}

type BidStore interface {
	CreateBid(ctx context.Context, b *model.Bid) (*model.Bid, error)
	GetBid(ctx context.Context, id string) (*model.Bid, error)
	ListBids(ctx context.Context, offset, limit int) ([]model.Bid, error)
	CountBids(ctx context.Context) (int, error)
	ListBidsByCollection(ctx context.Context, collectionID string) ([]model.Bid, error)
	UpdateBidPrice(ctx context.Context, id string, price float64) (*model.Bid, error)
	UpdateBidStatus(ctx context.Context, collectionID, bidID string, status model.BidStatus) (*model.Bid, error)
	SoftDeleteBid(ctx context.Context, id string) error
}

type TokenStore interface {
	InsertToken(ctx context.Context, t *model.Token) (*model.Token, error)
	GetToken(ctx context.Context, userID, token string) (*model.Token, error)
	DeleteToken(ctx context.Context, userID, token string) error
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
