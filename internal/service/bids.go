package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bidfair/backend/internal/db"
	"github.com/bidfair/backend/internal/model"
)

type BidService struct {
	bids        BidStore
	collections CollectionStore
}

func NewBidService(bids BidStore, collections CollectionStore) *BidService {
	return &BidService{bids: bids, collections: collections}
}

// Create places a bid on behalf of the caller. The target collection must
// exist and not be soft-deleted; new bids always start out pending.
func (s *BidService) Create(ctx context.Context, req model.CreateBidRequest, callerID string) (*model.BidDTO, error) {
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if err := validateID(req.CollectionID); err != nil {
		return nil, err
	}

	if _, err := s.collections.GetCollection(ctx, req.CollectionID); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get collection %s: %w", req.CollectionID, err)
	}

	bid, err := s.bids.CreateBid(ctx, &model.Bid{
		ID:           uuid.NewString(),
		CollectionID: req.CollectionID,
		UserID:       callerID,
		Price:        req.Price,
		Status:       model.BidPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bid: %w", err)
	}

	dto := model.ToBidDTO(bid, callerID)
	return &dto, nil
}

func (s *BidService) Get(ctx context.Context, id, viewerID string) (*model.BidDTO, error) {
	bid, err := s.getBid(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := model.ToBidDTO(bid, viewerID)
	return &dto, nil
}

func (s *BidService) List(ctx context.Context, params model.PageParams, viewerID string) (*model.BidList, error) {
	total, err := s.bids.CountBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}

	bids, err := s.bids.ListBids(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	dtos := make([]model.BidDTO, 0, len(bids))
	for i := range bids {
		dtos = append(dtos, model.ToBidDTO(&bids[i], viewerID))
	}

	return &model.BidList{
		Data:       dtos,
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalPages: model.TotalPages(total, params.Limit),
	}, nil
}

// Update lets a bidder change the price of their own pending offer.
func (s *BidService) Update(ctx context.Context, id string, req model.UpdateBidRequest, callerID string) (*model.BidDTO, error) {
	if req.Price == nil {
		return nil, fmt.Errorf("%w: update data is required", ErrInvalidInput)
	}
	if *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	if _, err := s.getOwnedBid(ctx, id, callerID); err != nil {
		return nil, err
	}

	updated, err := s.bids.UpdateBidPrice(ctx, id, *req.Price)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update bid %s: %w", id, err)
	}

	dto := model.ToBidDTO(updated, callerID)
	return &dto, nil
}

func (s *BidService) Remove(ctx context.Context, id, callerID string) (*model.BidDTO, error) {
	bid, err := s.getOwnedBid(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.bids.SoftDeleteBid(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete bid %s: %w", id, err)
	}

	dto := model.ToBidDTO(bid, callerID)
	return &dto, nil
}

func (s *BidService) getBid(ctx context.Context, id string) (*model.Bid, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	bid, err := s.bids.GetBid(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bid %s: %w", id, err)
	}
	return bid, nil
}

func (s *BidService) getOwnedBid(ctx context.Context, id, callerID string) (*model.Bid, error) {
	bid, err := s.getBid(ctx, id)
	if err != nil {
		return nil, err
	}
	if bid.UserID != callerID {
		return nil, ErrUnauthorized
	}
	return bid, nil
}
