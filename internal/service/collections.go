package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bidfair/backend/internal/db"
	"github.com/bidfair/backend/internal/model"
)

// CollectionService owns the listing lifecycle and the bid decision
// protocol: accepting a bid atomically rejects its siblings, and deleting
// a collection rejects and soft-deletes every bid still open on it.
type CollectionService struct {
	collections CollectionStore
	bids        BidStore
}

func NewCollectionService(collections CollectionStore, bids BidStore) *CollectionService {
	return &CollectionService{collections: collections, bids: bids}
}

func (s *CollectionService) Create(ctx context.Context, req model.CreateCollectionRequest, ownerID string) (*model.CollectionDTO, error) {
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrInvalidInput)
	}

	collection, err := s.collections.CreateCollection(ctx, &model.Collection{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		Price:       req.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	dto := model.ToCollectionDTO(collection, ownerID)
	return &dto, nil
}

func (s *CollectionService) Get(ctx context.Context, id, viewerID string) (*model.CollectionDTO, error) {
	collection, err := s.getCollection(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := model.ToCollectionDTO(collection, viewerID)
	return &dto, nil
}

// List returns a page of collections. With excludeViewer set, listings
// owned by the viewer are filtered out, which is how the marketplace
// browse view hides the caller's own collections.
func (s *CollectionService) List(ctx context.Context, params model.PageParams, viewerID string, excludeViewer bool) (*model.CollectionList, error) {
	filter := model.CollectionFilter{}
	if excludeViewer {
		filter.ExcludeOwnerID = viewerID
	}
	return s.list(ctx, params, filter, viewerID)
}

func (s *CollectionService) ListOwn(ctx context.Context, params model.PageParams, viewerID string) (*model.CollectionList, error) {
	return s.list(ctx, params, model.CollectionFilter{OwnerID: viewerID}, viewerID)
}

func (s *CollectionService) list(ctx context.Context, params model.PageParams, filter model.CollectionFilter, viewerID string) (*model.CollectionList, error) {
	total, err := s.collections.CountCollections(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count collections: %w", err)
	}

	collections, err := s.collections.ListCollections(ctx, filter, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	dtos := make([]model.CollectionDTO, 0, len(collections))
	for i := range collections {
		dtos = append(dtos, model.ToCollectionDTO(&collections[i], viewerID))
	}

	return &model.CollectionList{
		Data:       dtos,
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalPages: model.TotalPages(total, params.Limit),
	}, nil
}

func (s *CollectionService) Update(ctx context.Context, id string, req model.UpdateCollectionRequest, callerID string) (*model.CollectionDTO, error) {
	if req.Empty() {
		return nil, fmt.Errorf("%w: update data is required", ErrInvalidInput)
	}

	collection, err := s.getOwnedCollection(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		collection.Name = *req.Name
	}
	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock cannot be negative", ErrInvalidInput)
		}
		collection.Stock = *req.Stock
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
		}
		collection.Price = *req.Price
	}

	updated, err := s.collections.UpdateCollection(ctx, collection)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	dto := model.ToCollectionDTO(updated, callerID)
	return &dto, nil
}

func (s *CollectionService) Remove(ctx context.Context, id, callerID string) (*model.CollectionDTO, error) {
	collection, err := s.getOwnedCollection(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.collections.SoftDeleteCollection(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete collection: %w", err)
	}

	dto := model.ToCollectionDTO(collection, callerID)
	return &dto, nil
}

func (s *CollectionService) Bids(ctx context.Context, collectionID, viewerID string) ([]model.BidDTO, error) {
	if _, err := s.getCollection(ctx, collectionID); err != nil {
		return nil, err
	}

	bids, err := s.bids.ListBidsByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids for collection %s: %w", collectionID, err)
	}

	dtos := make([]model.BidDTO, 0, len(bids))
	for i := range bids {
		dtos = append(dtos, model.ToBidDTO(&bids[i], viewerID))
	}
	return dtos, nil
}

func (s *CollectionService) BidsForCollections(ctx context.Context, collectionIDs []string, viewerID string) ([]model.CollectionBids, error) {
	if len(collectionIDs) == 0 {
		return nil, fmt.Errorf("%w: collection ids are required", ErrInvalidInput)
	}
	for _, id := range collectionIDs {
		if err := validateID(id); err != nil {
			return nil, err
		}
	}

	result := make([]model.CollectionBids, 0, len(collectionIDs))
	for _, id := range collectionIDs {
		bids, err := s.bids.ListBidsByCollection(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to list bids for collection %s: %w", id, err)
		}
		dtos := make([]model.BidDTO, 0, len(bids))
		for i := range bids {
			dtos = append(dtos, model.ToBidDTO(&bids[i], viewerID))
		}
		result = append(result, model.CollectionBids{CollectionID: id, Bids: dtos})
	}
	return result, nil
}

// AcceptBid transitions the target bid to accepted and every other live
// bid on the collection to rejected in one transaction. After a
// successful call exactly one non-deleted bid of the collection is
// accepted, no matter how many times or in which order bids were
// accepted before.
func (s *CollectionService) AcceptBid(ctx context.Context, collectionID, bidID, callerID string) (*model.BidDTO, error) {
	if err := validateID(bidID); err != nil {
		return nil, err
	}
	if _, err := s.getOwnedCollection(ctx, collectionID, callerID); err != nil {
		return nil, err
	}

	accepted, err := s.collections.AcceptBid(ctx, collectionID, bidID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to accept bid %s for collection %s: %w", bidID, collectionID, err)
	}

	dto := model.ToBidDTO(accepted, callerID)
	return &dto, nil
}

// RejectBid applies the same ownership check as AcceptBid and rejects a
// single bid. Siblings are untouched.
func (s *CollectionService) RejectBid(ctx context.Context, collectionID, bidID, callerID string) (*model.BidDTO, error) {
	if err := validateID(bidID); err != nil {
		return nil, err
	}
	if _, err := s.getOwnedCollection(ctx, collectionID, callerID); err != nil {
		return nil, err
	}

	rejected, err := s.bids.UpdateBidStatus(ctx, collectionID, bidID, model.BidRejected)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reject bid %s for collection %s: %w", bidID, collectionID, err)
	}

	dto := model.ToBidDTO(rejected, callerID)
	return &dto, nil
}

func (s *CollectionService) getCollection(ctx context.Context, id string) (*model.Collection, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	collection, err := s.collections.GetCollection(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get collection %s: %w", id, err)
	}
	return collection, nil
}

func (s *CollectionService) getOwnedCollection(ctx context.Context, id, callerID string) (*model.Collection, error) {
	collection, err := s.getCollection(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection.UserID != callerID {
		return nil, ErrUnauthorized
	}
	return collection, nil
}
