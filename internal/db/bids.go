package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/bidfair/backend/internal/model"
)

const bidColumns = `id, collection_id, user_id, price, status, is_deleted, created_at, updated_at, deleted_at`

func scanBid(row rowScanner) (*model.Bid, error) {
	var b model.Bid
	err := row.Scan(
		&b.ID,
		&b.CollectionID,
		&b.UserID,
		&b.Price,
		&b.Status,
		&b.IsDeleted,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (db *Postgres) CreateBid(ctx context.Context, b *model.Bid) (*model.Bid, error) {
	query := `
		INSERT INTO bids (id, collection_id, user_id, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + bidColumns
	return scanBid(db.Pool.QueryRow(ctx, query,
		b.ID, b.CollectionID, b.UserID, b.Price, b.Status))
}

func (db *Postgres) GetBid(ctx context.Context, id string) (*model.Bid, error) {
	query := `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE id = $1 AND is_deleted = FALSE
	`
	return scanBid(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListBids(ctx context.Context, offset, limit int) ([]model.Bid, error) {
	query := `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBids(rows)
}

func (db *Postgres) CountBids(ctx context.Context) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bids WHERE is_deleted = FALSE`).Scan(&count)
	return count, err
}

func (db *Postgres) ListBidsByCollection(ctx context.Context, collectionID string) ([]model.Bid, error) {
	query := `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE collection_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBids(rows)
}

func (db *Postgres) UpdateBidPrice(ctx context.Context, id string, price float64) (*model.Bid, error) {
	query := `
		UPDATE bids
		SET price = $2, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + bidColumns
	return scanBid(db.Pool.QueryRow(ctx, query, id, price))
}

// UpdateBidStatus transitions a single bid without touching its siblings.
// Used by the reject path; acceptance goes through Postgres.AcceptBid.
func (db *Postgres) UpdateBidStatus(ctx context.Context, collectionID, bidID string, status model.BidStatus) (*model.Bid, error) {
	query := `
		UPDATE bids
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND collection_id = $2 AND is_deleted = FALSE
		RETURNING ` + bidColumns
	return scanBid(db.Pool.QueryRow(ctx, query, bidID, collectionID, status))
}

func (db *Postgres) SoftDeleteBid(ctx context.Context, id string) error {
	query := `
		UPDATE bids
		SET is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`
	tag, err := db.Pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectBids(rows pgx.Rows) ([]model.Bid, error) {
	var bids []model.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, *b)
	}
	return bids, rows.Err()
}
