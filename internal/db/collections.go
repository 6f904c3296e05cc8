package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bidfair/backend/internal/model"
)

const collectionColumns = `id, user_id, name, description, stock, price, is_deleted, created_at, updated_at, deleted_at`

func scanCollection(row rowScanner) (*model.Collection, error) {
	var c model.Collection
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Description,
		&c.Stock,
		&c.Price,
		&c.IsDeleted,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *Postgres) CreateCollection(ctx context.Context, c *model.Collection) (*model.Collection, error) {
	query := `
		INSERT INTO collections (id, user_id, name, description, stock, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + collectionColumns
	return scanCollection(db.Pool.QueryRow(ctx, query,
		c.ID, c.UserID, c.Name, c.Description, c.Stock, c.Price))
}

func (db *Postgres) GetCollection(ctx context.Context, id string) (*model.Collection, error) {
	query := `
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE id = $1 AND is_deleted = FALSE
	`
	return scanCollection(db.Pool.QueryRow(ctx, query, id))
}

func collectionFilterClause(filter model.CollectionFilter, args []any) (string, []any) {
	clause := `WHERE is_deleted = FALSE`
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		clause += fmt.Sprintf(` AND user_id = $%d`, len(args))
	}
	if filter.ExcludeOwnerID != "" {
		args = append(args, filter.ExcludeOwnerID)
		clause += fmt.Sprintf(` AND user_id <> $%d`, len(args))
	}
	return clause, args
}

func (db *Postgres) ListCollections(ctx context.Context, filter model.CollectionFilter, offset, limit int) ([]model.Collection, error) {
	clause, args := collectionFilterClause(filter, nil)
	args = append(args, offset, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM collections
		%s
		ORDER BY created_at DESC
		OFFSET $%d LIMIT $%d
	`, collectionColumns, clause, len(args)-1, len(args))

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []model.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, *c)
	}
	return collections, rows.Err()
}

func (db *Postgres) CountCollections(ctx context.Context, filter model.CollectionFilter) (int, error) {
	clause, args := collectionFilterClause(filter, nil)
	var count int
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM collections `+clause, args...).Scan(&count)
	return count, err
}

func (db *Postgres) UpdateCollection(ctx context.Context, c *model.Collection) (*model.Collection, error) {
	query := `
		UPDATE collections
		SET name = $2, description = $3, stock = $4, price = $5, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + collectionColumns
	return scanCollection(db.Pool.QueryRow(ctx, query,
		c.ID, c.Name, c.Description, c.Stock, c.Price))
}

// SoftDeleteCollection marks the collection deleted and, in the same
// transaction, rejects and soft-deletes every bid still open against it.
// Without the cascade, pending bids would outlive their listing.
func (db *Postgres) SoftDeleteCollection(ctx context.Context, id string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE collections
		SET is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	_, err = tx.Exec(ctx, `
		UPDATE bids
		SET status = 'rejected', is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE collection_id = $1 AND is_deleted = FALSE
	`, id)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// AcceptBid accepts one bid and rejects all other live bids of the same
// collection atomically. Both writes share one transaction so at most one
// non-deleted bid per collection is ever observable as accepted.
func (db *Postgres) AcceptBid(ctx context.Context, collectionID, bidID string) (*model.Bid, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE bids
		SET status = 'accepted', updated_at = NOW()
		WHERE id = $1 AND collection_id = $2 AND is_deleted = FALSE
	`, bidID, collectionID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	_, err = tx.Exec(ctx, `
		UPDATE bids
		SET status = 'rejected', updated_at = NOW()
		WHERE collection_id = $1 AND id <> $2 AND is_deleted = FALSE
	`, collectionID, bidID)
	if err != nil {
		return nil, err
	}

	accepted, err := scanBid(tx.QueryRow(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE id = $1
	`, bidID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return accepted, nil
}
