package db

import (
	"context"

	"github.com/bidfair/backend/internal/model"
)

func (db *Postgres) InsertToken(ctx context.Context, t *model.Token) (*model.Token, error) {
	query := `
		INSERT INTO tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, token, expires_at, created_at
	`
	var token model.Token
	err := db.Pool.QueryRow(ctx, query, t.ID, t.UserID, t.Token, t.ExpiresAt).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (db *Postgres) GetToken(ctx context.Context, userID, token string) (*model.Token, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM tokens
		WHERE user_id = $1 AND token = $2
	`
	var t model.Token
	err := db.Pool.QueryRow(ctx, query, userID, token).Scan(
		&t.ID,
		&t.UserID,
		&t.Token,
		&t.ExpiresAt,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) DeleteToken(ctx context.Context, userID, token string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1 AND token = $2`, userID, token)
	return err
}

func (db *Postgres) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
