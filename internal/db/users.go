package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/bidfair/backend/internal/model"
)

const userColumns = `id, name, email, role, hashed_password, is_active, is_verified, is_deleted, created_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.HashedPassword,
		&u.IsActive,
		&u.IsVerified,
		&u.IsDeleted,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Postgres) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (id, name, email, role, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, u.ID, u.Name, u.Email, u.Role, u.HashedPassword))
}

func (db *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND is_deleted = FALSE
	`
	return scanUser(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND is_deleted = FALSE
	`
	return scanUser(db.Pool.QueryRow(ctx, query, email))
}

func (db *Postgres) ListUsers(ctx context.Context, offset, limit int) ([]model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (db *Postgres) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_deleted = FALSE`).Scan(&count)
	return count, err
}

func (db *Postgres) UpdateUser(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, role = $4, hashed_password = $5,
			is_active = $6, is_verified = $7, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query,
		u.ID, u.Name, u.Email, u.Role, u.HashedPassword, u.IsActive, u.IsVerified))
}

func (db *Postgres) SoftDeleteUser(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET is_active = FALSE, is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
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
