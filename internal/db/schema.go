package db

import "context"

// EnsureSchema creates the four marketplace tables if they do not exist.
// IDs are UUIDs generated by the application, not the database.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'customer',
			hashed_password VARCHAR(255) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS collections (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			stock INT NOT NULL DEFAULT 0,
			price NUMERIC(10,2) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS bids (
			id UUID PRIMARY KEY,
			collection_id UUID NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			price NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'accepted', 'rejected')),
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS tokens (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS bids_collection_id_idx ON bids(collection_id)`,
		`CREATE INDEX IF NOT EXISTS bids_user_id_idx ON bids(user_id)`,
		`CREATE INDEX IF NOT EXISTS collections_user_id_idx ON collections(user_id)`,
		`CREATE INDEX IF NOT EXISTS tokens_user_id_idx ON tokens(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
