package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/mdobak/go-xerrors"
)

// migrate bootstraps the schema on startup. Statements are idempotent so
// running against an already-initialised database is a no-op.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		technologies TEXT[] NOT NULL,
		live_url TEXT,
		github_url TEXT,
		image_url TEXT,
		featured TEXT NOT NULL DEFAULT 'false',
		"order" TEXT NOT NULL DEFAULT '0',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS certificates (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		issuer TEXT NOT NULL,
		issue_date TEXT NOT NULL,
		credential_id TEXT,
		credential_url TEXT,
		skills TEXT[] NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		level TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		icon TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS social_links (
		id VARCHAR PRIMARY KEY,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT NOT NULL,
		handle TEXT,
		"order" TEXT NOT NULL DEFAULT '0',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT NOT NULL,
		content TEXT NOT NULL,
		cover_image TEXT,
		tags TEXT[] NOT NULL,
		published TEXT NOT NULL DEFAULT 'false',
		published_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS about_content (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL,
		description TEXT NOT NULL,
		profile_image TEXT,
		stats TEXT[],
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

func migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return xerrors.New(err)
		}
	}
	return nil
}
