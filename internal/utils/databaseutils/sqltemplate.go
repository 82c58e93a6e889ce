// Package databaseutils wraps database/sql with a per-call timeout and a
// generic row extractor, so store methods stay focused on their SQL.
package databaseutils

import (
	"context"
	"database/sql"
	"time"
)

type SQLTemplate struct {
	DB      *sql.DB
	Timeout time.Duration
}

func NewSQLTemplate(db *sql.DB, timeout time.Duration) *SQLTemplate {
	return &SQLTemplate{
		DB:      db,
		Timeout: timeout,
	}
}

// QueryForList runs query and extracts every row. It always returns a
// non-nil slice so an empty result serialises as [] rather than null.
func QueryForList[T any](template *SQLTemplate, query string, extract func(rows *sql.Rows) (T, error), args ...any) ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), template.Timeout)
	defer cancel()

	rows, err := template.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []T{}
	for rows.Next() {
		item, err := extract(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
