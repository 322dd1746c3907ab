// Package seeddb loads crawl seeds (school id + website URL) from Postgres.
package seeddb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dominik-korsa/timetable-crawler/internal/crawler"
)

// querier is satisfied by *pgxpool.Pool and by pgxmock's pool, narrowed to
// the one method the loader needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const seedQuery = `SELECT rspo_id, website_url FROM schools WHERE website_url IS NOT NULL ORDER BY rspo_id`

// Load reads every school with a non-null website_url and returns one Seed
// per row, ordered by rspo_id for reproducible runs.
func Load(ctx context.Context, db querier) ([]crawler.Seed, error) {
	rows, err := db.Query(ctx, seedQuery)
	if err != nil {
		return nil, fmt.Errorf("querying schools: %w", err)
	}
	defer rows.Close()

	var seeds []crawler.Seed
	for rows.Next() {
		var s crawler.Seed
		if err := rows.Scan(&s.SchoolID, &s.WebsiteURL); err != nil {
			return nil, fmt.Errorf("scanning school row: %w", err)
		}
		seeds = append(seeds, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading school rows: %w", err)
	}
	return seeds, nil
}
