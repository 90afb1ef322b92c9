package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

// pgUndefinedTable is the Postgres error code for a missing relation.
const pgUndefinedTable = "42P01"

// LoadPostgres reads a snapshot from a word_embeddings(word TEXT,
// vector FLOAT8[]) table. Like the other loaders it is read-once:
// words resolved at runtime are not written back.
func LoadPostgres(ctx context.Context, dsn string, log *slog.Logger) (*Memory, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT word, vector FROM word_embeddings`)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return nil, fmt.Errorf("%w: table word_embeddings", ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("querying snapshot table: %w", err)
	}
	defer rows.Close()

	raw := make(map[string][]float64)
	for rows.Next() {
		var word string
		var values pq.Float64Array
		if err := rows.Scan(&word, &values); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", ErrMalformedSnapshot, err)
		}
		raw[word] = []float64(values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot rows: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: table word_embeddings is empty", ErrSnapshotNotFound)
	}
	return fromRaw(raw, log)
}
