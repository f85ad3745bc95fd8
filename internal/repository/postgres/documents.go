package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// getDoc loads a single document row and decodes it into T.
func getDoc[T any](ctx context.Context, p *Postgres, table, id string, notFound error, setID func(*T, string)) (*T, error) {
	var raw []byte
	query := fmt.Sprintf("SELECT doc FROM %s WHERE id = $1", table)
	if err := p.db.QueryRow(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		p.log.Errorw("failed to get document", "error", err, "table", table, "id", id)
		return nil, fmt.Errorf("get %s: %w", table, err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", table, id, err)
	}
	setID(&out, id)
	return &out, nil
}

// listDocs loads every row of table whose doc field equals value.
func listDocs[T any](ctx context.Context, p *Postgres, table, field, value string, setID func(*T, string)) ([]T, error) {
	query := fmt.Sprintf("SELECT id, doc FROM %s WHERE doc->>'%s' = $1", table, field)
	rows, err := p.db.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
			doc T
		)
		if err := rows.Scan(&id, &raw); err != nil {
			p.log.Errorw("failed to scan document", "error", err, "table", table)
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", table, id, err)
		}
		setID(&doc, id)
		out = append(out, doc)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate documents", "error", err, "table", table)
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}
