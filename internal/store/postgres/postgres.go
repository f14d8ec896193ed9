// Package postgres implements store.Store on a single JSONB documents table,
// for deployments that run without a Firebase project's Firestore.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acidpbl/homequest/internal/store"
)

type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	const q = `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var raw []byte
	err := s.db.QueryRow(ctx, q, collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Document{}, store.ErrNotFound
	}
	if err != nil {
		return store.Document{}, fmt.Errorf("postgres get %s/%s: %w", collection, id, err)
	}

	data, err := decodeData(raw)
	if err != nil {
		return store.Document{}, err
	}
	return store.Document{ID: id, Data: data}, nil
}

func (s *Store) Query(ctx context.Context, collection string, preds []store.Predicate) ([]store.Document, error) {
	q, args, err := buildQuery(collection, preds)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres query %s: %w", collection, err)
	}
	defer rows.Close()

	var out []store.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("postgres query %s: %w", collection, err)
		}
		data, err := decodeData(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, store.Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres query %s: %w", collection, err)
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("postgres set %s/%s: %w", collection, id, err)
	}

	const q = `
INSERT INTO documents (collection, id, data)
VALUES ($1, $2, $3)
ON CONFLICT (collection, id) DO UPDATE
SET data = EXCLUDED.data, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, collection, id, raw); err != nil {
		return fmt.Errorf("postgres set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("postgres update %s/%s: %w", collection, id, err)
	}

	const q = `
UPDATE documents
SET data = data || $3::jsonb, updated_at = now()
WHERE collection = $1 AND id = $2`

	tag, err := s.db.Exec(ctx, q, collection, id, raw)
	if err != nil {
		return fmt.Errorf("postgres update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM documents WHERE collection = $1 AND id = $2`

	if _, err := s.db.Exec(ctx, q, collection, id); err != nil {
		return fmt.Errorf("postgres delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// buildQuery maps predicates onto JSONB containment so queried values and
// stored values go through the same JSON encoding (times, numbers).
func buildQuery(collection string, preds []store.Predicate) (string, []interface{}, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []interface{}{collection}

	for _, p := range preds {
		switch p.Op {
		case store.OpEqual:
			obj, err := json.Marshal(map[string]interface{}{p.Field: p.Value})
			if err != nil {
				return "", nil, fmt.Errorf("encode predicate %s: %w", p.Field, err)
			}
			args = append(args, obj)
			fmt.Fprintf(&sb, " AND data @> $%d::jsonb", len(args))
		case store.OpArrayContains:
			arr, err := json.Marshal([]interface{}{p.Value})
			if err != nil {
				return "", nil, fmt.Errorf("encode predicate %s: %w", p.Field, err)
			}
			args = append(args, p.Field, arr)
			fmt.Fprintf(&sb, " AND data -> $%d @> $%d::jsonb", len(args)-1, len(args))
		default:
			return "", nil, fmt.Errorf("unsupported predicate operator %q", p.Op)
		}
	}
	return sb.String(), args, nil
}

func decodeData(raw []byte) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return data, nil
}
