// README: Quote history store backed by PostgreSQL.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viagem/internal/types"
)

var ErrNotFound = errors.New("quote not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the quotes table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS quotes (
			id           BIGSERIAL PRIMARY KEY,
			chat_id      BIGINT NOT NULL,
			origin_label TEXT NOT NULL,
			dest_label   TEXT NOT NULL,
			distance_km  DOUBLE PRECISION NOT NULL,
			duration_min DOUBLE PRECISION NOT NULL,
			category     TEXT NOT NULL,
			condition    TEXT NOT NULL,
			total        DOUBLE PRECISION NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (s *Store) SaveQuote(ctx context.Context, rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO quotes (
			chat_id, origin_label, dest_label,
			distance_km, duration_min, category, condition, total, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		int64(rec.ChatID),
		rec.OriginLabel,
		rec.DestLabel,
		rec.DistanceKm,
		rec.DurationMin,
		rec.Category,
		rec.Condition,
		rec.Total,
		rec.CreatedAt,
	)
	return err
}

func (s *Store) ListRecent(ctx context.Context, chatID types.ChatID, limit int) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, chat_id, origin_label, dest_label,
		       distance_km, duration_min, category, condition, total, created_at
		FROM quotes
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, int64(chatID), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var chat int64
		if err := rows.Scan(
			&rec.ID, &chat, &rec.OriginLabel, &rec.DestLabel,
			&rec.DistanceKm, &rec.DurationMin, &rec.Category, &rec.Condition,
			&rec.Total, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.ChatID = types.ChatID(chat)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, chat_id, origin_label, dest_label,
		       distance_km, duration_min, category, condition, total, created_at
		FROM quotes
		WHERE id = $1`, id,
	)

	var rec Record
	var chat int64
	err := row.Scan(
		&rec.ID, &chat, &rec.OriginLabel, &rec.DestLabel,
		&rec.DistanceKm, &rec.DurationMin, &rec.Category, &rec.Condition,
		&rec.Total, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	rec.ChatID = types.ChatID(chat)
	return rec, nil
}
