package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Migrate creates the tables if they do not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const armColumns = `arm_id, name, manufacturer, payload_kg, reach_mm, speed, precision_mm,
	applications, description, price_min, price_max, features, image`

func (s *PostgresStore) ListArms(ctx context.Context) ([]catalog.Arm, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+armColumns+` FROM armfinder_arms ORDER BY position, arm_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arms []catalog.Arm
	for rows.Next() {
		var a catalog.Arm
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Manufacturer, &a.PayloadKg, &a.ReachMm, &a.Speed, &a.PrecisionMm,
			&a.Applications, &a.Description, &a.Price.Min, &a.Price.Max, &a.Features, &a.Image,
		); err != nil {
			return nil, err
		}
		arms = append(arms, a)
	}
	return arms, rows.Err()
}

// UpsertArms writes the catalog in order, replacing rows with the same id.
func (s *PostgresStore) UpsertArms(ctx context.Context, arms []catalog.Arm) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for i, a := range arms {
		batch.Queue(`
			INSERT INTO armfinder_arms (position, `+armColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (arm_id) DO UPDATE SET
				position = EXCLUDED.position, name = EXCLUDED.name, manufacturer = EXCLUDED.manufacturer,
				payload_kg = EXCLUDED.payload_kg, reach_mm = EXCLUDED.reach_mm, speed = EXCLUDED.speed,
				precision_mm = EXCLUDED.precision_mm, applications = EXCLUDED.applications,
				description = EXCLUDED.description, price_min = EXCLUDED.price_min,
				price_max = EXCLUDED.price_max, features = EXCLUDED.features, image = EXCLUDED.image`,
			i, a.ID, a.Name, a.Manufacturer, a.PayloadKg, a.ReachMm, a.Speed, a.PrecisionMm,
			a.Applications, a.Description, a.Price.Min, a.Price.Max, nonNil(a.Features), a.Image,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, a := range arms {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("upsert arm %s: %w", a.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) RecordMatch(ctx context.Context, m *MatchRecord) error {
	reqJSON, err := json.Marshal(m.Requirements)
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO armfinder_matches (requirements, arm_ids, outcome, client_id)
		VALUES ($1, $2, $3, $4)
		RETURNING match_id, created_at`,
		reqJSON, nonNil(m.ArmIDs), m.Outcome, m.ClientID,
	).Scan(&m.ID, &m.CreatedAt)
}

func (s *PostgresStore) GetMatch(ctx context.Context, id uuid.UUID) (*MatchRecord, error) {
	m := &MatchRecord{}
	var reqJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT match_id, requirements, arm_ids, outcome, client_id, created_at
		FROM armfinder_matches WHERE match_id = $1`, id,
	).Scan(&m.ID, &reqJSON, &m.ArmIDs, &m.Outcome, &m.ClientID, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reqJSON, &m.Requirements); err != nil {
		return nil, fmt.Errorf("decode requirements: %w", err)
	}
	return m, nil
}

func (s *PostgresStore) GetStats(ctx context.Context) (*MatchStats, error) {
	stats := &MatchStats{ArmHits: make(map[string]int)}
	err := s.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE outcome = 'strict'),
			count(*) FILTER (WHERE outcome = 'relaxed'),
			count(*) FILTER (WHERE outcome = 'none')
		FROM armfinder_matches`,
	).Scan(&stats.TotalMatches, &stats.StrictMatches, &stats.RelaxedMatches, &stats.Unmatched)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT arm_id, count(*)
		FROM armfinder_matches, unnest(arm_ids) AS arm_id
		GROUP BY arm_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var armID string
		var n int
		if err := rows.Scan(&armID, &n); err != nil {
			return nil, err
		}
		stats.ArmHits[armID] = n
	}
	return stats, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
