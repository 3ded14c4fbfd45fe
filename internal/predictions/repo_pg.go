package predictions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const predictionColumns = `id, parse_id, target_role, timeframe_days, role_fallback, low_confidence,
       confidence, record, prediction, processing_ms, created_at`

// Create inserts a new prediction.
func (r *PGRepo) Create(ctx context.Context, p StoredPrediction) error {
	const query = `
INSERT INTO predictions (
	id, parse_id, target_role, timeframe_days, role_fallback, low_confidence,
	confidence, record, prediction, processing_ms, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	recordPayload, err := json.Marshal(p.Record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	predictionPayload, err := json.Marshal(p.Prediction)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		p.ID,
		p.ParseID,
		p.TargetRole,
		p.TimeframeDays,
		p.RoleFallback,
		p.LowConfidence,
		p.Confidence,
		string(recordPayload),
		string(predictionPayload),
		p.ProcessingMs,
		p.CreatedAt,
	)
	return err
}

// GetByID returns a prediction by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (StoredPrediction, error) {
	query := `
SELECT ` + predictionColumns + `
FROM predictions
WHERE id = $1
LIMIT 1`
	p, err := scanPrediction(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredPrediction{}, ErrNotFound
		}
		return StoredPrediction{}, err
	}
	return p, nil
}

// List returns predictions ordered newest-first.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]StoredPrediction, error) {
	filter = filter.normalized()
	query := `
SELECT ` + predictionColumns + `
FROM predictions
WHERE ($1 = '' OR parse_id = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, filter.ParseID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredPrediction{}
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrediction(row rowScanner) (StoredPrediction, error) {
	var p StoredPrediction
	var record, prediction []byte
	if err := row.Scan(
		&p.ID,
		&p.ParseID,
		&p.TargetRole,
		&p.TimeframeDays,
		&p.RoleFallback,
		&p.LowConfidence,
		&p.Confidence,
		&record,
		&prediction,
		&p.ProcessingMs,
		&p.CreatedAt,
	); err != nil {
		return StoredPrediction{}, err
	}
	if len(record) > 0 {
		if err := json.Unmarshal(record, &p.Record); err != nil {
			return StoredPrediction{}, fmt.Errorf("decode record %s: %w", p.ID, err)
		}
	}
	p.Record = p.Record.Normalize()
	if len(prediction) > 0 {
		if err := json.Unmarshal(prediction, &p.Prediction); err != nil {
			return StoredPrediction{}, fmt.Errorf("decode prediction %s: %w", p.ID, err)
		}
	}
	return p, nil
}
