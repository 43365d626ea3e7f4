package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/datasets"
	"github.com/lunaris-space/lunaris-go/internal/dbx"
)

// PostgresRepository writes exported datapoints over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateOrUpdate upserts a datapoint by ID. Re-running an export over the
// same interval overwrites the previous rows instead of failing.
func (r *PostgresRepository) CreateOrUpdate(ctx context.Context, collectionID uuid.UUID, point datasets.Datapoint) error {
	query := `
		INSERT INTO datapoints (id, collection_id, event_time, ingestion_time, type_url, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			event_time = EXCLUDED.event_time,
			ingestion_time = EXCLUDED.ingestion_time,
			type_url = EXCLUDED.type_url,
			payload = EXCLUDED.payload;
	`
	_, err := r.db.ExecContext(ctx, query,
		point.Meta.ID, collectionID, point.Meta.EventTime,
		nullableTime(point.Meta.IngestionTime), point.TypeURL, point.Data)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// CountByCollection returns the number of exported rows for a collection.
func (r *PostgresRepository) CountByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	var n int64
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM datapoints WHERE collection_id=$1`, collectionID)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count datapoints: %w", err)
	}
	return n, nil
}

// DeleteByCollection removes every exported row of a collection and returns
// the number of rows removed.
func (r *PostgresRepository) DeleteByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM datapoints WHERE collection_id=$1`, collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete datapoints: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
