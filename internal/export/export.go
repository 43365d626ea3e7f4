// Package export copies query results into a PostgreSQL table so downstream
// tooling can work with plain SQL instead of the remote API.
package export

import (
	"context"
	"database/sql"
	"iter"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lunaris-space/lunaris-go/datasets"
	"github.com/lunaris-space/lunaris-go/internal/dbx"
	"github.com/lunaris-space/lunaris-go/internal/export/migrations"
)

// batchSize bounds how many datapoints are written per transaction.
const batchSize = 1000

// Exporter streams datapoints into PostgreSQL in batched transactions.
type Exporter struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Open connects to PostgreSQL via the pgx stdlib driver and applies the
// export schema migrations.
func Open(ctx context.Context, dsn string) (*Exporter, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Exporter{db: db}, nil
}

// NewExporter wraps an already-open database handle. The caller is
// responsible for the schema.
func NewExporter(db *sql.DB) *Exporter {
	return &Exporter{db: db}
}

// Close closes the underlying database.
func (e *Exporter) Close() error {
	return e.db.Close()
}

// Export consumes the datapoint sequence and upserts each point, committing
// every batchSize points. It returns the number of points written. On a mid-
// sequence failure the completed batches stay committed.
func (e *Exporter) Export(ctx context.Context, collectionID uuid.UUID, points iter.Seq2[datasets.Datapoint, error]) (int64, error) {
	var written int64

	batch := make([]datasets.Datapoint, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := dbx.WithTx(ctx, e.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := NewPostgresRepository(tx)
			for _, point := range batch {
				if err := repo.CreateOrUpdate(ctx, collectionID, point); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		written += int64(len(batch))
		batch = batch[:0]
		return nil
	}

	for point, err := range points {
		if err != nil {
			// keep what we already committed, report the partial count
			return written, err
		}
		batch = append(batch, point)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return written, err
			}
		}
	}
	if err := flush(); err != nil {
		return written, err
	}
	return written, nil
}

// Count returns the number of exported rows for a collection.
func (e *Exporter) Count(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	return NewPostgresRepository(e.db).CountByCollection(ctx, collectionID)
}

// Drop removes every exported row of a collection.
func (e *Exporter) Drop(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	return NewPostgresRepository(e.db).DeleteByCollection(ctx, collectionID)
}
