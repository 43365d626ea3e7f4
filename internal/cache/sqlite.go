package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/dbx"
	"github.com/lunaris-space/lunaris-go/query"
)

// ErrMiss is returned when no cached page exists for the requested cursor.
var ErrMiss = errors.New("cache miss")

// encryptedPage is one sealed page row as stored in the pages table.
type encryptedPage struct {
	Ciphertext []byte
	Nonce      []byte
}

// pageRepository persists sealed pages keyed by collection and cursor. It is
// bound to a DBTX, so the same code runs inside or outside a transaction.
type pageRepository struct {
	db dbx.DBTX
}

func newPageRepository(db dbx.DBTX) *pageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) upsert(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, page encryptedPage) error {
	stmt := `INSERT INTO pages (collection_id, starting_after, page_limit, ciphertext, nonce)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(collection_id, starting_after, page_limit) DO UPDATE SET
				ciphertext = excluded.ciphertext,
				nonce = excluded.nonce,
				stored_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.ExecContext(ctx, stmt,
		collectionID.String(), cursor.StartingAfter.String(), cursor.Limit, page.Ciphertext, page.Nonce)
	if err != nil {
		return fmt.Errorf("failed to upsert page: %w", err)
	}
	return nil
}

func (r *pageRepository) get(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor) (*encryptedPage, error) {
	stmt := `SELECT ciphertext, nonce FROM pages
			WHERE collection_id = ? AND starting_after = ? AND page_limit = ?`
	row := r.db.QueryRowContext(ctx, stmt,
		collectionID.String(), cursor.StartingAfter.String(), cursor.Limit)

	page := &encryptedPage{}
	if err := row.Scan(&page.Ciphertext, &page.Nonce); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to select page: %w", err)
	}
	return page, nil
}

func (r *pageRepository) deleteByCollection(ctx context.Context, collectionID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE collection_id = ?`, collectionID.String()); err != nil {
		return fmt.Errorf("failed to delete pages: %w", err)
	}
	return nil
}

// metaRepository stores the single key-derivation row for the cache file.
type metaRepository struct {
	db dbx.DBTX
}

func newMetaRepository(db dbx.DBTX) *metaRepository {
	return &metaRepository{db: db}
}

func (r *metaRepository) get(ctx context.Context) (salt, verifier []byte, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT salt, verifier FROM cache_meta WHERE id = 1`)
	if err := row.Scan(&salt, &verifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to select cache meta: %w", err)
	}
	return salt, verifier, nil
}

func (r *metaRepository) init(ctx context.Context, salt, verifier []byte) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO cache_meta (id, salt, verifier) VALUES (1, ?, ?)`, salt, verifier); err != nil {
		return fmt.Errorf("failed to insert cache meta: %w", err)
	}
	return nil
}
