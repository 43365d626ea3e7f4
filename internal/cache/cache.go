// Package cache implements an encrypted local page cache backed by SQLite.
// Query pages are serialized to JSON, sealed with AES-GCM and stored keyed by
// collection and cursor, so repeated queries against slow links can be
// replayed offline.
package cache

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/lunaris-space/lunaris-go/internal/cache/migrations"
	"github.com/lunaris-space/lunaris-go/internal/cryptox"
	"github.com/lunaris-space/lunaris-go/internal/dbx"
	"github.com/lunaris-space/lunaris-go/query"
)

// ErrWrongSecret is returned by Open when the cache file was initialized with
// a different secret.
var ErrWrongSecret = errors.New("cache secret does not match the cache file")

// Cache is an encrypted page cache. All pages in one cache file are sealed
// under a single key derived from the secret passed to Open.
type Cache struct {
	db  *sql.DB
	key []byte
}

// gooseSetDialect is a seam for testing goose.SetDialect.
var gooseSetDialect = goose.SetDialect

// RunMigrations sets up goose with the embedded migrations and applies them.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := gooseSetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens or creates a cache file at dsn and unlocks it with secret. A new
// file records a fresh salt and a key verifier; an existing file is checked
// against the verifier before any page is touched.
func Open(ctx context.Context, dsn string, secret []byte) (*Cache, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	key, err := unlock(ctx, db, secret)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db, key: key}, nil
}

func unlock(ctx context.Context, db *sql.DB, secret []byte) ([]byte, error) {
	var key []byte
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := newMetaRepository(tx)
		salt, verifier, err := meta.get(ctx)
		if err != nil {
			return err
		}

		if salt == nil {
			salt, err = cryptox.NewSalt()
			if err != nil {
				return err
			}
			key = cryptox.DeriveKey(secret, salt)
			return meta.init(ctx, salt, cryptox.KeyVerifier(key))
		}

		key = cryptox.DeriveKey(secret, salt)
		if subtle.ConstantTimeCompare(cryptox.KeyVerifier(key), verifier) != 1 {
			return ErrWrongSecret
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return key, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// StorePage seals page and stores it under the collection and the cursor that
// produced it, replacing any previous page for the same cursor.
func (c *Cache) StorePage(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, page any) error {
	plaintext, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("serializing page: %w", err)
	}
	ciphertext, nonce, err := cryptox.Encrypt(plaintext, c.key)
	if err != nil {
		return fmt.Errorf("sealing page: %w", err)
	}

	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return newPageRepository(tx).upsert(ctx, collectionID, cursor, encryptedPage{
			Ciphertext: ciphertext,
			Nonce:      nonce,
		})
	})
}

// LoadPage looks up the page stored for the cursor, unseals it and
// deserializes it into v. It returns ErrMiss when no page is stored.
func (c *Cache) LoadPage(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, v any) error {
	page, err := newPageRepository(c.db).get(ctx, collectionID, cursor)
	if err != nil {
		return err
	}

	plaintext, err := cryptox.Decrypt(page.Ciphertext, page.Nonce, c.key)
	if err != nil {
		return fmt.Errorf("unsealing page: %w", err)
	}
	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("deserializing page: %w", err)
	}
	return nil
}

// Invalidate drops every page cached for the collection.
func (c *Cache) Invalidate(ctx context.Context, collectionID uuid.UUID) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return newPageRepository(tx).deleteByCollection(ctx, collectionID)
	})
}
