package cli

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/datasets"
	"github.com/lunaris-space/lunaris-go/internal/cache"
	"github.com/lunaris-space/lunaris-go/query"
)

// pageCache adapts the encrypted SQLite cache to the datasets.PageCache
// interface.
type pageCache struct {
	c *cache.Cache
}

var _ datasets.PageCache = pageCache{}

func (p pageCache) Load(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, page *datasets.DatapointPage) (bool, error) {
	err := p.c.LoadPage(ctx, collectionID, cursor, page)
	if errors.Is(err, cache.ErrMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p pageCache) Store(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, page *datasets.DatapointPage) error {
	return p.c.StorePage(ctx, collectionID, cursor, page)
}
