package datasets

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/grpcx"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
	"github.com/lunaris-space/lunaris-go/query"
)

// ErrNoQueryExtent is returned when a query specifies neither a time interval
// nor an id interval.
var ErrNoQueryExtent = errors.New("query requires a time interval or an id interval")

// ErrConflictingQueryExtent is returned when a query specifies both a time
// interval and an id interval.
var ErrConflictingQueryExtent = errors.New("query cannot combine a time interval and an id interval")

// Collection provides access to the datapoints of one collection.
type Collection struct {
	Info CollectionInfo

	id  uuid.UUID
	svc *service
}

func newCollection(svc *service, info CollectionInfo) (*Collection, error) {
	id, err := uuid.Parse(info.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid collection id %q: %w", info.ID, err)
	}
	return &Collection{Info: info, id: id, svc: svc}, nil
}

// ID returns the collection identifier.
func (c *Collection) ID() uuid.UUID {
	return c.id
}

// PageCache caches query pages keyed by collection and cursor. Load reports
// whether a page was found; a miss is not an error.
type PageCache interface {
	Load(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, page *DatapointPage) (bool, error)
	Store(ctx context.Context, collectionID uuid.UUID, cursor query.Cursor, page *DatapointPage) error
}

// QueryOption adjusts what a datapoint query returns.
type QueryOption func(*queryOptions)

type queryOptions struct {
	timeInterval *query.TimeInterval
	idInterval   *query.IDInterval
	skipData     bool
	skipMeta     bool
	pageSize     uint64
	cache        PageCache
}

// WithTimeInterval restricts the query to datapoints within the interval.
func WithTimeInterval(interval query.TimeInterval) QueryOption {
	return func(o *queryOptions) { o.timeInterval = &interval }
}

// WithIDInterval restricts the query to datapoints within the id interval.
func WithIDInterval(interval query.IDInterval) QueryOption {
	return func(o *queryOptions) { o.idInterval = &interval }
}

// WithSkipData omits datapoint payloads, returning only envelope metadata.
func WithSkipData() QueryOption {
	return func(o *queryOptions) { o.skipData = true }
}

// WithSkipMeta omits envelope metadata, returning only payloads.
func WithSkipMeta() QueryOption {
	return func(o *queryOptions) { o.skipMeta = true }
}

// WithPageSize overrides the server's default page size.
func WithPageSize(n uint64) QueryOption {
	return func(o *queryOptions) { o.pageSize = n }
}

// WithPageCache serves pages from the cache when present and stores fetched
// pages back into it. Cache writes are best-effort.
func WithPageCache(pc PageCache) QueryOption {
	return func(o *queryOptions) { o.cache = pc }
}

func collectQueryOptions(opts []QueryOption) (queryOptions, error) {
	var o queryOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeInterval == nil && o.idInterval == nil {
		return o, ErrNoQueryExtent
	}
	if o.timeInterval != nil && o.idInterval != nil {
		return o, ErrConflictingQueryExtent
	}
	return o, nil
}

func failedSeq[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// QueryPages runs a datapoint query and returns its pages as a lazy sequence.
// One RPC is issued per consumed page; stopping early stops the requests. An
// error ends the sequence, previously yielded pages remain a valid prefix of
// the result set.
func (c *Collection) QueryPages(ctx context.Context, opts ...QueryOption) iter.Seq2[*DatapointPage, error] {
	o, err := collectQueryOptions(opts)
	if err != nil {
		return failedSeq[*DatapointPage](err)
	}

	fetch := func(ctx context.Context, cursor query.Cursor) (*DatapointPage, error) {
		if o.cache != nil {
			var page DatapointPage
			found, err := o.cache.Load(ctx, c.id, cursor, &page)
			if err != nil {
				return nil, err
			}
			if found {
				return &page, nil
			}
		}

		msg, err := c.svc.queryPage(ctx, c.id, o.timeInterval, o.idInterval, o.skipData, o.skipMeta, cursor)
		if err != nil {
			return nil, err
		}
		page, err := datapointPageFromMessage(msg)
		if err != nil {
			return nil, err
		}
		if o.cache != nil {
			_ = o.cache.Store(ctx, c.id, cursor, page)
		}
		return page, nil
	}
	return grpcx.Paginated(ctx, fetch, query.NewCursor(o.pageSize))
}

// Query is QueryPages flattened to individual datapoints.
func (c *Collection) Query(ctx context.Context, opts ...QueryOption) iter.Seq2[Datapoint, error] {
	return grpcx.Flatten(c.QueryPages(ctx, opts...), func(p *DatapointPage) []Datapoint {
		return p.Datapoints()
	})
}

// GetDatapoint fetches a single datapoint by id.
func (c *Collection) GetDatapoint(ctx context.Context, id uuid.UUID) (Datapoint, error) {
	msg, err := c.svc.getDatapoint(ctx, c.id, id, false)
	if err != nil {
		return Datapoint{}, err
	}
	return datapointFromMessage(msg)
}

// IngestResult summarizes an ingestion request.
type IngestResult struct {
	NumCreated   uint64
	NumExisting  uint64
	DatapointIDs []uuid.UUID
}

// Ingest writes a batch of datapoints into the collection. With allowExisting
// set, datapoints that already exist are reported instead of rejected.
func (c *Collection) Ingest(ctx context.Context, page *DatapointPage, allowExisting bool) (IngestResult, error) {
	resp, err := c.svc.ingestDatapoints(ctx, c.id, page.toMessage(), allowExisting)
	if err != nil {
		return IngestResult{}, err
	}

	result := IngestResult{NumCreated: resp.NumCreated, NumExisting: resp.NumExisting}
	for _, msg := range resp.DatapointIds {
		id, err := uuidx.FromMessage(msg)
		if err != nil {
			return IngestResult{}, fmt.Errorf("invalid ingested datapoint id: %w", err)
		}
		result.DatapointIDs = append(result.DatapointIDs, id)
	}
	return result, nil
}

// Delete removes the given datapoints from the collection and returns how
// many were actually deleted.
func (c *Collection) Delete(ctx context.Context, ids []uuid.UUID) (uint64, error) {
	resp, err := c.svc.deleteDatapoints(ctx, c.id, ids)
	if err != nil {
		return 0, err
	}
	return resp.NumDeleted, nil
}
