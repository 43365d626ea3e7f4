// Package query contains the value types used to express datapoint queries:
// pagination cursors, time intervals and id intervals. All of them convert
// to and from their wire form without exposing wire types to callers.
package query

import (
	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
)

// Cursor is an opaque pagination token: an optional page size limit and an
// exclusive lower bound to resume after. The zero Cursor requests the first
// page with the server default page size.
//
// A StartingAfter of uuid.Nil means "start from the beginning". The all-zero
// id is reserved for that purpose and is never an assigned datapoint id, so
// it is normalized to absent on both marshal and unmarshal.
type Cursor struct {
	// Limit is the maximum number of items per page. 0 means server default.
	Limit uint64
	// StartingAfter is the exclusive lower bound to resume after.
	StartingAfter uuid.UUID
}

// NewCursor returns a cursor requesting pages of the given size from the
// beginning of the result set.
func NewCursor(limit uint64) Cursor {
	return Cursor{Limit: limit}
}

// HasMore reports whether the cursor points into a result set, i.e. whether a
// request with it would continue a stream rather than start one. A cursor
// returned by the server without this set signals an exhausted stream.
func (c Cursor) HasMore() bool {
	return c.StartingAfter != uuid.Nil
}

// CursorFromMessage converts a wire cursor. A nil message is the zero Cursor.
func CursorFromMessage(page *proto.Pagination) (Cursor, error) {
	if page == nil {
		return Cursor{}, nil
	}
	after, err := uuidx.FromMessage(page.StartingAfter)
	if err != nil {
		return Cursor{}, err
	}
	return Cursor{Limit: page.Limit, StartingAfter: after}, nil
}

// ToMessage converts the cursor to its wire form.
func (c Cursor) ToMessage() *proto.Pagination {
	return &proto.Pagination{
		Limit:         c.Limit,
		StartingAfter: uuidx.ToMessage(c.StartingAfter),
	}
}
