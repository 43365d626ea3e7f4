package grpcx

import (
	"context"
	"iter"

	"github.com/lunaris-space/lunaris-go/query"
)

// Page is one response of a paginated endpoint. NextCursor returns the cursor
// for the following page; a cursor without a starting-after id means the
// result set is exhausted.
type Page interface {
	NextCursor() query.Cursor
}

// PageFunc fetches a single page for the given cursor. It usually closes over
// a stub method and all query parameters except the cursor, and is expected
// to return errors already translated by Invoke.
type PageFunc[P Page] func(ctx context.Context, cursor query.Cursor) (P, error)

// Paginated drains a paginated endpoint into a lazy sequence of pages.
//
// The first request uses the initial cursor; each following request forwards
// the cursor of the previous response. Requests are strictly sequential and
// issued on demand: no page n+1 request is made before page n was observed,
// and none at all once the consumer stops iterating. An empty page does not
// end the sequence, only a next cursor without a starting-after id does.
//
// A fetch error ends the sequence at the failing page. Pages yielded before
// it remain valid, so a consumer that saw k pages has a correct prefix of the
// result set.
func Paginated[P Page](ctx context.Context, fetch PageFunc[P], initial query.Cursor) iter.Seq2[P, error] {
	return func(yield func(P, error) bool) {
		cursor := initial
		for {
			page, err := fetch(ctx, cursor)
			if err != nil {
				var zero P
				yield(zero, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			next := page.NextCursor()
			if !next.HasMore() {
				return
			}
			cursor = next
		}
	}
}

// Flatten turns a sequence of pages into a sequence of their items. An error
// in the page sequence is yielded once, paired with the zero item, and ends
// the sequence.
func Flatten[P Page, T any](pages iter.Seq2[P, error], items func(P) []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for page, err := range pages {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items(page) {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}
