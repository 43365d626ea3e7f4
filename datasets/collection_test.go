package datasets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lunaris-space/lunaris-go/internal/grpcx"
	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
	"github.com/lunaris-space/lunaris-go/query"
)

func testCollection(t *testing.T, f *fakeService) *Collection {
	t.Helper()
	collection, err := newCollection(newTestClient(f).svc, CollectionInfo{ID: uuid.NewString(), Name: "S1A"})
	require.NoError(t, err)
	return collection
}

func wirePage(ids []uuid.UUID, next uuid.UUID) *proto.DatapointPage {
	page := &proto.DatapointPage{NextPage: &proto.Pagination{Limit: 2, StartingAfter: uuidx.ToMessage(next)}}
	for _, id := range ids {
		page.Meta = append(page.Meta, &proto.DatapointMetadata{Id: uuidx.ToMessage(id)})
	}
	return page
}

func queryInterval() query.TimeInterval {
	return query.NewTimeInterval(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	)
}

func TestQueryPagesFollowsCursors(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	f := &fakeService{queryResps: []*proto.DatapointPage{
		wirePage(ids[:2], ids[1]),
		wirePage(ids[2:], uuid.Nil), // absent next id ends the stream
	}}
	collection := testCollection(t, f)

	var pages []*DatapointPage
	for page, err := range collection.QueryPages(context.Background(), WithTimeInterval(queryInterval()), WithPageSize(2)) {
		require.NoError(t, err)
		pages = append(pages, page)
	}

	require.Len(t, pages, 2)
	require.Len(t, f.queryReqs, 2)

	// first request starts from the beginning with the requested page size
	require.Equal(t, uint64(2), f.queryReqs[0].Page.Limit)
	require.Nil(t, f.queryReqs[0].Page.StartingAfter)
	// second request forwards the cursor of the first response
	require.Equal(t, uuidx.ToMessage(ids[1]), f.queryReqs[1].Page.StartingAfter)

	require.Equal(t, ids[1], pages[0].Meta[1].ID)
	require.False(t, pages[1].NextPage.HasMore())
}

func TestQueryPagesEmptyPageContinues(t *testing.T) {
	id := uuid.New()
	f := &fakeService{queryResps: []*proto.DatapointPage{
		wirePage(nil, id),
		wirePage([]uuid.UUID{id}, uuid.Nil),
	}}
	collection := testCollection(t, f)

	pageCount := 0
	for _, err := range collection.QueryPages(context.Background(), WithTimeInterval(queryInterval())) {
		require.NoError(t, err)
		pageCount++
	}

	require.Equal(t, 2, pageCount)
	require.Len(t, f.queryReqs, 2)
}

func TestQueryPagesPartialFailure(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	f := &fakeService{
		queryResps: []*proto.DatapointPage{wirePage(ids[:1], ids[0]), wirePage(ids[1:], ids[1]), nil},
		queryErrs:  []error{nil, nil, status.Error(codes.Internal, "storage offline")},
	}
	collection := testCollection(t, f)

	var pages []*DatapointPage
	var streamErr error
	for page, err := range collection.QueryPages(context.Background(), WithTimeInterval(queryInterval())) {
		if err != nil {
			streamErr = err
			continue
		}
		pages = append(pages, page)
	}

	require.Len(t, pages, 2)
	var internal *grpcx.InternalServerError
	require.ErrorAs(t, streamErr, &internal)
	require.Len(t, f.queryReqs, 3)
}

func TestQueryFlattensDatapoints(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	f := &fakeService{queryResps: []*proto.DatapointPage{
		wirePage(ids[:2], ids[1]),
		wirePage(ids[2:], uuid.Nil),
	}}
	collection := testCollection(t, f)

	var got []uuid.UUID
	for point, err := range collection.Query(context.Background(), WithTimeInterval(queryInterval())) {
		require.NoError(t, err)
		got = append(got, point.Meta.ID)
	}

	require.Equal(t, ids, got)
}

func TestQueryRequiresExactlyOneExtent(t *testing.T) {
	collection := testCollection(t, &fakeService{})

	for _, err := range collection.QueryPages(context.Background()) {
		require.ErrorIs(t, err, ErrNoQueryExtent)
	}

	both := collection.QueryPages(context.Background(),
		WithTimeInterval(queryInterval()),
		WithIDInterval(query.NewIDInterval(uuid.New(), uuid.New())),
	)
	for _, err := range both {
		require.ErrorIs(t, err, ErrConflictingQueryExtent)
	}
}

func TestQueryByIDInterval(t *testing.T) {
	interval := query.NewIDInterval(uuid.New(), uuid.New())
	f := &fakeService{queryResps: []*proto.DatapointPage{wirePage(nil, uuid.Nil)}}
	collection := testCollection(t, f)

	for _, err := range collection.QueryPages(context.Background(), WithIDInterval(interval)) {
		require.NoError(t, err)
	}

	require.Len(t, f.queryReqs, 1)
	require.Nil(t, f.queryReqs[0].TimeInterval)
	require.Equal(t, interval.ToMessage(), f.queryReqs[0].DatapointInterval)
}

func TestGetDatapoint(t *testing.T) {
	id := uuid.New()
	f := &fakeService{datapointResp: &proto.Datapoint{
		Meta: &proto.DatapointMetadata{Id: uuidx.ToMessage(id)},
		Data: &proto.Any{TypeUrl: "lunaris.v1.ErsSarGranule", Value: []byte{1, 2, 3}},
	}}
	collection := testCollection(t, f)

	point, err := collection.GetDatapoint(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, point.Meta.ID)
	require.Equal(t, "lunaris.v1.ErsSarGranule", point.TypeURL)
	require.Equal(t, []byte{1, 2, 3}, point.Data)
}

func TestIngestAndDelete(t *testing.T) {
	created := uuid.New()
	f := &fakeService{
		ingestResp: &proto.IngestDatapointsResponse{NumCreated: 1, DatapointIds: []*proto.ID{uuidx.ToMessage(created)}},
		deleteResp: &proto.DeleteDatapointsResponse{NumDeleted: 1},
	}
	collection := testCollection(t, f)

	page := &DatapointPage{
		Meta:    []DatapointMeta{{EventTime: time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)}},
		TypeURL: "lunaris.v1.ErsSarGranule",
		Data:    [][]byte{{4, 5}},
	}
	result, err := collection.Ingest(context.Background(), page, true)
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.NumCreated)
	require.Equal(t, []uuid.UUID{created}, result.DatapointIDs)
	require.True(t, f.lastIngestReq.AllowExisting)
	require.Equal(t, "lunaris.v1.ErsSarGranule", f.lastIngestReq.Datapoints.Data.TypeUrl)

	deleted, err := collection.Delete(context.Background(), []uuid.UUID{created})
	require.NoError(t, err)
	require.Equal(t, uint64(1), deleted)
	require.Equal(t, uuidx.ToMessage(created), f.lastDeleteReq.DatapointIds[0])
}

// memPageCache is an in-memory PageCache for tests.
type memPageCache struct {
	pages map[query.Cursor]*DatapointPage
}

func (m *memPageCache) Load(_ context.Context, _ uuid.UUID, cursor query.Cursor, page *DatapointPage) (bool, error) {
	cached, ok := m.pages[cursor]
	if !ok {
		return false, nil
	}
	*page = *cached
	return true, nil
}

func (m *memPageCache) Store(_ context.Context, _ uuid.UUID, cursor query.Cursor, page *DatapointPage) error {
	m.pages[cursor] = page
	return nil
}

func TestQueryPagesStoresFetchedPages(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	f := &fakeService{queryResps: []*proto.DatapointPage{
		wirePage(ids[:1], ids[0]),
		wirePage(ids[1:], uuid.Nil),
	}}
	collection := testCollection(t, f)
	pc := &memPageCache{pages: map[query.Cursor]*DatapointPage{}}

	for _, err := range collection.QueryPages(context.Background(), WithTimeInterval(queryInterval()), WithPageCache(pc)) {
		require.NoError(t, err)
	}

	require.Len(t, f.queryReqs, 2)
	require.Len(t, pc.pages, 2)
}

func TestQueryPagesServedFromCache(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	pc := &memPageCache{pages: map[query.Cursor]*DatapointPage{}}

	first := &fakeService{queryResps: []*proto.DatapointPage{
		wirePage(ids[:1], ids[0]),
		wirePage(ids[1:], uuid.Nil),
	}}
	for _, err := range testCollection(t, first).QueryPages(context.Background(), WithTimeInterval(queryInterval()), WithPageCache(pc)) {
		require.NoError(t, err)
	}

	// replay: every page comes from the cache, no RPC is issued
	replay := &fakeService{}
	var points []Datapoint
	for point, err := range testCollection(t, replay).Query(context.Background(), WithTimeInterval(queryInterval()), WithPageCache(pc)) {
		require.NoError(t, err)
		points = append(points, point)
	}

	require.Empty(t, replay.queryReqs)
	require.Len(t, points, 2)
	require.Equal(t, ids[0], points[0].Meta.ID)
	require.Equal(t, ids[1], points[1].Meta.ID)
}
