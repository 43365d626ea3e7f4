package datasets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lunaris-space/lunaris-go/internal/grpcx"
	"github.com/lunaris-space/lunaris-go/internal/logging"
	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
)

// fakeService implements proto.DataServiceClient with preset responses and
// captured requests.
type fakeService struct {
	lastListDatasetsReq   *proto.ListDatasetsRequest
	lastGetDatasetReq     *proto.GetDatasetRequest
	lastGetCollectionsReq *proto.GetCollectionsRequest
	lastGetByNameReq      *proto.GetCollectionByNameRequest
	lastCreateReq         *proto.CreateCollectionRequest
	lastGetDatapointReq   *proto.GetDatapointByIdRequest
	lastIngestReq         *proto.IngestDatapointsRequest
	lastDeleteReq         *proto.DeleteDatapointsRequest
	queryReqs             []*proto.QueryDatapointsRequest

	listDatasetsResp *proto.ListDatasetsResponse
	listDatasetsErr  error

	getDatasetResp *proto.Dataset
	getDatasetErr  error

	collectionsResp *proto.CollectionsResponse
	collectionsErr  error

	byNameResp *proto.CollectionInfo
	byNameErr  error

	createResp *proto.CollectionInfo
	createErr  error

	datapointResp *proto.Datapoint
	datapointErr  error

	queryResps []*proto.DatapointPage
	queryErrs  []error

	ingestResp *proto.IngestDatapointsResponse
	ingestErr  error

	deleteResp *proto.DeleteDatapointsResponse
	deleteErr  error
}

func (f *fakeService) ListDatasets(ctx context.Context, in *proto.ListDatasetsRequest, opts ...grpc.CallOption) (*proto.ListDatasetsResponse, error) {
	f.lastListDatasetsReq = in
	return f.listDatasetsResp, f.listDatasetsErr
}

func (f *fakeService) GetDataset(ctx context.Context, in *proto.GetDatasetRequest, opts ...grpc.CallOption) (*proto.Dataset, error) {
	f.lastGetDatasetReq = in
	return f.getDatasetResp, f.getDatasetErr
}

func (f *fakeService) CreateCollection(ctx context.Context, in *proto.CreateCollectionRequest, opts ...grpc.CallOption) (*proto.CollectionInfo, error) {
	f.lastCreateReq = in
	return f.createResp, f.createErr
}

func (f *fakeService) GetCollections(ctx context.Context, in *proto.GetCollectionsRequest, opts ...grpc.CallOption) (*proto.CollectionsResponse, error) {
	f.lastGetCollectionsReq = in
	return f.collectionsResp, f.collectionsErr
}

func (f *fakeService) GetCollectionByName(ctx context.Context, in *proto.GetCollectionByNameRequest, opts ...grpc.CallOption) (*proto.CollectionInfo, error) {
	f.lastGetByNameReq = in
	return f.byNameResp, f.byNameErr
}

func (f *fakeService) GetDatapointById(ctx context.Context, in *proto.GetDatapointByIdRequest, opts ...grpc.CallOption) (*proto.Datapoint, error) {
	f.lastGetDatapointReq = in
	return f.datapointResp, f.datapointErr
}

func (f *fakeService) QueryDatapoints(ctx context.Context, in *proto.QueryDatapointsRequest, opts ...grpc.CallOption) (*proto.DatapointPage, error) {
	i := len(f.queryReqs)
	f.queryReqs = append(f.queryReqs, in)
	if i < len(f.queryErrs) && f.queryErrs[i] != nil {
		return nil, f.queryErrs[i]
	}
	return f.queryResps[i], nil
}

func (f *fakeService) IngestDatapoints(ctx context.Context, in *proto.IngestDatapointsRequest, opts ...grpc.CallOption) (*proto.IngestDatapointsResponse, error) {
	f.lastIngestReq = in
	return f.ingestResp, f.ingestErr
}

func (f *fakeService) DeleteDatapoints(ctx context.Context, in *proto.DeleteDatapointsRequest, opts ...grpc.CallOption) (*proto.DeleteDatapointsResponse, error) {
	f.lastDeleteReq = in
	return f.deleteResp, f.deleteErr
}

func newTestClient(f *fakeService) *Client {
	return &Client{svc: &service{client: f}, log: logging.Nop()}
}

func TestDatasetsListing(t *testing.T) {
	datasetID, groupID := uuid.New(), uuid.New()
	f := &fakeService{
		listDatasetsResp: &proto.ListDatasetsResponse{
			Datasets: []*proto.Dataset{{
				Id:      uuidx.ToMessage(datasetID),
				GroupId: uuidx.ToMessage(groupID),
				Name:    "ERS SAR Granules",
				Slug:    "open_data.asf.ers_sar",
			}},
			Groups: []*proto.DatasetGroup{{Id: uuidx.ToMessage(groupID), Name: "ASF", CodeName: "asf"}},
		},
	}

	listing, err := newTestClient(f).Datasets(context.Background())
	require.NoError(t, err)

	require.Len(t, listing.Datasets, 1)
	require.Equal(t, datasetID, listing.Datasets[0].ID)
	require.Equal(t, "open_data.asf.ers_sar", listing.Datasets[0].Slug)
	require.Len(t, listing.Groups, 1)
	require.Equal(t, groupID, listing.Groups[0].ID)

	// the request must identify the SDK
	require.NotNil(t, f.lastListDatasetsReq.ClientInfo)
	require.Equal(t, "lunaris-go", f.lastListDatasetsReq.ClientInfo.Name)
}

func TestDatasetsTranslatesErrors(t *testing.T) {
	f := &fakeService{listDatasetsErr: status.Error(codes.Unauthenticated, "invalid token")}

	_, err := newTestClient(f).Datasets(context.Background())

	var authErr *grpcx.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "invalid token", authErr.Message)
}

func TestDatasetBySlug(t *testing.T) {
	id := uuid.New()
	f := &fakeService{getDatasetResp: &proto.Dataset{Id: uuidx.ToMessage(id), Slug: "open_data.asf.ers_sar"}}

	dataset, err := newTestClient(f).Dataset(context.Background(), "open_data.asf.ers_sar")
	require.NoError(t, err)
	require.Equal(t, id, dataset.ID)
	require.Equal(t, "open_data.asf.ers_sar", f.lastGetDatasetReq.Slug)
}

func TestDatasetNotFound(t *testing.T) {
	f := &fakeService{getDatasetErr: status.Error(codes.NotFound, "no such dataset")}

	_, err := newTestClient(f).Dataset(context.Background(), "nope")

	var notFound *grpcx.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCollections(t *testing.T) {
	datasetID := uuid.New()
	count := uint64(42)
	f := &fakeService{
		collectionsResp: &proto.CollectionsResponse{Data: []*proto.CollectionInfo{{
			Collection: &proto.Collection{Id: uuid.NewString(), Name: "S1A"},
			Count:      &count,
		}}},
	}

	dataset := &Dataset{ID: datasetID, client: newTestClient(f)}
	infos, err := dataset.Collections(context.Background())
	require.NoError(t, err)

	require.Len(t, infos, 1)
	require.Equal(t, "S1A", infos[0].Name)
	require.NotNil(t, infos[0].Count)
	require.Equal(t, count, *infos[0].Count)
	require.Nil(t, infos[0].Availability)

	require.Equal(t, uuidx.ToMessage(datasetID), f.lastGetCollectionsReq.DatasetId)
	require.True(t, f.lastGetCollectionsReq.WithAvailability)
	require.True(t, f.lastGetCollectionsReq.WithCount)
}

func TestCollectionByName(t *testing.T) {
	f := &fakeService{
		byNameResp: &proto.CollectionInfo{Collection: &proto.Collection{Id: uuid.NewString(), Name: "S1A"}},
	}

	dataset := &Dataset{ID: uuid.New(), client: newTestClient(f)}
	collection, err := dataset.Collection(context.Background(), "S1A")
	require.NoError(t, err)
	require.Equal(t, "S1A", collection.Info.Name)
	require.Equal(t, "S1A", f.lastGetByNameReq.CollectionName)
}
