package proto

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the lunaris.v1.DataService endpoints.
const (
	MethodListDatasets        = "/lunaris.v1.DataService/ListDatasets"
	MethodGetDataset          = "/lunaris.v1.DataService/GetDataset"
	MethodCreateCollection    = "/lunaris.v1.DataService/CreateCollection"
	MethodGetCollections      = "/lunaris.v1.DataService/GetCollections"
	MethodGetCollectionByName = "/lunaris.v1.DataService/GetCollectionByName"
	MethodGetDatapointById    = "/lunaris.v1.DataService/GetDatapointById"
	MethodQueryDatapoints     = "/lunaris.v1.DataService/QueryDatapoints"
	MethodIngestDatapoints    = "/lunaris.v1.DataService/IngestDatapoints"
	MethodDeleteDatapoints    = "/lunaris.v1.DataService/DeleteDatapoints"
)

// DataServiceClient is the raw RPC surface of the datasets service. The typed
// wrappers in the datasets package consume this interface, which makes it the
// seam for fakes in tests.
type DataServiceClient interface {
	ListDatasets(ctx context.Context, in *ListDatasetsRequest, opts ...grpc.CallOption) (*ListDatasetsResponse, error)
	GetDataset(ctx context.Context, in *GetDatasetRequest, opts ...grpc.CallOption) (*Dataset, error)
	CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CollectionInfo, error)
	GetCollections(ctx context.Context, in *GetCollectionsRequest, opts ...grpc.CallOption) (*CollectionsResponse, error)
	GetCollectionByName(ctx context.Context, in *GetCollectionByNameRequest, opts ...grpc.CallOption) (*CollectionInfo, error)
	GetDatapointById(ctx context.Context, in *GetDatapointByIdRequest, opts ...grpc.CallOption) (*Datapoint, error)
	QueryDatapoints(ctx context.Context, in *QueryDatapointsRequest, opts ...grpc.CallOption) (*DatapointPage, error)
	IngestDatapoints(ctx context.Context, in *IngestDatapointsRequest, opts ...grpc.CallOption) (*IngestDatapointsResponse, error)
	DeleteDatapoints(ctx context.Context, in *DeleteDatapointsRequest, opts ...grpc.CallOption) (*DeleteDatapointsResponse, error)
}

type dataServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDataServiceClient returns a DataServiceClient backed by the given
// connection.
func NewDataServiceClient(cc grpc.ClientConnInterface) DataServiceClient {
	return &dataServiceClient{cc: cc}
}

func (c *dataServiceClient) ListDatasets(ctx context.Context, in *ListDatasetsRequest, opts ...grpc.CallOption) (*ListDatasetsResponse, error) {
	out := new(ListDatasetsResponse)
	if err := c.cc.Invoke(ctx, MethodListDatasets, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) GetDataset(ctx context.Context, in *GetDatasetRequest, opts ...grpc.CallOption) (*Dataset, error) {
	out := new(Dataset)
	if err := c.cc.Invoke(ctx, MethodGetDataset, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CollectionInfo, error) {
	out := new(CollectionInfo)
	if err := c.cc.Invoke(ctx, MethodCreateCollection, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) GetCollections(ctx context.Context, in *GetCollectionsRequest, opts ...grpc.CallOption) (*CollectionsResponse, error) {
	out := new(CollectionsResponse)
	if err := c.cc.Invoke(ctx, MethodGetCollections, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) GetCollectionByName(ctx context.Context, in *GetCollectionByNameRequest, opts ...grpc.CallOption) (*CollectionInfo, error) {
	out := new(CollectionInfo)
	if err := c.cc.Invoke(ctx, MethodGetCollectionByName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) GetDatapointById(ctx context.Context, in *GetDatapointByIdRequest, opts ...grpc.CallOption) (*Datapoint, error) {
	out := new(Datapoint)
	if err := c.cc.Invoke(ctx, MethodGetDatapointById, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) QueryDatapoints(ctx context.Context, in *QueryDatapointsRequest, opts ...grpc.CallOption) (*DatapointPage, error) {
	out := new(DatapointPage)
	if err := c.cc.Invoke(ctx, MethodQueryDatapoints, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) IngestDatapoints(ctx context.Context, in *IngestDatapointsRequest, opts ...grpc.CallOption) (*IngestDatapointsResponse, error) {
	out := new(IngestDatapointsResponse)
	if err := c.cc.Invoke(ctx, MethodIngestDatapoints, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataServiceClient) DeleteDatapoints(ctx context.Context, in *DeleteDatapointsRequest, opts ...grpc.CallOption) (*DeleteDatapointsResponse, error) {
	out := new(DeleteDatapointsResponse)
	if err := c.cc.Invoke(ctx, MethodDeleteDatapoints, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
