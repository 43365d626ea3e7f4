package datasets

import (
	"context"
	"runtime"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/grpcx"
	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
	"github.com/lunaris-space/lunaris-go/query"
)

// sdkVersion is reported to the server as part of ClientInfo.
const sdkVersion = "0.4.0"

// service is the typed access layer over the raw RPC surface. Every call
// funnels through grpcx.Invoke so that transport failures reach callers as
// the SDK's typed errors, raised at the call site.
type service struct {
	client proto.DataServiceClient
}

func clientInfo() *proto.ClientInfo {
	return &proto.ClientInfo{
		Name:        "lunaris-go",
		Environment: runtime.Version(),
		Packages:    []*proto.PackageInfo{{Name: "lunaris-go", Version: sdkVersion}},
	}
}

func (s *service) listDatasets(ctx context.Context) (*proto.ListDatasetsResponse, error) {
	return grpcx.Invoke(ctx, s.client.ListDatasets, &proto.ListDatasetsRequest{ClientInfo: clientInfo()})
}

func (s *service) getDataset(ctx context.Context, slug string) (*proto.Dataset, error) {
	return grpcx.Invoke(ctx, s.client.GetDataset, &proto.GetDatasetRequest{Slug: slug})
}

func (s *service) createCollection(ctx context.Context, datasetID uuid.UUID, name string) (*proto.CollectionInfo, error) {
	id, err := uuidx.MustToMessage(datasetID)
	if err != nil {
		return nil, err
	}
	return grpcx.Invoke(ctx, s.client.CreateCollection, &proto.CreateCollectionRequest{DatasetId: id, Name: name})
}

func (s *service) getCollections(ctx context.Context, datasetID uuid.UUID) (*proto.CollectionsResponse, error) {
	id, err := uuidx.MustToMessage(datasetID)
	if err != nil {
		return nil, err
	}
	return grpcx.Invoke(ctx, s.client.GetCollections, &proto.GetCollectionsRequest{
		DatasetId:        id,
		WithAvailability: true,
		WithCount:        true,
	})
}

func (s *service) getCollectionByName(ctx context.Context, datasetID uuid.UUID, name string) (*proto.CollectionInfo, error) {
	id, err := uuidx.MustToMessage(datasetID)
	if err != nil {
		return nil, err
	}
	return grpcx.Invoke(ctx, s.client.GetCollectionByName, &proto.GetCollectionByNameRequest{
		DatasetId:        id,
		CollectionName:   name,
		WithAvailability: true,
		WithCount:        true,
	})
}

func (s *service) getDatapoint(ctx context.Context, collectionID, datapointID uuid.UUID, skipData bool) (*proto.Datapoint, error) {
	cid, err := uuidx.MustToMessage(collectionID)
	if err != nil {
		return nil, err
	}
	did, err := uuidx.MustToMessage(datapointID)
	if err != nil {
		return nil, err
	}
	return grpcx.Invoke(ctx, s.client.GetDatapointById, &proto.GetDatapointByIdRequest{
		CollectionId: cid,
		Id:           did,
		SkipData:     skipData,
	})
}

func (s *service) queryPage(
	ctx context.Context,
	collectionID uuid.UUID,
	timeInterval *query.TimeInterval,
	idInterval *query.IDInterval,
	skipData, skipMeta bool,
	cursor query.Cursor,
) (*proto.DatapointPage, error) {
	cid, err := uuidx.MustToMessage(collectionID)
	if err != nil {
		return nil, err
	}
	req := &proto.QueryDatapointsRequest{
		CollectionId: cid,
		SkipData:     skipData,
		SkipMeta:     skipMeta,
		Page:         cursor.ToMessage(),
	}
	if timeInterval != nil {
		req.TimeInterval = timeInterval.ToMessage()
	}
	if idInterval != nil {
		req.DatapointInterval = idInterval.ToMessage()
	}
	return grpcx.Invoke(ctx, s.client.QueryDatapoints, req)
}

func (s *service) ingestDatapoints(ctx context.Context, collectionID uuid.UUID, points *proto.DatapointPage, allowExisting bool) (*proto.IngestDatapointsResponse, error) {
	cid, err := uuidx.MustToMessage(collectionID)
	if err != nil {
		return nil, err
	}
	return grpcx.Invoke(ctx, s.client.IngestDatapoints, &proto.IngestDatapointsRequest{
		CollectionId:  cid,
		Datapoints:    points,
		AllowExisting: allowExisting,
	})
}

func (s *service) deleteDatapoints(ctx context.Context, collectionID uuid.UUID, datapointIDs []uuid.UUID) (*proto.DeleteDatapointsResponse, error) {
	cid, err := uuidx.MustToMessage(collectionID)
	if err != nil {
		return nil, err
	}
	ids := make([]*proto.ID, 0, len(datapointIDs))
	for _, id := range datapointIDs {
		msg, err := uuidx.MustToMessage(id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, msg)
	}
	return grpcx.Invoke(ctx, s.client.DeleteDatapoints, &proto.DeleteDatapointsRequest{
		CollectionId: cid,
		DatapointIds: ids,
	})
}
