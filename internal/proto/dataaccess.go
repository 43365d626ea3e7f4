package proto

import "google.golang.org/protobuf/types/known/timestamppb"

// Any holds a message of a variable type as bytes. The platform does not use
// google.protobuf.Any here because the JSON representation of Value must stay
// raw bytes.
type Any struct {
	TypeUrl string
	Value   []byte
}

// RepeatedAny is a batch of messages that all share one variable type,
// avoiding a repeated TypeUrl per element.
type RepeatedAny struct {
	TypeUrl string
	Value   [][]byte
}

// DatapointMetadata is the per-datapoint envelope metadata.
type DatapointMetadata struct {
	Id            *ID
	EventTime     *timestamppb.Timestamp
	IngestionTime *timestamppb.Timestamp
}

// Datapoint is a single datapoint: metadata plus its typed payload.
type Datapoint struct {
	Meta *DatapointMetadata
	Data *Any
}

// DatapointPage is one page of a datapoint query. NextPage carries the cursor
// for the following page; a NextPage without StartingAfter means the query is
// exhausted.
type DatapointPage struct {
	Meta     []*DatapointMetadata
	Data     *RepeatedAny
	NextPage *Pagination
}

type QueryDatapointsRequest struct {
	CollectionId *ID
	// Exactly one of TimeInterval and DatapointInterval is set.
	TimeInterval      *TimeInterval
	DatapointInterval *IDInterval
	SkipData          bool
	SkipMeta          bool
	Page              *Pagination
}

type GetDatapointByIdRequest struct {
	CollectionId *ID
	Id           *ID
	SkipData     bool
}

type IngestDatapointsRequest struct {
	CollectionId  *ID
	Datapoints    *DatapointPage
	AllowExisting bool
}

type IngestDatapointsResponse struct {
	NumCreated   uint64
	NumExisting  uint64
	DatapointIds []*ID
}

type DeleteDatapointsRequest struct {
	CollectionId *ID
	DatapointIds []*ID
}

type DeleteDatapointsResponse struct {
	NumDeleted uint64
}
