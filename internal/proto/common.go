package proto

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ID is a 128 bit unique identifier, transported as its raw 16 byte form.
// An empty or all-zero Uuid means "no id".
type ID struct {
	Uuid []byte
}

// Pagination is the cursor attached to every paginated request. A zero Limit
// means the server default page size, a nil StartingAfter means "start from
// the beginning".
type Pagination struct {
	Limit         uint64
	StartingAfter *ID
}

// TimeInterval is a [start, end) interval with explicit endpoint flags.
type TimeInterval struct {
	StartTime      *timestamppb.Timestamp
	EndTime        *timestamppb.Timestamp
	StartExclusive bool
	EndInclusive   bool
}

// IDInterval is an interval of datapoint ids with explicit endpoint flags.
type IDInterval struct {
	StartId        *ID
	EndId          *ID
	StartExclusive bool
	EndInclusive   bool
}

// TimeChunk is a fixed-duration slice of a time interval.
type TimeChunk struct {
	TimeInterval *TimeInterval
	ChunkSize    *durationpb.Duration
}

// ClientInfo identifies the SDK making a request, for server-side telemetry.
type ClientInfo struct {
	Name        string
	Environment string
	Packages    []*PackageInfo
}

// PackageInfo is a single name/version pair reported as part of ClientInfo.
type PackageInfo struct {
	Name    string
	Version string
}
