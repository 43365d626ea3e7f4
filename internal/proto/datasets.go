package proto

// Dataset describes a single timeseries dataset.
type Dataset struct {
	Id          *ID
	GroupId     *ID
	Name        string
	Slug        string
	Summary     string
	CodeName    string
	Description string
}

// DatasetGroup is a node in the dataset group hierarchy.
type DatasetGroup struct {
	Id       *ID
	ParentId *ID
	CodeName string
	Name     string
	Icon     string
}

type ListDatasetsRequest struct {
	ClientInfo *ClientInfo
}

type ListDatasetsResponse struct {
	Datasets      []*Dataset
	Groups        []*DatasetGroup
	ServerMessage string
}

type GetDatasetRequest struct {
	Slug string
}

// Collection identifies a named collection of datapoints within a dataset.
type Collection struct {
	Id   string
	Name string
}

// CollectionInfo carries optional availability and datapoint count metadata.
// Availability and Count are nil when they were not requested.
type CollectionInfo struct {
	Collection   *Collection
	Availability *TimeInterval
	Count        *uint64
}

type CreateCollectionRequest struct {
	DatasetId *ID
	Name      string
}

type GetCollectionsRequest struct {
	DatasetId        *ID
	WithAvailability bool
	WithCount        bool
}

type CollectionsResponse struct {
	Data []*CollectionInfo
}

type GetCollectionByNameRequest struct {
	DatasetId        *ID
	CollectionName   string
	WithAvailability bool
	WithCount        bool
}
