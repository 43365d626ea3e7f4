package datasets

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
	"github.com/lunaris-space/lunaris-go/query"
)

// Dataset describes a timeseries dataset.
type Dataset struct {
	ID      uuid.UUID
	GroupID uuid.UUID
	Name    string
	Slug    string
	Summary string

	client *Client
}

func datasetFromMessage(c *Client, msg *proto.Dataset) (*Dataset, error) {
	id, err := uuidx.FromMessage(msg.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset id: %w", err)
	}
	groupID, err := uuidx.FromMessage(msg.GroupId)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset group id: %w", err)
	}
	return &Dataset{
		ID:      id,
		GroupID: groupID,
		Name:    msg.Name,
		Slug:    msg.Slug,
		Summary: msg.Summary,
		client:  c,
	}, nil
}

// Group is a node in the dataset group hierarchy.
type Group struct {
	ID       uuid.UUID
	ParentID uuid.UUID
	Name     string
	CodeName string
}

func groupFromMessage(msg *proto.DatasetGroup) (Group, error) {
	id, err := uuidx.FromMessage(msg.Id)
	if err != nil {
		return Group{}, fmt.Errorf("invalid group id: %w", err)
	}
	parentID, err := uuidx.FromMessage(msg.ParentId)
	if err != nil {
		return Group{}, fmt.Errorf("invalid parent group id: %w", err)
	}
	return Group{ID: id, ParentID: parentID, Name: msg.Name, CodeName: msg.CodeName}, nil
}

// CollectionInfo is a collection plus optional availability metadata.
// Availability and Count are nil when they were not requested, which is
// different from an empty collection.
type CollectionInfo struct {
	ID   string
	Name string

	Availability *query.TimeInterval
	Count        *uint64
}

func collectionInfoFromMessage(msg *proto.CollectionInfo) CollectionInfo {
	info := CollectionInfo{}
	if msg.Collection != nil {
		info.ID = msg.Collection.Id
		info.Name = msg.Collection.Name
	}
	if msg.Availability != nil {
		availability := query.TimeIntervalFromMessage(msg.Availability)
		info.Availability = &availability
	}
	if msg.Count != nil {
		count := *msg.Count
		info.Count = &count
	}
	return info
}

// String renders the collection info the way the CLI lists collections.
func (c CollectionInfo) String() string {
	availability := "<availability unknown>"
	if c.Availability != nil {
		availability = c.Availability.String()
	}
	if c.Count != nil {
		return fmt.Sprintf("%s: %s (%d data points)", c.Name, availability, *c.Count)
	}
	return fmt.Sprintf("%s: %s", c.Name, availability)
}
