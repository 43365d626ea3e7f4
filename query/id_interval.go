package query

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
)

// IDInterval is an interval of datapoint ids. Datapoint ids are time-ordered,
// so an id interval selects a contiguous range of datapoints.
type IDInterval struct {
	StartID uuid.UUID
	EndID   uuid.UUID

	StartExclusive bool
	EndInclusive   bool
}

// NewIDInterval returns the interval [start, end] over datapoint ids, with
// both endpoints included. This matches what a caller means when passing the
// first and last id they have seen.
func NewIDInterval(start, end uuid.UUID) IDInterval {
	return IDInterval{StartID: start, EndID: end, EndInclusive: true}
}

// ParseIDInterval builds an interval from the string form of two ids.
func ParseIDInterval(start, end string) (IDInterval, error) {
	startID, err := uuid.Parse(start)
	if err != nil {
		return IDInterval{}, fmt.Errorf("invalid start id: %w", err)
	}
	endID, err := uuid.Parse(end)
	if err != nil {
		return IDInterval{}, fmt.Errorf("invalid end id: %w", err)
	}
	return NewIDInterval(startID, endID), nil
}

// IDIntervalFromMessage converts a wire id interval.
func IDIntervalFromMessage(interval *proto.IDInterval) (IDInterval, error) {
	if interval == nil {
		return IDInterval{}, nil
	}
	start, err := uuidx.FromMessage(interval.StartId)
	if err != nil {
		return IDInterval{}, err
	}
	end, err := uuidx.FromMessage(interval.EndId)
	if err != nil {
		return IDInterval{}, err
	}
	return IDInterval{
		StartID:        start,
		EndID:          end,
		StartExclusive: interval.StartExclusive,
		EndInclusive:   interval.EndInclusive,
	}, nil
}

// ToMessage converts the interval to its wire form.
func (i IDInterval) ToMessage() *proto.IDInterval {
	return &proto.IDInterval{
		StartId:        uuidx.ToMessage(i.StartID),
		EndId:          uuidx.ToMessage(i.EndID),
		StartExclusive: i.StartExclusive,
		EndInclusive:   i.EndInclusive,
	}
}
