package datasets

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/lunaris-space/lunaris-go/internal/proto"
	"github.com/lunaris-space/lunaris-go/internal/uuidx"
	"github.com/lunaris-space/lunaris-go/query"
)

// DatapointMeta is the envelope metadata of a single datapoint.
type DatapointMeta struct {
	ID            uuid.UUID
	EventTime     time.Time
	IngestionTime time.Time
}

func datapointMetaFromMessage(msg *proto.DatapointMetadata) (DatapointMeta, error) {
	if msg == nil {
		return DatapointMeta{}, nil
	}
	id, err := uuidx.FromMessage(msg.Id)
	if err != nil {
		return DatapointMeta{}, fmt.Errorf("invalid datapoint id: %w", err)
	}
	meta := DatapointMeta{ID: id}
	if msg.EventTime != nil {
		meta.EventTime = msg.EventTime.AsTime()
	}
	if msg.IngestionTime != nil {
		meta.IngestionTime = msg.IngestionTime.AsTime()
	}
	return meta, nil
}

// Datapoint is one datapoint: its envelope metadata plus the raw payload
// bytes of the dataset-specific message type named by TypeURL. Decoding the
// payload is up to the caller, the SDK treats it as opaque.
type Datapoint struct {
	Meta    DatapointMeta
	TypeURL string
	Data    []byte
}

// DatapointPage is one page of a datapoint query.
type DatapointPage struct {
	Meta []DatapointMeta
	// TypeURL is the shared payload type of every datapoint in the page.
	TypeURL string
	// Data holds one raw payload per datapoint; empty when data was skipped.
	Data [][]byte

	NextPage query.Cursor
}

// NextCursor returns the cursor for the page after this one, making the page
// consumable by the pagination driver.
func (p *DatapointPage) NextCursor() query.Cursor { return p.NextPage }

// Len returns the number of datapoints in the page.
func (p *DatapointPage) Len() int {
	if len(p.Meta) > len(p.Data) {
		return len(p.Meta)
	}
	return len(p.Data)
}

// Datapoints assembles the page into individual datapoints. Depending on the
// query, metadata or payloads may be absent; missing parts stay zero.
func (p *DatapointPage) Datapoints() []Datapoint {
	points := make([]Datapoint, p.Len())
	for i := range points {
		if i < len(p.Meta) {
			points[i].Meta = p.Meta[i]
		}
		if i < len(p.Data) {
			points[i].TypeURL = p.TypeURL
			points[i].Data = p.Data[i]
		}
	}
	return points
}

func datapointPageFromMessage(msg *proto.DatapointPage) (*DatapointPage, error) {
	page := &DatapointPage{}

	for _, m := range msg.Meta {
		meta, err := datapointMetaFromMessage(m)
		if err != nil {
			return nil, err
		}
		page.Meta = append(page.Meta, meta)
	}
	if msg.Data != nil {
		page.TypeURL = msg.Data.TypeUrl
		page.Data = msg.Data.Value
	}

	next, err := query.CursorFromMessage(msg.NextPage)
	if err != nil {
		return nil, fmt.Errorf("invalid next page cursor: %w", err)
	}
	page.NextPage = next
	return page, nil
}

func datapointFromMessage(msg *proto.Datapoint) (Datapoint, error) {
	meta, err := datapointMetaFromMessage(msg.Meta)
	if err != nil {
		return Datapoint{}, err
	}
	point := Datapoint{Meta: meta}
	if msg.Data != nil {
		point.TypeURL = msg.Data.TypeUrl
		point.Data = msg.Data.Value
	}
	return point, nil
}

func (p *DatapointPage) toMessage() *proto.DatapointPage {
	msg := &proto.DatapointPage{}
	for _, meta := range p.Meta {
		msg.Meta = append(msg.Meta, &proto.DatapointMetadata{
			Id:        uuidx.ToMessage(meta.ID),
			EventTime: timestampOrNil(meta.EventTime),
		})
	}
	if len(p.Data) > 0 {
		msg.Data = &proto.RepeatedAny{TypeUrl: p.TypeURL, Value: p.Data}
	}
	return msg
}

func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
