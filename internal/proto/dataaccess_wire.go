package proto

import "google.golang.org/protobuf/encoding/protowire"

// Field numbers follow the platform schema (lunaris/v1/data_access.proto).

func (m *Any) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.TypeUrl)
	b = appendBytes(b, 2, m.Value)
	return b
}

func (m *Any) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		switch num {
		case 1:
			m.TypeUrl = string(payload)
		case 2:
			m.Value = payload
		}
		return nil
	})
}

func (m *RepeatedAny) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.TypeUrl)
	for _, value := range m.Value {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, value)
	}
	return b
}

func (m *RepeatedAny) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		switch num {
		case 1:
			m.TypeUrl = string(payload)
		case 2:
			m.Value = append(m.Value, payload)
		}
		return nil
	})
}

func (m *DatapointMetadata) appendWire(b []byte) []byte {
	if m.Id != nil {
		b = appendEmbedded(b, 1, m.Id)
	}
	if m.EventTime != nil {
		b = appendTimestamp(b, 2, m.EventTime)
	}
	if m.IngestionTime != nil {
		b = appendTimestamp(b, 3, m.IngestionTime)
	}
	return b
}

func (m *DatapointMetadata) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.Id, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.EventTime, err = unmarshalTimestamp(payload)
		case 3:
			m.IngestionTime, err = unmarshalTimestamp(payload)
		}
		return err
	})
}

func (m *Datapoint) appendWire(b []byte) []byte {
	if m.Meta != nil {
		b = appendEmbedded(b, 1, m.Meta)
	}
	if m.Data != nil {
		b = appendEmbedded(b, 2, m.Data)
	}
	return b
}

func (m *Datapoint) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.Meta, err = unmarshalEmbedded(payload, &DatapointMetadata{})
		case 2:
			m.Data, err = unmarshalEmbedded(payload, &Any{})
		}
		return err
	})
}

func (m *DatapointPage) appendWire(b []byte) []byte {
	for _, meta := range m.Meta {
		b = appendEmbedded(b, 1, meta)
	}
	if m.Data != nil {
		b = appendEmbedded(b, 2, m.Data)
	}
	if m.NextPage != nil {
		b = appendEmbedded(b, 3, m.NextPage)
	}
	return b
}

func (m *DatapointPage) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			meta, err := unmarshalEmbedded(payload, &DatapointMetadata{})
			if err != nil {
				return err
			}
			m.Meta = append(m.Meta, meta)
		case 2:
			m.Data, err = unmarshalEmbedded(payload, &RepeatedAny{})
		case 3:
			m.NextPage, err = unmarshalEmbedded(payload, &Pagination{})
		}
		return err
	})
}

func (m *QueryDatapointsRequest) appendWire(b []byte) []byte {
	if m.CollectionId != nil {
		b = appendEmbedded(b, 1, m.CollectionId)
	}
	if m.TimeInterval != nil {
		b = appendEmbedded(b, 2, m.TimeInterval)
	}
	if m.DatapointInterval != nil {
		b = appendEmbedded(b, 3, m.DatapointInterval)
	}
	b = appendBool(b, 4, m.SkipData)
	b = appendBool(b, 5, m.SkipMeta)
	if m.Page != nil {
		b = appendEmbedded(b, 6, m.Page)
	}
	return b
}

func (m *QueryDatapointsRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.CollectionId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.TimeInterval, err = unmarshalEmbedded(payload, &TimeInterval{})
		case 3:
			m.DatapointInterval, err = unmarshalEmbedded(payload, &IDInterval{})
		case 4:
			m.SkipData = varint != 0
		case 5:
			m.SkipMeta = varint != 0
		case 6:
			m.Page, err = unmarshalEmbedded(payload, &Pagination{})
		}
		return err
	})
}

func (m *GetDatapointByIdRequest) appendWire(b []byte) []byte {
	if m.CollectionId != nil {
		b = appendEmbedded(b, 1, m.CollectionId)
	}
	if m.Id != nil {
		b = appendEmbedded(b, 2, m.Id)
	}
	b = appendBool(b, 3, m.SkipData)
	return b
}

func (m *GetDatapointByIdRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.CollectionId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.Id, err = unmarshalEmbedded(payload, &ID{})
		case 3:
			m.SkipData = varint != 0
		}
		return err
	})
}

func (m *IngestDatapointsRequest) appendWire(b []byte) []byte {
	if m.CollectionId != nil {
		b = appendEmbedded(b, 1, m.CollectionId)
	}
	if m.Datapoints != nil {
		b = appendEmbedded(b, 2, m.Datapoints)
	}
	b = appendBool(b, 3, m.AllowExisting)
	return b
}

func (m *IngestDatapointsRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.CollectionId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.Datapoints, err = unmarshalEmbedded(payload, &DatapointPage{})
		case 3:
			m.AllowExisting = varint != 0
		}
		return err
	})
}

func (m *IngestDatapointsResponse) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, m.NumCreated)
	b = appendUint64(b, 2, m.NumExisting)
	for _, id := range m.DatapointIds {
		b = appendEmbedded(b, 3, id)
	}
	return b
}

func (m *IngestDatapointsResponse) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		switch num {
		case 1:
			m.NumCreated = varint
		case 2:
			m.NumExisting = varint
		case 3:
			id, err := unmarshalEmbedded(payload, &ID{})
			if err != nil {
				return err
			}
			m.DatapointIds = append(m.DatapointIds, id)
		}
		return nil
	})
}

func (m *DeleteDatapointsRequest) appendWire(b []byte) []byte {
	if m.CollectionId != nil {
		b = appendEmbedded(b, 1, m.CollectionId)
	}
	for _, id := range m.DatapointIds {
		b = appendEmbedded(b, 2, id)
	}
	return b
}

func (m *DeleteDatapointsRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.CollectionId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			id, err := unmarshalEmbedded(payload, &ID{})
			if err != nil {
				return err
			}
			m.DatapointIds = append(m.DatapointIds, id)
		}
		return err
	})
}

func (m *DeleteDatapointsResponse) appendWire(b []byte) []byte {
	return appendUint64(b, 1, m.NumDeleted)
}

func (m *DeleteDatapointsResponse) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, _ []byte, varint uint64) error {
		if num == 1 {
			m.NumDeleted = varint
		}
		return nil
	})
}
