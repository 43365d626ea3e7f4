package proto

import "google.golang.org/protobuf/encoding/protowire"

// Field numbers follow the platform schema (lunaris/v1/datasets.proto).

func (m *Dataset) appendWire(b []byte) []byte {
	if m.Id != nil {
		b = appendEmbedded(b, 1, m.Id)
	}
	if m.GroupId != nil {
		b = appendEmbedded(b, 2, m.GroupId)
	}
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.Slug)
	b = appendString(b, 5, m.Summary)
	b = appendString(b, 6, m.CodeName)
	b = appendString(b, 7, m.Description)
	return b
}

func (m *Dataset) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.Id, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.GroupId, err = unmarshalEmbedded(payload, &ID{})
		case 3:
			m.Name = string(payload)
		case 4:
			m.Slug = string(payload)
		case 5:
			m.Summary = string(payload)
		case 6:
			m.CodeName = string(payload)
		case 7:
			m.Description = string(payload)
		}
		return err
	})
}

func (m *DatasetGroup) appendWire(b []byte) []byte {
	if m.Id != nil {
		b = appendEmbedded(b, 1, m.Id)
	}
	if m.ParentId != nil {
		b = appendEmbedded(b, 2, m.ParentId)
	}
	b = appendString(b, 3, m.CodeName)
	b = appendString(b, 4, m.Name)
	b = appendString(b, 5, m.Icon)
	return b
}

func (m *DatasetGroup) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.Id, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.ParentId, err = unmarshalEmbedded(payload, &ID{})
		case 3:
			m.CodeName = string(payload)
		case 4:
			m.Name = string(payload)
		case 5:
			m.Icon = string(payload)
		}
		return err
	})
}

func (m *ListDatasetsRequest) appendWire(b []byte) []byte {
	if m.ClientInfo != nil {
		b = appendEmbedded(b, 1, m.ClientInfo)
	}
	return b
}

func (m *ListDatasetsRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		if num == 1 {
			m.ClientInfo, err = unmarshalEmbedded(payload, &ClientInfo{})
		}
		return err
	})
}

func (m *ListDatasetsResponse) appendWire(b []byte) []byte {
	for _, dataset := range m.Datasets {
		b = appendEmbedded(b, 1, dataset)
	}
	for _, group := range m.Groups {
		b = appendEmbedded(b, 2, group)
	}
	b = appendString(b, 3, m.ServerMessage)
	return b
}

func (m *ListDatasetsResponse) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		switch num {
		case 1:
			dataset, err := unmarshalEmbedded(payload, &Dataset{})
			if err != nil {
				return err
			}
			m.Datasets = append(m.Datasets, dataset)
		case 2:
			group, err := unmarshalEmbedded(payload, &DatasetGroup{})
			if err != nil {
				return err
			}
			m.Groups = append(m.Groups, group)
		case 3:
			m.ServerMessage = string(payload)
		}
		return nil
	})
}

func (m *GetDatasetRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Slug)
}

func (m *GetDatasetRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		if num == 1 {
			m.Slug = string(payload)
		}
		return nil
	})
}

func (m *Collection) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	return b
}

func (m *Collection) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		switch num {
		case 1:
			m.Id = string(payload)
		case 2:
			m.Name = string(payload)
		}
		return nil
	})
}

func (m *CollectionInfo) appendWire(b []byte) []byte {
	if m.Collection != nil {
		b = appendEmbedded(b, 1, m.Collection)
	}
	if m.Availability != nil {
		b = appendEmbedded(b, 2, m.Availability)
	}
	// optional scalar, emitted explicitly when present even if zero
	if m.Count != nil {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, *m.Count)
	}
	return b
}

func (m *CollectionInfo) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.Collection, err = unmarshalEmbedded(payload, &Collection{})
		case 2:
			m.Availability, err = unmarshalEmbedded(payload, &TimeInterval{})
		case 3:
			count := varint
			m.Count = &count
		}
		return err
	})
}

func (m *CreateCollectionRequest) appendWire(b []byte) []byte {
	if m.DatasetId != nil {
		b = appendEmbedded(b, 1, m.DatasetId)
	}
	b = appendString(b, 2, m.Name)
	return b
}

func (m *CreateCollectionRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.DatasetId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.Name = string(payload)
		}
		return err
	})
}

func (m *GetCollectionsRequest) appendWire(b []byte) []byte {
	if m.DatasetId != nil {
		b = appendEmbedded(b, 1, m.DatasetId)
	}
	b = appendBool(b, 2, m.WithAvailability)
	b = appendBool(b, 3, m.WithCount)
	return b
}

func (m *GetCollectionsRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.DatasetId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.WithAvailability = varint != 0
		case 3:
			m.WithCount = varint != 0
		}
		return err
	})
}

func (m *CollectionsResponse) appendWire(b []byte) []byte {
	for _, info := range m.Data {
		b = appendEmbedded(b, 1, info)
	}
	return b
}

func (m *CollectionsResponse) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		if num == 1 {
			info, err := unmarshalEmbedded(payload, &CollectionInfo{})
			if err != nil {
				return err
			}
			m.Data = append(m.Data, info)
		}
		return nil
	})
}

func (m *GetCollectionByNameRequest) appendWire(b []byte) []byte {
	if m.DatasetId != nil {
		b = appendEmbedded(b, 1, m.DatasetId)
	}
	b = appendString(b, 2, m.CollectionName)
	b = appendBool(b, 3, m.WithAvailability)
	b = appendBool(b, 4, m.WithCount)
	return b
}

func (m *GetCollectionByNameRequest) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.DatasetId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.CollectionName = string(payload)
		case 3:
			m.WithAvailability = varint != 0
		case 4:
			m.WithCount = varint != 0
		}
		return err
	})
}
