package proto

import "google.golang.org/protobuf/encoding/protowire"

// Field numbers follow the platform schema (lunaris/v1/core.proto).

func (m *ID) appendWire(b []byte) []byte {
	return appendBytes(b, 1, m.Uuid)
}

func (m *ID) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		if num == 1 {
			m.Uuid = payload
		}
		return nil
	})
}

func (m *Pagination) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, m.Limit)
	if m.StartingAfter != nil {
		b = appendEmbedded(b, 2, m.StartingAfter)
	}
	return b
}

func (m *Pagination) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.Limit = varint
		case 2:
			m.StartingAfter, err = unmarshalEmbedded(payload, &ID{})
		}
		return err
	})
}

func (m *TimeInterval) appendWire(b []byte) []byte {
	if m.StartTime != nil {
		b = appendTimestamp(b, 1, m.StartTime)
	}
	if m.EndTime != nil {
		b = appendTimestamp(b, 2, m.EndTime)
	}
	b = appendBool(b, 3, m.StartExclusive)
	b = appendBool(b, 4, m.EndInclusive)
	return b
}

func (m *TimeInterval) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.StartTime, err = unmarshalTimestamp(payload)
		case 2:
			m.EndTime, err = unmarshalTimestamp(payload)
		case 3:
			m.StartExclusive = varint != 0
		case 4:
			m.EndInclusive = varint != 0
		}
		return err
	})
}

func (m *IDInterval) appendWire(b []byte) []byte {
	if m.StartId != nil {
		b = appendEmbedded(b, 1, m.StartId)
	}
	if m.EndId != nil {
		b = appendEmbedded(b, 2, m.EndId)
	}
	b = appendBool(b, 3, m.StartExclusive)
	b = appendBool(b, 4, m.EndInclusive)
	return b
}

func (m *IDInterval) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			m.StartId, err = unmarshalEmbedded(payload, &ID{})
		case 2:
			m.EndId, err = unmarshalEmbedded(payload, &ID{})
		case 3:
			m.StartExclusive = varint != 0
		case 4:
			m.EndInclusive = varint != 0
		}
		return err
	})
}

func (m *TimeChunk) appendWire(b []byte) []byte {
	if m.TimeInterval != nil {
		b = appendEmbedded(b, 1, m.TimeInterval)
	}
	if m.ChunkSize != nil {
		b = appendDuration(b, 2, m.ChunkSize)
	}
	return b
}

func (m *TimeChunk) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			m.TimeInterval, err = unmarshalEmbedded(payload, &TimeInterval{})
		case 2:
			m.ChunkSize, err = unmarshalDuration(payload)
		}
		return err
	})
}

func (m *ClientInfo) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Environment)
	for _, pkg := range m.Packages {
		b = appendEmbedded(b, 3, pkg)
	}
	return b
}

func (m *ClientInfo) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		switch num {
		case 1:
			m.Name = string(payload)
		case 2:
			m.Environment = string(payload)
		case 3:
			pkg, err := unmarshalEmbedded(payload, &PackageInfo{})
			if err != nil {
				return err
			}
			m.Packages = append(m.Packages, pkg)
		}
		return nil
	})
}

func (m *PackageInfo) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Version)
	return b
}

func (m *PackageInfo) unmarshalWire(data []byte) error {
	return eachField(data, func(num protowire.Number, payload []byte, _ uint64) error {
		switch num {
		case 1:
			m.Name = string(payload)
		case 2:
			m.Version = string(payload)
		}
		return nil
	})
}
