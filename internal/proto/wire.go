package proto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every wire type in this package. The binary
// format is standard protobuf, produced and consumed with protowire.
type Message interface {
	appendWire(b []byte) []byte
	unmarshalWire(data []byte) error
}

// Codec marshals the wire types of this package for grpc. Dialing forces it
// onto the channel; the wire format and the "proto" content-subtype stay
// standard, only the in-memory representation is ours.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
	}
	return msg.appendWire(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(Message)
	if !ok {
		return fmt.Errorf("proto codec: cannot unmarshal into %T", v)
	}
	return msg.unmarshalWire(data)
}

// Append helpers. Scalar fields follow proto3 semantics: zero values are not
// emitted. Presence-carrying fields are handled at the call sites.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// appendEmbedded emits a nested message field. Callers check for nil.
func appendEmbedded(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

// google.protobuf.Timestamp: seconds=1, nanos=2.
func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	var inner []byte
	inner = appendInt64(inner, 1, ts.GetSeconds())
	inner = appendInt64(inner, 2, int64(ts.GetNanos()))
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

// google.protobuf.Duration: seconds=1, nanos=2.
func appendDuration(b []byte, num protowire.Number, d *durationpb.Duration) []byte {
	var inner []byte
	inner = appendInt64(inner, 1, d.GetSeconds())
	inner = appendInt64(inner, 2, int64(d.GetNanos()))
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

// eachField walks the top-level fields of an encoded message. Varint fields
// arrive in varint, length-delimited fields in payload; fields of any other
// wire type are skipped, as are unknown field numbers.
func eachField(data []byte, field func(num protowire.Number, payload []byte, varint uint64) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if err := field(num, nil, v); err != nil {
				return err
			}
			data = data[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if err := field(num, v, 0); err != nil {
				return err
			}
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// unmarshalEmbedded decodes a nested message field into a fresh m.
func unmarshalEmbedded[M Message](payload []byte, m M) (M, error) {
	if err := m.unmarshalWire(payload); err != nil {
		var zero M
		return zero, err
	}
	return m, nil
}

func unmarshalTimestamp(payload []byte) (*timestamppb.Timestamp, error) {
	ts := &timestamppb.Timestamp{}
	err := eachField(payload, func(num protowire.Number, _ []byte, varint uint64) error {
		switch num {
		case 1:
			ts.Seconds = int64(varint)
		case 2:
			ts.Nanos = int32(varint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ts, nil
}

func unmarshalDuration(payload []byte) (*durationpb.Duration, error) {
	d := &durationpb.Duration{}
	err := eachField(payload, func(num protowire.Number, _ []byte, varint uint64) error {
		switch num {
		case 1:
			d.Seconds = int64(varint)
		case 2:
			d.Nanos = int32(varint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
