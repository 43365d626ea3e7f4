// Package uuidx converts between uuid.UUID values and their wire form.
//
// The wire format cannot distinguish an unset id from an explicit all-zero id,
// so the nil UUID is reserved as "absent" and is never a valid assigned id.
// Both conversion directions normalize accordingly.
package uuidx

import (
	"errors"

	"github.com/google/uuid"

	"github.com/lunaris-space/lunaris-go/internal/proto"
)

// ErrNilID is returned when a call requires a real, non-nil id.
var ErrNilID = errors.New("id must not be the nil UUID")

// FromMessage converts a wire id to a UUID. A nil message, empty bytes and
// all-zero bytes all map to uuid.Nil.
func FromMessage(id *proto.ID) (uuid.UUID, error) {
	if id == nil || len(id.Uuid) == 0 {
		return uuid.Nil, nil
	}
	return uuid.FromBytes(id.Uuid)
}

// ToMessage converts a UUID to its wire form. uuid.Nil maps to nil, so an
// absent id is never sent as 16 zero bytes.
func ToMessage(id uuid.UUID) *proto.ID {
	if id == uuid.Nil {
		return nil
	}
	raw := id // copy, id[:] would alias the argument
	return &proto.ID{Uuid: raw[:]}
}

// MustToMessage is ToMessage for ids that are required on the wire.
func MustToMessage(id uuid.UUID) (*proto.ID, error) {
	if id == uuid.Nil {
		return nil, ErrNilID
	}
	return ToMessage(id), nil
}
