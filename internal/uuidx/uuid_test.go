package uuidx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lunaris-space/lunaris-go/internal/proto"
)

func TestRoundTrip(t *testing.T) {
	id := uuid.New()

	got, err := FromMessage(ToMessage(id))
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestNilNormalization(t *testing.T) {
	require.Nil(t, ToMessage(uuid.Nil))

	for name, msg := range map[string]*proto.ID{
		"nil message": nil,
		"empty bytes": {Uuid: nil},
		"zero bytes":  {Uuid: make([]byte, 16)},
	} {
		got, err := FromMessage(msg)
		require.NoError(t, err, name)
		require.Equal(t, uuid.Nil, got, name)
	}
}

func TestFromMessageInvalidLength(t *testing.T) {
	_, err := FromMessage(&proto.ID{Uuid: []byte{1, 2, 3}})
	require.Error(t, err)
}

func TestMustToMessage(t *testing.T) {
	_, err := MustToMessage(uuid.Nil)
	require.ErrorIs(t, err, ErrNilID)

	id := uuid.New()
	msg, err := MustToMessage(id)
	require.NoError(t, err)
	require.Equal(t, id[:], msg.Uuid)
}
