package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDIntervalRoundTrip(t *testing.T) {
	interval := IDInterval{
		StartID:        uuid.New(),
		EndID:          uuid.New(),
		StartExclusive: true,
		EndInclusive:   true,
	}

	got, err := IDIntervalFromMessage(interval.ToMessage())
	require.NoError(t, err)
	require.Equal(t, interval, got)
}

func TestParseIDInterval(t *testing.T) {
	start, end := uuid.New(), uuid.New()

	interval, err := ParseIDInterval(start.String(), end.String())
	require.NoError(t, err)
	require.Equal(t, start, interval.StartID)
	require.Equal(t, end, interval.EndID)
	require.False(t, interval.StartExclusive)
	require.True(t, interval.EndInclusive)

	_, err = ParseIDInterval("not-a-uuid", end.String())
	require.Error(t, err)
}
