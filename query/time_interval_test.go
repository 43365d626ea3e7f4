package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	jan = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	feb = time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
)

func TestTimeIntervalToHalfOpen(t *testing.T) {
	interval := TimeInterval{Start: jan, End: feb, StartExclusive: true, EndInclusive: true}

	h := interval.ToHalfOpen()
	require.Equal(t, jan.Add(time.Microsecond), h.Start)
	require.Equal(t, feb.Add(time.Microsecond), h.End)
	require.False(t, h.StartExclusive)
	require.False(t, h.EndInclusive)
}

func TestToHalfOpenShiftWidth(t *testing.T) {
	interval := TimeInterval{Start: jan, End: jan, StartExclusive: true, EndInclusive: true}

	h := interval.ToHalfOpen()
	require.Equal(t, time.Microsecond, h.Start.Sub(interval.Start))
	require.Equal(t, time.Microsecond, h.End.Sub(interval.End))
}

func TestTimeIntervalEqual(t *testing.T) {
	a := TimeInterval{Start: jan, End: feb, EndInclusive: true}
	b := TimeInterval{Start: jan, End: feb.Add(time.Microsecond)}
	require.True(t, a.Equal(b))

	c := NewTimeInterval(jan, feb)
	require.False(t, a.Equal(c))
}

func TestTimeIntervalRoundTrip(t *testing.T) {
	interval := TimeInterval{Start: jan, End: feb, StartExclusive: true}

	got := TimeIntervalFromMessage(interval.ToMessage())
	require.True(t, interval.Start.Equal(got.Start))
	require.True(t, interval.End.Equal(got.End))
	require.Equal(t, interval.StartExclusive, got.StartExclusive)
	require.Equal(t, interval.EndInclusive, got.EndInclusive)
}

func TestPointInTime(t *testing.T) {
	p := PointInTime(jan)
	require.False(t, p.Empty())
	require.True(t, p.Equal(TimeInterval{Start: jan, End: jan.Add(time.Microsecond)}))
}

func TestTimeIntervalString(t *testing.T) {
	require.Equal(t, "[2023-01-01T00:00:00Z, 2023-02-01T00:00:00Z)", NewTimeInterval(jan, feb).String())
	require.Equal(t, "<empty>", TimeInterval{Start: jan, End: jan}.String())
}
