package query

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/lunaris-space/lunaris-go/internal/proto"
)

// smallestStep is the smallest representable step between two event times,
// used to turn exclusive/inclusive endpoints into half-open form.
const smallestStep = time.Microsecond

// TimeInterval is a time interval with explicit endpoint semantics. With both
// flags false it is the half-open interval [Start, End), which is the default
// everywhere in the SDK.
type TimeInterval struct {
	Start time.Time
	End   time.Time

	// StartExclusive excludes Start itself from the interval.
	StartExclusive bool
	// EndInclusive includes End itself in the interval.
	EndInclusive bool
}

// NewTimeInterval returns the half-open interval [start, end) in UTC.
func NewTimeInterval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start.UTC(), End: end.UTC()}
}

// PointInTime returns the interval covering exactly the given instant.
func PointInTime(at time.Time) TimeInterval {
	return TimeInterval{Start: at.UTC(), End: at.UTC(), EndInclusive: true}
}

// ToHalfOpen normalizes the interval to [start, end) form by shifting
// exclusive/inclusive endpoints by the smallest representable step.
func (t TimeInterval) ToHalfOpen() TimeInterval {
	start, end := t.Start, t.End
	if t.StartExclusive {
		start = start.Add(smallestStep)
	}
	if t.EndInclusive {
		end = end.Add(smallestStep)
	}
	return TimeInterval{Start: start, End: end}
}

// Equal reports whether two intervals describe the same span of time,
// regardless of how their endpoints are flagged.
func (t TimeInterval) Equal(other TimeInterval) bool {
	a, b := t.ToHalfOpen(), other.ToHalfOpen()
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

// Empty reports whether the interval contains no instants at all.
func (t TimeInterval) Empty() bool {
	h := t.ToHalfOpen()
	return !h.Start.Before(h.End)
}

// String formats the interval in scientific interval notation, e.g.
// [2023-01-01T00:00:00Z, 2023-02-01T00:00:00Z).
func (t TimeInterval) String() string {
	if t.Empty() {
		return "<empty>"
	}
	open, closing := "[", ")"
	if t.StartExclusive {
		open = "("
	}
	if t.EndInclusive {
		closing = "]"
	}
	return fmt.Sprintf("%s%s, %s%s",
		open, t.Start.UTC().Format(time.RFC3339), t.End.UTC().Format(time.RFC3339), closing)
}

// TimeIntervalFromMessage converts a wire time interval.
func TimeIntervalFromMessage(interval *proto.TimeInterval) TimeInterval {
	if interval == nil {
		return TimeInterval{}
	}
	return TimeInterval{
		Start:          interval.StartTime.AsTime(),
		End:            interval.EndTime.AsTime(),
		StartExclusive: interval.StartExclusive,
		EndInclusive:   interval.EndInclusive,
	}
}

// ToMessage converts the interval to its wire form.
func (t TimeInterval) ToMessage() *proto.TimeInterval {
	return &proto.TimeInterval{
		StartTime:      timestamppb.New(t.Start),
		EndTime:        timestamppb.New(t.End),
		StartExclusive: t.StartExclusive,
		EndInclusive:   t.EndInclusive,
	}
}
