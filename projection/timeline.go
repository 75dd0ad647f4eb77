package projection

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// TimelinePoint is the cumulative number of messages seen at a given instant.
type TimelinePoint struct {
	At         time.Time
	Cumulative int
}

// Timeline holds the records ordered by timestamp, ties keep file order.
type Timeline struct {
	Records []Record
	Points  []TimelinePoint
}

func NewTimeline(records []Record) *Timeline {
	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	points := make([]TimelinePoint, len(sorted))
	for i, r := range sorted {
		points[i] = TimelinePoint{At: r.Timestamp, Cumulative: i + 1}
	}
	return &Timeline{Records: sorted, Points: points}
}

// Span is the time between the earliest and latest record.
func (t *Timeline) Span() time.Duration {
	if len(t.Points) < 2 {
		return 0
	}
	return t.Points[len(t.Points)-1].At.Sub(t.Points[0].At)
}

type SenderFrequency struct {
	Sender string
	Count  int
}

// Frequency counts records per sender, most active first, then by name.
func Frequency(records []Record) []SenderFrequency {
	counts := lo.CountValuesBy(records, func(r Record) string { return r.Sender })
	out := lo.MapToSlice(counts, func(sender string, count int) SenderFrequency {
		return SenderFrequency{Sender: sender, Count: count}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sender < out[j].Sender
	})
	return out
}
