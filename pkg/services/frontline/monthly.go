package frontline

import (
	"math"
	"sort"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
)

// MonthlySample picks Steps dates, StrideDays apart, starting at Start.
type MonthlySample struct {
	Start      time.Time
	StrideDays int
	Steps      int
}

var DefaultMonthlySample = MonthlySample{
	Start:      time.Date(2022, time.March, 7, 0, 0, 0, 0, time.UTC),
	StrideDays: 30,
	Steps:      11,
}

func (s MonthlySample) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Steps)
	for k := 0; k < s.Steps; k++ {
		dates = append(dates, s.Start.AddDate(0, 0, k*s.StrideDays))
	}
	return dates
}

// Filter keeps the events that fall on one of the sample dates.
func (s MonthlySample) Filter(events []domain.BattleEvent) []domain.BattleEvent {
	sampled := make(map[time.Time]struct{}, s.Steps)
	for _, d := range s.Dates() {
		sampled[d] = struct{}{}
	}
	res := make([]domain.BattleEvent, 0)
	for _, e := range events {
		if _, ok := sampled[e.Date]; ok {
			res = append(res, e)
		}
	}
	return res
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AggregateByMonth sums the signed deltas of each calendar month and keeps the
// absolute value of the sum.
func AggregateByMonth(series domain.FrontSeries) []domain.MonthlyMagnitude {
	sums := make(map[time.Time]float64)
	for _, d := range series.Deltas {
		sums[monthOf(d.Date)] += d.Signed
	}

	res := make([]domain.MonthlyMagnitude, 0, len(sums))
	for month, sum := range sums {
		res = append(res, domain.MonthlyMagnitude{
			Front:     series.Front,
			Month:     month,
			Magnitude: math.Abs(sum),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Month.Before(res[j].Month)
	})
	return res
}
