package frontline

import "github.com/de-tools/war-atlas/pkg/models/domain"

func Summarize(series domain.FrontSeries) domain.FrontSummary {
	s := domain.FrontSummary{Front: series.Front, Dates: len(series.Deltas)}
	for _, d := range series.Deltas {
		s.TotalMovement += d.Unsigned
		switch d.Sign {
		case -1:
			s.RussianGains++
		case 1:
			s.UkrainianGains++
		}
		if d.Unsigned > s.LargestMove {
			s.LargestMove = d.Unsigned
			s.LargestMoveDate = d.Date
		}
	}
	if n := len(series.Deltas); n > 0 {
		s.FinalCumulative = series.Deltas[n-1].Cumulative
	}
	return s
}
