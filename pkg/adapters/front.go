package adapters

import (
	"github.com/de-tools/war-atlas/pkg/models/api"
	"github.com/de-tools/war-atlas/pkg/models/domain"
)

const MonthLayout = "2006-01"

func MapFrontSeriesDomainToApi(series domain.FrontSeries) api.FrontSeries {
	res := api.FrontSeries{
		Front:  string(series.Front),
		Deltas: make([]api.AreaDelta, 0, len(series.Deltas)),
	}
	for _, d := range series.Deltas {
		res.Deltas = append(res.Deltas, MapAreaDeltaDomainToApi(d))
	}
	return res
}

func MapAreaDeltaDomainToApi(d domain.AreaDelta) api.AreaDelta {
	return api.AreaDelta{
		Date:       d.Date.Format(DateLayout),
		Events:     d.Events,
		LineDate:   d.LineDate.Format(DateLayout),
		Sign:       d.Sign,
		Unsigned:   d.Unsigned,
		Signed:     d.Signed,
		Cumulative: d.Cumulative,
	}
}

func MapMonthlyMagnitudeDomainToApi(m domain.MonthlyMagnitude) api.MonthlyMagnitude {
	return api.MonthlyMagnitude{
		Front:     string(m.Front),
		Month:     m.Month.Format(MonthLayout),
		Magnitude: m.Magnitude,
	}
}

func MapFrontProfileDomainToApi(p domain.FrontProfile) api.FrontProfile {
	res := api.FrontProfile{
		Front:        string(p.Front),
		Title:        p.Front.Title(),
		MinLatitude:  p.MinLatitude,
		MaxLongitude: p.MaxLongitude,
		ExtremalAxis: p.ExtremalAxis,
		DailyOrder:   p.DailyOrder,
		MonthlyOrder: p.MonthlyOrder,
		Anchors:      make([]api.Anchor, 0, len(p.Anchors)),
	}
	if !p.Until.IsZero() {
		res.Until = p.Until.Format(DateLayout)
	}
	for _, a := range p.Anchors {
		res.Anchors = append(res.Anchors, api.Anchor{
			Name:      a.Name,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		})
	}
	return res
}

func MapFrontSummaryDomainToApi(s domain.FrontSummary) api.FrontSummary {
	res := api.FrontSummary{
		Front:           string(s.Front),
		Dates:           s.Dates,
		RussianGains:    s.RussianGains,
		UkrainianGains:  s.UkrainianGains,
		TotalMovement:   s.TotalMovement,
		FinalCumulative: s.FinalCumulative,
		LargestMove:     s.LargestMove,
	}
	if !s.LargestMoveDate.IsZero() {
		res.LargestMoveDate = s.LargestMoveDate.Format(DateLayout)
	}
	return res
}
