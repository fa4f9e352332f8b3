package frontline

import (
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/paulmach/orb"
)

// LineOrder arranges one date's events into line order. It must not modify its input.
type LineOrder func(events []domain.BattleEvent) []domain.BattleEvent

// Names reported for the line orders.
const (
	LatitudeOrder = "latitude"
	EventSeqOrder = "event_order"
)

// OrderByLatitude sorts south to north; ties keep event order.
func OrderByLatitude(events []domain.BattleEvent) []domain.BattleEvent {
	res := append([]domain.BattleEvent(nil), events...)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Latitude < res[j].Latitude
	})
	return res
}

// OrderByEventSeq keeps the order events appear in the source file.
func OrderByEventSeq(events []domain.BattleEvent) []domain.BattleEvent {
	res := append([]domain.BattleEvent(nil), events...)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Seq < res[j].Seq
	})
	return res
}

type DateGroup struct {
	Date   time.Time
	Events []domain.BattleEvent
}

// GroupByDate buckets events per day, dates ascending.
func GroupByDate(events []domain.BattleEvent) []DateGroup {
	index := make(map[time.Time]int)
	var groups []DateGroup
	for _, e := range events {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DateGroup{Date: e.Date})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

type Line struct {
	Date   time.Time // date the coordinates come from
	Points orb.LineString
}

// BuildLine returns the line for groups[i]. A date with fewer than two events
// takes the line of the date before it, stepping back until one qualifies. The
// first date has nothing to step back to and keeps its single point.
func BuildLine(groups []DateGroup, i int, order LineOrder) (Line, error) {
	if i < 0 || i >= len(groups) {
		return Line{}, fmt.Errorf("date index %d out of range [0, %d)", i, len(groups))
	}
	g := groups[i]
	switch {
	case len(g.Events) >= 2:
	case i > 0:
		return BuildLine(groups, i-1, order)
	case len(g.Events) == 0:
		return Line{}, fmt.Errorf("%w: %s has no events", ErrNoValidLine, g.Date.Format(time.DateOnly))
	}

	ordered := order(g.Events)
	points := make(orb.LineString, 0, len(ordered))
	for _, e := range ordered {
		points = append(points, orb.Point{e.Longitude, e.Latitude})
	}
	return Line{Date: g.Date, Points: points}, nil
}
