package explosions

import (
	"sort"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Options describe when an explosion counts as linked to a battle: a battle
// closer than RadiusKm dated strictly inside (date-WindowBefore, date+WindowAfter).
type Options struct {
	RadiusKm     float64
	WindowBefore time.Duration
	WindowAfter  time.Duration
	CachePath    string
	UseCache     bool
}

func DefaultOptions() Options {
	return Options{
		RadiusKm:     100,
		WindowBefore: 21 * 24 * time.Hour,
		WindowAfter:  10 * 24 * time.Hour,
	}
}

type Classifier struct {
	opts Options
}

func NewClassifier(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Civilian returns the explosions with no battle nearby in space and time, in input order.
func (c *Classifier) Civilian(events []domain.BattleEvent) []domain.BattleEvent {
	var battles, explosions []domain.BattleEvent
	for _, e := range events {
		switch e.Type {
		case domain.EventTypeBattle:
			battles = append(battles, e)
		case domain.EventTypeExplosion:
			explosions = append(explosions, e)
		}
	}
	sort.SliceStable(battles, func(i, j int) bool {
		return battles[i].Date.Before(battles[j].Date)
	})

	res := make([]domain.BattleEvent, 0)
	for _, x := range explosions {
		if !c.nearBattle(x, battles) {
			res = append(res, x)
		}
	}
	return res
}

func (c *Classifier) nearBattle(x domain.BattleEvent, battles []domain.BattleEvent) bool {
	from := x.Date.Add(-c.opts.WindowBefore)
	to := x.Date.Add(c.opts.WindowAfter)
	origin := orb.Point{x.Longitude, x.Latitude}
	limit := c.opts.RadiusKm * 1000

	start := sort.Search(len(battles), func(i int) bool {
		return battles[i].Date.After(from)
	})
	for _, b := range battles[start:] {
		if !b.Date.Before(to) {
			break
		}
		if geo.DistanceHaversine(origin, orb.Point{b.Longitude, b.Latitude}) < limit {
			return true
		}
	}
	return false
}

// CountByMonth counts events per calendar month, months ascending.
func CountByMonth(events []domain.BattleEvent) []domain.MonthCount {
	counts := make(map[time.Time]int)
	for _, e := range events {
		counts[time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)]++
	}
	res := make([]domain.MonthCount, 0, len(counts))
	for m, n := range counts {
		res = append(res, domain.MonthCount{Month: m, Count: n})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Month.Before(res[j].Month)
	})
	return res
}
