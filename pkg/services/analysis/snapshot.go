package analysis

import (
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/services/explosions"
	"github.com/paulmach/orb/geojson"
)

// Reader gives read-only access to a finished run.
type Reader interface {
	Profiles() []domain.FrontProfile
	Daily(front domain.Front) (domain.FrontSeries, bool)
	Monthly() []domain.MonthlyMagnitude
	Losses(kind domain.LossKind) (domain.Table, bool)
	Explosions(month time.Time) []domain.BattleEvent
	ExplosionsByMonth() []domain.MonthCount
	Boundary() *geojson.FeatureCollection
}

type Snapshot struct {
	result *Result
}

func NewSnapshot(result *Result) *Snapshot {
	return &Snapshot{result: result}
}

func (s *Snapshot) Profiles() []domain.FrontProfile {
	return s.result.Profiles
}

func (s *Snapshot) Daily(front domain.Front) (domain.FrontSeries, bool) {
	for _, series := range s.result.Daily {
		if series.Front == front {
			return series, true
		}
	}
	return domain.FrontSeries{}, false
}

func (s *Snapshot) Monthly() []domain.MonthlyMagnitude {
	return s.result.Monthly
}

func (s *Snapshot) Losses(kind domain.LossKind) (domain.Table, bool) {
	t, ok := s.result.Losses[kind]
	return t, ok
}

// Explosions returns civilian explosions, only those of month when it is set.
func (s *Snapshot) Explosions(month time.Time) []domain.BattleEvent {
	if month.IsZero() {
		return s.result.Civilian
	}
	res := make([]domain.BattleEvent, 0)
	for _, e := range s.result.Civilian {
		if e.Date.Year() == month.Year() && e.Date.Month() == month.Month() {
			res = append(res, e)
		}
	}
	return res
}

func (s *Snapshot) ExplosionsByMonth() []domain.MonthCount {
	return explosions.CountByMonth(s.result.Civilian)
}

func (s *Snapshot) Boundary() *geojson.FeatureCollection {
	return s.result.Boundary
}
