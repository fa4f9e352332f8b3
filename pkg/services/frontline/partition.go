package frontline

import (
	"github.com/de-tools/war-atlas/pkg/models/domain"
)

// Thresholds split battle events between the fronts. An event is northern
// when latitude >= MinLatitude and longitude <= MaxLongitude.
type Thresholds struct {
	MinLatitude  float64
	MaxLongitude float64
}

var DefaultThresholds = Thresholds{
	MinLatitude:  50.20,
	MaxLongitude: 35.0364,
}

func (t Thresholds) Classify(e domain.BattleEvent) domain.Front {
	if e.Latitude >= t.MinLatitude && e.Longitude <= t.MaxLongitude {
		return domain.FrontNorthern
	}
	return domain.FrontEastern
}

// Partition keeps only Battles and assigns each of them to exactly one front.
// Input order is preserved inside each front.
func Partition(events []domain.BattleEvent, t Thresholds) map[domain.Front][]domain.BattleEvent {
	fronts := map[domain.Front][]domain.BattleEvent{
		domain.FrontNorthern: {},
		domain.FrontEastern:  {},
	}
	for _, e := range events {
		if e.Type != domain.EventTypeBattle {
			continue
		}
		f := t.Classify(e)
		fronts[f] = append(fronts[f], e)
	}
	return fronts
}
