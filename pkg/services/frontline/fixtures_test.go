package frontline

import (
	"strconv"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var seq int64

func battle(date time.Time, lat, lon float64) domain.BattleEvent {
	seq++
	return domain.BattleEvent{
		ID:        strconv.FormatInt(seq, 10),
		Seq:       seq,
		Date:      date,
		Type:      domain.EventTypeBattle,
		SubType:   "Armed clash",
		Latitude:  lat,
		Longitude: lon,
	}
}

func ofType(e domain.BattleEvent, t domain.EventType) domain.BattleEvent {
	e.Type = t
	return e
}
