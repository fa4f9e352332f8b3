package domain

import "time"

type EventType string

const (
	EventTypeBattle                EventType = "Battles"
	EventTypeExplosion             EventType = "Explosions/Remote violence"
	EventTypeStrategicDevelopment  EventType = "Strategic developments"
	EventTypeViolenceAgainstCivils EventType = "Violence against civilians"
	EventTypeProtest               EventType = "Protests"
	EventTypeRiot                  EventType = "Riots"
)

// BattleEvent is a single reported incident from the ACLED event table.
type BattleEvent struct {
	ID        string    // data_id
	Seq       int64     // position in the source file
	Date      time.Time // day granularity, UTC
	Type      EventType // Battles, Explosions/Remote violence, ...
	SubType   string    // Armed clash, Shelling/artillery/missile attack, ...
	Latitude  float64
	Longitude float64
	Location  string
}

type TypeCount struct {
	Type  EventType
	Count int64
}

type MonthCount struct {
	Month time.Time // first day of the month
	Count int
}
