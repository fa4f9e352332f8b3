package store

import "database/sql"

// EventRecord mirrors a row of the battle_events table.
type EventRecord struct {
	Seq       int64
	DataID    string
	EventDate string
	EventType string
	SubType   sql.NullString
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	Location  sql.NullString
}

type EventFilter struct {
	Types        []string
	ExcludeTypes []string
}

type TypeCount struct {
	EventType string
	Count     int64
}
