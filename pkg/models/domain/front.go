package domain

import (
	"fmt"
	"time"
)

type Front string

const (
	FrontNorthern Front = "north"
	FrontEastern  Front = "east"
)

// Fronts lists every front in reporting order.
var Fronts = []Front{FrontNorthern, FrontEastern}

func ParseFront(s string) (Front, error) {
	switch Front(s) {
	case FrontNorthern, FrontEastern:
		return Front(s), nil
	}
	return "", fmt.Errorf("unknown front %q", s)
}

func (f Front) Title() string {
	switch f {
	case FrontNorthern:
		return "Northern"
	case FrontEastern:
		return "Eastern/Southern"
	default:
		return string(f)
	}
}

// Anchor is a fixed rear reference location used to close a front line.
type Anchor struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// FrontProfile describes how a front is selected and closed into polygons.
type FrontProfile struct {
	Front        Front
	MinLatitude  float64 // northern membership: latitude >= MinLatitude
	MaxLongitude float64 // and longitude <= MaxLongitude
	Anchors      []Anchor
	ExtremalAxis string // latitude | longitude
	DailyOrder   string // latitude | event_order
	MonthlyOrder string
	Until        time.Time
}

// AreaDelta is the movement of one front between a date and the previous one.
type AreaDelta struct {
	Date       time.Time
	Events     int
	LineDate   time.Time // date whose line was used; earlier than Date when carried forward
	Sign       int       // -1 Russian gain, +1 Ukrainian gain, 0 on the first date
	Unsigned   float64
	Signed     float64
	Cumulative float64
}

type FrontSeries struct {
	Front  Front
	Deltas []AreaDelta
}

type MonthlyMagnitude struct {
	Front     Front
	Month     time.Time // first day of the month
	Magnitude float64
}

// FrontSummary condenses a daily series.
type FrontSummary struct {
	Front           Front
	Dates           int
	RussianGains    int
	UkrainianGains  int
	TotalMovement   float64
	FinalCumulative float64
	LargestMove     float64
	LargestMoveDate time.Time
}
