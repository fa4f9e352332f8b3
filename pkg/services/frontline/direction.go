package frontline

import (
	"math"

	"github.com/de-tools/war-atlas/pkg/models/domain"
)

type Axis string

const (
	AxisLatitude  Axis = "latitude"
	AxisLongitude Axis = "longitude"
)

// Extremal is the largest coordinate along axis among events.
func Extremal(events []domain.BattleEvent, axis Axis) float64 {
	ext := math.Inf(-1)
	for _, e := range events {
		v := e.Latitude
		if axis == AxisLongitude {
			v = e.Longitude
		}
		if v > ext {
			ext = v
		}
	}
	return ext
}

// SignRule attributes the move from prev to cur: +1 Ukrainian gain, -1 Russian gain.
type SignRule func(prev, cur float64) int

// NorthernSign: the front pushing north is a Russian gain.
func NorthernSign(prev, cur float64) int {
	if cur > prev {
		return -1
	}
	return 1
}

// EasternSign: the front pulling back west is a Ukrainian gain.
func EasternSign(prev, cur float64) int {
	if cur < prev {
		return 1
	}
	return -1
}

// Signs returns one sign per extremal value, 0 at index 0.
func Signs(extremals []float64, rule SignRule) []int {
	signs := make([]int, len(extremals))
	for i := 1; i < len(extremals); i++ {
		signs[i] = rule(extremals[i-1], extremals[i])
	}
	return signs
}
