package frontline

import (
	"testing"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtremal(t *testing.T) {
	d := day(2022, 3, 1)
	events := []domain.BattleEvent{battle(d, 50.5, 34.0), battle(d, 50.9, 31.0), battle(d, 50.3, 34.8)}
	assert.Equal(t, 50.9, Extremal(events, AxisLatitude))
	assert.Equal(t, 34.8, Extremal(events, AxisLongitude))
}

func TestSignRules(t *testing.T) {
	tests := []struct {
		name string
		rule SignRule
		prev float64
		cur  float64
		want int
	}{
		{"north pushes north", NorthernSign, 50.5, 50.6, -1},
		{"north pulls back", NorthernSign, 50.6, 50.5, 1},
		{"north unchanged", NorthernSign, 50.5, 50.5, 1},
		{"east pulls back west", EasternSign, 38.0, 37.5, 1},
		{"east pushes east", EasternSign, 37.5, 38.0, -1},
		{"east unchanged", EasternSign, 37.5, 37.5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule(tt.prev, tt.cur))
		})
	}
}

func TestSigns_Domain(t *testing.T) {
	extremals := []float64{50.1, 50.4, 50.4, 50.2, 51.0, 49.9}
	for _, rule := range []SignRule{NorthernSign, EasternSign} {
		signs := Signs(extremals, rule)
		assert.Len(t, signs, len(extremals))
		assert.Equal(t, 0, signs[0])
		for i := 1; i < len(signs); i++ {
			assert.Contains(t, []int{-1, 1}, signs[i])
		}
	}

	assert.Empty(t, Signs(nil, NorthernSign))
}
