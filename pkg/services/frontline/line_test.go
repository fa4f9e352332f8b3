package frontline

import (
	"testing"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	d1, d2 := day(2022, 3, 1), day(2022, 3, 2)
	a := battle(d2, 48.0, 37.0)
	b := battle(d1, 49.0, 36.0)
	c := battle(d2, 47.0, 38.0)

	groups := GroupByDate([]domain.BattleEvent{a, b, c})
	require.Len(t, groups, 2)
	assert.Equal(t, d1, groups[0].Date)
	assert.Equal(t, d2, groups[1].Date)
	assert.Equal(t, []domain.BattleEvent{a, c}, groups[1].Events)
}

func TestLineOrders(t *testing.T) {
	d := day(2022, 3, 1)
	first := battle(d, 49.0, 36.0)
	second := battle(d, 47.0, 38.0)
	third := battle(d, 48.0, 37.0)
	events := []domain.BattleEvent{third, first, second}

	byLat := OrderByLatitude(events)
	assert.Equal(t, []domain.BattleEvent{second, third, first}, byLat)

	bySeq := OrderByEventSeq(events)
	assert.Equal(t, []domain.BattleEvent{first, second, third}, bySeq)

	assert.Equal(t, third, events[0], "input must not be reordered")
}

func TestBuildLine_PointsAreLonLat(t *testing.T) {
	d := day(2022, 3, 1)
	groups := GroupByDate([]domain.BattleEvent{
		battle(d, 50.6, 31.0),
		battle(d, 50.3, 33.0),
	})

	line, err := BuildLine(groups, 0, OrderByLatitude)
	require.NoError(t, err)
	assert.Equal(t, d, line.Date)
	assert.Equal(t, orb.LineString{{33.0, 50.3}, {31.0, 50.6}}, line.Points)
}

func TestBuildLine_CarryForward(t *testing.T) {
	d1, d2, d3, d4 := day(2022, 3, 1), day(2022, 3, 2), day(2022, 3, 3), day(2022, 3, 4)
	groups := GroupByDate([]domain.BattleEvent{
		battle(d1, 48.0, 37.0),
		battle(d1, 47.0, 38.0),
		battle(d2, 49.0, 36.0),
		battle(d2, 46.0, 35.0),
		battle(d2, 47.5, 37.2),
		battle(d3, 45.0, 34.0),
		battle(d4, 44.0, 33.0),
	})

	valid, err := BuildLine(groups, 1, OrderByLatitude)
	require.NoError(t, err)

	t.Run("single event takes preceding line", func(t *testing.T) {
		line, err := BuildLine(groups, 2, OrderByLatitude)
		require.NoError(t, err)
		assert.Equal(t, valid, line)
		assert.Equal(t, d2, line.Date)
	})

	t.Run("steps back repeatedly", func(t *testing.T) {
		line, err := BuildLine(groups, 3, OrderByLatitude)
		require.NoError(t, err)
		assert.Equal(t, valid, line)
	})

	t.Run("first date keeps its single point", func(t *testing.T) {
		single := GroupByDate([]domain.BattleEvent{battle(d1, 50.5, 34.0), battle(d2, 50.6, 34.0)})

		first, err := BuildLine(single, 0, OrderByLatitude)
		require.NoError(t, err)
		assert.Equal(t, Line{Date: d1, Points: orb.LineString{{34.0, 50.5}}}, first)

		carried, err := BuildLine(single, 1, OrderByLatitude)
		require.NoError(t, err)
		assert.Equal(t, first, carried)
	})

	t.Run("first date without events", func(t *testing.T) {
		_, err := BuildLine([]DateGroup{{Date: d1}}, 0, OrderByLatitude)
		assert.ErrorIs(t, err, ErrNoValidLine)
		assert.ErrorContains(t, err, "2022-03-01")
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := BuildLine(groups, 4, OrderByLatitude)
		assert.Error(t, err)
	})
}
