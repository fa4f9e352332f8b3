package losses

import (
	"math"
	"testing"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equipmentTable() domain.Table {
	return domain.Table{
		Kind: domain.LossKindEquipment,
		Columns: []domain.Column{
			{Name: "date", Labels: []string{"2022-02-25", "2022-02-26", "2022-02-27"}},
			{Name: "day", Numeric: true, Values: []float64{2, 3, 4}},
			{Name: "tank", Numeric: true, Values: []float64{10, 15, 22}},
			{Name: "drone", Numeric: true, Values: []float64{0, math.NaN(), 3}},
			{Name: "greatest losses direction", Labels: []string{"", "Kyiv", "Kharkiv"}},
		},
	}
}

func TestNormalize(t *testing.T) {
	in := equipmentTable()
	out := Normalize(in)
	require.Len(t, out.Columns, 5)
	assert.Equal(t, domain.LossKindEquipment, out.Kind)

	t.Run("cumulative becomes daily", func(t *testing.T) {
		tank, ok := out.Column("tank")
		require.True(t, ok)
		assert.Equal(t, []float64{10, 5, 7}, tank.Values)
	})

	t.Run("index columns unchanged", func(t *testing.T) {
		d, _ := out.Column("day")
		assert.Equal(t, []float64{2, 3, 4}, d.Values)
		date, _ := out.Column("date")
		assert.Equal(t, []string{"2022-02-25", "2022-02-26", "2022-02-27"}, date.Labels)
	})

	t.Run("non numeric passes through", func(t *testing.T) {
		dir, _ := out.Column("greatest losses direction")
		assert.False(t, dir.Numeric)
		assert.Equal(t, []string{"", "Kyiv", "Kharkiv"}, dir.Labels)
	})

	t.Run("missing values propagate", func(t *testing.T) {
		drone, _ := out.Column("drone")
		assert.Equal(t, 0.0, drone.Values[0])
		assert.True(t, math.IsNaN(drone.Values[1]))
		assert.True(t, math.IsNaN(drone.Values[2]))
	})

	t.Run("input untouched", func(t *testing.T) {
		tank, _ := in.Column("tank")
		assert.Equal(t, []float64{10, 15, 22}, tank.Values)
	})
}

func TestNormalize_Empty(t *testing.T) {
	out := Normalize(domain.Table{Kind: domain.LossKindPersonnel})
	assert.Equal(t, 0, out.Rows())
}

func TestHighlights(t *testing.T) {
	highlights := Highlights(Normalize(equipmentTable()))
	require.Len(t, highlights, 2)

	assert.Equal(t, domain.LossHighlight{Category: "tank", PeakDay: "2022-02-25", Peak: 10, Total: 22}, highlights[0])
	assert.Equal(t, "drone", highlights[1].Category)
	assert.Equal(t, 0.0, highlights[1].Peak)
	assert.Equal(t, 0.0, highlights[1].Total)
}
