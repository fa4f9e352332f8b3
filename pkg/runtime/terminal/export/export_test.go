package export

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2022, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{
		Title:  "Front lines",
		Period: domain.NewTimePeriod(day(1), day(10)),
		Sections: []domain.ReportSection{
			{
				Title:   "Northern front (daily)",
				Summary: map[string]interface{}{"Dates": 10},
				Details: []domain.ReportDetail{
					{Name: "Total movement", Value: "1.2345", Unit: "deg²", Description: "sum of buffered area deltas"},
				},
			},
			{Title: "Boundary", Summary: map[string]interface{}{"Regions": 27}},
		},
	}

	require.NoError(t, NewReporter(&buf).Handle(report))
	out := buf.String()

	assert.Contains(t, out, "Front lines (10 days)")
	assert.Contains(t, out, "Period: 2022-03-01 to 2022-03-10")
	assert.Contains(t, out, "=== Northern front (daily) ===")
	assert.Contains(t, out, "Dates: 10")
	assert.Contains(t, out, "| Total movement")
	assert.Contains(t, out, "1.2345 |")
	assert.Contains(t, out, "Regions: 27")
}

func TestTableWriter_WriteSeries(t *testing.T) {
	var buf bytes.Buffer
	series := domain.FrontSeries{
		Front: domain.FrontNorthern,
		Deltas: []domain.AreaDelta{
			{Date: day(1), Events: 2, LineDate: day(1)},
			{Date: day(2), Events: 1, LineDate: day(1), Sign: -1, Unsigned: 0.5, Signed: -0.5, Cumulative: -0.5},
		},
	}

	require.NoError(t, NewTableWriter(&buf).WriteSeries(series))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "Northern front, daily area deltas", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "+------------+"))
	assert.Contains(t, lines[2], "| date       | events |")
	assert.Contains(t, lines[5], "| 2022-03-02 | 1      | 2022-03-01 | -1   | 0.5000")
	assert.Contains(t, lines[5], "-0.5000")
}

func TestTableWriter_WriteMonthlyAndLosses(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf)

	require.NoError(t, tw.WriteMonthly(domain.FrontEastern, []domain.MonthlyMagnitude{
		{Front: domain.FrontNorthern, Month: day(1), Magnitude: 9},
		{Front: domain.FrontEastern, Month: day(1), Magnitude: 0.125},
	}))
	assert.Contains(t, buf.String(), "| 2022-03 | 0.1250    |")
	assert.NotContains(t, buf.String(), "9.0000")

	buf.Reset()
	require.NoError(t, tw.WriteLosses(domain.Table{
		Kind: domain.LossKindEquipment,
		Columns: []domain.Column{
			{Name: "date", Labels: []string{"2022-02-25", "2022-02-26"}},
			{Name: "tank", Numeric: true, Values: []float64{80, 66}},
			{Name: "drone", Numeric: true, Values: []float64{0, math.NaN()}},
		},
	}))
	out := buf.String()
	assert.Contains(t, out, "Russian equipment losses per day")
	assert.Contains(t, out, "| 2022-02-26 | 66   |       |")
}
