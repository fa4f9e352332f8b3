package losses

import (
	"math"
	"slices"

	"github.com/de-tools/war-atlas/pkg/models/domain"
)

// Normalize turns cumulative counters into per-day values. Row 0 keeps its
// absolute value; index and non-numeric columns are copied unchanged.
func Normalize(table domain.Table) domain.Table {
	index := table.Kind.IndexColumns()
	res := domain.Table{Kind: table.Kind, Columns: make([]domain.Column, 0, len(table.Columns))}

	for _, col := range table.Columns {
		if !col.Numeric || slices.Contains(index, col.Name) {
			res.Columns = append(res.Columns, copyColumn(col))
			continue
		}
		out := domain.Column{Name: col.Name, Numeric: true, Values: make([]float64, len(col.Values))}
		for i, v := range col.Values {
			if i == 0 {
				out.Values[i] = v
				continue
			}
			out.Values[i] = v - col.Values[i-1]
		}
		res.Columns = append(res.Columns, out)
	}
	return res
}

func copyColumn(col domain.Column) domain.Column {
	return domain.Column{
		Name:    col.Name,
		Numeric: col.Numeric,
		Values:  slices.Clone(col.Values),
		Labels:  slices.Clone(col.Labels),
	}
}

// Highlights reports the peak and the total of every category of a normalized table.
func Highlights(table domain.Table) []domain.LossHighlight {
	index := table.Kind.IndexColumns()
	dates, hasDates := table.Column("date")

	var res []domain.LossHighlight
	for _, col := range table.Columns {
		if !col.Numeric || slices.Contains(index, col.Name) {
			continue
		}
		h := domain.LossHighlight{Category: col.Name, Peak: math.NaN()}
		peakRow := -1
		for i, v := range col.Values {
			if math.IsNaN(v) {
				continue
			}
			h.Total += v
			if peakRow < 0 || v > h.Peak {
				h.Peak = v
				peakRow = i
			}
		}
		if peakRow < 0 {
			continue
		}
		if hasDates && peakRow < dates.Len() {
			h.PeakDay = label(dates, peakRow)
		}
		res = append(res, h)
	}
	return res
}

func label(col domain.Column, row int) string {
	if col.Numeric {
		return formatNumber(col.Values[row])
	}
	return col.Labels[row]
}
