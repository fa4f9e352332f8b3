package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/war-atlas/pkg/adapters"
	"github.com/de-tools/war-atlas/pkg/models/domain"
)

// TableWriter prints data series as fixed-width text tables.
type TableWriter struct {
	writer io.Writer
}

func NewTableWriter(writer io.Writer) *TableWriter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TableWriter{writer: writer}
}

const tableTemplate = `
{{.Title}}
{{separator}}
{{row .Headers}}
{{separator}}
{{range .Rows}}{{row .}}
{{end}}{{separator}}
`

type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (tw *TableWriter) write(t table) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, r := range t.Rows {
		for i, cell := range r {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	funcMap := template.FuncMap{
		"row": func(cells []string) string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				var cell string
				if i < len(cells) {
					cell = cells[i]
				}
				parts[i] = fmt.Sprintf(" %-*s ", w, cell)
			}
			return "|" + strings.Join(parts, "|") + "|"
		},
		"separator": func() string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl, err := template.New("table").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl.Execute(tw.writer, t)
}

func (tw *TableWriter) WriteSeries(series domain.FrontSeries) error {
	t := table{
		Title:   fmt.Sprintf("%s front, daily area deltas", series.Front.Title()),
		Headers: []string{"date", "events", "line date", "sign", "unsigned", "signed", "cumulative"},
	}
	for _, d := range series.Deltas {
		t.Rows = append(t.Rows, []string{
			d.Date.Format(adapters.DateLayout),
			strconv.Itoa(d.Events),
			d.LineDate.Format(adapters.DateLayout),
			strconv.Itoa(d.Sign),
			formatFloat(d.Unsigned),
			formatFloat(d.Signed),
			formatFloat(d.Cumulative),
		})
	}
	return tw.write(t)
}

func (tw *TableWriter) WriteMonthly(front domain.Front, months []domain.MonthlyMagnitude) error {
	t := table{
		Title:   fmt.Sprintf("%s front, monthly movement", front.Title()),
		Headers: []string{"month", "magnitude"},
	}
	for _, m := range months {
		if m.Front != front {
			continue
		}
		t.Rows = append(t.Rows, []string{m.Month.Format(adapters.MonthLayout), formatFloat(m.Magnitude)})
	}
	return tw.write(t)
}

func (tw *TableWriter) WriteLosses(losses domain.Table) error {
	t := table{Title: fmt.Sprintf("Russian %s losses per day", losses.Kind)}
	for _, c := range losses.Columns {
		t.Headers = append(t.Headers, c.Name)
	}
	for r := 0; r < losses.Rows(); r++ {
		row := make([]string, len(losses.Columns))
		for i, c := range losses.Columns {
			if c.Numeric {
				row[i] = formatCount(c.Values[r])
			} else {
				row[i] = c.Labels[r]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return tw.write(t)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatCount(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
