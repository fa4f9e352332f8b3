package report

import (
	"fmt"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/de-tools/war-atlas/pkg/services/explosions"
	"github.com/de-tools/war-atlas/pkg/services/frontline"
	"github.com/de-tools/war-atlas/pkg/services/losses"
	"github.com/de-tools/war-atlas/pkg/store/boundary"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "January 2006"
	areaUnit    = "deg²"
)

// Build lays out a finished run as a report.
func Build(res *analysis.Result) *domain.Report {
	r := &domain.Report{
		Title:  "Russia-Ukraine war: front-line movement and losses",
		Period: res.Period,
	}

	r.Sections = append(r.Sections, eventsSection(res))
	for _, series := range res.Daily {
		r.Sections = append(r.Sections, frontSection(frontline.Summarize(series)))
	}
	r.Sections = append(r.Sections, monthlySection(res.Monthly))
	r.Sections = append(r.Sections, explosionsSection(res.Civilian))
	for _, kind := range domain.LossKinds {
		if table, ok := res.Losses[kind]; ok {
			r.Sections = append(r.Sections, lossSection(kind, table))
		}
	}
	if res.Boundary != nil {
		r.Sections = append(r.Sections, domain.ReportSection{
			Title: "Boundary",
			Summary: map[string]interface{}{
				"Features": len(res.Boundary.Features),
				"Regions":  len(boundary.Regions(res.Boundary, "name")),
			},
		})
	}
	return r
}

func eventsSection(res *analysis.Result) domain.ReportSection {
	s := domain.ReportSection{
		Title: "Events",
		Summary: map[string]interface{}{
			"Events analysed":     res.Events,
			"Civilian explosions": len(res.Civilian),
		},
	}
	for _, c := range res.TypeCounts {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:  string(c.Type),
			Value: c.Count,
			Unit:  "events",
		})
	}
	return s
}

func frontSection(sum domain.FrontSummary) domain.ReportSection {
	s := domain.ReportSection{
		Title: fmt.Sprintf("%s front (daily)", sum.Front.Title()),
		Summary: map[string]interface{}{
			"Dates": sum.Dates,
		},
		Details: []domain.ReportDetail{
			{Name: "Total movement", Value: fmt.Sprintf("%.4f", sum.TotalMovement), Unit: areaUnit, Description: "sum of buffered area deltas"},
			{Name: "Final cumulative", Value: fmt.Sprintf("%.4f", sum.FinalCumulative), Unit: areaUnit, Description: "positive: Ukrainian net gain"},
			{Name: "Russian gains", Value: sum.RussianGains, Unit: "days"},
			{Name: "Ukrainian gains", Value: sum.UkrainianGains, Unit: "days"},
		},
	}
	if !sum.LargestMoveDate.IsZero() {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        "Largest move",
			Value:       fmt.Sprintf("%.4f", sum.LargestMove),
			Unit:        areaUnit,
			Description: sum.LargestMoveDate.Format(dateLayout),
		})
	}
	return s
}

func monthlySection(months []domain.MonthlyMagnitude) domain.ReportSection {
	s := domain.ReportSection{Title: "Monthly movement"}
	for _, m := range months {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s, %s", m.Front.Title(), m.Month.Format(monthLayout)),
			Value:       fmt.Sprintf("%.4f", m.Magnitude),
			Unit:        areaUnit,
			Description: "absolute net movement",
		})
	}
	return s
}

func explosionsSection(civilian []domain.BattleEvent) domain.ReportSection {
	s := domain.ReportSection{
		Title:   "Remote explosions away from battles",
		Summary: map[string]interface{}{"Total": len(civilian)},
	}
	for _, c := range explosions.CountByMonth(civilian) {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:  c.Month.Format(monthLayout),
			Value: c.Count,
			Unit:  "events",
		})
	}
	return s
}

func lossSection(kind domain.LossKind, table domain.Table) domain.ReportSection {
	s := domain.ReportSection{
		Title:   fmt.Sprintf("Russian %s losses", kind),
		Summary: map[string]interface{}{"Days": table.Rows()},
	}
	for _, h := range losses.Highlights(table) {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        h.Category,
			Value:       fmt.Sprintf("%.0f", h.Total),
			Unit:        "total",
			Description: fmt.Sprintf("peak %.0f on %s", h.Peak, h.PeakDay),
		})
	}
	return s
}
