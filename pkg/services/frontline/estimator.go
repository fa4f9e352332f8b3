package frontline

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
)

// Profile binds a front to its anchors, attribution rule and line orderings.
type Profile struct {
	Front        domain.Front
	Axis         Axis
	Sign         SignRule
	DailyOrder   LineOrder
	MonthlyOrder LineOrder
	dailyName    string
	monthlyName  string
	Until        time.Time // daily dates must be before Until; zero keeps all
	polygons     *PolygonBuilder
}

type Options struct {
	Thresholds     Thresholds
	Tolerance      float64
	NorthernCutoff time.Time
	Anchors        map[domain.Front][]domain.Anchor
	Monthly        MonthlySample
}

func DefaultOptions() Options {
	return Options{
		Thresholds:     DefaultThresholds,
		Tolerance:      DefaultTolerance,
		NorthernCutoff: time.Date(2022, time.April, 7, 0, 0, 0, 0, time.UTC),
		Anchors:        DefaultAnchors(),
		Monthly:        DefaultMonthlySample,
	}
}

// Estimator turns battle events into per-front displacement series.
type Estimator struct {
	opts     Options
	area     *AreaCalculator
	profiles map[domain.Front]*Profile
}

func NewEstimator(opts Options) (*Estimator, error) {
	anchors := DefaultAnchors()
	for front, a := range opts.Anchors {
		if len(a) > 0 {
			anchors[front] = a
		}
	}

	north, err := NewPolygonBuilder(domain.FrontNorthern, anchors[domain.FrontNorthern])
	if err != nil {
		return nil, err
	}
	east, err := NewPolygonBuilder(domain.FrontEastern, anchors[domain.FrontEastern])
	if err != nil {
		return nil, err
	}
	opts.Anchors = anchors

	return &Estimator{
		opts: opts,
		area: NewAreaCalculator(opts.Tolerance),
		profiles: map[domain.Front]*Profile{
			domain.FrontNorthern: {
				Front:        domain.FrontNorthern,
				Axis:         AxisLatitude,
				Sign:         NorthernSign,
				DailyOrder:   OrderByLatitude,
				MonthlyOrder: OrderByLatitude,
				dailyName:    LatitudeOrder,
				monthlyName:  LatitudeOrder,
				Until:        opts.NorthernCutoff,
				polygons:     north,
			},
			domain.FrontEastern: {
				Front:        domain.FrontEastern,
				Axis:         AxisLongitude,
				Sign:         EasternSign,
				DailyOrder:   OrderByLatitude,
				MonthlyOrder: OrderByEventSeq,
				dailyName:    LatitudeOrder,
				monthlyName:  EventSeqOrder,
				polygons:     east,
			},
		},
	}, nil
}

func (e *Estimator) Profiles() []domain.FrontProfile {
	res := make([]domain.FrontProfile, 0, len(domain.Fronts))
	for _, f := range domain.Fronts {
		p := e.profiles[f]
		res = append(res, domain.FrontProfile{
			Front:        f,
			MinLatitude:  e.opts.Thresholds.MinLatitude,
			MaxLongitude: e.opts.Thresholds.MaxLongitude,
			Anchors:      e.opts.Anchors[f],
			ExtremalAxis: string(p.Axis),
			DailyOrder:   p.dailyName,
			MonthlyOrder: p.monthlyName,
			Until:        p.Until,
		})
	}
	return res
}

// Daily returns one series per front over every date the front has battles on.
func (e *Estimator) Daily(ctx context.Context, events []domain.BattleEvent) ([]domain.FrontSeries, error) {
	fronts := Partition(events, e.opts.Thresholds)

	res := make([]domain.FrontSeries, 0, len(domain.Fronts))
	for _, f := range domain.Fronts {
		p := e.profiles[f]
		groups := until(GroupByDate(fronts[f]), p.Until)
		series, err := e.Series(ctx, p, groups, p.DailyOrder)
		if err != nil {
			return nil, err
		}
		res = append(res, series)
	}
	return res, nil
}

// Monthly reruns the estimation on the sample dates and folds each front's
// signed deltas into calendar months.
func (e *Estimator) Monthly(ctx context.Context, events []domain.BattleEvent) ([]domain.MonthlyMagnitude, error) {
	fronts := Partition(e.opts.Monthly.Filter(events), e.opts.Thresholds)

	var res []domain.MonthlyMagnitude
	for _, f := range domain.Fronts {
		p := e.profiles[f]
		series, err := e.Series(ctx, p, GroupByDate(fronts[f]), p.MonthlyOrder)
		if err != nil {
			return nil, err
		}
		res = append(res, AggregateByMonth(series)...)
	}
	return res, nil
}

// Series computes area deltas between consecutive date groups of one front.
func (e *Estimator) Series(ctx context.Context, p *Profile, groups []DateGroup, order LineOrder) (domain.FrontSeries, error) {
	logger := zerolog.Ctx(ctx)
	series := domain.FrontSeries{Front: p.Front, Deltas: make([]domain.AreaDelta, 0, len(groups))}

	extremals := make([]float64, len(groups))
	for i, g := range groups {
		extremals[i] = Extremal(g.Events, p.Axis)
	}
	signs := Signs(extremals, p.Sign)

	var (
		prev       orb.Polygon
		cumulative float64
	)
	for i, g := range groups {
		line, err := BuildLine(groups, i, order)
		if err != nil {
			return domain.FrontSeries{}, fmt.Errorf("front %s: %w", p.Front, err)
		}
		polygon, err := p.polygons.Build(line.Points)
		if err != nil {
			return domain.FrontSeries{}, fmt.Errorf("front %s, date %s: %w", p.Front, g.Date.Format(time.DateOnly), err)
		}

		var unsigned float64
		if i > 0 {
			unsigned, err = e.area.Diff(polygon, prev)
			if err != nil {
				return domain.FrontSeries{}, fmt.Errorf("front %s, date %s: %w", p.Front, g.Date.Format(time.DateOnly), err)
			}
		}
		signed := unsigned * float64(signs[i])
		cumulative += signed

		if !line.Date.Equal(g.Date) {
			logger.Debug().
				Str("front", string(p.Front)).
				Time("date", g.Date).
				Time("line_date", line.Date).
				Msg("line carried forward")
		}

		series.Deltas = append(series.Deltas, domain.AreaDelta{
			Date:       g.Date,
			Events:     len(g.Events),
			LineDate:   line.Date,
			Sign:       signs[i],
			Unsigned:   unsigned,
			Signed:     signed,
			Cumulative: cumulative,
		})
		prev = polygon
	}

	logger.Debug().
		Str("front", string(p.Front)).
		Int("dates", len(groups)).
		Float64("cumulative", cumulative).
		Msg("front series computed")
	return series, nil
}

func (e *Estimator) profile(front domain.Front) (*Profile, bool) {
	p, ok := e.profiles[front]
	return p, ok
}

func until(groups []DateGroup, cutoff time.Time) []DateGroup {
	if cutoff.IsZero() {
		return groups
	}
	res := make([]DateGroup, 0, len(groups))
	for _, g := range groups {
		if g.Date.Before(cutoff) {
			res = append(res, g)
		}
	}
	return res
}
