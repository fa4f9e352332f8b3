package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/war-atlas/pkg/adapters"
	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/models/store"
	"github.com/de-tools/war-atlas/pkg/services/catalog"
	"github.com/de-tools/war-atlas/pkg/services/explosions"
	"github.com/de-tools/war-atlas/pkg/services/frontline"
	"github.com/de-tools/war-atlas/pkg/services/losses"
	"github.com/de-tools/war-atlas/pkg/store/boundary"
	"github.com/de-tools/war-atlas/pkg/store/duckdb/events"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"
)

// PathResolver maps a catalog location to a readable local file.
type PathResolver interface {
	Resolve(ctx context.Context, location string) (string, error)
}

type Dependencies struct {
	Catalog    catalog.Registry
	Resolver   PathResolver
	Events     events.Store
	Losses     losses.Service
	Explosions explosions.Service
	Estimator  *frontline.Estimator
}

// Result holds everything derived in one run.
type Result struct {
	Period     domain.TimePeriod
	Events     int
	TypeCounts []domain.TypeCount
	Profiles   []domain.FrontProfile
	Daily      []domain.FrontSeries
	Monthly    []domain.MonthlyMagnitude
	Losses     map[domain.LossKind]domain.Table
	Civilian   []domain.BattleEvent
	Boundary   *geojson.FeatureCollection
}

type Service struct {
	deps Dependencies
}

func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// Run loads every catalogued dataset and computes all series. Any failure in
// the battle pipeline aborts the run; loss and boundary datasets are optional.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	res := &Result{
		Profiles: s.deps.Estimator.Profiles(),
		Losses:   make(map[domain.LossKind]domain.Table),
	}

	battles, err := s.locate(ctx, domain.DatasetBattles)
	if err != nil {
		return nil, err
	}
	if _, err := s.deps.Events.Load(ctx, battles); err != nil {
		return nil, err
	}

	counts, err := s.deps.Events.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	res.TypeCounts = adapters.MapStoreTypeCountsToDomain(counts)

	records, err := s.deps.Events.List(ctx, store.EventFilter{
		ExcludeTypes: []string{string(domain.EventTypeStrategicDevelopment)},
	})
	if err != nil {
		return nil, err
	}
	evts, err := adapters.MapStoreEventsToDomain(records)
	if err != nil {
		return nil, fmt.Errorf("battle events: %w", err)
	}
	res.Events = len(evts)
	res.Period = period(evts)
	logger.Info().Int("events", len(evts)).Msg("battle events ready")

	if res.Daily, err = s.deps.Estimator.Daily(ctx, evts); err != nil {
		return nil, fmt.Errorf("daily front lines: %w", err)
	}
	if res.Monthly, err = s.deps.Estimator.Monthly(ctx, evts); err != nil {
		return nil, fmt.Errorf("monthly front lines: %w", err)
	}
	if res.Civilian, err = s.deps.Explosions.Civilian(ctx, evts); err != nil {
		return nil, fmt.Errorf("civilian explosions: %w", err)
	}

	for _, kind := range domain.LossKinds {
		path, err := s.locate(ctx, domain.DatasetName(kind))
		if errors.Is(err, catalog.ErrDatasetNotFound) {
			logger.Warn().Str("kind", string(kind)).Msg("loss dataset not catalogued, skipping")
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := s.deps.Losses.Load(ctx, kind, path); err != nil {
			return nil, err
		}
		table, err := s.deps.Losses.Normalized(ctx, kind)
		if err != nil {
			return nil, err
		}
		res.Losses[kind] = table
	}

	path, err := s.locate(ctx, domain.DatasetBoundary)
	switch {
	case errors.Is(err, catalog.ErrDatasetNotFound):
		logger.Warn().Msg("boundary dataset not catalogued, skipping")
	case err != nil:
		return nil, err
	default:
		if res.Boundary, err = boundary.Load(path); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *Service) locate(ctx context.Context, name domain.DatasetName) (string, error) {
	ds, err := s.deps.Catalog.GetDataset(ctx, name)
	if err != nil {
		return "", err
	}
	path, err := s.deps.Resolver.Resolve(ctx, ds.Path)
	if err != nil {
		return "", fmt.Errorf("dataset %s: %w", name, err)
	}
	return path, nil
}

func period(evts []domain.BattleEvent) domain.TimePeriod {
	if len(evts) == 0 {
		return domain.TimePeriod{}
	}
	start, end := evts[0].Date, evts[0].Date
	for _, e := range evts[1:] {
		if e.Date.Before(start) {
			start = e.Date
		}
		if e.Date.After(end) {
			end = e.Date
		}
	}
	return domain.NewTimePeriod(start, end)
}
