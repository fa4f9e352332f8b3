package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/de-tools/war-atlas/pkg/services/catalog"
	"github.com/de-tools/war-atlas/pkg/services/config"
	"github.com/de-tools/war-atlas/pkg/services/explosions"
	"github.com/de-tools/war-atlas/pkg/services/frontline"
	"github.com/de-tools/war-atlas/pkg/services/losses"
	"github.com/de-tools/war-atlas/pkg/store/duckdb"
	"github.com/de-tools/war-atlas/pkg/store/duckdb/events"
	explosionstore "github.com/de-tools/war-atlas/pkg/store/duckdb/explosions"
	lossstore "github.com/de-tools/war-atlas/pkg/store/duckdb/losses"
	"github.com/de-tools/war-atlas/pkg/store/objects"
	"github.com/rs/zerolog"
)

// App owns the database and the analysis service built from a Config.
type App struct {
	Config   *config.Config
	Analysis *analysis.Service
	db       *sql.DB
}

func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func FrontlineOptions(cfg config.FrontlineConfig) (frontline.Options, error) {
	cutoff, err := cfg.Cutoff()
	if err != nil {
		return frontline.Options{}, err
	}
	start, err := cfg.Monthly.StartDate()
	if err != nil {
		return frontline.Options{}, err
	}

	opts := frontline.DefaultOptions()
	opts.Thresholds = frontline.Thresholds{MinLatitude: cfg.MinLatitude, MaxLongitude: cfg.MaxLongitude}
	opts.Tolerance = cfg.BufferTolerance
	opts.NorthernCutoff = cutoff
	opts.Monthly = frontline.MonthlySample{Start: start, StrideDays: cfg.Monthly.StrideDays, Steps: cfg.Monthly.Steps}

	for name, anchors := range cfg.Anchors {
		front, err := domain.ParseFront(name)
		if err != nil {
			return frontline.Options{}, fmt.Errorf("frontline.anchors: %w", err)
		}
		converted := make([]domain.Anchor, 0, len(anchors))
		for _, a := range anchors {
			converted = append(converted, domain.Anchor{Name: a.Name, Latitude: a.Latitude, Longitude: a.Longitude})
		}
		opts.Anchors[front] = converted
	}
	return opts, nil
}

func ExplosionOptions(cfg config.ExplosionsConfig) explosions.Options {
	return explosions.Options{
		RadiusKm:     cfg.RadiusKm,
		WindowBefore: cfg.WindowBefore(),
		WindowAfter:  cfg.WindowAfter(),
		CachePath:    cfg.CachePath,
		UseCache:     cfg.UseCache,
	}
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := zerolog.Ctx(ctx)

	reg, err := catalog.NewRegistry(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	opts, err := FrontlineOptions(cfg.Frontline)
	if err != nil {
		return nil, err
	}
	estimator, err := frontline.NewEstimator(opts)
	if err != nil {
		return nil, err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	st, err := newStores(db)
	if err != nil {
		if cerr := db.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close database")
		}
		return nil, err
	}

	logger.Info().
		Str("catalog", cfg.Catalog.Path).
		Str("database", cfg.Database.Path).
		Msg("atlas configured")

	return &App{
		Config: cfg,
		db:     db,
		Analysis: analysis.NewService(analysis.Dependencies{
			Catalog: reg,
			Resolver: objects.NewResolver(objects.Settings{
				Profile:  cfg.Catalog.AwsProfile,
				CacheDir: cfg.Catalog.CacheDir,
			}),
			Events:     st.events,
			Losses:     losses.NewService(st.losses),
			Explosions: explosions.NewService(st.explosions, ExplosionOptions(cfg.Explosions)),
			Estimator:  estimator,
		}),
	}, nil
}

type stores struct {
	events     events.Store
	losses     lossstore.Store
	explosions explosionstore.Store
}

var newStores = func(db *sql.DB) (stores, error) {
	eventStore, err := events.NewStore(db)
	if err != nil {
		return stores{}, fmt.Errorf("failed to create event store: %w", err)
	}
	lossStore, err := lossstore.NewStore(db)
	if err != nil {
		return stores{}, fmt.Errorf("failed to create loss store: %w", err)
	}
	expStore, err := explosionstore.NewStore(db)
	if err != nil {
		return stores{}, fmt.Errorf("failed to create explosion store: %w", err)
	}
	return stores{events: eventStore, losses: lossStore, explosions: expStore}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}
