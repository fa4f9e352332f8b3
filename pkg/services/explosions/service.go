package explosions

import (
	"context"

	"github.com/de-tools/war-atlas/pkg/adapters"
	"github.com/de-tools/war-atlas/pkg/models/domain"
	explosionstore "github.com/de-tools/war-atlas/pkg/store/duckdb/explosions"
	"github.com/rs/zerolog"
)

type Service interface {
	Civilian(ctx context.Context, events []domain.BattleEvent) ([]domain.BattleEvent, error)
}

type service struct {
	store      explosionstore.Store
	classifier *Classifier
	opts       Options
}

func NewService(store explosionstore.Store, opts Options) Service {
	return &service{store: store, classifier: NewClassifier(opts), opts: opts}
}

// Civilian prefers the cache file when enabled and falls back to classifying
// events, refreshing the cache afterwards. Recomputed results are read back
// from the store, so both paths return explosions in file order.
func (s *service) Civilian(ctx context.Context, events []domain.BattleEvent) ([]domain.BattleEvent, error) {
	logger := zerolog.Ctx(ctx)

	if s.opts.UseCache && s.opts.CachePath != "" {
		cached, err := s.readCache(ctx)
		if err == nil {
			logger.Info().Str("path", s.opts.CachePath).Int("explosions", len(cached)).Msg("civilian explosions read from cache")
			return cached, nil
		}
		logger.Debug().Err(err).Str("path", s.opts.CachePath).Msg("explosion cache miss")
	}

	civilian := s.classifier.Civilian(events)
	ids := make([]string, 0, len(civilian))
	for _, e := range civilian {
		ids = append(ids, e.ID)
	}
	if err := s.store.Save(ctx, ids); err != nil {
		return nil, err
	}

	if s.opts.CachePath != "" {
		if err := s.store.Export(ctx, s.opts.CachePath); err != nil {
			logger.Warn().Err(err).Str("path", s.opts.CachePath).Msg("failed to write explosion cache")
		}
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := adapters.MapStoreEventsToDomain(records)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("classified", len(civilian)).
		Int("explosions", len(saved)).
		Msg("civilian explosions classified")
	return saved, nil
}

func (s *service) readCache(ctx context.Context) ([]domain.BattleEvent, error) {
	records, err := s.store.ReadCache(ctx, s.opts.CachePath)
	if err != nil {
		return nil, err
	}
	return adapters.MapStoreEventsToDomain(records)
}
