package losses

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/de-tools/war-atlas/pkg/adapters"
	"github.com/de-tools/war-atlas/pkg/models/domain"
	lossstore "github.com/de-tools/war-atlas/pkg/store/duckdb/losses"
	"github.com/rs/zerolog"
)

var ErrUnknownKind = errors.New("unknown loss kind")

// Service loads the cumulative loss datasets and serves them normalized.
type Service interface {
	Load(ctx context.Context, kind domain.LossKind, path string) error
	Normalized(ctx context.Context, kind domain.LossKind) (domain.Table, error)
}

type service struct {
	store lossstore.Store
}

func NewService(store lossstore.Store) Service {
	return &service{store: store}
}

func ParseKind(s string) (domain.LossKind, error) {
	kind, err := domain.ParseLossKind(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return kind, nil
}

func (s *service) Load(ctx context.Context, kind domain.LossKind, path string) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	n, err := s.store.Load(ctx, string(kind), path)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("kind", string(kind)).Int64("rows", n).Msg("loss dataset loaded")
	return nil
}

func (s *service) Normalized(ctx context.Context, kind domain.LossKind) (domain.Table, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return domain.Table{}, err
	}
	raw, err := s.store.Read(ctx, string(kind))
	if err != nil {
		return domain.Table{}, err
	}
	table, err := adapters.MapStoreLossTableToDomain(kind, raw)
	if err != nil {
		return domain.Table{}, fmt.Errorf("%s losses: %w", kind, err)
	}
	return Normalize(table), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
