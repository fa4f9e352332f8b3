package bootstrap

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestFrontlineOptions(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	cfg.Frontline.Anchors = map[string][]config.AnchorConfig{
		"east": {{Name: "Zaporizhzhia", Latitude: 47.84, Longitude: 35.14}},
	}
	opts, err := FrontlineOptions(cfg.Frontline)
	require.NoError(t, err)

	assert.Equal(t, 50.20, opts.Thresholds.MinLatitude)
	assert.Equal(t, time.Date(2022, 4, 7, 0, 0, 0, 0, time.UTC), opts.NorthernCutoff)
	assert.Equal(t, time.Date(2022, 3, 7, 0, 0, 0, 0, time.UTC), opts.Monthly.Start)
	assert.Equal(t, []domain.Anchor{{Name: "Zaporizhzhia", Latitude: 47.84, Longitude: 35.14}}, opts.Anchors[domain.FrontEastern])
	assert.Len(t, opts.Anchors[domain.FrontNorthern], 3)

	cfg.Frontline.Anchors = map[string][]config.AnchorConfig{"west": {{Name: "Lviv"}}}
	_, err = FrontlineOptions(cfg.Frontline)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "datasets.ini")
	require.NoError(t, os.WriteFile(catalogPath, []byte("[battles]\npath = battles.csv\n"), 0o644))

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Catalog.Path = catalogPath

	app, err := New(zerolog.Nop().WithContext(context.Background()), cfg)
	require.NoError(t, err)
	require.NotNil(t, app.Analysis)
	assert.NoError(t, app.Close())

	cfg.Catalog.Path = filepath.Join(dir, "absent.ini")
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNew_ClosesDatabaseWhenStoresFail(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "datasets.ini")
	require.NoError(t, os.WriteFile(catalogPath, []byte("[battles]\npath = battles.csv\n"), 0o644))

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Catalog.Path = catalogPath

	var opened *sql.DB
	orig := newStores
	newStores = func(db *sql.DB) (stores, error) {
		opened = db
		return stores{}, errors.New("store unavailable")
	}
	t.Cleanup(func() { newStores = orig })

	_, err = New(zerolog.Nop().WithContext(context.Background()), cfg)
	require.ErrorContains(t, err, "store unavailable")
	require.NotNil(t, opened)
	assert.ErrorContains(t, opened.Ping(), "database is closed")
}
