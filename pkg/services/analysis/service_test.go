package analysis

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/services/catalog"
	"github.com/de-tools/war-atlas/pkg/services/explosions"
	"github.com/de-tools/war-atlas/pkg/services/frontline"
	"github.com/de-tools/war-atlas/pkg/services/losses"
	"github.com/de-tools/war-atlas/pkg/store/duckdb"
	"github.com/de-tools/war-atlas/pkg/store/duckdb/events"
	explosionstore "github.com/de-tools/war-atlas/pkg/store/duckdb/explosions"
	lossstore "github.com/de-tools/war-atlas/pkg/store/duckdb/losses"
	"github.com/de-tools/war-atlas/pkg/store/objects"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const battlesCSV = `data_id,event_date,event_type,sub_event_type,latitude,longitude,location
1,2022-03-01,Battles,Armed clash,50.5,34.0,Trostianets
2,2022-03-01,Battles,Armed clash,50.3,33.0,Romny
3,2022-03-01,Battles,Armed clash,48.0,37.8,Donetsk
4,2022-03-01,Battles,Armed clash,47.0,37.5,Volnovakha
5,2022-03-02,Battles,Armed clash,50.6,34.0,Okhtyrka
6,2022-03-02,Battles,Armed clash,50.3,33.0,Romny
7,2022-03-02,Battles,Armed clash,48.1,37.6,Avdiivka
8,2022-03-02,Battles,Armed clash,47.1,37.4,Mariupol
9,2022-03-02,Explosions/Remote violence,Air/drone strike,49.84,24.03,Lviv
10,2022-03-02,Explosions/Remote violence,Shelling/artillery/missile attack,48.05,37.7,Donetsk
11,2022-03-02,Strategic developments,Looting/property destruction,46.6,32.6,Kherson
12,2022-03-07,Battles,Armed clash,50.7,33.9,Sumy
13,2022-03-07,Battles,Armed clash,50.4,32.0,Pryluky
14,2022-03-07,Battles,Armed clash,48.3,38.0,Bakhmut
15,2022-03-07,Battles,Armed clash,47.2,37.3,Mariupol
`

const personnelCSV = `date,day,personnel,personnel*
2022-02-25,2,2800,about
2022-02-26,3,4300,about
2022-02-27,4,4500,about
`

const boundaryJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"name":"Sumy"},"geometry":{"type":"Point","coordinates":[34.8,50.9]}}]}`

type env struct {
	svc   *Service
	cache string
}

func setup(t *testing.T) env {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("battles.csv", battlesCSV)
	write("personnel.csv", personnelCSV)
	write("ukraine.geojson", boundaryJSON)
	write("datasets.ini", "[battles]\npath = battles.csv\n\n[personnel]\npath = personnel.csv\n\n[boundary]\npath = ukraine.geojson\n")

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	reg, err := catalog.NewRegistry(filepath.Join(dir, "datasets.ini"))
	require.NoError(t, err)
	eventStore, err := events.NewStore(db)
	require.NoError(t, err)
	lossStore, err := lossstore.NewStore(db)
	require.NoError(t, err)
	expStore, err := explosionstore.NewStore(db)
	require.NoError(t, err)
	estimator, err := frontline.NewEstimator(frontline.DefaultOptions())
	require.NoError(t, err)

	cache := filepath.Join(dir, "civilian.csv")
	expOpts := explosions.DefaultOptions()
	expOpts.CachePath = cache
	expOpts.UseCache = true

	return env{
		svc: NewService(Dependencies{
			Catalog:    reg,
			Resolver:   objects.NewResolver(objects.Settings{CacheDir: dir}),
			Events:     eventStore,
			Losses:     losses.NewService(lossStore),
			Explosions: explosions.NewService(expStore, expOpts),
			Estimator:  estimator,
		}),
		cache: cache,
	}
}

func TestService_Run(t *testing.T) {
	e := setup(t)
	ctx := zerolog.Nop().WithContext(context.Background())

	res, err := e.svc.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 14, res.Events)
	assert.Equal(t, 7, res.Period.Duration)
	require.NotEmpty(t, res.TypeCounts)
	assert.Equal(t, domain.TypeCount{Type: domain.EventTypeBattle, Count: 12}, res.TypeCounts[0])

	snap := NewSnapshot(res)

	north, ok := snap.Daily(domain.FrontNorthern)
	require.True(t, ok)
	require.Len(t, north.Deltas, 3)
	assert.Equal(t, 0.0, north.Deltas[0].Unsigned)
	assert.Equal(t, -1, north.Deltas[1].Sign)

	east, ok := snap.Daily(domain.FrontEastern)
	require.True(t, ok)
	assert.Len(t, east.Deltas, 3)

	assert.Len(t, snap.Monthly(), 2)
	assert.Len(t, snap.Profiles(), 2)

	civilian := snap.Explosions(time.Time{})
	require.Len(t, civilian, 1)
	assert.Equal(t, "9", civilian[0].ID)
	assert.Len(t, snap.Explosions(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)), 1)
	assert.Empty(t, snap.Explosions(time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []domain.MonthCount{{Month: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), Count: 1}}, snap.ExplosionsByMonth())
	assert.FileExists(t, e.cache)

	personnel, ok := snap.Losses(domain.LossKindPersonnel)
	require.True(t, ok)
	col, _ := personnel.Column("personnel")
	assert.Equal(t, []float64{2800, 1500, 200}, col.Values)
	_, ok = snap.Losses(domain.LossKindEquipment)
	assert.False(t, ok)

	require.NotNil(t, snap.Boundary())
	assert.Len(t, snap.Boundary().Features, 1)

	t.Run("second run reads the cache", func(t *testing.T) {
		again, err := e.svc.Run(ctx)
		require.NoError(t, err)
		require.Len(t, again.Civilian, 1)
		assert.Equal(t, civilian[0].ID, again.Civilian[0].ID)
		assert.Equal(t, civilian[0].Date, again.Civilian[0].Date)
	})
}
