package explosions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/war-atlas/pkg/models/store"
	"github.com/de-tools/war-atlas/pkg/store/duckdb"
	"github.com/de-tools/war-atlas/pkg/store/duckdb/events"
	"github.com/rs/zerolog"
)

const selectCivilian = `
	SELECT e.seq, e.data_id, e.event_date, e.event_type, e.sub_event_type, e.latitude, e.longitude, e.location
	FROM battle_events e
	JOIN civilian_explosions c ON c.data_id = e.data_id
	ORDER BY e.seq`

// Store persists the ids of explosions classified as civilian and mirrors them to a CSV cache file.
type Store interface {
	Save(ctx context.Context, ids []string) error
	List(ctx context.Context) ([]store.EventRecord, error)
	Export(ctx context.Context, path string) error
	ReadCache(ctx context.Context, path string) ([]store.EventRecord, error)
}

type explosionStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &explosionStore{db: db}, nil
}

func (s *explosionStore) Save(ctx context.Context, ids []string) error {
	return duckdb.InTransaction(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.ConnFromContext(ctx, s.db)
		if _, err := conn.ExecContext(ctx, `DELETE FROM civilian_explosions`); err != nil {
			return fmt.Errorf("clear civilian explosions: %w", err)
		}
		for _, id := range ids {
			if _, err := conn.ExecContext(ctx, `INSERT INTO civilian_explosions (data_id) VALUES (?)`, id); err != nil {
				return fmt.Errorf("save civilian explosion %s: %w", id, err)
			}
		}
		return nil
	})
}

func (s *explosionStore) List(ctx context.Context) ([]store.EventRecord, error) {
	rows, err := duckdb.ConnFromContext(ctx, s.db).QueryContext(ctx, selectCivilian)
	if err != nil {
		return nil, fmt.Errorf("query civilian explosions: %w", err)
	}
	defer rows.Close()
	return events.ScanEventRows(rows)
}

// Export writes the saved civilian explosions to path as a headed CSV.
func (s *explosionStore) Export(ctx context.Context, path string) error {
	query := fmt.Sprintf(`COPY (%s) TO %s (HEADER, DELIMITER ',')`, selectCivilian, duckdb.QuoteLiteral(path))
	if _, err := duckdb.ConnFromContext(ctx, s.db).ExecContext(ctx, query); err != nil {
		return fmt.Errorf("export civilian explosions to %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("civilian explosions exported")
	return nil
}

// ReadCache reads a file previously written by Export.
func (s *explosionStore) ReadCache(ctx context.Context, path string) ([]store.EventRecord, error) {
	query := fmt.Sprintf(`
		SELECT
			CAST(seq AS BIGINT),
			CAST(data_id AS VARCHAR),
			CAST(event_date AS VARCHAR),
			CAST(event_type AS VARCHAR),
			CAST(sub_event_type AS VARCHAR),
			CAST(latitude AS DOUBLE),
			CAST(longitude AS DOUBLE),
			CAST(location AS VARCHAR)
		FROM read_csv_auto(%s, header = true)
		ORDER BY 1`, duckdb.QuoteLiteral(path))

	rows, err := duckdb.ConnFromContext(ctx, s.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read explosion cache %s: %w", path, err)
	}
	defer rows.Close()
	return events.ScanEventRows(rows)
}
