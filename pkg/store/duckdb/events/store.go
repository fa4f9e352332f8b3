package events

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/de-tools/war-atlas/pkg/models/store"
	"github.com/de-tools/war-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// Store ingests the ACLED event CSV into DuckDB and reads it back in file order.
type Store interface {
	Load(ctx context.Context, path string) (int64, error)
	List(ctx context.Context, filter store.EventFilter) ([]store.EventRecord, error)
	CountByType(ctx context.Context) ([]store.TypeCount, error)
}

type eventStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &eventStore{db: db}, nil
}

// Load replaces the content of battle_events with the rows of the CSV at path.
func (s *eventStore) Load(ctx context.Context, path string) (int64, error) {
	logger := zerolog.Ctx(ctx)
	query := fmt.Sprintf(`
		INSERT INTO battle_events (
			seq, data_id, event_date, event_type, sub_event_type,
			latitude, longitude, location
		)
		SELECT
			row_number() OVER () AS seq,
			CAST(data_id AS VARCHAR),
			CAST(event_date AS VARCHAR),
			CAST(event_type AS VARCHAR),
			CAST(sub_event_type AS VARCHAR),
			CAST(latitude AS DOUBLE),
			CAST(longitude AS DOUBLE),
			CAST(location AS VARCHAR)
		FROM read_csv_auto(%s, header = true)
	`, duckdb.QuoteLiteral(path))

	var loaded int64
	err := duckdb.InTransaction(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.ConnFromContext(ctx, s.db)
		if _, err := conn.ExecContext(ctx, `DELETE FROM battle_events`); err != nil {
			return fmt.Errorf("clear events: %w", err)
		}
		res, err := conn.ExecContext(ctx, query)
		if err != nil {
			return fmt.Errorf("load events from %s: %w", path, err)
		}
		loaded, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.Debug().Str("path", path).Int64("rows", loaded).Msg("battle events loaded")
	return loaded, nil
}

func (s *eventStore) List(ctx context.Context, filter store.EventFilter) ([]store.EventRecord, error) {
	var (
		where []string
		args  []interface{}
	)
	if len(filter.Types) > 0 {
		where = append(where, fmt.Sprintf("event_type IN (%s)", placeholders(len(filter.Types))))
		args = append(args, toInterfaceSlice(filter.Types)...)
	}
	if len(filter.ExcludeTypes) > 0 {
		where = append(where, fmt.Sprintf("event_type NOT IN (%s)", placeholders(len(filter.ExcludeTypes))))
		args = append(args, toInterfaceSlice(filter.ExcludeTypes)...)
	}

	query := `
		SELECT seq, data_id, event_date, event_type, sub_event_type, latitude, longitude, location
		FROM battle_events`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY seq"

	rows, err := duckdb.ConnFromContext(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()
	return ScanEventRows(rows)
}

func (s *eventStore) CountByType(ctx context.Context) ([]store.TypeCount, error) {
	rows, err := duckdb.ConnFromContext(ctx, s.db).QueryContext(ctx, `
		SELECT event_type, COUNT(*) AS cnt
		FROM battle_events
		GROUP BY event_type
		ORDER BY cnt DESC, event_type
	`)
	if err != nil {
		return nil, fmt.Errorf("count events by type: %w", err)
	}
	defer rows.Close()

	counts := make([]store.TypeCount, 0)
	for rows.Next() {
		var c store.TypeCount
		if err := rows.Scan(&c.EventType, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ScanEventRows reads rows shaped like the battle_events table.
func ScanEventRows(rows *sql.Rows) ([]store.EventRecord, error) {
	records := make([]store.EventRecord, 0)
	for rows.Next() {
		var r store.EventRecord
		if err := rows.Scan(
			&r.Seq,
			&r.DataID,
			&r.EventDate,
			&r.EventType,
			&r.SubType,
			&r.Latitude,
			&r.Longitude,
			&r.Location,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toInterfaceSlice(ss []string) []interface{} {
	res := make([]interface{}, len(ss))
	for i, s := range ss {
		res[i] = s
	}
	return res
}
