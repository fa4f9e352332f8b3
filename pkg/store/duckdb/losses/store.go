package losses

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/de-tools/war-atlas/pkg/models/store"
	"github.com/de-tools/war-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

var tableName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Store keeps each loss dataset in its own losses_<name> table, columns as inferred from the CSV header.
type Store interface {
	Load(ctx context.Context, name string, path string) (int64, error)
	Read(ctx context.Context, name string) (*store.LossTable, error)
}

type lossStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &lossStore{db: db}, nil
}

func table(name string) (string, error) {
	if !tableName.MatchString(name) {
		return "", fmt.Errorf("invalid loss table name %q", name)
	}
	return "losses_" + name, nil
}

func (s *lossStore) Load(ctx context.Context, name string, path string) (int64, error) {
	t, err := table(name)
	if err != nil {
		return 0, err
	}

	conn := duckdb.ConnFromContext(ctx, s.db)
	query := fmt.Sprintf(
		`CREATE OR REPLACE TABLE %s AS SELECT row_number() OVER () AS _row, * FROM read_csv_auto(%s, header = true)`,
		t, duckdb.QuoteLiteral(path),
	)
	if _, err := conn.ExecContext(ctx, query); err != nil {
		return 0, fmt.Errorf("load %s losses from %s: %w", name, path, err)
	}

	var count int64
	if err := conn.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s losses: %w", name, err)
	}

	zerolog.Ctx(ctx).Debug().Str("table", t).Str("path", path).Int64("rows", count).Msg("loss table loaded")
	return count, nil
}

func (s *lossStore) Read(ctx context.Context, name string) (*store.LossTable, error) {
	t, err := table(name)
	if err != nil {
		return nil, err
	}

	rows, err := duckdb.ConnFromContext(ctx, s.db).QueryContext(ctx,
		fmt.Sprintf(`SELECT * EXCLUDE (_row) FROM %s ORDER BY _row`, t))
	if err != nil {
		return nil, fmt.Errorf("read %s losses: %w", name, err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	res := &store.LossTable{Columns: make([]store.LossColumn, len(types))}
	for i, ct := range types {
		res.Columns[i] = store.LossColumn{Name: ct.Name(), DataType: ct.DatabaseTypeName()}
	}

	for rows.Next() {
		values := make([]interface{}, len(types))
		ptrs := make([]interface{}, len(types))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, values)
	}
	return res, rows.Err()
}
