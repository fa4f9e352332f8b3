package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/marcboeker/go-duckdb/v2"
)

const BattleEventsSchema = `
	CREATE TABLE IF NOT EXISTS battle_events (
		seq BIGINT NOT NULL,
		data_id VARCHAR NOT NULL,
		event_date VARCHAR NOT NULL,
		event_type VARCHAR NOT NULL,
		sub_event_type VARCHAR,
		latitude DOUBLE,
		longitude DOUBLE,
		location VARCHAR
	);
`

const CivilianExplosionsSchema = `
	CREATE TABLE IF NOT EXISTS civilian_explosions (
		data_id VARCHAR NOT NULL,
		PRIMARY KEY (data_id)
	);
`

var bootQueries = []string{
	BattleEventsSchema,
	CivilianExplosionsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

// QuoteLiteral renders s as a SQL string literal. Table functions such as
// read_csv_auto and COPY targets take file names as literals, not parameters.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
