package adapters

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/api"
	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/models/store"
)

var numericTypes = map[string]struct{}{
	"TINYINT": {}, "SMALLINT": {}, "INTEGER": {}, "BIGINT": {}, "HUGEINT": {},
	"UTINYINT": {}, "USMALLINT": {}, "UINTEGER": {}, "UBIGINT": {}, "UHUGEINT": {},
	"FLOAT": {}, "DOUBLE": {},
}

func IsNumericType(dataType string) bool {
	t := strings.ToUpper(dataType)
	if strings.HasPrefix(t, "DECIMAL") {
		return true
	}
	_, ok := numericTypes[t]
	return ok
}

func MapStoreLossTableToDomain(kind domain.LossKind, table *store.LossTable) (domain.Table, error) {
	res := domain.Table{Kind: kind, Columns: make([]domain.Column, len(table.Columns))}
	for i, col := range table.Columns {
		res.Columns[i] = domain.Column{Name: col.Name, Numeric: IsNumericType(col.DataType)}
	}

	for r, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return domain.Table{}, fmt.Errorf("row %d: expected %d values, got %d", r, len(table.Columns), len(row))
		}
		for i, v := range row {
			col := &res.Columns[i]
			if col.Numeric {
				f, err := toFloat(v)
				if err != nil {
					return domain.Table{}, fmt.Errorf("row %d, column %q: %w", r, col.Name, err)
				}
				col.Values = append(col.Values, f)
			} else {
				col.Labels = append(col.Labels, toLabel(v))
			}
		}
	}
	return res, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case *big.Int:
		f, _ := n.Float64()
		return f, nil
	case interface{ Float64() float64 }:
		return n.Float64(), nil
	}
	return 0, fmt.Errorf("unsupported numeric value %T", v)
}

func toLabel(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.Format(DateLayout)
	default:
		return fmt.Sprint(s)
	}
}

func MapLossTableDomainToApi(table domain.Table) api.LossTable {
	res := api.LossTable{
		Kind:    string(table.Kind),
		Columns: make([]string, 0, len(table.Columns)),
		Rows:    make([]map[string]interface{}, table.Rows()),
	}
	for _, col := range table.Columns {
		res.Columns = append(res.Columns, col.Name)
	}
	for r := range res.Rows {
		row := make(map[string]interface{}, len(table.Columns))
		for _, col := range table.Columns {
			if !col.Numeric {
				row[col.Name] = col.Labels[r]
				continue
			}
			if v := col.Values[r]; !math.IsNaN(v) {
				row[col.Name] = v
			} else {
				row[col.Name] = nil
			}
		}
		res.Rows[r] = row
	}
	return res
}
