package store

// LossColumn describes a column of a loaded loss table.
type LossColumn struct {
	Name     string
	DataType string // DuckDB type name, e.g. BIGINT, DOUBLE, VARCHAR, DATE
}

type LossTable struct {
	Columns []LossColumn
	Rows    [][]interface{}
}
