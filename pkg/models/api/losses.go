package api

// LossTable carries one object per row; missing numeric cells are null.
type LossTable struct {
	Kind    string                   `json:"kind"`
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}
