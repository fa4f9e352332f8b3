package domain

import "fmt"

type LossKind string

const (
	LossKindEquipment LossKind = "equipment"
	LossKindPersonnel LossKind = "personnel"
)

var LossKinds = []LossKind{LossKindEquipment, LossKindPersonnel}

func ParseLossKind(s string) (LossKind, error) {
	switch LossKind(s) {
	case LossKindEquipment, LossKindPersonnel:
		return LossKind(s), nil
	}
	return "", fmt.Errorf("unknown loss kind %q", s)
}

// IndexColumns are kept as-is when a cumulative table is normalized.
func (k LossKind) IndexColumns() []string {
	switch k {
	case LossKindEquipment:
		return []string{"day", "date"}
	case LossKindPersonnel:
		return []string{"date", "day"}
	default:
		return nil
	}
}

// Column holds either numeric Values (NaN for missing) or text Labels.
type Column struct {
	Name    string
	Numeric bool
	Values  []float64
	Labels  []string
}

func (c Column) Len() int {
	if c.Numeric {
		return len(c.Values)
	}
	return len(c.Labels)
}

// Table is a column-oriented view of a loss dataset.
type Table struct {
	Kind    LossKind
	Columns []Column
}

func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

type LossHighlight struct {
	Category string
	PeakDay  string
	Peak     float64
	Total    float64
}
