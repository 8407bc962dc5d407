package predict

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Kind string

const (
	Numeric     Kind = "numeric"
	Categorical Kind = "categorical"
)

// Column is one feature a pipeline expects. Alias names the payload field the
// column is derived from when the payload lacks the column itself.
type Column struct {
	Name    string `yaml:"name"`
	Kind    Kind   `yaml:"kind"`
	Default any    `yaml:"default"`
	Alias   string `yaml:"alias"`
}

// Schema is the ordered column set of a pipeline.
type Schema []Column

func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

type Cell struct {
	Column Column
	Number float64
	Level  string
}

// Row is a single feature row aligned to a Schema, one cell per column in order.
type Row []Cell

func (r Row) Number(name string) (float64, bool) {
	for _, c := range r {
		if c.Column.Name == name && c.Column.Kind == Numeric {
			return c.Number, true
		}
	}
	return 0, false
}

func (r Row) Level(name string) (string, bool) {
	for _, c := range r {
		if c.Column.Name == name && c.Column.Kind == Categorical {
			return c.Level, true
		}
	}
	return "", false
}

// Align reshapes payload into exactly the columns of schema. A column takes the
// payload value of the same name, then the value of its alias, then its default.
// Values that cannot be read as the column kind fall back to the default as well;
// payload fields unknown to the schema are dropped.
func Align(schema Schema, payload map[string]any) Row {
	row := make(Row, 0, len(schema))
	for _, col := range schema {
		raw, ok := payload[col.Name]
		if !ok && col.Alias != "" {
			raw, ok = payload[col.Alias]
		}
		if !ok {
			raw = col.Default
		}

		cell := Cell{Column: col}
		switch col.Kind {
		case Categorical:
			level, ok := toLevel(raw)
			if !ok {
				level, _ = toLevel(col.Default)
			}
			cell.Level = level
		default:
			number, ok := toNumber(raw)
			if !ok {
				number, _ = toNumber(col.Default)
			}
			cell.Number = number
		}
		row = append(row, cell)
	}
	return row
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toLevel(v any) (string, bool) {
	switch l := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(l), true
	case int:
		return strconv.Itoa(l), true
	case int64:
		return strconv.FormatInt(l, 10), true
	case uint64:
		return strconv.FormatUint(l, 10), true
	case float64:
		return strconv.FormatFloat(l, 'f', -1, 64), true
	case json.Number:
		return l.String(), true
	default:
		return "", false
	}
}
