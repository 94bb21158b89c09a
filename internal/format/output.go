package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Envelope is the shape of every CLI response.
type Envelope struct {
	Data any `json:"data" yaml:"data"`
	Meta any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Tabular values can render themselves as rows for the table format.
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - yaml
// - table (values that aren't Tabular fall back to yaml)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "yaml":
		return WriteYAML(w, v)
	case "table":
		return WriteTable(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// WriteTable renders the envelope's data as a bordered table, followed by the
// meta line when meta is a fmt.Stringer.
func WriteTable(w io.Writer, v any) error {
	data, meta := v, any(nil)
	if env, ok := v.(Envelope); ok {
		data, meta = env.Data, env.Meta
	}
	tab, ok := data.(Tabular)
	if !ok {
		return WriteYAML(w, v)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tab.Header()...).
		Rows(tab.Rows()...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	if s, ok := meta.(fmt.Stringer); ok {
		if line := strings.TrimSpace(s.String()); line != "" {
			_, err := fmt.Fprintln(w, line)
			return err
		}
	}
	return nil
}

// KV is a two-column Tabular for single records and stat panels.
type KV [][2]string

func (kv KV) Header() []string { return []string{"FIELD", "VALUE"} }

func (kv KV) Rows() [][]string {
	out := make([][]string, 0, len(kv))
	for _, p := range kv {
		out = append(out, []string{p[0], p[1]})
	}
	return out
}

// Table is a ready-made Tabular. JSON/YAML render it as a list of objects keyed
// by the lower-cased header.
type Table struct {
	Head []string
	Body [][]string
}

func (t Table) Header() []string { return t.Head }
func (t Table) Rows() [][]string { return t.Body }

func (t Table) records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Body))
	for _, row := range t.Body {
		rec := make(map[string]string, len(t.Head))
		for i, h := range t.Head {
			if i < len(row) {
				rec[strings.ToLower(h)] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

func (t Table) MarshalJSON() ([]byte, error) { return json.Marshal(t.records()) }

func (t Table) MarshalYAML() (any, error) { return t.records(), nil }
