package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"taskflow/internal/filter"
	"taskflow/internal/format"
	"taskflow/internal/model"
	"taskflow/internal/store"

	"github.com/spf13/cobra"
)

// filterFlags holds the raw --status/--priority/... values of one command.
type filterFlags map[string]*string

var filterUsage = map[string]string{
	filter.KeyStatus:     "Filter by status",
	filter.KeyPriority:   "Filter by priority",
	filter.KeyType:       "Filter by type",
	filter.KeyAssignee:   "Filter by assignee (id or name)",
	filter.KeyDepartment: "Filter by department",
	filter.KeyProject:    "Filter by project (id or name)",
}

func addFilterFlags(cmd *cobra.Command, keys ...string) filterFlags {
	ff := filterFlags{}
	for _, k := range keys {
		v := new(string)
		cmd.Flags().StringVar(v, k, filter.All, filterUsage[k])
		ff[k] = v
	}
	return ff
}

// applyFilters copies the flag values into set. Assignee and project values
// may be names; they are resolved to ids through dir.
func applyFilters[T any](set *filter.Set[T], ff filterFlags, dir store.Directory) error {
	for _, key := range slices.Sorted(maps.Keys(ff)) {
		value := *ff[key]
		if value != "" && value != filter.All {
			switch key {
			case filter.KeyAssignee:
				id, ok := dir.ResolveMember(value)
				if !ok {
					return errNotFound("member", value)
				}
				value = string(id)
			case filter.KeyProject:
				id, ok := dir.ResolveProject(value)
				if !ok {
					return errNotFound("project", value)
				}
				value = string(id)
			}
		}
		if err := set.SetValue(key, value); err != nil {
			var iv *filter.InvalidValueError
			if errors.As(err, &iv) {
				return invalidFilterError{flag: key, value: value, options: iv.Options}
			}
			return err
		}
	}
	return nil
}

type listMeta struct {
	filter.PageInfo
	Filter string `json:"filter" yaml:"filter"`
}

func (m listMeta) String() string {
	return fmt.Sprintf("page %d/%d · %d records · filter: %s", m.Page, m.Pages, m.Total, m.Filter)
}

// writeList filters, paginates and writes items. Table output uses toTable;
// json/yaml get the records themselves.
func writeList[T any](cmd *cobra.Command, app *App, set *filter.Set[T], items []T, toTable func([]T) format.Table) error {
	rows, info := filter.Page(set.Apply(items), app.Page, app.cfg.PageSize)
	meta := listMeta{PageInfo: info, Filter: set.Summary()}
	var data any = rows
	if app.Format == "table" {
		data = toTable(rows)
	}
	return writeOut(cmd, app, format.Envelope{Data: data, Meta: meta})
}

// writeRecord writes one record; table output shows kv instead.
func writeRecord(cmd *cobra.Command, app *App, v any, kv format.KV) error {
	return writeOut(cmd, app, format.Envelope{Data: dataOrKV(app, v, kv)})
}

func dateOrDash(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return string(d)
}
