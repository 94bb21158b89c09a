package cli

import (
	"fmt"
	"strconv"

	"taskflow/internal/filter"
	"taskflow/internal/format"
	"taskflow/internal/model"
	"taskflow/internal/stats"

	"github.com/spf13/cobra"
)

type progressReport struct {
	Project     string                    `json:"project" yaml:"project"`
	Range       filter.TimeRange          `json:"range" yaml:"range"`
	Stats       stats.ProgressStats       `json:"stats" yaml:"stats"`
	Projects    []model.ProjectProgress   `json:"projects" yaml:"projects"`
	Tasks       []model.TaskProgress      `json:"tasks" yaml:"tasks"`
	Performance []model.MemberPerformance `json:"performance" yaml:"performance"`
	Critical    []model.Deadline          `json:"critical" yaml:"critical"`
	Timeline    []model.Deadline          `json:"timeline" yaml:"timeline"`
}

func newProgressCmd(app *App) *cobra.Command {
	var project, rng string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Progress tracking: health, deadlines and team performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := app.db
			dir := db.Directory()
			r, err := filter.ParseTimeRange(rng)
			if err != nil {
				return writeErr(cmd, invalidFilterError{flag: "range", value: rng, options: model.Strings(filter.TimeRanges)})
			}
			sel := filter.ProgressProjects(dir)
			if err := applyFilters(sel, filterFlags{filter.KeyProject: &project}, dir); err != nil {
				return writeErr(cmd, err)
			}
			now := db.Now()
			in := filter.ScopeProgress(stats.ProgressInput{
				Projects:    db.ProjectProgress.All(),
				Tasks:       db.TaskProgress.All(),
				Performance: db.Performance.All(),
				Deadlines:   db.Deadlines.All(),
			}, sel, r, now)

			rep := progressReport{
				Project:     filter.DisplayValue(dir, filter.KeyProject, sel.Value(filter.KeyProject)),
				Range:       r,
				Stats:       stats.Progress(in, now),
				Projects:    in.Projects,
				Tasks:       in.Tasks,
				Performance: in.Performance,
				Critical:    nonNil(stats.CriticalDeadlines(in.Deadlines, now)),
				Timeline:    nonNil(stats.Timeline(in.Deadlines, now)),
			}
			if app.Format != "table" {
				return writeOut(cmd, app, format.Envelope{Data: rep})
			}
			st := rep.Stats
			kv := format.KV{
				{"project", rep.Project},
				{"range", string(r)},
				{"projects on track", fmt.Sprintf("%d/%d", st.OnTrack, st.Projects)},
				{"active tasks", strconv.Itoa(st.ActiveTasks)},
				{"overdue tasks", strconv.Itoa(st.OverdueTasks)},
				{"average progress", strconv.Itoa(st.AverageProgress) + "%"},
				{"due this week", strconv.Itoa(st.DueThisWeek)},
				{"overdue deadlines", strconv.Itoa(st.OverdueDeadlines)},
				{"on-time delivery", strconv.Itoa(st.OnTimeDelivery) + "%"},
				{"average completion", fmt.Sprintf("%.1f days", st.AverageCompletionDays)},
			}
			for _, d := range rep.Critical {
				kv = append(kv, [2]string{"alert", fmt.Sprintf("%s (%s, %s)", d.Title, d.Date, d.Status(now))})
			}
			return writeOut(cmd, app, format.Envelope{Data: kv})
		},
	}
	cmd.Flags().StringVar(&project, "project", filter.All, "Scope to one project (id or name)")
	cmd.Flags().StringVar(&rng, "range", string(filter.RangeWeek), "Deadline window: week, month, quarter or all")
	return cmd
}

func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
