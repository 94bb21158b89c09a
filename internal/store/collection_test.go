package store

import (
	"testing"
	"time"

	"taskflow/internal/model"

	"github.com/google/go-cmp/cmp"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func TestIDSource_MonotonicUnderFrozenClock(t *testing.T) {
	t.Parallel()

	ids := NewIDSource(fixedClock())
	a, b, c := ids.Next(), ids.Next(), ids.Next()
	if a == b || b == c || a == c {
		t.Fatalf("expected distinct ids, got %q %q %q", a, b, c)
	}
	if !(a < b && b < c) {
		t.Fatalf("expected increasing ids, got %q %q %q", a, b, c)
	}
}

func TestIDSource_ObserveSkipsSeedIDs(t *testing.T) {
	t.Parallel()

	ids := NewIDSource(func() time.Time { return time.UnixMilli(5) })
	ids.Observe("41")
	ids.Observe("not-a-number")
	if got := ids.Next(); got != "42" {
		t.Fatalf("expected 42 after observing 41, got %q", got)
	}
}

func TestCollection_CreateThenListByIDFindsExactlyOne(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Tasks)
	before := c.Len()

	created := c.Create(model.Task{Title: "Write release notes", Status: model.TaskTodo, Tags: []string{"docs"}})
	if created.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if c.Len() != before+1 {
		t.Fatalf("expected len %d, got %d", before+1, c.Len())
	}

	got := c.List(func(x model.Task) bool { return x.ID == created.ID })
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(got))
	}
	if diff := cmp.Diff(created, got[0]); diff != "" {
		t.Fatalf("stored task differs (-created +listed):\n%s", diff)
	}

	all := c.All()
	if all[len(all)-1].ID != created.ID {
		t.Fatalf("expected created task appended last, got %q", all[len(all)-1].ID)
	}
}

func TestCollection_CreateDoesNotAliasDraft(t *testing.T) {
	t.Parallel()

	c := NewCollection[model.Task](NewIDSource(fixedClock()), nil)
	draft := model.Task{Title: "x", Tags: []string{"a"}}
	created := c.Create(draft)
	draft.Tags[0] = "mutated"

	got, _ := c.Get(string(created.ID))
	if got.Tags[0] != "a" {
		t.Fatalf("store aliased the draft's tags: %v", got.Tags)
	}
}

func TestCollection_UpdateChangesOnlyPatchedFields(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Projects)
	before, ok := c.Get("2")
	if !ok {
		t.Fatalf("seed project 2 missing")
	}

	patch := ProjectPatch{Progress: Ptr(60), Status: Ptr(model.ProjectReview)}
	if !c.Update("2", func(p *model.Project) { patch.Apply(p) }) {
		t.Fatalf("expected update to report true")
	}
	after, _ := c.Get("2")

	want := before
	want.Progress = 60
	want.Status = model.ProjectReview
	if diff := cmp.Diff(want, after); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestCollection_UpdateCannotChangeID(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Members)
	c.Update("1", func(m *model.TeamMember) { m.ID = "999"; m.Phone = "n/a" })

	if _, ok := c.Get("999"); ok {
		t.Fatalf("patch was able to rewrite the id")
	}
	m, ok := c.Get("1")
	if !ok || m.Phone != "n/a" {
		t.Fatalf("expected member 1 updated in place, got %#v ok=%v", m, ok)
	}
}

func TestCollection_UpdateMissingIDIsNoop(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Issues)
	before := c.All()
	called := false
	if c.Update("nope", func(*model.Issue) { called = true }) {
		t.Fatalf("expected false for missing id")
	}
	if called {
		t.Fatalf("patch must not run for a missing id")
	}
	if diff := cmp.Diff(before, c.All()); diff != "" {
		t.Fatalf("collection changed (-before +after):\n%s", diff)
	}
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Events)
	if !c.Delete("3") {
		t.Fatalf("expected first delete to report true")
	}
	if c.Delete("3") {
		t.Fatalf("expected second delete to be a no-op")
	}
	for _, e := range c.All() {
		if e.ID == "3" {
			t.Fatalf("deleted event still listed")
		}
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 events left, got %d", c.Len())
	}
}

func TestCollection_ListKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Tasks)
	var ids []model.TaskID
	for _, x := range c.List(func(x model.Task) bool { return x.Priority != model.PriorityCritical }) {
		ids = append(ids, x.ID)
	}
	want := []model.TaskID{"1", "3", "4", "5"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestCollection_ReplaceKeepsID(t *testing.T) {
	t.Parallel()

	c := NewCollection(NewIDSource(fixedClock()), Seed().Tasks)
	cur, _ := c.Get("4")
	cur.ID = "other"
	cur.Title = "Renamed"
	if !c.Replace("4", cur) {
		t.Fatalf("expected replace to succeed")
	}
	got, ok := c.Get("4")
	if !ok || got.Title != "Renamed" {
		t.Fatalf("expected replaced task under id 4, got %#v", got)
	}
	if c.Replace("missing", cur) {
		t.Fatalf("expected replace on missing id to report false")
	}
}
