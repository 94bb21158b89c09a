package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type pageMeta struct{ page, pages int }

func (m pageMeta) String() string {
	if m.pages <= 1 {
		return ""
	}
	return "page 1/2"
}

func TestWrite_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	env := Envelope{Data: map[string]int{"total": 4}, Meta: map[string]string{"filter": "all"}}
	if err := Write(&buf, env, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got map[string]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["data"]["total"] != float64(4) || got["meta"]["filter"] != "all" {
		t.Fatalf("unexpected envelope %v", got)
	}
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, Envelope{Data: Table{Head: []string{"ID", "Name"}, Body: [][]string{{"1", "Website Redesign"}}}}, "yaml", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "data:") || !strings.Contains(out, "name: Website Redesign") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
}

func TestWrite_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tab := Table{Head: []string{"ID", "STATUS"}, Body: [][]string{{"1", "IN PROGRESS"}, {"2", "REVIEW"}}}
	if err := Write(&buf, Envelope{Data: tab, Meta: pageMeta{1, 2}}, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"STATUS", "IN PROGRESS", "REVIEW", "page 1/2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestWrite_TableFallsBackToYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, Envelope{Data: map[string]int{"open": 2}}, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "open: 2") {
		t.Fatalf("expected yaml fallback, got:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, "edn", false); err == nil {
		t.Fatalf("expected error")
	}
}
