// Package style maps categorical field values (statuses, priorities, types) to
// how they are shown: a colour, an icon and a label. Every view and the table
// output go through Lookup so a value looks the same everywhere.
package style

import "strings"

type Category string

const (
	ProjectStatus    Category = "project-status"
	Priority         Category = "priority"
	TaskStatus       Category = "task-status"
	IssueStatus      Category = "issue-status"
	IssueType        Category = "issue-type"
	Severity         Category = "severity"
	MemberStatus     Category = "member-status"
	EventType        Category = "event-type"
	EventStatus      Category = "event-status"
	NotificationType Category = "notification-type"
	Health           Category = "health"
	DeadlineStatus   Category = "deadline-status"
)

// Neutral is the colour of anything without a mapping.
const Neutral = "default"

type Presentation struct {
	Color string `json:"color" yaml:"color"`
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
}

type entry struct {
	color string
	icon  string // unicode
	ascii string
}

const (
	blue   = "#1890ff"
	orange = "#fa8c16"
	purple = "#722ed1"
	green  = "#52c41a"
	red    = "#f5222d"
	gray   = "#8c8c8c"
)

var table = map[Category]map[string]entry{
	ProjectStatus: {
		"planning":    {blue, "◔", "o"},
		"in-progress": {orange, "▶", ">"},
		"review":      {purple, "◉", "?"},
		"completed":   {green, "✔", "v"},
		"on-hold":     {red, "⏸", "="},
	},
	Priority: {
		"low":      {green, "↓", "v"},
		"medium":   {blue, "→", "-"},
		"high":     {orange, "↑", "^"},
		"critical": {red, "‼", "!"},
	},
	TaskStatus: {
		"todo":        {blue, "○", "o"},
		"in-progress": {orange, "◐", ">"},
		"review":      {purple, "◉", "?"},
		"completed":   {green, "●", "x"},
	},
	IssueStatus: {
		"open":        {blue, "⚠", "!"},
		"in-progress": {orange, "⟳", ">"},
		"resolved":    {green, "✔", "v"},
		"closed":      {gray, "✖", "x"},
	},
	IssueType: {
		"bug":         {red, "✱", "B"},
		"feature":     {blue, "★", "F"},
		"improvement": {green, "▲", "I"},
		"task":        {purple, "☐", "T"},
	},
	Severity: {
		"minor":    {green, "·", "."},
		"major":    {orange, "•", "*"},
		"critical": {red, "◆", "#"},
		"blocker":  {red, "⛔", "X"},
	},
	MemberStatus: {
		"active":   {green, "●", "+"},
		"inactive": {red, "○", "-"},
	},
	EventType: {
		"task":      {blue, "☐", "T"},
		"deadline":  {red, "⚑", "D"},
		"meeting":   {green, "☏", "M"},
		"milestone": {purple, "◆", "*"},
	},
	EventStatus: {
		"upcoming":    {blue, "◷", "o"},
		"in-progress": {orange, "▶", ">"},
		"completed":   {green, "✔", "v"},
		"overdue":     {red, "⚠", "!"},
	},
	NotificationType: {
		"task_assigned":     {blue, "☐", "T"},
		"deadline_reminder": {red, "⚑", "D"},
		"task_completed":    {green, "✔", "v"},
		"project_update":    {purple, "ℹ", "i"},
		"meeting_reminder":  {orange, "☏", "M"},
	},
	Health: {
		"on-track": {green, "✔", "v"},
		"at-risk":  {orange, "⚠", "!"},
		"delayed":  {red, "✖", "x"},
		"overdue":  {red, "⚠", "!"},
	},
	DeadlineStatus: {
		"upcoming":  {blue, "◷", "o"},
		"due-today": {orange, "⚑", "!"},
		"overdue":   {red, "⚠", "!"},
	},
}

// ASCII switches Lookup to plain ASCII icons.
var ASCII bool

// Lookup returns the presentation of value within category. Unknown categories
// or values come back neutral, labelled from the raw value.
func Lookup(category Category, value string) Presentation {
	p := Presentation{Color: Neutral, Icon: "•", Label: Label(value)}
	if ASCII {
		p.Icon = "*"
	}
	e, ok := table[category][value]
	if !ok {
		return p
	}
	p.Color = e.color
	p.Icon = e.icon
	if ASCII {
		p.Icon = e.ascii
	}
	return p
}

// Label upper-cases a value and turns dashes and underscores into spaces:
// "in-progress" becomes "IN PROGRESS".
func Label(value string) string {
	r := strings.NewReplacer("-", " ", "_", " ")
	return strings.ToUpper(r.Replace(strings.TrimSpace(value)))
}

// Values lists the mapped values of a category, mostly for tests and legends.
func Values(category Category) []string {
	var out []string
	for v := range table[category] {
		out = append(out, v)
	}
	return out
}
