package store

import (
	"fmt"
	"os"
	"time"

	"taskflow/internal/model"

	"gopkg.in/yaml.v3"
)

// Dataset is a plain snapshot of every collection. It is what a session is
// seeded from and what exports write out.
type Dataset struct {
	Projects      []model.Project       `json:"projects" yaml:"projects"`
	Tasks         []model.Task          `json:"tasks" yaml:"tasks"`
	Issues        []model.Issue         `json:"issues" yaml:"issues"`
	Members       []model.TeamMember    `json:"members" yaml:"members"`
	Events        []model.ScheduleEvent `json:"events" yaml:"events"`
	Notifications []model.Notification  `json:"notifications" yaml:"notifications"`

	ProjectProgress []model.ProjectProgress   `json:"projectProgress" yaml:"projectProgress"`
	TaskProgress    []model.TaskProgress      `json:"taskProgress" yaml:"taskProgress"`
	Performance     []model.MemberPerformance `json:"teamPerformance" yaml:"teamPerformance"`
	Deadlines       []model.Deadline          `json:"deadlines" yaml:"deadlines"`
}

// LoadDataset reads a YAML dataset, used in place of the built-in seed.
func LoadDataset(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

func hours(h float64) *float64 { return &h }

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	sarah model.MemberID = "1"
	mike  model.MemberID = "2"
	emma  model.MemberID = "3"
	alex  model.MemberID = "4"

	websiteRedesign   model.ProjectID = "1"
	mobileApp         model.ProjectID = "2"
	marketingCampaign model.ProjectID = "3"
	databaseMigration model.ProjectID = "4"
)

// Seed returns the fixed dataset every session starts from.
func Seed() Dataset {
	return Dataset{
		Members: []model.TeamMember{
			{ID: sarah, Name: "Sarah Chen", Email: "sarah.chen@company.com", Phone: "+1 (555) 123-4567", Role: "Project Manager", Department: "Engineering", Status: model.MemberActive, JoinDate: "2023-01-15", TasksCompleted: 45, CurrentTasks: 8},
			{ID: mike, Name: "Mike Johnson", Email: "mike.johnson@company.com", Phone: "+1 (555) 234-5678", Role: "Senior Developer", Department: "Engineering", Status: model.MemberActive, JoinDate: "2022-08-20", TasksCompleted: 78, CurrentTasks: 12},
			{ID: emma, Name: "Emma Davis", Email: "emma.davis@company.com", Phone: "+1 (555) 345-6789", Role: "UX Designer", Department: "Design", Status: model.MemberActive, JoinDate: "2023-03-10", TasksCompleted: 32, CurrentTasks: 6},
			{ID: alex, Name: "Alex Rodriguez", Email: "alex.rodriguez@company.com", Phone: "+1 (555) 456-7890", Role: "QA Engineer", Department: "Quality Assurance", Status: model.MemberInactive, JoinDate: "2022-11-05", TasksCompleted: 56, CurrentTasks: 0},
		},
		Projects: []model.Project{
			{
				ID: websiteRedesign, Name: "Website Redesign",
				Description: "Complete redesign of the company website with modern UI/UX principles",
				Status:      model.ProjectInProgress, Priority: model.PriorityHigh,
				StartDate: "2024-01-15", EndDate: "2024-03-30", Progress: 75, Budget: 50000,
				TeamMemberIDs: []model.MemberID{sarah, mike, emma},
				Tasks:         model.TaskCounts{Total: 24, Completed: 18, InProgress: 4, Pending: 2},
				ManagerID:     sarah, Client: "Internal",
			},
			{
				ID: mobileApp, Name: "Mobile App Development",
				Description: "Native mobile application for iOS and Android platforms",
				Status:      model.ProjectInProgress, Priority: model.PriorityCritical,
				StartDate: "2024-02-01", EndDate: "2024-06-15", Progress: 45, Budget: 120000,
				TeamMemberIDs: []model.MemberID{mike, alex, emma, sarah},
				Tasks:         model.TaskCounts{Total: 48, Completed: 22, InProgress: 12, Pending: 14},
				ManagerID:     mike, Client: "TechCorp Inc.",
			},
			{
				ID: marketingCampaign, Name: "Marketing Campaign",
				Description: "Q2 digital marketing campaign across multiple channels",
				Status:      model.ProjectReview, Priority: model.PriorityMedium,
				StartDate: "2024-03-01", EndDate: "2024-05-31", Progress: 90, Budget: 25000,
				TeamMemberIDs: []model.MemberID{emma, sarah},
				Tasks:         model.TaskCounts{Total: 16, Completed: 14, InProgress: 2, Pending: 0},
				ManagerID:     emma, Client: "Marketing Dept",
			},
			{
				ID: databaseMigration, Name: "Database Migration",
				Description: "Migration from legacy database to modern cloud infrastructure",
				Status:      model.ProjectPlanning, Priority: model.PriorityHigh,
				StartDate: "2024-04-01", EndDate: "2024-07-30", Progress: 15, Budget: 75000,
				TeamMemberIDs: []model.MemberID{alex, mike},
				Tasks:         model.TaskCounts{Total: 32, Completed: 5, InProgress: 3, Pending: 24},
				ManagerID:     alex, Client: "Internal",
			},
		},
		Tasks: []model.Task{
			{
				ID: "1", Title: "Design Homepage Layout",
				Description: "Create wireframes and mockups for the new homepage design",
				Status:      model.TaskInProgress, Priority: model.PriorityHigh,
				AssigneeID: emma, ReporterID: sarah, ProjectID: websiteRedesign,
				DueDate: "2024-02-15", CreatedDate: "2024-01-20",
				EstimatedHours: 16, ActualHours: hours(12),
				Tags: []string{"design", "ui/ux", "homepage"},
				Comments: []model.Comment{
					{ID: "1", AuthorID: sarah, Content: "Please focus on mobile-first approach", Timestamp: ts("2024-01-21T10:30:00Z")},
				},
			},
			{
				ID: "2", Title: "Implement User Authentication",
				Description: "Set up JWT-based authentication system with login/logout functionality",
				Status:      model.TaskTodo, Priority: model.PriorityCritical,
				AssigneeID: mike, ReporterID: sarah, ProjectID: mobileApp,
				DueDate: "2024-02-20", CreatedDate: "2024-01-22",
				EstimatedHours: 24,
				Tags:           []string{"backend", "security", "authentication"},
				Comments:       []model.Comment{},
			},
			{
				ID: "3", Title: "Create Marketing Copy",
				Description: "Write compelling copy for the Q2 marketing campaign",
				Status:      model.TaskReview, Priority: model.PriorityMedium,
				AssigneeID: emma, ReporterID: sarah, ProjectID: marketingCampaign,
				DueDate: "2024-02-10", CreatedDate: "2024-01-18",
				EstimatedHours: 8, ActualHours: hours(10),
				Tags: []string{"marketing", "copywriting", "content"},
				Comments: []model.Comment{
					{ID: "2", AuthorID: sarah, Content: "Looks great! Just need minor adjustments to the CTA", Timestamp: ts("2024-02-08T14:15:00Z")},
				},
			},
			{
				ID: "4", Title: "Database Schema Design",
				Description: "Design the new database schema for user management",
				Status:      model.TaskCompleted, Priority: model.PriorityHigh,
				AssigneeID: alex, ReporterID: mike, ProjectID: databaseMigration,
				DueDate: "2024-01-30", CreatedDate: "2024-01-15",
				EstimatedHours: 12, ActualHours: hours(14),
				Tags:     []string{"database", "schema", "backend"},
				Comments: []model.Comment{},
			},
			{
				ID: "5", Title: "API Testing",
				Description: "Comprehensive testing of all API endpoints",
				Status:      model.TaskInProgress, Priority: model.PriorityMedium,
				AssigneeID: alex, ReporterID: mike, ProjectID: mobileApp,
				DueDate: "2024-02-25", CreatedDate: "2024-01-25",
				EstimatedHours: 20, ActualHours: hours(8),
				Tags:     []string{"testing", "api", "qa"},
				Comments: []model.Comment{},
			},
		},
		Issues: []model.Issue{
			{
				ID: "1", Title: "Login button not responsive on mobile",
				Description: "The login button becomes unclickable on mobile devices with screen width less than 768px",
				Type:        model.IssueBug, Status: model.IssueOpen, Priority: model.PriorityHigh, Severity: model.SeverityMajor,
				AssigneeID: mike, ReporterID: sarah, ProjectID: websiteRedesign,
				CreatedDate: "2024-02-10", UpdatedDate: "2024-02-12",
				Tags: []string{"mobile", "ui", "login"}, Attachments: []string{},
				Comments: []model.Comment{
					{ID: "1", AuthorID: sarah, Content: "This is affecting user registration rates significantly", Timestamp: ts("2024-02-10T14:30:00Z"), Kind: model.CommentNote},
					{ID: "2", AuthorID: mike, Content: "Investigating the CSS media queries", Timestamp: ts("2024-02-12T09:15:00Z"), Kind: model.CommentNote},
				},
				StepsToReproduce: "1. Open website on mobile device\n2. Navigate to login page\n3. Try to click login button",
				ExpectedBehavior: "Login button should be clickable and responsive",
				ActualBehavior:   "Button appears but is not clickable",
				Environment:      "Mobile Safari, Chrome Mobile",
			},
			{
				ID: "2", Title: "Add dark mode support",
				Description: "Implement dark mode theme across the entire application",
				Type:        model.IssueFeature, Status: model.IssueInProgress, Priority: model.PriorityMedium, Severity: model.SeverityMinor,
				AssigneeID: emma, ReporterID: sarah, ProjectID: websiteRedesign,
				CreatedDate: "2024-01-25", UpdatedDate: "2024-02-08", DueDate: "2024-03-15",
				Tags: []string{"ui", "theme", "accessibility"}, Attachments: []string{},
				Comments: []model.Comment{
					{ID: "3", AuthorID: emma, Content: "Working on the color palette and component updates", Timestamp: ts("2024-02-08T11:20:00Z"), Kind: model.CommentNote},
				},
			},
			{
				ID: "3", Title: "Database connection timeout",
				Description: "API requests are timing out due to database connection issues",
				Type:        model.IssueBug, Status: model.IssueResolved, Priority: model.PriorityCritical, Severity: model.SeverityBlocker,
				AssigneeID: alex, ReporterID: mike, ProjectID: mobileApp,
				CreatedDate: "2024-02-05", UpdatedDate: "2024-02-09", ResolvedDate: "2024-02-09",
				Tags: []string{"database", "api", "performance"}, Attachments: []string{},
				Comments: []model.Comment{
					{ID: "4", AuthorID: alex, Content: "Fixed by optimizing connection pool settings", Timestamp: ts("2024-02-09T16:45:00Z"), Kind: model.CommentStatusChange},
				},
			},
			{
				ID: "4", Title: "Improve page load performance",
				Description: "Optimize images and reduce bundle size to improve page load times",
				Type:        model.IssueImprovement, Status: model.IssueOpen, Priority: model.PriorityMedium, Severity: model.SeverityMinor,
				AssigneeID: emma, ReporterID: sarah, ProjectID: websiteRedesign,
				CreatedDate: "2024-02-01", UpdatedDate: "2024-02-01",
				Tags: []string{"performance", "optimization"}, Attachments: []string{},
				Comments: []model.Comment{},
			},
		},
		Events: []model.ScheduleEvent{
			{ID: "1", Title: "Design Homepage Layout", Type: model.EventTask, Date: "2024-02-15", Time: "09:00", AssigneeID: emma, ProjectID: websiteRedesign, Priority: model.PriorityHigh, Status: model.EventUpcoming, Description: "Complete wireframes and mockups for homepage"},
			{ID: "2", Title: "Project Review Meeting", Type: model.EventMeeting, Date: "2024-02-16", Time: "14:00", ProjectID: websiteRedesign, Priority: model.PriorityMedium, Status: model.EventUpcoming, Description: "Weekly project review with stakeholders"},
			{ID: "3", Title: "Mobile App Beta Release", Type: model.EventMilestone, Date: "2024-02-20", ProjectID: mobileApp, Priority: model.PriorityCritical, Status: model.EventUpcoming, Description: "Beta version release to testing team"},
			{ID: "4", Title: "API Testing Deadline", Type: model.EventDeadline, Date: "2024-02-18", AssigneeID: alex, ProjectID: mobileApp, Priority: model.PriorityHigh, Status: model.EventUpcoming, Description: "Complete comprehensive API testing"},
			{ID: "5", Title: "Marketing Copy Review", Type: model.EventTask, Date: "2024-02-14", Time: "11:00", AssigneeID: emma, ProjectID: marketingCampaign, Priority: model.PriorityMedium, Status: model.EventCompleted, Description: "Review and finalize marketing copy"},
		},
		Notifications: []model.Notification{
			{ID: "1", Title: "New Task Assigned", Message: "You have been assigned to 'Design Homepage Layout'", Type: model.NotifyTaskAssigned, Timestamp: ts("2024-02-13T10:30:00Z"), AssigneeID: emma, ProjectID: websiteRedesign},
			{ID: "2", Title: "Deadline Reminder", Message: "API Testing is due in 2 days", Type: model.NotifyDeadlineReminder, Timestamp: ts("2024-02-13T09:00:00Z"), AssigneeID: alex, ProjectID: mobileApp},
			{ID: "3", Title: "Task Completed", Message: "Sarah Chen completed 'Database Schema Design'", Type: model.NotifyTaskCompleted, Timestamp: ts("2024-02-12T16:45:00Z"), Read: true, ProjectID: databaseMigration},
			{ID: "4", Title: "Project Update", Message: "Website Redesign project is now 75% complete", Type: model.NotifyProjectUpdate, Timestamp: ts("2024-02-12T14:20:00Z"), Read: true, ProjectID: websiteRedesign},
			{ID: "5", Title: "Meeting Reminder", Message: "Project Review Meeting starts in 1 hour", Type: model.NotifyMeetingReminder, Timestamp: ts("2024-02-12T13:00:00Z"), Read: true, ProjectID: websiteRedesign},
		},
		ProjectProgress: []model.ProjectProgress{
			{ID: "1", ProjectID: websiteRedesign, Progress: 75, Deadline: "2024-03-30", Health: model.HealthOnTrack, TasksCompleted: 18, TotalTasks: 24, TeamSize: 4},
			{ID: "2", ProjectID: mobileApp, Progress: 45, Deadline: "2024-06-15", Health: model.HealthAtRisk, TasksCompleted: 22, TotalTasks: 48, TeamSize: 6},
			{ID: "3", ProjectID: marketingCampaign, Progress: 90, Deadline: "2024-05-31", Health: model.HealthOnTrack, TasksCompleted: 14, TotalTasks: 16, TeamSize: 3},
			{ID: "4", ProjectID: databaseMigration, Progress: 15, Deadline: "2024-07-30", Health: model.HealthDelayed, TasksCompleted: 5, TotalTasks: 32, TeamSize: 2},
		},
		TaskProgress: []model.TaskProgress{
			{ID: "1", Title: "Design Homepage Layout", ProjectID: websiteRedesign, AssigneeID: emma, Progress: 80, Deadline: "2024-02-15", Health: model.HealthOnTrack, Priority: model.PriorityHigh},
			{ID: "2", Title: "Implement User Authentication", ProjectID: mobileApp, AssigneeID: mike, Progress: 30, Deadline: "2024-02-20", Health: model.HealthAtRisk, Priority: model.PriorityCritical},
			{ID: "3", Title: "Create Marketing Copy", ProjectID: marketingCampaign, AssigneeID: emma, Progress: 100, Deadline: "2024-02-10", Health: model.HealthOnTrack, Priority: model.PriorityMedium},
			{ID: "4", Title: "Database Schema Design", ProjectID: databaseMigration, AssigneeID: alex, Progress: 100, Deadline: "2024-01-30", Health: model.HealthOverdue, Priority: model.PriorityHigh},
		},
		Performance: []model.MemberPerformance{
			{ID: "1", MemberID: sarah, TasksCompleted: 45, TasksInProgress: 8, AverageCompletionDays: 3.2, OnTimeDelivery: 92},
			{ID: "2", MemberID: mike, TasksCompleted: 38, TasksInProgress: 12, AverageCompletionDays: 4.1, OnTimeDelivery: 85},
			{ID: "3", MemberID: emma, TasksCompleted: 32, TasksInProgress: 6, AverageCompletionDays: 2.8, OnTimeDelivery: 95},
			{ID: "4", MemberID: alex, TasksCompleted: 28, TasksInProgress: 4, AverageCompletionDays: 3.5, OnTimeDelivery: 88},
		},
		Deadlines: []model.Deadline{
			{ID: "1", Title: "Design Homepage Layout", Kind: model.DeadlineTask, Date: "2024-02-15", AssigneeID: emma, ProjectID: websiteRedesign},
			{ID: "2", Title: "User Authentication Implementation", Kind: model.DeadlineTask, Date: "2024-02-13", AssigneeID: mike, ProjectID: mobileApp},
			{ID: "3", Title: "Website Redesign Project", Kind: model.DeadlineProject, Date: "2024-03-30", ProjectID: websiteRedesign},
			{ID: "4", Title: "Database Schema Review", Kind: model.DeadlineTask, Date: "2024-02-10", AssigneeID: alex, ProjectID: databaseMigration},
		},
	}
}
