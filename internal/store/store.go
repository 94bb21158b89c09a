package store

import (
	"time"

	"taskflow/internal/model"

	"go.uber.org/zap"
)

// DB holds one Collection per entity type for a single session. Nothing in it is
// ever written back to disk; a new session starts from the seed again.
type DB struct {
	Projects      *Collection[model.Project]
	Tasks         *Collection[model.Task]
	Issues        *Collection[model.Issue]
	Members       *Collection[model.TeamMember]
	Events        *Collection[model.ScheduleEvent]
	Notifications *Collection[model.Notification]

	ProjectProgress *Collection[model.ProjectProgress]
	TaskProgress    *Collection[model.TaskProgress]
	Performance     *Collection[model.MemberPerformance]
	Deadlines       *Collection[model.Deadline]

	now func() time.Time
	ids *IDSource
	log *zap.Logger
}

type Option func(*DB)

// WithClock pins the session clock (used for "today" computations and ids).
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		if now != nil {
			db.now = now
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(db *DB) {
		if l != nil {
			db.log = l
		}
	}
}

func Open(ds Dataset, opts ...Option) *DB {
	db := &DB{now: time.Now, log: zap.NewNop()}
	for _, o := range opts {
		o(db)
	}
	db.ids = NewIDSource(db.now)

	db.Projects = NewCollection(db.ids, ds.Projects)
	db.Tasks = NewCollection(db.ids, ds.Tasks)
	db.Issues = NewCollection(db.ids, ds.Issues)
	db.Members = NewCollection(db.ids, ds.Members)
	db.Events = NewCollection(db.ids, ds.Events)
	db.Notifications = NewCollection(db.ids, ds.Notifications)
	db.ProjectProgress = NewCollection(db.ids, ds.ProjectProgress)
	db.TaskProgress = NewCollection(db.ids, ds.TaskProgress)
	db.Performance = NewCollection(db.ids, ds.Performance)
	db.Deadlines = NewCollection(db.ids, ds.Deadlines)

	db.log.Debug("session opened",
		zap.Int("projects", db.Projects.Len()),
		zap.Int("tasks", db.Tasks.Len()),
		zap.Int("issues", db.Issues.Len()),
		zap.Int("members", db.Members.Len()),
	)
	return db
}

// OpenSeed opens a session over the built-in seed dataset.
func OpenSeed(opts ...Option) *DB {
	return Open(Seed(), opts...)
}

func (db *DB) Now() time.Time { return db.now() }

// Today is the session's current calendar date.
func (db *DB) Today() model.Date { return model.DateOf(db.now()) }

func (db *DB) Logger() *zap.Logger { return db.log }

func (db *DB) Snapshot() Dataset {
	return Dataset{
		Projects:        db.Projects.All(),
		Tasks:           db.Tasks.All(),
		Issues:          db.Issues.All(),
		Members:         db.Members.All(),
		Events:          db.Events.All(),
		Notifications:   db.Notifications.All(),
		ProjectProgress: db.ProjectProgress.All(),
		TaskProgress:    db.TaskProgress.All(),
		Performance:     db.Performance.All(),
		Deadlines:       db.Deadlines.All(),
	}
}

// Directory returns a lookup over the session's current projects and members.
func (db *DB) Directory() Directory {
	return NewDirectory(db.Projects.All(), db.Members.All())
}

func (db *DB) nextID() string { return db.ids.Next() }
