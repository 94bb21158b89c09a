package store

import (
	"strconv"
	"time"
)

// Record is implemented by every entity a Collection can hold.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
	Clone() T
}

// IDSource hands out time-based identifiers that never repeat within a session:
// the current unix millisecond, bumped past the last issued (or observed) value.
type IDSource struct {
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

func (s *IDSource) Next() string {
	n := s.now().UnixMilli()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return strconv.FormatInt(n, 10)
}

// Observe records an externally assigned id so numeric ids from a seed
// dataset are never handed out again.
func (s *IDSource) Observe(id string) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > s.last {
		s.last = n
	}
}

// Collection is an ordered, in-memory set of records of one type.
// Reads and writes are synchronous and immediately visible; it is not safe for
// concurrent use.
type Collection[T Record[T]] struct {
	items []T
	ids   *IDSource
}

func NewCollection[T Record[T]](ids *IDSource, seed []T) *Collection[T] {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	c := &Collection[T]{ids: ids, items: make([]T, 0, len(seed))}
	for _, it := range seed {
		ids.Observe(it.RecordID())
		c.items = append(c.items, it.Clone())
	}
	return c
}

// Create assigns a fresh id to draft and appends it.
func (c *Collection[T]) Create(draft T) T {
	it := draft.Clone().WithRecordID(c.ids.Next())
	c.items = append(c.items, it)
	return it.Clone()
}

// Update applies patch to the record with the given id. A missing id is a
// no-op and reports false. The patch cannot change the record's id.
func (c *Collection[T]) Update(id string, patch func(*T)) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	it := c.items[i].Clone()
	patch(&it)
	c.items[i] = it.WithRecordID(id)
	return true
}

// Replace swaps the record with the given id for next, keeping the id.
func (c *Collection[T]) Replace(id string, next T) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i] = next.Clone().WithRecordID(id)
	return true
}

// Delete removes the record with the given id; deleting a missing id is a no-op.
func (c *Collection[T]) Delete(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return true
}

// List returns copies of the records matching pred, in insertion order.
// A nil pred matches everything.
func (c *Collection[T]) List(pred func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred == nil || pred(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}

func (c *Collection[T]) All() []T { return c.List(nil) }

func (c *Collection[T]) Get(id string) (T, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i].Clone(), true
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) index(id string) int {
	for i := range c.items {
		if c.items[i].RecordID() == id {
			return i
		}
	}
	return -1
}
