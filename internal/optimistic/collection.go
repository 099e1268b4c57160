package optimistic

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const tempIDPrefix = "new-"

// Collection is an ordered, id-addressed set of entries mutated
// optimistically. Mutations are serialized through the collection's lock so
// two commands issued in quick succession cannot interleave their local
// state changes, whatever order their network completions arrive in.
type Collection[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) string
}

func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Replace resets the collection to the given entries (a fresh server load).
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// Items returns a copy of the current entries in order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Find returns the entry with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the entry with the given id in place.
func (c *Collection[T]) Update(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *Collection[T]) snapshot() []T {
	return append([]T(nil), c.items...)
}

var tempIDMu sync.Mutex
var lastTempMs int64
var tempSeq int

// TempID allocates a locally unique temporary identifier of the form
// new-<unix-ms>. A per-process counter breaks same-millisecond ties.
func TempID() string {
	tempIDMu.Lock()
	defer tempIDMu.Unlock()
	now := time.Now().UnixMilli()
	if now == lastTempMs {
		tempSeq++
		return fmt.Sprintf("%s%d-%d", tempIDPrefix, now, tempSeq)
	}
	lastTempMs = now
	tempSeq = 0
	return fmt.Sprintf("%s%d", tempIDPrefix, now)
}

// IsTempID reports whether id names an entry that has never been persisted.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}
