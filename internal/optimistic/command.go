package optimistic

import (
	"github.com/google/uuid"
)

// CreateCommand inserts a provisional entry under a temporary id, then either
// swaps it for the server's copy (Commit) or removes it (Rollback).
type CreateCommand[T any] struct {
	ID      uuid.UUID
	TempID  string
	col     *Collection[T]
	item    T
	prepend bool
	applied bool
}

// NewCreate builds a create command for item, which must already carry tempID
// as its identifier. Nothing changes until Apply.
func NewCreate[T any](col *Collection[T], item T, tempID string, prepend bool) *CreateCommand[T] {
	return &CreateCommand[T]{
		ID:      uuid.New(),
		TempID:  tempID,
		col:     col,
		item:    item,
		prepend: prepend,
	}
}

// Apply inserts the provisional entry into the collection.
func (cmd *CreateCommand[T]) Apply() {
	cmd.col.mu.Lock()
	defer cmd.col.mu.Unlock()
	if cmd.applied {
		return
	}
	cmd.applied = true
	if cmd.prepend {
		cmd.col.items = append([]T{cmd.item}, cmd.col.items...)
		return
	}
	cmd.col.items = append(cmd.col.items, cmd.item)
}

// Commit replaces the provisional entry with the server's copy, keeping its
// position. If the entry was removed in the meantime the result is discarded;
// a late completion must not resurrect a deleted entry.
func (cmd *CreateCommand[T]) Commit(server T) {
	cmd.col.mu.Lock()
	defer cmd.col.mu.Unlock()
	for i := range cmd.col.items {
		if cmd.col.id(cmd.col.items[i]) == cmd.TempID {
			cmd.col.items[i] = server
			return
		}
	}
}

// Rollback removes the provisional entry.
func (cmd *CreateCommand[T]) Rollback() {
	cmd.col.mu.Lock()
	defer cmd.col.mu.Unlock()
	kept := cmd.col.items[:0]
	for _, item := range cmd.col.items {
		if cmd.col.id(item) != cmd.TempID {
			kept = append(kept, item)
		}
	}
	cmd.col.items = kept
}

// DeleteCommand removes an entry immediately and keeps a snapshot of the
// whole collection so a failed server call restores every entry to its
// original position and values.
type DeleteCommand[T any] struct {
	ID       uuid.UUID
	TargetID string
	col      *Collection[T]
	previous []T
	removed  bool
}

func NewDelete[T any](col *Collection[T], targetID string) *DeleteCommand[T] {
	return &DeleteCommand[T]{
		ID:       uuid.New(),
		TargetID: targetID,
		col:      col,
	}
}

// Apply snapshots the collection and removes the target entry. It reports
// whether the entry was present.
func (cmd *DeleteCommand[T]) Apply() bool {
	cmd.col.mu.Lock()
	defer cmd.col.mu.Unlock()
	cmd.previous = cmd.col.snapshot()
	found := false
	kept := cmd.col.items[:0]
	for _, item := range cmd.col.items {
		if cmd.col.id(item) == cmd.TargetID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	cmd.col.items = kept
	cmd.removed = found
	return found
}

// Rollback restores the snapshot taken by Apply. This is a full restore, not
// a patch, so the removed entry comes back at its original position.
func (cmd *DeleteCommand[T]) Rollback() {
	cmd.col.mu.Lock()
	defer cmd.col.mu.Unlock()
	if cmd.previous == nil {
		return
	}
	cmd.col.items = append([]T(nil), cmd.previous...)
}

// Commit discards the snapshot once the server confirmed the removal.
func (cmd *DeleteCommand[T]) Commit() {
	cmd.col.mu.Lock()
	defer cmd.col.mu.Unlock()
	cmd.previous = nil
}
