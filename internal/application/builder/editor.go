// Package builder holds the in-memory editing state behind the
// portfolio builder: a working copy of the profile, one list editor
// per repeating section, and the basic-info field group. Editors
// never touch persistence; every change funnels through the
// session's keyed update and is only stored on an explicit save.
package builder

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEditInProgress = errors.New("another item is already being edited")
	ErrNoDraft        = errors.New("no draft is being edited")
	ErrItemNotFound   = errors.New("item not found in list")
)

// Schema describes one repeating section to the generic editor: how
// to produce a fresh draft and how to read an item's id.
type Schema[T any] struct {
	NewDraft func() T
	ID       func(T) uuid.UUID
}

// Editor manages create/read/update/delete over one ordered list,
// with a single draft item in flight at a time. All operations are
// pure in-memory list transforms; they cannot fail against storage.
type Editor[T any] struct {
	schema   Schema[T]
	apply    func(items []T)
	items    []T
	draft    *T
	creating bool
}

// NewEditor wires an editor to its section. apply receives the full
// updated list on every commit or removal; it is the editor's only
// way of writing back to the aggregate.
func NewEditor[T any](schema Schema[T], items []T, apply func(items []T)) *Editor[T] {
	return &Editor[T]{
		schema: schema,
		apply:  apply,
		items:  append([]T(nil), items...),
	}
}

// Items returns a copy of the working list.
func (e *Editor[T]) Items() []T {
	return append([]T(nil), e.items...)
}

// Draft returns the item being edited, if any.
func (e *Editor[T]) Draft() (T, bool) {
	if e.draft == nil {
		var zero T
		return zero, false
	}
	return *e.draft, true
}

// Editing reports whether a draft is in flight.
func (e *Editor[T]) Editing() bool {
	return e.draft != nil
}

// StartCreate opens a fresh draft with a new id and section
// defaults. Disabled while another item is being edited.
func (e *Editor[T]) StartCreate() (T, error) {
	var zero T
	if e.draft != nil {
		return zero, ErrEditInProgress
	}
	draft := e.schema.NewDraft()
	e.draft = &draft
	e.creating = true
	return draft, nil
}

// StartEdit loads an existing item into the draft.
func (e *Editor[T]) StartEdit(id uuid.UUID) (T, error) {
	var zero T
	if e.draft != nil {
		return zero, ErrEditInProgress
	}
	for _, item := range e.items {
		if e.schema.ID(item) == id {
			draft := item
			e.draft = &draft
			e.creating = false
			return draft, nil
		}
	}
	return zero, ErrItemNotFound
}

// UpdateDraft mutates the in-flight draft. No persistence side
// effect; the draft id is the mutator's to preserve.
func (e *Editor[T]) UpdateDraft(mutate func(*T)) error {
	if e.draft == nil {
		return ErrNoDraft
	}
	mutate(e.draft)
	return nil
}

// ReplaceDraft swaps in a whole new draft value. merge reconciles the
// incoming value with the current draft; at minimum it must carry the
// draft's id over. This is how HTTP handlers apply a full form submit.
func (e *Editor[T]) ReplaceDraft(value T, merge func(prev T, next *T)) error {
	if e.draft == nil {
		return ErrNoDraft
	}
	merge(*e.draft, &value)
	*e.draft = value
	return nil
}

// Commit appends the draft (create) or replaces the matching element
// in place (edit), pushes the full list to the aggregate and exits
// edit mode. Element order is preserved; a new item goes at the end.
func (e *Editor[T]) Commit() error {
	if e.draft == nil {
		return ErrNoDraft
	}
	if e.creating {
		e.items = append(e.items, *e.draft)
	} else {
		id := e.schema.ID(*e.draft)
		for i, item := range e.items {
			if e.schema.ID(item) == id {
				e.items[i] = *e.draft
				break
			}
		}
	}
	e.draft = nil
	e.creating = false
	e.apply(e.Items())
	return nil
}

// Cancel discards the draft without touching the list.
func (e *Editor[T]) Cancel() {
	e.draft = nil
	e.creating = false
}

// Remove filters the item out and pushes the result immediately.
// No confirmation, no undo.
func (e *Editor[T]) Remove(id uuid.UUID) {
	filtered := e.items[:0:0]
	for _, item := range e.items {
		if e.schema.ID(item) != id {
			filtered = append(filtered, item)
		}
	}
	e.items = filtered
	e.apply(e.Items())
}

// Load replaces the working list, e.g. after a fresh profile load.
// Any in-flight draft is discarded.
func (e *Editor[T]) Load(items []T) {
	e.items = append([]T(nil), items...)
	e.draft = nil
	e.creating = false
}
