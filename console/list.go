package console

import "slices"

// listPhase is the render state of a listing page.
type listPhase int

const (
	listLoading listPhase = iota
	listFailed
	listReady
)

// selection summarises the checkbox column header state.
type selection int

const (
	selectedNone selection = iota
	selectedSome // indeterminate
	selectedAll
)

// list is the controller shared by every listing page. It owns the
// fetched collection, the derived view state (selection set, focused
// row) and the delete reconciliation. Identity comes from the id
// function, so reconciliation never depends on slice positions.
//
// Every asynchronous operation carries the generation current when it
// started; a response for an older generation belongs to state that no
// longer exists and is dropped.
type list[T any] struct {
	phase  listPhase
	items  []T
	errMsg string

	id       func(T) string
	selected map[string]bool
	focus    int // index of the focused row, -1 when empty

	pendingDelete *T
	deleting      bool

	gen int
}

func newList[T any](id func(T) string) *list[T] {
	return &list[T]{id: id, selected: make(map[string]bool), focus: -1}
}

// beginFetch transitions to loading and returns the new generation.
func (l *list[T]) beginFetch() int {
	l.gen++
	l.phase = listLoading
	l.errMsg = ""
	return l.gen
}

// resolveFetch applies a fetch outcome. It reports false when the
// response is stale and was ignored.
func (l *list[T]) resolveFetch(gen int, items []T, err error) bool {
	if gen != l.gen {
		return false
	}
	if err != nil {
		l.phase = listFailed
		l.errMsg = sentence(err.Error())
		return true
	}
	l.phase = listReady
	l.items = items
	l.selected = make(map[string]bool)
	l.pendingDelete = nil
	l.deleting = false
	if len(items) > 0 {
		l.focus = 0
	} else {
		l.focus = -1
	}
	return true
}

func (l *list[T]) ready() bool { return l.phase == listReady }

// focused returns the focused item, if any.
func (l *list[T]) focused() (T, bool) {
	var zero T
	if l.focus < 0 || l.focus >= len(l.items) {
		return zero, false
	}
	return l.items[l.focus], true
}

// moveFocus shifts the focused row, clamped to the collection.
func (l *list[T]) moveFocus(delta int) {
	if len(l.items) == 0 {
		l.focus = -1
		return
	}
	l.focus += delta
	if l.focus < 0 {
		l.focus = 0
	}
	if l.focus >= len(l.items) {
		l.focus = len(l.items) - 1
	}
}

// toggleSelected flips the checkbox of the focused row.
func (l *list[T]) toggleSelected() {
	item, ok := l.focused()
	if !ok {
		return
	}
	id := l.id(item)
	if l.selected[id] {
		delete(l.selected, id)
	} else {
		l.selected[id] = true
	}
}

// toggleSelectAll selects every row, or clears the selection when all
// rows are already selected.
func (l *list[T]) toggleSelectAll() {
	if l.selectionState() == selectedAll {
		l.selected = make(map[string]bool)
		return
	}
	for _, item := range l.items {
		l.selected[l.id(item)] = true
	}
}

func (l *list[T]) isSelected(item T) bool { return l.selected[l.id(item)] }

func (l *list[T]) selectionState() selection {
	if len(l.items) == 0 || len(l.selected) == 0 {
		return selectedNone
	}
	n := 0
	for _, item := range l.items {
		if l.selected[l.id(item)] {
			n++
		}
	}
	switch n {
	case 0:
		return selectedNone
	case len(l.items):
		return selectedAll
	}
	return selectedSome
}

// requestDelete stages the focused row for the confirmation prompt.
func (l *list[T]) requestDelete() bool {
	item, ok := l.focused()
	if !ok {
		return false
	}
	l.pendingDelete = &item
	return true
}

func (l *list[T]) cancelDelete() {
	if l.deleting {
		// the call is already in flight, the prompt stays until it resolves
		return
	}
	l.pendingDelete = nil
}

// beginDelete marks the staged deletion as in flight and returns the
// target and the new generation. The second call is a no-op until the
// first resolves.
func (l *list[T]) beginDelete() (T, int, bool) {
	var zero T
	if l.pendingDelete == nil || l.deleting {
		return zero, 0, false
	}
	l.deleting = true
	l.gen++
	return *l.pendingDelete, l.gen, true
}

// resolveDelete applies a delete outcome. On success the target is
// removed from the collection by identity, without a refetch; on
// failure the collection is left untouched and the error surfaces as
// the inline banner.
func (l *list[T]) resolveDelete(gen int, err error) bool {
	if gen != l.gen {
		return false
	}
	target := l.pendingDelete
	l.pendingDelete = nil
	l.deleting = false
	if err != nil {
		l.errMsg = sentence(err.Error())
		return true
	}
	if target == nil {
		return true
	}
	id := l.id(*target)
	l.items = slices.DeleteFunc(l.items, func(item T) bool { return l.id(item) == id })
	delete(l.selected, id)
	if l.focus >= len(l.items) {
		l.focus = len(l.items) - 1
	}
	return true
}

// dismissError clears the inline banner.
func (l *list[T]) dismissError() {
	if l.phase == listReady {
		l.errMsg = ""
	}
}
