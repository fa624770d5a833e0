// Package ordering maintains the display order of a profile's links.
//
// Functions here are pure: they take the current links, never mutate them,
// and return copies sorted by their new order together with the minimal set
// of order assignments a store has to persist.
package ordering

import (
	"cmp"
	"slices"

	"linkforge/internal/domain/entity"
	"linkforge/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrLinkNotInSet is returned when the link to move is not among the links.
	ErrLinkNotInSet = errors.New("link is not part of the profile")
	// ErrForeignLinkID is returned when a reorder names a link of another profile.
	ErrForeignLinkID = errors.New("reorder contains a link of another profile")
	// ErrDuplicateLinkID is returned when a reorder names the same link twice.
	ErrDuplicateLinkID = errors.New("reorder contains a duplicate link id")
	// ErrInvalidDirection is returned for a move that is neither up nor down.
	ErrInvalidDirection = errors.New("invalid move direction")
)

// Result is the outcome of an ordering operation.
type Result struct {
	Links   []*entity.Link      // Copies sorted by their new order.
	Changes []entity.LinkOrder // Only the links whose order changed.
}

// Changed reports whether the operation requires a write.
func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

// Compare orders links by position, then creation time, then id, so that the
// order is total even when stored values collide.
func Compare(a, b *entity.Link) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(a.ID.String(), b.ID.String())
}

// Sorted returns copies of the links sorted by Compare.
func Sorted(links []*entity.Link) []*entity.Link {
	out := make([]*entity.Link, 0, len(links))
	for _, l := range links {
		cp := *l
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, Compare)

	return out
}

// IsDense reports whether the order values are exactly 0..N-1.
func IsDense(links []*entity.Link) bool {
	seen := make([]bool, len(links))
	for _, l := range links {
		if l.Order < 0 || l.Order >= len(links) || seen[l.Order] {
			return false
		}
		seen[l.Order] = true
	}

	return true
}

// NextOrder returns the order for a link appended to the set.
func NextOrder(links []*entity.Link) int {
	if len(links) == 0 {
		return 0
	}

	highest := links[0].Order
	for _, l := range links[1:] {
		highest = max(highest, l.Order)
	}

	return highest + 1
}

// Normalize renumbers the links to 0..N-1 keeping their relative order.
func Normalize(links []*entity.Link) Result {
	sorted := Sorted(links)

	return assign(sorted, originalOrders(links))
}

// Move swaps the link with its neighbour in the given direction.
// Moving the first link up or the last link down leaves the arrangement as is.
// Stored orders with gaps or collisions are normalized first, so the result is
// always dense and a boundary move may still carry the renumbering.
func Move(links []*entity.Link, id uuid.UUID, direction entity.MoveDirection) (Result, error) {
	if !direction.IsValid() {
		return Result{}, errors.WithStack(ErrInvalidDirection)
	}

	sorted := Sorted(links)
	if !IsDense(links) {
		sorted = Normalize(links).Links
	}
	idx := slices.IndexFunc(sorted, func(l *entity.Link) bool { return l.ID == id })
	if idx < 0 {
		return Result{}, errors.WithStack(ErrLinkNotInSet)
	}

	neighbour := idx - 1
	if direction == entity.MoveDown {
		neighbour = idx + 1
	}
	if neighbour >= 0 && neighbour < len(sorted) {
		sorted[idx], sorted[neighbour] = sorted[neighbour], sorted[idx]
	}

	return assign(sorted, originalOrders(links)), nil
}

// Reorder assigns order = index to the links named by ids. Links of the set
// that ids omits keep their relative order and are placed after the named
// ones. Any id outside the set rejects the whole call.
func Reorder(links []*entity.Link, ids []uuid.UUID) (Result, error) {
	byID := make(map[uuid.UUID]*entity.Link, len(links))
	for _, l := range links {
		cp := *l
		byID[l.ID] = &cp
	}

	named := make(map[uuid.UUID]struct{}, len(ids))
	ordered := make([]*entity.Link, 0, len(links))
	for _, id := range ids {
		if _, dup := named[id]; dup {
			return Result{}, errors.WithStack(ErrDuplicateLinkID)
		}
		l, ok := byID[id]
		if !ok {
			return Result{}, errors.WithStack(ErrForeignLinkID)
		}
		named[id] = struct{}{}
		ordered = append(ordered, l)
	}

	for _, l := range Sorted(links) {
		if _, ok := named[l.ID]; !ok {
			ordered = append(ordered, l)
		}
	}

	return assign(ordered, originalOrders(links)), nil
}

// assign sets order = index on the already arranged copies and records the
// links whose stored order differs.
func assign(arranged []*entity.Link, before map[uuid.UUID]int) Result {
	res := Result{Links: arranged}
	for i, l := range arranged {
		l.Order = i
		if prev, ok := before[l.ID]; !ok || prev != i {
			res.Changes = append(res.Changes, entity.LinkOrder{ID: l.ID, Order: i})
		}
	}

	return res
}

func originalOrders(links []*entity.Link) map[uuid.UUID]int {
	orders := make(map[uuid.UUID]int, len(links))
	for _, l := range links {
		orders[l.ID] = l.Order
	}

	return orders
}
