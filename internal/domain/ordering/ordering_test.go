package ordering

import (
	"math/rand/v2"
	"testing"
	"time"

	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinks(titles ...string) []*entity.Link {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	links := make([]*entity.Link, 0, len(titles))
	for i, title := range titles {
		links = append(links, &entity.Link{
			ID:        uuid.New(),
			Title:     title,
			Order:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	return links
}

func titles(links []*entity.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Title)
	}

	return out
}

func orders(links []*entity.Link) []int {
	out := make([]int, 0, len(links))
	for _, l := range links {
		out = append(out, l.Order)
	}

	return out
}

func apply(links []*entity.Link, res Result) []*entity.Link {
	byID := make(map[uuid.UUID]int, len(res.Changes))
	for _, c := range res.Changes {
		byID[c.ID] = c.Order
	}
	out := make([]*entity.Link, 0, len(links))
	for _, l := range links {
		cp := *l
		if o, ok := byID[l.ID]; ok {
			cp.Order = o
		}
		out = append(out, &cp)
	}

	return out
}

func TestMove_SwapsWithNeighbourThenNoOpAtTop(t *testing.T) {
	links := newLinks("A", "B", "C")
	b := links[1].ID

	first, err := Move(links, b, entity.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, titles(first.Links))
	assert.Equal(t, []int{0, 1, 2}, orders(first.Links))
	assert.Len(t, first.Changes, 2)

	second, err := Move(apply(links, first), b, entity.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, titles(second.Links))
	assert.Equal(t, []int{0, 1, 2}, orders(second.Links))
	assert.False(t, second.Changed())
}

func TestMove_BoundaryIsNoOp(t *testing.T) {
	links := newLinks("A", "B", "C")

	up, err := Move(links, links[0].ID, entity.MoveUp)
	require.NoError(t, err)
	assert.False(t, up.Changed())
	assert.Equal(t, []string{"A", "B", "C"}, titles(up.Links))

	down, err := Move(links, links[2].ID, entity.MoveDown)
	require.NoError(t, err)
	assert.False(t, down.Changed())
	assert.Equal(t, []string{"A", "B", "C"}, titles(down.Links))
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	links := newLinks("A", "B")

	_, err := Move(links, links[1].ID, entity.MoveUp)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, orders(links))
}

func TestMove_UnknownLinkAndDirection(t *testing.T) {
	links := newLinks("A", "B")

	_, err := Move(links, uuid.New(), entity.MoveUp)
	assert.True(t, errors.Is(err, ErrLinkNotInSet))

	_, err = Move(links, links[0].ID, entity.MoveDirection("sideways"))
	assert.True(t, errors.Is(err, ErrInvalidDirection))
}

func TestMove_RandomSequencesStayDense(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 1; n <= 8; n++ {
		links := newLinks(make([]string, n)...)
		for range 200 {
			target := links[rng.IntN(n)].ID
			direction := entity.MoveUp
			if rng.IntN(2) == 0 {
				direction = entity.MoveDown
			}

			res, err := Move(links, target, direction)
			require.NoError(t, err)

			links = apply(links, res)
			require.True(t, IsDense(links), "orders %v are not dense", orders(links))
		}
	}
}

func TestMove_RenumbersGapsWhenSwapping(t *testing.T) {
	links := newLinks("A", "B", "C")
	links = append(links[:1], links[2:]...) // B deleted, orders are 0 and 2

	res, err := Move(links, links[1].ID, entity.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, titles(res.Links))
	assert.Equal(t, []int{0, 1}, orders(res.Links))
}

func TestMove_BoundaryOnGappedLinksStillNormalizes(t *testing.T) {
	links := newLinks("A", "B")
	links[1].Order = 5

	res, err := Move(links, links[0].ID, entity.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(res.Links))
	assert.Equal(t, []entity.LinkOrder{{ID: links[1].ID, Order: 1}}, res.Changes)
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 0, NextOrder(nil))
	assert.Equal(t, 3, NextOrder(newLinks("A", "B", "C")))

	gapped := newLinks("A", "B")
	gapped[1].Order = 7
	assert.Equal(t, 8, NextOrder(gapped))
}

func TestReorder_AssignsIndex(t *testing.T) {
	links := newLinks("A", "B", "C")

	res, err := Reorder(links, []uuid.UUID{links[2].ID, links[0].ID, links[1].ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, titles(res.Links))
	assert.Equal(t, []int{0, 1, 2}, orders(res.Links))
	assert.Len(t, res.Changes, 3)
}

func TestReorder_ForeignIDRejectsWholeCall(t *testing.T) {
	links := newLinks("A", "B", "C")

	res, err := Reorder(links, []uuid.UUID{links[1].ID, uuid.New(), links[0].ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForeignLinkID))
	assert.Empty(t, res.Changes)
	assert.Equal(t, []int{0, 1, 2}, orders(links))
}

func TestReorder_DuplicateID(t *testing.T) {
	links := newLinks("A", "B")

	_, err := Reorder(links, []uuid.UUID{links[0].ID, links[0].ID})
	assert.True(t, errors.Is(err, ErrDuplicateLinkID))
}

func TestReorder_OmittedLinksFollowNamedOnes(t *testing.T) {
	links := newLinks("A", "B", "C", "D")

	res, err := Reorder(links, []uuid.UUID{links[3].ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "B", "C"}, titles(res.Links))
	assert.True(t, IsDense(res.Links))
}

func TestNormalize(t *testing.T) {
	links := newLinks("A", "B", "C")
	links[0].Order = 4
	links[1].Order = 4
	links[2].Order = 1

	res := Normalize(links)
	assert.Equal(t, []string{"C", "A", "B"}, titles(res.Links))
	assert.Equal(t, []int{0, 1, 2}, orders(res.Links))
}

func TestIsDense(t *testing.T) {
	tests := []struct {
		name   string
		orders []int
		want   bool
	}{
		{name: "empty", orders: nil, want: true},
		{name: "dense", orders: []int{2, 0, 1}, want: true},
		{name: "gap", orders: []int{0, 2}, want: false},
		{name: "duplicate", orders: []int{0, 0}, want: false},
		{name: "negative", orders: []int{-1, 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := make([]*entity.Link, 0, len(tt.orders))
			for _, o := range tt.orders {
				links = append(links, &entity.Link{ID: uuid.New(), Order: o})
			}
			if got := IsDense(links); got != tt.want {
				t.Fatalf("IsDense(%v) = %v, want %v", tt.orders, got, tt.want)
			}
		})
	}
}
