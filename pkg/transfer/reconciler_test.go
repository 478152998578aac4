package transfer

import (
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pluqqy/shuttle/pkg/models"
)

// store plays the owning application: it adopts every emitted selection
// and feeds it back through SetProps.
type store struct {
	r         *Reconciler[person, int]
	available []person
	selected  []person
	calls     [][]person
}

func newStore(available, selected []person) *store {
	s := &store{available: available, selected: selected}
	s.r = New(personID)
	s.render()
	return s
}

func (s *store) render() {
	s.r.SetProps(Props[person]{
		Available: s.available,
		Selected:  s.selected,
		Columns:   nameColumns,
		OnChange: func(next []person) {
			s.calls = append(s.calls, next)
			s.selected = next
			s.render()
		},
	})
}

func TestReconcilerScenarioSearch(t *testing.T) {
	s := newStore([]person{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil)
	s.r.SetSearch("al")

	require.Equal(t, []int{1}, ids(s.r.Visible()))

	s.r.TransferToRight(s.r.Visible()[0])
	assert.Equal(t, []int{1}, ids(s.selected))
	assert.Equal(t, "al", s.r.Search(), "search is not cleared by a transfer")
	assert.Empty(t, s.r.Visible())
}

func TestReconcilerScenarioAllAndClear(t *testing.T) {
	s := newStore(makePeople("A", "B", "C"), nil)

	s.r.TransferAllVisibleToRight()
	assert.Equal(t, []int{1, 2, 3}, ids(s.selected))

	s.r.TransferAllToLeft()
	assert.Empty(t, s.selected)
	assert.Len(t, s.calls, 2)
}

func TestReconcilerNotifiesOncePerCall(t *testing.T) {
	s := newStore(makePeople("Alice", "Bob"), nil)
	alice := s.available[0]

	s.r.TransferToRight(alice)
	s.r.TransferToRight(alice)
	s.r.TransferToLeft(person{ID: 9})
	s.r.TransferToLeft(alice)
	s.r.TransferAllToLeft()

	require.Len(t, s.calls, 5)
	assert.Equal(t, []int{1}, ids(s.calls[0]))
	assert.Equal(t, []int{1}, ids(s.calls[1]), "duplicate add emits the unchanged selection")
	assert.Equal(t, []int{1}, ids(s.calls[2]))
	assert.Empty(t, s.calls[3])
	assert.Empty(t, s.calls[4])
}

func TestReconcilerTransferAllUsesLiveSearch(t *testing.T) {
	s := newStore(makePeople("Alice", "Bob", "Alan"), nil)

	s.r.SetSearch("al")
	s.r.TransferAllVisibleToRight()
	assert.Equal(t, []int{1, 3}, ids(s.selected))

	s.r.SetSearch("")
	s.r.TransferAllVisibleToRight()
	assert.Equal(t, []int{1, 3, 2}, ids(s.selected))
}

func TestReconcilerDoesNotAdoptEmittedSelection(t *testing.T) {
	r := New(personID)
	var emitted []person
	r.SetProps(Props[person]{
		Available: makePeople("Alice"),
		Columns:   nameColumns,
		OnChange:  func(next []person) { emitted = next },
	})

	r.TransferToRight(person{ID: 1, Name: "Alice"})
	assert.Len(t, emitted, 1)
	assert.Empty(t, r.Selected())
}

func TestReconcilerWithoutOnChange(t *testing.T) {
	r := New(personID)
	r.SetProps(Props[person]{Available: makePeople("Alice")})

	got := r.TransferToRight(person{ID: 1})
	assert.Len(t, got, 1)
}

func TestReconcilerMemo(t *testing.T) {
	available := makePeople("Alice", "Bob", "Carol")
	r := New(personID)
	props := Props[person]{Available: available, Columns: nameColumns}
	r.SetProps(props)

	first := r.Visible()
	r.Visible()
	assert.Equal(t, 1, r.memo.misses)
	assert.Equal(t, 1, r.memo.hits)
	assert.Len(t, first, 3)

	t.Run("query change recomputes", func(t *testing.T) {
		r.SetSearch("bo")
		assert.Equal(t, []int{2}, ids(r.Visible()))
	})

	t.Run("new selected slice recomputes", func(t *testing.T) {
		r.SetSearch("")
		props.Selected = []person{available[0]}
		r.SetProps(props)
		assert.Equal(t, []int{2, 3}, ids(r.Visible()))
	})

	t.Run("new available slice recomputes", func(t *testing.T) {
		props.Available = append(slices.Clip(available), person{ID: 4, Name: "Dan"})
		r.SetProps(props)
		assert.Equal(t, []int{2, 3, 4}, ids(r.Visible()))
	})

	t.Run("equal columns in a new slice still hit", func(t *testing.T) {
		r.Visible()
		hits := r.memo.hits
		props.Columns = slices.Clone(nameColumns)
		r.SetProps(props)
		r.Visible()
		assert.Equal(t, hits+1, r.memo.hits)
	})

	t.Run("column change recomputes", func(t *testing.T) {
		r.SetSearch("x")
		props.Columns = []models.Column{{Accessor: "Team"}}
		r.SetProps(props)
		assert.Empty(t, r.Visible())
	})

	t.Run("identity change recomputes", func(t *testing.T) {
		r.SetSearch("")
		props.Columns = nameColumns
		r.SetProps(props)
		require.Equal(t, []int{2, 3, 4}, ids(r.Visible()))

		// every item collides with the selected key under the new identity
		r.SetIdentity(func(person) int { return 0 })
		assert.Empty(t, r.Visible())
	})

	t.Run("reader change recomputes", func(t *testing.T) {
		r.SetIdentity(personID)
		r.SetSearch("zz")
		require.Empty(t, r.Visible())

		r.SetReader(func(person, string) string { return "zz" })
		assert.Equal(t, []int{2, 3, 4}, ids(r.Visible()))
	})

	t.Run("invalidate recomputes", func(t *testing.T) {
		misses := r.memo.misses
		r.Invalidate()
		r.Visible()
		assert.Equal(t, misses+1, r.memo.misses)
	})
}

func TestReconcilerMemoSurvivesGC(t *testing.T) {
	available := makePeople("Alice", "Bob", "Carol")
	r := New(personID)

	for i := 0; i < 500; i++ {
		r.SetProps(Props[person]{Available: available, Selected: []person{available[0]}, Columns: nameColumns})
		r.Visible()

		r.SetProps(Props[person]{Available: available, Columns: nameColumns})
		runtime.GC()
		runtime.GC()

		selected := TransferToRight(nil, available[1], personID)
		r.SetProps(Props[person]{Available: available, Selected: selected, Columns: nameColumns})

		want := VisibleAvailable(available, selected, "", nameColumns, personID, nil)
		require.Equal(t, ids(want), ids(r.Visible()), "iteration %d", i)
	}
}

func TestReconcilerMemoRetainsInputs(t *testing.T) {
	available := makePeople("Alice", "Bob")
	selected := []person{available[0]}
	r := New(personID)
	r.SetProps(Props[person]{Available: available, Selected: selected})
	r.Visible()

	assert.True(t, sameSlice(available, r.memo.available))
	assert.True(t, sameSlice(selected, r.memo.selected))

	r.Invalidate()
	assert.Nil(t, r.memo.available)
	assert.Nil(t, r.memo.selected)
}

func TestSameSlice(t *testing.T) {
	people := makePeople("Alice", "Bob", "Carol")

	assert.True(t, sameSlice[person](nil, nil))
	assert.True(t, sameSlice(people, people))
	assert.True(t, sameSlice(people[:2], people[:2]))
	assert.False(t, sameSlice(people[:2], people[:3]))
	assert.False(t, sameSlice(people[1:], people[:2]))
	assert.False(t, sameSlice(people, slices.Clone(people)))
	assert.False(t, sameSlice(nil, []person{}))
}

func TestReconcilerTitlesAndActions(t *testing.T) {
	r := New(personID)
	alice := person{ID: 1, Name: "Alice"}

	assert.Equal(t, DefaultLeftTitle, r.LeftTitle())
	assert.Equal(t, DefaultRightTitle, r.RightTitle())
	assert.Equal(t, ActionRightGlyph, r.Action(alice, models.SideLeft))
	assert.Equal(t, ActionLeftGlyph, r.Action(alice, models.SideRight))
	assert.Equal(t, "Alice", r.Cell(alice, nameColumns[0]))

	r.SetProps(Props[person]{
		LeftTitle:  "Pool",
		RightTitle: "Team",
		RenderAction: func(p person, side models.Side) string {
			return string(side) + ":" + p.Name
		},
	})
	assert.Equal(t, "Pool", r.LeftTitle())
	assert.Equal(t, "Team", r.RightTitle())
	assert.Equal(t, "right:Alice", r.Action(alice, models.SideRight))
}

func TestReconcilerLogsTransfers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := New(personID, WithLogger[person, int](zap.New(core)))
	r.SetProps(Props[person]{Available: makePeople("Alice")})

	r.TransferToRight(person{ID: 1})

	entries := logs.FilterMessage("selection changed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "transfer_right", fields["op"])
	assert.Equal(t, int64(1), fields["after"])
}

func TestWithReaderOption(t *testing.T) {
	r := New(personID, WithReader[person, int](func(p person, _ string) string { return "fixed" }))
	r.SetProps(Props[person]{Available: makePeople("Alice"), Columns: nameColumns})
	r.SetSearch("fix")
	assert.Len(t, r.Visible(), 1)
}
