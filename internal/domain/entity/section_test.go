package entity

import (
	"testing"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sections(orders ...int) []*Section {
	out := make([]*Section, 0, len(orders))
	for i, o := range orders {
		out = append(out, &Section{ID: uint64(i + 1), OrderIndex: o})
	}
	return out
}

func idsOf(ss []*Section) []uint64 {
	out := make([]uint64, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.ID)
	}
	return out
}

func indexesOf(ss []*Section) []int {
	out := make([]int, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.OrderIndex)
	}
	return out
}

func TestSortSections(t *testing.T) {
	ss := sections(2, 0, 0)

	SortSections(ss)

	assert.Equal(t, []uint64{2, 3, 1}, idsOf(ss))
}

func TestRenumber(t *testing.T) {
	ss := sections(0, 3, 7)

	changed := Renumber(ss)

	assert.Equal(t, []int{0, 1, 2}, indexesOf(ss))
	assert.Equal(t, []uint64{2, 3}, idsOf(changed))
	assert.Empty(t, Renumber(ss))
}

func TestMoveSection(t *testing.T) {
	testCases := []struct {
		name     string
		id       uint64
		dir      Direction
		expected []uint64
	}{
		{"Middle up", 2, DirectionUp, []uint64{2, 1, 3, 4}},
		{"Middle down", 2, DirectionDown, []uint64{1, 3, 2, 4}},
		{"First up is a no-op", 1, DirectionUp, []uint64{1, 2, 3, 4}},
		{"Last down is a no-op", 4, DirectionDown, []uint64{1, 2, 3, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ss := sections(0, 1, 5, 6)

			ordered, err := MoveSection(ss, tc.id, tc.dir)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, idsOf(ordered))
			assert.Equal(t, []int{0, 1, 2, 3}, indexesOf(ordered))
		})
	}

	t.Run("Unknown section", func(t *testing.T) {
		_, err := MoveSection(sections(0, 1), 9, DirectionUp)
		assert.ErrorIs(t, err, errs.ErrSectionNotFound)
	})

	t.Run("Unknown direction", func(t *testing.T) {
		_, err := MoveSection(sections(0, 1), 1, Direction("left"))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestReorderSections(t *testing.T) {
	t.Run("Full permutation", func(t *testing.T) {
		ordered, err := ReorderSections(sections(0, 1, 2), []uint64{2, 3, 1})

		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 3, 1}, idsOf(ordered))
		assert.Equal(t, []int{0, 1, 2}, indexesOf(ordered))
	})

	testCases := []struct {
		name string
		ids  []uint64
	}{
		{"Missing id", []uint64{1, 2}},
		{"Duplicate id", []uint64{1, 2, 2}},
		{"Foreign id", []uint64{1, 2, 8}},
		{"Too many ids", []uint64{1, 2, 3, 4}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ss := sections(0, 1, 2)

			_, err := ReorderSections(ss, tc.ids)

			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Equal(t, []int{0, 1, 2}, indexesOf(ss))
		})
	}
}
