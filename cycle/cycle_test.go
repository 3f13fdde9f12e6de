package cycle_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthograph/cycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle_NextPrevWrap(t *testing.T) {
	c := cycle.New([]int{10, 20, 30, 40})

	next, err := c.NextOf(40)
	require.NoError(t, err)
	assert.Equal(t, 10, next, "next wraps around from the last node to the first")

	prev, err := c.PrevOf(10)
	require.NoError(t, err)
	assert.Equal(t, 40, prev, "prev wraps around from the first node to the last")

	_, err = c.NextOf(99)
	assert.True(t, errors.Is(err, cycle.ErrNodeNotInCycle))
}

func TestCycle_InsertAndRemove(t *testing.T) {
	c := cycle.New([]int{1, 2, 3})
	c.Insert(1, 99)
	assert.Equal(t, []int{1, 99, 2, 3}, c.Nodes())

	c.RemoveIfExists(99)
	assert.Equal(t, []int{1, 2, 3}, c.Nodes())

	c.RemoveIfExists(1000) // no-op, 1000 absent
	assert.Equal(t, 3, c.Len())
}

func TestCycle_AddBetween(t *testing.T) {
	c := cycle.New([]int{1, 2, 3})

	// 2 and 3 are adjacent; inserting between them should land at position 2.
	c.AddBetween(2, 3, 77)
	assert.Equal(t, []int{1, 2, 77, 3}, c.Nodes())

	// 1 and 77 are not adjacent (2 sits between them), so this is a no-op.
	c.AddBetween(1, 77, 88)
	assert.False(t, c.HasNode(88))

	// newID already present is a no-op.
	c.AddBetween(1, 2, 77)
	assert.Equal(t, 4, c.Len())
}

func TestEquivalent_RotationAndReflection(t *testing.T) {
	base := cycle.New([]int{1, 2, 3, 4})
	rotated := cycle.New([]int{3, 4, 1, 2})
	reflected := cycle.New([]int{1, 4, 3, 2})
	different := cycle.New([]int{1, 2, 4, 3})

	assert.True(t, cycle.Equivalent(base, rotated))
	assert.True(t, cycle.Equivalent(base, reflected))
	assert.False(t, cycle.Equivalent(base, different))
}

func TestCycle_AtIsModular(t *testing.T) {
	c := cycle.New([]int{5, 6, 7})
	assert.Equal(t, 5, c.At(3))
	assert.Equal(t, 7, c.At(-1))
}
