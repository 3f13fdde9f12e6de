package shape_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthograph/shape"
	"github.com/stretchr/testify/assert"
)

func TestShape_SetGetRemove(t *testing.T) {
	s := shape.New()
	assert.False(t, s.Contains(1, 2))

	s.SetDirection(1, 2, shape.Right)
	d, ok := s.GetDirection(1, 2)
	assert.True(t, ok)
	assert.Equal(t, shape.Right, d)
	assert.True(t, s.IsRight(1, 2))
	assert.True(t, s.IsHorizontal(1, 2))
	assert.False(t, s.IsVertical(1, 2))

	assert.NoError(t, s.RemoveDirection(1, 2))
	assert.False(t, s.Contains(1, 2))

	err := s.RemoveDirection(1, 2)
	assert.True(t, errors.Is(err, shape.ErrDirectionNotSet))
}

func TestShape_NoAutoSymmetry(t *testing.T) {
	s := shape.New()
	s.SetDirection(1, 2, shape.Right)
	_, ok := s.GetDirection(2, 1)
	assert.False(t, ok, "Shape does not infer the reverse incidence")
}

func TestOppositeAndRotate90(t *testing.T) {
	assert.Equal(t, shape.Right, shape.Opposite(shape.Left))
	assert.Equal(t, shape.Down, shape.Opposite(shape.Up))
	assert.Equal(t, shape.Right, shape.Rotate90(shape.Up))
	assert.Equal(t, shape.Down, shape.Rotate90(shape.Right))
	assert.Equal(t, shape.Left, shape.Rotate90(shape.Down))
	assert.Equal(t, shape.Up, shape.Rotate90(shape.Left))
}
