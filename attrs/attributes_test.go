package attrs_test

import (
	"testing"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/stretchr/testify/assert"
)

func TestGraphAttributes_ColorDefaultsToBlack(t *testing.T) {
	a := attrs.New()
	assert.Equal(t, attrs.Black, a.GetNodeColor(42))
	assert.False(t, a.HasColor(42))

	a.SetNodeColor(42, attrs.Green)
	assert.Equal(t, attrs.Green, a.GetNodeColor(42))
	assert.True(t, a.HasColor(42))
}

func TestGraphAttributes_PositionLifecycle(t *testing.T) {
	a := attrs.New()
	assert.False(t, a.HasPosition(1))

	a.SetPosition(1, 10, 20)
	p, ok := a.GetPosition(1)
	assert.True(t, ok)
	assert.Equal(t, attrs.Position{X: 10, Y: 20}, p)

	a.ChangePositionX(1, 100)
	assert.Equal(t, 100, a.GetPositionX(1))
	assert.Equal(t, 20, a.GetPositionY(1))

	a.RemovePosition(1)
	assert.False(t, a.HasPosition(1))
}

func TestColor_DarkVariant(t *testing.T) {
	assert.Equal(t, attrs.GreenDark, attrs.Green.Dark())
	assert.Equal(t, attrs.BlueDark, attrs.Blue.Dark())
	assert.Equal(t, attrs.Black, attrs.Black.Dark())
	assert.True(t, attrs.GreenDark.IsGreen())
	assert.True(t, attrs.BlueDark.IsBlue())
}
