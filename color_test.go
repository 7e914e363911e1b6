package gekko

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_FromName(t *testing.T) {
	white, ok := ColorFromName("White")
	require.True(t, ok)
	assert.Equal(t, ColorWhite, white)

	black, ok := ColorFromName(" black ")
	require.True(t, ok)
	assert.Equal(t, ColorBlack, black)

	_, ok = ColorFromName("not-a-color")
	assert.False(t, ok)
}

func TestColor_FromHex(t *testing.T) {
	c, ok := ColorFromName("#ff0000")
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 0, 0, 1), c)

	c, ok = ColorFromName("#00ff0000")
	require.True(t, ok)
	assert.Equal(t, NewColor(0, 1, 0, 0), c)

	_, ok = ColorFromName("#abc")
	assert.False(t, ok)
	_, ok = ColorFromName("#zzzzzz")
	assert.False(t, ok)
}

func TestColor_FromRGBA(t *testing.T) {
	assert.Equal(t, ColorWhite, ColorFromRGBA(color.White))
	assert.Equal(t, NewColor(0, 0, 0, 0), ColorFromRGBA(color.Transparent))
}

func TestColor_Mul(t *testing.T) {
	c := NewColor(0.5, 0.25, 1, 0.5).Mul(2)
	assert.Equal(t, NewColor(1, 0.5, 2, 0.5), c)
}

func TestColor_Vectors(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3, 0.4)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, c.Vec3())
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 0.4}, c.Vec4())
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "#ffffffff", ColorWhite.String())
	assert.Equal(t, "#000000ff", ColorBlack.String())
	assert.Equal(t, "#ff0000ff", NewColor(3, -1, 0, 1).String())

	back, ok := ColorFromName(ColorWhite.String())
	require.True(t, ok)
	assert.Equal(t, ColorWhite, back)
}
