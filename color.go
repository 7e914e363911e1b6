package gekko

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Color is a linear RGBA color with float channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 1}
)

func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromRGBA converts any image/color value. Channels stay alpha-premultiplied.
func ColorFromRGBA(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
		A: float32(a) / 0xffff,
	}
}

// ColorFromName resolves an SVG color name ("white", "SkyBlue") or a
// "#rrggbb" / "#rrggbbaa" hex string.
func ColorFromName(name string) (Color, bool) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "#") {
		return colorFromHex(name[1:])
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return ColorFromRGBA(c), true
}

func colorFromHex(hex string) (Color, bool) {
	var r, g, b uint8
	a := uint8(0xff)
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, false
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, false
		}
	default:
		return Color{}, false
	}
	return Color{R: float32(r) / 0xff, G: float32(g) / 0xff, B: float32(b) / 0xff, A: float32(a) / 0xff}, true
}

func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Mul scales the RGB channels and leaves alpha untouched.
func (c Color) Mul(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// String formats the color as "#rrggbbaa", clamping each channel.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
}

func channelByte(v float32) uint8 {
	v = mgl32.Clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}
