package gekko

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAmbientBrightness is the brightness of the default ambient light.
const DefaultAmbientBrightness float32 = 80.0

// AmbientLight lights every surface of the scene equally.
//
// PbrModule inserts one into the main world and one into the render world.
// The render copy is only ever written by extraction.
//
// Make ambient light slightly brighter:
//
//	func brighten(ambient *gekko.AmbientLight) {
//		ambient.Brightness = 100.0
//	}
type AmbientLight struct {
	Color Color
	// Brightness is multiplied with Color before it is handed to the shader.
	// The product is in candela per square metre. It is not validated here.
	Brightness float32
}

// AmbientLightNone returns an ambient light that is fully disabled.
func AmbientLightNone() AmbientLight {
	return AmbientLight{
		Color:      ColorWhite,
		Brightness: 0.0,
	}
}

// NewAmbientLight returns the default ambient light.
func NewAmbientLight() AmbientLight {
	return AmbientLight{
		Color:      ColorWhite,
		Brightness: DefaultAmbientBrightness,
	}
}

func (a AmbientLight) Clone() AmbientLight {
	return a
}

func (a AmbientLight) Equal(other AmbientLight) bool {
	return a.Color == other.Color && a.Brightness == other.Brightness
}

// Luminance returns color times brightness, unclamped.
func (a AmbientLight) Luminance() mgl32.Vec3 {
	return a.Color.Vec3().Mul(a.Brightness)
}
