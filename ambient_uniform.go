package gekko

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// AmbientUniformSize is the size in bytes of the packed ambient uniform.
const AmbientUniformSize = 16

// GpuAmbientLight is the sanitized ambient term ready for upload.
type GpuAmbientLight struct {
	Luminance   mgl32.Vec3
	Extractions uint64
}

// Bytes packs the luminance as a little-endian vec4 with w = 0.
func (g *GpuAmbientLight) Bytes() []byte {
	buf := make([]byte, AmbientUniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(g.Luminance[0]))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(g.Luminance[1]))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(g.Luminance[2]))
	binary.LittleEndian.PutUint32(buf[12:], 0)
	return buf
}

// AmbientUniformContainer hands the latest prepared ambient term to the GPU
// uploader, which may read it from another goroutine.
type AmbientUniformContainer struct {
	latest atomic.Pointer[GpuAmbientLight]
}

func (c *AmbientUniformContainer) Update(g *GpuAmbientLight) {
	c.latest.Store(g)
}

func (c *AmbientUniformContainer) Get() *GpuAmbientLight {
	return c.latest.Load()
}

// sanitizeBrightness maps NaN, infinities and negatives to zero.
func sanitizeBrightness(b float32) float32 {
	f := float64(b)
	if math.IsNaN(f) || math.IsInf(f, 0) || b < 0 {
		return 0
	}
	return b
}

func gpuAmbientFrom(a AmbientLight, extractions uint64) *GpuAmbientLight {
	sanitized := AmbientLight{Color: a.Color, Brightness: sanitizeBrightness(a.Brightness)}
	return &GpuAmbientLight{
		Luminance:   sanitized.Luminance(),
		Extractions: extractions,
	}
}
