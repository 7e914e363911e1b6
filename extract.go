package gekko

import (
	"reflect"
)

// Cloner is implemented by resources that can be extracted to the render world.
type Cloner[T any] interface {
	Clone() T
}

type extractor struct {
	name string
	run  func(main, render *World)
}

// ExtractionStats counts extraction copies per resource type. It lives in
// the render world.
type ExtractionStats struct {
	Copies map[string]uint64
}

func (s *ExtractionStats) Count(name string) uint64 {
	return s.Copies[name]
}

func ensureExtractionStats(render *World) *ExtractionStats {
	if stats, ok := Resource[ExtractionStats](render); ok {
		return stats
	}
	stats := &ExtractionStats{Copies: make(map[string]uint64)}
	render.AddResources(stats)
	return stats
}

// ExtractResourceModule copies the main world's T into the render world once
// per frame, before any render stage runs.
type ExtractResourceModule[T Cloner[T]] struct{}

// ExtractResource returns the module extracting T.
func ExtractResource[T Cloner[T]]() ExtractResourceModule[T] {
	return ExtractResourceModule[T]{}
}

func (ExtractResourceModule[T]) Install(app *App, cmd *Commands) {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	for _, e := range app.extractors {
		if e.name == name {
			return
		}
	}

	ensureExtractionStats(app.render)

	app.extractors = append(app.extractors, extractor{
		name: name,
		run: func(main, render *World) {
			if extractResource[T](main, render) {
				ensureExtractionStats(render).Copies[name]++
				app.Logger().Debugf("Extracted %s into %s world %s (frame %d)", name, render.Name(), render.Id(), app.frame)
			}
		},
	})
	app.Logger().Infof("Registered extraction for %s", name)
}

// extractResource overwrites render's T with a clone of main's T. It reports
// false and leaves render untouched when main has no T.
func extractResource[T Cloner[T]](main, render *World) bool {
	src, ok := Resource[T](main)
	if !ok {
		return false
	}

	if dst, ok := Resource[T](render); ok {
		*dst = (*src).Clone()
	} else {
		v := (*src).Clone()
		render.InsertResource(&v)
	}
	return true
}

// ExtractAmbientLight is the per-frame ambient light sync.
func ExtractAmbientLight(main, render *World) bool {
	return extractResource[AmbientLight](main, render)
}
