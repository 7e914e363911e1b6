package gekko

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// World holds the resources of one stage of the frame pipeline.
// The main world and the render world never share resource pointers.
type World struct {
	id        uuid.UUID
	name      string
	resources map[reflect.Type]any
}

func NewWorld(name string) *World {
	return &World{
		id:        uuid.New(),
		name:      name,
		resources: make(map[reflect.Type]any),
	}
}

func (w *World) Id() uuid.UUID {
	return w.id
}

func (w *World) Name() string {
	return w.name
}

// AddResources inserts pointer resources. Adding a type twice panics.
func (w *World) AddResources(resources ...any) *World {
	for _, resource := range resources {
		resourceType := resourcePointerType(resource)
		if _, ok := w.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		w.resources[resourceType.Elem()] = resource
	}
	return w
}

// InsertResource inserts or replaces a pointer resource.
func (w *World) InsertResource(resource any) {
	w.resources[resourcePointerType(resource).Elem()] = resource
}

func (w *World) resource(t reflect.Type) (any, bool) {
	r, ok := w.resources[t]
	return r, ok
}

func (w *World) removeResource(t reflect.Type) {
	delete(w.resources, t)
}

func resourcePointerType(resource any) reflect.Type {
	resourceType := reflect.TypeOf(resource)
	if resourceType == nil || resourceType.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("expected resource to be a pointer, got %v", resourceType))
	}
	return resourceType
}

// Resource returns the world's T resource.
func Resource[T any](w *World) (*T, bool) {
	r, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

func HasResource[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

func RemoveResource[T any](w *World) {
	w.removeResource(reflect.TypeOf((*T)(nil)).Elem())
}
