package gekko

import (
	"fmt"
	"reflect"
	"sort"
)

// FieldDescriptor exposes one field of a registered type to editor tooling.
type FieldDescriptor struct {
	Name string
	Get  func(target any) any
	Set  func(target any, value any) error
}

type TypeRegistration struct {
	Name   string
	Type   reflect.Type
	Fields []FieldDescriptor
}

func (r TypeRegistration) Field(name string) (FieldDescriptor, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// TypeRegistry is a main world resource listing introspectable types.
type TypeRegistry struct {
	types map[string]TypeRegistration
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]TypeRegistration)}
}

func (r *TypeRegistry) Register(reg TypeRegistration) error {
	if reg.Name == "" {
		return fmt.Errorf("register %v: empty name", reg.Type)
	}
	if _, ok := r.types[reg.Name]; ok {
		return fmt.Errorf("register %s: already registered", reg.Name)
	}
	r.types[reg.Name] = reg
	return nil
}

func (r *TypeRegistry) Get(name string) (TypeRegistration, bool) {
	reg, ok := r.types[name]
	return reg, ok
}

// Names returns the registered names, sorted.
func (r *TypeRegistry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ensureTypeRegistry returns the main world registry, creating it if needed.
func ensureTypeRegistry(app *App) *TypeRegistry {
	if reg, ok := Resource[TypeRegistry](app.main); ok {
		return reg
	}
	reg := NewTypeRegistry()
	app.main.AddResources(reg)
	return reg
}

// AmbientLightRegistration describes AmbientLight's color and brightness.
func AmbientLightRegistration() TypeRegistration {
	return TypeRegistration{
		Name: "AmbientLight",
		Type: reflect.TypeOf((*AmbientLight)(nil)).Elem(),
		Fields: []FieldDescriptor{
			{
				Name: "color",
				Get: func(target any) any {
					a, ok := target.(*AmbientLight)
					if !ok {
						return nil
					}
					return a.Color
				},
				Set: func(target any, value any) error {
					a, ok := target.(*AmbientLight)
					if !ok {
						return fmt.Errorf("set color: expected *AmbientLight, got %T", target)
					}
					c, ok := value.(Color)
					if !ok {
						return fmt.Errorf("set color: expected Color, got %T", value)
					}
					a.Color = c
					return nil
				},
			},
			{
				Name: "brightness",
				Get: func(target any) any {
					a, ok := target.(*AmbientLight)
					if !ok {
						return nil
					}
					return a.Brightness
				},
				Set: func(target any, value any) error {
					a, ok := target.(*AmbientLight)
					if !ok {
						return fmt.Errorf("set brightness: expected *AmbientLight, got %T", target)
					}
					switch v := value.(type) {
					case float32:
						a.Brightness = v
					case float64:
						a.Brightness = float32(v)
					default:
						return fmt.Errorf("set brightness: expected float, got %T", value)
					}
					return nil
				},
			},
		},
	}
}
