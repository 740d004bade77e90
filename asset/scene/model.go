// Package scene defines the compiled, cross-referenced scene model.
package scene

import (
	"cogentcore.org/core/base/keylist"
)

// The maximum number of lights that a renderer honors.
const MaxLights = 8

// Model is a compiled scene description. Each entity category is an ordered
// map keyed by id; iteration follows document order. Ids are unique within a
// category but may be reused across categories.
type Model struct {
	RootID      string
	AxisLength  float32
	DefaultView string
	Globals     Globals

	Views      keylist.List[string, *View]
	Lights     keylist.List[string, *Light]
	Textures   keylist.List[string, *Texture]
	Materials  keylist.List[string, *Material]
	Transforms keylist.List[string, *Transform]
	Animations keylist.List[string, *Animation]
	Primitives keylist.List[string, *Primitive]
	Components keylist.List[string, *Component]
}

// Create an empty model.
func NewModel() *Model {
	return &Model{AxisLength: 1}
}

func (m *Model) View(id string) (*View, bool)           { return m.Views.AtTry(id) }
func (m *Model) Light(id string) (*Light, bool)         { return m.Lights.AtTry(id) }
func (m *Model) Texture(id string) (*Texture, bool)     { return m.Textures.AtTry(id) }
func (m *Model) Material(id string) (*Material, bool)   { return m.Materials.AtTry(id) }
func (m *Model) Transform(id string) (*Transform, bool) { return m.Transforms.AtTry(id) }
func (m *Model) Animation(id string) (*Animation, bool) { return m.Animations.AtTry(id) }
func (m *Model) Primitive(id string) (*Primitive, bool) { return m.Primitives.AtTry(id) }
func (m *Model) Component(id string) (*Component, bool) { return m.Components.AtTry(id) }

// Root returns the root component.
func (m *Model) Root() (*Component, bool) {
	return m.Component(m.RootID)
}

// ActiveLights returns the lights that a renderer honors: the first
// MaxLights in document order.
func (m *Model) ActiveLights() []*Light {
	if m.Lights.Len() <= MaxLights {
		return m.Lights.Values
	}
	return m.Lights.Values[:MaxLights]
}

// Add an entity to a category, failing with a ReferenceError if the id is
// already taken.
func add[V any](list *keylist.List[string, V], block, id string, val V) error {
	if _, exists := list.AtTry(id); exists {
		return Reference(block, id, "ID must be unique within %s", block)
	}
	return list.Add(id, val)
}

func (m *Model) AddView(v *View) error           { return add(&m.Views, "views", v.ID, v) }
func (m *Model) AddLight(l *Light) error         { return add(&m.Lights, "lights", l.ID, l) }
func (m *Model) AddTexture(t *Texture) error     { return add(&m.Textures, "textures", t.ID, t) }
func (m *Model) AddMaterial(mt *Material) error  { return add(&m.Materials, "materials", mt.ID, mt) }
func (m *Model) AddTransform(t *Transform) error { return add(&m.Transforms, "transformations", t.ID, t) }
func (m *Model) AddAnimation(a *Animation) error { return add(&m.Animations, "animations", a.ID, a) }
func (m *Model) AddPrimitive(p *Primitive) error { return add(&m.Primitives, "primitives", p.ID, p) }
func (m *Model) AddComponent(c *Component) error { return add(&m.Components, "components", c.ID, c) }
