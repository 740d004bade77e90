// Package graph links a compiled scene model into a traversable scene graph.
package graph

import (
	"fmt"
	"strings"
	"time"

	"cogentcore.org/core/base/keylist"
	"github.com/achilleasa/lxs/animation"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/log"
	"github.com/achilleasa/lxs/renderer"
)

// Child is a resolved component child. Exactly one of Node and Primitive is
// set.
type Child struct {
	Node      *Node
	Primitive *scene.Primitive
}

// Node is a linked component.
type Node struct {
	component *scene.Component

	materials      []*scene.Material
	activeMaterial int

	// Resolved texture for components with a named texture reference.
	texture *renderer.BoundTexture

	// Runtime state of the bound animation; nil if the component is not
	// animated.
	animation *animation.Instance

	children []Child
}

func (n *Node) ID() string {
	return n.component.ID
}

// Get the component definition this node was linked from.
func (n *Node) Component() *scene.Component {
	return n.component
}

func (n *Node) Children() []Child {
	return n.children
}

func (n *Node) Animation() *animation.Instance {
	return n.animation
}

// Get the material at the current position of the material stack.
func (n *Node) ActiveMaterial() *scene.Material {
	return n.materials[n.activeMaterial]
}

func (n *Node) ActiveMaterialIndex() int {
	return n.activeMaterial
}

// Select the active material by its position in the material stack.
func (n *Node) SetActiveMaterial(index int) error {
	if index < 0 || index >= len(n.materials) {
		return fmt.Errorf("graph: material index %d out of range [0, %d) for component %q", index, len(n.materials), n.ID())
	}
	n.activeMaterial = index
	return nil
}

// Advance the active material to the next entry of the material stack,
// wrapping around at the end.
func (n *Node) NextMaterial() {
	n.activeMaterial = (n.activeMaterial + 1) % len(n.materials)
}

// Graph is a linked scene. Once linked, only the active material indices
// and the animation state of its nodes change.
type Graph struct {
	model *scene.Model
	root  *Node
	nodes keylist.List[string, *Node]
}

func (g *Graph) Model() *scene.Model {
	return g.model
}

func (g *Graph) Root() *Node {
	return g.root
}

// Lookup a node by component id.
func (g *Graph) Node(id string) (*Node, bool) {
	return g.nodes.AtTry(id)
}

// Get all nodes in document order.
func (g *Graph) Nodes() []*Node {
	return g.nodes.Values
}

// Advance every animation instance by dt seconds.
func (g *Graph) Update(dt float64) {
	for _, n := range g.nodes.Values {
		if n.animation != nil {
			n.animation.Update(dt)
		}
	}
}

// Advance the active material of every node.
func (g *Graph) NextMaterial() {
	for _, n := range g.nodes.Values {
		n.NextMaterial()
	}
}

// Traverse the graph from the root issuing transformations and draw calls
// to adapter. Components that inherit their texture receive the nearest
// ancestor's texture; the root inherits no texture.
func (g *Graph) Display(adapter renderer.Adapter) {
	g.display(g.root, adapter, nil)
}

func (g *Graph) display(n *Node, adapter renderer.Adapter, inherited *renderer.BoundTexture) {
	adapter.PushMatrix()
	adapter.MultMatrix(n.component.Matrix)
	if n.animation != nil {
		n.animation.Apply(adapter)
	}

	var tex *renderer.BoundTexture
	switch n.component.Texture.Mode {
	case scene.TextureInherit:
		tex = inherited
	case scene.TextureNamed:
		tex = n.texture
	}

	mat := n.ActiveMaterial()
	for _, child := range n.children {
		if child.Primitive != nil {
			adapter.Draw(child.Primitive, mat, tex)
			continue
		}
		g.display(child.Node, adapter, tex)
	}

	adapter.PopMatrix()
}

// Link a compiled model into a scene graph. Every component gets its own
// node and its own animation instance. References are re-validated so that
// models not produced by the compiler fail in the same way; cyclic component
// hierarchies are rejected.
func Link(model *scene.Model) (*Graph, error) {
	logger := log.New("scene graph")
	start := time.Now()

	g := &Graph{model: model}

	// Pass 1: materialize nodes
	for _, comp := range model.Components.Values {
		n, err := newNode(model, comp)
		if err != nil {
			return nil, err
		}
		if err = g.nodes.Add(comp.ID, n); err != nil {
			return nil, scene.Reference("components", comp.ID, "ID must be unique within components")
		}
	}

	// Pass 2: resolve children
	for _, n := range g.nodes.Values {
		n.children = make([]Child, 0, len(n.component.Children))
		for _, ref := range n.component.Children {
			switch ref.Kind {
			case scene.ChildComponent:
				childNode, exists := g.nodes.AtTry(ref.ID)
				if !exists {
					return nil, scene.Reference("components", n.ID(), "undefined child component %q", ref.ID)
				}
				n.children = append(n.children, Child{Node: childNode})
			case scene.ChildPrimitive:
				prim, exists := model.Primitive(ref.ID)
				if !exists {
					return nil, scene.Reference("components", n.ID(), "undefined child primitive %q", ref.ID)
				}
				n.children = append(n.children, Child{Primitive: prim})
			}
		}
	}

	if err := g.checkCycles(); err != nil {
		return nil, err
	}

	var exists bool
	if g.root, exists = g.nodes.AtTry(model.RootID); !exists {
		return nil, scene.Reference("scene", "", "root component %q is not defined", model.RootID)
	}

	reachable := g.reachable()
	for _, n := range g.nodes.Values {
		if !reachable[n] {
			logger.Noticef("component %q is not reachable from root %q", n.ID(), model.RootID)
		}
	}

	logger.Noticef("linked %d components in %d ms", g.nodes.Len(), time.Since(start).Nanoseconds()/1e6)
	return g, nil
}

func newNode(model *scene.Model, comp *scene.Component) (*Node, error) {
	n := &Node{component: comp}

	if len(comp.Materials) == 0 {
		return nil, scene.Value("components", comp.ID, "materials", "at least one material must be defined")
	}
	for _, matID := range comp.Materials {
		mat, exists := model.Material(matID)
		if !exists {
			return nil, scene.Reference("components", comp.ID, "undefined material %q", matID)
		}
		n.materials = append(n.materials, mat)
	}

	if comp.Texture.Mode == scene.TextureNamed {
		tex, exists := model.Texture(comp.Texture.ID)
		if !exists {
			return nil, scene.Reference("components", comp.ID, "undefined texture %q", comp.Texture.ID)
		}
		n.texture = &renderer.BoundTexture{Texture: tex, LengthS: comp.Texture.LengthS, LengthT: comp.Texture.LengthT}
	}

	if comp.Animation != "" {
		anim, exists := model.Animation(comp.Animation)
		if !exists {
			return nil, scene.Reference("components", comp.ID, "undefined animation %q", comp.Animation)
		}
		n.animation = animation.New(anim)
	}

	return n, nil
}

// Detect cycles using a depth-first search over component children.
func (g *Graph) checkCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[*Node]int, g.nodes.Len())
	var path []string

	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch state[n] {
		case visiting:
			return scene.Reference("components", n.ID(), "cyclic component hierarchy: %s -> %s", strings.Join(path, " -> "), n.ID())
		case done:
			return nil
		}

		state[n] = visiting
		path = append(path, n.ID())
		for _, child := range n.children {
			if child.Node == nil {
				continue
			}
			if err := visit(child.Node); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[n] = done
		return nil
	}

	for _, n := range g.nodes.Values {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) reachable() map[*Node]bool {
	seen := make(map[*Node]bool)

	var visit func(n *Node)
	visit = func(n *Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, child := range n.children {
			if child.Node != nil {
				visit(child.Node)
			}
		}
	}

	visit(g.root)
	return seen
}
