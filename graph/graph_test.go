package graph

import (
	"fmt"
	"strings"
	"testing"

	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/renderer"
	"github.com/achilleasa/lxs/types"
)

func testModel(t *testing.T, components ...*scene.Component) *scene.Model {
	t.Helper()

	m := scene.NewModel()
	m.RootID = components[0].ID
	for _, mat := range []string{"red", "green", "blue"} {
		if err := m.AddMaterial(&scene.Material{ID: mat, Shininess: 10}); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.AddTexture(&scene.Texture{ID: "wood", File: "wood.png"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddPrimitive(&scene.Primitive{ID: "quad", Geometry: scene.Rectangle{X1: 0, Y1: 0, X2: 1, Y2: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddAnimation(&scene.Animation{
		ID: "lift",
		Keyframes: []scene.Keyframe{
			{Instant: 0, Translate: types.XYZ(0, 5, 0), Scale: types.XYZ(1, 1, 1)},
		},
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddAnimation(&scene.Animation{
		ID: "slide",
		Keyframes: []scene.Keyframe{
			{Instant: 2, Translate: types.XYZ(4, 0, 0), Scale: types.XYZ(1, 1, 1)},
		},
	}); err != nil {
		t.Fatal(err)
	}

	for _, comp := range components {
		if comp.Matrix == (types.Mat4{}) {
			comp.Matrix = types.Ident4()
		}
		if len(comp.Materials) == 0 {
			comp.Materials = []string{"red"}
		}
		if err := m.AddComponent(comp); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func comps(ids ...string) []scene.ChildRef {
	refs := make([]scene.ChildRef, len(ids))
	for index, id := range ids {
		refs[index] = scene.ChildRef{Kind: scene.ChildComponent, ID: id}
	}
	return refs
}

var quad = scene.ChildRef{Kind: scene.ChildPrimitive, ID: "quad"}

// An adapter that records the sequence of calls it receives.
type callRecorder struct {
	*renderer.MatrixStack
	calls []string
}

func (r *callRecorder) PushMatrix() {
	r.calls = append(r.calls, "push")
	r.MatrixStack.PushMatrix()
}

func (r *callRecorder) PopMatrix() {
	r.calls = append(r.calls, "pop")
	r.MatrixStack.PopMatrix()
}

func (r *callRecorder) MultMatrix(m types.Mat4) {
	r.calls = append(r.calls, "mult")
	r.MatrixStack.MultMatrix(m)
}

func (r *callRecorder) Translate(v types.Vec3) {
	r.calls = append(r.calls, fmt.Sprintf("translate %v", v))
	r.MatrixStack.Translate(v)
}

func (r *callRecorder) Rotate(rad float32, axis types.Vec3) {
	r.calls = append(r.calls, fmt.Sprintf("rotate %v", axis))
	r.MatrixStack.Rotate(rad, axis)
}

func (r *callRecorder) Scale(v types.Vec3) {
	r.calls = append(r.calls, fmt.Sprintf("scale %v", v))
	r.MatrixStack.Scale(v)
}

func (r *callRecorder) Draw(prim *scene.Primitive, mat *scene.Material, tex *renderer.BoundTexture) {
	r.calls = append(r.calls, "draw "+prim.ID)
	r.MatrixStack.Draw(prim, mat, tex)
}

func TestDisplayOrder(t *testing.T) {
	m := testModel(t,
		&scene.Component{ID: "root", Matrix: types.Translate4(types.XYZ(1, 0, 0)), Children: comps("arm")},
		&scene.Component{ID: "arm", Matrix: types.Scale4(types.XYZ(2, 2, 2)), Animation: "lift", Children: []scene.ChildRef{quad}},
	)

	g, err := Link(m)
	if err != nil {
		t.Fatal(err)
	}

	rec := &callRecorder{MatrixStack: renderer.NewMatrixStack()}
	g.Display(rec)
	if err = rec.Err(); err != nil {
		t.Fatal(err)
	}

	expCalls := []string{
		"push", "mult",
		"push", "mult",
		"translate (0, 5, 0)",
		"rotate (1, 0, 0)",
		"rotate (0, 1, 0)",
		"rotate (0, 0, 1)",
		"scale (1, 1, 1)",
		"draw quad",
		"pop",
		"pop",
	}
	if got, exp := strings.Join(rec.calls, "; "), strings.Join(expCalls, "; "); got != exp {
		t.Fatalf("expected call sequence:\n%s\ngot:\n%s", exp, got)
	}

	// root translation * arm scale * animation translation
	world := rec.Calls()[0].World
	if got, exp := world.TransformPoint(types.XYZ(1, 0, 0)), types.XYZ(3, 10, 0); !got.ApproxEqual(exp, 1e-5) {
		t.Fatalf("expected world position %v; got %v", exp, got)
	}
}

func TestSharedSubgraph(t *testing.T) {
	m := testModel(t,
		&scene.Component{ID: "root", Children: comps("left", "right")},
		&scene.Component{ID: "left", Matrix: types.Translate4(types.XYZ(-1, 0, 0)), Children: comps("leaf")},
		&scene.Component{ID: "right", Matrix: types.Translate4(types.XYZ(1, 0, 0)), Children: comps("leaf")},
		&scene.Component{ID: "leaf", Children: []scene.ChildRef{quad}},
	)

	g, err := Link(m)
	if err != nil {
		t.Fatal(err)
	}

	ms := renderer.NewMatrixStack()
	g.Display(ms)

	calls := ms.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected shared leaf to be drawn twice; got %d draw calls", len(calls))
	}
	for index, expX := range []float32{-1, 1} {
		if got := calls[index].World.TransformPoint(types.XYZ(0, 0, 0)); got[0] != expX {
			t.Fatalf("[call %d] expected x = %g; got %v", index, expX, got)
		}
	}
}

func TestTextureInheritance(t *testing.T) {
	m := testModel(t,
		&scene.Component{ID: "root", Texture: scene.TextureRef{Mode: scene.TextureInherit}, Children: []scene.ChildRef{quad, {Kind: scene.ChildComponent, ID: "wooden"}, {Kind: scene.ChildComponent, ID: "bare"}}},
		&scene.Component{ID: "wooden", Texture: scene.TextureRef{Mode: scene.TextureNamed, ID: "wood", LengthS: 2, LengthT: 3}, Children: []scene.ChildRef{quad, {Kind: scene.ChildComponent, ID: "inheritor"}}},
		&scene.Component{ID: "inheritor", Texture: scene.TextureRef{Mode: scene.TextureInherit}, Children: []scene.ChildRef{quad}},
		&scene.Component{ID: "bare", Texture: scene.TextureRef{Mode: scene.TextureNone}, Children: []scene.ChildRef{quad}},
	)

	g, err := Link(m)
	if err != nil {
		t.Fatal(err)
	}

	ms := renderer.NewMatrixStack()
	g.Display(ms)

	calls := ms.Calls()
	if len(calls) != 4 {
		t.Fatalf("expected 4 draw calls; got %d", len(calls))
	}

	expTextures := []string{"", "wood", "wood", ""}
	for index, exp := range expTextures {
		tex := calls[index].Texture
		switch {
		case exp == "" && tex != nil:
			t.Fatalf("[call %d] expected no texture; got %q", index, tex.Texture.ID)
		case exp != "" && (tex == nil || tex.Texture.ID != exp):
			t.Fatalf("[call %d] expected texture %q; got %v", index, exp, tex)
		}
	}

	if tex := calls[2].Texture; tex.LengthS != 2 || tex.LengthT != 3 {
		t.Fatalf("expected inherited texture lengths (2, 3); got (%g, %g)", tex.LengthS, tex.LengthT)
	}
}

func TestLinkErrors(t *testing.T) {
	type spec struct {
		components []*scene.Component
		rootID     string
		expErr     string
	}

	specs := []spec{
		{
			[]*scene.Component{
				{ID: "a", Children: comps("b")},
				{ID: "b", Children: comps("c")},
				{ID: "c", Children: comps("a")},
			},
			"",
			`reference error: components "a": cyclic component hierarchy: a -> b -> c -> a`,
		},
		{
			[]*scene.Component{{ID: "self", Children: comps("self")}},
			"",
			`reference error: components "self": cyclic component hierarchy: self -> self`,
		},
		{
			[]*scene.Component{{ID: "a", Children: comps("ghost")}},
			"",
			`reference error: components "a": undefined child component "ghost"`,
		},
		{
			[]*scene.Component{{ID: "a", Children: []scene.ChildRef{{Kind: scene.ChildPrimitive, ID: "ghost"}}}},
			"",
			`reference error: components "a": undefined child primitive "ghost"`,
		},
		{
			[]*scene.Component{{ID: "a", Materials: []string{"gold"}}},
			"",
			`reference error: components "a": undefined material "gold"`,
		},
		{
			[]*scene.Component{{ID: "a", Texture: scene.TextureRef{Mode: scene.TextureNamed, ID: "marble"}}},
			"",
			`reference error: components "a": undefined texture "marble"`,
		},
		{
			[]*scene.Component{{ID: "a", Animation: "spin"}},
			"",
			`reference error: components "a": undefined animation "spin"`,
		},
		{
			[]*scene.Component{{ID: "a"}},
			"missing",
			`reference error: scene: root component "missing" is not defined`,
		},
	}

	for index, s := range specs {
		m := testModel(t, s.components...)
		if s.rootID != "" {
			m.RootID = s.rootID
		}

		_, err := Link(m)
		if err == nil {
			t.Fatalf("[spec %d] expected Link to fail", index)
		}
		if !scene.IsReference(err) {
			t.Fatalf("[spec %d] expected a reference error; got %v", index, err)
		}
		if err.Error() != s.expErr {
			t.Fatalf("[spec %d] expected error %q; got %q", index, s.expErr, err.Error())
		}
	}
}

func TestMaterialCycling(t *testing.T) {
	m := testModel(t,
		&scene.Component{ID: "root", Materials: []string{"red", "green", "blue"}, Children: comps("child")},
		&scene.Component{ID: "child", Materials: []string{"green"}, Children: []scene.ChildRef{quad}},
	)

	g, err := Link(m)
	if err != nil {
		t.Fatal(err)
	}

	root := g.Root()
	child, _ := g.Node("child")

	expRoot := []string{"red", "green", "blue", "red"}
	for index, exp := range expRoot {
		if got := root.ActiveMaterial().ID; got != exp {
			t.Fatalf("[step %d] expected root material %q; got %q", index, exp, got)
		}
		if got := child.ActiveMaterial().ID; got != "green" {
			t.Fatalf("[step %d] expected child material %q; got %q", index, "green", got)
		}
		g.NextMaterial()
	}

	// Materials are not inherited by child components
	ms := renderer.NewMatrixStack()
	g.Display(ms)
	if got := ms.Calls()[0].Material.ID; got != "green" {
		t.Fatalf("expected child primitive to use its own material; got %q", got)
	}

	if err = root.SetActiveMaterial(2); err != nil {
		t.Fatal(err)
	}
	if root.ActiveMaterialIndex() != 2 {
		t.Fatalf("expected active material index 2; got %d", root.ActiveMaterialIndex())
	}
	if err = root.SetActiveMaterial(3); err == nil {
		t.Fatal("expected out of range material index to fail")
	}
}

func TestAnimationInstancesAreIndependent(t *testing.T) {
	m := testModel(t,
		&scene.Component{ID: "root", Animation: "slide", Children: comps("other")},
		&scene.Component{ID: "other", Animation: "slide", Children: []scene.ChildRef{quad}},
	)

	g, err := Link(m)
	if err != nil {
		t.Fatal(err)
	}

	root := g.Root()
	other, _ := g.Node("other")
	if root.Animation() == other.Animation() {
		t.Fatal("expected each component to own its animation instance")
	}

	g.Update(1)
	root.Animation().Update(1)

	if got := other.Animation().Pose().Translate; got != types.XYZ(2, 0, 0) {
		t.Fatalf("expected other component to be half way; got %v", got)
	}
	if got := root.Animation().Pose().Translate; got != types.XYZ(4, 0, 0) {
		t.Fatalf("expected root component to reach its keyframe; got %v", got)
	}
}
