package scene

import (
	"fmt"
	"strings"
	"testing"
)

func TestDuplicateIDs(t *testing.T) {
	m := NewModel()
	if err := m.AddMaterial(&Material{ID: "wood"}); err != nil {
		t.Fatal(err)
	}

	err := m.AddMaterial(&Material{ID: "wood"})
	if !IsReference(err) {
		t.Fatalf("expected a reference error; got %v", err)
	}
	expError := `reference error: materials "wood": ID must be unique within materials`
	if err.Error() != expError {
		t.Fatalf("expected error %q; got %q", expError, err.Error())
	}

	// Ids are only unique within a category
	if err = m.AddTexture(&Texture{ID: "wood"}); err != nil {
		t.Fatalf("expected texture to share a material id; got %v", err)
	}
}

func TestOrderedAccess(t *testing.T) {
	m := NewModel()
	for _, id := range []string{"c", "a", "b"} {
		if err := m.AddPrimitive(&Primitive{ID: id, Geometry: Sphere{Radius: 1, Slices: 3, Stacks: 1}}); err != nil {
			t.Fatal(err)
		}
	}

	if got := strings.Join(m.Primitives.Keys, ""); got != "cab" {
		t.Fatalf("expected document order cab; got %s", got)
	}
	if prim, ok := m.Primitive("a"); !ok || prim.ID != "a" {
		t.Fatalf("expected to find primitive a; got %v", prim)
	}
	if _, ok := m.Primitive("z"); ok {
		t.Fatal("expected lookup of unknown primitive to fail")
	}
}

func TestActiveLights(t *testing.T) {
	m := NewModel()
	for i := 0; i < MaxLights+2; i++ {
		if err := m.AddLight(&Light{ID: fmt.Sprintf("l%d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	active := m.ActiveLights()
	if len(active) != MaxLights {
		t.Fatalf("expected %d active lights; got %d", MaxLights, len(active))
	}
	if active[0].ID != "l0" || active[MaxLights-1].ID != "l7" {
		t.Fatalf("expected the first %d lights to be active", MaxLights)
	}
}

func TestErrorKinds(t *testing.T) {
	type spec struct {
		err     error
		kind    ErrorKind
		expText string
	}
	specs := []spec{
		{Structural("", "", "tag <scene> missing"), StructuralError, "structural error: tag <scene> missing"},
		{Value("primitives", "rect", "x2", "x2 must be greater than x1"), ValueError, `value error: primitives "rect": x2 must be greater than x1`},
		{fmt.Errorf("wrapped: %w", Reference("components", "", "unknown")), ReferenceError, "wrapped: reference error: components: unknown"},
	}

	for idx, s := range specs {
		if !IsKind(s.err, s.kind) {
			t.Fatalf("[spec %d] expected error kind %s", idx, s.kind)
		}
		if s.err.Error() != s.expText {
			t.Fatalf("[spec %d] expected error text %q; got %q", idx, s.expText, s.err.Error())
		}
	}
}

func TestStats(t *testing.T) {
	m := NewModel()
	m.RootID = "root"
	m.DefaultView = "cam"
	m.AddView(&View{ID: "cam"})
	m.AddPrimitive(&Primitive{ID: "r1", Geometry: Rectangle{0, 0, 1, 1}})
	m.AddPrimitive(&Primitive{ID: "r2", Geometry: Rectangle{0, 0, 1, 1}})
	m.AddPrimitive(&Primitive{ID: "t1", Geometry: Torus{Inner: 1, Outer: 2, Slices: 3, Loops: 1}})
	m.AddComponent(&Component{ID: "root"})

	out := m.Stats()
	for _, exp := range []string{"cam*", "2 rectangle, 1 torus", "root: root"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats output to contain %q; got:\n%s", exp, out)
		}
	}
}
