package scene

import (
	"fmt"

	"github.com/achilleasa/lxs/types"
)

// PrimitiveKind identifies the geometry variant of a primitive.
type PrimitiveKind uint8

const (
	RectangleKind PrimitiveKind = iota
	TriangleKind
	CylinderKind
	Cylinder2Kind
	SphereKind
	TorusKind
	PlaneKind
	PatchKind
)

var primitiveKindNames = [...]string{"rectangle", "triangle", "cylinder", "cylinder2", "sphere", "torus", "plane", "patch"}

func (k PrimitiveKind) String() string {
	return primitiveKindNames[k]
}

// Lookup a primitive kind by its document tag.
func PrimitiveKindByTag(tag string) (PrimitiveKind, bool) {
	for index, name := range primitiveKindNames {
		if name == tag {
			return PrimitiveKind(index), true
		}
	}
	return 0, false
}

// Geometry is implemented by all primitive variants.
type Geometry interface {
	Kind() PrimitiveKind
}

// An axis-aligned rectangle on the XY plane.
type Rectangle struct {
	X1, Y1, X2, Y2 float32
}

// A triangle defined by three points.
type Triangle struct {
	P1, P2, P3 types.Vec3
}

// A (possibly truncated) cone along the Z axis. Cylinder2 shares the same
// parameters but is tessellated with NURBS surfaces.
type Cylinder struct {
	Base, Top, Height float32
	Slices, Stacks    int
	Smooth            bool
}

type Sphere struct {
	Radius         float32
	Slices, Stacks int
}

type Torus struct {
	Inner, Outer  float32
	Slices, Loops int
}

// A unit plane subdivided into NPartsU x NPartsV patches.
type Plane struct {
	NPartsU, NPartsV int
}

// A NURBS patch. ControlPoints holds NPointsU rows of NPointsV homogeneous
// points each.
type Patch struct {
	NPointsU, NPointsV int
	NPartsU, NPartsV   int
	ControlPoints      [][]types.Vec4
}

func (Rectangle) Kind() PrimitiveKind { return RectangleKind }
func (Triangle) Kind() PrimitiveKind  { return TriangleKind }
func (Sphere) Kind() PrimitiveKind    { return SphereKind }
func (Torus) Kind() PrimitiveKind     { return TorusKind }
func (Plane) Kind() PrimitiveKind     { return PlaneKind }
func (Patch) Kind() PrimitiveKind     { return PatchKind }

func (c Cylinder) Kind() PrimitiveKind {
	if c.Smooth {
		return Cylinder2Kind
	}
	return CylinderKind
}

// Primitive is a named leaf geometry.
type Primitive struct {
	ID       string
	Geometry Geometry
}

// Describe the primitive parameters in a compact form.
func (p *Primitive) Describe() string {
	switch g := p.Geometry.(type) {
	case Rectangle:
		return fmt.Sprintf("(%g, %g) - (%g, %g)", g.X1, g.Y1, g.X2, g.Y2)
	case Triangle:
		return fmt.Sprintf("%v %v %v", g.P1, g.P2, g.P3)
	case Cylinder:
		return fmt.Sprintf("base %g, top %g, height %g, %dx%d", g.Base, g.Top, g.Height, g.Slices, g.Stacks)
	case Sphere:
		return fmt.Sprintf("radius %g, %dx%d", g.Radius, g.Slices, g.Stacks)
	case Torus:
		return fmt.Sprintf("inner %g, outer %g, %dx%d", g.Inner, g.Outer, g.Slices, g.Loops)
	case Plane:
		return fmt.Sprintf("%dx%d parts", g.NPartsU, g.NPartsV)
	case Patch:
		return fmt.Sprintf("%dx%d points, %dx%d parts", g.NPointsU, g.NPointsV, g.NPartsU, g.NPartsV)
	}
	return "?"
}
