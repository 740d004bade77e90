package compiler

import (
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Parse the <primitives> block.
func (sc *sceneCompiler) parsePrimitives(n *document.Node) error {
	for _, child := range n.Children {
		if child.Name != "primitive" {
			sc.warn("primitives", "", "unknown tag <%s>", child.Name)
			continue
		}

		id, err := requireID(child, "primitives", "primitive")
		if err != nil {
			return err
		}

		if len(child.Children) != 1 {
			return scene.Structural("primitives", id, "expected exactly one geometry tag; got %d", len(child.Children))
		}

		geom, err := sc.parseGeometry(child.Children[0], id)
		if err != nil {
			return err
		}

		if err = sc.model.AddPrimitive(&scene.Primitive{ID: id, Geometry: geom}); err != nil {
			return err
		}
	}

	return nil
}

func (sc *sceneCompiler) parseGeometry(n *document.Node, id string) (scene.Geometry, error) {
	kind, ok := scene.PrimitiveKindByTag(n.Name)
	if !ok {
		return nil, scene.Structural("primitives", id, "unknown primitive type <%s>", n.Name)
	}

	switch kind {
	case scene.RectangleKind:
		return parseRectangle(n, id)
	case scene.TriangleKind:
		return parseTriangle(n, id)
	case scene.CylinderKind, scene.Cylinder2Kind:
		return parseCylinder(n, id, kind == scene.Cylinder2Kind)
	case scene.SphereKind:
		return parseSphere(n, id)
	case scene.TorusKind:
		return parseTorus(n, id)
	case scene.PlaneKind:
		return parsePlane(n, id)
	default:
		return sc.parsePatch(n, id)
	}
}

func parseRectangle(n *document.Node, id string) (scene.Geometry, error) {
	v, err := requireFloats(n, "primitives", id, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}

	if v[2] <= v[0] {
		return nil, scene.Value("primitives", id, "x2", "x2 of <rectangle> must be greater than x1 (%g); got %g", v[0], v[2])
	}
	if v[3] <= v[1] {
		return nil, scene.Value("primitives", id, "y2", "y2 of <rectangle> must be greater than y1 (%g); got %g", v[1], v[3])
	}

	return scene.Rectangle{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func parseTriangle(n *document.Node, id string) (scene.Geometry, error) {
	v, err := requireFloats(n, "primitives", id, "x1", "y1", "z1", "x2", "y2", "z2", "x3", "y3", "z3")
	if err != nil {
		return nil, err
	}

	return scene.Triangle{
		P1: types.XYZ(v[0], v[1], v[2]),
		P2: types.XYZ(v[3], v[4], v[5]),
		P3: types.XYZ(v[6], v[7], v[8]),
	}, nil
}

func parseCylinder(n *document.Node, id string, smooth bool) (scene.Geometry, error) {
	var (
		cyl = scene.Cylinder{Smooth: smooth}
		err error
	)

	if cyl.Base, err = requireFloatMin(n, "primitives", id, "base", 0); err != nil {
		return nil, err
	}
	if cyl.Top, err = requireFloatMin(n, "primitives", id, "top", 0); err != nil {
		return nil, err
	}
	if cyl.Height, err = requireFloatAbove(n, "primitives", id, "height", 0); err != nil {
		return nil, err
	}
	if cyl.Slices, err = requireInt(n, "primitives", id, "slices", 3); err != nil {
		return nil, err
	}
	if cyl.Stacks, err = requireInt(n, "primitives", id, "stacks", 1); err != nil {
		return nil, err
	}

	return cyl, nil
}

func parseSphere(n *document.Node, id string) (scene.Geometry, error) {
	var (
		sphere scene.Sphere
		err    error
	)

	if sphere.Radius, err = requireFloatMin(n, "primitives", id, "radius", 0); err != nil {
		return nil, err
	}
	if sphere.Slices, err = requireInt(n, "primitives", id, "slices", 3); err != nil {
		return nil, err
	}
	if sphere.Stacks, err = requireInt(n, "primitives", id, "stacks", 1); err != nil {
		return nil, err
	}

	return sphere, nil
}

func parseTorus(n *document.Node, id string) (scene.Geometry, error) {
	var (
		torus scene.Torus
		err   error
	)

	if torus.Inner, err = requireFloatMin(n, "primitives", id, "inner", 0); err != nil {
		return nil, err
	}
	if torus.Outer, err = requireFloatMin(n, "primitives", id, "outer", 0); err != nil {
		return nil, err
	}
	if torus.Slices, err = requireInt(n, "primitives", id, "slices", 3); err != nil {
		return nil, err
	}
	if torus.Loops, err = requireInt(n, "primitives", id, "loops", 1); err != nil {
		return nil, err
	}

	return torus, nil
}

func parsePlane(n *document.Node, id string) (scene.Geometry, error) {
	var (
		plane scene.Plane
		err   error
	)

	if plane.NPartsU, err = requireInt(n, "primitives", id, "npartsU", 1); err != nil {
		return nil, err
	}
	if plane.NPartsV, err = requireInt(n, "primitives", id, "npartsV", 1); err != nil {
		return nil, err
	}

	return plane, nil
}

func (sc *sceneCompiler) parsePatch(n *document.Node, id string) (scene.Geometry, error) {
	var (
		patch scene.Patch
		err   error
	)

	if patch.NPointsU, err = requireInt(n, "primitives", id, "npointsU", 1); err != nil {
		return nil, err
	}
	if patch.NPointsV, err = requireInt(n, "primitives", id, "npointsV", 1); err != nil {
		return nil, err
	}
	if patch.NPartsU, err = requireInt(n, "primitives", id, "npartsU", 1); err != nil {
		return nil, err
	}
	if patch.NPartsV, err = requireInt(n, "primitives", id, "npartsV", 1); err != nil {
		return nil, err
	}

	var points []types.Vec4
	for _, child := range n.Children {
		if child.Name != "controlpoint" {
			sc.warn("primitives", id, "unknown patch tag <%s>", child.Name)
			continue
		}

		v, err := requireFloats(child, "primitives", id, "xx", "yy", "zz")
		if err != nil {
			return nil, err
		}
		points = append(points, types.XYZW(v[0], v[1], v[2], 1))
	}

	if expCount := int64(patch.NPointsU) * int64(patch.NPointsV); int64(len(points)) != expCount {
		return nil, scene.Value("primitives", id, "controlpoint", "expected %d control points (%d x %d); got %d", expCount, patch.NPointsU, patch.NPointsV, len(points))
	}

	// Row-major grid: one row per U point
	patch.ControlPoints = make([][]types.Vec4, patch.NPointsU)
	for u := range patch.ControlPoints {
		patch.ControlPoints[u] = points[u*patch.NPointsV : (u+1)*patch.NPointsV]
	}

	return patch, nil
}
