package compiler

import (
	"math"

	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Get the mandatory id attribute of an entity.
func requireID(n *document.Node, block, entity string) (string, error) {
	id, ok := document.GetString(n, "id")
	if !ok || id == "" {
		return "", scene.Value(block, "", "id", "no ID defined for %s", entity)
	}
	return id, nil
}

// Get a mandatory child tag.
func requireChild(n *document.Node, block, id, tag string) (*document.Node, error) {
	child := n.Child(tag)
	if child == nil {
		return nil, scene.Structural(block, id, "<%s> missing tag <%s>", n.Name, tag)
	}
	return child, nil
}

// Parse a mandatory float attribute.
func requireFloat(n *document.Node, block, id, attr string) (float32, error) {
	v, ok := document.GetFloat(n, attr)
	if !ok {
		return 0, scene.Value(block, id, attr, "unable to parse %s of <%s>", attr, n.Name)
	}
	return v, nil
}

// Parse a mandatory float attribute that must be >= min.
func requireFloatMin(n *document.Node, block, id, attr string, min float32) (float32, error) {
	v, err := requireFloat(n, block, id, attr)
	if err != nil {
		return 0, err
	}
	if v < min {
		return 0, scene.Value(block, id, attr, "%s of <%s> must be >= %g; got %g", attr, n.Name, min, v)
	}
	return v, nil
}

// Parse a mandatory float attribute that must be > min.
func requireFloatAbove(n *document.Node, block, id, attr string, min float32) (float32, error) {
	v, err := requireFloat(n, block, id, attr)
	if err != nil {
		return 0, err
	}
	if v <= min {
		return 0, scene.Value(block, id, attr, "%s of <%s> must be greater than %g; got %g", attr, n.Name, min, v)
	}
	return v, nil
}

// The largest value accepted for integral attributes.
const maxIntAttr = math.MaxInt32

// Parse a mandatory integral attribute that must lie in [min, maxIntAttr].
func requireInt(n *document.Node, block, id, attr string, min int) (int, error) {
	v, err := requireFloat(n, block, id, attr)
	if err != nil {
		return 0, err
	}
	if float64(v) != math.Trunc(float64(v)) {
		return 0, scene.Value(block, id, attr, "%s of <%s> must be an integer; got %g", attr, n.Name, v)
	}
	if v < float32(min) {
		return 0, scene.Value(block, id, attr, "%s of <%s> must be >= %d; got %g", attr, n.Name, min, v)
	}
	if v > maxIntAttr {
		return 0, scene.Value(block, id, attr, "%s of <%s> must be <= %d; got %g", attr, n.Name, maxIntAttr, v)
	}
	return int(v), nil
}

// Parse a sequence of mandatory float attributes.
func requireFloats(n *document.Node, block, id string, attrs ...string) ([]float32, error) {
	out := make([]float32, len(attrs))
	for index, attr := range attrs {
		v, err := requireFloat(n, block, id, attr)
		if err != nil {
			return nil, err
		}
		out[index] = v
	}
	return out, nil
}

// Parse x, y, z attributes.
func parseVec3(n *document.Node, block, id string) (types.Vec3, error) {
	v, err := requireFloats(n, block, id, "x", "y", "z")
	if err != nil {
		return types.Vec3{}, err
	}
	return types.Vec3{v[0], v[1], v[2]}, nil
}

// Parse x, y, z, w attributes.
func parseVec4(n *document.Node, block, id string) (types.Vec4, error) {
	v, err := requireFloats(n, block, id, "x", "y", "z", "w")
	if err != nil {
		return types.Vec4{}, err
	}
	return types.Vec4{v[0], v[1], v[2], v[3]}, nil
}

// Parse angle_x, angle_y, angle_z attributes.
func parseAngles(n *document.Node, block, id string) (types.Vec3, error) {
	v, err := requireFloats(n, block, id, "angle_x", "angle_y", "angle_z")
	if err != nil {
		return types.Vec3{}, err
	}
	return types.Vec3{v[0], v[1], v[2]}, nil
}

// Parse r, g, b, a attributes; each channel must lie in [0, 1].
func parseColor(n *document.Node, block, id string) (scene.Color, error) {
	var c scene.Color
	for index, attr := range []string{"r", "g", "b", "a"} {
		v, err := requireFloat(n, block, id, attr)
		if err != nil {
			return c, err
		}
		if v < 0 || v > 1 {
			return c, scene.Value(block, id, attr, "%s component of <%s> must be in [0, 1]; got %g", attr, n.Name, v)
		}
		c[index] = v
	}
	return c, nil
}

// Parse a color stored in a mandatory child tag.
func parseChildColor(n *document.Node, block, id, tag string) (scene.Color, error) {
	child, err := requireChild(n, block, id, tag)
	if err != nil {
		return scene.Color{}, err
	}
	return parseColor(child, block, id)
}
