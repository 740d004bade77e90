package compiler

import (
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Parse the <transformations> block. The block may be empty.
func (sc *sceneCompiler) parseTransformations(n *document.Node) error {
	for _, child := range n.Children {
		if child.Name != "transformation" {
			sc.warn("transformations", "", "unknown tag <%s>", child.Name)
			continue
		}

		id, err := requireID(child, "transformations", "transformation")
		if err != nil {
			return err
		}

		transform := &scene.Transform{ID: id}
		for _, opNode := range child.Children {
			op, known, err := parseTransformOp(opNode, "transformations", id)
			if err != nil {
				return err
			}
			if !known {
				sc.warn("transformations", id, "unknown tag <%s>", opNode.Name)
				continue
			}
			transform.Ops = append(transform.Ops, op)
		}
		transform.Matrix = sc.composeOps(transform.Ops)

		if err = sc.model.AddTransform(transform); err != nil {
			return err
		}
	}

	return nil
}

// Parse an inline translate, scale or rotate step. The known flag is false
// for any other tag.
func parseTransformOp(n *document.Node, block, id string) (op scene.TransformOp, known bool, err error) {
	switch n.Name {
	case "translate":
		op.Kind = scene.OpTranslate
		op.Vec, err = parseVec3(n, block, id)
	case "scale":
		op.Kind = scene.OpScale
		op.Vec, err = parseVec3(n, block, id)
	case "rotate":
		op.Kind = scene.OpRotate
		axisToken, _ := document.GetString(n, "axis")
		axis, ok := types.ParseAxis(axisToken)
		if !ok {
			return op, true, scene.Value(block, id, "axis", "unable to parse rotation axis %q; expected x, y or z", axisToken)
		}
		op.Axis = axis
		op.Angle, err = requireFloat(n, block, id, "angle")
	default:
		return op, false, nil
	}

	return op, true, err
}

// Compose transformation steps left-to-right so that the resulting matrix
// applies them in document order. Referenced transformations must already be
// defined.
func (sc *sceneCompiler) composeOps(ops []scene.TransformOp) types.Mat4 {
	m := types.Ident4()
	for _, op := range ops {
		switch op.Kind {
		case scene.OpTranslate:
			m = m.Mul4(types.Translate4(op.Vec))
		case scene.OpScale:
			m = m.Mul4(types.Scale4(op.Vec))
		case scene.OpRotate:
			m = m.Mul4(types.Rotate4(op.Axis, types.DegToRad(op.Angle)))
		case scene.OpReference:
			if ref, exists := sc.model.Transform(op.Ref); exists {
				m = m.Mul4(ref.Matrix)
			}
		}
	}
	return m
}
