package compiler

import (
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Parse the <scene> block.
func (sc *sceneCompiler) parseScene(n *document.Node) error {
	rootID, ok := document.GetString(n, "root")
	if !ok || rootID == "" {
		return scene.Value("scene", "", "root", "no root defined for scene")
	}
	sc.model.RootID = rootID

	axisLength, ok := document.GetFloat(n, "axis_length")
	if !ok || axisLength <= 0 {
		sc.warn("scene", "", "no valid axis_length defined for scene; assuming 'length = 1'")
		axisLength = 1
	}
	sc.model.AxisLength = axisLength

	return nil
}

// Parse the <views> block.
func (sc *sceneCompiler) parseViews(n *document.Node) error {
	for _, child := range n.Children {
		var kind scene.ViewKind
		switch child.Name {
		case "perspective":
			kind = scene.Perspective
		case "ortho":
			kind = scene.Ortho
		default:
			sc.warn("views", "", "unknown tag <%s>", child.Name)
			continue
		}

		view, err := sc.parseView(child, kind)
		if err != nil {
			return err
		}
		if err = sc.model.AddView(view); err != nil {
			return err
		}
	}

	if sc.model.Views.Len() == 0 {
		return scene.Value("views", "", "", "at least one view must be defined")
	}

	defaultView, ok := document.GetString(n, "default")
	if !ok || defaultView == "" {
		defaultView = sc.model.Views.Keys[0]
		sc.warn("views", "", "no default view defined; using %q", defaultView)
	} else if _, exists := sc.model.View(defaultView); !exists {
		return scene.Reference("views", defaultView, "default view is not defined")
	}
	sc.model.DefaultView = defaultView

	return nil
}

func (sc *sceneCompiler) parseView(n *document.Node, kind scene.ViewKind) (*scene.View, error) {
	id, err := requireID(n, "views", "view")
	if err != nil {
		return nil, err
	}
	view := &scene.View{ID: id, Kind: kind}

	switch kind {
	case scene.Perspective:
		angle, err := requireFloat(n, "views", id, "angle")
		if err != nil {
			return nil, err
		}
		view.Angle = types.DegToRad(angle)
	case scene.Ortho:
		v, err := requireFloats(n, "views", id, "left", "right", "bottom", "top")
		if err != nil {
			return nil, err
		}
		view.Left, view.Right, view.Bottom, view.Top = v[0], v[1], v[2], v[3]
	}

	if view.Near, err = requireFloat(n, "views", id, "near"); err != nil {
		return nil, err
	}
	if view.Far, err = requireFloat(n, "views", id, "far"); err != nil {
		return nil, err
	}

	for _, target := range []struct {
		tag string
		out *types.Vec3
	}{{"from", &view.From}, {"to", &view.To}} {
		child, err := requireChild(n, "views", id, target.tag)
		if err != nil {
			return nil, err
		}
		if *target.out, err = parseVec3(child, "views", id); err != nil {
			return nil, err
		}
	}

	if kind == scene.Ortho {
		view.Up = types.Vec3{0, 1, 0}
		if up := n.Child("up"); up != nil {
			if view.Up, err = parseVec3(up, "views", id); err != nil {
				return nil, err
			}
		}
	}

	return view, nil
}

// Parse the <globals> block.
func (sc *sceneCompiler) parseGlobals(n *document.Node) error {
	var err error
	if sc.model.Globals.Ambient, err = parseChildColor(n, "globals", "", "ambient"); err != nil {
		return err
	}
	if sc.model.Globals.Background, err = parseChildColor(n, "globals", "", "background"); err != nil {
		return err
	}
	return nil
}
