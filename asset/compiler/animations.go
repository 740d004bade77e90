package compiler

import (
	"github.com/achilleasa/lxs/animation"
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Parse the <animations> block. The block may be empty.
func (sc *sceneCompiler) parseAnimations(n *document.Node) error {
	for _, child := range n.Children {
		if child.Name != "animation" {
			sc.warn("animations", "", "unknown tag <%s>", child.Name)
			continue
		}

		anim, err := sc.parseAnimation(child)
		if err != nil {
			return err
		}
		if err = sc.model.AddAnimation(anim); err != nil {
			return err
		}
	}

	return nil
}

func (sc *sceneCompiler) parseAnimation(n *document.Node) (*scene.Animation, error) {
	id, err := requireID(n, "animations", "animation")
	if err != nil {
		return nil, err
	}

	anim := &scene.Animation{ID: id, Easing: animation.DefaultEasing}
	if name, ok := document.GetString(n, "easing"); ok && name != "" {
		if _, known := animation.LookupEasing(name); known {
			anim.Easing = name
		} else {
			sc.warn("animations", id, "unknown easing %q; assuming %q", name, animation.DefaultEasing)
		}
	}

	for _, child := range n.Children {
		if child.Name != "keyframe" {
			sc.warn("animations", id, "unknown tag <%s>", child.Name)
			continue
		}

		kf, err := sc.parseKeyframe(child, id)
		if err != nil {
			return nil, err
		}

		if kf.Instant < 0 {
			return nil, scene.Value("animations", id, "instant", "keyframe instant must be >= 0; got %g", kf.Instant)
		}
		if last := len(anim.Keyframes) - 1; last >= 0 && kf.Instant < anim.Keyframes[last].Instant {
			return nil, scene.Value("animations", id, "instant", "keyframe instant %g precedes previous instant %g", kf.Instant, anim.Keyframes[last].Instant)
		}
		anim.Keyframes = append(anim.Keyframes, kf)
	}

	if len(anim.Keyframes) == 0 {
		return nil, scene.Value("animations", id, "", "at least one keyframe must be defined")
	}
	return anim, nil
}

// Parse a keyframe. Missing steps default to the identity pose.
func (sc *sceneCompiler) parseKeyframe(n *document.Node, id string) (scene.Keyframe, error) {
	kf := scene.Keyframe{Scale: types.XYZ(1, 1, 1)}

	instant, err := requireFloat(n, "animations", id, "instant")
	if err != nil {
		return kf, err
	}
	kf.Instant = instant

	for _, child := range n.Children {
		switch child.Name {
		case "translate":
			kf.Translate, err = parseVec3(child, "animations", id)
		case "rotate":
			kf.Rotate, err = parseAngles(child, "animations", id)
		case "scale":
			kf.Scale, err = parseVec3(child, "animations", id)
		default:
			sc.warn("animations", id, "unknown keyframe tag <%s>", child.Name)
		}

		if err != nil {
			return kf, err
		}
	}

	return kf, nil
}
