package compiler

import (
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
)

// Parse the <components> block. Child references are resolved once all
// components have been parsed.
func (sc *sceneCompiler) parseComponents(n *document.Node) error {
	for _, child := range n.Children {
		if child.Name != "component" {
			sc.warn("components", "", "unknown tag <%s>", child.Name)
			continue
		}

		comp, err := sc.parseComponent(child)
		if err != nil {
			return err
		}
		if err = sc.model.AddComponent(comp); err != nil {
			return err
		}
	}

	return nil
}

func (sc *sceneCompiler) parseComponent(n *document.Node) (*scene.Component, error) {
	id, err := requireID(n, "components", "component")
	if err != nil {
		return nil, err
	}
	comp := &scene.Component{ID: id}

	for _, parse := range []struct {
		tag string
		fn  func(*document.Node, *scene.Component) error
	}{
		{"transformation", sc.parseComponentTransform},
		{"materials", sc.parseComponentMaterials},
		{"texture", sc.parseComponentTexture},
		{"children", sc.parseComponentChildren},
	} {
		tagNode, err := requireChild(n, "components", id, parse.tag)
		if err != nil {
			return nil, err
		}
		if err = parse.fn(tagNode, comp); err != nil {
			return nil, err
		}
	}

	if ref := n.Child("animationref"); ref != nil {
		animID, ok := document.GetString(ref, "id")
		if !ok || animID == "" {
			return nil, scene.Value("components", id, "animationref", "no ID defined for <animationref>")
		}
		if _, exists := sc.model.Animation(animID); !exists {
			return nil, scene.Reference("components", id, "undefined animation %q", animID)
		}
		comp.Animation = animID
	}

	for _, child := range n.Children {
		switch child.Name {
		case "transformation", "materials", "texture", "children", "animationref":
		default:
			sc.warn("components", id, "unknown tag <%s>", child.Name)
		}
	}

	return comp, nil
}

func (sc *sceneCompiler) parseComponentTransform(n *document.Node, comp *scene.Component) error {
	for _, child := range n.Children {
		if child.Name == "transformationref" {
			refID, ok := document.GetString(child, "id")
			if !ok || refID == "" {
				return scene.Value("components", comp.ID, "transformation", "no ID defined for <transformationref>")
			}
			if _, exists := sc.model.Transform(refID); !exists {
				return scene.Reference("components", comp.ID, "undefined transformation %q", refID)
			}
			comp.Transforms = append(comp.Transforms, scene.TransformOp{Kind: scene.OpReference, Ref: refID})
			continue
		}

		op, known, err := parseTransformOp(child, "components", comp.ID)
		if err != nil {
			return err
		}
		if !known {
			sc.warn("components", comp.ID, "unknown transformation tag <%s>", child.Name)
			continue
		}
		comp.Transforms = append(comp.Transforms, op)
	}

	comp.Matrix = sc.composeOps(comp.Transforms)
	return nil
}

func (sc *sceneCompiler) parseComponentMaterials(n *document.Node, comp *scene.Component) error {
	for _, child := range n.Children {
		if child.Name != "material" {
			sc.warn("components", comp.ID, "unknown material tag <%s>", child.Name)
			continue
		}

		matID, ok := document.GetString(child, "id")
		if !ok || matID == "" {
			return scene.Value("components", comp.ID, "materials", "no ID defined for <material>")
		}
		if _, exists := sc.model.Material(matID); !exists {
			return scene.Reference("components", comp.ID, "undefined material %q", matID)
		}
		comp.Materials = append(comp.Materials, matID)
	}

	if len(comp.Materials) == 0 {
		return scene.Value("components", comp.ID, "materials", "at least one material must be defined")
	}
	return nil
}

func (sc *sceneCompiler) parseComponentTexture(n *document.Node, comp *scene.Component) error {
	texID, ok := document.GetString(n, "id")
	if !ok || texID == "" {
		return scene.Value("components", comp.ID, "texture", "no ID defined for texture")
	}

	switch texID {
	case scene.TextureNoneID:
		comp.Texture = scene.TextureRef{Mode: scene.TextureNone}
		return nil
	case scene.TextureInheritID:
		comp.Texture = scene.TextureRef{Mode: scene.TextureInherit}
		return nil
	}

	if _, exists := sc.model.Texture(texID); !exists {
		return scene.Reference("components", comp.ID, "undefined texture %q", texID)
	}

	lengthS, err := requireFloatAbove(n, "components", comp.ID, "length_s", 0)
	if err != nil {
		return err
	}
	lengthT, err := requireFloatAbove(n, "components", comp.ID, "length_t", 0)
	if err != nil {
		return err
	}

	comp.Texture = scene.TextureRef{Mode: scene.TextureNamed, ID: texID, LengthS: lengthS, LengthT: lengthT}
	return nil
}

func (sc *sceneCompiler) parseComponentChildren(n *document.Node, comp *scene.Component) error {
	for _, child := range n.Children {
		var kind scene.ChildKind
		switch child.Name {
		case "componentref":
			kind = scene.ChildComponent
		case "primitiveref":
			kind = scene.ChildPrimitive
		default:
			sc.warn("components", comp.ID, "unknown child tag <%s>", child.Name)
			continue
		}

		childID, ok := document.GetString(child, "id")
		if !ok || childID == "" {
			return scene.Value("components", comp.ID, "children", "no ID defined for <%s>", child.Name)
		}
		comp.Children = append(comp.Children, scene.ChildRef{Kind: kind, ID: childID})
	}

	if len(comp.Children) == 0 {
		sc.warn("components", comp.ID, "component has no children")
	}
	return nil
}
