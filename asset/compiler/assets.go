package compiler

import (
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
)

// Shininess used when a material does not define a valid one.
const DefaultShininess = 10.0

// Parse the <textures> block.
func (sc *sceneCompiler) parseTextures(n *document.Node) error {
	for _, child := range n.Children {
		if child.Name != "texture" {
			sc.warn("textures", "", "unknown tag <%s>", child.Name)
			continue
		}

		id, err := requireID(child, "textures", "texture")
		if err != nil {
			return err
		}

		file, ok := document.GetString(child, "file")
		if !ok || file == "" {
			sc.warn("textures", id, "no file defined for texture")
		}

		if err = sc.model.AddTexture(&scene.Texture{ID: id, File: file}); err != nil {
			return err
		}
	}

	if sc.model.Textures.Len() == 0 {
		return scene.Value("textures", "", "", "at least one texture must be defined")
	}
	return nil
}

// Parse the <materials> block.
func (sc *sceneCompiler) parseMaterials(n *document.Node) error {
	for _, child := range n.Children {
		if child.Name != "material" {
			sc.warn("materials", "", "unknown tag <%s>", child.Name)
			continue
		}

		mat, err := sc.parseMaterial(child)
		if err != nil {
			return err
		}
		if err = sc.model.AddMaterial(mat); err != nil {
			return err
		}
	}

	if sc.model.Materials.Len() == 0 {
		return scene.Value("materials", "", "", "at least one material must be defined")
	}
	return nil
}

func (sc *sceneCompiler) parseMaterial(n *document.Node) (*scene.Material, error) {
	id, err := requireID(n, "materials", "material")
	if err != nil {
		return nil, err
	}
	mat := &scene.Material{ID: id}

	shininess, ok := document.GetFloat(n, "shininess")
	if !ok || shininess < 0 {
		sc.warn("materials", id, "unable to parse 'shininess' field; assuming 'value = %g'", DefaultShininess)
		shininess = DefaultShininess
	}
	mat.Shininess = shininess

	for _, target := range []struct {
		tag string
		out *scene.Color
	}{{"emission", &mat.Emission}, {"ambient", &mat.Ambient}, {"diffuse", &mat.Diffuse}, {"specular", &mat.Specular}} {
		if *target.out, err = parseChildColor(n, "materials", id, target.tag); err != nil {
			return nil, err
		}
	}

	return mat, nil
}
