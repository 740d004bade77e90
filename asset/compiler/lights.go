package compiler

import (
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Parse the <lights> block.
func (sc *sceneCompiler) parseLights(n *document.Node) error {
	for _, child := range n.Children {
		var kind scene.LightKind
		switch child.Name {
		case "omni":
			kind = scene.Omni
		case "spot":
			kind = scene.Spot
		default:
			sc.warn("lights", "", "unknown tag <%s>", child.Name)
			continue
		}

		light, err := sc.parseLight(child, kind)
		if err != nil {
			return err
		}
		if err = sc.model.AddLight(light); err != nil {
			return err
		}
	}

	numLights := sc.model.Lights.Len()
	if numLights == 0 {
		return scene.Value("lights", "", "", "at least one light must be defined")
	} else if numLights > scene.MaxLights {
		sc.warn("lights", "", "too many lights defined (%d); only the first %d will be used", numLights, scene.MaxLights)
	}

	return nil
}

func (sc *sceneCompiler) parseLight(n *document.Node, kind scene.LightKind) (*scene.Light, error) {
	id, err := requireID(n, "lights", "light")
	if err != nil {
		return nil, err
	}
	light := &scene.Light{ID: id, Kind: kind}

	enabled, ok := document.GetBoolean(n, "enabled")
	if !ok {
		sc.warn("lights", id, "unable to parse 'enabled' field; assuming 'value = 1'")
		enabled = true
	}
	light.Enabled = enabled

	location, err := requireChild(n, "lights", id, "location")
	if err != nil {
		return nil, err
	}
	if light.Location, err = parseVec4(location, "lights", id); err != nil {
		return nil, err
	}

	for _, target := range []struct {
		tag string
		out *scene.Color
	}{{"ambient", &light.Ambient}, {"diffuse", &light.Diffuse}, {"specular", &light.Specular}} {
		if *target.out, err = parseChildColor(n, "lights", id, target.tag); err != nil {
			return nil, err
		}
	}

	if kind == scene.Spot {
		angle, err := requireFloat(n, "lights", id, "angle")
		if err != nil {
			return nil, err
		}
		light.Angle = types.DegToRad(angle)

		if light.Exponent, err = requireFloat(n, "lights", id, "exponent"); err != nil {
			return nil, err
		}

		target, err := requireChild(n, "lights", id, "target")
		if err != nil {
			return nil, err
		}
		if light.Target, err = parseVec3(target, "lights", id); err != nil {
			return nil, err
		}
	}

	if attenuation := n.Child("attenuation"); attenuation != nil {
		terms := []scene.AttenuationTerm{scene.ConstantAttenuation, scene.LinearAttenuation, scene.QuadraticAttenuation}
		for _, term := range terms {
			v, err := requireFloat(attenuation, "lights", id, term.String())
			if err != nil {
				return nil, err
			}
			if v != 0 {
				light.Attenuation = append(light.Attenuation, scene.Attenuation{Term: term, Value: v})
			}
		}
	}

	return light, nil
}
