package compiler

import (
	"fmt"
	"time"

	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/log"
)

// The tag of the document root element.
const RootTag = "lxs"

// A document block parser.
type blockParser struct {
	tag   string
	parse func(*sceneCompiler, *document.Node) error
}

// The document blocks in their canonical order.
var blocks = []blockParser{
	{"scene", (*sceneCompiler).parseScene},
	{"views", (*sceneCompiler).parseViews},
	{"globals", (*sceneCompiler).parseGlobals},
	{"lights", (*sceneCompiler).parseLights},
	{"textures", (*sceneCompiler).parseTextures},
	{"materials", (*sceneCompiler).parseMaterials},
	{"transformations", (*sceneCompiler).parseTransformations},
	{"animations", (*sceneCompiler).parseAnimations},
	{"primitives", (*sceneCompiler).parsePrimitives},
	{"components", (*sceneCompiler).parseComponents},
}

type sceneCompiler struct {
	model    *scene.Model
	logger   log.Logger
	warnings []scene.Warning
}

// Compile a parsed scene document into a cross-referenced scene model.
//
// Compilation stops at the first fatal error which is returned as a
// *scene.Error. Non-fatal problems are logged and returned as warnings; they
// are also returned when compilation fails.
func Compile(root *document.Node) (*scene.Model, []scene.Warning, error) {
	sc := &sceneCompiler{
		model:  scene.NewModel(),
		logger: log.New("scene compiler"),
	}

	start := time.Now()
	sc.logger.Noticef("compiling scene")

	if err := sc.compile(root); err != nil {
		sc.logger.Errorf("%v", err)
		return nil, sc.warnings, err
	}

	sc.logger.Noticef("compiled scene in %d ms (%d warnings)", time.Since(start).Nanoseconds()/1e6, len(sc.warnings))
	return sc.model, sc.warnings, nil
}

func (sc *sceneCompiler) compile(root *document.Node) error {
	if root == nil || root.Name != RootTag {
		return scene.Structural("", "", "root tag <%s> missing", RootTag)
	}

	for canonicalIndex, block := range blocks {
		index := root.Index(block.tag)
		if index == -1 {
			return scene.Structural(block.tag, "", "tag <%s> missing", block.tag)
		}
		if index != canonicalIndex {
			sc.warn(block.tag, "", "tag <%s> out of order (position %d; expected %d)", block.tag, index, canonicalIndex)
		}

		if err := block.parse(sc, root.Children[index]); err != nil {
			return err
		}
		sc.logger.Debugf("parsed <%s>", block.tag)
	}

	// Unknown top-level tags
	for _, child := range root.Children {
		if !isBlockTag(child.Name) {
			sc.warn("", "", "unknown tag <%s>", child.Name)
		}
	}

	return sc.resolveGraphReferences()
}

// Validate references that may point forward inside the components block.
func (sc *sceneCompiler) resolveGraphReferences() error {
	for _, comp := range sc.model.Components.Values {
		for _, child := range comp.Children {
			var exists bool
			switch child.Kind {
			case scene.ChildComponent:
				_, exists = sc.model.Component(child.ID)
			case scene.ChildPrimitive:
				_, exists = sc.model.Primitive(child.ID)
			}

			if !exists {
				return scene.Reference("components", comp.ID, "undefined child %s %q", child.Kind, child.ID)
			}
		}
	}

	if _, exists := sc.model.Root(); !exists {
		return scene.Reference("scene", "", "root component %q is not defined", sc.model.RootID)
	}
	return nil
}

// Record and log a non-fatal problem.
func (sc *sceneCompiler) warn(block, id, format string, args ...interface{}) {
	w := scene.Warning{Block: block, ID: id, Msg: fmt.Sprintf(format, args...)}
	sc.warnings = append(sc.warnings, w)
	sc.logger.Warning(w.String())
}

func isBlockTag(tag string) bool {
	for _, block := range blocks {
		if block.tag == tag {
			return true
		}
	}
	return false
}
