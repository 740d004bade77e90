package reader

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/achilleasa/lxs/asset"
	"github.com/achilleasa/lxs/asset/compiler"
	"github.com/achilleasa/lxs/asset/document"
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/log"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource. Warnings are returned even if
	// reading fails.
	Read(*asset.Resource) (*scene.Model, []scene.Warning, error)
}

// Read scene from a local file or an http(s) URL.
func ReadScene(filename string) (*scene.Model, []scene.Warning, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, nil, err
	}
	defer res.Close()

	// Select reader based on file extension
	var reader Reader
	switch strings.ToLower(path.Ext(res.Name())) {
	case ".xml", ".lxs":
		reader = newDocumentReader()
	default:
		return nil, nil, fmt.Errorf("readScene: unsupported file format %q", path.Ext(res.Name()))
	}
	return reader.Read(res)
}

// A reader for XML scene documents.
type documentReader struct {
	logger log.Logger
}

func newDocumentReader() *documentReader {
	return &documentReader{
		logger: log.New("scene reader"),
	}
}

func (r *documentReader) Read(sceneRes *asset.Resource) (*scene.Model, []scene.Warning, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	root, err := document.Parse(sceneRes)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", sceneRes.Path(), err)
	}
	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)

	model, warnings, err := compiler.Compile(root)
	if err != nil {
		return nil, warnings, err
	}

	// Texture paths are relative to the scene document
	for _, tex := range model.Textures.Values {
		if tex.File == "" {
			continue
		}
		tex.File = sceneRes.Resolve(tex.File)
		r.logger.Debugf("texture %q resolved to %q", tex.ID, tex.File)
	}

	return model, warnings, nil
}
