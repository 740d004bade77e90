package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// The Resource type wraps a streamable scene document that lives either on
// the local filesystem or behind an http(s) URL.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns the base name of the resource path.
func (r *Resource) Name() string {
	return path.Base(r.url.Path)
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Resolve a path referenced from within this resource (e.g. a texture file)
// without opening it. Absolute paths and URLs are returned unchanged.
func (r *Resource) Resolve(ref string) string {
	ref = strings.Replace(ref, `\`, `/`, -1)
	refURL, err := url.Parse(ref)
	if err != nil || refURL.Scheme != "" || filepath.IsAbs(ref) {
		return ref
	}

	if r.IsRemote() {
		return r.url.ResolveReference(refURL).String()
	}
	return filepath.Join(filepath.Dir(r.url.Path), ref)
}

// Create a new Resource data stream. If relTo is specified and pathToResource
// does not define a scheme, then the path to the new Resource will be
// resolved relative to relTo.
//
// The caller must make sure to close the returned Resource to prevent leaks.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	if relTo != nil {
		pathToResource = relTo.Resolve(pathToResource)
	}

	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(resURL.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, _ := url.Parse(name)
	if resURL == nil {
		resURL = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}
