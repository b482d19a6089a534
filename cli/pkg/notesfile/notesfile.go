// Package notesfile reads notes from a YAML file for offline rendering.
//
//	title: Graph traversal        # optional, derived from summary otherwise
//	timestamps:
//	  - "00:00 Intro"
//	summary:
//	  - "BFS visits vertices layer by layer"
//	images:
//	  - frames/001.png            # relative to the notes file
package notesfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Sheesh1006/service-backend/relay/pkg/render"
)

// File is the on-disk notes format.
type File struct {
	Title      string   `yaml:"title"`
	Timestamps []string `yaml:"timestamps"`
	Summary    []string `yaml:"summary"`
	Images     []string `yaml:"images"`

	dir string
}

// Load parses the notes file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse notes file %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return &f, nil
}

// Document builds the render input. Images listed in the file are resolved
// against its directory; extra images are taken as given.
func (f *File) Document(extra ...string) (*render.Document, error) {
	var images []render.Image
	paths := make([]string, 0, len(f.Images)+len(extra))
	for _, p := range f.Images {
		if !filepath.IsAbs(p) {
			p = filepath.Join(f.dir, p)
		}
		paths = append(paths, p)
	}
	paths = append(paths, extra...)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		images = append(images, render.Image{Name: filepath.Base(p), Data: data})
	}

	doc := render.NewDocument(f.Summary, f.Timestamps, images...)
	if f.Title != "" {
		doc.Title = f.Title
	}
	return doc, nil
}
