package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"svw.info/woodoku/assets"
	"svw.info/woodoku/internal/shape"
)

// file is the on-disk catalog layout.
type file struct {
	Rotate    *bool     `yaml:"rotate,omitempty"`
	RawShapes [][][]int `yaml:"raw_shapes"`
}

// FS loads a shape catalog from a YAML file. An empty path selects the
// catalog built into the binary.
type FS struct{ path string }

func NewFS(path string) *FS { return &FS{path: strings.TrimSpace(path)} }

// Load reads the catalog and expands every prototype into its rotations.
func (s *FS) Load(ctx context.Context) ([]shape.Shape, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		shapes, err := Parse(assets.DefaultShapes())
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return shapes, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape catalog: %w", err)
	}
	shapes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid shape catalog %s: %w", s.path, err)
	}
	return shapes, nil
}

// Path names the source of the catalog for logs.
func (s *FS) Path() string {
	if s.path == "" {
		return "built-in"
	}
	return s.path
}

// Parse decodes a catalog document.
func Parse(data []byte) ([]shape.Shape, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.RawShapes) == 0 {
		return nil, errors.New("no raw_shapes defined")
	}
	protos := make([]shape.Shape, 0, len(f.RawShapes))
	for i, raw := range f.RawShapes {
		pairs := make([][2]int, len(raw))
		for j, p := range raw {
			if len(p) != 2 {
				return nil, fmt.Errorf("shape %d cell %d: want [row, col], got %v", i, j, p)
			}
			pairs[j] = [2]int{p[0], p[1]}
		}
		s, err := shape.FromPairs(pairs)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		protos = append(protos, s)
	}
	if f.Rotate != nil && !*f.Rotate {
		return protos, nil
	}
	return shape.ExpandRotations(protos), nil
}
