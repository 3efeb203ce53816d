package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/stwalsh4118/phx/internal/models/shape"
	"github.com/stwalsh4118/phx/internal/source"
)

// ModelRepository loads source models.
type ModelRepository interface {
	// Load reads, decodes and validates the source model at path.
	Load(ctx context.Context, path string) (*source.Model, error)
}

// modelRepository is the file-backed implementation of ModelRepository.
type modelRepository struct{}

// NewModelRepository creates a new instance of ModelRepository.
func NewModelRepository() ModelRepository {
	return &modelRepository{}
}

// Load opens the file at path and decodes it. The context is checked before
// any I/O so a cancelled run does not touch the file system.
func (r *modelRepository) Load(ctx context.Context, path string) (*source.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source model %s: %w", path, err)
	}
	defer f.Close()

	model, err := source.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load source model %s: %w", path, err)
	}
	return model, nil
}

// ShapeRepository loads PHPP shape documents.
type ShapeRepository interface {
	// Load reads and checks the shape document at path.
	Load(ctx context.Context, path string) (*shape.Shape, error)
}

// shapeRepository is the file-backed implementation of ShapeRepository.
type shapeRepository struct{}

// NewShapeRepository creates a new instance of ShapeRepository.
func NewShapeRepository() ShapeRepository {
	return &shapeRepository{}
}

// Load opens the YAML shape document at path.
func (r *shapeRepository) Load(ctx context.Context, path string) (*shape.Shape, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shape %s: %w", path, err)
	}
	defer f.Close()

	layout, err := shape.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load shape %s: %w", path, err)
	}
	return layout, nil
}
