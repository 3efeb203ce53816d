package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/models/shape"
)

const minimalModel = `{
	"type": "Model",
	"identifier": "minimal",
	"rooms": [],
	"properties": {"energy": {}, "ph": {"bldg_segments": []}}
}`

const minimalShape = `
version: "10.4"
language: EN
worksheets:
  climate: {name: Climate}
  u_values: {name: U-Values}
  components: {name: Components}
  areas: {name: Areas}
  windows: {name: Windows}
  additional_vent: {name: Additional Vent}
  ventilation: {name: Ventilation}
  verification: {name: Verification}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestModelRepository_Load(t *testing.T) {
	repo := NewModelRepository()
	path := writeFile(t, "model.hbjson", minimalModel)

	model, err := repo.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "minimal", model.Identifier)
	assert.Empty(t, model.Rooms)
}

func TestModelRepository_Load_MissingFile(t *testing.T) {
	repo := NewModelRepository()

	_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "nope.hbjson"))

	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestModelRepository_Load_Invalid(t *testing.T) {
	repo := NewModelRepository()
	path := writeFile(t, "model.hbjson", `{"type": "Model", "rooms": []}`)

	_, err := repo.Load(context.Background(), path)

	assert.ErrorIs(t, err, phxerrors.ErrInvalidSourceModel)
}

func TestModelRepository_Load_Cancelled(t *testing.T) {
	repo := NewModelRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx, "unused")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestShapeRepository_Load(t *testing.T) {
	repo := NewShapeRepository()
	path := writeFile(t, "shape.yaml", minimalShape)

	layout, err := repo.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "10.4", layout.Version)
	assert.Equal(t, "Additional Vent", layout.Sheet(shape.SheetAdditionalVent).Name)
}

func TestShapeRepository_Load_MissingSheet(t *testing.T) {
	repo := NewShapeRepository()
	path := writeFile(t, "shape.yaml", "version: \"10.4\"\nworksheets:\n  climate: {name: Climate}\n")

	_, err := repo.Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "u_values")
}
