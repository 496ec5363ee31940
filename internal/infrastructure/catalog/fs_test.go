package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/shape"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_BuiltIn(t *testing.T) {
	fs := NewFS("")
	shapes, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "built-in", fs.Path())
	assert.Greater(t, len(shapes), 18, "rotations are included")

	idx := shape.NewIndex(shapes)
	for i, s := range shapes {
		f, ok := idx.Family(s)
		require.True(t, ok)
		assert.LessOrEqual(t, f, i)
		for _, r := range s.Rotations() {
			rf, ok := idx.Family(r)
			assert.True(t, ok, "rotation of %s missing", s)
			assert.Equal(t, f, rf)
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := writeCatalog(t, `raw_shapes:
  - [[1, 3], [2, 3], [3, 3]]
  - [[0, 0]]
`)
	shapes, err := NewFS(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, shapes, 3)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}, shapes[0].Coords())
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, shapes[1].Coords())
}

func TestLoad_NoRotation(t *testing.T) {
	path := writeCatalog(t, `rotate: false
raw_shapes:
  - [[0, 0], [0, 1], [0, 2], [1, 2]]
`)
	shapes, err := NewFS(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, shapes, 1)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"invalid yaml", "raw_shapes: hello\n", "failed to parse YAML"},
		{"empty", "raw_shapes: []\n", "no raw_shapes"},
		{"bad pair", "raw_shapes:\n  - [[0, 0, 1]]\n", "want [row, col]"},
		{"empty shape", "raw_shapes:\n  - []\n", "no cells"},
		{"too large", "raw_shapes:\n  - [[0, 0], [0, 5]]\n", "does not fit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFS(writeCatalog(t, tc.body)).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewFS("/nonexistent/shapes.yaml").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read shape catalog")
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFS("").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
