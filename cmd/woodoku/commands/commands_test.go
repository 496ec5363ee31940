package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/woodoku/internal/board"
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/ports"
	"svw.info/woodoku/internal/shape"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "simulate", "shapes"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"--unknown-flag", "value"})
	defer rootCmd.SetArgs(nil)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warn "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("whatever"))
}

func TestLoadConfig(t *testing.T) {
	defer func() { configPath = "" }()

	configPath = ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)

	configPath = filepath.Join(t.TempDir(), "woodoku.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: \"1.0\"\ngame:\n  hand_size: 2\n"), 0644))
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Game.HandSize)

	configPath = "/nonexistent/woodoku.yml"
	_, err = loadConfig()
	require.Error(t, err)
	assert.Equal(t, "failed to load configuration", err.Error())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := requestLogger(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/state", nil))

	out := buf.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/api/state")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "bytes=15")
}

func TestSimulate(t *testing.T) {
	t.Run("rejects unknown tier", func(t *testing.T) {
		rootCmd.SetArgs([]string{"simulate", "--tier", "psychic"})
		defer rootCmd.SetArgs(nil)
		err := Execute()
		require.Error(t, err)
		assert.Equal(t, "invalid hint tier", err.Error())
	})

	t.Run("fails when the hinter fails", func(t *testing.T) {
		defer func(orig func() ports.Hinter) { newHinter = orig }(newHinter)
		newHinter = func() ports.Hinter { return failingHinter{} }

		rootCmd.SetArgs([]string{"simulate", "--tier", "greedy", "--games", "1", "--seed", "3", "--turns", "5"})
		defer rootCmd.SetArgs(nil)
		err := Execute()
		require.Error(t, err)
		assert.Equal(t, "simulation failed", err.Error())
	})

	t.Run("plays a short seeded game", func(t *testing.T) {
		rootCmd.SetArgs([]string{"simulate", "--tier", "greedy", "--games", "2", "--seed", "3", "--turns", "5"})
		defer rootCmd.SetArgs(nil)
		require.NoError(t, Execute())
	})
}

type failingHinter struct{}

func (failingHinter) Hint(context.Context, *board.Board, []shape.Shape, []bool, domain.StrategyTier) (domain.Hint, bool, error) {
	return domain.Hint{}, false, errors.New("hinter broke")
}

func TestWriteShapesJSON(t *testing.T) {
	line := shape.MustNew(domain.CellCoord{}, domain.CellCoord{Col: 1})
	shapes := shape.ExpandRotations([]shape.Shape{shape.MustNew(domain.CellCoord{}), line})

	var buf bytes.Buffer
	require.NoError(t, writeShapesJSON(&buf, shapes))
	var out []shapeJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, []int{0, 1, 1}, []int{out[0].Family, out[1].Family, out[2].Family})
	assert.Equal(t, 2, out[2].Size)
}

func TestShapes_JSON(t *testing.T) {
	rootCmd.SetArgs([]string{"shapes", "--json"})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, Execute())
}
