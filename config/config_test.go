package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kevinxiao27/terrain-delta/brush"
	"github.com/kevinxiao27/terrain-delta/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
tiles_per_side: 16
base_texture: snow
log_level: debug
groups:
  - name: arctic
    textures:
      - name: snow
        base_color: 0xf0f0ff
      - name: ice
        base_color: 0xa0d0ff
brushes:
  big:
    shape: square
    size: 6
    strength: 0.8
`

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.TilesPerSide)
	assert.Equal(t, "snow", cfg.BaseTexture)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, uint32(0xa0d0ff), cfg.Groups[0].Textures[1].BaseColor)

	b, err := cfg.Brush("big")
	require.NoError(t, err)
	assert.Equal(t, brush.Square, b.Shape)
	assert.Equal(t, 6, b.W)

	ter := cfg.NewTerrain()
	assert.Equal(t, 16, ter.TilesPerSide())
	assert.Equal(t, terrain.Tile{Texture: "snow"}, ter.ReadCell(15, 15))
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("tiles_per_side: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.TilesPerSide)
	assert.Equal(t, "grass", cfg.BaseTexture)

	_, err = cfg.Brush("default")
	assert.NoError(t, err)
	_, err = cfg.Brush("missing")
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "tiles_per_side: [", "parse yaml"},
		{"zero size", "tiles_per_side: 0", "tiles_per_side"},
		{"unknown base", "base_texture: lava", "base_texture"},
		{"bad shape", "brushes: {x: {shape: star, size: 2, strength: 1}}", "unknown shape"},
		{"bad brush size", "brushes: {x: {shape: circle, size: 0, strength: 1}}", "size must be positive"},
		{"bad strength", "brushes: {x: {shape: circle, size: 2, strength: 2}}", "strength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse([]byte("base_texture: lava"))
	assert.True(t, errors.Is(err, terrain.ErrUnknownTexture))
}

func TestValidateNeedsBrush(t *testing.T) {
	cfg := Default()
	cfg.Brushes = nil
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brush preset")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "snow", cfg.BaseTexture)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
