package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

func TestNewBoardDefaults(t *testing.T) {
	options, err := NewBoard()
	require.NoError(t, err)
	assert.Equal(t, mines.DefaultOptions(), options)
}

func TestNewBoardFromEnv(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "30")
	t.Setenv("BOARD_HEIGHT", "16")
	t.Setenv("BOARD_BOMBS", "99")
	t.Setenv("BOARD_SAFE_START", "0")
	t.Setenv("BOARD_TILE_PADDING", "1.5")
	t.Setenv("BOARD_TILE_SIZE", "fixed:24")

	options, err := NewBoard()
	require.NoError(t, err)
	assert.Equal(t, uint16(30), options.Width)
	assert.Equal(t, uint16(16), options.Height)
	assert.Equal(t, 99, options.BombCount)
	assert.False(t, options.SafeStart)
	assert.Equal(t, 1.5, options.TilePadding)
	assert.Equal(t, mines.FixedTileSize(24), options.TileSize)
}

func TestNewBoardInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"BOARD_WIDTH", "wide"},
		{"BOARD_WIDTH", "70000"},
		{"BOARD_HEIGHT", "-1"},
		{"BOARD_BOMBS", "many"},
		{"BOARD_BOMBS", "121"},
		{"BOARD_TILE_PADDING", "x"},
		{"BOARD_TILE_SIZE", "huge"},
	}

	for _, test := range tests {
		t.Run(test.key+"="+test.value, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := NewBoard()
			assert.Error(t, err)
		})
	}
}

func TestParseTileSize(t *testing.T) {
	size, err := ParseTileSize("adaptive:10:50")
	require.NoError(t, err)
	assert.Equal(t, mines.AdaptiveTileSize{Min: 10, Max: 50}, size)

	for _, s := range []string{"", "fixed", "fixed:0", "fixed:-3", "adaptive:5", "adaptive:50:10", "adaptive:a:b"} {
		_, err := ParseTileSize(s)
		assert.Error(t, err, s)
	}
}

func TestSeed(t *testing.T) {
	seed, err := ParseSeed("1:2")
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{1, 2}, seed)

	_, err = ParseSeed("1")
	assert.Error(t, err)

	t.Setenv("BOARD_SEED", "42:7")
	seed, err = Seed()
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{42, 7}, seed)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.env")
	require.NoError(t, os.WriteFile(path, []byte("BOARD_WIDTH=20\nBOARD_BOMBS=30\n"), 0o600))

	t.Setenv("BOARD_BOMBS", "5")
	t.Setenv("BOARD_WIDTH", "")
	os.Unsetenv("BOARD_WIDTH")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))

	options, err := NewBoard()
	require.NoError(t, err)
	assert.Equal(t, uint16(20), options.Width)
	assert.Equal(t, 5, options.BombCount)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}
