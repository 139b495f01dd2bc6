package config

import (
	"fmt"
	"hash/maphash"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

func lookupUint16(key string, fallback uint16) (uint16, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s env variable: %w", key, err)
	}
	return uint16(v), nil
}

func lookupFloat(key string, fallback float64) (float64, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s env variable: %w", key, err)
	}
	return v, nil
}

// ParseTileSize reads "fixed:SIZE" or "adaptive:MIN:MAX".
func ParseTileSize(s string) (mines.TileSize, error) {
	parts := strings.Split(s, ":")
	switch {
	case parts[0] == "fixed" && len(parts) == 2:
		size, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid fixed tile size %q", s)
		}
		return mines.FixedTileSize(size), nil
	case parts[0] == "adaptive" && len(parts) == 3:
		lo, err1 := strconv.ParseFloat(parts[1], 64)
		hi, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || lo <= 0 || hi < lo {
			return nil, fmt.Errorf("invalid adaptive tile size %q", s)
		}
		return mines.AdaptiveTileSize{Min: lo, Max: hi}, nil
	default:
		return nil, fmt.Errorf("unknown tile size policy %q", s)
	}
}

// NewBoard builds board options from BOARD_* env variables, using
// [mines.DefaultOptions] for anything unset.
func NewBoard() (mines.Options, error) {
	options := mines.DefaultOptions()
	var err error

	if options.Width, err = lookupUint16("BOARD_WIDTH", options.Width); err != nil {
		return options, err
	}
	if options.Height, err = lookupUint16("BOARD_HEIGHT", options.Height); err != nil {
		return options, err
	}

	if bombsStr, ok := os.LookupEnv("BOARD_BOMBS"); ok {
		if options.BombCount, err = strconv.Atoi(bombsStr); err != nil {
			return options, fmt.Errorf("unable to parse BOARD_BOMBS env variable: %w", err)
		}
	}

	if safeStartStr, ok := os.LookupEnv("BOARD_SAFE_START"); ok {
		options.SafeStart = safeStartStr != "0"
	}

	if options.TilePadding, err = lookupFloat("BOARD_TILE_PADDING", options.TilePadding); err != nil {
		return options, err
	}

	if tileSizeStr, ok := os.LookupEnv("BOARD_TILE_SIZE"); ok {
		if options.TileSize, err = ParseTileSize(tileSizeStr); err != nil {
			return options, fmt.Errorf("unable to parse BOARD_TILE_SIZE env variable: %w", err)
		}
	}

	if err := options.Validate(); err != nil {
		return options, err
	}
	return options, nil
}

// ParseSeed reads a "SEED1:SEED2" PCG seed pair.
func ParseSeed(s string) (seed [2]uint64, err error) {
	n, err := fmt.Sscanf(strings.ReplaceAll(s, ":", " "), "%d %d", &seed[0], &seed[1])
	if n != 2 || err != nil {
		return seed, fmt.Errorf(`invalid seed (seed = "%s", n = %d, err = %w)`, s, n, err)
	}
	return seed, nil
}

// Seed returns the BOARD_SEED pair, or a random one when it is unset.
func Seed() ([2]uint64, error) {
	if seedStr, ok := os.LookupEnv("BOARD_SEED"); ok {
		return ParseSeed(seedStr)
	}
	return RandomSeed(), nil
}

func RandomSeed() [2]uint64 {
	return [2]uint64{new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64()}
}
