package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fixed parameters of a session plus a few runtime-only knobs
// read from the environment. Difficulty fields are never read from the environment.
type Config struct {
	GridSize      int // cells per side
	NumTargets    int // simultaneous targets
	RoundDuration int // seconds
	CellSize      int
	TargetRadius  int
	GridOffsetX   int
	GridOffsetY   int
	ScreenWidth   int
	ScreenHeight  int

	Seed  int64 // 0 means seed from the clock
	Muted bool
	Scale int
}

func Default() Config {
	return Config{
		GridSize:      5,
		NumTargets:    3,
		RoundDuration: 60,
		CellSize:      100,
		TargetRadius:  30,
		GridOffsetX:   150,
		GridOffsetY:   110,
		ScreenWidth:   800,
		ScreenHeight:  660,
		Scale:         1,
	}
}

// Load returns the defaults with WHACK_SEED, WHACK_MUTE and WHACK_SCALE applied.
func Load() Config {
	cfg := Default()
	cfg.Seed = getEnvInt64("WHACK_SEED", 0)
	cfg.Muted = getEnvBool("WHACK_MUTE", false)
	cfg.Scale = getEnvInt("WHACK_SCALE", cfg.Scale)
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg
}

func (c Config) TotalCells() int {
	return c.GridSize * c.GridSize
}

// TargetsMayOverlap reports whether two neighbouring targets can share screen
// space, which makes the index order of hit testing observable.
func (c Config) TargetsMayOverlap() bool {
	return 2*c.TargetRadius > c.CellSize
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 1:
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfig, c.GridSize)
	case c.NumTargets < 1:
		return fmt.Errorf("%w: target count %d must be positive", ErrInvalidConfig, c.NumTargets)
	case c.NumTargets >= c.TotalCells():
		return fmt.Errorf("%w: %d targets need more than %d cells", ErrInvalidConfig, c.NumTargets, c.TotalCells())
	case c.RoundDuration < 1:
		return fmt.Errorf("%w: round duration %ds must be positive", ErrInvalidConfig, c.RoundDuration)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.TargetRadius < 1:
		return fmt.Errorf("%w: target radius %d must be positive", ErrInvalidConfig, c.TargetRadius)
	}
	return nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
