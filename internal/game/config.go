package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/world"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables that override the embedded settings.
const (
	EnvSeed   = "GRIDSNAKE_SEED"
	EnvWidth  = "GRIDSNAKE_WIDTH"
	EnvHeight = "GRIDSNAKE_HEIGHT"
	EnvTickMs = "GRIDSNAKE_TICK_MS"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height  int
	StartX, StartY int
	StartDirection entity.Direction

	// TickInterval is the minimum time between simulation ticks.
	TickInterval time.Duration
	// FrameInterval is how often the frame source fires.
	FrameInterval time.Duration

	FoodMinDistSq   int
	FoodMaxAttempts int
}

// DefaultConfig builds a config from the embedded settings.
func DefaultConfig() (Config, error) {
	s, err := gamedata.LoadSettings()
	if err != nil {
		return Config{}, err
	}
	return FromSettings(s)
}

// FromSettings converts loaded settings into a config.
func FromSettings(s gamedata.Settings) (Config, error) {
	dir, ok := entity.ParseDirection(s.Start.Direction)
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown start direction %q", ErrInvalidConfig, s.Start.Direction)
	}

	return Config{
		Width:           s.Width,
		Height:          s.Height,
		StartX:          s.Start.X,
		StartY:          s.Start.Y,
		StartDirection:  dir,
		TickInterval:    time.Duration(s.TickIntervalMs) * time.Millisecond,
		FrameInterval:   time.Duration(s.FrameIntervalMs) * time.Millisecond,
		FoodMinDistSq:   s.FoodMinDistanceSq,
		FoodMaxAttempts: s.FoodMaxAttempts,
	}, nil
}

// ApplyEnv overrides fields from environment variables.
// lookup has the signature of os.LookupEnv.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
	}
	for _, f := range ints {
		v, ok := lookup(f.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvTickMs); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvTickMs, err)
		}
		c.TickInterval = time.Duration(ms) * time.Millisecond
	}

	return c, nil
}

// Validate checks that the start snake fits on the board and timings are usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TickInterval <= 0 || c.FrameInterval <= 0 {
		return fmt.Errorf("%w: tick %v, frame %v", ErrInvalidConfig, c.TickInterval, c.FrameInterval)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: start direction %d", ErrInvalidConfig, c.StartDirection)
	}

	grid := world.NewGrid(c.Width, c.Height)
	dx, dy := c.StartDirection.Vector()
	for i := 0; i < entity.InitialLength; i++ {
		x, y := c.StartX-dx*i, c.StartY-dy*i
		if !grid.InBounds(x, y) {
			return fmt.Errorf("%w: start snake segment (%d,%d) off a %dx%d board",
				ErrInvalidConfig, x, y, c.Width, c.Height)
		}
	}

	return nil
}
