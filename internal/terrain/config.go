package terrain

import (
	"errors"
	"fmt"
)

// Configuration validation errors.
var (
	ErrZeroSize   = errors.New("terrain: domain size must be positive")
	ErrBadRadius  = errors.New("terrain: separation radius must be positive")
	ErrBadCities  = errors.New("terrain: city count must be non-negative")
	ErrBadRegions = errors.New("terrain: region count must be non-negative")
)

// Config holds the terrain generation parameters. It is copied into the
// pipeline and never mutated during generation.
type Config struct {
	SizeX, SizeY float64 // Domain size in world units
	Seed         int64   // Seed for the generation random stream
	Radius       float64 // Target minimum point separation
	NumCities    int     // Number of cities to place
	NumRegions   int     // Number of regions (reserved; growth uses all cities)
}

// DefaultConfig returns the configuration the interactive shell starts with:
// a 1000×1000 domain at radius 10 with 5 cities.
func DefaultConfig() Config {
	return Config{
		SizeX:      1000,
		SizeY:      1000,
		Seed:       0,
		Radius:     10,
		NumCities:  5,
		NumRegions: 5,
	}
}

// Validate rejects configurations the pipeline cannot generate from. The
// engine does not attempt partial generation or silent clamping.
func (c Config) Validate() error {
	if c.SizeX <= 0 || c.SizeY <= 0 {
		return fmt.Errorf("%w: got %gx%g", ErrZeroSize, c.SizeX, c.SizeY)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: got %g", ErrBadRadius, c.Radius)
	}
	if c.NumCities < 0 {
		return fmt.Errorf("%w: got %d", ErrBadCities, c.NumCities)
	}
	if c.NumRegions < 0 {
		return fmt.Errorf("%w: got %d", ErrBadRegions, c.NumRegions)
	}
	return nil
}
