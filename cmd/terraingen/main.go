// Command terraingen generates a terrain and prints a summary of the result.
// It is the non-interactive stand-in for the visualization shell: it supplies
// a configuration, invokes the pipeline, and reads the result structures
// without ever writing into them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/seep/terrain/internal/regions"
	"github.com/seep/terrain/internal/terrain"
)

func main() {
	var (
		width   = flag.Float64("width", 1000, "domain width in world units")
		height  = flag.Float64("height", 1000, "domain height in world units")
		seed    = flag.Int64("seed", 0, "generation seed (0 = random)")
		radius  = flag.Float64("radius", 10, "minimum point separation")
		cities  = flag.Int("cities", 5, "number of cities to place")
		nregion = flag.Int("regions", 5, "number of regions (reserved)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *seed == 0 {
		*seed = rand.Int63()
	}

	config := terrain.Config{
		SizeX:      *width,
		SizeY:      *height,
		Seed:       *seed,
		Radius:     *radius,
		NumCities:  *cities,
		NumRegions: *nregion,
	}

	runID := uuid.New()
	slog.Info("generating terrain", "run", runID, "seed", config.Seed,
		"size", fmt.Sprintf("%gx%g", config.SizeX, config.SizeY),
		"radius", config.Radius)

	start := time.Now()

	t, err := terrain.Generate(config)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	r := regions.New(t)

	elapsed := time.Since(start)

	slog.Info("terrain generated",
		"points", humanize.Comma(int64(len(t.Graph.Points))),
		"vertices", humanize.Comma(int64(len(t.Graph.Vertices))),
		"edges", humanize.Comma(int64(len(t.Graph.Edges))),
		"cones", len(t.Features.Cones),
		"slopes", len(t.Features.Slopes),
		"elapsed", elapsed,
	)

	for biome, count := range terrain.BiomeCounts(t.Climate) {
		slog.Info("biome", "type", terrain.BiomeName(biome), "count", count)
	}

	for i, city := range r.Cities {
		p := t.Graph.Vertices[city]
		slog.Info("city placed", "index", i, "vertex", city,
			"x", fmt.Sprintf("%.1f", p.X), "y", fmt.Sprintf("%.1f", p.Y),
			"habitability", fmt.Sprintf("%.3f", r.Habitability[city]),
		)
	}

	assigned := 0
	for _, c := range r.NearestCity {
		if c != regions.Unassigned {
			assigned++
		}
	}
	slog.Info("regions grown",
		"assigned", humanize.Comma(int64(assigned)),
		"total", humanize.Comma(int64(len(r.NearestCity))),
	)

	fmt.Printf("generated terrain with %s points in %s\n",
		humanize.Comma(int64(len(t.Graph.Points))), elapsed.Round(time.Microsecond))
}
