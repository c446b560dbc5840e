package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"gonum.org/v1/gonum/floats"
)

// Biome is the derived climate classification of a vertex.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeRiver
	BiomeMountain
	BiomeTundra
	BiomeDesert
	BiomeSwamp
	BiomeForest
	BiomePlains
)

// riverFlux is the flux threshold above which a land vertex reads as river.
const riverFlux = 0.02

// Climate holds derived per-vertex climate data, index-aligned with the
// graph vertices. It is read-only decoration for consumers and never feeds
// back into generation.
type Climate struct {
	// Moisture in [0, 1] per vertex.
	Moisture []float64
	// Temperature in [0, 1] per vertex.
	Temperature []float64
	// Biome classification per vertex.
	Biome []Biome
}

// GenerateClimate derives moisture, temperature, and biome per vertex from
// layered simplex noise combined with the frozen elevation and flux data.
// The noise layers are seeded from the terrain seed, so classification is
// deterministic per configuration.
func GenerateClimate(graph *Graph, data *Data, seed int64) *Climate {
	moistNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	n := len(graph.Vertices)

	moisture := make([]float64, n)
	temperature := make([]float64, n)
	biome := make([]Biome, n)

	// Scale of one noise feature relative to world units.
	const moistFreq = 0.004
	const tempFreq = 0.003

	peak := floats.Max(data.Elevation)
	if peak <= 0 {
		peak = 1 // all-ocean terrain; relative elevation is moot
	}

	var maxY float64
	for _, v := range graph.Vertices {
		maxY = math.Max(maxY, math.Abs(v.Y))
	}
	if maxY == 0 {
		maxY = 1
	}

	for i, v := range graph.Vertices {
		moist := octaveNoise(moistNoise, v.X, v.Y, 3, moistFreq, 0.5)

		relElev := math.Max(data.Elevation[i], 0) / peak

		// Temperature falls with latitude and with elevation.
		temp := octaveNoise(tempNoise, v.X, v.Y, 3, tempFreq, 0.5)
		temp = temp*0.6 + (1-math.Abs(v.Y)/maxY)*0.3 + (1-relElev)*0.1

		moisture[i] = moist
		temperature[i] = temp
		biome[i] = classifyBiome(data.Elevation[i], relElev, data.Flux[i], moist, temp)
	}

	return &Climate{
		Moisture:    moisture,
		Temperature: temperature,
		Biome:       biome,
	}
}

// classifyBiome derives a biome from the environmental parameters.
func classifyBiome(elevation, relElev, flux, moisture, temperature float64) Biome {
	if elevation <= 0 {
		return BiomeOcean
	}
	if flux >= riverFlux {
		return BiomeRiver
	}
	if relElev > 0.8 {
		return BiomeMountain
	}
	if temperature < 0.25 {
		return BiomeTundra
	}
	if moisture < 0.25 && temperature > 0.5 {
		return BiomeDesert
	}
	if moisture > 0.7 && relElev < 0.3 {
		return BiomeSwamp
	}
	if moisture > 0.45 {
		return BiomeForest
	}
	return BiomePlains
}

// octaveNoise layers multiple noise frequencies into fractal noise in [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// BiomeName returns a human-readable name for a biome.
func BiomeName(b Biome) string {
	switch b {
	case BiomeOcean:
		return "Ocean"
	case BiomeRiver:
		return "River"
	case BiomeMountain:
		return "Mountain"
	case BiomeTundra:
		return "Tundra"
	case BiomeDesert:
		return "Desert"
	case BiomeSwamp:
		return "Swamp"
	case BiomeForest:
		return "Forest"
	case BiomePlains:
		return "Plains"
	default:
		return "Unknown"
	}
}

// BiomeCounts returns the biome distribution of a climate.
func BiomeCounts(c *Climate) map[Biome]int {
	counts := make(map[Biome]int)
	for _, b := range c.Biome {
		counts[b]++
	}
	return counts
}
