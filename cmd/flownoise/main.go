package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/esimov/flownoise"
	"github.com/esimov/flownoise/utils"
)

// maxRandomSeed bounds seeds picked by -random.
const maxRandomSeed = 65536

var (
	// Flags
	seed        = flag.Float64("seed", 0, "Noise seed")
	random      = flag.Bool("random", false, "Pick a random seed (printed to stderr) instead of -seed")
	backend     = flag.String("backend", "gradient", "Noise backend: gradient, simplex, perlin")
	mode        = flag.String("mode", "point", "Mode: point, grid, stats")
	posX        = flag.Float64("x", 0, "X coordinate (point mode)")
	posY        = flag.Float64("y", 0, "Y coordinate (point mode)")
	posZ        = flag.Float64("z", 0, "Z coordinate or time slice")
	use3D       = flag.Bool("3d", false, "Sample the 3D field at depth z")
	width       = flag.Int("w", 64, "Grid width")
	height      = flag.Int("h", 64, "Grid height")
	frequency   = flag.Float64("freq", 0.05, "Coordinate scale applied before sampling")
	octaves     = flag.Int("octaves", 1, "Number of fractal octaves")
	lacunarity  = flag.Float64("lacunarity", 2, "Frequency multiplier between octaves")
	persistence = flag.Float64("persistence", 0.5, "Amplitude multiplier between octaves")
	format      = flag.String("format", "csv", "Grid output format: csv, json")
	destination = flag.String("out", "", "Destination file (default: stdout)")
)

// gridOutput is the JSON representation of a sampled grid.
type gridOutput struct {
	Seed    float64   `json:"seed"`
	Backend string    `json:"backend"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Scale   float64   `json:"scale"`
	Values  []float64 `json:"values"`
}

// job holds everything needed to produce one output.
type job struct {
	seed    float64
	backend flownoise.Backend
	field   flownoise.Field
	mode    string
	format  string
	x, y, z float64
	use3D   bool
	grid    flownoise.Grid
}

func main() {
	flag.Parse()

	b, err := flownoise.ParseBackend(*backend)
	if err != nil {
		log.Fatalf("Invalid backend: %v", err)
	}

	if *random {
		*seed = randomSeed(rand.New(rand.NewSource(time.Now().UnixNano())), os.Stderr)
	}

	field, err := flownoise.NewField(b, *seed)
	if err != nil {
		log.Fatalf("Unable to create noise field: %v", err)
	}
	if *octaves > 1 {
		field, err = flownoise.NewFractalField(field, flownoise.FractalOptions{
			Octaves:     *octaves,
			Frequency:   1,
			Lacunarity:  *lacunarity,
			Persistence: *persistence,
		})
		if err != nil {
			log.Fatalf("Invalid fractal options: %v", err)
		}
	}

	j := job{
		seed:    *seed,
		backend: b,
		field:   field,
		mode:    *mode,
		format:  *format,
		x:       *posX,
		y:       *posY,
		z:       *posZ,
		use3D:   *use3D,
		grid: flownoise.Grid{
			Width:  *width,
			Height: *height,
			Scale:  *frequency,
			Z:      *posZ,
			Use3D:  *use3D,
		},
	}

	if *destination == "" {
		if err := run(os.Stdout, j); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := runToFile(*destination, j); err != nil {
		log.Fatal(err)
	}
}

// randomSeed picks a seed in [0, 65536) and reports it on w so the run can be repeated.
func randomSeed(r *rand.Rand, w io.Writer) float64 {
	s := r.Float64() * maxRandomSeed
	fmt.Fprintf(w, "Using random seed: %s\n", strconv.FormatFloat(s, 'g', -1, 64))
	return s
}

// runToFile writes the job output to path. The file is always closed,
// and a failed close is reported when the job itself succeeded.
func runToFile(path string, j job) (err error) {
	fq, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create destination file: %w", err)
	}
	defer func() {
		if cerr := fq.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close destination file: %w", cerr)
		}
	}()
	return run(fq, j)
}

func run(out io.Writer, j job) error {
	switch j.mode {
	case "point":
		var v float64
		if j.use3D {
			v = j.field.Noise3D(j.x, j.y, j.z)
		} else {
			v = j.field.Noise2D(j.x, j.y)
		}
		_, err := fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
		return err
	case "grid":
		values, err := sample(j.field, j.grid)
		if err != nil {
			return err
		}
		if err := writeGrid(out, j.format, j.seed, j.backend, j.grid, values); err != nil {
			return fmt.Errorf("unable to write grid: %w", err)
		}
		return nil
	case "stats":
		values, err := sample(j.field, j.grid)
		if err != nil {
			return err
		}
		s := flownoise.Summarize(values)
		_, err = fmt.Fprintf(out, "seed=%g backend=%s samples=%d min=%.6f max=%.6f mean=%.6f\n",
			j.seed, j.backend, s.Count, s.Min, s.Max, s.Mean)
		return err
	}
	return fmt.Errorf("unknown mode %q (available: point, grid, stats)", j.mode)
}

// sample evaluates the grid while showing a spinner and reports the elapsed time on stderr.
func sample(field flownoise.Field, grid flownoise.Grid) ([]float64, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	s := utils.NewSpinner()
	s.Start("Sampling noise field...")
	start := time.Now()
	values, err := flownoise.SampleGrid(field, grid)
	s.Stop()

	if err != nil {
		return nil, fmt.Errorf("error sampling grid: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Sampled %s in %s\n",
		utils.Colorize(os.Stderr, utils.SuccessColor, fmt.Sprintf("%dx%d", grid.Width, grid.Height)),
		utils.FormatTime(time.Since(start)),
	)
	return values, nil
}

func writeGrid(w io.Writer, format string, seed float64, b flownoise.Backend, grid flownoise.Grid, values []float64) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(gridOutput{
			Seed:    seed,
			Backend: b.String(),
			Width:   grid.Width,
			Height:  grid.Height,
			Scale:   grid.Scale,
			Values:  values,
		})
	case "csv":
		cw := csv.NewWriter(w)
		record := make([]string, grid.Width)
		for j := 0; j < grid.Height; j++ {
			for i := range record {
				record[i] = strconv.FormatFloat(values[j*grid.Width+i], 'f', 6, 64)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("unknown format %q (available: csv, json)", format)
}
