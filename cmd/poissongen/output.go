package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/poisson"
	"github.com/pthm-cable/poisson/vec"
)

// sampleRecord is one CSV row. Components beyond the run's dimension stay
// zero; the radius column makes files self-describing.
type sampleRecord struct {
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Z      float64 `csv:"z"`
	W      float64 `csv:"w"`
	Radius float64 `csv:"radius"`
}

// writeSamplesCSV writes one run's samples to <dir>/samples_<run>.csv.
func writeSamplesCSV[V vec.Point[V]](dir string, run int, samples []poisson.Sample[V]) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("samples_%03d.csv", run))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	var zero V
	dim := zero.Dim()
	records := make([]*sampleRecord, 0, len(samples))
	for _, s := range samples {
		r := &sampleRecord{Radius: s.Radius}
		r.X = s.Pos.At(0)
		r.Y = s.Pos.At(1)
		if dim > 2 {
			r.Z = s.Pos.At(2)
		}
		if dim > 3 {
			r.W = s.Pos.At(3)
		}
		records = append(records, r)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// printStats prints a nearest-neighbor separation summary. The minimum is the
// tightest pair in the set and must stay >= 2*radius; the mean indicates how
// close the run came to maximal density.
func printStats[V vec.Point[V]](samples []poisson.Sample[V], gen *poisson.Generator[V]) {
	if len(samples) < 2 {
		fmt.Println("  stats: fewer than 2 samples")
		return
	}
	nn := make([]float64, len(samples))
	for i := range samples {
		best := math.MaxFloat64
		for j := range samples {
			if i == j {
				continue
			}
			if d := poisson.SqDist(samples[i].Pos, samples[j].Pos, gen.Periodic()); d < best {
				best = d
			}
		}
		nn[i] = math.Sqrt(best)
	}
	fmt.Printf("  nearest-neighbor separation: min=%.5f max=%.5f mean=%.5f stddev=%.5f (floor %.5f)\n",
		floats.Min(nn), floats.Max(nn), stat.Mean(nn, nil), stat.StdDev(nn, nil), 2*gen.Radius())
}
