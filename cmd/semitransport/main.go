package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"semitransport/pkg/analysis"
	"semitransport/pkg/sample"
)

type jonkerRow struct {
	ReducedChemicalPotential float64 `csv:"cp"`
	Conductivity             float64 `csv:"conductivity"`
	Seebeck                  float64 `csv:"seebeck"`
}

type temperatureRow struct {
	Sample        string  `csv:"sample"`
	Temperature   float64 `csv:"temperature"`
	SigmaE0       float64 `csv:"sigma_E_0"`
	EffectiveMass float64 `csv:"effective_mass"`
}

/*
Analysis driver.

    Args:
        data_dir: path to the sample CSV files
            (<name>_conductivity.csv / <name>_seebeck.csv)
        output_data_dir: path to the output folder
        mode: "jonker" or "temperature"
        s: the transport exponent (mechanism assumption)
        temperature: analysis temperature for the jonker mode, K
        n_points: interpolation points (temperature mode) or curve points
            (jonker mode)
*/
func run(
	data_dir string,
	output_data_dir string,
	mode string,
	s float64,
	temperature float64,
	n_points int,
) {
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	log.Printf("loading sample data from `%s`", data_dir)
	series, err := sample.SeriesFromPath(data_dir)
	if err != nil {
		log.Fatal(err)
	}
	if len(series.Samples) == 0 {
		log.Fatalf("no sample CSV files found in `%s`", data_dir)
	}
	log.Printf("loaded %d samples", len(series.Samples))

	switch mode {
	case "jonker":
		runJonker(series, output_data_dir, s, temperature, n_points)
	case "temperature":
		runTemperature(series, output_data_dir, s, n_points)
	default:
		log.Fatalf("unknown mode `%s`, want jonker or temperature", mode)
	}
}

func runJonker(series *sample.Series, output_data_dir string, s, temperature float64, n_points int) {
	mean, min, max, err := series.JonkerAnalysis(temperature, s)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("sigma_E_0 at %v K: mean %.4g S/m, min %.4g S/m, max %.4g S/m",
		temperature, mean, min, max)

	// model locus for the mean prefactor, for plotting against the series
	cps := make([]float64, n_points)
	floats.Span(cps, -5.0, 10.0)
	conductivities, seebecks, err := analysis.JonkerCurve(s, mean, cps)
	if err != nil {
		log.Fatal(err)
	}

	rows := make([]*jonkerRow, n_points)
	for i := range rows {
		rows[i] = &jonkerRow{
			ReducedChemicalPotential: cps[i],
			Conductivity:             conductivities[i],
			Seebeck:                  seebecks[i],
		}
	}
	writeCSV(filepath.Join(output_data_dir, "jonker_curve.csv"), &rows)
}

func runTemperature(series *sample.Series, output_data_dir string, s float64, n_points int) {
	var rows []*temperatureRow
	for _, smp := range series.Samples {
		temperatures, trans_funcs, masses, err := smp.ExtractTransportCoefficients(n_points, s)
		if err != nil {
			log.Fatal(err)
		}
		for i := range temperatures {
			row := &temperatureRow{
				Sample:      smp.Name,
				Temperature: temperatures[i],
				SigmaE0:     trans_funcs[i],
			}
			if masses != nil {
				row.EffectiveMass = masses[i]
			}
			rows = append(rows, row)
		}
	}
	writeCSV(filepath.Join(output_data_dir, "transport_functions.csv"), &rows)
}

func writeCSV(path string, rows interface{}) {
	log.Printf("save analysis results to `%s`", path)
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var data_dir string
	flag.StringVar(&data_dir, "data", ".", "path to the sample data files")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "path to the output folder")

	var mode string
	flag.StringVar(&mode, "mode", "temperature", "analysis mode, jonker or temperature")

	var s float64
	flag.Float64Var(&s, "s", 1.0, "transport exponent, 1 for non-polar phonon limited band transport")

	var temperature float64
	flag.Float64Var(&temperature, "temperature", 300.0, "analysis temperature for the jonker mode, K")

	var n_points int
	flag.IntVar(&n_points, "points", 15, "number of interpolation or curve points")

	flag.Parse()

	start := time.Now()

	run(data_dir, output_data_dir, mode, s, temperature, n_points)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v", elapsedTime)
}
