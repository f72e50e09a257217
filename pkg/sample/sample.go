// Package sample abstracts experimental transport data into structured
// objects loaded from CSV files.
package sample

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"semitransport/pkg/analysis"
)

// measurement is one CSV row: a temperature and the value measured at it.
type measurement struct {
	Temperature float64 `csv:"temperature"`
	Value       float64 `csv:"value"`
}

/*
Sample is the experimental transport data of a single sample.

    Attributes:
        Name: a unique identifier for this sample
        ConductivityT, Conductivity: the conductivity data, temperature (K)
            against conductivity (S/m), sorted by temperature
        SeebeckT, Seebeck: the Seebeck data, temperature (K) against
            Seebeck coefficient (V/K), sorted by temperature
        CarrierDensity: the carrier density (1/m^3), zero when unknown
*/
type Sample struct {
	Name           string
	ConductivityT  []float64
	Conductivity   []float64
	SeebeckT       []float64
	Seebeck        []float64
	CarrierDensity float64
}

/*
FromCSV loads conductivity and Seebeck data for one sample. The data files
must be named according to the following scheme --
name_conductivity.csv / name_seebeck.csv -- and carry the header
"temperature,value".

    Args:
        name: sample name, the same for both files
        path: path to the data files, both files should be in the same path
        carrier_density: the carrier density in 1/m^3 if known, else zero

    Returns:
        the loaded sample, with both data sets sorted by temperature
*/
func FromCSV(name, path string, carrier_density float64) (*Sample, error) {
	condT, cond, err := readMeasurements(filepath.Join(path, name+"_conductivity.csv"))
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", name, err)
	}
	seebT, seeb, err := readMeasurements(filepath.Join(path, name+"_seebeck.csv"))
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", name, err)
	}

	s := &Sample{
		Name:           name,
		ConductivityT:  condT,
		Conductivity:   cond,
		SeebeckT:       seebT,
		Seebeck:        seeb,
		CarrierDensity: carrier_density,
	}
	sortByTemperature(s.ConductivityT, s.Conductivity)
	sortByTemperature(s.SeebeckT, s.Seebeck)
	return s, nil
}

func readMeasurements(path string) ([]float64, []float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var rows []*measurement
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: no data rows", path)
	}

	temperatures := make([]float64, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		temperatures[i] = row.Temperature
		values[i] = row.Value
	}
	return temperatures, values, nil
}

func sortByTemperature(temperatures, values []float64) {
	idx := make([]int, len(temperatures))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return temperatures[idx[a]] < temperatures[idx[b]] })

	ts := make([]float64, len(temperatures))
	vs := make([]float64, len(values))
	for i, j := range idx {
		ts[i] = temperatures[j]
		vs[i] = values[j]
	}
	copy(temperatures, ts)
	copy(values, vs)
}

// TemperatureWindow returns the overlapping temperature range of the
// conductivity and Seebeck data sets.
func (s *Sample) TemperatureWindow() (float64, float64, error) {
	t_min := math.Max(floats.Min(s.ConductivityT), floats.Min(s.SeebeckT))
	t_max := math.Min(floats.Max(s.ConductivityT), floats.Max(s.SeebeckT))
	if t_min > t_max {
		return 0, 0, fmt.Errorf("sample %s: conductivity and Seebeck temperatures do not overlap", s.Name)
	}
	return t_min, t_max, nil
}

/*
InterpolatedData linearly interpolates conductivity and Seebeck onto
shared temperatures in the temperature window.

    Args:
        n_temperatures: number of temperatures to interpolate at

    Returns:
        arrays of temperature (K), Seebeck (V/K), and conductivity (S/m)
*/
func (s *Sample) InterpolatedData(n_temperatures int) ([]float64, []float64, []float64, error) {
	if n_temperatures < 2 {
		return nil, nil, nil, fmt.Errorf("sample %s: need at least two interpolation points, got %d",
			s.Name, n_temperatures)
	}
	t_min, t_max, err := s.TemperatureWindow()
	if err != nil {
		return nil, nil, nil, err
	}

	var seeb, cond interp.PiecewiseLinear
	if err := seeb.Fit(s.SeebeckT, s.Seebeck); err != nil {
		return nil, nil, nil, fmt.Errorf("sample %s: fitting Seebeck data: %w", s.Name, err)
	}
	if err := cond.Fit(s.ConductivityT, s.Conductivity); err != nil {
		return nil, nil, nil, fmt.Errorf("sample %s: fitting conductivity data: %w", s.Name, err)
	}

	temperatures := make([]float64, n_temperatures)
	floats.Span(temperatures, t_min, t_max)

	seebecks := make([]float64, n_temperatures)
	conductivities := make([]float64, n_temperatures)
	for i, temp := range temperatures {
		seebecks[i] = seeb.Predict(temp)
		conductivities[i] = cond.Predict(temp)
	}
	return temperatures, seebecks, conductivities, nil
}

/*
ExtractTransportCoefficients runs a temperature analysis on the sample by
extracting the transport function versus temperature from interpolated
data. When the carrier density is known the effective mass is extracted as
well.

    Args:
        n_temperatures: number of temperatures to analyze
        s: the transport exponent (specifies mechanism), unitless

    Returns:
        arrays of temperatures (K), transport function prefactors (S/m),
        and effective masses in electron masses (nil without a known
        carrier density)
*/
func (s *Sample) ExtractTransportCoefficients(n_temperatures int, exponent float64) ([]float64, []float64, []float64, error) {
	temperatures, seebecks, conductivities, err := s.InterpolatedData(n_temperatures)
	if err != nil {
		return nil, nil, nil, err
	}

	trans_funcs, err := analysis.TemperatureAnalysis(seebecks, conductivities, temperatures, exponent)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("sample %s: %w", s.Name, err)
	}

	var masses []float64
	if s.CarrierDensity > 0 {
		masses = make([]float64, len(temperatures))
		for i := range temperatures {
			masses[i], err = analysis.ExtractEffectiveMass(seebecks[i], s.CarrierDensity, temperatures[i])
			if err != nil {
				return nil, nil, nil, fmt.Errorf("sample %s: %w", s.Name, err)
			}
		}
	}
	return temperatures, trans_funcs, masses, nil
}

// Series contains multiple samples, typically the same base material with
// different doping concentrations.
type Series struct {
	Samples []*Sample
}

/*
SeriesFromPath loads a series of sample data in path. The data files must
be named according to the following scheme --
name_conductivity.csv / name_seebeck.csv.

    Args:
        path: path to the data files

    Returns:
        the series, samples ordered by name
*/
func SeriesFromPath(path string) (*Series, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		name := strings.SplitN(entry.Name(), "_", 2)[0]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	series := &Series{}
	for _, name := range names {
		s, err := FromCSV(name, path, 0)
		if err != nil {
			return nil, err
		}
		series.Samples = append(series.Samples, s)
	}
	return series, nil
}

/*
JonkerAnalysis interpolates every sample of the series at one temperature
and extracts the transport function across the doping series.

    Args:
        temperature: the absolute temperature, K; must lie inside every
            sample's temperature window
        s: assumption of the transport exponent (mechanism), unitless

    Returns:
        the average, minimum, and maximum transport function prefactor
        sigma_E_0 over the samples, S/m
*/
func (ser *Series) JonkerAnalysis(temperature, s float64) (float64, float64, float64, error) {
	if len(ser.Samples) == 0 {
		return 0, 0, 0, fmt.Errorf("jonker analysis: series has no samples")
	}

	seebecks := make([]float64, len(ser.Samples))
	conductivities := make([]float64, len(ser.Samples))
	for i, smp := range ser.Samples {
		t_min, t_max, err := smp.TemperatureWindow()
		if err != nil {
			return 0, 0, 0, err
		}
		if temperature < t_min || temperature > t_max {
			return 0, 0, 0, fmt.Errorf("sample %s: %v K outside measured window [%v, %v]",
				smp.Name, temperature, t_min, t_max)
		}

		var seeb, cond interp.PiecewiseLinear
		if err := seeb.Fit(smp.SeebeckT, smp.Seebeck); err != nil {
			return 0, 0, 0, fmt.Errorf("sample %s: %w", smp.Name, err)
		}
		if err := cond.Fit(smp.ConductivityT, smp.Conductivity); err != nil {
			return 0, 0, 0, fmt.Errorf("sample %s: %w", smp.Name, err)
		}
		seebecks[i] = seeb.Predict(temperature)
		conductivities[i] = cond.Predict(temperature)
	}
	return analysis.JonkerAnalysis(seebecks, conductivities, temperature, s)
}
