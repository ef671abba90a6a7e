package smarts

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Spectrum is the decoded spectral result table: one row per wavelength (or
// computed point), one column per requested output quantity. Column names are
// the engine's header fields, verbatim and in order; the first column is the
// wavelength in nm.
type Spectrum struct {
	Columns []string
	Values  [][]float64 // row-major, len(Values[i]) == len(Columns)
}

// ReadSpectrum decodes the engine's spectral output file. An absent file
// means the engine produced no output (crash or misconfiguration) and yields
// ErrNoOutput.
func ReadSpectrum(path string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoOutput, path, err)
	}
	defer f.Close()
	return DecodeSpectrum(f)
}

// DecodeSpectrum parses a whitespace-delimited numeric table with a header
// row naming each column.
func DecodeSpectrum(r io.Reader) (*Spectrum, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty output", ErrNoOutput)
	}
	columns := strings.Fields(scanner.Text())
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: blank header", ErrNoOutput)
	}

	var values [][]float64
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrNoOutput, len(values)+1, len(fields), len(columns))
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q is not numeric",
					ErrNoOutput, len(values)+1, field)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoOutput, err)
	}

	return &Spectrum{Columns: columns, Values: values}, nil
}

// Rows returns the number of data rows.
func (sp *Spectrum) Rows() int {
	return len(sp.Values)
}

// Wavelength returns the first column.
func (sp *Spectrum) Wavelength() []float64 {
	return sp.column(0)
}

// Column returns the named column.
func (sp *Spectrum) Column(name string) ([]float64, error) {
	for i, col := range sp.Columns {
		if col == name {
			return sp.column(i), nil
		}
	}
	return nil, fmt.Errorf("smarts: no column %q (have %v)", name, sp.Columns)
}

func (sp *Spectrum) column(i int) []float64 {
	out := make([]float64, len(sp.Values))
	for r, row := range sp.Values {
		out[r] = row[i]
	}
	return out
}

// Integrate returns the trapezoidal integral of the named column over
// wavelength, e.g. a broadband irradiance in W/m2 from a spectral one in
// W/m2/nm.
func (sp *Spectrum) Integrate(name string) (float64, error) {
	col, err := sp.Column(name)
	if err != nil {
		return 0, err
	}
	if len(col) < 2 {
		return 0, fmt.Errorf("smarts: cannot integrate %q over %d points", name, len(col))
	}
	return integrate.Trapezoidal(sp.Wavelength(), col), nil
}

// Mean returns the unweighted mean of the named column, e.g. an average
// spectral albedo.
func (sp *Spectrum) Mean(name string) (float64, error) {
	col, err := sp.Column(name)
	if err != nil {
		return 0, err
	}
	if len(col) == 0 {
		return 0, fmt.Errorf("smarts: cannot average empty column %q", name)
	}
	return stat.Mean(col, nil), nil
}

// ToCSV writes the table as CSV with the engine's column names as header.
func (sp *Spectrum) ToCSV(buf *bytes.Buffer) {
	buf.WriteString(strings.Join(sp.Columns, ","))
	buf.WriteString("\n")
	for _, row := range sp.Values {
		for i, v := range row {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		buf.WriteString("\n")
	}
}
