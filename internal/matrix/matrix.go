// Package matrix provides the small fixed-shape dense matrices the
// control stack embeds in its configuration files, together with the
// bracketed string grammar they are serialized in.
//
// The grammar is a compatibility surface: existing configuration files
// embed matrices as bracketed, comma-separated, row-major literals, so
// Parse and Dense.String must agree with those files character for
// character.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quadkit/ctrlkit/internal/numeric"
)

// Dense is a small fixed-shape matrix backed by a row-major slice.
// The zero Dense is not usable; construct with New or Parse.
type Dense struct {
	rows, cols int
	data       []float64
}

// New creates a zero-filled rows x cols matrix.
// Panics if rows or cols is not positive.
func New(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid shape %dx%d", rows, cols))
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", i, m.rows))
	}
	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// Equal reports exact element-wise equality. Matrices of different
// shape are never equal.
func (m *Dense) Equal(o *Dense) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	return numeric.SlicesEqual(m.data, o.data)
}

// ApplyDeadband zeroes, in place, every element whose magnitude is
// strictly below band.
func (m *Dense) ApplyDeadband(band float64) {
	for i, v := range m.data {
		m.data[i] = numeric.Deadband(v, band)
	}
}

// String renders the matrix in the bracketed row-major literal grammar,
// with elements in their shortest round-trip representation. The result
// parses back to an equal matrix via Parse.
func (m *Dense) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range m.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

func (m *Dense) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

// CheckShape reports whether arr has exactly rows outer elements and
// every inner slice has exactly cols elements. Any mismatch, including
// a single ragged row, yields false.
func CheckShape[T any](arr [][]T, rows, cols int) bool {
	if len(arr) != rows {
		return false
	}
	for i := 0; i < rows; i++ {
		if len(arr[i]) != cols {
			return false
		}
	}
	return true
}
