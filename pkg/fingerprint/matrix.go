package fingerprint

import (
	"fmt"
	"strings"
)

// BinaryMatrix is a dense row-major matrix of 0/1 bits. Matrices returned
// by this package are never modified after they are returned.
type BinaryMatrix struct {
	rows, cols int
	data       []uint8
}

func newBinaryMatrix(rows, cols int) *BinaryMatrix {
	return &BinaryMatrix{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// ParseBinaryMatrix builds a matrix from rows of '0' and '1' characters,
// the format produced by Strings. All rows must have the same length.
func ParseBinaryMatrix(rows []string) (*BinaryMatrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := newBinaryMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("fingerprint: row %d has %d bits, want %d", i, len(r), cols)
		}
		for j := 0; j < cols; j++ {
			switch r[j] {
			case '0':
			case '1':
				m.set(i, j)
			default:
				return nil, fmt.Errorf("fingerprint: row %d col %d: invalid bit %q", i, j, r[j])
			}
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *BinaryMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *BinaryMatrix) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *BinaryMatrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the bit at row i, column j.
func (m *BinaryMatrix) At(i, j int) uint8 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("fingerprint: index (%d, %d) out of range [%d, %d]", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i.
func (m *BinaryMatrix) Row(i int) []uint8 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("fingerprint: row %d out of range [0, %d)", i, m.rows))
	}
	return append([]uint8(nil), m.data[i*m.cols:(i+1)*m.cols]...)
}

// Ones returns the number of set bits.
func (m *BinaryMatrix) Ones() int {
	n := 0
	for _, b := range m.data {
		n += int(b)
	}
	return n
}

// Equal reports whether m and o have the same shape and bits.
func (m *BinaryMatrix) Equal(o *BinaryMatrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, b := range m.data {
		if o.data[i] != b {
			return false
		}
	}
	return true
}

// HammingDistance returns the number of positions where m and o differ.
// Both matrices must have the same shape.
func (m *BinaryMatrix) HammingDistance(o *BinaryMatrix) int {
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("fingerprint: shape mismatch %dx%d vs %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	n := 0
	for i, b := range m.data {
		if o.data[i] != b {
			n++
		}
	}
	return n
}

// Strings returns each row as a string of '0' and '1' characters.
func (m *BinaryMatrix) Strings() []string {
	out := make([]string, m.rows)
	var sb strings.Builder
	for i := range out {
		sb.Reset()
		sb.Grow(m.cols)
		for _, b := range m.data[i*m.cols : (i+1)*m.cols] {
			sb.WriteByte('0' + b)
		}
		out[i] = sb.String()
	}
	return out
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *BinaryMatrix) Transpose() *BinaryMatrix {
	t := newBinaryMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

func (m *BinaryMatrix) set(i, j int) {
	m.data[i*m.cols+j] = 1
}
