package math

import (
	"fmt"
	"math"
)

// Matrix is a dense matrix with row-major backing storage. Matrices own
// their storage exclusively; every operation returns a new matrix.
type Matrix struct {
	rows, cols int
	values     []float64
}

// NewMatrix creates a zero-filled rows x cols matrix
func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		rows:   rows,
		cols:   cols,
		values: make([]float64, rows*cols),
	}
}

// NewMatrixWithValues creates a matrix from a flat row-major slice,
// deriving the column count. Panics when the value count is not
// divisible by the row count.
func NewMatrixWithValues(rows int, values []float64) Matrix {
	if len(values)%rows != 0 {
		panic(fmt.Sprintf("matrix: %d values are not divisible into %d rows", len(values), rows))
	}
	return Matrix{
		rows:   rows,
		cols:   len(values) / rows,
		values: values,
	}
}

// Identity creates an n x n identity matrix
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1.0)
	}
	return m
}

// Translation creates a 4x4 translation matrix
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling creates a 4x4 scaling matrix
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// RotationX creates a 4x4 rotation around the x axis (right-handed, radians)
func RotationX(rad float64) Matrix {
	m := Identity(4)
	m.Set(1, 1, math.Cos(rad))
	m.Set(1, 2, -math.Sin(rad))
	m.Set(2, 1, math.Sin(rad))
	m.Set(2, 2, math.Cos(rad))
	return m
}

// RotationY creates a 4x4 rotation around the y axis (right-handed, radians)
func RotationY(rad float64) Matrix {
	m := Identity(4)
	m.Set(0, 0, math.Cos(rad))
	m.Set(0, 2, math.Sin(rad))
	m.Set(2, 0, -math.Sin(rad))
	m.Set(2, 2, math.Cos(rad))
	return m
}

// RotationZ creates a 4x4 rotation around the z axis (right-handed, radians)
func RotationZ(rad float64) Matrix {
	m := Identity(4)
	m.Set(0, 0, math.Cos(rad))
	m.Set(0, 1, -math.Sin(rad))
	m.Set(1, 0, math.Sin(rad))
	m.Set(1, 1, math.Cos(rad))
	return m
}

// Shearing creates a 4x4 shear matrix moving each component in
// proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity(4)
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return m
}

// Rows returns the row count
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the column count
func (m Matrix) Cols() int {
	return m.cols
}

// At returns the element at row, col. Out-of-range indices panic.
func (m Matrix) At(row, col int) float64 {
	return m.values[row*m.cols+col]
}

// Set writes the element at row, col. Out-of-range indices panic.
func (m Matrix) Set(row, col int, v float64) {
	m.values[row*m.cols+col] = v
}

// Transpose returns a new matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	values := make([]float64, 0, len(m.values))
	for col := 0; col < m.cols; col++ {
		for row := 0; row < m.rows; row++ {
			values = append(values, m.At(row, col))
		}
	}
	return NewMatrixWithValues(m.cols, values)
}

// Determinant computes the determinant: ad - bc for a 2x2 matrix,
// cofactor expansion along row 0 otherwise. The recursion is O(n!) but
// the kernel only exercises orders up to 4.
func (m Matrix) Determinant() float64 {
	if m.rows == 2 && m.cols == 2 {
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}
	sum := 0.0
	for col := 0; col < m.cols; col++ {
		sum += m.At(0, col) * m.Cofactor(0, col)
	}
	return sum
}

// Submatrix returns the matrix with row rrow and column rcol removed
func (m Matrix) Submatrix(rrow, rcol int) Matrix {
	values := make([]float64, 0, (m.rows-1)*(m.cols-1))
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if row != rrow && col != rcol {
				values = append(values, m.At(row, col))
			}
		}
	}
	return NewMatrixWithValues(m.rows-1, values)
}

// Minor returns the determinant of the submatrix at row, col
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at row, col, negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Invertible reports whether the determinant is nonzero. This is an
// exact comparison, unlike the epsilon equality used elsewhere: a
// near-singular matrix reports invertible and yields an unstable
// inverse.
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0.0
}

// Inverse returns the inverse: the transposed cofactor matrix (the
// adjugate) with every element divided by the determinant. A singular
// matrix is not guarded and produces IEEE-754 infinities or NaNs;
// callers that need a valid result check Invertible first.
func (m Matrix) Inverse() Matrix {
	cofactors := make([]float64, 0, len(m.values))
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			cofactors = append(cofactors, m.Cofactor(row, col))
		}
	}
	adjugate := NewMatrixWithValues(m.rows, cofactors).Transpose()
	det := m.Determinant()
	values := make([]float64, 0, len(m.values))
	for row := 0; row < adjugate.rows; row++ {
		for col := 0; col < adjugate.cols; col++ {
			values = append(values, adjugate.At(row, col)/det)
		}
	}
	return NewMatrixWithValues(adjugate.rows, values)
}

// Equals reports equality: dimensions must match exactly, elements are
// compared with the epsilon comparator
func (m Matrix) Equals(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.values {
		if !ApproxEqual(m.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

// Multiply returns the matrix product. Panics when the inner dimensions
// are incompatible.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	values := make([]float64, 0, m.rows*other.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < other.cols; col++ {
			sum := 0.0
			for i := 0; i < m.cols; i++ {
				sum += m.At(row, i) * other.At(i, col)
			}
			values = append(values, sum)
		}
	}
	return NewMatrixWithValues(m.rows, values)
}

// MultiplyTuple returns the tuple transformed by the matrix: each
// result component is the dot product of a matrix row with the tuple.
// Panics unless the matrix has exactly four columns.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.cols != 4 {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by a 4-tuple", m.rows, m.cols))
	}
	out := make([]float64, m.rows)
	for row := 0; row < m.rows; row++ {
		sum := 0.0
		for i := 0; i < 4; i++ {
			sum += m.At(row, i) * t.Component(i)
		}
		out[row] = sum
	}
	return NewTuple(out[0], out[1], out[2], out[3])
}
