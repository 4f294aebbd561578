package linalg

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

/*	row major, cells named after the row/column they sit in
	+-              -+
	| a1  b1  c1  d1 |   0  1  2  3
	| a2  b2  c2  d2 |   4  5  6  7
	| a3  b3  c3  d3 |   8  9 10 11
	| a4  b4  c4  d4 |  12 13 14 15
	+-              -+
	d1..d3 is the translation column.
*/
type Mat4 [16]float64

var (
	Identity = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	Zero = Mat4{}
)

// ErrSingular is returned when a matrix has no inverse.
var ErrSingular = errors.New("linalg: singular matrix")

// singularEpsilon is the relative magnitude below which a determinant or pivot
// counts as zero. Determinants are measured against the product of the row
// lengths, pivots against the largest entry of their column, so uniformly
// scaled matrices invert the same way at any scale.
const singularEpsilon = 1e-12

// InverseMethod selects the algorithm used by Inverse.
type InverseMethod int

const (
	// Adjugate divides the transposed cofactor matrix by the determinant.
	Adjugate InverseMethod = iota
	// GaussJordan reduces the augmented matrix [M | I] with partial pivoting.
	GaussJordan
)

func (m InverseMethod) String() string {
	switch m {
	case Adjugate:
		return "adjugate"
	case GaussJordan:
		return "gauss-jordan"
	}
	return fmt.Sprintf("InverseMethod(%d)", int(m))
}

func (m Mat4) At(row, col int) float64 { return m[row*4+col] }

func (m *Mat4) Set(row, col int, v float64) { m[row*4+col] = v }

func (m Mat4) Row(i int) Vec4 { return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]} }

func (m Mat4) Col(j int) Vec4 { return Vec4{m[j], m[4+j], m[8+j], m[12+j]} }

// Named cells of the translation column.
func (m Mat4) D1() float64 { return m[3] }
func (m Mat4) D2() float64 { return m[7] }
func (m Mat4) D3() float64 { return m[11] }

// Translation returns the first three entries of the last column.
func (m Mat4) Translation() Vec3 { return Vec3{m[3], m[7], m[11]} }

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * o[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// MulVec4 returns m * v with v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m.Row(0).Dot(v),
		m.Row(1).Dot(v),
		m.Row(2).Dot(v),
		m.Row(3).Dot(v),
	}
}

func (m Mat4) Add(o Mat4) Mat4 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Mat4) Sub(o Mat4) Mat4 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m Mat4) MulScalar(s float64) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// IsZero reports whether every cell is exactly zero, the failure value of Inverse.
func (m Mat4) IsZero() bool { return m == Zero }

func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// minor returns the 3x3 matrix left after deleting row and col, row major.
func (m Mat4) minor(row, col int) [9]float64 {
	var out [9]float64
	n := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[n] = m[r*4+c]
			n++
		}
	}
	return out
}

func det2(a, b, c, d float64) float64 { return a*d - b*c }

// det3 expands along the first row through 2x2 minors.
func det3(m [9]float64) float64 {
	var d float64
	if m[0] != 0 {
		d += m[0] * det2(m[4], m[5], m[7], m[8])
	}
	if m[1] != 0 {
		d -= m[1] * det2(m[3], m[5], m[6], m[8])
	}
	if m[2] != 0 {
		d += m[2] * det2(m[3], m[4], m[6], m[7])
	}
	return d
}

func (m Mat4) cofactor(row, col int) float64 {
	c := det3(m.minor(row, col))
	if (row+col)%2 == 1 {
		return -c
	}
	return c
}

// Determinant expands along pivotRow. Terms whose pivot element is exactly zero
// are skipped, so a row with many zeros is the cheapest choice.
// An out of range pivotRow falls back to row 0.
func (m Mat4) Determinant(pivotRow int) float64 {
	if pivotRow < 0 || pivotRow > 3 {
		pivotRow = 0
	}
	var d float64
	for c := 0; c < 4; c++ {
		p := m[pivotRow*4+c]
		if p == 0 {
			continue
		}
		d += p * m.cofactor(pivotRow, c)
	}
	return d
}

// SparsestRow returns the row with the most zero cells.
func (m Mat4) SparsestRow() int {
	best, bestZeros := 0, -1
	for r := 0; r < 4; r++ {
		zeros := 0
		for c := 0; c < 4; c++ {
			if m[r*4+c] == 0 {
				zeros++
			}
		}
		if zeros > bestZeros {
			best, bestZeros = r, zeros
		}
	}
	return best
}

// Det is Determinant along the sparsest row.
func (m Mat4) Det() float64 { return m.Determinant(m.SparsestRow()) }

// Inverse returns the inverse of m, or Zero when m is singular.
func (m Mat4) Inverse(method InverseMethod) Mat4 {
	inv, err := m.TryInverse(method)
	if err != nil {
		return Zero
	}
	return inv
}

// TryInverse is Inverse with an explicit error for singular input.
func (m Mat4) TryInverse(method InverseMethod) (Mat4, error) {
	switch method {
	case GaussJordan:
		return m.inverseGaussJordan()
	default:
		return m.inverseAdjugate()
	}
}

func (m Mat4) inverseAdjugate() (Mat4, error) {
	det := m.Det()
	if math.Abs(det) <= singularEpsilon*m.rowLengthProduct() {
		return Zero, ErrSingular
	}
	var out Mat4
	inv := 1 / det
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// adjugate is the transpose of the cofactor matrix
			out[c*4+r] = m.cofactor(r, c) * inv
		}
	}
	return out, nil
}

// rowLengthProduct bounds |det| from above (Hadamard's inequality).
func (m Mat4) rowLengthProduct() float64 {
	p := 1.0
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		p *= math.Sqrt(row.Dot(row))
	}
	return p
}

func (m Mat4) inverseGaussJordan() (Mat4, error) {
	var aug [4][8]float64
	var colMax [4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			aug[r][c] = m[r*4+c]
			colMax[c] = max(colMax[c], math.Abs(m[r*4+c]))
		}
		aug[r][4+r] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(aug[pivot][col]) <= singularEpsilon*colMax[col] {
			return Zero, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		p := aug[col][col]
		for c := 0; c < 8; c++ {
			aug[col][c] /= p
		}
		for r := 0; r < 4; r++ {
			if r == col || aug[r][col] == 0 {
				continue
			}
			f := aug[r][col]
			for c := 0; c < 8; c++ {
				aug[r][c] -= f * aug[col][c]
			}
		}
	}

	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = aug[r][4+c]
		}
	}
	return out, nil
}

// PositionFromMatrix returns the translation column of the inverse of m.
// For a view matrix that is the camera position in world space.
func PositionFromMatrix(m Mat4) Vec3 {
	return m.Inverse(Adjugate).Translation()
}

// Float32 returns the cells in row-major order, ready for a uniform upload
// with the transpose flag set.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// MGL64 converts to mathgl's column-major layout.
func (m Mat4) MGL64() mgl64.Mat4 {
	return mgl64.Mat4(m.Transpose())
}

// FromMGL64 converts from mathgl's column-major layout.
func FromMGL64(m mgl64.Mat4) Mat4 {
	return Mat4(m).Transpose()
}

func (m Mat4) String() string {
	s := ""
	for r := 0; r < 4; r++ {
		if r > 0 {
			s += "\n"
		}
		s += fmt.Sprintf("%9.4f %9.4f %9.4f %9.4f", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return s
}
