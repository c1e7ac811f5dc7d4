package ml

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Matrix represents a dense matrix with a flat data slice for performance.
type Matrix struct {
	rows, cols int
	data       []float64
	dense      *mat.Dense
}

// -------- CONSTRUCTORS ------- //
func NewMatrix(rows, cols int) *Matrix {
	data := make([]float64, rows*cols)
	return &Matrix{
		rows:  rows,
		cols:  cols,
		data:  data,
		dense: mat.NewDense(rows, cols, data),
	}
}

func NewMatrixFromSlice(rows, cols int, data []float64) *Matrix {
	if len(data) != rows*cols {
		panic("Slice length mismatch")
	}

	return &Matrix{
		rows:  rows,
		cols:  cols,
		data:  data,
		dense: mat.NewDense(rows, cols, data),
	}
}

// ------- MATRIX METHODS ------ //
func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// Data exposes the row-major backing slice. Writes are visible through the matrix.
func (m *Matrix) Data() []float64 { return m.data }

// Dense is the gonum view over the same backing slice.
func (m *Matrix) Dense() *mat.Dense { return m.dense }

func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return NewMatrixFromSlice(m.rows, m.cols, data)
}

// RandomizeNormal fills the matrix with draws from N(0, 1).
func (m *Matrix) RandomizeNormal(src rand.Source) {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := range m.data {
		m.data[i] = dist.Rand()
	}
}

func (m *Matrix) Reset() {
	for i := range m.data {
		m.data[i] = 0.0
	}
}

func (m *Matrix) Subtract(b *Matrix) {
	m.dense.Sub(m.dense, b.dense)
}

// AddVector broadcasts a 1 x cols row vector across every row.
func (m *Matrix) AddVector(v *Matrix) {
	if v.cols != m.cols {
		panic(fmt.Sprintf("AddVector shape mismatch: [%d, %d] + [%d, %d]", m.rows, m.cols, v.rows, v.cols))
	}
	for i := 0; i < m.rows; i++ {
		floats.Add(m.data[i*m.cols:(i+1)*m.cols], v.data)
	}
}

// MulElem multiplies m by b element-wise in place.
func (m *Matrix) MulElem(b *Matrix) {
	m.dense.MulElem(m.dense, b.dense)
}

// SumRows collapses the sample axis: out[0][j] = sum_i m[i][j].
func (m *Matrix) SumRows(out *Matrix) {
	if out.cols != m.cols || len(out.data) != m.cols {
		panic(fmt.Sprintf("SumRows shape mismatch: [%d, %d] into [%d, %d]", m.rows, m.cols, out.rows, out.cols))
	}
	out.Reset()
	for i := 0; i < m.rows; i++ {
		floats.Add(out.data, m.data[i*m.cols:(i+1)*m.cols])
	}
}

func (m *Matrix) ApplySigmoid() {
	for i, v := range m.data {
		m.data[i] = Sigmoid(v)
	}
}

func (m *Matrix) ApplyFunc(fn func(float64) float64) {
	for i := range m.data {
		m.data[i] = fn(m.data[i])
	}
}

// ------ UTILITY FUNCTIONS ------
func MatMul(a, b mat.Matrix, out *Matrix) {
	out.dense.Mul(a, b)
}

func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func SigmoidDerivative(z float64) float64 {
	s := Sigmoid(z)
	return s * (1.0 - s)
}
