package ml

// -------- TYPE DEFINITIONS -------- //

// Layer holds the trainable parameters of one fully connected sigmoid layer.
type Layer struct {
	Weights *Matrix // inputs x nodes
	Biases  *Matrix // 1 x nodes
}

// ForwardCache keeps every layer's pre-activation (Z) and activation (A)
// from a single forward pass. Backprop needs all of them.
type ForwardCache struct {
	Z []*Matrix
	A []*Matrix
}

// GradientSet holds the calculated gradients for one layer
type GradientSet struct {
	dW *Matrix
	db *Matrix
}

func (g GradientSet) Weights() *Matrix { return g.dW }
func (g GradientSet) Biases() *Matrix  { return g.db }

// Output returns the final layer's activation.
func (c *ForwardCache) Output() *Matrix {
	return c.A[len(c.A)-1]
}

// Nodes reports the width of the layer.
func (l *Layer) Nodes() int {
	return l.Weights.cols
}

func newGradientSet(layer *Layer) GradientSet {
	return GradientSet{
		dW: NewMatrix(layer.Weights.rows, layer.Weights.cols),
		db: NewMatrix(layer.Biases.rows, layer.Biases.cols),
	}
}

func Flatten(input [][]float64) []float64 {
	if len(input) == 0 {
		return nil
	}
	rows, cols := len(input), len(input[0])
	flat := make([]float64, rows*cols)
	for i, row := range input {
		copy(flat[i*cols:], row)
	}
	return flat
}
