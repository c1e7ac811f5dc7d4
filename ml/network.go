package ml

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

type NeuralNetwork struct {
	Layers []*Layer
}

// NewNetwork builds one sigmoid layer per topology entry. Weights are drawn
// from a standard normal, biases start at zero.
func NewNetwork(inputDim int, topology []int, src rand.Source) *NeuralNetwork {
	if len(topology) == 0 {
		panic("Network must have at least one layer")
	}
	if inputDim <= 0 {
		panic(fmt.Sprintf("Input dimension must be positive, got %d", inputDim))
	}

	nw := &NeuralNetwork{}
	prevOutputSize := inputDim

	for i, nodes := range topology {
		if nodes <= 0 {
			panic(fmt.Sprintf("Layer %d must have a positive node count, got %d", i, nodes))
		}
		layer := &Layer{
			Weights: NewMatrix(prevOutputSize, nodes),
			Biases:  NewMatrix(1, nodes),
		}
		layer.Weights.RandomizeNormal(src)

		nw.Layers = append(nw.Layers, layer)
		prevOutputSize = nodes
	}

	return nw
}

// -------- NEURAL NETWORK METHODS -------- //

// InputDim is the feature count the first layer expects.
func (nw *NeuralNetwork) InputDim() int {
	return nw.Layers[0].Weights.rows
}

// Topology returns the node count of every layer.
func (nw *NeuralNetwork) Topology() []int {
	topology := make([]int, len(nw.Layers))
	for i, layer := range nw.Layers {
		topology[i] = layer.Nodes()
	}
	return topology
}

// Forward runs the input through every layer and returns all intermediates.
// The network itself is not modified.
func (nw *NeuralNetwork) Forward(input *Matrix) *ForwardCache {
	if input.cols != nw.InputDim() {
		panic(fmt.Sprintf("Input size mismatch. Expected %d features, got %d", nw.InputDim(), input.cols))
	}

	cache := &ForwardCache{
		Z: make([]*Matrix, len(nw.Layers)),
		A: make([]*Matrix, len(nw.Layers)),
	}

	activation := input
	for i, layer := range nw.Layers {
		z := NewMatrix(input.rows, layer.Nodes())
		MatMul(activation.Dense(), layer.Weights.Dense(), z)
		z.AddVector(layer.Biases)

		a := z.Clone()
		a.ApplySigmoid()

		cache.Z[i] = z
		cache.A[i] = a
		activation = a
	}
	return cache
}

// ComputeGradients backpropagates the output error through the cached forward
// pass. Gradients are summed over samples and returned in layer order.
func (nw *NeuralNetwork) ComputeGradients(input *Matrix, cache *ForwardCache, Y []float64) []GradientSet {
	lastLayerIdx := len(nw.Layers) - 1
	output := cache.A[lastLayerIdx]
	if len(Y) != output.rows {
		panic(fmt.Sprintf("Label count mismatch. Expected %d, got %d", output.rows, len(Y)))
	}
	if output.cols != 1 {
		panic(fmt.Sprintf("Output layer must have a single node, got %d", output.cols))
	}

	grads := make([]GradientSet, len(nw.Layers))

	// 1. Output Error: a_L - y
	delta := output.Clone()
	delta.Subtract(NewMatrixFromSlice(len(Y), 1, Y))

	// 2. Backprop Loop
	for i := lastLayerIdx; i >= 0; i-- {
		layer := nw.Layers[i]

		var A_prev_dense mat.Matrix
		if i == 0 {
			A_prev_dense = input.Dense()
		} else {
			A_prev_dense = cache.A[i-1].Dense()
		}

		grads[i] = newGradientSet(layer)
		MatMul(A_prev_dense.T(), delta.Dense(), grads[i].dW)
		delta.SumRows(grads[i].db)

		// --- CALC delta for the layer below ---
		if i > 0 {
			delta = hiddenDelta(delta, layer.Weights, cache.Z[i-1])
		}
	}
	return grads
}

// hiddenDelta returns (delta_next . W_next^T) * sigmoid'(z).
func hiddenDelta(nextDelta, nextWeights, z *Matrix) *Matrix {
	dCdA := NewMatrix(nextDelta.rows, nextWeights.rows)
	MatMul(nextDelta.Dense(), nextWeights.Dense().T(), dCdA)

	dAdZ := z.Clone()
	dAdZ.ApplyFunc(SigmoidDerivative)

	dCdA.MulElem(dAdZ)
	return dCdA
}

// ComputeLossAndAccuracy reports mean binary cross-entropy and thresholded
// accuracy of a sigmoid output against 0/1 labels.
func ComputeLossAndAccuracy(output *Matrix, Y []float64) (float64, float64) {
	totalLoss := 0.0
	correctCount := 0
	epsilon := 1e-15

	for i := 0; i < output.rows; i++ {
		prob := output.data[i*output.cols]
		target := Y[i]

		totalLoss += -(target*math.Log(prob+epsilon) + (1.0-target)*math.Log(1.0-prob+epsilon))

		predicted := 0.0
		if prob >= DefaultThreshold {
			predicted = 1.0
		}
		if predicted == target {
			correctCount++
		}
	}
	return totalLoss / float64(output.rows), float64(correctCount) / float64(output.rows)
}
