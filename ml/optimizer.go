package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Optimizer applies one step of parameter updates from a full set of layer gradients.
type Optimizer interface {
	Update(nw *NeuralNetwork, grads []GradientSet)
}

var _ Optimizer = (*SGDOptimizer)(nil)

type SGDOptimizer struct {
	LearningRate float64
}

func NewSGDOptimizer(lr float64) *SGDOptimizer {
	return &SGDOptimizer{LearningRate: lr}
}

// ------ SGD OPTIMIZER METHODS ------ //

// Update applies W = W - (lr * gradient) to every layer. All gradients must
// come from the same forward/backward pass.
func (opt *SGDOptimizer) Update(nw *NeuralNetwork, grads []GradientSet) {
	if len(grads) != len(nw.Layers) {
		panic(fmt.Sprintf("Gradient count mismatch: %d layers, %d gradient sets", len(nw.Layers), len(grads)))
	}
	for i, layer := range nw.Layers {
		floats.AddScaled(layer.Weights.data, -opt.LearningRate, grads[i].dW.data)
		floats.AddScaled(layer.Biases.data, -opt.LearningRate, grads[i].db.data)
	}
}
