package ml

import (
	"github.com/b0tShaman/neuro-mlp/metrics"
)

// DefaultThreshold splits sigmoid outputs into the two classes.
const DefaultThreshold = 0.5

// Threshold maps every activation to a hard label: 1 when the value is at or
// above threshold, 0 otherwise. The activation matrix is left untouched.
func Threshold(output *Matrix, threshold float64) []float64 {
	labels := make([]float64, len(output.data))
	for i, v := range output.data {
		if v >= threshold {
			labels[i] = 1
		}
	}
	return labels
}

// Evaluate thresholds the model output and scores it against the true labels.
func Evaluate(Y []float64, output *Matrix, threshold float64) ([]float64, *metrics.ConfusionMatrix) {
	predictions := Threshold(output, threshold)
	return predictions, metrics.NewConfusionMatrix(Y, predictions)
}
