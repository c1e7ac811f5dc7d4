package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		name      string
		output    []float64
		threshold float64
		want      []float64
	}{
		{name: "ExactlyAtThresholdIsPositive", output: []float64{0.5}, threshold: 0.5, want: []float64{1}},
		{name: "JustBelowThreshold", output: []float64{0.49999999}, threshold: 0.5, want: []float64{0}},
		{name: "Mixed", output: []float64{0.1, 0.9, 0.5, 0.0, 1.0}, threshold: 0.5, want: []float64{0, 1, 1, 0, 1}},
		{name: "CustomThreshold", output: []float64{0.6, 0.7, 0.8}, threshold: 0.7, want: []float64{0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := NewMatrixFromSlice(len(tt.output), 1, append([]float64(nil), tt.output...))
			assert.Equal(t, tt.want, Threshold(output, tt.threshold))
		})
	}
}

func TestThresholdDoesNotMutateOutput(t *testing.T) {
	output := NewMatrixFromSlice(3, 1, []float64{0.2, 0.5, 0.8})

	Threshold(output, DefaultThreshold)

	assert.Equal(t, []float64{0.2, 0.5, 0.8}, output.Data())
}

func TestEvaluate(t *testing.T) {
	output := NewMatrixFromSlice(4, 1, []float64{0.9, 0.1, 0.6, 0.3})
	Y := []float64{1, 0, 0, 1}

	predictions, cm := Evaluate(Y, output, DefaultThreshold)

	assert.Equal(t, []float64{1, 0, 1, 0}, predictions)
	assert.Equal(t, 0.5, cm.Accuracy())
	assert.Equal(t, 1, cm.TruePositives)
	assert.Equal(t, 1, cm.TrueNegatives)
	assert.Equal(t, 1, cm.FalsePositives)
	assert.Equal(t, 1, cm.FalseNegatives)
}
