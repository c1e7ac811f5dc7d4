// Package metrics scores binary predictions against ground truth labels.
package metrics

import (
	"fmt"
)

// ConfusionMatrix counts binary outcomes with label 1 as the positive class.
type ConfusionMatrix struct {
	TruePositives  int
	TrueNegatives  int
	FalsePositives int
	FalseNegatives int
}

// NewConfusionMatrix compares actual and predicted 0/1 labels. Any non-zero
// value counts as the positive class.
func NewConfusionMatrix(actual, predicted []float64) *ConfusionMatrix {
	if len(actual) != len(predicted) {
		panic(fmt.Sprintf("Label length mismatch: %d actual, %d predicted", len(actual), len(predicted)))
	}

	cm := &ConfusionMatrix{}
	for i, y := range actual {
		truth := y != 0
		guess := predicted[i] != 0
		switch {
		case truth && guess:
			cm.TruePositives++
		case !truth && !guess:
			cm.TrueNegatives++
		case !truth && guess:
			cm.FalsePositives++
		default:
			cm.FalseNegatives++
		}
	}
	return cm
}

// Accuracy is a shortcut for NewConfusionMatrix(actual, predicted).Accuracy().
func Accuracy(actual, predicted []float64) float64 {
	return NewConfusionMatrix(actual, predicted).Accuracy()
}

func (cm *ConfusionMatrix) Total() int {
	return cm.TruePositives + cm.TrueNegatives + cm.FalsePositives + cm.FalseNegatives
}

func (cm *ConfusionMatrix) Accuracy() float64 {
	return ratio(cm.TruePositives+cm.TrueNegatives, cm.Total())
}

func (cm *ConfusionMatrix) Precision() float64 {
	return ratio(cm.TruePositives, cm.TruePositives+cm.FalsePositives)
}

func (cm *ConfusionMatrix) Recall() float64 {
	return ratio(cm.TruePositives, cm.TruePositives+cm.FalseNegatives)
}

// F1 is the harmonic mean of precision and recall.
func (cm *ConfusionMatrix) F1() float64 {
	p, r := cm.Precision(), cm.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func (cm *ConfusionMatrix) String() string {
	return fmt.Sprintf("Acc: %.4f | Precision: %.4f | Recall: %.4f | F1: %.4f | TP=%d TN=%d FP=%d FN=%d",
		cm.Accuracy(), cm.Precision(), cm.Recall(), cm.F1(),
		cm.TruePositives, cm.TrueNegatives, cm.FalsePositives, cm.FalseNegatives)
}

// ratio returns 0 for an empty denominator.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
