package ml

import (
	"io"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/b0tShaman/neuro-mlp/data"
	"github.com/b0tShaman/neuro-mlp/metrics"
)

// ExperimentConfig wires one end-to-end run: data generation, initialization,
// training and scoring.
type ExperimentConfig struct {
	Topology     []int
	Iterations   int
	LearningRate float64
	Threshold    float64
	Seed         uint64
	VerboseEvery int
	Out          io.Writer // Training progress, os.Stdout when nil
	Data         data.ClassificationConfig
}

type ExperimentResult struct {
	Network     *NeuralNetwork
	Output      *Matrix // Final-layer activation from the last forward pass
	Labels      []float64
	Predictions []float64
	Metrics     *metrics.ConfusionMatrix
	Accuracy    float64
}

func DefaultExperimentConfig() ExperimentConfig {
	return ExperimentConfig{
		Topology:     []int{5, 4, 2, 1},
		Iterations:   1000,
		LearningRate: 0.01,
		Threshold:    DefaultThreshold,
		Seed:         42,
		Data:         data.DefaultClassificationConfig(),
	}
}

// RunExperiment generates the dataset, then initializes and trains a network
// from the same seeded source, and scores the trained output on the training set.
func RunExperiment(cfg ExperimentConfig) (*ExperimentResult, error) {
	src := rand.NewPCG(cfg.Seed, cfg.Seed)

	X_raw, Y, err := data.MakeClassification(cfg.Data, src)
	if err != nil {
		return nil, errors.Wrap(err, "generating dataset")
	}
	X := NewMatrixFromSlice(len(X_raw), len(X_raw[0]), Flatten(X_raw))

	nw := NewNetwork(X.Cols(), cfg.Topology, src)

	output := Train(nw, X, Y, TrainingConfig{
		Iterations:   cfg.Iterations,
		LearningRate: cfg.LearningRate,
		VerboseEvery: cfg.VerboseEvery,
		Out:          cfg.Out,
	})
	if output == nil {
		return nil, errors.Errorf("no training iterations ran (iterations = %d)", cfg.Iterations)
	}

	predictions, cm := Evaluate(Y, output, cfg.Threshold)
	return &ExperimentResult{
		Network:     nw,
		Output:      output,
		Labels:      Y,
		Predictions: predictions,
		Metrics:     cm,
		Accuracy:    cm.Accuracy(),
	}, nil
}
