package ml

import (
	"fmt"
	"io"
	"os"
	"time"
)

type TrainingConfig struct {
	Iterations   int
	LearningRate float64
	VerboseEvery int       // How often to log progress (in iterations). 0 disables logging.
	Out          io.Writer // Progress destination, os.Stdout when nil
}

// Train runs full-batch gradient descent for exactly cfg.Iterations steps and
// returns the output-layer activation of the last forward pass. It returns nil
// when no iteration ran.
func Train(nw *NeuralNetwork, X *Matrix, Y []float64, cfg TrainingConfig) *Matrix {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	if cfg.VerboseEvery > 0 {
		fmt.Fprintf(out, "TrainingConfig: {Iterations:%d LearningRate:%g VerboseEvery:%d}\n",
			cfg.Iterations, cfg.LearningRate, cfg.VerboseEvery)
	}

	var optimizer Optimizer = NewSGDOptimizer(cfg.LearningRate)

	var output *Matrix
	start := time.Now()

	for iter := 1; iter <= cfg.Iterations; iter++ {
		cache := nw.Forward(X)
		grads := nw.ComputeGradients(X, cache, Y)
		optimizer.Update(nw, grads)

		output = cache.Output()

		// Logging
		if cfg.VerboseEvery > 0 && (iter%cfg.VerboseEvery == 0 || iter == 1) {
			loss, acc := ComputeLossAndAccuracy(output, Y)
			fmt.Fprintf(out, "Iteration %d | Loss: %.4f | Acc: %.2f%% | Time: %v\n", iter, loss, acc*100, time.Since(start))
		}
	}

	if cfg.VerboseEvery > 0 {
		fmt.Fprintf(out, "Training Complete. Total Time: %v\n\n", time.Since(start))
	}
	return output
}
