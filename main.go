package main

import (
	"fmt"
	"io"
	"os"

	"github.com/b0tShaman/neuro-mlp/ml"
)

// -------- MAIN -------- //
func main() {
	if err := run(os.Stdout, 100); err != nil {
		fmt.Println("Error in experiment:", err)
		return
	}
}

func run(out io.Writer, verboseEvery int) error {
	cfg := ml.DefaultExperimentConfig()
	cfg.VerboseEvery = verboseEvery
	cfg.Out = out

	fmt.Fprintf(out, "Generating dataset: %d samples, %d features (%d informative)\n",
		cfg.Data.Samples, cfg.Data.Features, cfg.Data.Informative)
	fmt.Fprintf(out, "Topology: %v | Iterations: %d | Learning rate: %g\n\n",
		cfg.Topology, cfg.Iterations, cfg.LearningRate)

	result, err := ml.RunExperiment(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Predictions:", result.Predictions)
	fmt.Fprintln(out, result.Metrics)
	fmt.Fprintf(out, "Accuracy: %.4f\n", result.Accuracy)
	return nil
}
