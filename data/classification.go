package data

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ClassificationConfig describes a synthetic gaussian-cluster dataset.
type ClassificationConfig struct {
	Samples          int
	Features         int
	Informative      int // Features that carry the class signal
	Redundant        int // Random linear combinations of the informative features
	Classes          int
	ClustersPerClass int
	ClassSep         float64 // Half the side of the hypercube the cluster centres sit on
	FlipY            float64 // Fraction of labels reassigned at random
	Shuffle          bool
}

// DefaultClassificationConfig is 1000 samples, 5 features, 2 informative, 2 classes.
func DefaultClassificationConfig() ClassificationConfig {
	return ClassificationConfig{
		Samples:          1000,
		Features:         5,
		Informative:      2,
		Redundant:        0,
		Classes:          2,
		ClustersPerClass: 2,
		ClassSep:         1.0,
		FlipY:            0.01,
		Shuffle:          true,
	}
}

func (cfg ClassificationConfig) Validate() error {
	switch {
	case cfg.Samples <= 0:
		return errors.Errorf("samples must be positive, got %d", cfg.Samples)
	case cfg.Features <= 0:
		return errors.Errorf("features must be positive, got %d", cfg.Features)
	case cfg.Informative <= 0:
		return errors.Errorf("informative features must be positive, got %d", cfg.Informative)
	case cfg.Redundant < 0:
		return errors.Errorf("redundant features must not be negative, got %d", cfg.Redundant)
	case cfg.Informative+cfg.Redundant > cfg.Features:
		return errors.Errorf("informative (%d) + redundant (%d) features exceed total features (%d)",
			cfg.Informative, cfg.Redundant, cfg.Features)
	case cfg.Classes < 2:
		return errors.Errorf("need at least 2 classes, got %d", cfg.Classes)
	case cfg.ClustersPerClass <= 0:
		return errors.Errorf("clusters per class must be positive, got %d", cfg.ClustersPerClass)
	case cfg.FlipY < 0 || cfg.FlipY > 1:
		return errors.Errorf("flip fraction must be in [0, 1], got %g", cfg.FlipY)
	case cfg.ClassSep < 0:
		return errors.Errorf("class separation must not be negative, got %g", cfg.ClassSep)
	}

	clusters := cfg.Classes * cfg.ClustersPerClass
	if cfg.Informative < 62 && clusters > 1<<cfg.Informative {
		return errors.Errorf("classes * clusters per class (%d) must not exceed 2^informative (%d)",
			clusters, 1<<cfg.Informative)
	}
	return nil
}

// MakeClassification generates a feature matrix (samples x features) and a
// label vector. Each class is a mix of gaussian clusters centred on distinct
// hypercube vertices in the informative subspace; the remaining features are
// redundant combinations or pure noise.
func MakeClassification(cfg ClassificationConfig, src rand.Source) ([][]float64, []float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid classification config")
	}

	rng := rand.New(src)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	uniform := distuv.Uniform{Min: -1, Max: 1, Src: src}

	numClusters := cfg.Classes * cfg.ClustersPerClass
	centroids := hypercubeVertices(numClusters, cfg.Informative, cfg.ClassSep, rng)

	X := make([][]float64, cfg.Samples)
	for i := range X {
		X[i] = make([]float64, cfg.Features)
	}
	Y := make([]float64, cfg.Samples)

	// ---------------------------------------------------------
	// 1. Informative features, cluster by cluster
	// ---------------------------------------------------------
	row := 0
	for k, count := range clusterSizes(cfg.Samples, numClusters) {
		if count == 0 {
			continue
		}
		covariance := randomDense(cfg.Informative, cfg.Informative, uniform.Rand)
		points := randomDense(count, cfg.Informative, normal.Rand)

		var mixed mat.Dense
		mixed.Mul(points, covariance)

		for r := 0; r < count; r++ {
			for j := 0; j < cfg.Informative; j++ {
				X[row][j] = mixed.At(r, j) + centroids[k][j]
			}
			Y[row] = float64(k % cfg.Classes)
			row++
		}
	}

	// ---------------------------------------------------------
	// 2. Redundant features
	// ---------------------------------------------------------
	if cfg.Redundant > 0 {
		informative := mat.NewDense(cfg.Samples, cfg.Informative, nil)
		for i := range X {
			informative.SetRow(i, X[i][:cfg.Informative])
		}
		mixing := randomDense(cfg.Informative, cfg.Redundant, uniform.Rand)

		var redundant mat.Dense
		redundant.Mul(informative, mixing)
		for i := range X {
			mat.Row(X[i][cfg.Informative:cfg.Informative+cfg.Redundant], i, &redundant)
		}
	}

	// ---------------------------------------------------------
	// 3. Noise features
	// ---------------------------------------------------------
	for i := range X {
		for j := cfg.Informative + cfg.Redundant; j < cfg.Features; j++ {
			X[i][j] = normal.Rand()
		}
	}

	// ---------------------------------------------------------
	// 4. Label noise
	// ---------------------------------------------------------
	if cfg.FlipY > 0 {
		for i := range Y {
			if rng.Float64() < cfg.FlipY {
				Y[i] = float64(rng.IntN(cfg.Classes))
			}
		}
	}

	// ---------------------------------------------------------
	// 5. Shuffle samples and features
	// ---------------------------------------------------------
	if cfg.Shuffle {
		rng.Shuffle(len(X), func(i, j int) {
			X[i], X[j] = X[j], X[i]
			Y[i], Y[j] = Y[j], Y[i]
		})

		perm := rng.Perm(cfg.Features)
		tmp := make([]float64, cfg.Features)
		for _, x := range X {
			for j, p := range perm {
				tmp[j] = x[p]
			}
			copy(x, tmp)
		}
	}

	return X, Y, nil
}

// clusterSizes spreads samples over clusters, handing the remainder to the
// first clusters.
func clusterSizes(samples, clusters int) []int {
	sizes := make([]int, clusters)
	for k := range sizes {
		sizes[k] = samples / clusters
		if k < samples%clusters {
			sizes[k]++
		}
	}
	return sizes
}

// hypercubeVertices picks n distinct vertices of the hypercube [-sep, sep]^dims.
func hypercubeVertices(n, dims int, sep float64, rng *rand.Rand) [][]float64 {
	seen := make(map[string]bool, n)
	vertices := make([][]float64, 0, n)

	for len(vertices) < n {
		bits := make([]byte, dims)
		for j := range bits {
			bits[j] = byte(rng.IntN(2))
		}
		key := string(bits)
		if seen[key] {
			continue
		}
		seen[key] = true

		vertex := make([]float64, dims)
		for j, b := range bits {
			vertex[j] = float64(b)*2*sep - sep
		}
		vertices = append(vertices, vertex)
	}
	return vertices
}

func randomDense(rows, cols int, draw func() float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = draw()
	}
	return mat.NewDense(rows, cols, data)
}
