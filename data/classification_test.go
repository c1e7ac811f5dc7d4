package data

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeClassificationShapes(t *testing.T) {
	cfg := DefaultClassificationConfig()

	X, Y, err := MakeClassification(cfg, rand.NewPCG(42, 42))
	require.NoError(t, err)

	require.Len(t, X, cfg.Samples)
	require.Len(t, Y, cfg.Samples)
	for i, row := range X {
		require.Len(t, row, cfg.Features, "row %d", i)
		for _, v := range row {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
}

func TestMakeClassificationBinaryBalancedLabels(t *testing.T) {
	cfg := DefaultClassificationConfig()

	_, Y, err := MakeClassification(cfg, rand.NewPCG(1, 1))
	require.NoError(t, err)

	positives := 0
	for _, y := range Y {
		require.True(t, y == 0 || y == 1, "label %v", y)
		if y == 1 {
			positives++
		}
	}
	// Clusters are equal-sized; only FlipY can move a few labels.
	assert.InDelta(t, cfg.Samples/2, positives, float64(cfg.Samples)*cfg.FlipY+1)
}

func TestMakeClassificationWithoutFlipOrShuffleKeepsClusterOrder(t *testing.T) {
	cfg := DefaultClassificationConfig()
	cfg.Samples = 8
	cfg.FlipY = 0
	cfg.Shuffle = false

	_, Y, err := MakeClassification(cfg, rand.NewPCG(3, 3))
	require.NoError(t, err)

	// 4 clusters of 2 samples, cluster k has label k % 2.
	assert.Equal(t, []float64{0, 0, 1, 1, 0, 0, 1, 1}, Y)
}

func TestMakeClassificationDeterministicPerSeed(t *testing.T) {
	cfg := DefaultClassificationConfig()

	X1, Y1, err := MakeClassification(cfg, rand.NewPCG(7, 7))
	require.NoError(t, err)
	X2, Y2, err := MakeClassification(cfg, rand.NewPCG(7, 7))
	require.NoError(t, err)
	X3, _, err := MakeClassification(cfg, rand.NewPCG(8, 8))
	require.NoError(t, err)

	assert.Equal(t, X1, X2)
	assert.Equal(t, Y1, Y2)
	assert.NotEqual(t, X1, X3)
}

func TestMakeClassificationRedundantFeaturesAreLinearCombinations(t *testing.T) {
	cfg := ClassificationConfig{
		Samples:          50,
		Features:         4,
		Informative:      2,
		Redundant:        1,
		Classes:          2,
		ClustersPerClass: 1,
		ClassSep:         1,
	}

	X, _, err := MakeClassification(cfg, rand.NewPCG(5, 5))
	require.NoError(t, err)

	// Solve x2 = a*x0 + b*x1 from the first two rows, then check the rest.
	det := X[0][0]*X[1][1] - X[0][1]*X[1][0]
	require.NotZero(t, det)
	a := (X[0][2]*X[1][1] - X[0][1]*X[1][2]) / det
	b := (X[0][0]*X[1][2] - X[0][2]*X[1][0]) / det
	for i, row := range X {
		assert.InDelta(t, a*row[0]+b*row[1], row[2], 1e-6, "row %d", i)
	}
}

func TestMakeClassificationInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClassificationConfig)
	}{
		{name: "NoSamples", mutate: func(c *ClassificationConfig) { c.Samples = 0 }},
		{name: "NoFeatures", mutate: func(c *ClassificationConfig) { c.Features = 0 }},
		{name: "NoInformative", mutate: func(c *ClassificationConfig) { c.Informative = 0 }},
		{name: "NegativeRedundant", mutate: func(c *ClassificationConfig) { c.Redundant = -1 }},
		{name: "TooManyInformative", mutate: func(c *ClassificationConfig) { c.Informative = 4; c.Redundant = 2 }},
		{name: "SingleClass", mutate: func(c *ClassificationConfig) { c.Classes = 1 }},
		{name: "NoClusters", mutate: func(c *ClassificationConfig) { c.ClustersPerClass = 0 }},
		{name: "TooManyClusters", mutate: func(c *ClassificationConfig) { c.ClustersPerClass = 3 }},
		{name: "FlipOutOfRange", mutate: func(c *ClassificationConfig) { c.FlipY = 1.5 }},
		{name: "NegativeSeparation", mutate: func(c *ClassificationConfig) { c.ClassSep = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultClassificationConfig()
			tt.mutate(&cfg)

			X, Y, err := MakeClassification(cfg, rand.NewPCG(1, 1))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid classification config")
			assert.Nil(t, X)
			assert.Nil(t, Y)
		})
	}
}

func TestHypercubeVerticesAreDistinct(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))

	vertices := hypercubeVertices(8, 3, 2, rng)

	require.Len(t, vertices, 8)
	seen := map[[3]float64]bool{}
	for _, v := range vertices {
		for _, c := range v {
			assert.True(t, c == 2 || c == -2, "coordinate %v", c)
		}
		key := [3]float64{v[0], v[1], v[2]}
		assert.False(t, seen[key], "duplicate vertex %v", v)
		seen[key] = true
	}
}

func TestClusterSizes(t *testing.T) {
	assert.Equal(t, []int{250, 250, 250, 250}, clusterSizes(1000, 4))
	assert.Equal(t, []int{3, 3, 2}, clusterSizes(8, 3))
}
