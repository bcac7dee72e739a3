package geometry

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 10000

func TestRandomUnitRange(t *testing.T) {
	for iter := 0; iter < samples; iter++ {
		v := RandomUnit()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRandomRangeBoundsAndDistribution(t *testing.T) {
	rng := NewRand(7)
	counts := make(map[float64]int)

	for iter := 0; iter < samples; iter++ {
		v := rng.Range(2, 5)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
		counts[v]++
	}

	require.Len(t, counts, 3, "expected only 2, 3 and 4: got %v", counts)
	for value, n := range counts {
		// Each bucket expects ~3333 hits
		assert.InDelta(t, samples/3, n, 300, "value %v drawn %d times", value, n)
	}
}

func TestRandomRangeFloorsTowardMin(t *testing.T) {
	rng := NewRand(11)
	for iter := 0; iter < samples; iter++ {
		v := rng.Range(2.5, 4.5)
		require.GreaterOrEqual(t, v, 2.5)
		require.Less(t, v, 4.5)
		require.Contains(t, []float64{2.5, 3, 4}, v)
	}
}

func TestPackageRandomRange(t *testing.T) {
	for iter := 0; iter < samples; iter++ {
		v := RandomRange(-3, 3)
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 3.0)
	}
}

func TestUniformIsUnrounded(t *testing.T) {
	rng := NewRand(3)
	fractional := false
	for iter := 0; iter < 100; iter++ {
		v := rng.Uniform(10, 20)
		require.GreaterOrEqual(t, v, 10.0)
		require.Less(t, v, 20.0)
		if v != float64(int(v)) {
			fractional = true
		}
	}
	assert.True(t, fractional)
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a := NewRand(1234)
	b := NewRand(1234)
	assert.Equal(t, int64(1234), a.Seed())
	for iter := 0; iter < 100; iter++ {
		assert.Equal(t, a.Unit(), b.Unit())
	}
}

func TestSetDefaultSeed(t *testing.T) {
	SetDefaultSeed(99)
	first := []float64{RandomUnit(), RandomUnit(), RandomUnit()}

	SetDefaultSeed(99)
	second := []float64{RandomUnit(), RandomUnit(), RandomUnit()}

	assert.Equal(t, first, second)
	assert.Equal(t, int64(99), DefaultRand().Seed())
}

func TestZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, NewRand(0).Seed())
}

func TestRandConcurrentUse(t *testing.T) {
	rng := NewRand(5)
	var wg sync.WaitGroup
	for iter := 0; iter < 8; iter++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < 1000; iter++ {
				v := rng.Range(0, 10)
				if v < 0 || v >= 10 {
					t.Errorf("sample out of range: %v", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// topSource always yields the largest Int63 that math/rand turns into a Float64 below 1
type topSource struct{}

func (topSource) Int63() int64 { return 1<<63 - 1025 }
func (topSource) Seed(int64)   {}

func TestLargestUnitStaysBelowMax(t *testing.T) {
	rng := &Rand{rng: rand.New(topSource{})}

	u := rng.Unit()
	require.Less(t, u, 1.0)
	require.Equal(t, math.Nextafter(1, 0), u)

	t.Run("Range", func(t *testing.T) {
		assert.Equal(t, 4.0, rng.Range(2, 5))
		assert.Equal(t, 799.0, rng.Range(0, 800))
		assert.Equal(t, -1.0, rng.Range(-600, 0))
	})

	t.Run("Uniform", func(t *testing.T) {
		assert.Less(t, rng.Uniform(2, 5), 5.0)
		assert.Less(t, rng.Uniform(-3, 3), 3.0)
	})
}
