package geometry

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Rand is a pseudo-random source for gameplay values. It is safe for concurrent use.
type Rand struct {
	mu   sync.Mutex
	seed int64
	rng  *rand.Rand
}

// NewRand returns a generator with a fixed seed, or a clock seeded one when seed is 0
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Rand) Seed() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seed
}

// Unit returns a uniform value in [0, 1)
func (r *Rand) Unit() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Range returns a uniform sample from [min, max) rounded down to a whole number.
// The rounding favours min when the bounds are fractional. The result is never
// below min and never reaches max.
func (r *Rand) Range(min, max float64) float64 {
	value := math.Floor(r.Uniform(min, max))
	if value < min {
		return min
	}
	return value
}

// Uniform returns an unrounded uniform sample from [min, max)
func (r *Rand) Uniform(min, max float64) float64 {
	value := r.Unit()*(max-min) + min
	// Unit values just under 1 can round up to max
	if value >= max && max > min {
		return math.Nextafter(max, math.Inf(-1))
	}
	return value
}

var (
	defaultMu   sync.RWMutex
	defaultRand = NewRand(0)
)

// SetDefaultSeed reseeds the generator behind RandomUnit and RandomRange
func SetDefaultSeed(seed int64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRand = NewRand(seed)
}

// DefaultRand returns the process-wide generator
func DefaultRand() *Rand {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRand
}

// RandomUnit returns a uniform value in [0, 1) from the process-wide generator
func RandomUnit() float64 {
	return DefaultRand().Unit()
}

// RandomRange returns a floored uniform value in [min, max) from the process-wide generator
func RandomRange(min, max float64) float64 {
	return DefaultRand().Range(min, max)
}
