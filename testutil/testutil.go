package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/floatc/resource"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Floats returns n values in [-1000, 1000).
func (r *RNG) Floats(n int) []float32 {
	out := make([]float32, n)
	r.FillUniformRange(out, -1000, 1000)
	return out
}

var specials = [...]float32{
	float32(math.NaN()),
	float32(math.Inf(1)),
	float32(math.Inf(-1)),
	0,
	float32(math.Copysign(0, -1)),
}

// FloatsWithSpecials returns n values in [-1000, 1000) where roughly a
// fraction rate of them is replaced by NaN, ±Inf or ±0.
func (r *RNG) FloatsWithSpecials(n int, rate float64) []float32 {
	out := r.Floats(n)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range out {
		if r.rand.Float64() < rate {
			out[i] = specials[r.rand.Intn(len(specials))]
		}
	}
	return out
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-."

// Key returns a random key of length n.
func (r *RNG) Key(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keyLocked(n)
}

func (r *RNG) keyLocked(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = keyAlphabet[r.rand.Intn(len(keyAlphabet))]
	}
	return string(b)
}

// UniqueKeys returns n distinct random keys with lengths in [1, maxLen].
func (r *RNG) UniqueKeys(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, n)
	keys := make([]string, 0, n)
	for len(keys) < n {
		k := r.keyLocked(1 + r.rand.Intn(maxLen))
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Shuffle pseudo-randomizes the order of a.
func (r *RNG) Shuffle(a []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}

// MemoryTracker returns a resource controller limited to limitBytes (0 means
// unlimited) for observing allocations made by containers under test.
func MemoryTracker(limitBytes int64) *resource.Controller {
	return resource.NewController(resource.Config{MemoryLimitBytes: limitBytes})
}
