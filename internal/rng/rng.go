package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Rand provides the randomness used by the games: uniform picks,
// probability draws, and shuffles. One instance is shared across the
// services, and handlers run on concurrent requests, so every draw
// holds the mutex.
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Rand{
		random: random,
	}
}

// Intn returns a uniform value in [0, n)
func (r *Rand) Intn(n int) int {
	if n < 1 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(n)
}

// Float64 returns a uniform value in [0.0, 1.0)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Float64()
}

// Shuffle pseudo-randomizes the order of n elements using swap
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.random.Shuffle(n, swap)
}
