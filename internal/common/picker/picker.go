package picker

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/pourlog/internal/common/picker Picker

// Picker chooses an index out of n options
type Picker interface {
	// Pick returns a value in [0, n). n must be positive.
	Pick(n int) int
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Random picks uniformly using math/rand
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random picker
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick returns a random index in [0, n). Non-positive n yields 0.
func (r *Random) Pick(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}
