package reply

import (
	"math/rand/v2"
	"sync"
)

// Selector picks one of n templates.
type Selector interface {
	Pick(n int) int
}

// FirstSelector always picks the first template.
type FirstSelector struct{}

func (FirstSelector) Pick(int) int { return 0 }

// RandomSelector picks uniformly using an injected source.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector returns a RandomSelector. A nil rng is seeded randomly.
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomSelector{rng: rng}
}

func (s *RandomSelector) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
