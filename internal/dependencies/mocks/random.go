package mocks

import (
	"fmt"

	"github.com/gamingleague/tournaments-web/internal/dependencies/random"
)

// MockRandom is a deterministic Random for tests. Tokens are sequential:
// prefix + "token-1", prefix + "token-2", ...
type MockRandom struct {
	counter int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom.
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) Token(prefix string) string {
	r.counter++
	return fmt.Sprintf("%stoken-%d", prefix, r.counter)
}
