package crypto

import (
	"crypto/rand"
	"math/big"
)

// Source is the randomness a Generator draws from. *math/rand/v2.Rand
// satisfies it, which lets tests use a seeded source.
type Source interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
}

type secureSource struct{}

// SecureSource returns a Source backed by crypto/rand. It holds no state and
// is safe for concurrent use.
func SecureSource() Source {
	return secureSource{}
}

func (secureSource) IntN(n int) int {
	if n <= 0 {
		panic("crypto: invalid argument to IntN")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("crypto: reading random source: " + err.Error())
	}
	return int(v.Int64())
}

// Shuffle performs a Fisher-Yates shuffle.
func (s secureSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}
