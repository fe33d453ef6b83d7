package slot

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RNG источник случайности движка. IntN возвращает равномерное число из [0, n)
type RNG interface {
	IntN(n int) int
}

// CryptoRNG криптостойкий источник на crypto/rand.
// Без сида: исходы нельзя предсказать или воспроизвести
type CryptoRNG struct{}

func NewCryptoRNG() CryptoRNG {
	return CryptoRNG{}
}

func (CryptoRNG) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("slot: IntN called with n=%d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand не возвращает ошибок на поддерживаемых платформах
		panic(fmt.Sprintf("slot: crypto source failed: %v", err))
	}
	return int(v.Int64())
}

// between равномерное число из [lo, hi]
func between(rng RNG, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
