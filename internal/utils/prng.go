// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Rand — минимальный источник случайности, который нужен игровому циклу.
// *rand.Rand и PRNGService удовлетворяют ему.
type Rand interface {
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактически использованный сид (для воспроизведения партии).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// OneIn reports true with probability 1/n, consuming exactly one draw.
func OneIn(r Rand, n int) bool {
	return r.Intn(n) == 0
}
