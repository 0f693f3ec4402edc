package rng

import "math/rand"

type Symbol string

// Symbols is the fixed reel alphabet.
var Symbols = [8]Symbol{"🍎", "🍊", "🍋", "🍌", "🍉", "🎰", "💎", "🔔"}

// Source produces the uniform draws the games consume. The zero value is
// ready to use; the top-level math/rand functions are synchronized, so a
// single Source may serve every session concurrently.
type Source struct{}

func (Source) Symbol() Symbol {
	return Symbols[rand.Intn(len(Symbols))]
}

func (s Source) Reel() [3]Symbol {
	return [3]Symbol{s.Symbol(), s.Symbol(), s.Symbol()}
}

// Numbers draws n distinct integers from [1, maxValue], kept in draw order.
// Duplicates are re-drawn until the set is full.
func (Source) Numbers(n, maxValue int) []int {
	seen := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		v := rand.Intn(maxValue) + 1
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// CrashPoint is uniform in [1.0, 6.0).
func (Source) CrashPoint() float64 {
	return 1.0 + rand.Float64()*5.0
}

// Percentile is a uniform integer in [1, 100].
func (Source) Percentile() int {
	return rand.Intn(100) + 1
}
