package quiz

import "math/rand/v2"

// IndexSource produces indices in [0, n).
type IndexSource interface {
	IntN(n int) int
}

type randomSource struct{}

func (randomSource) IntN(n int) int { return rand.IntN(n) }

// RandomSource returns an unseeded uniform source backed by math/rand/v2.
func RandomSource() IndexSource { return randomSource{} }

// SequenceSource replays a fixed list of draws, cycling when exhausted.
// Each draw is reduced modulo n.
type SequenceSource struct {
	draws []int
	pos   int
}

// NewSequenceSource returns a source that yields draws in order.
func NewSequenceSource(draws ...int) *SequenceSource {
	return &SequenceSource{draws: draws}
}

func (s *SequenceSource) IntN(n int) int {
	if len(s.draws) == 0 || n <= 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// maxStalledDraws bounds how many duplicate draws in a row are tolerated
// before the lowest unused index is taken instead. A uniform source never
// gets near it; it only stops a degenerate source from spinning forever.
const maxStalledDraws = 1 << 12

// Sample returns min(count, len(items)) distinct items chosen by drawing
// indices from src. Duplicate draws are discarded; the result is in draw
// order.
func Sample[T any](items []T, count int, src IndexSource) []T {
	n := len(items)
	want := min(count, n)
	if want <= 0 {
		return []T{}
	}
	if src == nil {
		src = RandomSource()
	}

	seen := make(map[int]bool, want)
	out := make([]T, 0, want)
	stalled := 0
	for len(out) < want {
		idx := src.IntN(n)
		if idx < 0 || idx >= n {
			idx = ((idx % n) + n) % n
		}
		if seen[idx] {
			stalled++
			if stalled < maxStalledDraws {
				continue
			}
			idx = firstUnused(seen, n)
		}
		stalled = 0
		seen[idx] = true
		out = append(out, items[idx])
	}
	return out
}

func firstUnused(seen map[int]bool, n int) int {
	for i := 0; i < n; i++ {
		if !seen[i] {
			return i
		}
	}
	return 0
}

// Sampler draws question subsets from an injectable source.
type Sampler struct {
	Source IndexSource
}

// Sample picks count distinct questions from all.
func (s Sampler) Sample(all []Question, count int) []Question {
	return Sample(all, count, s.Source)
}
