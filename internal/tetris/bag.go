package tetris

import "math/rand"

// Bag is the 7-bag randomizer: every kind appears exactly once per cycle,
// so two occurrences of a kind are never more than 12 pieces apart.
type Bag struct {
	rng    *rand.Rand
	order  [KindCount]Kind
	cursor int
}

// NewBag creates a bag seeded with seed. The first Next call shuffles.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng:    rand.New(rand.NewSource(seed)),
		cursor: KindCount,
	}
}

// Next returns the next kind, reshuffling when the current permutation is
// exhausted.
func (b *Bag) Next() Kind {
	if b.cursor >= KindCount {
		b.shuffle()
	}
	k := b.order[b.cursor]
	b.cursor++
	return k
}

// shuffle refills the bag with a uniform Fisher-Yates permutation.
func (b *Bag) shuffle() {
	for i := range b.order {
		b.order[i] = Kind(i)
	}
	for i := KindCount - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.order[i], b.order[j] = b.order[j], b.order[i]
	}
	b.cursor = 0
}
