package tetris

// PreviewSize is the number of upcoming pieces kept in the lookahead queue.
const PreviewSize = 3

// Queue is the fixed-length lookahead of upcoming kinds, refilled one for
// one from a Bag. Its length is always PreviewSize.
type Queue struct {
	items [PreviewSize]Kind
	bag   *Bag
}

// NewQueue fills every slot by drawing sequentially from bag.
func NewQueue(bag *Bag) *Queue {
	q := &Queue{bag: bag}
	for i := range q.items {
		q.items[i] = bag.Next()
	}
	return q
}

// Peek returns the upcoming kinds, front first.
func (q *Queue) Peek() [PreviewSize]Kind {
	return q.items
}

// Pop removes and returns the front kind, shifting the rest forward and
// appending a fresh draw at the back.
func (q *Queue) Pop() Kind {
	front := q.items[0]
	copy(q.items[:], q.items[1:])
	q.items[PreviewSize-1] = q.bag.Next()
	return front
}

// Hold is the single-slot hold buffer. The locked flag allows at most one
// swap between two spawns.
type Hold struct {
	kind   Kind
	full   bool
	locked bool
}

// Swap stores current in the slot.
//
// ok is false when the slot is locked for this piece; nothing changes.
// Otherwise held/hadHeld report the kind that was in the slot before: when
// hadHeld is false the caller spawns from the queue, when true it activates
// held directly. Either way the slot is locked until the next spawn.
func (h *Hold) Swap(current Kind) (held Kind, hadHeld bool, ok bool) {
	if h.locked {
		return 0, false, false
	}
	held, hadHeld = h.kind, h.full
	h.kind = current
	h.full = true
	h.locked = true
	return held, hadHeld, true
}

// Unlock re-enables holding. Only spawning a new piece calls this.
func (h *Hold) Unlock() {
	h.locked = false
}

// Kind returns the held kind and whether the slot is occupied.
func (h *Hold) Kind() (Kind, bool) {
	return h.kind, h.full
}

// Locked reports whether a swap already happened for the current piece.
func (h *Hold) Locked() bool {
	return h.locked
}
