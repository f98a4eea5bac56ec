package moves

// node is one element of a MoveList's singly-linked buckets, or of its
// free-node pool.
type node struct {
	move Move
	next *node
}

// MoveList is an ordered container of moves, partitioned into two priority
// buckets that are appended to on emission and iterated bucket-A-then-B:
//
//	bucket A: captures and en-passant.
//	bucket B: quiet moves, promotions without capture.
//
// Nodes are drawn from and returned to a free-node pool so that generating
// a full position's moves, iterating them, and clearing the list again
// never allocates after the pool's high-water mark has been reached. A
// MoveList is not safe for concurrent use; the engine is single-threaded
// by design (see the concurrency model in SPEC_FULL.md).
type MoveList struct {
	headA, tailA *node
	headB, tailB *node
	free         *node
	count        int
}

// alloc returns a node with a nil next link, drawing from the free pool
// when possible; a pooled node still holds its old move until Push
// overwrites it.
func (l *MoveList) alloc() *node {
	if l.free != nil {
		n := l.free
		l.free = n.next
		n.next = nil
		return n
	}
	return &node{}
}

// Push appends m to the appropriate bucket.
func (l *MoveList) Push(m Move) {
	n := l.alloc()
	n.move = m
	if m.bucketA() {
		if l.tailA == nil {
			l.headA = n
		} else {
			l.tailA.next = n
		}
		l.tailA = n
	} else {
		if l.tailB == nil {
			l.headB = n
		} else {
			l.tailB.next = n
		}
		l.tailB = n
	}
	l.count++
}

// Len returns the total number of moves currently held.
func (l *MoveList) Len() int { return l.count }

// Clear empties the list, pushing every node it holds back onto the free
// pool so a subsequent Push reuses them instead of allocating.
func (l *MoveList) Clear() {
	if l.tailA != nil {
		l.tailA.next = l.free
		l.free = l.headA
	}
	if l.tailB != nil {
		l.tailB.next = l.free
		l.free = l.headB
	}
	l.headA, l.tailA = nil, nil
	l.headB, l.tailB = nil, nil
	l.count = 0
}

// Each calls fn for every move in bucket-A-then-bucket-B order, stopping
// early if fn returns false.
func (l *MoveList) Each(fn func(Move) bool) {
	for n := l.headA; n != nil; n = n.next {
		if !fn(n.move) {
			return
		}
	}
	for n := l.headB; n != nil; n = n.next {
		if !fn(n.move) {
			return
		}
	}
}

// Slice materializes the list into a plain slice, bucket A first. Intended
// for tests and diagnostics; the search hot path uses Each to stay
// allocation-free.
func (l *MoveList) Slice() []Move {
	out := make([]Move, 0, l.count)
	l.Each(func(m Move) bool {
		out = append(out, m)
		return true
	})
	return out
}
