package chess

// MoveList is a fixed-capacity move buffer. 256 comfortably exceeds the
// known theoretical maximum number of legal moves in any reachable chess
// position (218), avoiding a heap-allocated growable slice on the
// generator's hot path.
type MoveList struct {
	moves [256]Move
	n     int
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Slice returns the accumulated moves as a slice sharing the list's backing array.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }

func (l *MoveList) push(m Move) {
	l.moves[l.n] = m
	l.n++
}

// retain keeps only the moves for which keep returns true, compacting in place.
func (l *MoveList) retain(keep func(Move) bool) {
	out := 0
	for i := 0; i < l.n; i++ {
		if keep(l.moves[i]) {
			l.moves[out] = l.moves[i]
			out++
		}
	}
	l.n = out
}
