package magicmg

import "math/bits"

// SliderKind selects the sliding piece whose rays a magic table indexes.
type SliderKind uint8

const (
	SliderBishop SliderKind = iota
	SliderRook
)

func (k SliderKind) String() string {
	if k == SliderBishop {
		return "bishop"
	}
	return "rook"
}

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]uint64
var kingAttacks [64]uint64

// pawnAttacks[color][sq] gives the squares a pawn of color captures on from sq.
var pawnAttacks [2][64]uint64

// Relevant occupancy masks: rays with the outer edge square removed.
var bishopMask [64]uint64
var rookMask [64]uint64

// Ray directions as (row, file) steps, row 0 being rank 8.
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func init() {
	initLeaperTables()
	initRelevantMasks()
}

// initLeaperTables builds knight, king and pawn capture tables from raw index
// offsets. An offset that wraps around the board edge lands on the opposite
// edge files, which the guard mask rejects.
func initLeaperTables() {
	for i := 0; i < 64; i++ {
		sq := Square(i)

		var n uint64
		n = setUnlessMasked(n, FileAB, sq-6)
		n = setUnlessMasked(n, FileGH, sq-10)
		n = setUnlessMasked(n, FileA, sq-15)
		n = setUnlessMasked(n, FileH, sq-17)
		n = setUnlessMasked(n, FileAB, sq+10)
		n = setUnlessMasked(n, FileGH, sq+6)
		n = setUnlessMasked(n, FileA, sq+17)
		n = setUnlessMasked(n, FileH, sq+15)
		knightAttacks[i] = n

		var k uint64
		k = setUnlessMasked(k, FileA, sq+1)
		k = setUnlessMasked(k, FileA, sq-7)
		k = setUnlessMasked(k, FileA, sq+9)
		k = setUnlessMasked(k, FileH, sq-1)
		k = setUnlessMasked(k, FileH, sq+7)
		k = setUnlessMasked(k, FileH, sq-9)
		k = SetBit(k, sq+8)
		k = SetBit(k, sq-8)
		kingAttacks[i] = k

		// White pawns advance toward lower indices.
		var w uint64
		w = setUnlessMasked(w, FileA, sq-7)
		w = setUnlessMasked(w, FileH, sq-9)
		pawnAttacks[White][i] = w

		var b uint64
		b = setUnlessMasked(b, FileH, sq+7)
		b = setUnlessMasked(b, FileA, sq+9)
		pawnAttacks[Black][i] = b
	}
}

func initRelevantMasks() {
	for sq := 0; sq < 64; sq++ {
		bishopMask[sq] = relevantRays(sq, bishopDirections)
		rookMask[sq] = relevantRays(sq, rookDirections)
	}
}

// relevantRays walks each direction while the next square is still inside the
// board's inner ring for that axis. Edge squares never block anything further.
func relevantRays(sq int, dirs [4][2]int) uint64 {
	row, file := sq/8, sq%8
	var mask uint64
	for _, d := range dirs {
		r, f := row+d[0], file+d[1]
		for inner(r, d[0]) && inner(f, d[1]) {
			mask |= 1 << uint(r*8+f)
			r += d[0]
			f += d[1]
		}
	}
	return mask
}

// inner reports whether coordinate c is off the edge in the direction of step.
// A zero step leaves the axis unconstrained.
func inner(c, step int) bool {
	if step == 0 {
		return c >= 0 && c <= 7
	}
	return c >= 1 && c <= 6
}

// traceRays walks each direction until the board edge, including the first
// square found in blockers and stopping there.
func traceRays(sq int, blockers uint64, dirs [4][2]int) uint64 {
	row, file := sq/8, sq%8
	var attacks uint64
	for _, d := range dirs {
		r, f := row+d[0], file+d[1]
		for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
			bit := uint64(1) << uint(r*8+f)
			attacks |= bit
			if blockers&bit != 0 {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return attacks
}

// KnightAttacks returns the knight target squares from sq.
func KnightAttacks(sq Square) uint64 { return knightAttacks[sq] }

// KingAttacks returns the king target squares from sq.
func KingAttacks(sq Square) uint64 { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c captures on from sq.
func PawnAttacks(c Color, sq Square) uint64 { return pawnAttacks[c][sq] }

// RelevantMask returns the blocker squares that can change the slider's attacks from sq.
func RelevantMask(kind SliderKind, sq Square) uint64 {
	switch kind {
	case SliderBishop:
		return bishopMask[sq]
	case SliderRook:
		return rookMask[sq]
	}
	return 0
}

// RelevantBits is the population count of RelevantMask.
func RelevantBits(kind SliderKind, sq Square) int {
	return bits.OnesCount64(RelevantMask(kind, sq))
}

// FullMove ray-traces the slider's attacks from sq against blockers.
func FullMove(kind SliderKind, sq Square, blockers uint64) uint64 {
	switch kind {
	case SliderBishop:
		return traceRays(int(sq), blockers, bishopDirections)
	case SliderRook:
		return traceRays(int(sq), blockers, rookDirections)
	}
	return 0
}
