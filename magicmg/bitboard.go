package magicmg

import "strings"

// File guard masks. Square 0 is a8 and square 63 is h1, so file = sq % 8.
const (
	FileA  uint64 = 0x0101010101010101
	FileH  uint64 = 0x8080808080808080
	FileAB uint64 = 0x0303030303030303
	FileGH uint64 = 0xC0C0C0C0C0C0C0C0
)

// De Bruijn multiplier for the (b ^ (b-1)) forward bit scan.
const debruijn64 uint64 = 0x03f79d71b4cb0a89

var index64 = [64]Square{
	0, 47, 1, 56, 48, 27, 2, 60,
	57, 49, 41, 37, 28, 16, 3, 61,
	54, 58, 35, 52, 50, 42, 21, 44,
	38, 32, 29, 23, 17, 11, 4, 62,
	46, 55, 26, 59, 40, 36, 15, 53,
	34, 51, 20, 43, 31, 22, 10, 45,
	25, 39, 14, 33, 19, 30, 9, 24,
	13, 18, 8, 12, 7, 6, 5, 63,
}

// SetBit returns bb with sq set. Squares outside [0,64) leave bb unchanged.
func SetBit(bb uint64, sq Square) uint64 {
	if uint(sq) >= 64 {
		return bb
	}
	return bb | 1<<uint(sq)
}

// GetBit reports whether sq is set in bb. Squares outside [0,64) are never set.
func GetBit(bb uint64, sq Square) bool {
	if uint(sq) >= 64 {
		return false
	}
	return bb&(1<<uint(sq)) != 0
}

// ClearBit returns bb with sq cleared. Squares outside [0,64) leave bb unchanged.
func ClearBit(bb uint64, sq Square) uint64 {
	if uint(sq) >= 64 {
		return bb
	}
	return bb &^ (1 << uint(sq))
}

// LowestSquare returns the least significant set square of bb.
// The result for bb == 0 is meaningless; callers loop while bb != 0.
func LowestSquare(bb uint64) Square {
	return index64[((bb^(bb-1))*debruijn64)>>58]
}

// PopLowest removes and returns the least significant set square of *bb.
func PopLowest(bb *uint64) Square {
	sq := LowestSquare(*bb)
	*bb &= *bb - 1
	return sq
}

// EnumerateSubset maps index in [0, 2^bitCount) to a subset of mask: the i-th
// set bit of mask (counting from the least significant) is kept iff bit i of
// index is set.
func EnumerateSubset(mask uint64, bitCount int, index int) uint64 {
	var result uint64
	for bit := 0; bit < bitCount && mask != 0; bit++ {
		sq := PopLowest(&mask)
		if index&(1<<uint(bit)) != 0 {
			result |= 1 << uint(sq)
		}
	}
	return result
}

// setUnlessMasked sets sq in bb unless sq is on the board and already present in guard.
// It is how leaper tables reject offsets that wrapped around a board edge.
func setUnlessMasked(bb, guard uint64, sq Square) uint64 {
	if GetBit(guard, sq) {
		return bb
	}
	return SetBit(bb, sq)
}

// BitboardString lists the set squares of b, e.g. "(a8,e2)".
func BitboardString(b uint64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for x := b; x != 0; {
		if sb.Len() > 1 {
			sb.WriteByte(',')
		}
		sb.WriteString(PopLowest(&x).String())
	}
	sb.WriteByte(')')
	return sb.String()
}
