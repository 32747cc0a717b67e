package magicmg

import (
	"math/bits"
	"testing"

	"github.com/matryer/is"
)

func TestLowestSquareSingleBits(t *testing.T) {
	is := is.New(t)
	for k := 0; k < 64; k++ {
		is.Equal(LowestSquare(1<<uint(k)), Square(k))
	}
}

func TestLowestSquareMatchesTrailingZeros(t *testing.T) {
	is := is.New(t)
	for _, bb := range []uint64{0x8000000000000001, 0xF0F0, 0xFFFF000000000000, 0x00FF00FF00FF0000, FileH, FileGH} {
		is.Equal(LowestSquare(bb), Square(bits.TrailingZeros64(bb)))
	}
}

func TestPopLowestDrainsInAscendingOrder(t *testing.T) {
	is := is.New(t)
	bb := uint64(1<<3 | 1<<17 | 1<<63)
	is.Equal(PopLowest(&bb), Square(3))
	is.Equal(PopLowest(&bb), Square(17))
	is.Equal(PopLowest(&bb), Square(63))
	is.Equal(bb, uint64(0))
}

func TestBitOpsClampOutOfRange(t *testing.T) {
	is := is.New(t)
	var bb uint64 = 0x5

	is.Equal(SetBit(bb, 64), bb)
	is.Equal(SetBit(bb, 200), bb)
	is.Equal(SetBit(bb, -1), bb)
	is.True(!GetBit(^uint64(0), 64))
	is.True(!GetBit(^uint64(0), -8))
	is.Equal(ClearBit(bb, 64), bb)

	is.Equal(SetBit(bb, 1), uint64(0x7))
	is.True(GetBit(bb, 2))
	is.Equal(ClearBit(bb, 2), uint64(0x1))
	// clearing twice must not toggle the bit back
	is.Equal(ClearBit(ClearBit(bb, 2), 2), uint64(0x1))
}

func TestEnumerateSubsetIsBijection(t *testing.T) {
	is := is.New(t)
	mask := RelevantMask(SliderRook, 27)
	n := bits.OnesCount64(mask)
	seen := make(map[uint64]bool, 1<<n)
	for i := 0; i < 1<<n; i++ {
		sub := EnumerateSubset(mask, n, i)
		is.Equal(sub&^mask, uint64(0))
		is.Equal(bits.OnesCount64(sub), bits.OnesCount(uint(i)))
		is.True(!seen[sub])
		seen[sub] = true
	}
	is.Equal(EnumerateSubset(mask, n, 0), uint64(0))
	is.Equal(EnumerateSubset(mask, n, 1<<n-1), mask)
}

func TestEnumerateSubsetBitOrder(t *testing.T) {
	is := is.New(t)
	mask := uint64(1<<5 | 1<<9 | 1<<40)
	is.Equal(EnumerateSubset(mask, 3, 1), uint64(1<<5))
	is.Equal(EnumerateSubset(mask, 3, 2), uint64(1<<9))
	is.Equal(EnumerateSubset(mask, 3, 5), uint64(1<<5|1<<40))
}

func TestBitboardString(t *testing.T) {
	is := is.New(t)
	is.Equal(BitboardString(0), "()")
	is.Equal(BitboardString(1<<0|1<<52), "(a8,e2)")
}
