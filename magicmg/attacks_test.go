package magicmg

import (
	"math/bits"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"
)

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

func squaresOf(bb uint64) []Square {
	var out []Square
	for bb != 0 {
		out = append(out, PopLowest(&bb))
	}
	return out
}

func TestParseSquare(t *testing.T) {
	is := is.New(t)
	is.Equal(mustSquare(t, "a8"), Square(0))
	is.Equal(mustSquare(t, "h8"), Square(7))
	is.Equal(mustSquare(t, "e2"), Square(52))
	is.Equal(mustSquare(t, "B1"), Square(57))
	is.Equal(mustSquare(t, "h1"), Square(63))
	is.Equal(Square(52).String(), "e2")
	is.Equal(NoSquare.String(), "-")

	for _, bad := range []string{"", "e", "e9", "i1", "e22", "11"} {
		_, err := ParseSquare(bad)
		is.True(err != nil)
	}
}

func TestLeaperCounts(t *testing.T) {
	cases := []struct {
		sq     Square
		knight int
		king   int
	}{
		{0, 2, 3},
		{7, 2, 3},
		{27, 8, 8},
		{57, 3, 5},
		{60, 4, 5},
		{63, 2, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.knight, bits.OnesCount64(KnightAttacks(c.sq)), "knight on %s", c.sq)
		assert.Equal(t, c.king, bits.OnesCount64(KingAttacks(c.sq)), "king on %s", c.sq)
	}
}

func TestLeapersNeverWrap(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 64; i++ {
		sq := Square(i)
		for _, to := range squaresOf(KnightAttacks(sq)) {
			df := to.File() - sq.File()
			dr := to.Rank() - sq.Rank()
			is.True(df*df+dr*dr == 5)
		}
		for _, to := range squaresOf(KingAttacks(sq)) {
			df := to.File() - sq.File()
			dr := to.Rank() - sq.Rank()
			is.True(df*df <= 1 && dr*dr <= 1)
		}
		is.True(!GetBit(KingAttacks(sq), sq))
	}
}

func TestPawnAttacks(t *testing.T) {
	is := is.New(t)
	e4 := mustSquare(t, "e4")
	is.Equal(PawnAttacks(White, e4), SetBit(SetBit(0, mustSquare(t, "d5")), mustSquare(t, "f5")))
	is.Equal(PawnAttacks(Black, e4), SetBit(SetBit(0, mustSquare(t, "d3")), mustSquare(t, "f3")))

	a2 := mustSquare(t, "a2")
	is.Equal(PawnAttacks(White, a2), SetBit(0, mustSquare(t, "b3")))
	h7 := mustSquare(t, "h7")
	is.Equal(PawnAttacks(Black, h7), SetBit(0, mustSquare(t, "g6")))
	is.Equal(PawnAttacks(White, mustSquare(t, "c8")), uint64(0))
	is.Equal(PawnAttacks(Black, mustSquare(t, "c1")), uint64(0))
}

func TestRelevantMasks(t *testing.T) {
	cases := []struct {
		sq     string
		bishop int
		rook   int
	}{
		{"a8", 6, 12},
		{"h1", 6, 12},
		{"d5", 9, 10},
		{"e4", 9, 10},
		{"b7", 5, 10},
		{"a4", 5, 11},
	}
	for _, c := range cases {
		sq := mustSquare(t, c.sq)
		assert.Equal(t, c.bishop, RelevantBits(SliderBishop, sq), "bishop on %s", c.sq)
		assert.Equal(t, c.rook, RelevantBits(SliderRook, sq), "rook on %s", c.sq)
		edges := uint64(0xFF000000000000FF) | FileA | FileH
		assert.Zero(t, RelevantMask(SliderBishop, sq)&edges, "bishop mask on %s touches edge", c.sq)
	}
}

func TestFullMoveStopsAtFirstBlocker(t *testing.T) {
	is := is.New(t)
	d4 := mustSquare(t, "d4")
	blockers := SetBit(SetBit(0, mustSquare(t, "d6")), mustSquare(t, "f4"))
	got := FullMove(SliderRook, d4, blockers)
	for _, s := range []string{"d5", "d6", "e4", "f4", "d3", "d1", "a4"} {
		is.True(GetBit(got, mustSquare(t, s)))
	}
	for _, s := range []string{"d7", "g4", "d4"} {
		is.True(!GetBit(got, mustSquare(t, s)))
	}
	is.Equal(bits.OnesCount64(FullMove(SliderBishop, mustSquare(t, "a8"), 0)), 7)
}

// flip converts between a8=0 and a1=0 square numbering.
func flip(bb uint64) uint64 { return bits.ReverseBytes64(bb) }

func TestFullMoveMatchesDragontooth(t *testing.T) {
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	for i := 0; i < 64; i++ {
		sq := Square(i)
		theirs := uint8(i ^ 56)
		for n := 0; n < 64; n++ {
			occ := rng.Uint64n(^uint64(0)) & rng.Uint64n(^uint64(0))
			assert.Equal(t, dragontoothmg.CalculateRookMoveBitboard(theirs, flip(occ)), flip(FullMove(SliderRook, sq, occ)),
				"rook on %s with %s", sq, BitboardString(occ))
			assert.Equal(t, dragontoothmg.CalculateBishopMoveBitboard(theirs, flip(occ)), flip(FullMove(SliderBishop, sq, occ)),
				"bishop on %s with %s", sq, BitboardString(occ))
		}
	}
}
