package magicmg

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(t testing.TB) *MoveGenerator {
	t.Helper()
	return NewMoveGenerator(precomputedIndex(t))
}

// play applies each coordinate move ("e2e4") after checking it is legal.
func play(t *testing.T, g *MoveGenerator, p *Position, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		from, to := mustSquare(t, mv[:2]), mustSquare(t, mv[2:])
		m, ok := g.LegalMoves(p).Find(from, to)
		require.True(t, ok, "%s is not legal in %s", mv, p.Record())
		p.ApplyMove(m)
	}
}

func TestStartPositionPawnMoves(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord(StartRecord)
	legal := g.LegalMoves(p)
	is.Equal(legal.Destinations(52), []Square{44, 36})
	is.Equal(legal.FromSquare(52).String(), "e2e3 e2e4")
}

func TestStartPositionKnightMoves(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord(StartRecord)
	is.Equal(g.LegalMoves(p).Destinations(57), []Square{40, 42})
}

func TestGenerationOrder(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	moves := g.GenerateMoves(loadRecord(StartRecord))
	is.Equal(len(moves), 20)
	is.Equal(moves[:3].String(), "a2a3 a2a4 b2b3")
	is.Equal(moves[16:].String(), "b1a3 b1c3 g1f3 g1h3")
	for i, m := range moves {
		is.True(!m.IsCapture())
		if i > 0 {
			prev := moves[i-1]
			if prev.Piece() == m.Piece() {
				is.True(prev.From() <= m.From())
			} else {
				is.True(prev.Piece() < m.Piece())
			}
		}
	}
}

func TestBlackMovesFromStart(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1")
	legal := g.LegalMoves(p)
	is.Equal(len(legal), 20)
	is.Equal(legal.Destinations(mustSquare(t, "e7")), []Square{mustSquare(t, "e6"), mustSquare(t, "e5")})
	for _, m := range legal {
		is.Equal(m.Piece().Color(), Black)
	}
}

func TestSlidingPiecesAfterOpening(t *testing.T) {
	g := testGenerator(t)
	p := loadRecord(StartRecord)
	play(t, g, p, "d2d4", "c7c6", "h2h3", "b7b6", "g1f3", "d7d6")
	legal := g.LegalMoves(p)
	assert.Len(t, legal.Destinations(mustSquare(t, "c1")), 5)
	assert.Len(t, legal.Destinations(mustSquare(t, "d1")), 2)
	assert.Len(t, legal.Destinations(mustSquare(t, "h1")), 2)
}

func TestKingMove(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord(StartRecord)
	play(t, g, p, "e2e4", "c7c6", "e1e2")
	is.True(GetBit(p.Pieces(WhiteKing), 52))
	is.Equal(p.PieceAt(60), NoPiece)
}

func TestPawnCaptures(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord("4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1")
	moves := g.GenerateMoves(p).FromSquare(mustSquare(t, "e4"))
	is.Equal(moves.String(), "e4e5 e4d5 e4f5")
	is.Equal(len(moves.Captures()), 2)
}

func TestBlockedPawnHasNoPush(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	is.Equal(len(g.GenerateMoves(p).FromSquare(mustSquare(t, "e2"))), 0)

	// one step open, two steps blocked
	p = loadRecord("4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
	is.Equal(g.GenerateMoves(p).FromSquare(mustSquare(t, "e2")).String(), "e2e3")
}

func TestPawnOnLastRankDoesNotWrap(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	// pawns on the far rank have nowhere to go without promotion
	p := loadRecord("P3k3/8/8/8/8/8/8/4K2p w - - 0 1")
	is.Equal(len(g.GenerateMoves(p).FromSquare(0)), 0)
	p.SetSideToMove(Black)
	is.Equal(len(g.GenerateMoves(p).FromSquare(63)), 0)
}

func TestFriendlyTargetsDropped(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord("4k3/8/8/8/8/8/8/R3K2r w - - 0 1")
	rook := g.GenerateMoves(p).FromSquare(mustSquare(t, "a1"))
	is.Equal(len(rook), 10) // b1 c1 d1 plus a2..a8
	_, found := rook.Find(mustSquare(t, "a1"), mustSquare(t, "e1"))
	is.True(!found)
	m, found := g.GenerateMoves(p).Find(mustSquare(t, "e1"), mustSquare(t, "f1"))
	is.True(found)
	is.True(!m.IsCapture())
}

func TestQueenAttacksBothRays(t *testing.T) {
	is := is.New(t)
	g := testGenerator(t)
	p := loadRecord("4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	is.Equal(len(g.GenerateMoves(p).FromSquare(mustSquare(t, "d4"))), 27)
}

func TestMoveEncoding(t *testing.T) {
	is := is.New(t)
	m := NewMove(52, 36, WhitePawn, false, false, false)
	is.Equal(m.From(), Square(52))
	is.Equal(m.To(), Square(36))
	is.Equal(m.Piece(), WhitePawn)
	is.Equal(m.String(), "e2e4")
	is.True(!m.IsCapture() && !m.IsCastle() && !m.IsEnPassant())

	c := NewMove(63, 0, BlackKing, true, true, true)
	is.Equal(c.Piece(), BlackKing)
	is.True(c.IsCapture() && c.IsCastle() && c.IsEnPassant())
}

func BenchmarkGenerateMoves(b *testing.B) {
	g := testGenerator(b)
	p := loadRecord("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1")
	buf := make(MoveList, 0, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.GenerateMovesInto(p, buf[:0])
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	g := testGenerator(b)
	p := loadRecord("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.LegalMoves(p)
	}
}
