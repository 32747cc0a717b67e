// Package magicmg is a bitboard move generator for chess: leaper tables,
// magic-indexed slider attacks found by a seeded search, a snapshot-based
// position, and legality by make/unmake.
package magicmg

// MoveGenerator produces pseudo-legal moves using the leaper tables and a
// magic index for sliders. It holds no per-position state and may be shared.
type MoveGenerator struct {
	magic *MagicIndex
}

func NewMoveGenerator(magic *MagicIndex) *MoveGenerator {
	return &MoveGenerator{magic: magic}
}

// Magic returns the index used for slider lookups.
func (g *MoveGenerator) Magic() *MagicIndex { return g.magic }

// GenerateMoves returns the pseudo-legal moves for the side to move.
func (g *MoveGenerator) GenerateMoves(p *Position) MoveList {
	return g.GenerateMovesInto(p, make(MoveList, 0, 48))
}

// GenerateMovesInto appends the pseudo-legal moves for the side to move to dst.
// Moves come out by piece type (pawn through king), then ascending source
// square, then ascending destination. Pawn pushes precede pawn captures.
func (g *MoveGenerator) GenerateMovesInto(p *Position, dst MoveList) MoveList {
	side := p.SideToMove()
	enemy := p.Occupancy(p.CaptureOccupancyIndex())
	all := p.Occupancy(OccupancyBoth)

	pawn := PieceFromType(side, PieceTypePawn)
	for bb := p.Pieces(pawn); bb != 0; {
		src := PopLowest(&bb)
		var one, two Square
		var onStart bool
		if side == White {
			one, two = src-8, src-16
			onStart = src > 47 && src < 56
		} else {
			one, two = src+8, src+16
			onStart = src > 7 && src < 16
		}
		if uint(one) < 64 && !GetBit(all, one) {
			dst = append(dst, NewMove(src, one, pawn, false, false, false))
			if onStart && !GetBit(all, two) {
				dst = append(dst, NewMove(src, two, pawn, false, false, false))
			}
		}
		for atk := pawnAttacks[side][src] & enemy; atk != 0; {
			dst = append(dst, NewMove(src, PopLowest(&atk), pawn, true, false, false))
		}
	}

	knight := PieceFromType(side, PieceTypeKnight)
	for bb := p.Pieces(knight); bb != 0; {
		src := PopLowest(&bb)
		dst = appendAttacking(dst, src, knight, knightAttacks[src], enemy, all)
	}

	bishop := PieceFromType(side, PieceTypeBishop)
	for bb := p.Pieces(bishop); bb != 0; {
		src := PopLowest(&bb)
		dst = appendAttacking(dst, src, bishop, g.magic.BishopAttacks(src, all), enemy, all)
	}

	rook := PieceFromType(side, PieceTypeRook)
	for bb := p.Pieces(rook); bb != 0; {
		src := PopLowest(&bb)
		dst = appendAttacking(dst, src, rook, g.magic.RookAttacks(src, all), enemy, all)
	}

	queen := PieceFromType(side, PieceTypeQueen)
	for bb := p.Pieces(queen); bb != 0; {
		src := PopLowest(&bb)
		dst = appendAttacking(dst, src, queen, g.magic.QueenAttacks(src, all), enemy, all)
	}

	king := PieceFromType(side, PieceTypeKing)
	for bb := p.Pieces(king); bb != 0; {
		src := PopLowest(&bb)
		dst = appendAttacking(dst, src, king, kingAttacks[src], enemy, all)
	}
	return dst
}

// appendAttacking emits a capture for each enemy-occupied target and a quiet
// move for each empty one. Friendly targets are dropped.
func appendAttacking(dst MoveList, src Square, pc Piece, attacks, enemy, all uint64) MoveList {
	for attacks != 0 {
		to := PopLowest(&attacks)
		switch {
		case GetBit(enemy, to):
			dst = append(dst, NewMove(src, to, pc, true, false, false))
		case !GetBit(all, to):
			dst = append(dst, NewMove(src, to, pc, false, false, false))
		}
	}
	return dst
}
