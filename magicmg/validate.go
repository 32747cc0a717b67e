package magicmg

// ValidateMoves keeps the candidates after which no opponent reply captures
// the mover's king. Every candidate is applied and undone, so p is unchanged on
// return.
func (g *MoveGenerator) ValidateMoves(candidates MoveList, p *Position) MoveList {
	legal := make(MoveList, 0, len(candidates))
	replies := make(MoveList, 0, 64)
	for _, m := range candidates {
		p.ApplyMove(m)
		replies = g.GenerateMovesInto(p, replies[:0])
		if KingSurvives(p, replies) {
			legal = append(legal, m)
		}
		p.UndoMove()
	}
	return legal
}

// KingSurvives applies each reply for the side to move and reports whether the
// other side's king is still on the board after every one of them. It stops at
// the first reply that captures the king.
func KingSurvives(p *Position, replies MoveList) bool {
	king := PieceFromType(p.SideToMove().Other(), PieceTypeKing)
	for _, m := range replies {
		p.ApplyMove(m)
		captured := p.Pieces(king) == 0
		p.UndoMove()
		if captured {
			return false
		}
	}
	return true
}

// LegalMoves generates and validates the moves for the side to move.
func (g *MoveGenerator) LegalMoves(p *Position) MoveList {
	return g.ValidateMoves(g.GenerateMoves(p), p)
}

func (g *MoveGenerator) LegalMoveCount(p *Position) int {
	return len(g.LegalMoves(p))
}
