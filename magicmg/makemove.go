package magicmg

// ApplyMove saves the current state, then moves the piece, removes a captured
// piece, flips the side to move and recomputes occupancy. The move must come
// from the generator for this position.
func (p *Position) ApplyMove(m Move) {
	p.SaveState()

	from, to, pc := m.From(), m.To(), m.Piece()
	p.cur.Pieces[pc] = ClearBit(SetBit(p.cur.Pieces[pc], to), from)

	if m.IsCapture() {
		first := PieceFromType(pc.Color().Other(), PieceTypePawn)
		for victim := first; victim < first+6; victim++ {
			if GetBit(p.cur.Pieces[victim], to) {
				p.cur.Pieces[victim] = ClearBit(p.cur.Pieces[victim], to)
				break
			}
		}
	}

	p.cur.Side = p.cur.Side.Other()
	p.UpdateOccupancy()
}

// UndoMove restores the state saved by the matching ApplyMove.
func (p *Position) UndoMove() {
	p.UndoState()
}
