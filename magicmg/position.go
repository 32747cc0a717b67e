package magicmg

import (
	"errors"
	"fmt"
)

// Occupancy vector indices.
const (
	OccupancyWhite = 0
	OccupancyBlack = 1
	OccupancyBoth  = 2
)

var (
	ErrNoHistory       = errors.New("no saved state to restore")
	ErrCorruptPosition = errors.New("inconsistent position")
)

// State is a complete, comparable board snapshot: the twelve piece planes in
// Piece order, the derived occupancies and the side to move.
type State struct {
	Pieces    [pieceCount]uint64
	Occupancy [3]uint64
	Side      Color
}

// occupancyOf derives the three occupancy vectors from the piece planes. It is
// the only place occupancy is computed.
func occupancyOf(pieces *[pieceCount]uint64) [3]uint64 {
	var occ [3]uint64
	for p := WhitePawn; p <= WhiteKing; p++ {
		occ[OccupancyWhite] |= pieces[p]
	}
	for p := BlackPawn; p <= BlackKing; p++ {
		occ[OccupancyBlack] |= pieces[p]
	}
	occ[OccupancyBoth] = occ[OccupancyWhite] | occ[OccupancyBlack]
	return occ
}

// Position is the mutable board plus a stack of saved snapshots. It is not safe
// for concurrent use; callers serialize access per instance.
type Position struct {
	cur     State
	history []State
}

// NewPosition returns an empty board with white to move.
func NewPosition() *Position {
	return &Position{history: make([]State, 0, 16)}
}

// Pieces returns the bit-vector of piece p.
func (p *Position) Pieces(pc Piece) uint64 { return p.cur.Pieces[pc] }

// Occupancy returns occupancy vector i (OccupancyWhite, OccupancyBlack or OccupancyBoth).
func (p *Position) Occupancy(i int) uint64 { return p.cur.Occupancy[i] }

func (p *Position) SideToMove() Color { return p.cur.Side }

func (p *Position) WhiteToMove() bool { return p.cur.Side == White }

// SetSideToMove overrides the side flag without touching the history.
func (p *Position) SetSideToMove(c Color) { p.cur.Side = c }

// State returns a copy of the current snapshot.
func (p *Position) State() State { return p.cur }

// SetState replaces the board, recomputing occupancy from the planes.
func (p *Position) SetState(s State) {
	p.cur = s
	p.UpdateOccupancy()
}

// UpdateOccupancy recomputes the occupancy vectors from the piece planes.
func (p *Position) UpdateOccupancy() {
	p.cur.Occupancy = occupancyOf(&p.cur.Pieces)
}

// SaveState pushes the current snapshot.
func (p *Position) SaveState() {
	p.history = append(p.history, p.cur)
}

// UndoState pops the latest snapshot. Calling it without a matching SaveState panics.
func (p *Position) UndoState() {
	n := len(p.history) - 1
	p.cur = p.history[n]
	p.history = p.history[:n]
}

// TryUndoState is UndoState for callers that cannot prove a prior save.
func (p *Position) TryUndoState() error {
	if len(p.history) == 0 {
		return ErrNoHistory
	}
	p.UndoState()
	return nil
}

func (p *Position) HistoryLen() int { return len(p.history) }

// ClearHistory drops all saved snapshots.
func (p *Position) ClearHistory() { p.history = p.history[:0] }

// CaptureOccupancyIndex is the occupancy index of the side not to move.
func (p *Position) CaptureOccupancyIndex() int { return int(p.cur.Side.Other()) }

// FriendlyOccupancyIndex is the occupancy index of the side to move.
func (p *Position) FriendlyOccupancyIndex() int { return int(p.cur.Side) }

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if !GetBit(p.cur.Occupancy[OccupancyBoth], sq) {
		return NoPiece
	}
	for pc := WhitePawn; pc <= BlackKing; pc++ {
		if GetBit(p.cur.Pieces[pc], sq) {
			return pc
		}
	}
	return NoPiece
}

// Put places pc on sq, clearing whatever stood there.
func (p *Position) Put(pc Piece, sq Square) {
	for i := range p.cur.Pieces {
		p.cur.Pieces[i] = ClearBit(p.cur.Pieces[i], sq)
	}
	p.cur.Pieces[pc] = SetBit(p.cur.Pieces[pc], sq)
	p.UpdateOccupancy()
}

// Clone returns a deep copy, history included.
func (p *Position) Clone() *Position {
	c := &Position{cur: p.cur, history: make([]State, len(p.history), cap(p.history))}
	copy(c.history, p.history)
	return c
}

// Validate checks that occupancy matches the planes and that no square holds two pieces.
func (p *Position) Validate() error {
	if want := occupancyOf(&p.cur.Pieces); want != p.cur.Occupancy {
		return fmt.Errorf("%w: occupancy %s does not match pieces %s",
			ErrCorruptPosition, BitboardString(p.cur.Occupancy[OccupancyBoth]), BitboardString(want[OccupancyBoth]))
	}
	var seen uint64
	for pc := WhitePawn; pc <= BlackKing; pc++ {
		if overlap := seen & p.cur.Pieces[pc]; overlap != 0 {
			return fmt.Errorf("%w: %s shares %s", ErrCorruptPosition, pc, BitboardString(overlap))
		}
		seen |= p.cur.Pieces[pc]
	}
	return nil
}
