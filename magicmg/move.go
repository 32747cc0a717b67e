package magicmg

import (
	"strings"

	"github.com/samber/lo"
)

// Move encodes a move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift  = 0  // 6 bits
	moveToShift    = 6  // 6 bits
	movePieceShift = 12 // 4 bits
	moveFlagShift  = 16 // 3 bits
)

// Move flags
const (
	FlagCapture   = 1 << 0
	FlagCastle    = 1 << 1
	FlagEnPassant = 1 << 2
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece Piece, capture, castle, enPassant bool) Move {
	var flags uint32
	if capture {
		flags |= FlagCapture
	}
	if castle {
		flags |= FlagCastle
	}
	if enPassant {
		flags |= FlagEnPassant
	}
	return Move(uint32(from&0x3F)<<moveFromShift |
		uint32(to&0x3F)<<moveToShift |
		uint32(piece&0xF)<<movePieceShift |
		flags<<moveFlagShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Piece returns the plane index of the moving piece.
func (m Move) Piece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x7) }

func (m Move) IsCapture() bool { return m.Flags()&FlagCapture != 0 }

// IsCastle is never set by the generator; castling is not implemented.
func (m Move) IsCastle() bool { return m.Flags()&FlagCastle != 0 }

// IsEnPassant is never set by the generator; en passant is not implemented.
func (m Move) IsEnPassant() bool { return m.Flags()&FlagEnPassant != 0 }

// String produces coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From().String() + m.To().String()
}

// MoveList holds moves in generation order.
type MoveList []Move

// FromSquare returns the moves starting on sq, keeping their order.
func (l MoveList) FromSquare(sq Square) MoveList {
	return lo.Filter(l, func(m Move, _ int) bool { return m.From() == sq })
}

// Destinations returns the target squares of the moves starting on sq.
func (l MoveList) Destinations(sq Square) []Square {
	return lo.FilterMap(l, func(m Move, _ int) (Square, bool) {
		return m.To(), m.From() == sq
	})
}

// Find returns the move from one square to another, if present.
func (l MoveList) Find(from, to Square) (Move, bool) {
	return lo.Find(l, func(m Move) bool { return m.From() == from && m.To() == to })
}

// Captures returns only the capturing moves.
func (l MoveList) Captures() MoveList {
	return lo.Filter(l, func(m Move, _ int) bool { return m.IsCapture() })
}

func (l MoveList) String() string {
	return strings.Join(lo.Map(l, func(m Move, _ int) string { return m.String() }), " ")
}
