package magicmg

import (
	"errors"
	"fmt"
)

// Piece indexes one of the twelve piece planes of a Position.
// White planes come first, each side ordered pawn, knight, bishop, rook, queen, king.
type Piece int8

const (
	NoPiece     Piece = -1
	WhitePawn   Piece = 0
	WhiteKnight Piece = 1
	WhiteBishop Piece = 2
	WhiteRook   Piece = 3
	WhiteQueen  Piece = 4
	WhiteKing   Piece = 5
	BlackPawn   Piece = 6
	BlackKnight Piece = 7
	BlackBishop Piece = 8
	BlackRook   Piece = 9
	BlackQueen  Piece = 10
	BlackKing   Piece = 11

	pieceCount = 12
)

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	PieceTypePawn PieceType = iota
	PieceTypeKnight
	PieceTypeBishop
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p % 6) }

// Color returns the side owning the piece.
func (p Piece) Color() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// PieceFromType combines a side and a colorless type.
func PieceFromType(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

const pieceLetters = "PNBRQKpnbrqk"

// pieceFromChar converts a record letter to a Piece, or NoPiece.
func pieceFromChar(ch rune) Piece {
	for i, l := range pieceLetters {
		if l == ch {
			return Piece(i)
		}
	}
	return NoPiece
}

// charFromPiece converts a Piece to its record letter.
func charFromPiece(p Piece) byte {
	if p < 0 || p >= pieceCount {
		return '?'
	}
	return pieceLetters[p]
}

func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	return string(charFromPiece(p))
}

// Square is a board index: 0 is a8, 7 is h8, 56 is a1 and 63 is h1.
type Square int

const NoSquare Square = -1

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the chess rank, 1 through 8.
func (sq Square) Rank() int { return 8 - int(sq)/8 }

func (sq Square) String() string {
	if uint(sq) >= 64 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '0' + byte(sq.Rank())})
}

var errBadSquare = errors.New("invalid square")

// ParseSquare converts algebraic coordinates ("e2") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", errBadSquare, s)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", errBadSquare, s)
	}
	return Square(int('8'-rank)*8 + int(file-'a')), nil
}
