package magicmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartRecord is the standard initial chess position.
const StartRecord = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidRecord = errors.New("invalid position record")

// LoadFromRecord resets p and loads a position record. Parsing is lax: digits
// skip empty squares, piece letters are placed in scan order, and every other
// character in the placement field is ignored. An optional second field of "b"
// gives black the move. Malformed records never fail; they just load whatever
// the scan produced.
func (p *Position) LoadFromRecord(record string) {
	p.cur = State{}
	p.history = p.history[:0]

	fields := strings.Fields(record)
	if len(fields) == 0 {
		return
	}
	sq := 0
	for _, ch := range fields[0] {
		if ch >= '0' && ch <= '9' {
			sq += int(ch - '0')
			continue
		}
		pc := pieceFromChar(ch)
		if pc == NoPiece {
			continue
		}
		p.cur.Pieces[pc] = SetBit(p.cur.Pieces[pc], Square(sq))
		sq++
	}
	if len(fields) > 1 && fields[1] == "b" {
		p.cur.Side = Black
	}
	p.UpdateOccupancy()
}

// ParseRecord is the strict counterpart of LoadFromRecord. It requires eight
// ranks of eight squares and a well-formed remainder. Castling and en-passant
// fields are accepted but carry no meaning here.
func ParseRecord(record string) (*Position, error) {
	fields := strings.Fields(record)
	if len(fields) == 0 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: want 1 to 6 fields, got %d", ErrInvalidRecord, len(fields))
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidRecord, len(ranks))
	}

	p := NewPosition()
	sq := 0
	for i, rank := range ranks {
		width := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				width += int(ch - '0')
			case pieceFromChar(ch) != NoPiece:
				if width < 8 {
					pc := pieceFromChar(ch)
					p.cur.Pieces[pc] = SetBit(p.cur.Pieces[pc], Square(sq+width))
				}
				width++
			default:
				return nil, fmt.Errorf("%w: unexpected %q in rank %d", ErrInvalidRecord, ch, 8-i)
			}
		}
		if width != 8 {
			return nil, fmt.Errorf("%w: rank %d covers %d squares", ErrInvalidRecord, 8-i, width)
		}
		sq += 8
	}

	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			p.cur.Side = Black
		default:
			return nil, fmt.Errorf("%w: active color %q", ErrInvalidRecord, fields[1])
		}
	}
	if len(fields) > 2 && strings.Trim(fields[2], "KQkq") != "" && fields[2] != "-" {
		return nil, fmt.Errorf("%w: castling field %q", ErrInvalidRecord, fields[2])
	}
	if len(fields) > 3 && fields[3] != "-" {
		if _, err := ParseSquare(fields[3]); err != nil {
			return nil, fmt.Errorf("%w: en passant field: %v", ErrInvalidRecord, err)
		}
	}
	for _, f := range fields[min(len(fields), 4):] {
		if n, err := strconv.Atoi(f); err != nil || n < 0 {
			return nil, fmt.Errorf("%w: move counter %q", ErrInvalidRecord, f)
		}
	}
	p.UpdateOccupancy()
	return p, nil
}

// Record serializes the board. Castling and en passant are always "-" and the
// counters are fixed at "0 1" since neither is tracked.
func (p *Position) Record() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(Square(row*8 + file))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if p.cur.Side == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
