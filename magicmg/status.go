package magicmg

// Outcome is the terminal status of a position.
type Outcome int8

const (
	Ongoing   Outcome = -1
	Draw      Outcome = 0
	WhiteWins Outcome = 1
	BlackWins Outcome = 2
)

// Code is the integer form used by the shell protocol.
func (o Outcome) Code() int { return int(o) }

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Draw:
		return "draw"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	}
	return "unknown"
}

// Outcome reports whether the side to move is stalemated or has lost. A side
// with no legal moves loses if some reply by the other side would capture its
// king, and is stalemated otherwise. The side flag is restored before returning.
func (g *MoveGenerator) Outcome(p *Position) Outcome {
	if len(g.LegalMoves(p)) > 0 {
		return Ongoing
	}
	stuck := p.SideToMove()
	p.SetSideToMove(stuck.Other())
	defer p.SetSideToMove(stuck)

	if KingSurvives(p, g.GenerateMoves(p)) {
		return Draw
	}
	if stuck == Black {
		return WhiteWins
	}
	return BlackWins
}
