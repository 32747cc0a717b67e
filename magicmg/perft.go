package magicmg

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Perft counts the legal move paths of the given depth from p.
func (g *MoveGenerator) Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([]MoveList, 2*(depth+1))}
	return g.perftRec(p, depth, &pc)
}

// perftCtx holds two reusable buffers per depth: own moves and replies.
type perftCtx struct {
	bufs []MoveList
}

func (pc *perftCtx) bufFor(depth, slot int) MoveList {
	i := 2*depth + slot
	if pc.bufs[i] == nil {
		pc.bufs[i] = make(MoveList, 0, 64)
	}
	return pc.bufs[i][:0]
}

func (g *MoveGenerator) perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	var nodes uint64
	moves := g.GenerateMovesInto(p, pc.bufFor(depth, 0))
	for _, m := range moves {
		p.ApplyMove(m)
		replies := g.GenerateMovesInto(p, pc.bufFor(depth, 1))
		if KingSurvives(p, replies) {
			if depth == 1 {
				nodes++
			} else {
				nodes += g.perftRec(p, depth-1, pc)
			}
		}
		// Keep the grown buffers for the next sibling.
		pc.bufs[2*depth+1] = replies
		p.UndoMove()
	}
	pc.bufs[2*depth] = moves
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func (g *MoveGenerator) PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range g.LegalMoves(p) {
		p.ApplyMove(m)
		result[m] = g.Perft(p, depth-1)
		p.UndoMove()
	}
	return result
}

// PerftDivideParallel is PerftDivide with one goroutine per root move, at most
// workers at a time. Each goroutine works on its own clone of p.
func (g *MoveGenerator) PerftDivideParallel(ctx context.Context, p *Position, depth, workers int) (map[Move]uint64, error) {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result, nil
	}
	roots := g.LegalMoves(p)
	counts := make([]uint64, len(roots))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, m := range roots {
		child := p.Clone()
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child.ApplyMove(m)
			counts[i] = g.Perft(child, depth-1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for i, m := range roots {
		result[m] = counts[i]
	}
	return result, nil
}
