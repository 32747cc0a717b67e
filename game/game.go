// Package game wraps a position and a move generator into a session that a
// front end drives with square indices.
package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"chess-rules/config"
	"chess-rules/magicmg"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("no legal moves")
)

// Game is one session. All methods lock, so a Game may be shared between goroutines.
type Game struct {
	mu          sync.Mutex
	gen         *magicmg.MoveGenerator
	pos         *magicmg.Position
	startRecord string
}

// New starts a game from record, loaded laxly.
func New(gen *magicmg.MoveGenerator, record string) *Game {
	pos := magicmg.NewPosition()
	pos.LoadFromRecord(record)
	return &Game{gen: gen, pos: pos, startRecord: record}
}

// NewMoveGenerator builds the magic index named by the config's magic-source.
func NewMoveGenerator(cfg *config.Config) (*magicmg.MoveGenerator, error) {
	var (
		idx *magicmg.MagicIndex
		err error
	)
	switch src := cfg.GetString(config.ConfigMagicSource); src {
	case config.MagicSourceSearch:
		idx, err = magicmg.NewMagicIndex(cfg.MagicOptions())
	case config.MagicSourceFile:
		idx, err = loadMagicFile(cfg.GetString(config.ConfigMagicFile))
	case config.MagicSourcePrecomputed, "":
		idx, err = magicmg.NewMagicIndexFromSet(magicmg.PrecomputedMagics())
	default:
		err = fmt.Errorf("%w: %q", config.ErrBadMagicSource, src)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", cfg.GetString(config.ConfigMagicSource)).
		Str("fingerprint", fmt.Sprintf("%016x", idx.Fingerprint())).Msg("magic tables ready")
	return magicmg.NewMoveGenerator(idx), nil
}

func loadMagicFile(path string) (*magicmg.MagicIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := magicmg.ReadMagicSet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return magicmg.NewMagicIndexFromSet(set)
}

// StartRecord is the record the game was created from.
func (g *Game) StartRecord() string { return g.startRecord }

// Record serializes the current position.
func (g *Game) Record() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.Record()
}

// Load replaces the position with a strictly parsed record and clears the history.
func (g *Game) Load(record string) error {
	pos, err := magicmg.ParseRecord(record)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pos = pos
	return nil
}

// Reset returns to the start record.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pos.LoadFromRecord(g.startRecord)
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() magicmg.MoveList {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen.LegalMoves(g.pos)
}

// SelectSquare returns the legal destinations of the piece on sq.
func (g *Game) SelectSquare(sq magicmg.Square) []magicmg.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen.LegalMoves(g.pos).Destinations(sq)
}

// MovePiece plays the legal move from one square to another.
func (g *Game) MovePiece(from, to magicmg.Square) (magicmg.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.gen.LegalMoves(g.pos).Find(from, to)
	if !ok {
		return 0, fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	g.pos.ApplyMove(m)
	log.Debug().Stringer("move", m).Msg("played")
	return m, nil
}

// RandomMove plays a uniformly chosen legal move.
func (g *Game) RandomMove() (magicmg.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	legal := g.gen.LegalMoves(g.pos)
	if len(legal) == 0 {
		return 0, ErrGameOver
	}
	m := legal[frand.Intn(len(legal))]
	g.pos.ApplyMove(m)
	return m, nil
}

// Undo takes back the last move and returns the squares it touched,
// destination first, recovered from the mover's occupancy before and after.
func (g *Game) Undo() ([]magicmg.Square, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pos.HistoryLen() == 0 {
		return nil, magicmg.ErrNoHistory
	}
	mover := g.pos.CaptureOccupancyIndex()
	after := g.pos.Occupancy(mover)
	g.pos.UndoMove()
	before := g.pos.Occupancy(mover)
	return movedSquares(after^before, magicmg.LowestSquare((after^before)&before)), nil
}

// movedSquares lists the squares of diff, ending with start.
func movedSquares(diff uint64, start magicmg.Square) []magicmg.Square {
	var squares []magicmg.Square
	for diff != 0 {
		squares = append(squares, magicmg.PopLowest(&diff))
	}
	if len(squares) > 0 && squares[0] == start {
		for i, j := 0, len(squares)-1; i < j; i, j = i+1, j-1 {
			squares[i], squares[j] = squares[j], squares[i]
		}
	}
	return squares
}

// Status reports whether the game is over and who won.
func (g *Game) Status() magicmg.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen.Outcome(g.pos)
}

// Bitboards returns the twelve piece planes.
func (g *Game) Bitboards() [12]uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.State().Pieces
}

// Occupancy returns white, black and combined occupancy.
func (g *Game) Occupancy() [3]uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.State().Occupancy
}

func (g *Game) WhiteToMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.WhiteToMove()
}

func (g *Game) PieceAt(sq magicmg.Square) magicmg.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.PieceAt(sq)
}

// Perft runs a parallel divide on a snapshot of the current position.
func (g *Game) Perft(ctx context.Context, depth, workers int) (map[magicmg.Move]uint64, error) {
	g.mu.Lock()
	pos := g.pos.Clone()
	g.mu.Unlock()
	return g.gen.PerftDivideParallel(ctx, pos, depth, workers)
}
