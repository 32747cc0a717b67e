package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"

	"chess-rules/config"
	"chess-rules/game"
	"chess-rules/magicmg"
)

var (
	// ErrQuit is returned by Execute for the exit command.
	ErrQuit           = errors.New("quit")
	errUnknownCommand = errors.New("unknown command")
	errArgs           = errors.New("wrong arguments")
)

// ShellController turns text commands into calls on one game.
type ShellController struct {
	config *config.Config
	game   *game.Game
	l      *readline.Instance
}

func NewShellController(cfg *config.Config, g *game.Game) *ShellController {
	return &ShellController{config: cfg, game: g}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// Execute runs one command line and returns its output.
func (sc *ShellController) Execute(ctx context.Context, line string) (string, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		return usage(strings.Join(args, " "))
	case "exit", "quit":
		return "", ErrQuit
	case "board":
		return sc.board(), nil
	case "record":
		return sc.game.Record(), nil
	case "load":
		if len(args) == 0 {
			return "", fmt.Errorf("%w: load <record>", errArgs)
		}
		if err := sc.game.Load(strings.Join(args, " ")); err != nil {
			return "", err
		}
		return sc.board(), nil
	case "reset":
		sc.game.Reset()
		return sc.board(), nil
	case "moves":
		return sc.game.LegalMoves().String(), nil
	case "select":
		return sc.selectSquare(args)
	case "move":
		return sc.move(args)
	case "undo":
		squares, err := sc.game.Undo()
		if err != nil {
			return "", err
		}
		return joinSquares(squares), nil
	case "status":
		o := sc.game.Status()
		return fmt.Sprintf("%s (%d)", o, o.Code()), nil
	case "random":
		return sc.random(args)
	case "perft":
		return sc.perft(ctx, args)
	case "bitboard":
		return sc.bitboard(args)
	case "occupancy":
		occ := sc.game.Occupancy()
		return fmt.Sprintf("white %s\nblack %s\nboth  %s",
			magicmg.BitboardString(occ[magicmg.OccupancyWhite]),
			magicmg.BitboardString(occ[magicmg.OccupancyBlack]),
			magicmg.BitboardString(occ[magicmg.OccupancyBoth])), nil
	case "side":
		if sc.game.WhiteToMove() {
			return "white", nil
		}
		return "black", nil
	}
	return "", fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

func parseSquares(args []string, n int, usage string) ([]magicmg.Square, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s", errArgs, usage)
	}
	out := make([]magicmg.Square, n)
	for i, a := range args {
		sq, err := magicmg.ParseSquare(a)
		if err != nil {
			return nil, err
		}
		out[i] = sq
	}
	return out, nil
}

func joinSquares(squares []magicmg.Square) string {
	parts := make([]string, len(squares))
	for i, s := range squares {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func (sc *ShellController) selectSquare(args []string) (string, error) {
	sqs, err := parseSquares(args, 1, "select <square>")
	if err != nil {
		return "", err
	}
	return joinSquares(sc.game.SelectSquare(sqs[0])), nil
}

func (sc *ShellController) move(args []string) (string, error) {
	// accept "move e2e4" as well as "move e2 e4"
	if len(args) == 1 && len(args[0]) == 4 {
		args = []string{args[0][:2], args[0][2:]}
	}
	sqs, err := parseSquares(args, 2, "move <from> <to>")
	if err != nil {
		return "", err
	}
	m, err := sc.game.MovePiece(sqs[0], sqs[1])
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func (sc *ShellController) random(args []string) (string, error) {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return "", fmt.Errorf("%w: random [n]", errArgs)
		}
	}
	played := make([]string, 0, n)
	for i := 0; i < n; i++ {
		m, err := sc.game.RandomMove()
		if errors.Is(err, game.ErrGameOver) {
			break
		} else if err != nil {
			return "", err
		}
		played = append(played, m.String())
	}
	return strings.Join(played, " "), nil
}

func (sc *ShellController) perft(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: perft <depth>", errArgs)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return "", fmt.Errorf("%w: depth must be a positive integer", errArgs)
	}
	div, err := sc.game.Perft(ctx, depth, runtime.GOMAXPROCS(0))
	if err != nil {
		return "", err
	}
	moves := maps.Keys(div)
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
	var sb strings.Builder
	var total uint64
	for _, m := range moves {
		fmt.Fprintf(&sb, "%s: %d\n", m, div[m])
		total += div[m]
	}
	fmt.Fprintf(&sb, "Total: %d", total)
	return sb.String(), nil
}

func (sc *ShellController) bitboard(args []string) (string, error) {
	if len(args) != 1 || len(args[0]) != 1 {
		return "", fmt.Errorf("%w: bitboard <piece>", errArgs)
	}
	idx := strings.IndexByte("PNBRQKpnbrqk", args[0][0])
	if idx < 0 {
		return "", fmt.Errorf("%w: unknown piece %q", errArgs, args[0])
	}
	return magicmg.BitboardString(sc.game.Bitboards()[idx]), nil
}

// board draws rank 8 at the top.
func (sc *ShellController) board() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d ", 8-row)
		for file := 0; file < 8; file++ {
			pc := sc.game.PieceAt(magicmg.Square(row*8 + file))
			if pc == magicmg.NoPiece {
				sb.WriteString(" .")
			} else {
				sb.WriteString(" " + pc.String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	if sc.game.WhiteToMove() {
		sb.WriteString("white to move")
	} else {
		sb.WriteString("black to move")
	}
	return sb.String()
}

// Loop reads commands until exit, EOF or an interrupt on an empty line.
func (sc *ShellController) Loop(ctx context.Context) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mchess>\033[0m ",
		HistoryFile:     sc.config.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	sc.l = l
	defer sc.l.Close()

	showMessage(sc.board(), sc.l.Stdout())
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		out, err := sc.Execute(ctx, strings.TrimSpace(line))
		if errors.Is(err, ErrQuit) {
			break
		} else if err != nil {
			log.Error().Err(err).Msg("")
			continue
		}
		if out != "" {
			showMessage(out, sc.l.Stdout())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
	return nil
}
