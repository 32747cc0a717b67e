package shell

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-rules/config"
	"chess-rules/game"
	"chess-rules/magicmg"
)

func newTestController(t *testing.T) *ShellController {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Load(nil))
	gen, err := game.NewMoveGenerator(cfg)
	require.NoError(t, err)
	return NewShellController(cfg, game.New(gen, magicmg.StartRecord))
}

func TestShellSession(t *testing.T) {
	sc := newTestController(t)
	ctx := context.Background()
	steps := []struct {
		line string
		want string
	}{
		{"select e2", "e3 e4"},
		{"select b1", "a3 c3"},
		{"move e2 e4", "e2e4"},
		{"side", "black"},
		{"move e7e5", "e7e5"},
		{"undo", "e5 e7"},
		{"undo", "e4 e2"},
		{"status", "ongoing (-1)"},
		{"record", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"bitboard K", "(e1)"},
		{"bitboard q", "(d8)"},
	}
	for _, s := range steps {
		got, err := sc.Execute(ctx, s.line)
		require.NoError(t, err, s.line)
		assert.Equal(t, s.want, got, s.line)
	}
}

func TestShellLoadAndStatus(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	ctx := context.Background()

	out, err := sc.Execute(ctx, `load "7k/6Q1/5K2/8/8/8/8/8 b - - 0 1"`)
	is.NoErr(err)
	is.True(strings.HasSuffix(out, "black to move"))

	out, err = sc.Execute(ctx, "status")
	is.NoErr(err)
	is.Equal(out, "white wins (1)")

	// unquoted fields are joined back together
	_, err = sc.Execute(ctx, "load 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	is.NoErr(err)
	out, err = sc.Execute(ctx, "status")
	is.NoErr(err)
	is.Equal(out, "draw (0)")

	out, err = sc.Execute(ctx, "random 3")
	is.NoErr(err)
	is.Equal(out, "")
}

func TestShellBoard(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	out, err := sc.Execute(context.Background(), "board")
	is.NoErr(err)
	lines := strings.Split(out, "\n")
	is.Equal(lines[0], "8  r n b q k b n r")
	is.Equal(lines[4], "4  . . . . . . . .")
	is.Equal(lines[7], "1  R N B Q K B N R")
	is.Equal(lines[9], "white to move")
}

func TestShellPerft(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	out, err := sc.Execute(context.Background(), "perft 2")
	is.NoErr(err)
	lines := strings.Split(out, "\n")
	is.Equal(len(lines), 21)
	is.Equal(lines[0], "a2a3: 20")
	is.Equal(lines[20], "Total: 400")
}

func TestShellRandomAndUndo(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	ctx := context.Background()
	out, err := sc.Execute(ctx, "random 4")
	is.NoErr(err)
	is.Equal(len(strings.Fields(out)), 4)
	for i := 0; i < 4; i++ {
		_, err := sc.Execute(ctx, "undo")
		is.NoErr(err)
	}
	_, err = sc.Execute(ctx, "undo")
	is.True(errors.Is(err, magicmg.ErrNoHistory))
}

func TestShellErrors(t *testing.T) {
	sc := newTestController(t)
	ctx := context.Background()
	cases := []struct {
		line string
		err  error
	}{
		{"fly", errUnknownCommand},
		{"help fly", errUnknownCommand},
		{"select", errArgs},
		{"move e2", errArgs},
		{"move e2 e5", game.ErrIllegalMove},
		{"perft zero", errArgs},
		{"random -2", errArgs},
		{"bitboard X", errArgs},
		{"load 8/8 w", magicmg.ErrInvalidRecord},
		{"exit", ErrQuit},
	}
	for _, c := range cases {
		_, err := sc.Execute(ctx, c.line)
		assert.ErrorIs(t, err, c.err, c.line)
	}
	_, err := sc.Execute(ctx, "select z9")
	assert.Error(t, err)
	_, err = sc.Execute(ctx, `load "unterminated`)
	assert.Error(t, err)
}

func TestShellHelp(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	out, err := sc.Execute(context.Background(), "help")
	is.NoErr(err)
	is.True(strings.Contains(out, "perft"))
	out, err = sc.Execute(context.Background(), "help move")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "move <from> <to>"))
	out, err = sc.Execute(context.Background(), "   ")
	is.NoErr(err)
	is.Equal(out, "")
}
