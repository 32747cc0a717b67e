package shell

import (
	"fmt"
	"sort"
	"strings"
)

var usageTopics = map[string]string{
	"board":     "board\n    draw the current position, white at the bottom",
	"record":    "record\n    print the position record of the current position",
	"load":      "load <record>\n    replace the position (quote the record or pass its fields)",
	"reset":     "reset\n    return to the start position",
	"moves":     "moves\n    list the legal moves for the side to move",
	"select":    "select <square>\n    list the legal destinations of the piece on a square, e.g. select e2",
	"move":      "move <from> <to>\n    play a legal move, e.g. move e2 e4",
	"undo":      "undo\n    take back the last move and show the squares it touched",
	"status":    "status\n    report ongoing, draw, white wins or black wins with its code",
	"random":    "random [n]\n    play n random legal moves (default 1)",
	"perft":     "perft <depth>\n    count move paths below each legal move",
	"bitboard":  "bitboard <piece>\n    show the squares of one piece plane, e.g. bitboard P or bitboard k",
	"occupancy": "occupancy\n    show white, black and combined occupancy",
	"side":      "side\n    print the side to move",
	"help":      "help [command]\n    show this list or the usage of one command",
	"exit":      "exit\n    leave the shell",
}

func usage(topic string) (string, error) {
	if topic == "" {
		names := make([]string, 0, len(usageTopics))
		for name := range usageTopics {
			names = append(names, name)
		}
		sort.Strings(names)
		return "commands: " + strings.Join(names, ", ") + "\ntype help <command> for details", nil
	}
	u, ok := usageTopics[topic]
	if !ok {
		return "", fmt.Errorf("%w: %s", errUnknownCommand, topic)
	}
	return u, nil
}
