package shell

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var helpTopics = map[string]string{
	"load":   "load <layout> | load -file <path>\n    Replace the position. Rows are separated by '/', digits are runs of empty squares.",
	"show":   "show\n    Print the layout with row and column numbers.",
	"bits":   "bits\n    Dump the occupancy as 1s and 0s plus the raw color masks.",
	"moves":  "moves <x> <y> [kind]\n    List the destinations of the piece at (x, y). The kind defaults to the layout letter.",
	"lift":   "lift <x> <y>\n    Remove the piece at (x, y).",
	"place":  "place <x> <y> <white|black> <kind>\n    Put a piece on (x, y), capturing whatever the other side had there.",
	"move":   "move <x1> <y1> <x2> <y2>\n    Lift and place, if the destination is generated for the piece.",
	"mirror": "mirror\n    Show the occupancy and its vertical mirror.",
	"verify": "verify\n    Compare every piece's moves against the reference generators.",
	"divide": "divide [white|black]\n    Count non-stay destinations per piece.",
	"perft":  "perft <depth> [white|black]\n    Count pseudo-legal move sequences.",
	"hash":   "hash\n    Check the board and print its occupancy hash.",
	"help":   "help [command]\n    Show this list, or the usage of one command.",
	"exit":   "exit\n    Leave the shell.",
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		text, ok := helpTopics[cmd.args[0]]
		if !ok {
			return nil, fmt.Errorf("no help for %q", cmd.args[0])
		}
		return msg(text), nil
	}
	topics := maps.Keys(helpTopics)
	slices.Sort(topics)
	return msg("commands: " + strings.Join(topics, ", ") + "\ntype help <command> for details"), nil
}
