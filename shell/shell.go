package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
	"github.com/jimherefornonsense/mini-chess/config"
)

var errExit = errors.New("exit requested")

// ShellController owns the position being inspected. The board keeps only
// colors; the layout is the kind-per-square map the engine leaves to its
// caller, and every mutation goes through both.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	board  *bb.Board
	layout bb.Layout
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

// NewShellController opens the line editor and loads the configured layout.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	layout, err := cfg.StartingLayout()
	if err != nil {
		return nil, err
	}
	sc, err := newController(cfg, layout)
	if err != nil {
		return nil, err
	}
	sc.l, err = readline.NewEx(&readline.Config{
		Prompt:          "\033[31mminichess>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// newController builds a controller without a terminal.
func newController(cfg *config.Config, layout bb.Layout) (*ShellController, error) {
	sc := &ShellController{cfg: cfg}
	if err := sc.setPosition(layout); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *ShellController) setPosition(layout bb.Layout) error {
	b, err := bb.NewBoard(layout)
	if err != nil {
		return err
	}
	sc.board = b
	sc.layout = layout.Clone()
	return nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l)
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

// Loop reads commands until exit, EOF or an interrupt on an empty line, then
// signals sig. Cleanup closes the editor afterwards.
func (sc *ShellController) Loop(sig chan os.Signal) {
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.dispatch(line)
		if errors.Is(err, errExit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line non-interactively.
func (sc *ShellController) Execute(line string) {
	resp, err := sc.dispatch(line)
	if err != nil && !errors.Is(err, errExit) {
		showMessage("Error: "+err.Error(), os.Stderr)
	} else if resp != nil {
		showMessage(resp.message, os.Stdout)
	}
}

// Cleanup closes the line editor.
func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
	log.Info().Msg("shell closed")
}

func (sc *ShellController) dispatch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("cmd", cmd.cmd).Strs("args", cmd.args).Msg("shell command")

	switch cmd.cmd {
	case "exit", "quit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "show":
		return sc.show(cmd)
	case "bits":
		return sc.showBits(cmd)
	case "moves":
		return sc.moves(cmd)
	case "lift":
		return sc.lift(cmd)
	case "place":
		return sc.place(cmd)
	case "move":
		return sc.move(cmd)
	case "mirror":
		return sc.mirror(cmd)
	case "verify":
		return sc.verify(cmd)
	case "divide":
		return sc.divide(cmd)
	case "perft":
		return sc.perft(cmd)
	case "hash":
		return sc.hash(cmd)
	}
	return nil, fmt.Errorf("command %v not found", strings.TrimSpace(cmd.cmd))
}
