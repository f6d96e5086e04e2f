package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
	"github.com/jimherefornonsense/mini-chess/config"
	"github.com/jimherefornonsense/mini-chess/crosscheck"
	"github.com/jimherefornonsense/mini-chess/shell"
)

func main() {
	cfg := &config.Config{}
	if _, err := cfg.Load("perft", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Debug().Interface("settings", cfg.SanitizedSettings()).Msg("loaded config")

	depth := cfg.GetInt(config.ConfigDepth)
	if depth <= 0 {
		fmt.Fprintln(os.Stderr, "--depth must be > 0")
		os.Exit(2)
	}
	color, err := bb.ParseColor(cfg.GetString(config.ConfigColor))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	layout, err := cfg.StartingLayout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "layout error: %v\n", err)
		os.Exit(2)
	}
	board, err := bb.NewBoard(layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "board error: %v\n", err)
		os.Exit(2)
	}

	if cfg.GetBool(config.ConfigVerify) {
		report, err := crosscheck.Verify(board, layout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify error: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(report)
		if !report.OK() {
			os.Exit(1)
		}
	}

	// Optional divide output
	if cfg.GetBool(config.ConfigDivide) {
		div, err := bb.Divide(board, layout, color)
		if err != nil {
			fmt.Fprintf(os.Stderr, "divide error: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(shell.FormatDivide(div))
		return
	}

	// Optional CPU profiling
	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	repeat := max(cfg.GetInt(config.ConfigRepeat), 1)
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < repeat; i++ {
		nodes, err := bb.Perft(board, layout, color, depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft error: %v\n", err)
			os.Exit(2)
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Layout Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", layout, depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if path := cfg.GetString(config.ConfigMemProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
