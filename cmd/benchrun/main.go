package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func perft(layout string, depth int) int {
	return run("go", "run", "./cmd/perft", "--layout", layout, "--depth", fmt.Sprint(depth))
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("LAYOUT \t\tDepth \t\tNodes \t\tTime \tNPS")
	for depth := 2; depth <= 5; depth++ {
		perft(bb.MiniLayout, depth)
	}
	for depth := 2; depth <= 4; depth++ {
		perft(bb.StandardLayout, depth)
	}
	os.Exit(0)
}
