package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
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

var perftRuns = []struct {
	label  string
	record string
	depth  int
}{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Midgame", "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10", 3},
}

// Usage: go run ./cmd/benchrun [-short]
func main() {
	benchArgs := []string{"test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"}
	if len(os.Args) > 1 && os.Args[1] == "-short" {
		benchArgs = append(benchArgs, "-short")
	}
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := run("go", benchArgs...); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, r := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(r.depth), "-label", r.label}
		if r.record != "" {
			args = append(args, "-record", r.record)
		}
		run("go", args...)
	}
}
