package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"chess-rules/magicmg"
)

func main() {
	record := flag.String("record", magicmg.StartRecord, "position record (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	parallel := flag.Int("parallel", 0, "Divide across N goroutines (0 = sequential)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := magicmg.ParseRecord(*record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseRecord error: %v\n", err)
		os.Exit(2)
	}
	idx, err := magicmg.NewMagicIndexFromSet(magicmg.PrecomputedMagics())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading magics: %v\n", err)
		os.Exit(2)
	}
	gen := magicmg.NewMoveGenerator(idx)

	// Optional divide output
	if *divide || *parallel > 0 {
		var div map[magicmg.Move]uint64
		if *parallel > 0 {
			div, err = gen.PerftDivideParallel(context.Background(), pos, *depth, *parallel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "divide: %v\n", err)
				os.Exit(1)
			}
		} else {
			div = gen.PerftDivide(pos, *depth)
		}
		// Sort moves for stable output
		moves := maps.Keys(div)
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
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
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += gen.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
