// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/seekerror/logw"

	chess "github.com/kestrelchess/rules"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	var setup *chess.Setup
	if *position == "" {
		setup = chess.InitialSetup()
	} else {
		s, err := chess.ParseFEN(*position)
		if err != nil {
			logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
		}
		setup = s
	}

	pos, posErr := chess.FromSetup(setup)
	if posErr != 0 {
		logw.Exitf(ctx, "Invalid position %q: %v", *position, posErr)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(ctx, pos, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func search(ctx context.Context, pos *chess.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	legals := pos.Legals()
	var nodes int64
	for i := 0; i < legals.Len(); i++ {
		m := legals.At(i)
		next := pos.PlayUnchecked(m)
		count := search(ctx, next, depth-1, false)
		if d {
			logw.Infof(ctx, "%v: %v", m, count)
		}
		nodes += count
	}
	return nodes
}
