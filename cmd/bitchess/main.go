// Command bitchess is a UCI-speaking chess engine binary built on
// package bitchess.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/solovyev/bitchess/uci"
)

func main() {
	depth := flag.Int("depth", 4, "default search depth in plies")
	workers := flag.Int("workers", 1, "number of goroutines to search root moves in parallel; 1 disables root-parallel search")
	flag.Parse()

	engine := uci.NewEngineWithOptions(os.Stdout, *depth, *workers)
	if err := engine.Loop(os.Stdin); err != nil {
		log.Fatalf("bitchess: %v", err)
	}
}
