// Command ltsdemo builds a handful of worked CSP terms and prints each one's
// name and, for every initial event, how many successors it leads to, then a
// bounded DOT rendering.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rfielding/csp-lts/examples"
	"github.com/rfielding/csp-lts/lts"
	"github.com/rfielding/csp-lts/metrics"
	"github.com/rfielding/csp-lts/process"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	reg := metrics.NewRegistry()
	e := process.New(process.WithLogger(logger), process.WithMetrics(reg))

	fmt.Println("=== vending machine ===")
	walk(e, examples.VendingMachine(e))

	fmt.Println("\n=== client/server ===")
	walk(e, examples.ClientServer(e))

	fmt.Println("\n=== dining philosophers (3) ===")
	walk(e, examples.DiningPhilosophers(e, 3))

	fmt.Println("\n=== DOT rendering of the vending machine (depth 2) ===")
	if err := lts.WriteDOT(os.Stdout, examples.VendingMachine(e), 2); err != nil {
		logger.Error().Err(err).Msg("failed to render DOT")
		os.Exit(1)
	}
}

func walk(e *process.Env, start process.Process) {
	fmt.Println("name:", process.String(start))
	initials := process.InitialsSet(start)
	for _, a := range initials.Sorted() {
		fmt.Printf("  initial %s -> %d successor(s)\n", a.Name(), process.AftersSet(start, a).Len())
	}
}
