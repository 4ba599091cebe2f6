// Command gamejutsuctl is a small demo CLI driving an in-memory Arbiter
// plus the checkers rules module end to end. Each subcommand except move
// wires up a fresh Arbiter (MemStorage, MemLedger, a fixed Clock, a
// logging EventSink) and runs one slice of the protocol, printing what it
// did; move only builds, signs and verifies one move off-chain.
// It exists to exercise the library from outside its own test suite, the
// way the teacher's single WASM-exported entry points (g_create, g_move,
// g_timeout, ...) each demonstrated one contract call.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "gamejutsuctl",
		Short: "Drive an in-memory GameJutsu arbiter end to end",
		Long: `gamejutsuctl exercises the arbiter and checkers packages outside of
the test suite: propose/accept a game, exchange signed moves, finish a
game, dispute an illegal move, or run a timeout to completion.

Every subcommand is self-contained. All but move mint their own two
player keys, propose and accept a fresh game, then play out the
scenario they are named for; move mints one key and signs and verifies
a single move without an arbiter.`,
	}

	root.AddCommand(
		proposeCmd(),
		moveCmd(),
		finishCmd(),
		disputeCmd(),
		timeoutCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
