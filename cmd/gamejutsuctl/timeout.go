package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainhackers/gamejutsu/arbiter"
	"github.com/chainhackers/gamejutsu/checkers"
	"github.com/chainhackers/gamejutsu/gtypes"
)

// timeoutCmd posts a timeout bond after a chained move pair, advances
// the clock past the timeout duration, and finalizes it, disqualifying
// whichever player never continued the pending move.
func timeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeout",
		Short: "Initiate a forced-move timeout and finalize it after expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := &fixedClock{now: 1_700_000_000}
			a, signer := newDemoArbiter(clock)
			white, red, id, err := proposeAndAccept(a, signer, 1_000_000_000_000_000_000)
			if err != nil {
				return err
			}

			var mod checkers.Module
			oldState0 := checkers.EncodeState(checkers.DefaultInitialState())
			move0 := checkers.EncodeMove(checkers.Move{From: 9, To: 14, PassToOpponent: true})
			newState0 := mod.Transition(oldState0, checkers.White, move0)

			move1 := checkers.EncodeMove(checkers.Move{From: 21, To: 17, PassToOpponent: true})
			newState1 := mod.Transition(newState0, checkers.Red, move1)

			signed0, err := coSignedMove(white, red, id, 0, oldState0, newState0, move0)
			if err != nil {
				return err
			}
			signed1, err := signedMove(red, id, 1, newState0, newState1, move1)
			if err != nil {
				return err
			}

			bond := arbiter.DefaultConfig().DefaultTimeoutStake
			if err := a.InitTimeout([2]gtypes.SignedGameMove{signed0, signed1}, white.addr, bond); err != nil {
				return fmt.Errorf("init timeout: %w", err)
			}
			fmt.Printf("timeout initiated by %s, bond %d\n", short(white.addr), bond)

			clock.now += int64(arbiter.DefaultTimeoutDuration.Seconds()) + 1
			fmt.Printf("clock advanced to %d (past expiry)\n", clock.now)

			if err := a.FinalizeTimeout(id); err != nil {
				return fmt.Errorf("finalize timeout: %w", err)
			}

			g, _ := a.GetGame(id)
			fmt.Printf("game %d finished via timeout: finished=%v\n", g.ID, g.Finished)
			return nil
		},
	}
}
