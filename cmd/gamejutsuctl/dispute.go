package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainhackers/gamejutsu/checkers"
)

// disputeCmd submits a mover-signed move that claims an illegal
// transition (white "moving" a square it doesn't occupy) and calls
// DisputeMove, disqualifying the claimed mover.
func disputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispute",
		Short: "Submit an illegal move and watch the mover get disqualified",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := &fixedClock{now: 1_700_000_000}
			a, signer := newDemoArbiter(clock)
			white, _, id, err := proposeAndAccept(a, signer, 1_000_000_000_000_000_000)
			if err != nil {
				return err
			}

			oldState := checkers.EncodeState(checkers.DefaultInitialState())
			// Square 13 is empty in the default position: claiming a move
			// from there is illegal no matter what it claims to produce.
			badMove := checkers.EncodeMove(checkers.Move{From: 13, To: 17, IsJump: false, PassToOpponent: true})
			claimedNewState := checkers.EncodeState(checkers.DefaultInitialState()) // never actually reached

			signed, err := signedMove(white, id, 0, oldState, claimedNewState, badMove)
			if err != nil {
				return err
			}

			if err := a.DisputeMove(signed); err != nil {
				return fmt.Errorf("dispute move: %w", err)
			}

			g, _ := a.GetGame(id)
			fmt.Printf("game %d finished via dispute: finished=%v\n", g.ID, g.Finished)
			return nil
		},
	}
}
