package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainhackers/gamejutsu/checkers"
	"github.com/chainhackers/gamejutsu/gtypes"
)

// finishCmd drives FinishGame with a hand-built two-ply chain: red
// walks its one man into a corner already boxed in by white, then
// white makes an unrelated move, leaving red with no legal move or
// jump on its turn. finalizeOutcome then calls the game for white.
func finishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Play two chained moves to a terminal checkers position and finish the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := &fixedClock{now: 1_700_000_000}
			a, signer := newDemoArbiter(clock)
			white, red, id, err := proposeAndAccept(a, signer, 1_000_000_000_000_000_000)
			if err != nil {
				return err
			}

			// old_state0: red man on 13, about to box itself in on square 9,
			// which white has already surrounded on squares 5, 6 and 2; a
			// fourth white man on 14 will make the harmless finishing move.
			// Red to move.
			boardA := checkers.State{RedMoves: true}
			boardA.Cells[12] = checkers.RedMan  // square 13
			boardA.Cells[4] = checkers.WhiteMan  // square 5
			boardA.Cells[5] = checkers.WhiteMan  // square 6
			boardA.Cells[1] = checkers.WhiteMan  // square 2
			boardA.Cells[13] = checkers.WhiteMan // square 14
			oldState0 := checkers.EncodeState(boardA)
			move0 := checkers.EncodeMove(checkers.Move{From: 13, To: 9, IsJump: false, PassToOpponent: true})

			var mod checkers.Module
			newState0 := mod.Transition(oldState0, checkers.Red, move0)

			// old_state1 (== new_state0): red man now on 9, boxed in on all
			// three of its move/jump squares (5, 6, 2) by white. White to
			// move, and plays an unrelated simple move (14 -> 18).
			move1 := checkers.EncodeMove(checkers.Move{From: 14, To: 18, IsJump: false, PassToOpponent: true})
			newState1 := mod.Transition(newState0, checkers.White, move1)

			signed0, err := coSignedMove(red, white, id, 0, oldState0, newState0, move0)
			if err != nil {
				return err
			}
			signed1, err := signedMove(white, id, 1, newState0, newState1, move1)
			if err != nil {
				return err
			}

			if err := a.FinishGame([2]gtypes.SignedGameMove{signed0, signed1}); err != nil {
				return fmt.Errorf("finish game: %w", err)
			}

			g, _ := a.GetGame(id)
			fmt.Printf("game %d finished: started=%v finished=%v\n", g.ID, g.Started, g.Finished)
			return nil
		},
	}
}
