package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func proposeCmd() *cobra.Command {
	var stake uint64
	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Propose and accept a fresh checkers game",
		Long:  `Mints two player keys, calls ProposeGame then AcceptGame, and prints the resulting game record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := &fixedClock{now: 1_700_000_000}
			a, signer := newDemoArbiter(clock)

			_, _, id, err := proposeAndAccept(a, signer, stake)
			if err != nil {
				return err
			}
			g, _ := a.GetGame(id)
			fmt.Printf("game %d: started=%v finished=%v stake=%d\n", g.ID, g.Started, g.Finished, g.Stake)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&stake, "stake", 2_000_000_000_000_000_000, "stake each player escrows, in wei")
	return cmd
}
