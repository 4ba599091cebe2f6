package arbiter

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainhackers/gamejutsu/gtypes"
	"github.com/chainhackers/gamejutsu/rules"
)

func hashEqual(a, b []byte) bool {
	return crypto.Keccak256Hash(a) == crypto.Keccak256Hash(b)
}

// chainedPair checks the chaining contract on a signed_moves[2] pair
// (spec §4.5): same game_id, consecutive nonce, and new_state[0]
// hash-equal to old_state[1].
func chainedPair(a, b gtypes.GameMove) error {
	if a.GameId != b.GameId {
		return fmt.Errorf("%w: move pair targets different games", ErrChainBroken)
	}
	if b.Nonce != a.Nonce+1 {
		return fmt.Errorf("%w: nonce %d does not follow %d", ErrChainBroken, b.Nonce, a.Nonce)
	}
	if !hashEqual(a.NewState, b.OldState) {
		return fmt.Errorf("%w: new_state[0] does not match old_state[1]", ErrChainBroken)
	}
	return nil
}

// recoverMover recovers the address that produced signatures[0], the
// move's mover signature by convention, and resolves it to a player
// slot in g.
func (a *Arbiter) recoverMover(g *Game, move gtypes.GameMove, signatures [][]byte) (int, gtypes.Address, error) {
	if len(signatures) == 0 {
		return 0, gtypes.Address{}, fmt.Errorf("%w: move carries no signatures", ErrBadSignature)
	}
	addr, err := a.signer.Recover(move, signatures[0])
	if err != nil {
		return 0, gtypes.Address{}, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	idx, ok := g.memberIndex(addr)
	if !ok {
		return 0, gtypes.Address{}, fmt.Errorf("%w: %s", ErrNotAMember, addr)
	}
	return idx, addr, nil
}

// requireCoSigned verifies signatures recover to both distinct player
// addresses of g, as required of signed_moves[0] in finish_game and
// init_timeout.
func (a *Arbiter) requireCoSigned(g *Game, move gtypes.GameMove, signatures [][]byte) error {
	if len(signatures) < 2 {
		return fmt.Errorf("%w: checkpoint move must be co-signed", ErrBadSignature)
	}
	seen := map[int]bool{}
	for _, sig := range signatures[:2] {
		addr, err := a.signer.Recover(move, sig)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
		idx, ok := g.memberIndex(addr)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotAMember, addr)
		}
		seen[idx] = true
	}
	if len(seen) != NumPlayers {
		return fmt.Errorf("%w: checkpoint move must be signed by both distinct players", ErrBadSignature)
	}
	return nil
}

// isValidGameMove implements spec's is_valid_game_move: new_state must
// differ from old_state, the game must be started and not finished, the
// rules module must accept the move from playerIdx, and replaying it must
// hash-match new_state. Membership of the mover is not checked here;
// callers resolve playerIdx through recoverMover first.
func (a *Arbiter) isValidGameMove(g *Game, rls rules.Rules, playerIdx int, move gtypes.GameMove) error {
	if bytes.Equal(move.OldState, move.NewState) {
		return fmt.Errorf("%w: new_state must differ from old_state", ErrIllegalMove)
	}
	if !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	if !rls.IsValidMove(move.OldState, rules.PlayerID(playerIdx), move.MoveBytes) {
		return fmt.Errorf("%w: rules module rejected the move", ErrIllegalMove)
	}
	got := rls.Transition(move.OldState, rules.PlayerID(playerIdx), move.MoveBytes)
	if !hashEqual(got, move.NewState) {
		return fmt.Errorf("%w: claimed new_state does not match transition result", ErrIllegalMove)
	}
	return nil
}
