package arbiter

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainhackers/gamejutsu/gtypes"
)

// InitTimeout posts bond (must equal cfg.DefaultTimeoutStake) and starts
// the forced-move timer, recording pending_move as the mover-signed
// move[1] of the chained pair — the move the stalled opponent is now
// expected to continue from. Requires no timeout currently active.
func (a *Arbiter) InitTimeout(signedMoves [2]gtypes.SignedGameMove, caller gtypes.Address, bond uint64) error {
	gameId := signedMoves[0].Move.GameId
	g, ok := a.storage.LoadGame(gameId)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	if existing, ok := a.storage.LoadTimeout(gameId); ok && existing.active() {
		return fmt.Errorf("%w: a timeout is already active", ErrTimeoutConflict)
	}
	if _, ok := g.memberIndex(caller); !ok {
		return fmt.Errorf("%w: %s", ErrNotAMember, caller)
	}
	if bond != a.cfg.DefaultTimeoutStake {
		return fmt.Errorf("%w: timeout bond must be %d, got %d", ErrStakeMismatch, a.cfg.DefaultTimeoutStake, bond)
	}
	rls, err := a.rulesFor(g.Rules)
	if err != nil {
		return err
	}
	if err := chainedPair(signedMoves[0].Move, signedMoves[1].Move); err != nil {
		return err
	}
	if err := a.requireCoSigned(g, signedMoves[0].Move, signedMoves[0].Signatures); err != nil {
		return err
	}
	idx0, _, err := a.recoverMover(g, signedMoves[0].Move, signedMoves[0].Signatures)
	if err != nil {
		return err
	}
	if err := a.isValidGameMove(g, rls, idx0, signedMoves[0].Move); err != nil {
		return err
	}
	idx1, _, err := a.recoverMover(g, signedMoves[1].Move, signedMoves[1].Signatures)
	if err != nil {
		return err
	}
	if err := a.isValidGameMove(g, rls, idx1, signedMoves[1].Move); err != nil {
		return err
	}

	now := a.clock.Now()
	a.ledger.Draw(gameId, caller, bond)
	t := &Timeout{
		GameId:          gameId,
		StartTime:       now,
		Stake:           bond,
		PendingMove:     signedMoves[1].Move,
		PendingMoverIdx: idx1,
		Initiator:       caller,
	}
	a.storage.SaveTimeout(t)

	expiresAt := now + int64(a.cfg.TimeoutDuration.Seconds())
	a.events.TimeoutStarted(gtypes.TimeoutStarted{
		GameId:    gameId,
		Player:    caller,
		Nonce:     t.PendingMove.Nonce,
		ExpiresAt: expiresAt,
	})
	a.log.Info("timeout started", zap.Uint64("game_id", uint64(gameId)), zap.Int64("expires_at", expiresAt))
	return nil
}

// ResolveTimeout accepts a valid continuation of the pending move, which
// clears the timeout and returns the bond to its initiator.
func (a *Arbiter) ResolveTimeout(id gtypes.GameId, signed gtypes.SignedGameMove) error {
	g, ok := a.storage.LoadGame(id)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	t, ok := a.storage.LoadTimeout(id)
	if !ok || !t.active() {
		return fmt.Errorf("%w: no active timeout", ErrTimeoutConflict)
	}
	if a.clock.Now() > t.StartTime+int64(a.cfg.TimeoutDuration.Seconds()) {
		return fmt.Errorf("%w: timeout already expired", ErrTimeoutConflict)
	}

	move := signed.Move
	if move.GameId != t.GameId || move.Nonce != t.PendingMove.Nonce+1 || !bytes.Equal(move.OldState, t.PendingMove.NewState) {
		return fmt.Errorf("%w: move does not continue the pending position", ErrChainBroken)
	}

	rls, err := a.rulesFor(g.Rules)
	if err != nil {
		return err
	}
	idx, _, err := a.recoverMover(g, move, signed.Signatures)
	if err != nil {
		return err
	}
	if idx == t.PendingMoverIdx {
		return fmt.Errorf("%w: continuation must come from the other player", ErrNotAMember)
	}
	if err := a.isValidGameMove(g, rls, idx, move); err != nil {
		return err
	}

	t.StartTime = 0
	a.storage.SaveTimeout(t)
	a.ledger.Transfer(id, t.Initiator, t.Stake)
	a.log.Info("timeout resolved", zap.Uint64("game_id", uint64(id)))
	return nil
}

// FinalizeTimeout disqualifies the stalling player (the opponent of
// whoever signed the pending move) once TIMEOUT_DURATION has strictly
// elapsed, paying the signer of the pending move (the staller's opponent)
// the full stake plus the timeout bond.
func (a *Arbiter) FinalizeTimeout(id gtypes.GameId) error {
	t, ok := a.storage.LoadTimeout(id)
	if !ok || !t.active() {
		return fmt.Errorf("%w: no active timeout", ErrTimeoutConflict)
	}
	g, ok := a.storage.LoadGame(id)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	if a.clock.Now() <= t.StartTime+int64(a.cfg.TimeoutDuration.Seconds()) {
		return fmt.Errorf("%w: timeout has not expired yet", ErrTimeoutConflict)
	}

	winnerIdx := t.PendingMoverIdx
	stallingIdx := 1 - winnerIdx

	g.Finished = true
	a.ledger.Transfer(id, g.Players[winnerIdx], g.Stake+t.Stake)
	a.storage.SaveGame(g)
	t.StartTime = 0
	a.storage.SaveTimeout(t)

	a.events.PlayerDisqualified(gtypes.PlayerDisqualified{GameId: id, Player: g.Players[stallingIdx]})
	a.events.GameFinished(gtypes.GameFinished{GameId: id, Winner: g.Players[winnerIdx], Loser: g.Players[stallingIdx]})
	a.log.Info("timeout finalized", zap.Uint64("game_id", uint64(id)), zap.Stringer("stalling_player", g.Players[stallingIdx]))
	return nil
}
