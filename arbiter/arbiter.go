// Package arbiter implements the on-chain dispute arbiter described in
// the state machine spec: a per-game lifecycle (propose, accept, play,
// finish, dispute, resign) plus a timeout escalation sub-machine,
// authenticating every move via package sig and delegating legality to
// whatever package rules module a game names. The clock, the stake
// ledger, the event transport and persistence are injected
// collaborators (Clock, Ledger, EventSink, Storage), mirroring the
// teacher's SDKInterface split so the same logic runs unmodified
// against a real chain backend or an in-memory one in tests.
package arbiter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chainhackers/gamejutsu/gtypes"
	"github.com/chainhackers/gamejutsu/rules"
	"github.com/chainhackers/gamejutsu/sig"
)

// Arbiter is the state machine itself. It holds no game data directly;
// everything durable lives behind Storage.
type Arbiter struct {
	cfg      Config
	signer   *sig.Signer
	registry *rules.Registry
	storage  Storage
	ledger   Ledger
	clock    Clock
	events   EventSink
	log      *zap.Logger
}

// New builds an Arbiter. A nil logger defaults to zap.NewNop(), so
// logging is always optional observability, never a precondition for
// correctness.
func New(cfg Config, registry *rules.Registry, storage Storage, ledger Ledger, clock Clock, events EventSink, logger *zap.Logger) *Arbiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Arbiter{
		cfg:      cfg,
		signer:   sig.NewSigner(cfg.Domain),
		registry: registry,
		storage:  storage,
		ledger:   ledger,
		clock:    clock,
		events:   events,
		log:      logger,
	}
}

func (a *Arbiter) rulesFor(name rules.Name) (rules.Rules, error) {
	rls, ok := a.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unregistered rules module %q", ErrMalformedPayload, name)
	}
	return rls, nil
}

// ProposeGame assigns a new game_id, records proposer as players[0] and
// stake as value, registers any session keys aliased to the proposer,
// and draws the stake into escrow. Pre-state: None.
func (a *Arbiter) ProposeGame(rulesName rules.Name, proposer gtypes.Address, stake uint64, sessionKeys []gtypes.Address) (gtypes.GameId, error) {
	if _, err := a.rulesFor(rulesName); err != nil {
		return 0, err
	}
	id := a.storage.NextGameId()
	g := &Game{
		ID:      id,
		Rules:   rulesName,
		Stake:   stake,
		Players: [2]gtypes.Address{proposer, {}},
	}
	g.Sessions[0] = append([]gtypes.Address(nil), sessionKeys...)
	a.ledger.Draw(id, proposer, stake)
	a.storage.SaveGame(g)

	a.events.GameProposed(gtypes.GameProposed{GameId: id, Stake: stake, Proposer: proposer})
	a.log.Info("game proposed", zap.Uint64("game_id", uint64(id)), zap.Uint64("stake", stake))
	return id, nil
}

// AcceptGame requires caller != players[0] and value >= stake, escrows
// value, sets players[1] = caller and started = true. Pre-state:
// Proposed (a game record exists and has not yet started).
func (a *Arbiter) AcceptGame(id gtypes.GameId, caller gtypes.Address, value uint64, sessionKeys []gtypes.Address) error {
	g, ok := a.storage.LoadGame(id)
	if !ok {
		return fmt.Errorf("%w: no such game", ErrWrongLifecycleState)
	}
	if g.Started {
		return fmt.Errorf("%w: game already started", ErrWrongLifecycleState)
	}
	if caller == g.Players[0] {
		return fmt.Errorf("%w: proposer cannot accept their own game", ErrWrongLifecycleState)
	}
	if value < g.Stake {
		return fmt.Errorf("%w: need at least %d, got %d", ErrStakeMismatch, g.Stake, value)
	}

	a.ledger.Draw(id, caller, value)
	g.Stake += value // stake is the running total held in escrow (spec's Data Model §4.4), not just the proposer's deposit
	g.Players[1] = caller
	g.Sessions[1] = append([]gtypes.Address(nil), sessionKeys...)
	g.Started = true
	a.storage.SaveGame(g)

	a.events.GameStarted(gtypes.GameStarted{GameId: id, Stake: g.Stake, Players: g.Players})
	a.log.Info("game started", zap.Uint64("game_id", uint64(id)), zap.Stringer("acceptor", caller))
	return nil
}

// RegisterSessionAddress aliases addr to caller's player slot. Pre-state:
// Started.
func (a *Arbiter) RegisterSessionAddress(id gtypes.GameId, caller gtypes.Address, addr gtypes.Address) error {
	g, ok := a.storage.LoadGame(id)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	idx, ok := g.memberIndex(caller)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAMember, caller)
	}
	g.Sessions[idx] = append(g.Sessions[idx], addr)
	a.storage.SaveGame(g)

	a.events.SessionAddressRegistered(gtypes.SessionAddressRegistered{GameId: id, Player: caller, SessionAddr: addr})
	a.log.Info("session address registered", zap.Uint64("game_id", uint64(id)), zap.Stringer("addr", addr))
	return nil
}

// Resign ends an active game in the caller's opponent's favour, paying
// the full stake to the opponent. Pre-state: Started.
func (a *Arbiter) Resign(id gtypes.GameId, caller gtypes.Address) error {
	g, ok := a.storage.LoadGame(id)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	idx, ok := g.memberIndex(caller)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAMember, caller)
	}
	opponent := 1 - idx

	g.Finished = true
	a.ledger.Transfer(id, g.Players[opponent], g.Stake)
	a.storage.SaveGame(g)

	a.events.PlayerResigned(gtypes.PlayerResigned{GameId: id, Player: g.Players[idx]})
	a.events.GameFinished(gtypes.GameFinished{GameId: id, Winner: g.Players[opponent], Loser: g.Players[idx]})
	a.log.Info("player resigned", zap.Uint64("game_id", uint64(id)), zap.Stringer("resigner", g.Players[idx]))
	return nil
}

// DisputeMove disqualifies the move's mover if the rules module rejects
// it, paying the full stake to the opponent. Pre-state: Started. Fails
// with ErrIllegalMove if the disputed move turns out to actually be
// legal — dispute_move only ever succeeds against an invalid move.
func (a *Arbiter) DisputeMove(signed gtypes.SignedGameMove) error {
	g, ok := a.storage.LoadGame(signed.Move.GameId)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
	}
	rls, err := a.rulesFor(g.Rules)
	if err != nil {
		return err
	}
	idx, moverAddr, err := a.recoverMover(g, signed.Move, signed.Signatures)
	if err != nil {
		return err
	}
	if rls.IsValidMove(signed.Move.OldState, rules.PlayerID(idx), signed.Move.MoveBytes) {
		return fmt.Errorf("%w: disputed move is actually legal", ErrIllegalMove)
	}

	opponent := 1 - idx
	g.Finished = true
	a.ledger.Transfer(g.ID, g.Players[opponent], g.Stake)
	a.storage.SaveGame(g)

	a.events.PlayerDisqualified(gtypes.PlayerDisqualified{GameId: g.ID, Player: moverAddr})
	a.events.GameFinished(gtypes.GameFinished{GameId: g.ID, Winner: g.Players[opponent], Loser: moverAddr})
	a.log.Info("player disqualified", zap.Uint64("game_id", uint64(g.ID)), zap.Stringer("mover", moverAddr))
	return nil
}

// FinishGame verifies the signed_moves[2] chaining contract, that
// move[0] is co-signed by both members, that both moves are valid game
// moves, and that the resulting position is terminal; it then pays out
// the win or the equal-split draw. Pre-state: Started.
func (a *Arbiter) FinishGame(signedMoves [2]gtypes.SignedGameMove) error {
	gameId := signedMoves[0].Move.GameId
	g, ok := a.storage.LoadGame(gameId)
	if !ok || !g.Started || g.Finished {
		return fmt.Errorf("%w: game is not in progress", ErrWrongLifecycleState)
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

	final := signedMoves[1].Move.NewState
	if !rls.IsFinal(final) {
		return fmt.Errorf("%w: resulting position is not terminal", ErrNotFinal)
	}

	g.Finished = true
	switch {
	case rls.IsWin(final, rules.PlayerID(0)):
		a.payWinner(g, 0)
	case rls.IsWin(final, rules.PlayerID(1)):
		a.payWinner(g, 1)
	default:
		a.payDraw(g)
	}
	a.storage.SaveGame(g)
	a.log.Info("game finished", zap.Uint64("game_id", uint64(g.ID)))
	return nil
}

func (a *Arbiter) payWinner(g *Game, winnerIdx int) {
	loserIdx := 1 - winnerIdx
	a.ledger.Transfer(g.ID, g.Players[winnerIdx], g.Stake)
	a.events.GameFinished(gtypes.GameFinished{GameId: g.ID, Winner: g.Players[winnerIdx], Loser: g.Players[loserIdx]})
}

// payDraw splits stake into floor(stake/2) to players[0] and the
// remainder to players[1], per spec §4.5, so the full escrow is
// disbursed with no dust remaining.
func (a *Arbiter) payDraw(g *Game) {
	half := g.Stake / 2
	rest := g.Stake - half
	a.ledger.Transfer(g.ID, g.Players[0], half)
	a.ledger.Transfer(g.ID, g.Players[1], rest)
	a.events.GameFinished(gtypes.GameFinished{GameId: g.ID, IsDraw: true})
}

// GetGame returns a defensive copy of the game record for id, mirroring
// the teacher's read-only g_get query path (contract/main.go's GetGame).
func (a *Arbiter) GetGame(id gtypes.GameId) (Game, bool) {
	g, ok := a.storage.LoadGame(id)
	if !ok {
		return Game{}, false
	}
	return *g, true
}

// GetTimeout returns a defensive copy of the timeout record for id, if
// one has ever been initiated (it may be inactive, StartTime == 0).
func (a *Arbiter) GetTimeout(id gtypes.GameId) (Timeout, bool) {
	t, ok := a.storage.LoadTimeout(id)
	if !ok {
		return Timeout{}, false
	}
	return *t, true
}
