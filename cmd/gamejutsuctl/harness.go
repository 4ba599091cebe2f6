package main

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainhackers/gamejutsu/arbiter"
	"github.com/chainhackers/gamejutsu/checkers"
	"github.com/chainhackers/gamejutsu/gtypes"
	"github.com/chainhackers/gamejutsu/rules"
	"github.com/chainhackers/gamejutsu/sig"
)

const checkersRules rules.Name = "checkers"

// fixedClock is a Clock whose Now() is moved forward explicitly by the
// demo scenario instead of tracking the wall clock, so a timeout
// scenario finalizes deterministically without sleeping.
type fixedClock struct{ now int64 }

func (c *fixedClock) Now() int64 { return c.now }

// printingSink logs every event to stdout, the CLI's stand-in for
// whatever transport a real deployment wires an arbiter.EventSink to.
type printingSink struct{}

func (printingSink) GameProposed(e gtypes.GameProposed) {
	fmt.Printf("  event: GameProposed(game=%d, stake=%d, proposer=%s)\n", e.GameId, e.Stake, short(e.Proposer))
}
func (printingSink) GameStarted(e gtypes.GameStarted) {
	fmt.Printf("  event: GameStarted(game=%d, stake=%d, players=[%s %s])\n", e.GameId, e.Stake, short(e.Players[0]), short(e.Players[1]))
}
func (printingSink) SessionAddressRegistered(e gtypes.SessionAddressRegistered) {
	fmt.Printf("  event: SessionAddressRegistered(game=%d, player=%s, session=%s)\n", e.GameId, short(e.Player), short(e.SessionAddr))
}
func (printingSink) PlayerResigned(e gtypes.PlayerResigned) {
	fmt.Printf("  event: PlayerResigned(game=%d, player=%s)\n", e.GameId, short(e.Player))
}
func (printingSink) PlayerDisqualified(e gtypes.PlayerDisqualified) {
	fmt.Printf("  event: PlayerDisqualified(game=%d, player=%s)\n", e.GameId, short(e.Player))
}
func (printingSink) TimeoutStarted(e gtypes.TimeoutStarted) {
	fmt.Printf("  event: TimeoutStarted(game=%d, player=%s, nonce=%d, expiresAt=%d)\n", e.GameId, short(e.Player), e.Nonce, e.ExpiresAt)
}
func (printingSink) GameFinished(e gtypes.GameFinished) {
	if e.IsDraw {
		fmt.Printf("  event: GameFinished(game=%d, draw)\n", e.GameId)
		return
	}
	fmt.Printf("  event: GameFinished(game=%d, winner=%s, loser=%s)\n", e.GameId, short(e.Winner), short(e.Loser))
}

func short(a gtypes.Address) string {
	h := a.Hex()
	return h[:6] + ".." + h[len(h)-4:]
}

// player bundles a private key with its recovered address and the
// Signer used to countersign GameMoves under the demo's domain.
type player struct {
	key    *ecdsa.PrivateKey
	addr   gtypes.Address
	signer *sig.Signer
}

func newPlayer(signer *sig.Signer) (*player, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	addr := gtypes.AddressFromCommon(crypto.PubkeyToAddress(key.PublicKey))
	return &player{key: key, addr: addr, signer: signer}, nil
}

func (p *player) sign(m gtypes.GameMove) ([]byte, error) {
	return sig.Sign(p.key, p.signer, m)
}

// newDemoArbiter builds an Arbiter over fresh in-memory collaborators,
// the normative GameJutsu signing domain, and the checkers rules module
// registered under checkersRules.
func newDemoArbiter(clock arbiter.Clock) (*arbiter.Arbiter, *sig.Signer) {
	cfg := arbiter.DefaultConfig()
	signer := sig.NewSigner(cfg.Domain)

	registry := rules.NewRegistry()
	registry.Register(checkersRules, checkers.Module{})

	a := arbiter.New(cfg, registry, arbiter.NewMemStorage(), arbiter.NewMemLedger(), clock, printingSink{}, nil)
	return a, signer
}

// proposeAndAccept stands up a two-player checkers game with the given
// stake and returns both players alongside the new game id.
func proposeAndAccept(a *arbiter.Arbiter, signer *sig.Signer, stake uint64) (white, red *player, id gtypes.GameId, err error) {
	white, err = newPlayer(signer)
	if err != nil {
		return nil, nil, 0, err
	}
	red, err = newPlayer(signer)
	if err != nil {
		return nil, nil, 0, err
	}

	id, err = a.ProposeGame(checkersRules, white.addr, stake, nil)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("propose: %w", err)
	}
	fmt.Printf("proposed game %d, stake %d, proposer %s\n", id, stake, short(white.addr))

	if err := a.AcceptGame(id, red.addr, stake, nil); err != nil {
		return nil, nil, 0, fmt.Errorf("accept: %w", err)
	}
	fmt.Printf("game %d started, acceptor %s\n", id, short(red.addr))
	return white, red, id, nil
}

// signedMove builds a mover-signed GameMove for the given nonce and
// state transition.
func signedMove(mover *player, id gtypes.GameId, nonce gtypes.Nonce, old, new, moveBytes []byte) (gtypes.SignedGameMove, error) {
	gm := gtypes.GameMove{GameId: id, Nonce: nonce, Player: mover.addr, OldState: old, NewState: new, MoveBytes: moveBytes}
	s, err := mover.sign(gm)
	if err != nil {
		return gtypes.SignedGameMove{}, err
	}
	return gtypes.SignedGameMove{Move: gm, Signatures: [][]byte{s}}, nil
}

// coSignedMove builds a GameMove carrying both players' signatures,
// mover first by the §4.1 convention.
func coSignedMove(mover, other *player, id gtypes.GameId, nonce gtypes.Nonce, old, new, moveBytes []byte) (gtypes.SignedGameMove, error) {
	gm := gtypes.GameMove{GameId: id, Nonce: nonce, Player: mover.addr, OldState: old, NewState: new, MoveBytes: moveBytes}
	s1, err := mover.sign(gm)
	if err != nil {
		return gtypes.SignedGameMove{}, err
	}
	s2, err := other.sign(gm)
	if err != nil {
		return gtypes.SignedGameMove{}, err
	}
	return gtypes.SignedGameMove{Move: gm, Signatures: [][]byte{s1, s2}}, nil
}
