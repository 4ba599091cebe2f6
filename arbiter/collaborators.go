package arbiter

import (
	"time"

	"github.com/chainhackers/gamejutsu/gtypes"
)

// The Arbiter treats the block-timestamp source, fund custody, event
// transport and persistence as injected collaborators, exactly as
// spec's Purpose section scopes them out as "external collaborators".
// This mirrors the teacher's SDKInterface split (contract/sdkInterface.go):
// one production implementation per concern, swappable for a fake in
// tests, rather than the Arbiter reaching out to globals directly.

// Clock supplies the host timestamp, read once per operation.
type Clock interface {
	Now() int64
}

// SystemClock is the production Clock, backed by the wall clock.
type SystemClock struct{}

// Now returns the current Unix time in seconds.
func (SystemClock) Now() int64 { return time.Now().Unix() }

// Ledger custodies per-game stakes. Draw pulls amount from payer into a
// game's escrow; Transfer pays amount out of escrow to a recipient.
// Named after the teacher's HiveDraw/HiveTransfer pair
// (contract/sdkInterface.go) rather than a generic Deposit/Withdraw,
// since the draw-in / transfer-out shape is identical.
type Ledger interface {
	Draw(gameId gtypes.GameId, payer gtypes.Address, amount uint64)
	Transfer(gameId gtypes.GameId, to gtypes.Address, amount uint64)
}

// MemLedger is an in-memory Ledger that tracks each game's outstanding
// escrow balance, useful for demos and for tests asserting the
// stake-conservation property.
type MemLedger struct {
	balances map[gtypes.GameId]uint64
}

// NewMemLedger returns an empty MemLedger.
func NewMemLedger() *MemLedger {
	return &MemLedger{balances: make(map[gtypes.GameId]uint64)}
}

// Draw adds amount to gameId's tracked balance.
func (l *MemLedger) Draw(gameId gtypes.GameId, _ gtypes.Address, amount uint64) {
	l.balances[gameId] += amount
}

// Transfer subtracts amount from gameId's tracked balance.
func (l *MemLedger) Transfer(gameId gtypes.GameId, _ gtypes.Address, amount uint64) {
	l.balances[gameId] -= amount
}

// Balance returns gameId's current tracked escrow balance.
func (l *MemLedger) Balance(gameId gtypes.GameId) uint64 {
	return l.balances[gameId]
}

// EventSink receives one typed event per successful state transition,
// mirroring the teacher's one-helper-per-event shape (contract/events.go)
// but with struct payloads instead of pipe-delimited log lines (see
// gtypes/events.go).
type EventSink interface {
	GameProposed(gtypes.GameProposed)
	GameStarted(gtypes.GameStarted)
	SessionAddressRegistered(gtypes.SessionAddressRegistered)
	PlayerResigned(gtypes.PlayerResigned)
	PlayerDisqualified(gtypes.PlayerDisqualified)
	TimeoutStarted(gtypes.TimeoutStarted)
	GameFinished(gtypes.GameFinished)
}

// NopEventSink discards every event. The zero value is ready to use.
type NopEventSink struct{}

func (NopEventSink) GameProposed(gtypes.GameProposed)                         {}
func (NopEventSink) GameStarted(gtypes.GameStarted)                           {}
func (NopEventSink) SessionAddressRegistered(gtypes.SessionAddressRegistered) {}
func (NopEventSink) PlayerResigned(gtypes.PlayerResigned)                     {}
func (NopEventSink) PlayerDisqualified(gtypes.PlayerDisqualified)             {}
func (NopEventSink) TimeoutStarted(gtypes.TimeoutStarted)                     {}
func (NopEventSink) GameFinished(gtypes.GameFinished)                         {}

// Storage persists the games and timeouts mappings plus the next_game_id
// counter, matching spec's Purpose section listing persistence among
// the injected collaborators. Game and Timeout pointers returned by Load
// are owned by the caller; SaveGame/SaveTimeout take a snapshot.
type Storage interface {
	NextGameId() gtypes.GameId
	SaveGame(g *Game)
	LoadGame(id gtypes.GameId) (*Game, bool)
	SaveTimeout(t *Timeout)
	LoadTimeout(id gtypes.GameId) (*Timeout, bool)
}

// MemStorage is an in-memory Storage, the arbiter-package analogue of
// the teacher's FakeSDK's map-backed state store.
type MemStorage struct {
	games    map[gtypes.GameId]*Game
	timeouts map[gtypes.GameId]*Timeout
	nextId   gtypes.GameId
}

// NewMemStorage returns an empty MemStorage with game ids starting at 1.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		games:    make(map[gtypes.GameId]*Game),
		timeouts: make(map[gtypes.GameId]*Timeout),
		nextId:   1,
	}
}

// NextGameId returns a fresh, never-before-issued game id.
func (s *MemStorage) NextGameId() gtypes.GameId {
	id := s.nextId
	s.nextId++
	return id
}

// SaveGame stores a copy of *g under g.ID.
func (s *MemStorage) SaveGame(g *Game) {
	cp := *g
	s.games[g.ID] = &cp
}

// LoadGame returns a copy of the stored game for id, if any.
func (s *MemStorage) LoadGame(id gtypes.GameId) (*Game, bool) {
	g, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := *g
	return &cp, true
}

// SaveTimeout stores a copy of *t under t.GameId.
func (s *MemStorage) SaveTimeout(t *Timeout) {
	cp := *t
	s.timeouts[t.GameId] = &cp
}

// LoadTimeout returns a copy of the stored timeout for id, if any.
func (s *MemStorage) LoadTimeout(id gtypes.GameId) (*Timeout, bool) {
	t, ok := s.timeouts[id]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}
