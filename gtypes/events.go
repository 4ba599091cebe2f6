package gtypes

// The event types below are emitted by the arbiter state machine (see
// spec.md §6, "Events"). They are plain structs rather than the teacher's
// pipe-delimited log lines (contract/events.go) because the Arbiter is a
// library, not a WASM contract emitting a chain log — callers wire these
// into whatever transport they use via the EventSink collaborator.

// GameProposed fires when propose_game succeeds.
type GameProposed struct {
	GameId   GameId
	Stake    uint64
	Proposer Address
}

// GameStarted fires when accept_game succeeds.
type GameStarted struct {
	GameId  GameId
	Stake   uint64
	Players [2]Address
}

// SessionAddressRegistered fires when register_session_address succeeds.
type SessionAddressRegistered struct {
	GameId      GameId
	Player      Address
	SessionAddr Address
}

// PlayerResigned fires when resign succeeds, before the paired GameFinished.
type PlayerResigned struct {
	GameId GameId
	Player Address
}

// PlayerDisqualified fires when dispute_move succeeds, before the paired
// GameFinished.
type PlayerDisqualified struct {
	GameId GameId
	Player Address
}

// TimeoutStarted fires when init_timeout succeeds.
type TimeoutStarted struct {
	GameId    GameId
	Player    Address
	Nonce     Nonce
	ExpiresAt int64
}

// GameFinished fires exactly once per game, on the terminal transition.
// IsDraw implies Winner and Loser are both the zero address.
type GameFinished struct {
	GameId GameId
	Winner Address
	Loser  Address
	IsDraw bool
}
