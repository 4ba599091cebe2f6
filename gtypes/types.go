package gtypes

// GameId is the monotonically assigned per-game sequence number.
type GameId uint64

// Nonce is the strictly-increasing per-game move counter.
type Nonce uint64

// GameState is a versioned, opaque game position: the Arbiter never
// interprets state_bytes itself, only the rules module named by the game
// does (see package rules).
type GameState struct {
	GameId GameId
	Nonce  Nonce
	State  []byte
}

// GameMove is the assertion "from old_state, player plays move, yielding
// new_state" at the given nonce.
type GameMove struct {
	GameId    GameId
	Nonce     Nonce
	Player    Address
	OldState  []byte
	NewState  []byte
	MoveBytes []byte
}

// SignedGameMove pairs a GameMove with an ordered list of 65-byte
// secp256k1 signatures. By convention index 0 is the mover's signature;
// a co-signed move additionally carries the counterparty's signature.
type SignedGameMove struct {
	Move       GameMove
	Signatures [][]byte
}
