// Package rules defines the pluggable contract a concrete game (package
// checkers, or any future variant) must satisfy so the arbiter package can
// adjudicate it without knowing anything about its state encoding or
// legality logic. Mirrors the teacher's per-game-type dispatch in
// contract/main.go (MakeMove switching on g.Type) but expressed as an
// interface so new games plug in without touching the arbiter.
package rules

// PlayerID identifies a seat at the table: 0 for the proposer, 1 for the
// acceptor, matching gtypes' players[2] ordering.
type PlayerID uint8

// Rules is the pure, deterministic contract a game module exposes to the
// arbiter. Every method is a pure function of its arguments: no method may
// read a clock, a source of randomness, or any state outside its
// parameters.
type Rules interface {
	// IsValidMove reports whether playing moveBytes as playerID from state
	// is legal, assuming state is well-formed and it is playerID's turn.
	IsValidMove(state []byte, playerID PlayerID, moveBytes []byte) bool

	// Transition returns the successor state after playerID plays
	// moveBytes from state. Its result is undefined if IsValidMove would
	// have returned false for the same arguments; callers must check
	// first.
	Transition(state []byte, playerID PlayerID, moveBytes []byte) []byte

	// IsFinal reports whether state is a terminal position.
	IsFinal(state []byte) bool

	// IsWin reports whether playerID has won at state. At most one of
	// IsWin(s, 0) and IsWin(s, 1) may be true; IsFinal(s) with neither
	// true denotes a draw.
	IsWin(state []byte, playerID PlayerID) bool

	// DefaultInitialState returns the canonical starting position.
	DefaultInitialState() []byte
}

// Name identifies a registered rules module by string, the way the
// teacher's GameType enum (contract/types.go) selects a board/ruleset —
// generalised from a closed enum to an open string so further games (the
// source's unfinished tic-tac-toe module, or anything else) register
// without modifying this package.
type Name string

// Registry resolves a Name to its Rules implementation. The arbiter package
// holds one Registry and looks up the rules module recorded against each
// Game at propose time.
type Registry struct {
	modules map[Name]Rules
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[Name]Rules)}
}

// Register adds or replaces the Rules implementation for name.
func (r *Registry) Register(name Name, rules Rules) {
	r.modules[name] = rules
}

// Lookup returns the Rules implementation registered under name, or nil,
// false if none is registered.
func (r *Registry) Lookup(name Name) (Rules, bool) {
	rules, ok := r.modules[name]
	return rules, ok
}
