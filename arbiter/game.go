package arbiter

import (
	"github.com/chainhackers/gamejutsu/gtypes"
	"github.com/chainhackers/gamejutsu/rules"
)

// Game is the persistent record for one game_id, matching spec's Data
// Model verbatim: rules reference, stake, the two players, session-key
// membership, and the two lifecycle flags. Membership is re-architected
// per spec's Design Notes suggestion (two primary/session sets rather
// than a single flat address→slot map), since Go has no native sparse
// mapping type as convenient as Solidity's.
type Game struct {
	ID       gtypes.GameId
	Rules    rules.Name
	Stake    uint64
	Players  [2]gtypes.Address
	Sessions [2][]gtypes.Address
	Started  bool
	Finished bool
}

// memberIndex resolves addr to a player slot (0 or 1), preferring a
// primary address match over a session-key match, per spec's Design
// Notes on membership. The second return is false if addr is not a
// member at all.
func (g *Game) memberIndex(addr gtypes.Address) (int, bool) {
	for i, p := range g.Players {
		if p == addr && !p.IsZero() {
			return i, true
		}
	}
	for i, sessions := range g.Sessions {
		for _, s := range sessions {
			if s == addr {
				return i, true
			}
		}
	}
	return 0, false
}

// Timeout is the persistent record for at most one active forced-move
// timer per game_id, matching spec's Data Model. PendingMoverIdx
// additionally records which player slot signed PendingMove, so
// FinalizeTimeout can name the stalling player (its opponent) without
// re-deriving turn order from opaque rules state.
type Timeout struct {
	GameId          gtypes.GameId
	StartTime       int64
	Stake           uint64
	PendingMove     gtypes.GameMove
	PendingMoverIdx int
	Initiator       gtypes.Address
}

// active reports whether t represents a live timeout (start_time != 0
// per spec's invariant).
func (t *Timeout) active() bool {
	return t != nil && t.StartTime != 0
}
