package arbiter

import (
	"time"

	"github.com/google/uuid"

	"github.com/chainhackers/gamejutsu/sig"
)

// NumPlayers is the fixed table size every game uses; the protocol does
// not generalise to more players (see spec's Non-goals).
const NumPlayers = 2

// DefaultTimeoutDuration is the forced-move grace period: 300 seconds.
const DefaultTimeoutDuration = 300 * time.Second

// DefaultTimeoutStake is the fixed timeout bond, 0.1 ether in base units.
const DefaultTimeoutStake uint64 = 100_000_000_000_000_000

// Config parameterises an Arbiter: the typed-data domain it signs
// against and the timeout sub-machine's economics. Built explicitly
// rather than read from the environment, the way the teacher's
// constants block (contract/main.go's gameTimeout) is a compile-time
// literal rather than a config file — except here it's a constructor
// argument so test networks can override the normative domain.
type Config struct {
	Domain              sig.Domain
	TimeoutDuration     time.Duration
	DefaultTimeoutStake uint64
}

// DefaultConfig returns the normative GameJutsu configuration: spec's
// domain separator literals and timeout economics.
func DefaultConfig() Config {
	return Config{
		Domain:              sig.DefaultDomain(),
		TimeoutDuration:     DefaultTimeoutDuration,
		DefaultTimeoutStake: DefaultTimeoutStake,
	}
}

// NewDemoSalt returns a fresh random domain salt, for spinning up a
// distinct signing domain per demo run or per test so unrelated test
// suites never accidentally share one signing domain. The normative
// salt from spec §6 is still what DefaultConfig uses; this is strictly
// a convenience for callers that want an ad-hoc one (neither the CLI
// demo nor the tests in this repository call it).
func NewDemoSalt() [32]byte {
	var salt [32]byte
	a, b := uuid.New(), uuid.New()
	copy(salt[:16], a[:])
	copy(salt[16:], b[:])
	return salt
}
