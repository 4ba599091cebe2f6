package arbiter

import "errors"

// The flat error taxonomy every Arbiter operation can fail with. Every
// operation aborts atomically on one of these: no partial state change,
// no payout, no event. codec and sig define their own sentinel errors
// deeper in the stack; this package wraps them into the taxonomy below
// via %w so callers can match with errors.Is regardless of which layer
// raised it.
var (
	// ErrNotAMember is returned when the caller or a recovered signer is
	// not registered (as primary or session address) in the target game.
	ErrNotAMember = errors.New("arbiter: not a member of this game")

	// ErrWrongLifecycleState is returned when a game is not in the
	// required pre-state for the requested operation.
	ErrWrongLifecycleState = errors.New("arbiter: wrong lifecycle state")

	// ErrStakeMismatch is returned when a supplied value differs from
	// the stake or bond the operation requires.
	ErrStakeMismatch = errors.New("arbiter: stake mismatch")

	// ErrMalformedPayload is returned when a game names a rules module
	// that is not registered. The arbiter does not decode state or move
	// blobs itself: a blob the rules module cannot decode is reported as
	// a rejected move (ErrIllegalMove), not as ErrMalformedPayload.
	ErrMalformedPayload = errors.New("arbiter: malformed payload")

	// ErrBadSignature is returned when a move carries no signature or a
	// signature fails to recover; the underlying sig error is included in
	// the message text only, so errors.Is matches this sentinel and not
	// sig.ErrBadSignature.
	ErrBadSignature = errors.New("arbiter: bad signature")

	// ErrChainBroken is returned when a signed_moves[2] pair fails the
	// chaining contract: mismatched game_id, non-consecutive nonce, or
	// new_state/old_state discontinuity.
	ErrChainBroken = errors.New("arbiter: move chain broken")

	// ErrIllegalMove is returned when the rules module rejects a move,
	// or a claimed transition's result does not hash-match new_state.
	// dispute_move also returns this when the disputed move turns out
	// to actually be legal — there is nothing to disqualify.
	ErrIllegalMove = errors.New("arbiter: illegal move")

	// ErrNotFinal is returned when finish_game is invoked with a
	// resulting position that is not terminal per the rules module.
	ErrNotFinal = errors.New("arbiter: position is not final")

	// ErrTimeoutConflict is returned for any timeout sub-machine misuse:
	// init with one already active, resolve/finalize with none active,
	// resolve after expiry, or finalize before expiry.
	ErrTimeoutConflict = errors.New("arbiter: timeout conflict")
)
