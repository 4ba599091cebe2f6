package checkers

import (
	"testing"

	"github.com/chainhackers/gamejutsu/rules"
)

func encState(s State) []byte { return EncodeState(s) }
func encMove(m Move) []byte   { return EncodeMove(m) }

func TestOpeningMoveIsValidAndAdvancesTurn(t *testing.T) {
	var mod Module
	start := encState(DefaultInitialState())
	move := encMove(Move{From: 9, To: 14, PassToOpponent: true})

	if !mod.IsValidMove(start, White, move) {
		t.Fatal("9->14 should be a legal opening move for white")
	}

	next, err := DecodeState(mod.Transition(start, White, move))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if next.Cells[8] != Empty || next.Cells[13] != WhiteMan {
		t.Fatalf("expected piece moved from 9 to 14, got cells[8]=%#x cells[13]=%#x", next.Cells[8], next.Cells[13])
	}
	if !next.RedMoves {
		t.Fatal("turn should pass to red after white's move")
	}
	if next.Winner != NoWinner {
		t.Fatal("game should not be final after one move")
	}
}

func TestSimpleMoveRequiresPassToOpponentTrue(t *testing.T) {
	var mod Module
	start := encState(DefaultInitialState())
	move := encMove(Move{From: 9, To: 14, PassToOpponent: false})
	if mod.IsValidMove(start, White, move) {
		t.Fatal("a non-jump move must declare pass_to_opponent=true")
	}
}

func TestSimpleMoveIsNotBlockedByAnAvailableJumpElsewhere(t *testing.T) {
	// spec.md's design notes: mandatory capture is the mover's declared
	// responsibility, not an engine-enforced rule. A simple move stays
	// legal even while a jump is available on another piece.
	var mod Module
	var s State
	s.Cells[0] = WhiteMan  // square 1, has a quiet simple move available
	s.Cells[13] = WhiteMan // square 14, can jump 14->23 over red on 18
	s.Cells[17] = RedMan   // square 18
	start := encState(s)

	simple := encMove(Move{From: 1, To: 5, PassToOpponent: true})
	if !mod.IsValidMove(start, White, simple) {
		t.Fatal("simple move should remain legal even though a jump exists elsewhere")
	}
}

func TestJumpMustDeclarePassAccordingToFurtherJumpAvailability(t *testing.T) {
	var mod Module
	var s State
	s.Cells[8] = WhiteMan // square 9
	s.Cells[13] = RedMan  // square 14, captured by 9->18
	s.Cells[21] = RedMan  // square 22, captured by 18->25
	s.Cells[4] = RedMan   // square 5, keeps red alive throughout
	start := encState(s)

	firstWrong := encMove(Move{From: 9, To: 18, IsJump: true, PassToOpponent: true})
	if mod.IsValidMove(start, White, firstWrong) {
		t.Fatal("declaring pass=true must be rejected when a further jump exists from the landing square")
	}

	first := encMove(Move{From: 9, To: 18, IsJump: true, PassToOpponent: false})
	if !mod.IsValidMove(start, White, first) {
		t.Fatal("9->18 over 14 should be a legal jump with a further jump pending")
	}

	mid, err := DecodeState(mod.Transition(start, White, first))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if mid.Cells[8] != Empty || mid.Cells[13] != Empty || mid.Cells[17] != WhiteMan {
		t.Fatalf("unexpected board after first jump: %+v", mid.Cells)
	}
	if mid.RedMoves {
		t.Fatal("white must continue jumping; turn should not pass yet")
	}

	midBytes := encState(mid)
	secondWrong := encMove(Move{From: 18, To: 25, IsJump: true, PassToOpponent: false})
	if mod.IsValidMove(midBytes, White, secondWrong) {
		t.Fatal("declaring pass=false must be rejected when no further jump remains")
	}

	second := encMove(Move{From: 18, To: 25, IsJump: true, PassToOpponent: true})
	if !mod.IsValidMove(midBytes, White, second) {
		t.Fatal("18->25 over 22 should be legal and end the jump chain")
	}

	final, err := DecodeState(mod.Transition(midBytes, White, second))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if final.Cells[17] != Empty || final.Cells[21] != Empty || final.Cells[24] != WhiteMan {
		t.Fatalf("unexpected board after second jump: %+v", final.Cells)
	}
	if !final.RedMoves {
		t.Fatal("turn should pass to red once the jump chain ends")
	}
	if final.Winner != NoWinner {
		t.Fatal("red still has a piece on square 5, game should continue")
	}
}

func TestKingCanCaptureBackward(t *testing.T) {
	var mod Module
	var s State
	s.Cells[22] = WhiteKing // square 23
	s.Cells[17] = RedMan    // square 18
	s.Cells[4] = RedMan     // square 5, keeps red alive after the capture
	start := encState(s)

	jump := encMove(Move{From: 23, To: 14, IsJump: true, PassToOpponent: true})
	if !mod.IsValidMove(start, White, jump) {
		t.Fatal("a king must be able to jump backward (toward its own start rank)")
	}
	next, err := DecodeState(mod.Transition(start, White, jump))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if next.Cells[22] != Empty || next.Cells[17] != Empty || next.Cells[13] != WhiteKing {
		t.Fatalf("unexpected board after backward king capture: %+v", next.Cells)
	}
	if next.Winner != NoWinner {
		t.Fatal("red still has a piece on square 5, game should continue")
	}
}

func TestManPromotesOnReachingBackRank(t *testing.T) {
	var mod Module
	var s State
	s.Cells[25] = WhiteMan // square 26
	s.Cells[4] = RedMan    // square 5, keeps the game alive
	start := encState(s)

	move := encMove(Move{From: 26, To: 31, PassToOpponent: true})
	if !mod.IsValidMove(start, White, move) {
		t.Fatal("26->31 should be a legal simple move")
	}
	next, err := DecodeState(mod.Transition(start, White, move))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if next.Cells[30] != WhiteKing {
		t.Fatalf("man landing on the back rank must promote to king, got %#x", next.Cells[30])
	}
	if next.Winner != NoWinner {
		t.Fatal("red still has a piece, game should continue")
	}
	if !next.RedMoves {
		t.Fatal("turn should pass to red")
	}
}

func TestPlayerWithNoLegalActionLosesAutomatically(t *testing.T) {
	var mod Module
	var s State
	s.Cells[8] = WhiteMan // square 9, has a quiet move available
	s.Cells[0] = RedMan   // square 1: red's own promotion rank, boxed in with
	// no forward move or jump possible for a man standing there
	start := encState(s)

	move := encMove(Move{From: 9, To: 13, PassToOpponent: true})
	if !mod.IsValidMove(start, White, move) {
		t.Fatal("9->13 should be a legal simple move")
	}
	next, err := DecodeState(mod.Transition(start, White, move))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if next.Winner != WhiteWins {
		t.Fatalf("red has no legal action and should lose immediately, got winner=%d", next.Winner)
	}
	if !mod.IsFinal(encState(next)) || !mod.IsWin(encState(next), rules.PlayerID(White)) {
		t.Fatal("IsFinal/IsWin should agree with the recorded winner")
	}
	if mod.IsWin(encState(next), rules.PlayerID(Red)) {
		t.Fatal("both players cannot win")
	}
}

func TestDefaultInitialStateIsWellFormed(t *testing.T) {
	var mod Module
	s, err := DecodeState(mod.DefaultInitialState())
	if err != nil {
		t.Fatalf("default initial state does not decode: %v", err)
	}
	whiteCount, redCount := 0, 0
	for _, c := range s.Cells {
		switch c {
		case WhiteMan:
			whiteCount++
		case RedMan:
			redCount++
		}
	}
	if whiteCount != 12 || redCount != 12 {
		t.Fatalf("expected 12 men per side, got white=%d red=%d", whiteCount, redCount)
	}
	if s.RedMoves {
		t.Fatal("white moves first")
	}
}
