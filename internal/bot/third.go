package bot

import (
	"fmt"

	"tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// ThirdChain builds the 3rd-position priority chain. The leader is the
// deciding seat's teammate; one opponent has followed and one plays after.
func ThirdChain() *Chain {
	return &Chain{
		Position: "third",
		Links: []Strategy{
			&thirdSupport{},
			&thirdTakeover{},
			&thirdStrategic{},
		},
	}
}

// winningComboSecure reports whether the trick's current winner is safe from
// the one seat still to play: an unbeatable combo against a seat that cannot
// ruff.
func winningComboSecure(tc *TurnContext, lastSeat int) bool {
	w := tc.Trick.WinningCombo
	if len(w.Cards) == 0 {
		return false
	}
	leadCard := tc.Trick.Lead.Cards[0]
	pm := tc.Memory.Players[lastSeat]
	if !tc.Trump.IsTrump(leadCard) && pm != nil && pm.VoidIn(leadCard.Suit) && !pm.TrumpVoid {
		return false
	}
	c := w.Cards[0]
	if tc.Trump.IsTrump(c) {
		// Only the in-suit trump rank and the jokers are safe once committed.
		return tc.Trump.OrderOf(c) >= 13
	}
	return moveIsBiggestRemaining(tc.Memory, internal.ValidMove{Cards: w.Cards, Combo: w}, tc.Trump)
}

// thirdSupport loads points onto a teammate who is winning securely.
type thirdSupport struct{}

func (s *thirdSupport) Name() string { return "third_support" }

func (s *thirdSupport) Decide(tc *TurnContext) *Decision {
	if tc.Trick.WinnerSeat != tc.TeammateSeat() {
		return nil
	}
	lastSeat := (tc.Seat + 1) % 4
	if !winningComboSecure(tc, lastSeat) {
		return nil
	}
	move := internal.PointHeaviestMove(tc.Candidates, tc.Trump, tc.Hand, tc.Remaining())
	if domain.TotalPoints(move.Cards) == 0 {
		return nil
	}
	return &Decision{
		Cards:  move.Cards,
		Reason: fmt.Sprintf("feeding %d points to a secure teammate", domain.TotalPoints(move.Cards)),
	}
}

// thirdTakeover wins the trick when the teammate has lost it, or holds it too
// weakly to survive the last opponent, and the trick is worth taking.
type thirdTakeover struct{}

func (s *thirdTakeover) Name() string { return "third_takeover" }

func (s *thirdTakeover) Decide(tc *TurnContext) *Decision {
	teammateWinning := tc.Trick.WinnerSeat == tc.TeammateSeat()
	lastSeat := (tc.Seat + 1) % 4
	if teammateWinning && winningComboSecure(tc, lastSeat) {
		return nil
	}
	stake := tc.Trick.Points
	if stake < 5 && tc.Ctx.Pressure != internal.PressureHigh && teammateWinning {
		return nil
	}
	move, ok := internal.CheapestWinner(tc.Candidates, tc.Trick, tc.Trump, tc.Hand, tc.Remaining())
	if !ok {
		return nil
	}
	if teammateWinning {
		// Overtaking a partner only pays when the replacement is solid.
		if !moveIsBiggestRemaining(tc.Memory, move, tc.Trump) && !tc.Trump.IsTrump(move.Cards[0]) {
			return nil
		}
		return &Decision{Cards: move.Cards, Reason: "reinforcing an insecure teammate win"}
	}
	return &Decision{Cards: move.Cards, Reason: "taking the trick back from the opponents"}
}

// thirdStrategic is the terminal fallback: concede without feeding points,
// keeping the strongest holdings intact.
type thirdStrategic struct{}

func (s *thirdStrategic) Name() string { return "third_strategic" }

func (s *thirdStrategic) Decide(tc *TurnContext) *Decision {
	var pointless []internal.ValidMove
	for _, m := range tc.Candidates {
		if domain.TotalPoints(m.Cards) == 0 {
			pointless = append(pointless, m)
		}
	}
	pool := tc.Candidates
	reason := "no safe option, disposing cheaply"
	if len(pointless) > 0 {
		pool = pointless
		reason = "holding points back from a contested trick"
	}
	move := internal.CheapestMove(pool, tc.Trump, tc.Hand, tc.Remaining())
	return &Decision{Cards: move.Cards, Reason: reason}
}
