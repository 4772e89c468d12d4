package bot

import (
	"fmt"

	"tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// SecondChain builds the 2nd-position priority chain. The leader is always an
// opponent here; the deciding seat's teammate plays last.
func SecondChain() *Chain {
	return &Chain{
		Position: "second",
		Links: []Strategy{
			&secondPressure{},
			&secondBlock{},
			&secondSetup{},
			&secondSupport{},
		},
	}
}

// secondPressure contests leads worth fighting for: point-carrying leads, or
// any lead under high point pressure, get the cheapest winning response.
type secondPressure struct{}

func (s *secondPressure) Name() string { return "second_pressure" }

func (s *secondPressure) Decide(tc *TurnContext) *Decision {
	leadPoints := domain.TotalPoints(tc.Trick.Lead.Cards)
	if leadPoints < 10 && tc.Ctx.Pressure != internal.PressureHigh {
		return nil
	}
	move, ok := internal.CheapestWinner(tc.Candidates, tc.Trick, tc.Trump, tc.Hand, tc.Remaining())
	if !ok {
		return nil
	}
	return &Decision{
		Cards:  move.Cards,
		Reason: fmt.Sprintf("contesting %d points in the lead", leadPoints),
	}
}

// secondBlock takes strong non-point leads away from the opponents when the
// winning response is itself unbeatable, denying them tempo for free.
type secondBlock struct{}

func (s *secondBlock) Name() string { return "second_block" }

func (s *secondBlock) Decide(tc *TurnContext) *Decision {
	a := internal.ScoreCombo(tc.Trick.Lead, tc.Trump, tc.Hand, tc.Remaining())
	if a.Strength < internal.StrengthStrong {
		return nil
	}
	for _, m := range internal.WinningMoves(tc.Candidates, tc.Trick, tc.Trump) {
		if moveIsBiggestRemaining(tc.Memory, m, tc.Trump) {
			return &Decision{Cards: m.Cards, Reason: "blocking a strong lead with a sure winner"}
		}
	}
	return nil
}

// secondSetup loads points when the last-seat teammate is positioned to take
// the trick: confirmed void in the led suit while still holding trump.
type secondSetup struct{}

func (s *secondSetup) Name() string { return "second_setup" }

func (s *secondSetup) Decide(tc *TurnContext) *Decision {
	leadCard := tc.Trick.Lead.Cards[0]
	if tc.Trump.IsTrump(leadCard) {
		return nil
	}
	pm := tc.Memory.Players[tc.TeammateSeat()]
	if pm == nil || !pm.VoidIn(leadCard.Suit) || pm.TrumpVoid {
		return nil
	}
	move := internal.PointHeaviestMove(tc.Candidates, tc.Trump, tc.Hand, tc.Remaining())
	if domain.TotalPoints(move.Cards) == 0 {
		return nil
	}
	return &Decision{Cards: move.Cards, Reason: "loading points for a teammate ruff"}
}

// secondSupport is the terminal fallback: concede the trick cheaply and keep
// point cards out of it, trusting the teammate in last position.
type secondSupport struct{}

func (s *secondSupport) Name() string { return "second_support" }

func (s *secondSupport) Decide(tc *TurnContext) *Decision {
	var pointless []internal.ValidMove
	for _, m := range tc.Candidates {
		if domain.TotalPoints(m.Cards) == 0 {
			pointless = append(pointless, m)
		}
	}
	pool := tc.Candidates
	if len(pointless) > 0 {
		pool = pointless
	}
	move := internal.CheapestMove(pool, tc.Trump, tc.Hand, tc.Remaining())
	return &Decision{Cards: move.Cards, Reason: "conceding cheaply ahead of the teammate"}
}
