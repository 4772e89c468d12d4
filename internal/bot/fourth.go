package bot

import (
	"fmt"

	"tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// OptimalDecision is the 4th seat's trick-level intent. Playing last, the
// outcome of the trick is fully determined by the choice.
type OptimalDecision int

const (
	// OptimalWin takes the trick from the opponents.
	OptimalWin OptimalDecision = iota
	// OptimalContribute loads points onto a winning teammate.
	OptimalContribute
	// OptimalMinimize concedes a lost trick as cheaply as possible.
	OptimalMinimize
	// OptimalLose declines a winnable trick to conserve strength.
	OptimalLose
)

func (d OptimalDecision) String() string {
	switch d {
	case OptimalWin:
		return "win"
	case OptimalContribute:
		return "contribute"
	case OptimalLose:
		return "lose"
	}
	return "minimize"
}

// ContributionStrategy refines OptimalContribute: how many points to commit.
type ContributionStrategy int

const (
	// ContributeMaximize gives the biggest points available, Ten before King
	// before Five.
	ContributeMaximize ContributionStrategy = iota
	// ContributeOptimize gives points while sparing cards with residual
	// trick-taking power.
	ContributeOptimize
	// ContributeConservative gives only small points.
	ContributeConservative
	// ContributeMinimal gives nothing it does not have to.
	ContributeMinimal
)

func (c ContributionStrategy) String() string {
	switch c {
	case ContributeMaximize:
		return "maximize"
	case ContributeOptimize:
		return "optimize"
	case ContributeConservative:
		return "conservative"
	}
	return "minimal"
}

// FourthChain builds the 4th-position chain: a single strategy, since playing
// last collapses the priority question into one decision.
func FourthChain() *Chain {
	return &Chain{
		Position: "fourth",
		Links:    []Strategy{&fourthOptimal{}},
	}
}

type fourthOptimal struct{}

func (s *fourthOptimal) Name() string { return "fourth_optimal" }

func (s *fourthOptimal) Decide(tc *TurnContext) *Decision {
	intent, winner := classifyFourth(tc)
	switch intent {
	case OptimalWin:
		return &Decision{
			Cards:  winner.Cards,
			Reason: fmt.Sprintf("winning %d points from last position", tc.Trick.Points),
		}
	case OptimalContribute:
		strat := selectContribution(tc)
		move := pickContribution(tc, strat)
		return &Decision{
			Cards:  move.Cards,
			Reason: fmt.Sprintf("%s contribution to a winning teammate", strat),
		}
	case OptimalLose:
		move := minimalDisposal(tc)
		return &Decision{Cards: move.Cards, Reason: "declining a worthless trick"}
	default:
		move := minimalDisposal(tc)
		return &Decision{Cards: move.Cards, Reason: "conceding a lost trick cheaply"}
	}
}

// classifyFourth picks the trick-level intent and, for OptimalWin, the move.
func classifyFourth(tc *TurnContext) (OptimalDecision, internal.ValidMove) {
	if tc.Trick.WinnerSeat == tc.TeammateSeat() {
		return OptimalContribute, internal.ValidMove{}
	}
	winner, ok := internal.CheapestWinner(tc.Candidates, tc.Trick, tc.Trump, tc.Hand, tc.Remaining())
	if !ok {
		return OptimalMinimize, internal.ValidMove{}
	}
	if tc.Trick.Points == 0 &&
		tc.Ctx.Pressure == internal.PressureLow &&
		tc.Phase != internal.PhaseEndgame &&
		tc.Trump.IsTrump(winner.Cards[0]) {
		// Spending trump on an empty trick buys nothing.
		return OptimalLose, internal.ValidMove{}
	}
	return OptimalWin, winner
}

// selectContribution grades how much to give a winning teammate. A shaky win
// earlier in the trick still banks the points, but it signals a weak seat
// worth sparing the big cards for; a skewed trump balance rewards spending
// points now while control is certain.
func selectContribution(tc *TurnContext) ContributionStrategy {
	a := internal.ScoreCombo(tc.Trick.WinningCombo, tc.Trump, tc.Hand, tc.Remaining())
	switch {
	case a.Strength == internal.StrengthWeak:
		// A weak card only won because the opponents passed; they are
		// holding strength back, so the points keep better for later.
		return ContributeMinimal
	case a.Strength < internal.StrengthStrong:
		return ContributeConservative
	}
	advantage := tc.Memory.TrumpExhaustion(tc.Game.Config) - 0.5
	if advantage > 0.1 || advantage < -0.1 {
		return ContributeOptimize
	}
	return ContributeMaximize
}

// contributionOrder ranks the kinds a strategy prefers to give, best first.
func contributionOrder(strat ContributionStrategy) []domain.Rank {
	switch strat {
	case ContributeMaximize:
		// Ten and King both carry ten points; the Ten has less residual
		// trick-taking power, so it goes first.
		return []domain.Rank{domain.RankTen, domain.RankKing, domain.RankFive}
	case ContributeOptimize:
		return []domain.Rank{domain.RankTen, domain.RankFive, domain.RankKing}
	case ContributeConservative:
		return []domain.Rank{domain.RankFive}
	}
	return nil
}

func pickContribution(tc *TurnContext, strat ContributionStrategy) internal.ValidMove {
	order := contributionOrder(strat)
	plain := func(m internal.ValidMove) bool { return !tc.Trump.IsTrump(m.Cards[0]) }
	inTrump := func(m internal.ValidMove) bool { return tc.Trump.IsTrump(m.Cards[0]) }
	anyMove := func(internal.ValidMove) bool { return true }

	switch strat {
	case ContributeMaximize:
		if m, ok := pickPointMove(tc, order, anyMove); ok {
			return m
		}
	case ContributeOptimize:
		first, second := plain, inTrump
		if tc.Memory.TrumpExhaustion(tc.Game.Config) < 0.5 {
			// Trumps are still loose: giving trump points now beats losing
			// them to a ruff later.
			first, second = inTrump, plain
		}
		if m, ok := pickPointMove(tc, order, first); ok {
			return m
		}
		if m, ok := pickPointMove(tc, order, second); ok {
			return m
		}
	case ContributeConservative:
		if m, ok := pickPointMove(tc, order, plain); ok {
			return m
		}
		if m, ok := cheapestTrumpPoints(tc); ok {
			return m
		}
	}
	return minimalDisposal(tc)
}

// pickPointMove runs the rank-priority scan over point-carrying candidates
// passing the filter, breaking point ties with tieBreak.
func pickPointMove(tc *TurnContext, order []domain.Rank, include func(internal.ValidMove) bool) (internal.ValidMove, bool) {
	for _, rank := range order {
		var ties []internal.ValidMove
		bestPts := 0
		for _, m := range tc.Candidates {
			pts := domain.TotalPoints(m.Cards)
			if pts == 0 || !containsRank(m.Cards, rank) || !include(m) {
				continue
			}
			switch {
			case pts > bestPts:
				ties = []internal.ValidMove{m}
				bestPts = pts
			case pts == bestPts:
				ties = append(ties, m)
			}
		}
		if len(ties) > 0 {
			return tc.tieBreak(ties), true
		}
	}
	return internal.ValidMove{}, false
}

// cheapestTrumpPoints is the lowest-value trump combo that still carries
// points, for contributions that must dip into trump.
func cheapestTrumpPoints(tc *TurnContext) (internal.ValidMove, bool) {
	var pool []internal.ValidMove
	for _, m := range tc.Candidates {
		if tc.Trump.IsTrump(m.Cards[0]) && domain.TotalPoints(m.Cards) > 0 {
			pool = append(pool, m)
		}
	}
	if len(pool) == 0 {
		return internal.ValidMove{}, false
	}
	return internal.CheapestMove(pool, tc.Trump, tc.Hand, tc.Remaining()), true
}

func containsRank(cards []domain.Card, rank domain.Rank) bool {
	for _, c := range cards {
		if c.Joker == domain.JokerNone && c.Rank == rank {
			return true
		}
	}
	return false
}

// minimalDisposal is the cheapest pointless candidate, or the cheapest
// candidate outright when every option carries points.
func minimalDisposal(tc *TurnContext) internal.ValidMove {
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
	return internal.CheapestMove(pool, tc.Trump, tc.Hand, tc.Remaining())
}
