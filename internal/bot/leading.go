package bot

import (
	"fmt"

	"tractor/internal/bot/brain"
	"tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// LeadingChain builds the 1st-position priority chain.
func LeadingChain() *Chain {
	return &Chain{
		Position: "leading",
		Links: []Strategy{
			&comboLead{},
			&earlyWinnerLead{},
			&voidExploitLead{},
			&pointProtectionFilter{},
			&memoryPointCollection{},
			&guaranteedWinnerLead{},
			&historicalInsightLead{},
			&phaseHeuristicLead{},
			&safeDisposal{},
		},
	}
}

// comboLead opens with a tractor once the probing phase is over: multi-card
// structures are hardest to follow and seize tempo.
type comboLead struct{}

func (s *comboLead) Name() string { return "combo_lead" }

func (s *comboLead) Decide(tc *TurnContext) *Decision {
	if tc.Phase == internal.PhaseProbe {
		return nil
	}
	var best *internal.ValidMove
	bestLen, bestValue := 0, 0
	for i := range tc.Candidates {
		m := &tc.Candidates[i]
		if m.Combo.Type != domain.ComboTractor {
			continue
		}
		if len(m.Cards) > bestLen || (len(m.Cards) == bestLen && m.Combo.Value > bestValue) {
			best = m
			bestLen = len(m.Cards)
			bestValue = m.Combo.Value
		}
	}
	if best == nil {
		return nil
	}
	return &Decision{Cards: best.Cards, Reason: "tractor lead for tempo"}
}

// earlyWinnerLead cashes guaranteed-winner singles in the probing phase:
// non-trump top-rank cards before anyone can be void.
type earlyWinnerLead struct{}

func (s *earlyWinnerLead) Name() string { return "early_winner_lead" }

func (s *earlyWinnerLead) Decide(tc *TurnContext) *Decision {
	if tc.Phase != internal.PhaseProbe {
		return nil
	}
	for _, m := range tc.Candidates {
		if m.Combo.Type != domain.ComboSingle {
			continue
		}
		c := m.Cards[0]
		if tc.Trump.IsTrump(c) || c.Rank != topOrdinaryRank(tc.Trump) {
			continue
		}
		// Keep pairs intact: a paired top card leads later as a pair.
		if domain.CountKind(tc.Hand, c.Kind()) >= 2 {
			continue
		}
		return &Decision{Cards: m.Cards, Reason: fmt.Sprintf("early guaranteed winner in %v", c.Suit)}
	}
	return nil
}

// topOrdinaryRank is the highest rank still living in ordinary suits.
func topOrdinaryRank(trump domain.TrumpInfo) domain.Rank {
	if trump.TrumpRank == domain.RankAce {
		return domain.RankKing
	}
	return domain.RankAce
}

// voidExploitLead leads into suits where no opponent can ruff: an opponent
// threatens a lead only when void in the suit while still holding trump.
type voidExploitLead struct{}

func (s *voidExploitLead) Name() string { return "void_exploit_lead" }

func (s *voidExploitLead) Decide(tc *TurnContext) *Decision {
	if tc.Memory.TricksAnalyzed < 1 {
		return nil
	}
	opponents := domain.OpponentSeats(tc.Seat)
	var best *internal.ValidMove
	bestValue := -1
	for i := range tc.Candidates {
		m := &tc.Candidates[i]
		if m.Combo.Type == domain.ComboInvalid || tc.Trump.IsTrump(m.Cards[0]) {
			continue
		}
		suit := m.Cards[0].Suit
		safe := true
		exploitable := false
		for _, opp := range opponents {
			pm := tc.Memory.Players[opp]
			if pm.VoidIn(suit) {
				if !pm.TrumpVoid {
					safe = false
					break
				}
				exploitable = true
			}
		}
		if safe && exploitable && m.Combo.Value > bestValue {
			best = m
			bestValue = m.Combo.Value
		}
	}
	if best == nil {
		return nil
	}
	return &Decision{
		Cards:  best.Cards,
		Reason: fmt.Sprintf("opponent void in %v with no trump left", best.Cards[0].Suit),
	}
}

// pointProtectionFilter prunes leads that hand valuable cards to a ruffing
// opponent. It never decides; it narrows the candidate set for later links.
type pointProtectionFilter struct{}

func (s *pointProtectionFilter) Name() string { return "point_protection" }

const (
	probableVoidThreshold = 0.75
	voidConfidenceFloor   = 0.7
	protectedPointFloor   = 5
	riskPointFloor        = 10
)

func (s *pointProtectionFilter) Decide(tc *TurnContext) *Decision {
	opponents := domain.OpponentSeats(tc.Seat)
	kept := tc.Candidates[:0]
	for _, m := range tc.Candidates {
		if !s.risky(tc, m, opponents) {
			kept = append(kept, m)
		}
	}
	// Never filter down to nothing: the chain still needs a play.
	if len(kept) > 0 {
		tc.Candidates = kept
	}
	return nil
}

func (s *pointProtectionFilter) risky(tc *TurnContext, m internal.ValidMove, opponents [2]int) bool {
	if m.Combo.Type == domain.ComboInvalid || tc.Trump.IsTrump(m.Cards[0]) {
		return false
	}
	points := domain.TotalPoints(m.Cards)
	if points < protectedPointFloor {
		return false
	}
	suit := m.Cards[0].Suit
	for _, opp := range opponents {
		pm := tc.Memory.Players[opp]
		if pm.VoidIn(suit) && !pm.TrumpVoid {
			return true
		}
		if points >= riskPointFloor &&
			tc.Memory.SuitVoidProbability(opp, suit) > probableVoidThreshold &&
			tc.Memory.Confidence() > voidConfidenceFloor &&
			!pm.TrumpVoid {
			return true
		}
	}
	return false
}

// memoryPointCollection cashes point combos that memory proves unbeatable.
// It needs at least one completed trick of observations.
type memoryPointCollection struct{}

func (s *memoryPointCollection) Name() string { return "memory_point_collection" }

func (s *memoryPointCollection) Decide(tc *TurnContext) *Decision {
	if tc.Memory.TricksAnalyzed < 1 {
		return nil
	}
	var best *internal.ValidMove
	bestPoints := 0
	for i := range tc.Candidates {
		m := &tc.Candidates[i]
		points := domain.TotalPoints(m.Cards)
		if points == 0 {
			continue
		}
		if !moveIsBiggestRemaining(tc.Memory, *m, tc.Trump) {
			continue
		}
		if points > bestPoints {
			best = m
			bestPoints = points
		}
	}
	if best == nil {
		return nil
	}
	return &Decision{Cards: best.Cards, Reason: fmt.Sprintf("collecting %d safe points", bestPoints)}
}

// guaranteedWinnerLead plays any lead the memory proves biggest-remaining,
// point cards first, then by rank value.
type guaranteedWinnerLead struct{}

func (s *guaranteedWinnerLead) Name() string { return "guaranteed_winner_lead" }

func (s *guaranteedWinnerLead) Decide(tc *TurnContext) *Decision {
	var best *internal.ValidMove
	bestPoints, bestValue := -1, -1
	for i := range tc.Candidates {
		m := &tc.Candidates[i]
		if !moveIsBiggestRemaining(tc.Memory, *m, tc.Trump) {
			continue
		}
		points := domain.TotalPoints(m.Cards)
		if points > bestPoints || (points == bestPoints && m.Combo.Value > bestValue) {
			best = m
			bestPoints = points
			bestValue = m.Combo.Value
		}
	}
	if best == nil {
		return nil
	}
	return &Decision{Cards: best.Cards, Reason: "biggest remaining in suit"}
}

// moveIsBiggestRemaining checks a non-trump single or pair against the
// memory's biggest-remaining query.
func moveIsBiggestRemaining(mem *brain.CardMemory, m internal.ValidMove, trump domain.TrumpInfo) bool {
	if m.Combo.Type != domain.ComboSingle && m.Combo.Type != domain.ComboPair {
		return false
	}
	c := m.Cards[0]
	if trump.IsTrump(c) || c.IsJoker() {
		return false
	}
	return brain.IsBiggestRemaining(mem, c.Suit, c.Rank, m.Combo.Type)
}

// historicalInsightLead biases the lead from opponent behavior profiles once
// enough tricks back the model.
type historicalInsightLead struct{}

func (s *historicalInsightLead) Name() string { return "historical_insight" }

func (s *historicalInsightLead) Decide(tc *TurnContext) *Decision {
	if tc.History == nil || tc.History.Degraded || tc.Memory.TricksAnalyzed < 3 {
		return nil
	}
	opponents := domain.OpponentSeats(tc.Seat)
	agg := (tc.History.Profiles[opponents[0]].Aggressiveness() +
		tc.History.Profiles[opponents[1]].Aggressiveness()) / 2

	switch {
	case agg > 0.6:
		// Aggressive table: hold strength back and give nothing away.
		move, ok := safestCandidate(tc)
		if !ok {
			return nil
		}
		return &Decision{
			Cards:  move.Cards,
			Reason: fmt.Sprintf("conservative lead against aggressiveness %.2f", agg),
		}
	case agg < 0.2 && tc.Phase != internal.PhaseProbe:
		// Passive table: push strength while it still wins tricks.
		move := strongestCandidate(tc)
		return &Decision{
			Cards:  move.Cards,
			Reason: fmt.Sprintf("aggressive lead against passiveness %.2f", agg),
		}
	}
	return nil
}

func safestCandidate(tc *TurnContext) (internal.ValidMove, bool) {
	var best internal.ValidMove
	bestCost := 0.0
	found := false
	for _, m := range tc.Candidates {
		if domain.TotalPoints(m.Cards) > 0 || tc.Trump.IsTrump(m.Cards[0]) {
			continue
		}
		cost := internal.ScoreCombo(m.Combo, tc.Trump, tc.Hand, tc.Remaining()).Conservation
		if !found || cost < bestCost {
			best = m
			bestCost = cost
			found = true
		}
	}
	return best, found
}

func strongestCandidate(tc *TurnContext) internal.ValidMove {
	best := tc.Candidates[0]
	bestScore := -1.0
	for _, m := range tc.Candidates {
		a := internal.ScoreCombo(m.Combo, tc.Trump, tc.Hand, tc.Remaining())
		score := float64(a.Strength)*10 + a.Disruption*5 + float64(m.Combo.Value)/10
		if score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}

// phaseHeuristicLead scores every remaining candidate with the phase weights
// and takes the best: probing favors safe low leads, aggression favors
// points, control favors structures, endgame maximizes total value.
type phaseHeuristicLead struct{}

func (s *phaseHeuristicLead) Name() string { return "phase_heuristic" }

func (s *phaseHeuristicLead) Decide(tc *TurnContext) *Decision {
	weights := tc.Tuning.ForPhase(tc.Phase)
	var ties []internal.ValidMove
	bestScore := 0.0
	for _, m := range tc.Candidates {
		if m.Combo.Type == domain.ComboInvalid {
			continue
		}
		score := internal.ScoreLead(m, weights, tc.Trump, tc.Hand, tc.Remaining())
		switch {
		case len(ties) == 0 || score > bestScore:
			ties = ties[:0]
			ties = append(ties, m)
			bestScore = score
		case score == bestScore:
			ties = append(ties, m)
		}
	}
	if len(ties) == 0 {
		return nil
	}
	move := tc.tieBreak(ties)
	return &Decision{Cards: move.Cards, Reason: fmt.Sprintf("%v phase heuristic", tc.Phase)}
}

// safeDisposal is the terminal fallback: the weakest non-trump, non-point
// card, or failing that the globally weakest candidate. Always decides.
type safeDisposal struct{}

func (s *safeDisposal) Name() string { return "safe_disposal" }

func (s *safeDisposal) Decide(tc *TurnContext) *Decision {
	if move, ok := safestCandidate(tc); ok {
		return &Decision{Cards: move.Cards, Degraded: true, Reason: "no better lead available"}
	}
	move := internal.CheapestMove(tc.Candidates, tc.Trump, tc.Hand, tc.Remaining())
	return &Decision{Cards: move.Cards, Degraded: true, Reason: "forced disposal of weakest holding"}
}
