package internal

import (
	"tractor/internal/domain"
)

// TrickAnalysis summarizes the live trick for follower strategies.
type TrickAnalysis struct {
	Lead         domain.Combo
	WinnerSeat   int
	WinningCombo domain.Combo
	Points       int
	// NextPosition is the 1-based trick position of the next play.
	NextPosition int
}

// AnalyzeTrick inspects the in-progress trick. Errors only on an empty trick,
// which callers treat as "we are leading".
func AnalyzeTrick(trick *domain.Trick, trump domain.TrumpInfo) (TrickAnalysis, error) {
	lead, err := trick.LeadingPlay()
	if err != nil {
		return TrickAnalysis{}, err
	}
	leadCombo := domain.IdentifyCombo(lead.Cards, trump)
	a := TrickAnalysis{
		Lead:         leadCombo,
		WinnerSeat:   lead.Seat,
		WinningCombo: leadCombo,
		Points:       trick.PointValue,
		NextPosition: len(trick.Plays) + 1,
	}
	for _, p := range trick.Plays[1:] {
		combo := domain.IdentifyCombo(p.Cards, trump)
		if combo.Type == domain.ComboInvalid {
			continue
		}
		if domain.Beats(combo, a.WinningCombo, leadCombo, trump) {
			a.WinnerSeat = p.Seat
			a.WinningCombo = combo
		}
	}
	return a, nil
}

// WinningMoves filters the candidates down to those that take the trick as it
// currently stands.
func WinningMoves(moves []ValidMove, a TrickAnalysis, trump domain.TrumpInfo) []ValidMove {
	var out []ValidMove
	for _, m := range moves {
		if m.Combo.Type == domain.ComboInvalid {
			continue
		}
		if domain.Beats(m.Combo, a.WinningCombo, a.Lead, trump) {
			out = append(out, m)
		}
	}
	return out
}

// CheapestWinner returns the winning move with the lowest conservation cost,
// or false if none of the candidates wins.
func CheapestWinner(moves []ValidMove, a TrickAnalysis, trump domain.TrumpInfo, hand []domain.Card, remaining int) (ValidMove, bool) {
	winners := WinningMoves(moves, a, trump)
	if len(winners) == 0 {
		return ValidMove{}, false
	}
	best := winners[0]
	bestCost := ScoreCombo(best.Combo, trump, hand, remaining).Conservation
	for _, m := range winners[1:] {
		cost := ScoreCombo(m.Combo, trump, hand, remaining).Conservation
		if cost < bestCost {
			best = m
			bestCost = cost
		}
	}
	return best, true
}

// CheapestMove returns the candidate with the lowest conservation cost. The
// candidate list must be non-empty.
func CheapestMove(moves []ValidMove, trump domain.TrumpInfo, hand []domain.Card, remaining int) ValidMove {
	best := moves[0]
	bestCost := moveCost(best, trump, hand, remaining)
	for _, m := range moves[1:] {
		if cost := moveCost(m, trump, hand, remaining); cost < bestCost {
			best = m
			bestCost = cost
		}
	}
	return best
}

// PointHeaviestMove returns the candidate contributing the most points,
// breaking ties toward the cheaper move.
func PointHeaviestMove(moves []ValidMove, trump domain.TrumpInfo, hand []domain.Card, remaining int) ValidMove {
	best := moves[0]
	bestPts := domain.TotalPoints(best.Cards)
	bestCost := moveCost(best, trump, hand, remaining)
	for _, m := range moves[1:] {
		pts := domain.TotalPoints(m.Cards)
		cost := moveCost(m, trump, hand, remaining)
		if pts > bestPts || (pts == bestPts && cost < bestCost) {
			best = m
			bestPts = pts
			bestCost = cost
		}
	}
	return best
}

func moveCost(m ValidMove, trump domain.TrumpInfo, hand []domain.Card, remaining int) float64 {
	if m.Combo.Type == domain.ComboInvalid {
		cost := 0.0
		for _, c := range m.Cards {
			cost += disposalCost(c, trump)
		}
		return cost
	}
	return ScoreCombo(m.Combo, trump, hand, remaining).Conservation
}
