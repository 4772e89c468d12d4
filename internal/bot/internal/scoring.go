package internal

import "tractor/internal/domain"

// PhaseWeights tune lead scoring for a specific game phase.
type PhaseWeights struct {
	PointWeight        float64 // reward for points in the candidate
	StrengthWeight     float64 // reward for trick-taking strength
	TrumpRevealPenalty float64 // cost of showing trump early
	PairBonus          float64
	TractorBonus       float64
	ValueWeight        float64 // raw card value contribution
	SafetyWeight       float64 // reward for low, disposable leads
}

// BotTuning holds the per-phase weights and shared thresholds.
type BotTuning struct {
	Probe      PhaseWeights
	Aggressive PhaseWeights
	Control    PhaseWeights
	Endgame    PhaseWeights
}

// ForPhase returns the weights matching the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseProbe:
		return t.Probe
	case PhaseAggressive:
		return t.Aggressive
	case PhaseEndgame:
		return t.Endgame
	default:
		return t.Control
	}
}

// ScoreLead rates a candidate lead under the phase weights. Higher is better.
func ScoreLead(m ValidMove, w PhaseWeights, trump domain.TrumpInfo, hand []domain.Card, remaining int) float64 {
	a := ScoreCombo(m.Combo, trump, hand, remaining)
	score := 0.0
	score += w.PointWeight * float64(a.Points)
	score += w.StrengthWeight * float64(a.Strength)
	score += w.ValueWeight * float64(m.Combo.Value)
	if a.IsTrump {
		score -= w.TrumpRevealPenalty
	}
	switch m.Combo.Type {
	case domain.ComboPair:
		score += w.PairBonus
	case domain.ComboTractor:
		score += w.TractorBonus
	}
	// Safety prefers cheap, pointless, non-trump leads.
	score += w.SafetyWeight * (100 - a.Conservation - float64(a.Points)*5)
	return score
}
