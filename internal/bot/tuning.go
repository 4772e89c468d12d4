package bot

import "tractor/internal/bot/internal"

// DefaultTuning is the baseline weight set. Probing keeps leads cheap and
// uninformative, aggression chases points, control prizes structure, endgame
// counts raw value.
func DefaultTuning() internal.BotTuning {
	return internal.BotTuning{
		Probe: internal.PhaseWeights{
			PointWeight:        0.2,
			StrengthWeight:     0.4,
			TrumpRevealPenalty: 2.0,
			PairBonus:          0.3,
			TractorBonus:       0.5,
			ValueWeight:        0.01,
			SafetyWeight:       1.2,
		},
		Aggressive: internal.PhaseWeights{
			PointWeight:        1.5,
			StrengthWeight:     1.0,
			TrumpRevealPenalty: 0.5,
			PairBonus:          0.6,
			TractorBonus:       1.0,
			ValueWeight:        0.03,
			SafetyWeight:       0.3,
		},
		Control: internal.PhaseWeights{
			PointWeight:        0.8,
			StrengthWeight:     1.0,
			TrumpRevealPenalty: 1.0,
			PairBonus:          0.8,
			TractorBonus:       1.2,
			ValueWeight:        0.02,
			SafetyWeight:       0.6,
		},
		Endgame: internal.PhaseWeights{
			PointWeight:        1.2,
			StrengthWeight:     1.2,
			TrumpRevealPenalty: 0.0,
			PairBonus:          0.4,
			TractorBonus:       0.6,
			ValueWeight:        0.05,
			SafetyWeight:       0.1,
		},
	}
}
