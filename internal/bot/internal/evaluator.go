package internal

import (
	"tractor/internal/domain"
)

// Strength buckets a combo's ability to take tricks.
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthMedium
	StrengthStrong
	StrengthCritical
)

func (s Strength) String() string {
	switch s {
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	case StrengthCritical:
		return "critical"
	}
	return "weak"
}

// ComboAnalysis scores one candidate combo for the strategy pipeline.
type ComboAnalysis struct {
	Combo   domain.Combo
	IsTrump bool
	// Strength classifies trick-taking power.
	Strength Strength
	// Points is the combo's total point value.
	Points int
	// Disruption measures how hard this play is for opponents to handle.
	Disruption float64
	// Conservation is the cost of letting the combo go: high-conservation
	// cards should not be burned on cheap tricks.
	Conservation float64
}

// Trump hierarchy conservation values: jokers highest, then trump-rank cards,
// then trump-suit cards by rank. The absolute numbers are tuned heuristics;
// only their ordering is load-bearing.
const (
	conserveBigJoker    = 100.0
	conserveSmallJoker  = 90.0
	conserveInSuitRank  = 80.0
	conserveOffSuitRank = 70.0
	conserveTrumpSuit   = 30.0

	pairBreakPenalty = 30.0
	endgameBoost     = 1.5
	endgameHandSize  = 5
)

// ScoreCombo rates a combo in the context of the full hand and the number of
// cards its owner still holds.
func ScoreCombo(combo domain.Combo, trump domain.TrumpInfo, hand []domain.Card, cardsRemaining int) ComboAnalysis {
	a := ComboAnalysis{
		Combo:   combo,
		IsTrump: trump.IsTrump(combo.Cards[0]),
		Points:  domain.TotalPoints(combo.Cards),
	}
	a.Strength = classifyStrength(combo, a.IsTrump)
	a.Disruption = disruption(combo, a.IsTrump)
	a.Conservation = conservation(combo, trump, hand, a.IsTrump)
	if cardsRemaining <= endgameHandSize {
		a.Conservation *= endgameBoost
	}
	return a
}

func classifyStrength(combo domain.Combo, isTrump bool) Strength {
	level := combo.Value
	if isTrump {
		level -= 100 // back to the in-group order
		if level >= 14 || combo.Type != domain.ComboSingle {
			// Jokers, and any multi-card trump structure.
			return StrengthCritical
		}
		return StrengthStrong
	}
	bump := 0
	if combo.Type == domain.ComboPair {
		bump = 1
	} else if combo.Type == domain.ComboTractor {
		bump = 2
	}
	var base Strength
	switch {
	case level >= 10: // K, A region
		base = StrengthStrong
	case level >= 6:
		base = StrengthMedium
	default:
		base = StrengthWeak
	}
	s := int(base) + bump
	if s > int(StrengthCritical) {
		s = int(StrengthCritical)
	}
	return Strength(s)
}

// disruption rewards plays that force answers: trump, tractors, pairs.
func disruption(combo domain.Combo, isTrump bool) float64 {
	d := 0.0
	if isTrump {
		d += 0.4
	}
	switch combo.Type {
	case domain.ComboTractor:
		d += 0.3
	case domain.ComboPair:
		d += 0.15
	}
	d += 0.05 * float64(len(combo.Cards)-1)
	if d > 1 {
		d = 1
	}
	return d
}

// conservation values a combo by what is lost when it leaves the hand. Trump
// combos draw from the fixed hierarchy; singles that would break up a held
// pair are penalized so the pair survives.
func conservation(combo domain.Combo, trump domain.TrumpInfo, hand []domain.Card, isTrump bool) float64 {
	v := 0.0
	if isTrump {
		for _, c := range combo.Cards {
			v += trumpConservation(c, trump)
		}
	} else {
		for _, c := range combo.Cards {
			v += float64(trump.OrderOf(c)) * 2
		}
	}
	if combo.Type == domain.ComboSingle && domain.CountKind(hand, combo.Cards[0].Kind()) >= 2 {
		v += pairBreakPenalty
	}
	return v
}

func trumpConservation(c domain.Card, trump domain.TrumpInfo) float64 {
	switch {
	case c.Joker == domain.JokerBig:
		return conserveBigJoker
	case c.Joker == domain.JokerSmall:
		return conserveSmallJoker
	case c.Rank == trump.TrumpRank:
		if trump.TrumpSuit != domain.SuitNone && c.Suit == trump.TrumpSuit {
			return conserveInSuitRank
		}
		return conserveOffSuitRank
	default:
		return conserveTrumpSuit + float64(trump.RankIndex(c.Rank))
	}
}
