package brain

import (
	"tractor/internal/domain"
)

// IsBiggestRemaining answers whether a rank in an ordinary suit is guaranteed
// to beat every as-yet-unseen card of that suit.
//
// The pair and single cases are deliberately asymmetric: a higher PAIR is
// dead as soon as one copy of any higher rank has been played, but a higher
// SINGLE survives until both copies of every higher rank are gone.
func IsBiggestRemaining(m *CardMemory, suit domain.Suit, rank domain.Rank, comboType domain.ComboType) bool {
	for r := rank + 1; r <= domain.RankAce; r++ {
		if r == m.Trump.TrumpRank {
			continue // trump-rank cards live in the trump group, not the suit
		}
		played := 0
		for _, c := range m.PlayedCards {
			if c.Suit == suit && c.Rank == r && !c.IsJoker() {
				played++
			}
		}
		switch comboType {
		case domain.ComboPair:
			if played < 1 {
				return false
			}
		default:
			if played < 2 {
				return false
			}
		}
	}
	return true
}

// SuitVoidProbability estimates how likely a seat is void in a suit. A
// confirmed void is certainty; otherwise it is the chance that none of the
// suit's unseen cards sit in that seat's hand, taken from the probability
// table.
func (m *CardMemory) SuitVoidProbability(seat int, suit domain.Suit) float64 {
	pm, ok := m.Players[seat]
	if !ok {
		return 0
	}
	if pm.VoidIn(suit) {
		return 1
	}
	p := 1.0
	for c, row := range m.Probabilities {
		if c.Suit == suit && !c.IsJoker() && !m.Trump.IsTrump(c) {
			p *= 1 - row[seat]
		}
	}
	return p
}

// TrumpVoidProbability is the trump-group analogue of SuitVoidProbability.
func (m *CardMemory) TrumpVoidProbability(seat int) float64 {
	pm, ok := m.Players[seat]
	if !ok {
		return 0
	}
	if pm.TrumpVoid {
		return 1
	}
	p := 1.0
	for c, row := range m.Probabilities {
		if m.Trump.IsTrump(c) {
			p *= 1 - row[seat]
		}
	}
	return p
}

// Confidence expresses how much play history backs the memory's estimates,
// saturating after a handful of tricks.
func (m *CardMemory) Confidence() float64 {
	conf := 0.3 + 0.1*float64(m.TricksAnalyzed)
	if conf > 1 {
		conf = 1
	}
	return conf
}

// UnseenInSuit counts unseen ordinary cards of a suit.
func (m *CardMemory) UnseenInSuit(suit domain.Suit) int {
	n := 0
	for c := range m.Probabilities {
		if c.Suit == suit && !c.IsJoker() && !m.Trump.IsTrump(c) {
			n++
		}
	}
	return n
}

// TrumpExhaustion reports the fraction of the trump group already played,
// given the deck configuration.
func (m *CardMemory) TrumpExhaustion(config domain.DeckConfig) float64 {
	total := config.TrumpCardCount(m.Trump)
	if total == 0 {
		return 0
	}
	return float64(m.TrumpCardsPlayed) / float64(total)
}
