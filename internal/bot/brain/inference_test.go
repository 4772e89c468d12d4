package brain

import (
	"testing"

	"tractor/internal/domain"
)

func TestIsBiggestRemainingAsymmetry(t *testing.T) {
	trump := domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}
	mem := &CardMemory{Trump: trump}

	// One copy of the spade Ace has been played.
	mem.PlayedCards = []domain.Card{{Suit: domain.Spades, Rank: domain.RankAce}}

	if !IsBiggestRemaining(mem, domain.Spades, domain.RankKing, domain.ComboPair) {
		t.Error("King pair should be biggest: a higher Ace pair can no longer be completed")
	}
	if IsBiggestRemaining(mem, domain.Spades, domain.RankKing, domain.ComboSingle) {
		t.Error("King single is not biggest until both Aces are played")
	}

	mem.PlayedCards = append(mem.PlayedCards, domain.Card{Suit: domain.Spades, Rank: domain.RankAce, DeckID: 1})
	if !IsBiggestRemaining(mem, domain.Spades, domain.RankKing, domain.ComboSingle) {
		t.Error("King single should be biggest once both Aces are played")
	}
}

func TestIsBiggestRemainingSkipsTrumpRank(t *testing.T) {
	// With Ace as the trump rank the King is the top ordinary card outright.
	trump := domain.TrumpInfo{TrumpRank: domain.RankAce, TrumpSuit: domain.Hearts, Declared: true}
	mem := &CardMemory{Trump: trump}
	if !IsBiggestRemaining(mem, domain.Spades, domain.RankKing, domain.ComboSingle) {
		t.Error("King should be biggest when the Ace belongs to the trump group")
	}
}

func TestSuitVoidProbability(t *testing.T) {
	trump := domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}
	pm := &PlayerMemory{Seat: 1, SuitVoids: map[domain.Suit]bool{domain.Spades: true}}
	mem := &CardMemory{
		Trump:   trump,
		Players: map[int]*PlayerMemory{1: pm, 2: {Seat: 2, SuitVoids: map[domain.Suit]bool{}}},
		Probabilities: map[domain.Card][4]float64{
			{Suit: domain.Clubs, Rank: domain.RankNine}: {0, 0.5, 0.5, 0},
		},
	}

	if got := mem.SuitVoidProbability(1, domain.Spades); got != 1 {
		t.Errorf("confirmed void must be certain, got %f", got)
	}
	got := mem.SuitVoidProbability(2, domain.Clubs)
	if got != 0.5 {
		t.Errorf("club void probability = %f, want 0.5", got)
	}
}

func TestTrumpExhaustion(t *testing.T) {
	trump := domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}
	mem := &CardMemory{Trump: trump, TrumpCardsPlayed: 18}
	got := mem.TrumpExhaustion(domain.DefaultDeckConfig())
	if got != 0.5 {
		t.Errorf("exhaustion = %f, want 0.5 with 18 of 36 trumps played", got)
	}
}
