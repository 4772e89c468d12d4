package brain

import (
	"testing"

	"tractor/internal/domain"
)

func trickLedBy(seat int, cards ...domain.Card) domain.Trick {
	plays := []domain.Play{{Seat: seat, Cards: []domain.Card{cards[0]}}}
	for i, c := range cards[1:] {
		plays = append(plays, domain.Play{Seat: (seat + i + 1) % 4, Cards: []domain.Card{c}})
	}
	return domain.Trick{Plays: plays}
}

func TestBuildHistoryDegradedOnThinSamples(t *testing.T) {
	trump := domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}
	tricks := []domain.Trick{
		trickLedBy(1,
			domain.Card{Suit: domain.Spades, Rank: domain.RankNine},
			domain.Card{Suit: domain.Spades, Rank: domain.RankTen},
			domain.Card{Suit: domain.Spades, Rank: domain.RankThree},
			domain.Card{Suit: domain.Spades, Rank: domain.RankFour}),
	}
	h := BuildHistory(tricks, trump, 0)
	if !h.Degraded {
		t.Error("one trick of history must flag the model degraded")
	}
	pred := h.Predict(1)
	if !pred.Degraded {
		t.Error("prediction from a degraded model must be flagged")
	}
	if pred.Reasoning == "" {
		t.Error("prediction must carry a reasoning string")
	}
}

func TestAggressivenessAndPrediction(t *testing.T) {
	trump := domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}
	var tricks []domain.Trick
	for i := 0; i < 4; i++ {
		tricks = append(tricks, trickLedBy(1,
			domain.Card{Suit: domain.Hearts, Rank: domain.RankNine, DeckID: i % 2},
			domain.Card{Suit: domain.Hearts, Rank: domain.RankTen, DeckID: i % 2},
			domain.Card{Suit: domain.Hearts, Rank: domain.RankThree, DeckID: i % 2},
			domain.Card{Suit: domain.Hearts, Rank: domain.RankFour, DeckID: i % 2}))
	}
	h := BuildHistory(tricks, trump, 0)
	if h.Degraded {
		t.Fatal("four tricks should not be degraded")
	}

	p := h.Profiles[1]
	if p.TrumpLeadRate() != 1.0 {
		t.Errorf("trump lead rate = %f, want 1.0", p.TrumpLeadRate())
	}
	if agg := p.Aggressiveness(); agg < 0.6 {
		t.Errorf("always leading trump should score aggressive, got %f", agg)
	}

	pred := h.Predict(1)
	if pred.Degraded {
		t.Error("informed prediction must not be flagged degraded")
	}
	if pred.Class != ClassTrumpLead {
		t.Errorf("predicted class = %v, want trump lead", pred.Class)
	}
	if pred.Confidence <= 0.25 {
		t.Errorf("informed prediction should beat the baseline confidence, got %f", pred.Confidence)
	}
}

func TestConsistencyBounds(t *testing.T) {
	trump := domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}
	var tricks []domain.Trick
	// Identical behavior throughout: consistency should stay at 1.
	for i := 0; i < 6; i++ {
		tricks = append(tricks, trickLedBy(2,
			domain.Card{Suit: domain.Clubs, Rank: domain.RankSix, DeckID: i % 2},
			domain.Card{Suit: domain.Clubs, Rank: domain.RankSeven, DeckID: i % 2},
			domain.Card{Suit: domain.Clubs, Rank: domain.RankEight, DeckID: i % 2},
			domain.Card{Suit: domain.Clubs, Rank: domain.RankNine, DeckID: i % 2}))
	}
	h := BuildHistory(tricks, trump, 0)
	p := h.Profiles[2]
	c := p.Consistency()
	if c < 0 || c > 1 {
		t.Fatalf("consistency out of bounds: %f", c)
	}
	if c != 1 {
		t.Errorf("uniform behavior should be fully consistent, got %f", c)
	}
	if lr := p.LearningRate(); lr != 0 {
		t.Errorf("learning rate should be 0 for consistent play, got %f", lr)
	}
	if got := p.PreferredSuit(); got != domain.Clubs {
		t.Errorf("preferred suit = %v, want clubs", got)
	}
}
