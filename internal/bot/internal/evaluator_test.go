package internal

import (
	"testing"

	"tractor/internal/domain"
)

var trump = domain.TrumpInfo{TrumpRank: domain.RankTwo, TrumpSuit: domain.Hearts, Declared: true}

func TestScoreComboTrumpHierarchy(t *testing.T) {
	hand := []domain.Card{}
	bigJoker := domain.IdentifyCombo([]domain.Card{{Joker: domain.JokerBig}}, trump)
	smallJoker := domain.IdentifyCombo([]domain.Card{{Joker: domain.JokerSmall}}, trump)
	inSuitRank := domain.IdentifyCombo([]domain.Card{{Suit: domain.Hearts, Rank: domain.RankTwo}}, trump)
	offSuitRank := domain.IdentifyCombo([]domain.Card{{Suit: domain.Clubs, Rank: domain.RankTwo}}, trump)
	trumpSuit := domain.IdentifyCombo([]domain.Card{{Suit: domain.Hearts, Rank: domain.RankAce}}, trump)

	prev := ScoreCombo(bigJoker, trump, hand, 20).Conservation
	for _, combo := range []domain.Combo{smallJoker, inSuitRank, offSuitRank, trumpSuit} {
		got := ScoreCombo(combo, trump, hand, 20).Conservation
		if got >= prev {
			t.Errorf("trump hierarchy out of order: %v valued %f, previous %f", combo.Cards, got, prev)
		}
		prev = got
	}
}

func TestScoreComboEndgameBoost(t *testing.T) {
	combo := domain.IdentifyCombo([]domain.Card{{Suit: domain.Hearts, Rank: domain.RankAce}}, trump)
	mid := ScoreCombo(combo, trump, nil, 20).Conservation
	end := ScoreCombo(combo, trump, nil, 4).Conservation
	if end <= mid {
		t.Errorf("endgame scarcity should raise conservation: %f vs %f", end, mid)
	}
}

func TestScoreComboPairBreakPenalty(t *testing.T) {
	single := []domain.Card{{Suit: domain.Spades, Rank: domain.RankNine}}
	combo := domain.IdentifyCombo(single, trump)

	loneHand := []domain.Card{{Suit: domain.Spades, Rank: domain.RankNine}}
	pairHand := []domain.Card{
		{Suit: domain.Spades, Rank: domain.RankNine},
		{Suit: domain.Spades, Rank: domain.RankNine, DeckID: 1},
	}

	lone := ScoreCombo(combo, trump, loneHand, 20).Conservation
	paired := ScoreCombo(combo, trump, pairHand, 20).Conservation
	if paired <= lone {
		t.Errorf("breaking a pair should cost more: %f vs %f", paired, lone)
	}
}

func TestClassifyStrength(t *testing.T) {
	tests := []struct {
		name  string
		cards []domain.Card
		want  Strength
	}{
		{"Low single is weak", []domain.Card{{Suit: domain.Spades, Rank: domain.RankFour}}, StrengthWeak},
		{"Ace single is strong", []domain.Card{{Suit: domain.Spades, Rank: domain.RankAce}}, StrengthStrong},
		{"Trump single is strong", []domain.Card{{Suit: domain.Hearts, Rank: domain.RankFive}}, StrengthStrong},
		{"Big joker is critical", []domain.Card{{Joker: domain.JokerBig}}, StrengthCritical},
		{
			"Trump pair is critical",
			[]domain.Card{{Suit: domain.Hearts, Rank: domain.RankNine}, {Suit: domain.Hearts, Rank: domain.RankNine, DeckID: 1}},
			StrengthCritical,
		},
		{
			"Mid pair is medium",
			[]domain.Card{{Suit: domain.Spades, Rank: domain.RankFour}, {Suit: domain.Spades, Rank: domain.RankFour, DeckID: 1}},
			StrengthMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo := domain.IdentifyCombo(tt.cards, trump)
			got := ScoreCombo(combo, trump, nil, 20).Strength
			if got != tt.want {
				t.Errorf("strength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		remaining int
		pressure  PointPressure
		want      GamePhase
	}{
		{25, PressureLow, PhaseProbe},
		{15, PressureHigh, PhaseAggressive},
		{6, PressureLow, PhaseEndgame},
		{15, PressureLow, PhaseControl},
		{8, PressureHigh, PhaseAggressive},
	}
	for _, tt := range tests {
		if got := DetectPhase(tt.remaining, tt.pressure); got != tt.want {
			t.Errorf("DetectPhase(%d, %v) = %v, want %v", tt.remaining, tt.pressure, got, tt.want)
		}
	}
}
