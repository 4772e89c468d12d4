package domain

import (
	"reflect"
	"testing"
)

var heartsTrump = TrumpInfo{TrumpRank: RankTwo, TrumpSuit: Hearts, Declared: true}

func TestIdentifyCombo(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected ComboType
	}{
		{
			name:     "Single",
			cards:    []Card{{Suit: Spades, Rank: RankSeven}},
			expected: ComboSingle,
		},
		{
			name:     "Pair of same kind",
			cards:    []Card{{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1}},
			expected: ComboPair,
		},
		{
			name:     "Not a pair across suits",
			cards:    []Card{{Suit: Spades, Rank: RankSeven}, {Suit: Clubs, Rank: RankSeven}},
			expected: ComboInvalid,
		},
		{
			name: "Tractor of two consecutive pairs",
			cards: []Card{
				{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1},
				{Suit: Spades, Rank: RankEight}, {Suit: Spades, Rank: RankEight, DeckID: 1},
			},
			expected: ComboTractor,
		},
		{
			name: "Tractor skips the trump rank gap",
			cards: []Card{
				{Suit: Spades, Rank: RankAce}, {Suit: Spades, Rank: RankAce, DeckID: 1},
				{Suit: Spades, Rank: RankKing}, {Suit: Spades, Rank: RankKing, DeckID: 1},
			},
			expected: ComboTractor,
		},
		{
			name: "Joker tractor tops the trump group",
			cards: []Card{
				{Joker: JokerSmall}, {Joker: JokerSmall, DeckID: 1},
				{Joker: JokerBig}, {Joker: JokerBig, DeckID: 1},
			},
			expected: ComboTractor,
		},
		{
			name: "Non-consecutive pairs are not a tractor",
			cards: []Card{
				{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1},
				{Suit: Spades, Rank: RankNine}, {Suit: Spades, Rank: RankNine, DeckID: 1},
			},
			expected: ComboInvalid,
		},
		{
			name: "Pairs across suits are not a tractor",
			cards: []Card{
				{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1},
				{Suit: Clubs, Rank: RankEight}, {Suit: Clubs, Rank: RankEight, DeckID: 1},
			},
			expected: ComboInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentifyCombo(tt.cards, heartsTrump)
			if got.Type != tt.expected {
				t.Errorf("IdentifyCombo(%v) = %v, want %v", tt.cards, got.Type, tt.expected)
			}
		})
	}
}

func TestTrumpRankAdjacency(t *testing.T) {
	// With 2 as trump rank, the Ace-in-trump-suit pair chains up to the
	// off-suit trump-rank level and the 5/7 pairs chain across the missing 6.
	trump := TrumpInfo{TrumpRank: RankSix, TrumpSuit: Hearts, Declared: true}
	cards := []Card{
		{Suit: Spades, Rank: RankFive}, {Suit: Spades, Rank: RankFive, DeckID: 1},
		{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1},
	}
	if got := IdentifyCombo(cards, trump); got.Type != ComboTractor {
		t.Errorf("5-5-7-7 with trump rank 6 should be a tractor, got %v", got.Type)
	}
}

func TestEnumerateCombosTwoPairHand(t *testing.T) {
	// Two consecutive Spade pairs: expect 4 singles, 2 pairs, exactly 1 tractor.
	hand := []Card{
		{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1},
		{Suit: Spades, Rank: RankEight}, {Suit: Spades, Rank: RankEight, DeckID: 1},
	}
	combos := EnumerateCombos(hand, heartsTrump)

	counts := map[ComboType]int{}
	for _, c := range combos {
		counts[c.Type]++
	}
	if counts[ComboSingle] != 4 {
		t.Errorf("expected 4 singles, got %d", counts[ComboSingle])
	}
	if counts[ComboPair] != 2 {
		t.Errorf("expected 2 pairs, got %d", counts[ComboPair])
	}
	if counts[ComboTractor] != 1 {
		t.Errorf("expected exactly 1 tractor, got %d", counts[ComboTractor])
	}
	for _, c := range combos {
		if c.Type == ComboTractor && len(c.Cards) != 4 {
			t.Errorf("tractor should have length 4, got %d", len(c.Cards))
		}
	}
}

func TestEnumerateCombosStableOrder(t *testing.T) {
	// Twin tractors in two suits: every enumeration must list the same
	// combos in the same order, whatever order the hand arrives in.
	hand := []Card{
		{Suit: Clubs, Rank: RankSix, DeckID: 1}, {Suit: Spades, Rank: RankFive},
		{Suit: Clubs, Rank: RankFive}, {Suit: Spades, Rank: RankSix, DeckID: 1},
		{Suit: Spades, Rank: RankFive, DeckID: 1}, {Suit: Clubs, Rank: RankSix},
		{Suit: Spades, Rank: RankSix}, {Suit: Clubs, Rank: RankFive, DeckID: 1},
	}
	first := EnumerateCombos(hand, heartsTrump)
	for i := 0; i < 50; i++ {
		shuffled := make([]Card, len(hand))
		copy(shuffled, hand)
		shuffled[i%len(hand)], shuffled[0] = shuffled[0], shuffled[i%len(hand)]
		got := EnumerateCombos(shuffled, heartsTrump)
		if !reflect.DeepEqual(first, got) {
			t.Fatalf("enumeration %d diverged:\n%v\n%v", i, first, got)
		}
	}
}

func TestEnumerateCombosSubTractors(t *testing.T) {
	hand := []Card{
		{Suit: Spades, Rank: RankSeven}, {Suit: Spades, Rank: RankSeven, DeckID: 1},
		{Suit: Spades, Rank: RankEight}, {Suit: Spades, Rank: RankEight, DeckID: 1},
		{Suit: Spades, Rank: RankNine}, {Suit: Spades, Rank: RankNine, DeckID: 1},
	}
	combos := EnumerateCombos(hand, heartsTrump)
	tractors := 0
	for _, c := range combos {
		if c.Type == ComboTractor {
			tractors++
		}
	}
	// 7-8, 8-9, 7-8-9
	if tractors != 3 {
		t.Errorf("expected 3 tractors from a 3-pair run, got %d", tractors)
	}
}
