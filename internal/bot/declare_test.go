package bot

import (
	"testing"

	"tractor/internal/domain"
)

func TestDecideTrumpDeclaration(t *testing.T) {
	trumpRank := domain.RankTwo
	longSpades := []domain.Card{
		sc(domain.Spades, domain.RankTwo),
		sc(domain.Spades, domain.RankFive),
		sc(domain.Spades, domain.RankSeven),
		sc(domain.Spades, domain.RankNine),
		sc(domain.Spades, domain.RankJack),
		sc(domain.Clubs, domain.RankFour),
	}

	cases := []struct {
		name    string
		hand    []domain.Card
		current *Declaration
		want    DeclarationStrength
	}{
		{
			name: "single with long suit support",
			hand: longSpades,
			want: DeclareSingle,
		},
		{
			name: "single without suit support stays quiet",
			hand: []domain.Card{
				sc(domain.Spades, domain.RankTwo),
				sc(domain.Clubs, domain.RankFour),
				sc(domain.Clubs, domain.RankSeven),
				sc(domain.Diamonds, domain.RankNine),
			},
			want: DeclareNone,
		},
		{
			name: "pair outbids a standing single",
			hand: []domain.Card{
				scd(domain.Clubs, domain.RankTwo, 0),
				scd(domain.Clubs, domain.RankTwo, 1),
				sc(domain.Clubs, domain.RankNine),
			},
			current: &Declaration{Seat: 2, Suit: domain.Spades, Strength: DeclareSingle},
			want:    DeclarePair,
		},
		{
			name: "equal strength cannot overcall",
			hand: []domain.Card{
				scd(domain.Clubs, domain.RankTwo, 0),
				scd(domain.Clubs, domain.RankTwo, 1),
			},
			current: &Declaration{Seat: 2, Suit: domain.Spades, Strength: DeclarePair},
			want:    DeclareNone,
		},
		{
			name: "big jokers beat everything",
			hand: []domain.Card{
				{Joker: domain.JokerBig, DeckID: 0},
				{Joker: domain.JokerBig, DeckID: 1},
			},
			current: &Declaration{Seat: 2, Suit: domain.Spades, Strength: DeclareSmallJokers},
			want:    DeclareBigJokers,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecideTrumpDeclaration(tc.hand, trumpRank, tc.current, 0)
			if tc.want == DeclareNone {
				if got != nil {
					t.Fatalf("declared %v, want silence", got.Strength)
				}
				return
			}
			if got == nil {
				t.Fatalf("stayed quiet, want %v", tc.want)
			}
			if got.Strength != tc.want {
				t.Errorf("strength = %v, want %v", got.Strength, tc.want)
			}
			if tc.want >= DeclareSmallJokers && got.Suit != domain.SuitNone {
				t.Errorf("joker declaration fixed suit %v, want none", got.Suit)
			}
		})
	}
}

func TestSelectKittyBurySparesTrumpAndPoints(t *testing.T) {
	trump := botTrump()
	hand := []domain.Card{
		sc(domain.Hearts, domain.RankAce),  // trump
		sc(domain.Hearts, domain.RankFour), // trump
		sc(domain.Spades, domain.RankKing),
		sc(domain.Spades, domain.RankTen),
		sc(domain.Clubs, domain.RankThree),
		sc(domain.Clubs, domain.RankSix),
		sc(domain.Diamonds, domain.RankFour),
		sc(domain.Diamonds, domain.RankSeven),
	}

	buried := SelectKittyBury(hand, trump, 4)
	if len(buried) != 4 {
		t.Fatalf("buried %d cards, want 4", len(buried))
	}
	for _, c := range buried {
		if trump.IsTrump(c) {
			t.Errorf("buried trump %v", c)
		}
		if c.Points() > 0 {
			t.Errorf("buried point card %v", c)
		}
	}
}

func TestSelectKittyBuryShortSuitsFirst(t *testing.T) {
	trump := botTrump()
	hand := []domain.Card{
		sc(domain.Spades, domain.RankThree),
		sc(domain.Clubs, domain.RankThree),
		sc(domain.Clubs, domain.RankFour),
		sc(domain.Clubs, domain.RankSix),
		sc(domain.Clubs, domain.RankSeven),
		sc(domain.Clubs, domain.RankEight),
		sc(domain.Clubs, domain.RankNine),
	}

	buried := SelectKittyBury(hand, trump, 1)
	if len(buried) != 1 || buried[0].Suit != domain.Spades {
		t.Errorf("buried %v, want the lone spade to open a void", buried)
	}
}
