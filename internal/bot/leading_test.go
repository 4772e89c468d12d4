package bot

import (
	"testing"

	"tractor/internal/domain"
)

func scd(suit domain.Suit, rank domain.Rank, deck int) domain.Card {
	return domain.Card{Suit: suit, Rank: rank, DeckID: deck}
}

func TestLeadingPlaysGuaranteedWinner(t *testing.T) {
	hands := [4][]domain.Card{
		0: {
			sc(domain.Spades, domain.RankAce),
			sc(domain.Spades, domain.RankEight),
			sc(domain.Clubs, domain.RankFour),
			sc(domain.Clubs, domain.RankSeven),
			sc(domain.Clubs, domain.RankNine),
			sc(domain.Diamonds, domain.RankFour),
			sc(domain.Diamonds, domain.RankEight),
			sc(domain.Diamonds, domain.RankJack),
			sc(domain.Hearts, domain.RankJack),
		},
		1: {sc(domain.Clubs, domain.RankSix)},
		2: {sc(domain.Clubs, domain.RankEight)},
		3: {sc(domain.Clubs, domain.RankJack)},
	}
	g := newBotGame(hands)

	d, err := NewEngine().SelectPlay(g, 0)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if d.Strategy != "guaranteed_winner_lead" {
		t.Errorf("strategy = %q, want guaranteed_winner_lead", d.Strategy)
	}
	if len(d.Cards) != 1 || !d.Cards[0].SameKind(sc(domain.Spades, domain.RankAce)) {
		t.Errorf("lead = %v, want spade ace", d.Cards)
	}
}

func TestLeadingOpensWithTractor(t *testing.T) {
	hands := [4][]domain.Card{
		0: {
			scd(domain.Spades, domain.RankFive, 0),
			scd(domain.Spades, domain.RankFive, 1),
			scd(domain.Spades, domain.RankSix, 0),
			scd(domain.Spades, domain.RankSix, 1),
			sc(domain.Clubs, domain.RankFour),
			sc(domain.Clubs, domain.RankEight),
			sc(domain.Diamonds, domain.RankThree),
			sc(domain.Diamonds, domain.RankNine),
			sc(domain.Hearts, domain.RankJack),
		},
		1: {sc(domain.Clubs, domain.RankSix)},
		2: {sc(domain.Clubs, domain.RankNine)},
		3: {sc(domain.Clubs, domain.RankJack)},
	}
	g := newBotGame(hands)

	d, err := NewEngine().SelectPlay(g, 0)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if d.Strategy != "combo_lead" {
		t.Errorf("strategy = %q, want combo_lead", d.Strategy)
	}
	if len(d.Cards) != 4 {
		t.Fatalf("lead = %v, want the four-card tractor", d.Cards)
	}
	combo := domain.IdentifyCombo(d.Cards, g.Trump)
	if combo.Type != domain.ComboTractor {
		t.Errorf("lead combo type = %v, want tractor", combo.Type)
	}
}

// An opponent has shown a spade void while holding trump: the point-laden
// spade tens never reach the table.
func TestLeadingProtectsPointsFromKnownRuff(t *testing.T) {
	hands := [4][]domain.Card{
		0: {
			scd(domain.Spades, domain.RankTen, 0),
			scd(domain.Spades, domain.RankTen, 1),
			sc(domain.Clubs, domain.RankFour),
			sc(domain.Clubs, domain.RankSix),
			sc(domain.Clubs, domain.RankEight),
			sc(domain.Clubs, domain.RankJack),
			sc(domain.Diamonds, domain.RankSeven),
			sc(domain.Diamonds, domain.RankNine),
			sc(domain.Diamonds, domain.RankJack),
		},
		1: {sc(domain.Clubs, domain.RankSeven)},
		2: {sc(domain.Diamonds, domain.RankFour)},
		3: {sc(domain.Diamonds, domain.RankSix)},
	}
	g := newBotGame(hands)

	// Seat 1 ruffed a spade trick: confirmed void with trump in hand.
	trick := domain.NewTrick()
	for _, p := range []domain.Play{
		{Seat: 2, Cards: []domain.Card{sc(domain.Spades, domain.RankSeven)}},
		{Seat: 3, Cards: []domain.Card{sc(domain.Spades, domain.RankFour)}},
		{Seat: 0, Cards: []domain.Card{sc(domain.Spades, domain.RankNine)}},
		{Seat: 1, Cards: []domain.Card{sc(domain.Hearts, domain.RankNine)}},
	} {
		if err := trick.AddPlay(p.Seat, p.Cards, g.Trump); err != nil {
			t.Fatalf("AddPlay: %v", err)
		}
	}
	g.CompletedTricks = []domain.Trick{*trick}

	d, err := NewEngine().SelectPlay(g, 0)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	for _, c := range d.Cards {
		if c.Suit == domain.Spades && c.Rank == domain.RankTen {
			t.Fatalf("led %v into a known ruff", d.Cards)
		}
	}
}
