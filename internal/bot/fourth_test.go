package bot

import (
	"testing"

	"tractor/internal/domain"
)

// Teammate holds the trick with an ace; the ten goes before the king even
// though both are worth ten points.
func TestFourthContributesTenBeforeKing(t *testing.T) {
	hands := [4][]domain.Card{
		0: {sc(domain.Clubs, domain.RankSix)},
		1: {sc(domain.Clubs, domain.RankSeven)},
		2: {sc(domain.Clubs, domain.RankEight)},
		3: {
			sc(domain.Spades, domain.RankKing),
			sc(domain.Spades, domain.RankTen),
			sc(domain.Spades, domain.RankThree),
		},
	}
	g := newBotGame(hands)
	startTrick(t, g,
		domain.Play{Seat: 0, Cards: []domain.Card{sc(domain.Spades, domain.RankSix)}},
		domain.Play{Seat: 1, Cards: []domain.Card{sc(domain.Spades, domain.RankAce)}},
		domain.Play{Seat: 2, Cards: []domain.Card{sc(domain.Spades, domain.RankFour)}},
	)

	d, err := NewEngine().SelectPlay(g, 3)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if d.Strategy != "fourth_optimal" {
		t.Errorf("strategy = %q, want fourth_optimal", d.Strategy)
	}
	want := []domain.Card{sc(domain.Spades, domain.RankTen)}
	if len(d.Cards) != 1 || !d.Cards[0].SameKind(want[0]) {
		t.Errorf("contribution = %v, want %v", d.Cards, want)
	}
}

func TestFourthWinsPointTrick(t *testing.T) {
	hands := [4][]domain.Card{
		0: {sc(domain.Clubs, domain.RankSix)},
		1: {sc(domain.Clubs, domain.RankSeven)},
		2: {sc(domain.Clubs, domain.RankEight)},
		3: {
			sc(domain.Spades, domain.RankAce),
			sc(domain.Spades, domain.RankThree),
			sc(domain.Clubs, domain.RankFive),
		},
	}
	g := newBotGame(hands)
	startTrick(t, g,
		domain.Play{Seat: 0, Cards: []domain.Card{sc(domain.Spades, domain.RankTen)}},
		domain.Play{Seat: 1, Cards: []domain.Card{sc(domain.Spades, domain.RankNine)}},
		domain.Play{Seat: 2, Cards: []domain.Card{sc(domain.Spades, domain.RankQueen)}},
	)

	d, err := NewEngine().SelectPlay(g, 3)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if len(d.Cards) != 1 || !d.Cards[0].SameKind(sc(domain.Spades, domain.RankAce)) {
		t.Errorf("play = %v, want spade ace to take 10 points", d.Cards)
	}
}

// The trick is empty of points and winnable only by ruffing; the bot keeps
// its trump and sheds junk instead.
func TestFourthDeclinesWorthlessTrick(t *testing.T) {
	hands := [4][]domain.Card{
		0: {sc(domain.Clubs, domain.RankSix)},
		1: {sc(domain.Clubs, domain.RankSeven)},
		2: {sc(domain.Clubs, domain.RankEight)},
		3: {
			sc(domain.Hearts, domain.RankThree),
			sc(domain.Hearts, domain.RankFour),
			sc(domain.Clubs, domain.RankSix),
			sc(domain.Clubs, domain.RankSeven),
			sc(domain.Clubs, domain.RankEight),
			sc(domain.Clubs, domain.RankNine),
			sc(domain.Clubs, domain.RankJack),
			sc(domain.Diamonds, domain.RankSix),
			sc(domain.Diamonds, domain.RankSeven),
		},
	}
	g := newBotGame(hands) // declarer seat 1: seat 3 defends, no point pressure
	startTrick(t, g,
		domain.Play{Seat: 0, Cards: []domain.Card{sc(domain.Spades, domain.RankEight)}},
		domain.Play{Seat: 1, Cards: []domain.Card{sc(domain.Spades, domain.RankNine)}},
		domain.Play{Seat: 2, Cards: []domain.Card{sc(domain.Spades, domain.RankQueen)}},
	)

	d, err := NewEngine().SelectPlay(g, 3)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if len(d.Cards) != 1 {
		t.Fatalf("play = %v, want a single", d.Cards)
	}
	if g.Trump.IsTrump(d.Cards[0]) {
		t.Errorf("spent trump %v on a pointless trick", d.Cards[0])
	}
	if d.Cards[0].Points() > 0 {
		t.Errorf("fed points %v into a lost trick", d.Cards[0])
	}
}

// A seat whose only point cards are trump still feeds the teammate's trick
// instead of degrading to a junk discard.
func TestFourthContributesTrumpPointsWhenVoid(t *testing.T) {
	hands := [4][]domain.Card{
		0: {sc(domain.Clubs, domain.RankSix)},
		1: {sc(domain.Clubs, domain.RankSeven)},
		2: {sc(domain.Clubs, domain.RankEight)},
		3: {
			sc(domain.Hearts, domain.RankFive),
			sc(domain.Hearts, domain.RankThree),
		},
	}
	g := newBotGame(hands)
	startTrick(t, g,
		domain.Play{Seat: 0, Cards: []domain.Card{sc(domain.Spades, domain.RankSix)}},
		domain.Play{Seat: 1, Cards: []domain.Card{sc(domain.Spades, domain.RankAce)}},
		domain.Play{Seat: 2, Cards: []domain.Card{sc(domain.Spades, domain.RankFour)}},
	)

	d, err := NewEngine().SelectPlay(g, 3)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if len(d.Cards) != 1 || !d.Cards[0].SameKind(sc(domain.Hearts, domain.RankFive)) {
		t.Errorf("contribution = %v, want the heart five", d.Cards)
	}
}

// A teammate scraping the trick with a weak card signals opponents holding
// back; the points stay in hand.
func TestFourthWithholdsPointsFromShakyWin(t *testing.T) {
	hands := [4][]domain.Card{
		0: {sc(domain.Clubs, domain.RankSix)},
		1: {sc(domain.Clubs, domain.RankSeven)},
		2: {sc(domain.Clubs, domain.RankEight)},
		3: {
			sc(domain.Spades, domain.RankFive),
			sc(domain.Spades, domain.RankThree),
		},
	}
	g := newBotGame(hands)
	startTrick(t, g,
		domain.Play{Seat: 0, Cards: []domain.Card{sc(domain.Spades, domain.RankSix)}},
		domain.Play{Seat: 1, Cards: []domain.Card{sc(domain.Spades, domain.RankSeven)}},
		domain.Play{Seat: 2, Cards: []domain.Card{sc(domain.Spades, domain.RankFour)}},
	)

	d, err := NewEngine().SelectPlay(g, 3)
	if err != nil {
		t.Fatalf("SelectPlay: %v", err)
	}
	if len(d.Cards) != 1 || !d.Cards[0].SameKind(sc(domain.Spades, domain.RankThree)) {
		t.Errorf("play = %v, want the spade three kept back", d.Cards)
	}
}

func TestContributionOrder(t *testing.T) {
	cases := []struct {
		strat ContributionStrategy
		want  []domain.Rank
	}{
		{ContributeMaximize, []domain.Rank{domain.RankTen, domain.RankKing, domain.RankFive}},
		{ContributeOptimize, []domain.Rank{domain.RankTen, domain.RankFive, domain.RankKing}},
		{ContributeConservative, []domain.Rank{domain.RankFive}},
		{ContributeMinimal, nil},
	}
	for _, tc := range cases {
		got := contributionOrder(tc.strat)
		if len(got) != len(tc.want) {
			t.Errorf("%v: order = %v, want %v", tc.strat, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%v: order = %v, want %v", tc.strat, got, tc.want)
				break
			}
		}
	}
}
