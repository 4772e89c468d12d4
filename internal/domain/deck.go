package domain

import (
	"math/rand"
	"sort"
)

// DeckConfig parameterizes the deck composition so rule variants stay
// expressible without touching game logic.
type DeckConfig struct {
	SuitCount      int // playable suits
	RankCount      int // ranks per suit
	DeckCount      int // physical decks shuffled together
	JokersPerDeck  int
	KittySize      int
	StartingPoints int // points the attackers need to win the round
}

// DefaultDeckConfig is the standard double-deck Shengji setup: 108 cards,
// eight-card kitty, 80-point target.
func DefaultDeckConfig() DeckConfig {
	return DeckConfig{
		SuitCount:      4,
		RankCount:      13,
		DeckCount:      2,
		JokersPerDeck:  2,
		KittySize:      8,
		StartingPoints: 80,
	}
}

// TotalCards returns the full deck size.
func (dc DeckConfig) TotalCards() int {
	return (dc.SuitCount*dc.RankCount + dc.JokersPerDeck) * dc.DeckCount
}

// HandSize returns the per-seat deal for a four-player round.
func (dc DeckConfig) HandSize() int {
	return (dc.TotalCards() - dc.KittySize) / 4
}

// TrumpCardCount returns how many cards the trump group holds under the given
// trump info: jokers, trump-rank cards of every suit, and the trump suit's
// remaining ranks.
func (dc DeckConfig) TrumpCardCount(trump TrumpInfo) int {
	n := dc.JokersPerDeck * dc.DeckCount // jokers
	n += dc.SuitCount * dc.DeckCount     // trump-rank cards
	if trump.TrumpSuit != SuitNone {
		n += (dc.RankCount - 1) * dc.DeckCount // trump suit minus its trump rank
	}
	return n
}

// NewDeck returns an ordered deck for the configuration.
func NewDeck(dc DeckConfig) []Card {
	deck := make([]Card, 0, dc.TotalCards())
	for d := 0; d < dc.DeckCount; d++ {
		for _, s := range Suits[:dc.SuitCount] {
			for r := RankTwo; r < RankTwo+Rank(dc.RankCount); r++ {
				deck = append(deck, Card{Suit: s, Rank: r, DeckID: d})
			}
		}
		if dc.JokersPerDeck >= 1 {
			deck = append(deck, Card{Joker: JokerSmall, DeckID: d})
		}
		if dc.JokersPerDeck >= 2 {
			deck = append(deck, Card{Joker: JokerBig, DeckID: d})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the deck using the supplied source.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits a shuffled deck into four hands and the kitty.
func Deal(deck []Card, dc DeckConfig) (hands [4][]Card, kitty []Card) {
	per := dc.HandSize()
	for seat := 0; seat < 4; seat++ {
		hand := make([]Card, per)
		copy(hand, deck[seat*per:(seat+1)*per])
		hands[seat] = hand
	}
	kitty = make([]Card, dc.KittySize)
	copy(kitty, deck[4*per:])
	return hands, kitty
}

// SortHand orders a hand by group then ascending strength, trump group last.
func SortHand(cards []Card, trump TrumpInfo) {
	sort.SliceStable(cards, func(i, j int) bool {
		gi, gj := trump.GroupOf(cards[i]), trump.GroupOf(cards[j])
		if gi != gj {
			if gi == GroupTrump {
				return false
			}
			if gj == GroupTrump {
				return true
			}
			return gi < gj
		}
		oi, oj := trump.OrderOf(cards[i]), trump.OrderOf(cards[j])
		if oi != oj {
			return oi < oj
		}
		return cards[i].DeckID < cards[j].DeckID
	})
}
