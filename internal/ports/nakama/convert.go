package nakama

import (
	"tractor/internal/domain"
)

// WireCard is the JSON shape cards cross the network in.
type WireCard struct {
	Suit  int `json:"suit"`
	Rank  int `json:"rank"`
	Joker int `json:"joker"`
	Deck  int `json:"deck"`
}

func cardsToWire(cards []domain.Card) []WireCard {
	out := make([]WireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, WireCard{
			Suit:  int(c.Suit),
			Rank:  int(c.Rank),
			Joker: int(c.Joker),
			Deck:  c.DeckID,
		})
	}
	return out
}

func cardsFromWire(cards []WireCard) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.Card{
			Suit:   domain.Suit(c.Suit),
			Rank:   domain.Rank(c.Rank),
			Joker:  domain.JokerType(c.Joker),
			DeckID: c.Deck,
		})
	}
	return out
}
