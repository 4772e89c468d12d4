package domain

// Suit identifies one of the four French suits. Jokers carry SuitNone.
type Suit int

const (
	SuitNone Suit = iota
	Spades
	Hearts
	Clubs
	Diamonds
)

var suitNames = map[Suit]string{
	SuitNone: "none",
	Spades:   "S",
	Hearts:   "H",
	Clubs:    "C",
	Diamonds: "D",
}

func (s Suit) String() string { return suitNames[s] }

// Suits lists the four playable suits in a fixed iteration order.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Rank is the face value of a card. Jokers carry RankNone.
type Rank int

const (
	RankNone  Rank = 0
	RankTwo   Rank = 2
	RankThree Rank = 3
	RankFour  Rank = 4
	RankFive  Rank = 5
	RankSix   Rank = 6
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
)

// JokerType distinguishes the two jokers from ordinary cards.
type JokerType int

const (
	JokerNone JokerType = iota
	JokerSmall
	JokerBig
)

// Card is a single card instance in a multi-deck game. DeckID tags which
// physical deck the instance came from so two copies of the same kind stay
// distinguishable in set membership.
type Card struct {
	Suit   Suit
	Rank   Rank
	Joker  JokerType
	DeckID int
}

// CardKind is the deck-instance-agnostic identity of a card, used for pairing.
type CardKind struct {
	Suit  Suit
	Rank  Rank
	Joker JokerType
}

// Kind returns the card's pairing identity.
func (c Card) Kind() CardKind {
	return CardKind{Suit: c.Suit, Rank: c.Rank, Joker: c.Joker}
}

// SameKind reports whether two instances form a pair-compatible match.
func (c Card) SameKind(o Card) bool {
	return c.Kind() == o.Kind()
}

// IsJoker reports whether the card is either joker.
func (c Card) IsJoker() bool {
	return c.Joker != JokerNone
}

// Points returns the card's point value: 5s are worth 5, 10s and Kings 10.
func (c Card) Points() int {
	switch c.Rank {
	case RankFive:
		return 5
	case RankTen, RankKing:
		return 10
	}
	return 0
}

// IsPointCard reports whether the card carries points.
func (c Card) IsPointCard() bool {
	return c.Points() > 0
}

func (c Card) String() string {
	switch c.Joker {
	case JokerBig:
		return "BJ"
	case JokerSmall:
		return "SJ"
	}
	return c.Suit.String() + rankName(c.Rank)
}

func rankName(r Rank) string {
	switch r {
	case RankAce:
		return "A"
	case RankKing:
		return "K"
	case RankQueen:
		return "Q"
	case RankJack:
		return "J"
	case RankTen:
		return "10"
	}
	return string(rune('0' + int(r)))
}

// TotalPoints sums the point values of a card set.
func TotalPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
