package domain

// TrumpInfo captures the declared trump rank and suit for a round. The trump
// rank is always trump in every suit. TrumpSuit is SuitNone either before any
// declaration or for a joker-only declaration; Declared distinguishes the two.
type TrumpInfo struct {
	TrumpRank Rank
	TrumpSuit Suit
	Declared  bool
}

// IsTrump reports whether the card belongs to the trump group: jokers, all
// trump-rank cards, and all cards of the trump suit.
func (t TrumpInfo) IsTrump(c Card) bool {
	if c.IsJoker() {
		return true
	}
	if c.Rank == t.TrumpRank {
		return true
	}
	return t.TrumpSuit != SuitNone && c.Suit == t.TrumpSuit
}

// SuitGroup identifies the follow group a card belongs to. The trump group is
// a pseudo-suit of its own.
type SuitGroup int

const (
	GroupTrump SuitGroup = iota
	GroupSpades
	GroupHearts
	GroupClubs
	GroupDiamonds
)

var suitToGroup = map[Suit]SuitGroup{
	Spades:   GroupSpades,
	Hearts:   GroupHearts,
	Clubs:    GroupClubs,
	Diamonds: GroupDiamonds,
}

// GroupOf returns the follow group for a card under the given trump.
func (t TrumpInfo) GroupOf(c Card) SuitGroup {
	if t.IsTrump(c) {
		return GroupTrump
	}
	return suitToGroup[c.Suit]
}

// GroupOfSuit maps an ordinary suit to its group, folding the trump suit into
// the trump group.
func (t TrumpInfo) GroupOfSuit(s Suit) SuitGroup {
	if t.TrumpSuit != SuitNone && s == t.TrumpSuit {
		return GroupTrump
	}
	if g, ok := suitToGroup[s]; ok {
		return g
	}
	return GroupTrump
}

// RankIndex returns the position of a rank within an ordinary suit once the
// trump rank has been pulled out of it. Consecutiveness for tractors is
// defined over these indices, so a 5-pair and a 7-pair are adjacent when 6 is
// the trump rank. Returns -1 for the trump rank itself.
func (t TrumpInfo) RankIndex(r Rank) int {
	if r == t.TrumpRank {
		return -1
	}
	idx := 0
	for rr := RankTwo; rr <= RankAce; rr++ {
		if rr == t.TrumpRank {
			continue
		}
		if rr == r {
			return idx
		}
		idx++
	}
	return -1
}

// Trump order levels above the ordinary trump-suit run. The total order is:
// big joker > small joker > trump rank in trump suit > trump rank off-suit >
// trump-suit cards by descending rank.
const (
	trumpSuitLevels   = 12 // thirteen ranks minus the trump rank
	levelOffSuitRank  = trumpSuitLevels
	levelInSuitRank   = trumpSuitLevels + 1
	levelSmallJoker   = trumpSuitLevels + 2
	levelBigJoker     = trumpSuitLevels + 3
)

// TrumpOrder returns the card's level within the trump group's total order,
// higher meaning stronger. Returns -1 for non-trump cards. Trump-rank cards
// of the different off-suits share a level: they compare equal and never pair
// across suits (kinds differ).
func (t TrumpInfo) TrumpOrder(c Card) int {
	switch c.Joker {
	case JokerBig:
		return levelBigJoker
	case JokerSmall:
		return levelSmallJoker
	}
	if c.Rank == t.TrumpRank {
		if t.TrumpSuit != SuitNone && c.Suit == t.TrumpSuit {
			return levelInSuitRank
		}
		if t.TrumpSuit == SuitNone {
			// Joker-only declarations keep trump-rank pairs adjacent to
			// the small joker pair.
			return levelInSuitRank
		}
		return levelOffSuitRank
	}
	if t.TrumpSuit != SuitNone && c.Suit == t.TrumpSuit {
		return t.RankIndex(c.Rank)
	}
	return -1
}

// OrderOf returns a card's strength level within its own follow group. For
// trump cards this is TrumpOrder; for ordinary cards it is the rank index
// within the suit.
func (t TrumpInfo) OrderOf(c Card) int {
	if t.IsTrump(c) {
		return t.TrumpOrder(c)
	}
	return t.RankIndex(c.Rank)
}
