package bot

import (
	"sort"

	"tractor/internal/domain"
)

// DeclarationStrength orders trump declarations. A later bid must be
// strictly stronger than the standing one to take the trump suit.
type DeclarationStrength int

const (
	DeclareNone DeclarationStrength = iota
	DeclareSingle
	DeclarePair
	DeclareSmallJokers
	DeclareBigJokers
)

func (d DeclarationStrength) String() string {
	switch d {
	case DeclareSingle:
		return "single"
	case DeclarePair:
		return "pair"
	case DeclareSmallJokers:
		return "small jokers"
	case DeclareBigJokers:
		return "big jokers"
	}
	return "none"
}

// Declaration is a trump bid: the cards shown and the suit they fix. Joker
// declarations leave Suit as SuitNone, making the trump rank its own suit.
type Declaration struct {
	Seat     int
	Suit     domain.Suit
	Strength DeclarationStrength
	Cards    []domain.Card
}

// minDeclareSuitLength gates single-card declarations: fixing trump to a
// suit the hand barely holds gives the strength away for nothing.
const minDeclareSuitLength = 4

// DecideTrumpDeclaration returns the strongest bid the hand supports that
// beats the standing declaration, or nil to stay quiet. Pass a nil current
// declaration at the start of dealing.
func DecideTrumpDeclaration(hand []domain.Card, trumpRank domain.Rank, current *Declaration, seat int) *Declaration {
	floor := DeclareNone
	if current != nil {
		floor = current.Strength
	}

	best := bestDeclaration(hand, trumpRank, seat)
	if best == nil || best.Strength <= floor {
		return nil
	}
	return best
}

func bestDeclaration(hand []domain.Card, trumpRank domain.Rank, seat int) *Declaration {
	var smallJokers, bigJokers []domain.Card
	rankCards := map[domain.Suit][]domain.Card{}
	suitLen := map[domain.Suit]int{}
	for _, c := range hand {
		switch c.Joker {
		case domain.JokerSmall:
			smallJokers = append(smallJokers, c)
		case domain.JokerBig:
			bigJokers = append(bigJokers, c)
		default:
			suitLen[c.Suit]++
			if c.Rank == trumpRank {
				rankCards[c.Suit] = append(rankCards[c.Suit], c)
			}
		}
	}

	if len(bigJokers) >= 2 {
		return &Declaration{Seat: seat, Suit: domain.SuitNone, Strength: DeclareBigJokers, Cards: bigJokers[:2]}
	}
	if len(smallJokers) >= 2 {
		return &Declaration{Seat: seat, Suit: domain.SuitNone, Strength: DeclareSmallJokers, Cards: smallJokers[:2]}
	}

	var best *Declaration
	bestLen := 0
	for _, suit := range domain.Suits {
		cards := rankCards[suit]
		if len(cards) == 0 {
			continue
		}
		strength := DeclareSingle
		show := cards[:1]
		if len(cards) >= 2 {
			strength = DeclarePair
			show = cards[:2]
		} else if suitLen[suit] < minDeclareSuitLength {
			continue
		}
		if best == nil || strength > best.Strength ||
			(strength == best.Strength && suitLen[suit] > bestLen) {
			best = &Declaration{Seat: seat, Suit: suit, Strength: strength, Cards: show}
			bestLen = suitLen[suit]
		}
	}
	return best
}

// SelectKittyBury picks n cards for the declarer to bury after absorbing the
// kitty. It protects trump and point cards and leans toward emptying short
// ordinary suits, manufacturing voids to ruff into later.
func SelectKittyBury(hand []domain.Card, trump domain.TrumpInfo, n int) []domain.Card {
	if n <= 0 || n > len(hand) {
		n = min(len(hand), domain.DefaultDeckConfig().KittySize)
	}
	suitLen := map[domain.Suit]int{}
	for _, c := range hand {
		if !trump.IsTrump(c) {
			suitLen[c.Suit]++
		}
	}

	scored := make([]domain.Card, len(hand))
	copy(scored, hand)
	cost := func(c domain.Card) float64 {
		if trump.IsTrump(c) {
			return 1000 + float64(trump.OrderOf(c))
		}
		v := float64(c.Points()) * 10
		v += float64(trump.OrderOf(c))
		// Short suits bury cheaper: each card gone is a step toward a void.
		v -= float64(8-suitLen[c.Suit]) * 1.5
		return v
	}
	sort.SliceStable(scored, func(i, j int) bool {
		ci, cj := cost(scored[i]), cost(scored[j])
		if ci != cj {
			return ci < cj
		}
		return scored[i].String() < scored[j].String()
	})
	return scored[:n]
}
