package internal

import (
	"sort"

	"tractor/internal/domain"
)

// ValidMove is one candidate play.
type ValidMove struct {
	Cards []domain.Card
	Combo domain.Combo // ComboInvalid for ragged fills that cannot win
}

// LeadMoves returns every combo a hand can open a trick with.
func LeadMoves(hand []domain.Card, trump domain.TrumpInfo) []ValidMove {
	combos := domain.EnumerateCombos(hand, trump)
	moves := make([]ValidMove, 0, len(combos))
	for _, c := range combos {
		moves = append(moves, ValidMove{Cards: c.Cards, Combo: c})
	}
	return moves
}

// FollowMoves returns the candidate follows against a lead: every matching
// combo from the led group, trump answers when fully void, and canonical
// fill plays (weakest disposal and heaviest point contribution). Every
// returned move satisfies IsLegalFollow.
func FollowMoves(hand []domain.Card, lead domain.Combo, trump domain.TrumpInfo) []ValidMove {
	ledGroup := trump.GroupOf(lead.Cards[0])
	need := len(lead.Cards)
	groupCards := domain.FilterGroup(hand, ledGroup, trump)

	var moves []ValidMove
	seen := make(map[string]bool)
	add := func(cards []domain.Card) {
		if len(cards) != need {
			return
		}
		key := playKey(cards)
		if seen[key] {
			return
		}
		seen[key] = true
		moves = append(moves, ValidMove{Cards: cards, Combo: domain.IdentifyCombo(cards, trump)})
	}

	if len(groupCards) >= need {
		// Structure-matching combos from the led group can contest the trick.
		for _, c := range domain.EnumerateCombos(groupCards, trump) {
			if c.Type == lead.Type && len(c.Cards) == need {
				add(c.Cards)
			}
		}
		// In-group disposal and point fills for when contesting is unwise.
		add(pickWeakest(groupCards, need, trump))
		add(pickPointHeavy(groupCards, need, trump))
		return moves
	}

	// Short or void in the led group: group cards plus free fill.
	if len(groupCards) == 0 && ledGroup != domain.GroupTrump {
		// A full trump answer of matching structure can ruff the trick.
		trumpCards := domain.FilterGroup(hand, domain.GroupTrump, trump)
		for _, c := range domain.EnumerateCombos(trumpCards, trump) {
			if c.Type == lead.Type && len(c.Cards) == need {
				add(c.Cards)
			}
		}
	}
	rest := hand
	if len(groupCards) > 0 {
		rest = domain.RemoveCards(hand, groupCards)
	}
	fillNeed := need - len(groupCards)
	add(append(append([]domain.Card{}, groupCards...), pickWeakest(rest, fillNeed, trump)...))
	add(append(append([]domain.Card{}, groupCards...), pickPointHeavy(rest, fillNeed, trump)...))
	return moves
}

// pickWeakest selects n cards by ascending strength, avoiding points and
// trump where possible.
func pickWeakest(cards []domain.Card, n int, trump domain.TrumpInfo) []domain.Card {
	if len(cards) < n {
		return nil
	}
	sorted := make([]domain.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return disposalCost(sorted[i], trump) < disposalCost(sorted[j], trump)
	})
	return sorted[:n]
}

// pickPointHeavy selects n cards maximizing contributed points, cheapest
// point carriers first.
func pickPointHeavy(cards []domain.Card, n int, trump domain.TrumpInfo) []domain.Card {
	if len(cards) < n {
		return nil
	}
	sorted := make([]domain.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].Points(), sorted[j].Points()
		if pi != pj {
			return pi > pj
		}
		return disposalCost(sorted[i], trump) < disposalCost(sorted[j], trump)
	})
	return sorted[:n]
}

// disposalCost orders cards by how cheap they are to throw away.
func disposalCost(c domain.Card, trump domain.TrumpInfo) float64 {
	cost := float64(trump.OrderOf(c))
	if trump.IsTrump(c) {
		cost += 50
	}
	cost += float64(c.Points()) * 3
	return cost
}

func playKey(cards []domain.Card) string {
	sorted := make([]domain.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Suit != b.Suit {
			return a.Suit < b.Suit
		}
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.Joker != b.Joker {
			return a.Joker < b.Joker
		}
		return a.DeckID < b.DeckID
	})
	key := make([]byte, 0, len(sorted)*4)
	for _, c := range sorted {
		key = append(key, byte(c.Suit), byte(c.Rank), byte(c.Joker), byte(c.DeckID))
	}
	return string(key)
}
