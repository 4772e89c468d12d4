package domain

import "sort"

// ComboType classifies a play.
type ComboType int

const (
	ComboInvalid ComboType = iota
	ComboSingle
	ComboPair
	ComboTractor
)

func (t ComboType) String() string {
	switch t {
	case ComboSingle:
		return "single"
	case ComboPair:
		return "pair"
	case ComboTractor:
		return "tractor"
	}
	return "invalid"
}

// Combo is a detected card combination. Value is the strength level of the
// combo's highest card within its group, offset into a higher band for trump
// combos so values compare across groups.
type Combo struct {
	Type  ComboType
	Cards []Card
	Value int
}

// trumpValueOffset lifts trump combo values above any ordinary combo value.
const trumpValueOffset = 100

// comboValue computes the strength of a set known to share one group.
func comboValue(cards []Card, trump TrumpInfo) int {
	max := -1
	isTrump := false
	for _, c := range cards {
		if trump.IsTrump(c) {
			isTrump = true
		}
		if o := trump.OrderOf(c); o > max {
			max = o
		}
	}
	if isTrump {
		return trumpValueOffset + max
	}
	return max
}

// IdentifyCombo classifies a set of cards as a single, pair, or tractor under
// the given trump. Any set that fits none of the three is invalid.
func IdentifyCombo(cards []Card, trump TrumpInfo) Combo {
	switch {
	case len(cards) == 1:
		return Combo{Type: ComboSingle, Cards: cards, Value: comboValue(cards, trump)}
	case len(cards) == 2:
		if cards[0].SameKind(cards[1]) {
			return Combo{Type: ComboPair, Cards: cards, Value: comboValue(cards, trump)}
		}
	case len(cards) >= 4 && len(cards)%2 == 0:
		if isTractor(cards, trump) {
			return Combo{Type: ComboTractor, Cards: cards, Value: comboValue(cards, trump)}
		}
	}
	return Combo{Type: ComboInvalid, Cards: cards}
}

// isTractor reports whether the cards form consecutive same-kind pairs within
// one follow group. The trump group is its own pseudo-suit with levels given
// by TrumpOrder.
func isTractor(cards []Card, trump TrumpInfo) bool {
	group := trump.GroupOf(cards[0])
	for _, c := range cards[1:] {
		if trump.GroupOf(c) != group {
			return false
		}
	}

	kindCounts := make(map[CardKind]int)
	for _, c := range cards {
		kindCounts[c.Kind()]++
	}
	levels := make([]int, 0, len(kindCounts))
	for kind, n := range kindCounts {
		if n != 2 {
			return false
		}
		levels = append(levels, trump.OrderOf(Card{Suit: kind.Suit, Rank: kind.Rank, Joker: kind.Joker}))
	}
	sort.Ints(levels)
	for i := 1; i < len(levels); i++ {
		if levels[i] != levels[i-1]+1 {
			return false
		}
	}
	return true
}

// EnumerateCombos finds every single, pair, and tractor a hand can play.
// Each card instance yields a single; pairs require both deck instances of a
// kind; tractors are every contiguous window of two or more consecutive
// pairs within a group.
func EnumerateCombos(hand []Card, trump TrumpInfo) []Combo {
	var combos []Combo

	sorted := make([]Card, len(hand))
	copy(sorted, hand)
	SortHand(sorted, trump)

	for _, c := range sorted {
		combos = append(combos, Combo{Type: ComboSingle, Cards: []Card{c}, Value: comboValue([]Card{c}, trump)})
	}

	// Pairs grouped by follow group, keyed by strength level for tractor runs.
	type pairEntry struct {
		level int
		cards []Card
	}
	// Kinds and groups are walked in the sorted hand's order so equal-shape
	// candidates always enumerate the same way.
	groupPairs := make(map[SuitGroup][]pairEntry)
	var groupOrder []SuitGroup
	byKind := make(map[CardKind][]Card)
	var kindOrder []CardKind
	for _, c := range sorted {
		k := c.Kind()
		if len(byKind[k]) == 0 {
			kindOrder = append(kindOrder, k)
		}
		byKind[k] = append(byKind[k], c)
	}
	for _, kind := range kindOrder {
		cards := byKind[kind]
		if len(cards) < 2 {
			continue
		}
		pair := []Card{cards[0], cards[1]}
		combos = append(combos, Combo{Type: ComboPair, Cards: pair, Value: comboValue(pair, trump)})
		probe := Card{Suit: kind.Suit, Rank: kind.Rank, Joker: kind.Joker}
		g := trump.GroupOf(probe)
		if len(groupPairs[g]) == 0 {
			groupOrder = append(groupOrder, g)
		}
		groupPairs[g] = append(groupPairs[g], pairEntry{level: trump.OrderOf(probe), cards: pair})
	}

	for _, g := range groupOrder {
		entries := groupPairs[g]
		sort.Slice(entries, func(i, j int) bool { return entries[i].level < entries[j].level })
		// Walk maximal consecutive runs, then emit every window of >= 2 pairs.
		for start := 0; start < len(entries); {
			end := start
			for end+1 < len(entries) && entries[end+1].level == entries[end].level+1 {
				end++
			}
			runLen := end - start + 1
			if runLen >= 2 {
				for lo := start; lo <= end-1; lo++ {
					for hi := lo + 1; hi <= end; hi++ {
						tractor := make([]Card, 0, (hi-lo+1)*2)
						for k := lo; k <= hi; k++ {
							tractor = append(tractor, entries[k].cards...)
						}
						combos = append(combos, Combo{
							Type:  ComboTractor,
							Cards: tractor,
							Value: comboValue(tractor, trump),
						})
					}
				}
			}
			start = end + 1
		}
	}

	return combos
}
