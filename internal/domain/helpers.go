package domain

// RemoveCards removes the played instances from a hand, matching on full
// instance identity (kind + deck tag).
func RemoveCards(hand []Card, played []Card) []Card {
	out := append([]Card{}, hand...)
	for _, pc := range played {
		for i := 0; i < len(out); i++ {
			if out[i] == pc {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

// ContainsCard reports whether the set holds the exact card instance.
func ContainsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every instance in subset appears in the set,
// with multiset semantics.
func ContainsAll(cards []Card, subset []Card) bool {
	remaining := append([]Card{}, cards...)
	for _, want := range subset {
		found := false
		for i, c := range remaining {
			if c == want {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CountKind returns how many instances of the kind the set holds.
func CountKind(cards []Card, kind CardKind) int {
	n := 0
	for _, c := range cards {
		if c.Kind() == kind {
			n++
		}
	}
	return n
}
