package domain

// CountGroup returns how many cards of a hand fall in the given follow group.
func CountGroup(hand []Card, group SuitGroup, trump TrumpInfo) int {
	n := 0
	for _, c := range hand {
		if trump.GroupOf(c) == group {
			n++
		}
	}
	return n
}

// FilterGroup returns the hand's cards belonging to the given follow group.
func FilterGroup(hand []Card, group SuitGroup, trump TrumpInfo) []Card {
	var out []Card
	for _, c := range hand {
		if trump.GroupOf(c) == group {
			out = append(out, c)
		}
	}
	return out
}

// IsLegalFollow reports whether a follow play is legal against the leading
// combo. The play must match the lead's length, and when the hand holds at
// least that many cards of the led group every played card must come from
// that group; with fewer group cards in hand any cards may fill the length.
func IsLegalFollow(play []Card, leading Combo, hand []Card, trump TrumpInfo) bool {
	if len(play) != len(leading.Cards) {
		return false
	}
	if len(leading.Cards) == 0 {
		return false
	}
	ledGroup := trump.GroupOf(leading.Cards[0])
	if CountGroup(hand, ledGroup, trump) < len(play) {
		return true
	}
	for _, c := range play {
		if trump.GroupOf(c) != ledGroup {
			return false
		}
	}
	return true
}

// Beats reports whether a follow combo takes the trick from the incumbent
// winning combo, given the combo that led the trick. A challenger must match
// the lead's type and length; it wins with a higher value in the incumbent's
// group, or by being trump when the incumbent is not.
func Beats(challenger, incumbent, lead Combo, trump TrumpInfo) bool {
	if challenger.Type != lead.Type || len(challenger.Cards) != len(lead.Cards) {
		return false
	}
	chTrump := trump.IsTrump(challenger.Cards[0])
	inTrump := trump.IsTrump(incumbent.Cards[0])
	if chTrump && !inTrump {
		return true
	}
	if !chTrump && inTrump {
		return false
	}
	if !chTrump {
		// Both ordinary: only the led suit can win.
		if trump.GroupOf(challenger.Cards[0]) != trump.GroupOf(lead.Cards[0]) {
			return false
		}
	}
	return challenger.Value > incumbent.Value
}
