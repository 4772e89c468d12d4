package brain

import (
	"tractor/internal/domain"
)

// PlayerMemory stores what is publicly knowable about one seat's hand within
// a round. Void flags are monotonic facts: once set they are never cleared.
type PlayerMemory struct {
	Seat        int
	KnownCards  []domain.Card
	SuitVoids   map[domain.Suit]bool
	TrumpVoid   bool
	TrumpPlayed int
	// HandEstimate is the seat's remaining hand size, floored at zero.
	HandEstimate int
	cardsPlayed  int
	pointsPlayed int
}

// VoidIn reports whether the seat is confirmed void in the suit.
func (pm *PlayerMemory) VoidIn(suit domain.Suit) bool {
	return pm.SuitVoids[suit]
}

// markSuitVoid records a confirmed void. It only ever adds facts.
func (pm *PlayerMemory) markSuitVoid(suit domain.Suit) {
	pm.SuitVoids[suit] = true
}

// CardMemory is the per-round knowledge state reconstructed from public play
// history. It is a pure value: built once per decision and read-only to the
// strategy pipeline.
type CardMemory struct {
	Trump            domain.TrumpInfo
	Observer         int
	PlayedCards      []domain.Card
	TrumpCardsPlayed int
	PointCardsPlayed int
	SuitDistribution map[domain.Suit]int
	Players          map[int]*PlayerMemory
	TricksAnalyzed   int
	// Probabilities maps each unseen card instance to a per-seat likelihood.
	// Rows sum to 1 when any estimated cards remain, 0 otherwise.
	Probabilities map[domain.Card][4]float64
}

// BuildMemory reconstructs the knowledge state for the observing seat from
// the completed tricks and the in-progress trick. It is a pure function of
// the snapshot, processing every play exactly once, in trick order then
// within-trick seat order.
func BuildMemory(game *domain.Game, observer int) (*CardMemory, error) {
	if err := game.Validate(); err != nil {
		return nil, err
	}
	self, err := game.PlayerAt(observer)
	if err != nil {
		return nil, err
	}

	mem := &CardMemory{
		Trump:            game.Trump,
		Observer:         observer,
		SuitDistribution: make(map[domain.Suit]int),
		Players:          make(map[int]*PlayerMemory, 4),
		TricksAnalyzed:   len(game.CompletedTricks),
	}
	for seat := 0; seat < 4; seat++ {
		mem.Players[seat] = &PlayerMemory{
			Seat:         seat,
			SuitVoids:    make(map[domain.Suit]bool),
			HandEstimate: game.Config.HandSize(),
		}
	}

	for i := range game.CompletedTricks {
		if err := mem.absorbTrick(&game.CompletedTricks[i]); err != nil {
			return nil, err
		}
	}
	if game.CurrentTrick != nil && len(game.CurrentTrick.Plays) > 0 {
		if err := mem.absorbTrick(game.CurrentTrick); err != nil {
			return nil, err
		}
	}

	mem.buildProbabilities(game, self)
	return mem, nil
}

// absorbTrick folds one trick's plays into the memory, inferring voids from
// failures to follow the led group.
func (m *CardMemory) absorbTrick(trick *domain.Trick) error {
	lead, err := trick.LeadingPlay()
	if err != nil {
		return err
	}
	ledGroup := m.Trump.GroupOf(lead.Cards[0])
	ledSuit := lead.Cards[0].Suit

	for i, play := range trick.Plays {
		pm, ok := m.Players[play.Seat]
		if !ok {
			return domain.ErrSeatNotFound
		}
		for _, c := range play.Cards {
			m.recordCard(pm, c)
		}
		if i == 0 {
			continue
		}
		// A follower producing any card outside the led group holds none of
		// it. This is the single source of new void facts.
		for _, c := range play.Cards {
			if m.Trump.GroupOf(c) != ledGroup {
				if ledGroup == domain.GroupTrump {
					pm.TrumpVoid = true
				} else {
					pm.markSuitVoid(ledSuit)
				}
				break
			}
		}
	}
	return nil
}

func (m *CardMemory) recordCard(pm *PlayerMemory, c domain.Card) {
	m.PlayedCards = append(m.PlayedCards, c)
	if m.Trump.IsTrump(c) {
		m.TrumpCardsPlayed++
		pm.TrumpPlayed++
	} else {
		m.SuitDistribution[c.Suit]++
	}
	if c.IsPointCard() {
		m.PointCardsPlayed++
		pm.pointsPlayed++
	}
	pm.KnownCards = append(pm.KnownCards, c)
	pm.cardsPlayed++
	if pm.HandEstimate > 0 {
		pm.HandEstimate--
	}
}

// pointRetention estimates how likely the seat is to still be holding point
// cards, a Bayesian-style update anchored at an uninformative 0.5 prior. The
// observation weight grows with sample size and is capped at 0.8.
func (pm *PlayerMemory) pointRetention() float64 {
	if pm.cardsPlayed == 0 {
		return 0.5
	}
	observedRate := float64(pm.pointsPlayed) / float64(pm.cardsPlayed)
	w := float64(pm.cardsPlayed) / 20.0
	if w > 0.8 {
		w = 0.8
	}
	return (1-w)*0.5 + w*observedRate
}

// buildProbabilities derives the per-seat likelihood table for every card
// neither seen in play nor visible to the observer. The kitty is visible
// only to the declarer.
func (m *CardMemory) buildProbabilities(game *domain.Game, self *domain.Player) {
	m.Probabilities = make(map[domain.Card][4]float64)

	visible := append([]domain.Card{}, m.PlayedCards...)
	visible = append(visible, self.Hand...)
	if game.DeclarerSeat == self.Seat {
		visible = append(visible, game.Kitty...)
	}
	seen := make(map[domain.Card]bool, len(visible))
	for _, c := range visible {
		seen[c] = true
	}

	for _, c := range domain.NewDeck(game.Config) {
		if seen[c] {
			continue
		}
		var weights [4]float64
		total := 0.0
		for seat := 0; seat < 4; seat++ {
			if seat == self.Seat {
				continue
			}
			pm := m.Players[seat]
			w := float64(pm.HandEstimate)
			if m.Trump.IsTrump(c) {
				if pm.TrumpVoid {
					w = 0
				}
			} else if pm.VoidIn(c.Suit) {
				w = 0
			}
			if w > 0 && c.IsPointCard() {
				w *= pm.pointRetention()
			}
			weights[seat] = w
			total += w
		}
		if total > 0 {
			for seat := range weights {
				weights[seat] /= total
			}
		}
		m.Probabilities[c] = weights
	}
}
