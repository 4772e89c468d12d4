package bot

import (
	"math/rand"

	"tractor/internal/bot/brain"
	"tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// GameContext is the per-decision situational summary consulted by every
// strategy.
type GameContext struct {
	Attacking       bool
	PointsCollected int
	PointsNeeded    int
	CardsRemaining  int
	// Position is the 1-based trick position of the deciding seat.
	Position int
	Pressure internal.PointPressure
}

// Decision is the outcome of a strategy chain. Degraded marks decisions made
// on a fallback path so tests can tell which branch fired.
type Decision struct {
	Cards    []domain.Card
	Strategy string
	Reason   string
	Degraded bool
}

// TurnContext carries everything a strategy may consult. Strategies may
// prune Candidates (filters) but never mutate the game snapshot.
type TurnContext struct {
	Game    *domain.Game
	Seat    int
	Hand    []domain.Card
	Trump   domain.TrumpInfo
	Memory  *brain.CardMemory
	History *brain.HistoryModel
	Ctx     GameContext
	Phase   internal.GamePhase
	// Trick is only meaningful when Ctx.Position > 1.
	Trick      internal.TrickAnalysis
	Candidates []internal.ValidMove
	Tuning     internal.BotTuning
	// Rng, when non-nil, breaks ties between otherwise-equal candidates.
	// Nil keeps the pipeline fully deterministic.
	Rng *rand.Rand
}

// TeammateSeat returns the deciding seat's partner.
func (tc *TurnContext) TeammateSeat() int {
	return domain.TeammateOf(tc.Seat)
}

// Remaining is the deciding seat's hand size.
func (tc *TurnContext) Remaining() int {
	return len(tc.Hand)
}

// tieBreak picks among equal-scored moves: the first (deterministic order)
// unless a tie-break source was supplied.
func (tc *TurnContext) tieBreak(moves []internal.ValidMove) internal.ValidMove {
	if tc.Rng != nil && len(moves) > 1 {
		return moves[tc.Rng.Intn(len(moves))]
	}
	return moves[0]
}

// Strategy is one link of a positional priority chain. Decide returns nil to
// pass the turn to the next link.
type Strategy interface {
	Name() string
	Decide(tc *TurnContext) *Decision
}

// Chain evaluates strategies in order and returns the first recommendation.
// Every chain terminates in a total fallback, so Run never returns an empty
// decision for a non-empty candidate set.
type Chain struct {
	Position string
	Links    []Strategy
}

// Run walks the chain.
func (c *Chain) Run(tc *TurnContext) Decision {
	for _, s := range c.Links {
		if d := s.Decide(tc); d != nil {
			if d.Strategy == "" {
				d.Strategy = s.Name()
			}
			return *d
		}
	}
	// Reached only if the chain was built without its terminal fallback.
	move := internal.CheapestMove(tc.Candidates, tc.Trump, tc.Hand, tc.Remaining())
	return Decision{Cards: move.Cards, Strategy: "fallback", Degraded: true, Reason: "no strategy produced a decision"}
}
