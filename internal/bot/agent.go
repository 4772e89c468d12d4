package bot

import (
	"tractor/internal/domain"
)

// Agent binds an engine to one seat for the lifetime of a match. Ports hold
// one agent per bot seat and drive it through the round's three decisions:
// declare, bury, play.
type Agent struct {
	Seat   int
	engine *Engine
}

// NewAgent seats a fresh engine.
func NewAgent(seat int) *Agent {
	return &Agent{Seat: seat, engine: NewEngine()}
}

// NewAgentWithEngine seats a shared or customized engine.
func NewAgentWithEngine(seat int, engine *Engine) *Agent {
	return &Agent{Seat: seat, engine: engine}
}

// Play recommends the agent's next play from the snapshot.
func (a *Agent) Play(game *domain.Game) (Decision, error) {
	return a.engine.SelectPlay(game, a.Seat)
}

// Declare bids on trump during dealing, or returns nil to pass.
func (a *Agent) Declare(hand []domain.Card, trumpRank domain.Rank, current *Declaration) *Declaration {
	return DecideTrumpDeclaration(hand, trumpRank, current, a.Seat)
}

// Bury picks the declarer's kitty after the deal.
func (a *Agent) Bury(hand []domain.Card, trump domain.TrumpInfo, n int) []domain.Card {
	return SelectKittyBury(hand, trump, n)
}

// Reset clears per-round state between rounds.
func (a *Agent) Reset() {
	if a.engine.Cache != nil {
		a.engine.Cache.Invalidate()
	}
}
