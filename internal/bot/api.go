package bot

import (
	"errors"
	"fmt"
	"math/rand"

	"tractor/internal/bot/brain"
	"tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// ErrNoCandidates means the deciding seat has no legal play, which can only
// happen on an empty or inconsistent hand.
var ErrNoCandidates = errors.New("no legal plays available")

// Engine turns a game snapshot into a play recommendation. It holds no
// per-game state beyond the optional decision cache, so one engine can serve
// any number of seats.
type Engine struct {
	Tuning internal.BotTuning
	// Cache, when non-nil, memoizes decisions per trick state.
	Cache *DecisionCache
	// Rng, when non-nil, randomizes ties between equal candidates. Leave nil
	// for fully deterministic output.
	Rng *rand.Rand

	chains [4]*Chain
}

// NewEngine builds an engine with default tuning and a decision cache.
func NewEngine() *Engine {
	e := &Engine{
		Tuning: DefaultTuning(),
		Cache:  NewDecisionCache(),
	}
	e.chains = [4]*Chain{LeadingChain(), SecondChain(), ThirdChain(), FourthChain()}
	return e
}

// SelectPlay recommends cards for the given seat to play from the snapshot.
// The snapshot is never mutated. Structural problems in the snapshot are
// returned as errors; thin observation history degrades the decision instead.
func (e *Engine) SelectPlay(game *domain.Game, seat int) (Decision, error) {
	if err := game.Validate(); err != nil {
		return Decision{}, fmt.Errorf("select play: %w", err)
	}
	player, err := game.PlayerAt(seat)
	if err != nil {
		return Decision{}, fmt.Errorf("select play: %w", err)
	}
	if len(player.Hand) == 0 {
		return Decision{}, ErrNoCandidates
	}

	key := cacheKey(game, seat)
	if e.Cache != nil {
		if d, ok := e.Cache.Get(key); ok {
			return d, nil
		}
	}

	tc, err := e.buildTurnContext(game, seat, player)
	if err != nil {
		return Decision{}, err
	}
	if len(tc.Candidates) == 0 {
		return Decision{}, ErrNoCandidates
	}

	chain := e.chains[tc.Ctx.Position-1]
	if chain == nil {
		chain = LeadingChain()
	}
	decision := chain.Run(tc)
	if tc.History != nil && tc.History.Degraded {
		decision.Degraded = true
	}
	if e.Cache != nil {
		e.Cache.Put(key, decision)
	}
	return decision, nil
}

func (e *Engine) buildTurnContext(game *domain.Game, seat int, player *domain.Player) (*TurnContext, error) {
	memory, err := brain.BuildMemory(game, seat)
	if err != nil {
		return nil, fmt.Errorf("select play: %w", err)
	}
	history := brain.BuildHistory(game.CompletedTricks, game.Trump, seat)

	tc := &TurnContext{
		Game:    game,
		Seat:    seat,
		Hand:    player.Hand,
		Trump:   game.Trump,
		Memory:  memory,
		History: history,
		Tuning:  e.Tuning,
		Rng:     e.Rng,
	}

	position := 1
	if game.CurrentTrick != nil && len(game.CurrentTrick.Plays) > 0 {
		analysis, err := internal.AnalyzeTrick(game.CurrentTrick, game.Trump)
		if err != nil {
			return nil, fmt.Errorf("select play: %w", err)
		}
		tc.Trick = analysis
		position = analysis.NextPosition
		tc.Candidates = internal.FollowMoves(player.Hand, analysis.Lead, game.Trump)
	} else {
		tc.Candidates = internal.LeadMoves(player.Hand, game.Trump)
	}
	if position < 1 || position > 4 {
		return nil, fmt.Errorf("select play: trick already has %d plays", position-1)
	}

	attacking := !game.IsDefender(seat)
	pressure := classifyPressure(game, attacking, len(player.Hand))
	tc.Ctx = GameContext{
		Attacking:       attacking,
		PointsCollected: game.AttackerPoints,
		PointsNeeded:    game.PointTarget(),
		CardsRemaining:  len(player.Hand),
		Position:        position,
		Pressure:        pressure,
	}
	tc.Phase = internal.DetectPhase(len(player.Hand), pressure)
	return tc, nil
}

// classifyPressure compares point progress against round progress. An
// attacker far behind schedule, or a defender watching the attackers run
// ahead of it, is under high pressure.
func classifyPressure(game *domain.Game, attacking bool, cardsRemaining int) internal.PointPressure {
	target := game.PointTarget()
	if target <= 0 {
		return internal.PressureLow
	}
	handSize := game.Config.HandSize()
	if handSize <= 0 {
		return internal.PressureLow
	}
	elapsed := 1 - float64(cardsRemaining)/float64(handSize)
	progress := float64(game.AttackerPoints) / float64(target)

	gap := elapsed - progress
	if !attacking {
		gap = -gap
	}
	switch {
	case gap > 0.3:
		return internal.PressureHigh
	case gap > 0.1:
		return internal.PressureMedium
	}
	return internal.PressureLow
}
