package sim

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"tractor/internal/bot"
	"tractor/internal/domain"
)

// Options configures a self-play run.
type Options struct {
	Rounds     int
	Seed       int64
	AppVersion string
	// Logger receives one JSON record per game event. Nil disables logging.
	Logger *logrus.Logger
}

// OptionsFromEnv reads simulator settings from the environment, loading a
// .env file first when one is present.
func OptionsFromEnv() Options {
	_ = godotenv.Load()

	opts := Options{
		Rounds:     10,
		Seed:       time.Now().UnixNano(),
		AppVersion: "dev",
	}
	if v := os.Getenv("SIM_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Rounds = n
		}
	}
	if v := os.Getenv("SIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			opts.Seed = n
		}
	}
	if v := os.Getenv("SIM_APP_VERSION"); v != "" {
		opts.AppVersion = v
	}
	return opts
}

// NewJSONLogger returns a logger in the JSONL shape the KPI tooling ingests.
func NewJSONLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}

// RoundResult is the per-round accounting summary.
type RoundResult struct {
	GameID         string
	DeclarerSeat   int
	TrumpSuit      domain.Suit
	TrumpRank      domain.Rank
	AttackerPoints int
	KittyPoints    int
	LastTrickSeat  int
	AttackersWon   bool
	// Rank advancement for the winning team.
	RankDelta int
	Tricks    int
}

// Runner plays complete four-seat rounds with engine-driven players.
type Runner struct {
	opts   Options
	rng    *rand.Rand
	agents [4]*bot.Agent
	// levels tracks each team's current trump rank across rounds. Teams are
	// indexed by seat parity.
	levels [2]domain.Rank
	// declarer carries the deal between rounds.
	declarer int
}

func NewRunner(opts Options) *Runner {
	r := &Runner{
		opts:     opts,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		levels:   [2]domain.Rank{domain.RankTwo, domain.RankTwo},
		declarer: 0,
	}
	for seat := 0; seat < 4; seat++ {
		r.agents[seat] = bot.NewAgent(seat)
	}
	return r
}

// Run plays the configured number of rounds and returns their summaries.
func (r *Runner) Run() ([]RoundResult, error) {
	results := make([]RoundResult, 0, r.opts.Rounds)
	for i := 0; i < r.opts.Rounds; i++ {
		res, err := r.playRound(uuid.NewString())
		if err != nil {
			return results, fmt.Errorf("round %d: %w", i+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) playRound(gameID string) (RoundResult, error) {
	for _, a := range r.agents {
		a.Reset()
	}
	config := domain.DefaultDeckConfig()
	trumpRank := r.levels[r.declarer%2]
	hands, kitty := domain.Deal(domain.ShuffleDeck(domain.NewDeck(config), r.rng), config)

	trump, declarer := r.declareTrump(hands, trumpRank)
	r.event(gameID, "game_started", logrus.Fields{
		"declarerSeat": declarer,
		"trumpSuit":    int(trump.TrumpSuit),
		"trumpRank":    int(trump.TrumpRank),
	})

	// Declarer absorbs the kitty and buries the same number of cards.
	full := append(append([]domain.Card{}, hands[declarer]...), kitty...)
	buried := r.agents[declarer].Bury(full, trump, config.KittySize)
	hands[declarer] = domain.RemoveCards(full, buried)
	r.event(gameID, "kitty_dealt", logrus.Fields{
		"declarerSeat": declarer,
		"kittyPoints":  domain.TotalPoints(buried),
	})

	g := &domain.Game{
		Config:       config,
		Trump:        trump,
		DeclarerSeat: declarer,
		Kitty:        buried,
	}
	for seat := 0; seat < 4; seat++ {
		g.Players = append(g.Players, &domain.Player{
			Seat:   seat,
			UserID: fmt.Sprintf("bot-%d", seat),
			Hand:   hands[seat],
		})
	}

	result := RoundResult{
		GameID:       gameID,
		DeclarerSeat: declarer,
		TrumpSuit:    trump.TrumpSuit,
		TrumpRank:    trump.TrumpRank,
	}
	leader := declarer
	for len(g.Players[leader].Hand) > 0 {
		winner, err := r.playTrick(g, gameID, leader)
		if err != nil {
			return result, err
		}
		result.Tricks++
		result.LastTrickSeat = winner
		leader = winner
	}

	result.KittyPoints = domain.TotalPoints(buried)
	if !g.IsDefender(result.LastTrickSeat) {
		// Attackers taking the last trick double the buried points.
		g.AttackerPoints += 2 * result.KittyPoints
	}
	result.AttackerPoints = g.AttackerPoints
	result.AttackersWon = g.AttackerPoints >= g.PointTarget()
	result.RankDelta = domain.RankDelta(g.AttackerPoints, g.PointTarget())
	r.settle(g, result)

	r.event(gameID, "game_over", logrus.Fields{
		"attackerPoints": result.AttackerPoints,
		"kittyPoints":    result.KittyPoints,
		"attackersWon":   result.AttackersWon,
		"rankDelta":      result.RankDelta,
		"tricks":         result.Tricks,
	})
	return result, nil
}

func (r *Runner) playTrick(g *domain.Game, gameID string, leader int) (int, error) {
	g.CurrentTrick = domain.NewTrick()
	for i := 0; i < 4; i++ {
		seat := (leader + i) % 4
		d, err := r.agents[seat].Play(g)
		if err != nil {
			return -1, fmt.Errorf("seat %d: %w", seat, err)
		}
		if err := g.CurrentTrick.AddPlay(seat, d.Cards, g.Trump); err != nil {
			return -1, fmt.Errorf("seat %d: %w", seat, err)
		}
		g.Players[seat].Hand = domain.RemoveCards(g.Players[seat].Hand, d.Cards)
		r.event(gameID, "play_made", logrus.Fields{
			"seat":     seat,
			"cards":    cardNames(d.Cards),
			"strategy": d.Strategy,
			"degraded": d.Degraded,
		})
	}
	winner, err := g.CurrentTrick.Winner(g.Trump)
	if err != nil {
		return -1, err
	}
	points := g.CurrentTrick.PointValue
	if !g.IsDefender(winner) {
		g.AttackerPoints += points
	}
	r.event(gameID, "trick_won", logrus.Fields{
		"winnerSeat": winner,
		"points":     points,
	})
	g.CompletedTricks = append(g.CompletedTricks, *g.CurrentTrick)
	g.CurrentTrick = nil
	return winner, nil
}

// declareTrump runs a single declaration pass from the dealer's left. With no
// bid, the trump rank stands alone as its own suit.
func (r *Runner) declareTrump(hands [4][]domain.Card, trumpRank domain.Rank) (domain.TrumpInfo, int) {
	var current *bot.Declaration
	for i := 0; i < 4; i++ {
		seat := (r.declarer + i) % 4
		if d := r.agents[seat].Declare(hands[seat], trumpRank, current); d != nil {
			current = d
		}
	}
	if current == nil {
		return domain.TrumpInfo{TrumpRank: trumpRank, TrumpSuit: domain.SuitNone, Declared: false}, r.declarer
	}
	return domain.TrumpInfo{TrumpRank: trumpRank, TrumpSuit: current.Suit, Declared: true}, current.Seat
}

// settle applies rank advancement and hands the next deal to the winner side.
func (r *Runner) settle(g *domain.Game, result RoundResult) {
	attackTeam := (g.DeclarerSeat + 1) % 2
	defendTeam := g.DeclarerSeat % 2
	if result.AttackersWon {
		r.levels[attackTeam] = domain.AdvanceRank(r.levels[attackTeam], result.RankDelta)
		r.declarer = (g.DeclarerSeat + 1) % 4
	} else {
		r.levels[defendTeam] = domain.AdvanceRank(r.levels[defendTeam], result.RankDelta)
		r.declarer = domain.TeammateOf(g.DeclarerSeat)
	}
}

func (r *Runner) event(gameID, name string, fields logrus.Fields) {
	if r.opts.Logger == nil {
		return
	}
	fields["event"] = name
	fields["gameId"] = gameID
	fields["appVersion"] = r.opts.AppVersion
	r.opts.Logger.WithFields(fields).Info(name)
}

func cardNames(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
