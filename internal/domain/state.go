package domain

import "errors"

// Contract violations surfaced by the engine. These indicate the caller
// handed over a malformed snapshot and are never silently defaulted.
var (
	ErrSeatNotFound  = errors.New("seat not found in game")
	ErrMalformedTeam = errors.New("team does not have the expected seats")
	ErrEmptyTrick    = errors.New("trick play list is empty")
	ErrNilGame       = errors.New("game snapshot is nil")
)

// Player holds one seat's state within a round.
type Player struct {
	Seat   int
	UserID string
	Hand   []Card
}

// Game is the full round snapshot the engine decides from. It is treated as
// an immutable value: the engine never mutates it.
type Game struct {
	Config          DeckConfig
	Trump           TrumpInfo
	Players         []*Player
	DeclarerSeat    int
	Kitty           []Card
	CompletedTricks []Trick
	CurrentTrick    *Trick
	AttackerPoints  int
}

// PlayerAt returns the player occupying a seat.
func (g *Game) PlayerAt(seat int) (*Player, error) {
	for _, p := range g.Players {
		if p != nil && p.Seat == seat {
			return p, nil
		}
	}
	return nil, ErrSeatNotFound
}

// TeammateOf returns the partner seat; teams sit across from each other.
func TeammateOf(seat int) int {
	return (seat + 2) % 4
}

// IsDefender reports whether the seat is on the declaring team, which defends
// the point target.
func (g *Game) IsDefender(seat int) bool {
	return seat == g.DeclarerSeat || seat == TeammateOf(g.DeclarerSeat)
}

// OpponentSeats returns the two seats on the other team.
func OpponentSeats(seat int) [2]int {
	return [2]int{(seat + 1) % 4, (seat + 3) % 4}
}

// Validate checks the structural invariants the engine relies on: four
// players covering seats 0..3, and no empty play inside a completed trick.
func (g *Game) Validate() error {
	if g == nil {
		return ErrNilGame
	}
	if len(g.Players) != 4 {
		return ErrMalformedTeam
	}
	var seen [4]bool
	for _, p := range g.Players {
		if p == nil || p.Seat < 0 || p.Seat > 3 || seen[p.Seat] {
			return ErrMalformedTeam
		}
		seen[p.Seat] = true
	}
	for i := range g.CompletedTricks {
		if len(g.CompletedTricks[i].Plays) == 0 {
			return ErrEmptyTrick
		}
		for _, play := range g.CompletedTricks[i].Plays {
			if len(play.Cards) == 0 {
				return ErrEmptyTrick
			}
		}
	}
	return nil
}

// PointTarget returns the score the attacking team needs.
func (g *Game) PointTarget() int {
	if g.Config.StartingPoints > 0 {
		return g.Config.StartingPoints
	}
	return DefaultDeckConfig().StartingPoints
}

// RankDelta converts the attackers' final score into the winning team's rank
// advancement: one rank for every 40 points past the target for the
// attackers, or one plus one per full 40 short of it for the defenders.
func RankDelta(attackerPoints, target int) int {
	if attackerPoints >= target {
		return (attackerPoints - target) / 40
	}
	return 1 + (target-attackerPoints-1)/40
}

// AdvanceRank moves a team's level up by delta ranks, capping at Ace.
func AdvanceRank(rank Rank, delta int) Rank {
	next := rank + Rank(delta)
	if next > RankAce {
		next = RankAce
	}
	return next
}
