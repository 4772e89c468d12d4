package brain

import (
	"fmt"

	"tractor/internal/domain"
)

// PlayClass buckets plays for behavioral modeling.
type PlayClass int

const (
	ClassSafeLead PlayClass = iota
	ClassTrumpLead
	ClassPointLead
	ClassTrumpFollow
	ClassPointFollow
	ClassDiscard
)

func (c PlayClass) String() string {
	switch c {
	case ClassTrumpLead:
		return "trump_lead"
	case ClassPointLead:
		return "point_lead"
	case ClassTrumpFollow:
		return "trump_follow"
	case ClassPointFollow:
		return "point_follow"
	case ClassDiscard:
		return "discard"
	}
	return "safe_lead"
}

// OpponentProfile aggregates one seat's observed behavior across tricks.
type OpponentProfile struct {
	Seat       int
	TricksLed  int
	TrumpLeads int
	PointLeads int
	SuitLeads  map[domain.Suit]int

	totalPlays   int
	earlyClasses map[PlayClass]int
	lateClasses  map[PlayClass]int
}

func newOpponentProfile(seat int) *OpponentProfile {
	return &OpponentProfile{
		Seat:         seat,
		SuitLeads:    make(map[domain.Suit]int),
		earlyClasses: make(map[PlayClass]int),
		lateClasses:  make(map[PlayClass]int),
	}
}

// TrumpLeadRate is the fraction of this seat's leads that opened with trump.
func (p *OpponentProfile) TrumpLeadRate() float64 {
	if p.TricksLed == 0 {
		return 0
	}
	return float64(p.TrumpLeads) / float64(p.TricksLed)
}

// PointLeadRate is the fraction of this seat's leads that exposed points.
func (p *OpponentProfile) PointLeadRate() float64 {
	if p.TricksLed == 0 {
		return 0
	}
	return float64(p.PointLeads) / float64(p.TricksLed)
}

// Aggressiveness blends the two lead rates into a single score in [0,1].
func (p *OpponentProfile) Aggressiveness() float64 {
	return 0.6*p.TrumpLeadRate() + 0.4*p.PointLeadRate()
}

// PreferredSuit returns the suit this seat leads most often, or SuitNone.
func (p *OpponentProfile) PreferredSuit() domain.Suit {
	best := domain.SuitNone
	max := 0
	for _, s := range domain.Suits {
		if p.SuitLeads[s] > max {
			max = p.SuitLeads[s]
			best = s
		}
	}
	return best
}

// Consistency compares the early-trick and late-trick play-class
// distributions and returns a similarity in [0,1]. Its complement acts as a
// learning rate: how fast the seat adapts its behavior mid-round.
func (p *OpponentProfile) Consistency() float64 {
	earlyTotal, lateTotal := 0, 0
	for _, n := range p.earlyClasses {
		earlyTotal += n
	}
	for _, n := range p.lateClasses {
		lateTotal += n
	}
	if earlyTotal == 0 || lateTotal == 0 {
		return 1
	}
	distance := 0.0
	for class := ClassSafeLead; class <= ClassDiscard; class++ {
		e := float64(p.earlyClasses[class]) / float64(earlyTotal)
		l := float64(p.lateClasses[class]) / float64(lateTotal)
		if e > l {
			distance += e - l
		} else {
			distance += l - e
		}
	}
	// Total variation distance lies in [0,2] for two distributions.
	return 1 - distance/2
}

// LearningRate is the complement of behavioral consistency.
func (p *OpponentProfile) LearningRate() float64 {
	return 1 - p.Consistency()
}

// Prediction is the model's best guess at a seat's next play class. Degraded
// marks estimates produced without enough samples, so callers and tests can
// tell the fallback path from the informed one.
type Prediction struct {
	Class      PlayClass
	Confidence float64
	Reasoning  string
	Degraded   bool
}

// HistoryModel holds cross-trick behavioral aggregates for all seats plus
// team-coordination metrics for the observer's opponents.
type HistoryModel struct {
	Observer     int
	Profiles     map[int]*OpponentProfile
	SupportRate  float64 // opponents feeding points to a winning partner
	BlockRate    float64 // opponents trumping or overtaking the observer's team
	SampleTricks int
	Degraded     bool
}

// minHistorySamples guards the model against overfitting a couple of tricks.
const minHistorySamples = 3

// BuildHistory aggregates completed tricks into per-seat behavioral profiles.
// With fewer than minHistorySamples tricks the model is still returned but
// flagged degraded; it never errors for thin history.
func BuildHistory(tricks []domain.Trick, trump domain.TrumpInfo, observer int) *HistoryModel {
	h := &HistoryModel{
		Observer:     observer,
		Profiles:     make(map[int]*OpponentProfile, 4),
		SampleTricks: len(tricks),
		Degraded:     len(tricks) < minHistorySamples,
	}
	for seat := 0; seat < 4; seat++ {
		h.Profiles[seat] = newOpponentProfile(seat)
	}

	half := len(tricks) / 2
	supportChances, supports := 0, 0
	blockChances, blocks := 0, 0
	opponents := domain.OpponentSeats(observer)

	for ti := range tricks {
		trick := &tricks[ti]
		if len(trick.Plays) == 0 {
			continue
		}
		lead := trick.Plays[0]
		leader := h.Profiles[lead.Seat]
		leader.TricksLed++
		leadIsTrump := trump.IsTrump(lead.Cards[0])
		if leadIsTrump {
			leader.TrumpLeads++
		} else {
			leader.SuitLeads[lead.Cards[0].Suit]++
		}
		if domain.TotalPoints(lead.Cards) > 0 {
			leader.PointLeads++
		}

		for pi, play := range trick.Plays {
			p := h.Profiles[play.Seat]
			class := classify(play, pi == 0, trump)
			p.totalPlays++
			if ti < half {
				p.earlyClasses[class]++
			} else {
				p.lateClasses[class]++
			}

			if pi == 0 {
				continue
			}
			// Coordination: watch the opposing team's follows.
			if play.Seat != opponents[0] && play.Seat != opponents[1] {
				continue
			}
			partnerWinning := provisionalWinnerBefore(trick, pi, trump) == domain.TeammateOf(play.Seat)
			if partnerWinning {
				supportChances++
				if domain.TotalPoints(play.Cards) > 0 {
					supports++
				}
			} else {
				blockChances++
				if trump.IsTrump(play.Cards[0]) && !leadIsTrump {
					blocks++
				}
			}
		}
	}

	if supportChances > 0 {
		h.SupportRate = float64(supports) / float64(supportChances)
	}
	if blockChances > 0 {
		h.BlockRate = float64(blocks) / float64(blockChances)
	}
	return h
}

// provisionalWinnerBefore resolves who held the trick before play index pi.
func provisionalWinnerBefore(trick *domain.Trick, pi int, trump domain.TrumpInfo) int {
	partial := domain.Trick{Plays: trick.Plays[:pi]}
	winner, err := partial.Winner(trump)
	if err != nil {
		return -1
	}
	return winner
}

func classify(play domain.Play, isLead bool, trump domain.TrumpInfo) PlayClass {
	isTrump := trump.IsTrump(play.Cards[0])
	hasPoints := domain.TotalPoints(play.Cards) > 0
	switch {
	case isLead && isTrump:
		return ClassTrumpLead
	case isLead && hasPoints:
		return ClassPointLead
	case isLead:
		return ClassSafeLead
	case isTrump:
		return ClassTrumpFollow
	case hasPoints:
		return ClassPointFollow
	}
	return ClassDiscard
}

// Predict returns the most likely next-play class for a seat. Short history
// degrades to a neutral baseline rather than failing.
func (h *HistoryModel) Predict(seat int) Prediction {
	p, ok := h.Profiles[seat]
	if !ok || h.Degraded || p.TricksLed == 0 {
		return Prediction{
			Class:      ClassSafeLead,
			Confidence: 0.25,
			Reasoning:  "insufficient trick history, baseline estimate",
			Degraded:   true,
		}
	}

	agg := p.Aggressiveness()
	conf := 0.4 + 0.1*float64(p.TricksLed)
	if conf > 0.9 {
		conf = 0.9
	}
	conf *= p.Consistency()

	switch {
	case p.TrumpLeadRate() > 0.5:
		return Prediction{
			Class:      ClassTrumpLead,
			Confidence: conf,
			Reasoning:  fmt.Sprintf("leads trump %.0f%% of the time", p.TrumpLeadRate()*100),
		}
	case p.PointLeadRate() > 0.5:
		return Prediction{
			Class:      ClassPointLead,
			Confidence: conf,
			Reasoning:  fmt.Sprintf("leads points %.0f%% of the time", p.PointLeadRate()*100),
		}
	case agg > 0.4:
		return Prediction{
			Class:      ClassPointFollow,
			Confidence: conf * 0.8,
			Reasoning:  fmt.Sprintf("aggressiveness %.2f suggests point pressure", agg),
		}
	}
	return Prediction{
		Class:      ClassSafeLead,
		Confidence: conf,
		Reasoning:  fmt.Sprintf("passive profile, aggressiveness %.2f", agg),
	}
}
