package internal

// GamePhase describes the current strategic stage of a round.
type GamePhase int

const (
	// PhaseProbe covers the early round, feeling out voids and strength.
	PhaseProbe GamePhase = iota
	// PhaseAggressive kicks in under high point pressure.
	PhaseAggressive
	// PhaseControl is the default mid-round stance.
	PhaseControl
	// PhaseEndgame covers the final few tricks, where raw value dominates.
	PhaseEndgame
)

func (p GamePhase) String() string {
	switch p {
	case PhaseProbe:
		return "probe"
	case PhaseAggressive:
		return "aggressive"
	case PhaseEndgame:
		return "endgame"
	}
	return "control"
}

// PointPressure grades how urgent point collection or denial has become.
type PointPressure int

const (
	PressureLow PointPressure = iota
	PressureMedium
	PressureHigh
)

// DetectPhase classifies the stage from the deciding seat's hand size and
// the current point pressure. Probe while plenty of cards remain, aggressive
// under high pressure, endgame when the hand is nearly out, control otherwise.
func DetectPhase(cardsRemaining int, pressure PointPressure) GamePhase {
	if cardsRemaining > 20 {
		return PhaseProbe
	}
	if pressure == PressureHigh {
		return PhaseAggressive
	}
	if cardsRemaining <= 8 {
		return PhaseEndgame
	}
	return PhaseControl
}
