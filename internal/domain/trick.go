package domain

// Play is one seat's contribution to a trick.
type Play struct {
	Seat  int
	Cards []Card
}

// Trick is an ordered sequence of plays. WinnerSeat tracks the provisional
// winner as plays arrive; PointValue accumulates the points on the table.
type Trick struct {
	Plays      []Play
	WinnerSeat int
	PointValue int
}

// NewTrick starts a trick with no plays yet.
func NewTrick() *Trick {
	return &Trick{WinnerSeat: -1}
}

// LeadingPlay returns the trick's first play.
func (t *Trick) LeadingPlay() (Play, error) {
	if len(t.Plays) == 0 {
		return Play{}, ErrEmptyTrick
	}
	return t.Plays[0], nil
}

// AddPlay appends a play and refreshes the provisional winner and points.
func (t *Trick) AddPlay(seat int, cards []Card, trump TrumpInfo) error {
	if len(cards) == 0 {
		return ErrEmptyTrick
	}
	t.Plays = append(t.Plays, Play{Seat: seat, Cards: cards})
	t.PointValue += TotalPoints(cards)
	winner, err := t.resolveWinner(trump)
	if err != nil {
		return err
	}
	t.WinnerSeat = winner
	return nil
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == 4
}

// resolveWinner walks the plays and returns the seat currently holding the
// trick.
func (t *Trick) resolveWinner(trump TrumpInfo) (int, error) {
	lead, err := t.LeadingPlay()
	if err != nil {
		return -1, err
	}
	leadCombo := IdentifyCombo(lead.Cards, trump)
	winner := lead.Seat
	best := leadCombo
	for _, p := range t.Plays[1:] {
		combo := IdentifyCombo(p.Cards, trump)
		if combo.Type == ComboInvalid {
			continue
		}
		if Beats(combo, best, leadCombo, trump) {
			winner = p.Seat
			best = combo
		}
	}
	return winner, nil
}

// Winner recomputes and returns the winning seat; errors on an empty trick.
func (t *Trick) Winner(trump TrumpInfo) (int, error) {
	return t.resolveWinner(trump)
}
