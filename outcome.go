package chess

// Outcome is the terminal result of a finished game.
type Outcome struct {
	isDraw bool
	winner Color
}

// DecisiveOutcome returns an outcome won by winner.
func DecisiveOutcome(winner Color) Outcome {
	return Outcome{winner: winner}
}

// DrawOutcome returns a drawn outcome.
func DrawOutcome() Outcome {
	return Outcome{isDraw: true}
}

// IsDraw reports whether the outcome is a draw.
func (o Outcome) IsDraw() bool { return o.isDraw }

// Winner returns the winning color and true, or (_, false) if the outcome is a draw.
func (o Outcome) Winner() (Color, bool) {
	if o.isDraw {
		return 0, false
	}
	return o.winner, true
}

// String renders the outcome in PGN result notation: "1-0", "0-1", "1/2-1/2".
func (o Outcome) String() string {
	if o.isDraw {
		return "1/2-1/2"
	}
	return Fold(o.winner, "1-0", "0-1")
}
