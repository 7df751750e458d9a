package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Outcome classifies a game. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status string `json:"status"`
	Winner Player `json:"-"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(winner Player) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsOver() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) String() string {
	if that.IsWon() {
		return StatusWon + " by " + that.Winner.Mark()
	}
	return that.Status
}
