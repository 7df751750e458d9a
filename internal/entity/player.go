package entity

// Player identifies one of the two sides. First always moves first and plays X.
type Player int

const (
	First Player = iota + 1
	Second
)

func (that Player) Mark() string {
	switch that {
	case First:
		return PlayerX
	case Second:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	return that.Mark()
}
