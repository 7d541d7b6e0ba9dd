package game

// Player identifies one of the two sides of a game.
type Player int

const (
	Player1 Player = iota // Moves first
	Player2
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	if p == Player1 {
		return "Player1"
	}
	return "Player2"
}
