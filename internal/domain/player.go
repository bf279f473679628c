package domain

const PlayersCount = 4

type Player struct {
	Name     string
	Position int
}

// Roster holds the four players of a match. Positions 0 and 1 are team A,
// 2 and 3 are team B.
type Roster [PlayersCount]Player

func NewRoster(names [PlayersCount]string) Roster {
	var r Roster
	for i := range names {
		r[i] = Player{Name: names[i], Position: i}
	}
	return r
}

// Pair returns "first & second" for the players of the team, empty string for Draw.
func (r Roster) Pair(t Team) string {
	if t == Draw {
		return ""
	}
	p := t.Positions()
	return r[p[0]].Name + " & " + r[p[1]].Name
}

func (r Roster) Names() [PlayersCount]string {
	var names [PlayersCount]string
	for i := range r {
		names[i] = r[i].Name
	}
	return names
}

type Team int

const (
	Draw Team = iota
	TeamA
	TeamB
)

// TeamOf returns the team of the roster position.
func TeamOf(position int) Team {
	if position < 2 {
		return TeamA
	}
	return TeamB
}

func (t Team) Positions() [2]int {
	if t == TeamB {
		return [2]int{2, 3}
	}
	return [2]int{0, 1}
}

func (t Team) Opponent() Team {
	switch t {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	}
	return Draw
}

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	}
	return "draw"
}
