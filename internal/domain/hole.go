package domain

// HolesInCycle is the number of positions in the course cycle. Both 9 and 18
// hole rounds are numbered within it.
const HolesInCycle = 18

// HoleScore maps roster position to Stableford points.
type HoleScore [PlayersCount]int

type Note string

const (
	NoteEraser    Note = "4-point eraser used"
	NoteFlipTeamA Note = "High ball flip applied to Team 1"
	NoteFlipTeamB Note = "High ball flip applied to Team 2"
)

const DrawnHole = "Drawn hole"

type HoleResult struct {
	Hole        int
	Scores      HoleScore
	Winner      Team
	TeamAValue  int
	TeamBValue  int
	Value       int
	Notes       []Note
	Description string
}

func (r HoleResult) HasNote(n Note) bool {
	for _, note := range r.Notes {
		if note == n {
			return true
		}
	}
	return false
}
