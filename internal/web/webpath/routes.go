package webpath

const (
	Home   = "/"
	Rounds = "/rounds"

	Api               = "/api"
	ApiRoundOptions   = Api + "/round-options"
	ApiRounds         = Api + "/rounds"
	ApiRoundsImport   = ApiRounds + "/import"
	ApiRound          = ApiRounds + "/:id"
	ApiRoundHoles     = ApiRound + "/holes"
	ApiRoundLastHole  = ApiRoundHoles + "/last"
	ApiRoundScorecard = ApiRound + "/scorecard"
	ApiRoundExport    = ApiRound + "/export"
)

func Path() map[string]string {
	return map[string]string{
		"Home":      Home,
		"Rounds":    Rounds,
		"Api":       Api,
		"ApiRounds": ApiRounds,
	}
}

// Round returns the address of the round resource.
func Round(id string) string {
	return ApiRounds + "/" + id
}

func Scorecard(id string) string {
	return Round(id) + "/scorecard"
}
