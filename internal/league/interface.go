package league

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	RecruitTeam(team *Team) error
	GetTeam(teamID string) (*Team, error)
	GetAllTeams() ([]Team, error)
	BanishTeam(teamID string) error
	SignPlayer(player *Player) error
	GetPlayer(playerID string) (*Player, error)
	GetAllPlayers() ([]Player, error)
	GetTeamRoster(teamID string) ([]Player, error)
	UpdatePlayer(player *Player) error
	ReleasePlayer(playerID string) error
	RecordMatch(homeTeamID, awayTeamID string, homeScore, awayScore int) (*Match, error)
	GetMatch(matchID string) (*Match, error)
	GetAllMatches() ([]*Match, error)
	Clear()
	ClearMatch(matchID string)
}
