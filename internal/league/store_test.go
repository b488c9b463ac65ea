package league_test

import (
	"database/sql"
	"testing"

	"github.com/mauv0809/ornate-quaffle/internal/database"
	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.LeagueStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := league.New(db)
	teardown := func() {
		dbTeardown()
	}

	return store, db, teardown
}

func recruitTeam(t *testing.T, store league.LeagueStore, id, name, stadium string, house league.House) *league.Team {
	t.Helper()
	team := &league.Team{
		ID:        id,
		Name:      name,
		House:     house,
		Founded:   990,
		Stadium:   stadium,
		ManagerID: "manager-" + id,
	}
	require.NoError(t, store.RecruitTeam(team))
	return team
}

func signPlayer(t *testing.T, store league.LeagueStore, id, teamID, name string, position league.Position) *league.Player {
	t.Helper()
	player := &league.Player{
		ID:           id,
		TeamID:       teamID,
		Name:         name,
		Position:     position,
		Joined:       1991,
		JerseyNumber: 7,
		Nationality:  "English",
	}
	require.NoError(t, store.SignPlayer(player))
	return player
}

func TestRecruitAndGetTeams(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	recruitTeam(t, store, "t2", "Slytherin Serpents", "Dungeon Arena", league.HouseSlytherin)

	team, err := store.GetTeam("t1")
	require.NoError(t, err)
	assert.Equal(t, "Gryffindor Lions", team.Name)
	assert.Equal(t, league.HouseGryffindor, team.House)
	assert.Zero(t, team.Wins)
	assert.Zero(t, team.Losses)
	assert.Zero(t, team.Draws)

	teams, err := store.GetAllTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	_, err = store.GetTeam("t3")
	assert.ErrorIs(t, err, league.ErrTeamNotFound)
}

func TestRecruitTeam_ZeroesSuppliedCounters(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	team := &league.Team{ID: "t1", Name: "Cheaters", House: league.HouseSlytherin, Stadium: "Pitch", ManagerID: "m1", Wins: 99, Losses: 1, Draws: 5}
	require.NoError(t, store.RecruitTeam(team))

	got, err := store.GetTeam("t1")
	require.NoError(t, err)
	assert.Zero(t, got.Wins)
	assert.Zero(t, got.Losses)
	assert.Zero(t, got.Draws)
}

func TestSignPlayerAndRoster(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)

	signPlayer(t, store, "p1", "t1", "Harry Potter", league.PositionSeeker)
	signPlayer(t, store, "p2", "t1", "Katie Bell", league.PositionChaser)

	roster, err := store.GetTeamRoster("t1")
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	player, err := store.GetPlayer("p1")
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter", player.Name)
	assert.Equal(t, league.PositionSeeker, player.Position)
	assert.Zero(t, player.Stats.GamesPlayed)

	// Signing to an unknown team is rejected.
	err = store.SignPlayer(&league.Player{ID: "p3", TeamID: "missing", Name: "Nobody", Position: league.PositionBeater})
	assert.ErrorIs(t, err, league.ErrTeamNotFound)
}

func TestRecordMatch_HomeWin(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "home", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	recruitTeam(t, store, "away", "Slytherin Serpents", "Dungeon Arena", league.HouseSlytherin)
	signPlayer(t, store, "hp1", "home", "Harry Potter", league.PositionSeeker)
	signPlayer(t, store, "hp2", "home", "Oliver Wood", league.PositionKeeper)
	signPlayer(t, store, "ap1", "away", "Draco Malfoy", league.PositionSeeker)

	match, err := store.RecordMatch("home", "away", 200, 150)
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.NotEmpty(t, match.ID)
	assert.Equal(t, league.StatusCompleted, match.Status)
	assert.Equal(t, "Hogwarts Pitch", match.Stadium, "stadium should be copied from the home team")
	assert.NotZero(t, match.PlayedAt)

	home, err := store.GetTeam("home")
	require.NoError(t, err)
	assert.Equal(t, 1, home.Wins)
	assert.Equal(t, 0, home.Losses)
	assert.Equal(t, 0, home.Draws)

	away, err := store.GetTeam("away")
	require.NoError(t, err)
	assert.Equal(t, 0, away.Wins)
	assert.Equal(t, 1, away.Losses)
	assert.Equal(t, 0, away.Draws)

	for _, id := range []string{"hp1", "hp2", "ap1"} {
		player, err := store.GetPlayer(id)
		require.NoError(t, err)
		assert.Equal(t, 1, player.Stats.GamesPlayed, "player %s should have exactly one appearance", id)
	}

	// The match is readable back with the same fields.
	got, err := store.GetMatch(match.ID)
	require.NoError(t, err)
	assert.Equal(t, match, got)
}

func TestRecordMatch_Draw(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "home", "Hufflepuff Badgers", "Meadow Pitch", league.HouseHufflepuff)
	recruitTeam(t, store, "away", "Ravenclaw Eagles", "Tower Pitch", league.HouseRavenclaw)

	_, err := store.RecordMatch("home", "away", 120, 120)
	require.NoError(t, err)

	home, err := store.GetTeam("home")
	require.NoError(t, err)
	away, err := store.GetTeam("away")
	require.NoError(t, err)

	assert.Equal(t, 1, home.Draws)
	assert.Equal(t, 1, away.Draws)
	assert.Zero(t, home.Wins+home.Losses)
	assert.Zero(t, away.Wins+away.Losses)
}

func TestRecordMatch_TeamNotFound(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "known", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	signPlayer(t, store, "p1", "known", "Harry Potter", league.PositionSeeker)

	teamsBefore, err := store.GetAllTeams()
	require.NoError(t, err)
	playersBefore, err := store.GetAllPlayers()
	require.NoError(t, err)

	_, err = store.RecordMatch("missing", "known", 10, 20)
	require.ErrorIs(t, err, league.ErrTeamNotFound)
	assert.Contains(t, err.Error(), "home team")

	_, err = store.RecordMatch("known", "missing", 10, 20)
	require.ErrorIs(t, err, league.ErrTeamNotFound)
	assert.Contains(t, err.Error(), "away team")

	// Nothing was written: team and player records are unchanged and no match exists.
	teamsAfter, err := store.GetAllTeams()
	require.NoError(t, err)
	playersAfter, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Equal(t, teamsBefore, teamsAfter)
	assert.Equal(t, playersBefore, playersAfter)

	var matchCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&matchCount))
	assert.Zero(t, matchCount)
}

func TestRecordMatch_RejectsInvalidInput(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)

	_, err := store.RecordMatch("t1", "t1", 10, 20)
	assert.ErrorIs(t, err, league.ErrSameTeam)

	_, err = store.RecordMatch("t1", "t2", -1, 20)
	assert.ErrorIs(t, err, league.ErrNegativeScore)
}

func TestBanishTeam_CascadesRoster(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	recruitTeam(t, store, "t2", "Slytherin Serpents", "Dungeon Arena", league.HouseSlytherin)
	signPlayer(t, store, "p1", "t1", "Harry Potter", league.PositionSeeker)
	signPlayer(t, store, "p2", "t1", "Oliver Wood", league.PositionKeeper)
	signPlayer(t, store, "p3", "t2", "Draco Malfoy", league.PositionSeeker)

	require.NoError(t, store.BanishTeam("t1"))

	_, err := store.GetTeam("t1")
	assert.ErrorIs(t, err, league.ErrTeamNotFound)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1, "only the other team's roster should survive")
	assert.Equal(t, "p3", players[0].ID)

	assert.ErrorIs(t, store.BanishTeam("t1"), league.ErrTeamNotFound)
}

func TestUpdatePlayer_DoesNotTouchAppearances(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	recruitTeam(t, store, "t2", "Slytherin Serpents", "Dungeon Arena", league.HouseSlytherin)
	player := signPlayer(t, store, "p1", "t1", "Harry Potter", league.PositionSeeker)

	_, err := store.RecordMatch("t1", "t2", 170, 60)
	require.NoError(t, err)

	player.Stats.Catches = 12
	player.Stats.Rating = 93
	player.Stats.GamesPlayed = 999 // must be ignored
	player.MarketValue = 1_000_000
	require.NoError(t, store.UpdatePlayer(player))

	got, err := store.GetPlayer("p1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Stats.Catches)
	assert.Equal(t, 93, got.Stats.Rating)
	assert.Equal(t, int64(1_000_000), got.MarketValue)
	assert.Equal(t, 1, got.Stats.GamesPlayed)

	assert.ErrorIs(t, store.UpdatePlayer(&league.Player{ID: "missing"}), league.ErrPlayerNotFound)
}

func TestReleasePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	signPlayer(t, store, "p1", "t1", "Harry Potter", league.PositionSeeker)

	require.NoError(t, store.ReleasePlayer("p1"))
	_, err := store.GetPlayer("p1")
	assert.ErrorIs(t, err, league.ErrPlayerNotFound)

	assert.ErrorIs(t, store.ReleasePlayer("p1"), league.ErrPlayerNotFound)
}

func TestClear(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	recruitTeam(t, store, "t1", "Gryffindor Lions", "Hogwarts Pitch", league.HouseGryffindor)
	recruitTeam(t, store, "t2", "Slytherin Serpents", "Dungeon Arena", league.HouseSlytherin)
	signPlayer(t, store, "p1", "t1", "Harry Potter", league.PositionSeeker)
	_, err := store.RecordMatch("t1", "t2", 200, 150)
	require.NoError(t, err)

	store.Clear()

	teams, err := store.GetAllTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 0)

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	assert.Len(t, matches, 0)
}
