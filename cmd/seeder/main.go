package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/ornate-quaffle/internal/league"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

type seedTeam struct {
	id      string
	name    string
	house   league.House
	stadium string
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	teams := []seedTeam{
		{id: "team-gryffindor", name: "Gryffindor Lions", house: league.HouseGryffindor, stadium: "Hogwarts Pitch"},
		{id: "team-slytherin", name: "Slytherin Serpents", house: league.HouseSlytherin, stadium: "Dungeon Arena"},
		{id: "team-ravenclaw", name: "Ravenclaw Eagles", house: league.HouseRavenclaw, stadium: "Tower Heights"},
		{id: "team-hufflepuff", name: "Hufflepuff Badgers", house: league.HouseHufflepuff, stadium: "Meadow Grounds"},
	}

	for _, t := range teams {
		_, err := db.Exec(
			"INSERT OR IGNORE INTO teams (id, name, house, founded, stadium, manager_id) VALUES (?, ?, ?, ?, ?, ?)",
			t.id, t.name, string(t.house), 990, t.stadium, "manager-"+t.id)
		if err != nil {
			log.Fatalf("Failed to insert team %s: %s", t.name, err)
		}
	}
	log.Info("Ensured seed teams exist.")

	positions := []league.Position{league.PositionKeeper, league.PositionSeeker,
		league.PositionChaser, league.PositionChaser, league.PositionChaser,
		league.PositionBeater, league.PositionBeater}

	const baseJoinYear = 1991

	for _, t := range teams {
		for i, pos := range positions {
			_, err := db.Exec(
				`INSERT OR IGNORE INTO players (id, team_id, name, position, joined, jersey_number)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				fmt.Sprintf("%s-player-%d", t.id, i+1), t.id,
				fmt.Sprintf("%s #%d", t.name, i+1), string(pos),
				baseJoinYear+i, i+1)
			if err != nil {
				log.Fatalf("Failed to insert player for team %s: %s", t.name, err)
			}
		}
	}
	log.Info("Ensured seed rosters exist.")

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 5000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	wins := make(map[string]int)
	losses := make(map[string]int)
	draws := make(map[string]int)

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*8) // 8 columns per match

	for i := 0; i < numMatches; i++ {
		home := teams[rand.Intn(len(teams))]
		away := teams[rand.Intn(len(teams))]
		for away.id == home.id {
			away = teams[rand.Intn(len(teams))]
		}

		homeScore := rand.Intn(20) * 10
		awayScore := rand.Intn(20) * 10
		// The seeker's catch is worth 150 points.
		if rand.Intn(2) == 0 {
			homeScore += 150
		} else {
			awayScore += 150
		}

		switch {
		case homeScore > awayScore:
			wins[home.id]++
			losses[away.id]++
		case awayScore > homeScore:
			wins[away.id]++
			losses[home.id]++
		default:
			draws[home.id]++
			draws[away.id]++
		}

		playedAt := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			home.id,
			away.id,
			homeScore,
			awayScore,
			playedAt.Unix(),
			home.stadium,
			string(league.StatusCompleted),
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT INTO matches (id, home_team_id, away_team_id, home_score, away_score, played_at, stadium, status)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*8)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	// Keep the standings counters in line with the seeded results.
	for _, t := range teams {
		_, err := tx.Exec(
			"UPDATE teams SET wins = wins + ?, losses = losses + ?, draws = draws + ? WHERE id = ?",
			wins[t.id], losses[t.id], draws[t.id], t.id)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to update counters for team %s: %s", t.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
