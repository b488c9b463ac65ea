package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/pubsub"
	"github.com/mauv0809/ornate-quaffle/internal/standings"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			s.Store.ClearMatch(matchID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
			log.Info("Successfully cleared match from store", "matchID", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.GetAllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) RecruitTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var team league.Team
		if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if team.Name == "" || team.House == "" {
			http.Error(w, "Team name and house are required", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would recruit team", "name", team.Name)
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := s.Store.RecruitTeam(&team); err != nil {
			http.Error(w, "Failed to recruit team", http.StatusInternalServerError)
			log.Error("Failed to recruit team", "error", err)
			return
		}
		writeJSON(w, http.StatusCreated, team)
	}
}

func (s *Server) BanishTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.URL.Query().Get("teamID")
		if teamID == "" {
			http.Error(w, "teamID is required", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would banish team", "teamID", teamID)
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := s.Store.BanishTeam(teamID); err != nil {
			if errors.Is(err, league.ErrTeamNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to banish team", http.StatusInternalServerError)
			log.Error("Failed to banish team", "error", err, "teamID", teamID)
			return
		}
		if err := s.PubSub.SendMessage(pubsub.EventTeamBanished, map[string]string{"team_id": teamID}); err != nil {
			log.Error("Failed to publish team-banished event", "error", err, "teamID", teamID)
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Banished team %s and released its roster!", teamID)
	}
}

func (s *Server) TeamRosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.URL.Query().Get("teamID")
		if teamID == "" {
			http.Error(w, "teamID is required", http.StatusBadRequest)
			return
		}

		if _, err := s.Store.GetTeam(teamID); err != nil {
			if errors.Is(err, league.ErrTeamNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to get team", http.StatusInternalServerError)
			log.Error("Failed to get team from store", "error", err, "teamID", teamID)
			return
		}

		roster, err := s.Store.GetTeamRoster(teamID)
		if err != nil {
			http.Error(w, "Failed to get roster", http.StatusInternalServerError)
			log.Error("Failed to get roster from store", "error", err, "teamID", teamID)
			return
		}
		writeJSON(w, http.StatusOK, roster)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.GetAllPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) SignPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var player league.Player
		if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if player.Name == "" || player.TeamID == "" || player.Position == "" {
			http.Error(w, "Player name, team_id and position are required", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would sign player", "name", player.Name, "teamID", player.TeamID)
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := s.Store.SignPlayer(&player); err != nil {
			if errors.Is(err, league.ErrTeamNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to sign player", http.StatusInternalServerError)
			log.Error("Failed to sign player", "error", err)
			return
		}
		writeJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var player league.Player
		if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if player.ID == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would update player", "playerID", player.ID)
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := s.Store.UpdatePlayer(&player); err != nil {
			if errors.Is(err, league.ErrPlayerNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to update player", http.StatusInternalServerError)
			log.Error("Failed to update player", "error", err, "playerID", player.ID)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) ReleasePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "playerID is required", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would release player", "playerID", playerID)
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := s.Store.ReleasePlayer(playerID); err != nil {
			if errors.Is(err, league.ErrPlayerNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to release player", http.StatusInternalServerError)
			log.Error("Failed to release player", "error", err, "playerID", playerID)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Released player %s!", playerID)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) RecordMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req recordMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.HomeTeamID == "" || req.AwayTeamID == "" {
			http.Error(w, "home_team_id and away_team_id are required", http.StatusBadRequest)
			return
		}

		match, err := s.Recorder.RecordMatch(req.HomeTeamID, req.AwayTeamID, req.HomeScore, req.AwayScore, isDryRunFromContext(r))
		if err != nil {
			switch {
			case errors.Is(err, league.ErrTeamNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, league.ErrSameTeam), errors.Is(err, league.ErrNegativeScore):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "Failed to record match", http.StatusInternalServerError)
				log.Error("Failed to record match", "error", err)
			}
			return
		}

		if match == nil {
			// Dry run: nothing was written.
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Dry run: match not recorded")
			return
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.GetAllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, standings.Calculate(teams))
	}
}

func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "matchID is required", http.StatusBadRequest)
			return
		}

		match, err := s.Store.GetMatch(matchID)
		if err != nil {
			if errors.Is(err, league.ErrMatchNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to get match", http.StatusInternalServerError)
			log.Error("Failed to get match from store", "error", err, "matchID", matchID)
			return
		}

		home, err := s.Store.GetTeam(match.HomeTeamID)
		if err != nil {
			http.Error(w, "Failed to resolve home team", http.StatusInternalServerError)
			log.Error("Failed to resolve home team for notification", "error", err, "matchID", matchID)
			return
		}
		away, err := s.Store.GetTeam(match.AwayTeamID)
		if err != nil {
			http.Error(w, "Failed to resolve away team", http.StatusInternalServerError)
			log.Error("Failed to resolve away team for notification", "error", err, "matchID", matchID)
			return
		}

		if err := s.Notifier.SendResultNotification(match, home, away, isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to send result notification", http.StatusInternalServerError)
			log.Error("Failed to send result notification", "error", err, "matchID", matchID)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Result notification sent for match %s!", matchID)
	}
}

func (s *Server) NotifyStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.GetAllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}

		table := standings.Calculate(teams)
		if err := s.Notifier.SendStandings(table, isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to send standings", http.StatusInternalServerError)
			log.Error("Failed to send standings notification", "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Standings sent!")
	}
}

// BroadcastStandingsHandler consumes match-recorded push messages from the
// Pub/Sub subscription and posts a fresh league table to the channel.
func (s *Server) BroadcastStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match-recorded push message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		event := pubsub.MatchRecordedEvent{}
		s.PubSub.ProcessMessage(rawData, &event)
		log.Info("Broadcasting standings after recorded match", "matchID", event.MatchID, "home", event.HomeTeamID, "away", event.AwayTeamID)

		teams, err := s.Store.GetAllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		if err := s.Notifier.SendStandings(standings.Calculate(teams), isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to send standings", http.StatusInternalServerError)
			log.Error("Failed to broadcast standings", "error", err, "matchID", event.MatchID)
			return
		}
		w.Write([]byte("OK"))
	}
}

// StandingsCommandHandler returns a handler for the /standings Slack command.
func (s *Server) StandingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.GetAllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}

		msg, err := s.Notifier.FormatStandingsResponse(standings.Calculate(teams))
		if err != nil {
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			log.Error("Failed to format standings", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		writeJSON(w, http.StatusOK, slackMsg)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
