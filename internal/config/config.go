package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all process-wide settings, loaded once at startup and never
// mutated afterwards. Everything that the engine and store depend on is
// injected from here instead of read ad hoc from the environment.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string

	// Roster of team IDs allowed to submit.
	TeamIDs []int
	// The single accepted answer, trimmed at load; comparison is
	// case-insensitive.
	CorrectAnswer string
	// Number of teams that qualify for the next round.
	SelectionSlots int

	AdminSecret string

	AllowOrigins []string

	RabbitURI      string
	RabbitExchange string
}

// Load builds a Config from environment variables. It returns an error for
// missing required values rather than exiting, so main decides how to fail.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       os.Getenv("MONGO_URI"),
		DatabaseName:   getEnv("MONGO_DB", "hunt_service"),
		CorrectAnswer:  strings.TrimSpace(os.Getenv("CORRECT_ANSWER")),
		SelectionSlots: getEnvInt("SELECTION_SLOTS", 4),
		AdminSecret:    os.Getenv("ADMIN_SECRET"),
		AllowOrigins:   getEnvList("ALLOW_ORIGINS", []string{"http://localhost:5173"}),
		RabbitURI:      os.Getenv("RABBITMQ_URI"),
		RabbitExchange: os.Getenv("RABBITMQ_EXCHANGE"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.CorrectAnswer == "" {
		return nil, fmt.Errorf("CORRECT_ANSWER is required")
	}
	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET is required")
	}
	if cfg.SelectionSlots < 1 {
		return nil, fmt.Errorf("SELECTION_SLOTS must be at least 1")
	}

	teams, err := parseTeamIDs(os.Getenv("TEAM_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.TeamIDs = teams

	return cfg, nil
}

func parseTeamIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("TEAM_IDS is required (comma-separated integers)")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	seen := make(map[int]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("TEAM_IDS contains invalid entry %q", p)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("TEAM_IDS contains duplicate entry %d", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("TEAM_IDS is required (comma-separated integers)")
	}
	return ids, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
