package config

import (
	"reflect"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("TEAM_IDS", "1,2,3,4,5,6")
	t.Setenv("CORRECT_ANSWER", "javascript")
	t.Setenv("ADMIN_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.DatabaseName != "hunt_service" {
		t.Errorf("expected default database hunt_service, got %q", cfg.DatabaseName)
	}
	if cfg.SelectionSlots != 4 {
		t.Errorf("expected default 4 slots, got %d", cfg.SelectionSlots)
	}
	if !reflect.DeepEqual(cfg.TeamIDs, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected roster %v", cfg.TeamIDs)
	}
}

func TestLoadRequiredVars(t *testing.T) {
	for _, missing := range []string{"MONGO_URI", "TEAM_IDS", "CORRECT_ANSWER", "ADMIN_SECRET"} {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")
			if _, err := Load(); err == nil {
				t.Errorf("expected error when %s is unset", missing)
			}
		})
	}
}

func TestLoadTrimsAnswer(t *testing.T) {
	setRequired(t)
	t.Setenv("CORRECT_ANSWER", "  javascript  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CorrectAnswer != "javascript" {
		t.Errorf("expected trimmed answer, got %q", cfg.CorrectAnswer)
	}
}

func TestParseTeamIDs(t *testing.T) {
	cases := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1,2,3", []int{1, 2, 3}, false},
		{" 1 , 2 , 3 ", []int{1, 2, 3}, false},
		{"1,,2", []int{1, 2}, false},
		{"", nil, true},
		{"  ", nil, true},
		{"1,x,3", nil, true},
		{"1,2,1", nil, true},
	}
	for _, c := range cases {
		got, err := parseTeamIDs(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseTeamIDs(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTeamIDs(%q): unexpected error: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseTeamIDs(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoadSlotsOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("SELECTION_SLOTS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SelectionSlots != 2 {
		t.Errorf("expected 2 slots, got %d", cfg.SelectionSlots)
	}

	t.Setenv("SELECTION_SLOTS", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for zero slots")
	}
}

func TestLoadOriginsList(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOW_ORIGINS", "http://localhost:5173, https://hunt.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"http://localhost:5173", "https://hunt.example.com"}
	if !reflect.DeepEqual(cfg.AllowOrigins, want) {
		t.Errorf("unexpected origins %v", cfg.AllowOrigins)
	}
}
