package model

import "testing"

func TestParseTeam(t *testing.T) {
	tests := map[string]*Team{
		"Chain Gang":       TEAM_CHAIN_GANG,
		"chain gang":       TEAM_CHAIN_GANG,
		"CG":               TEAM_CHAIN_GANG,
		"cg":               TEAM_CHAIN_GANG,
		"Jared":            TEAM_CHAIN_GANG,
		"Chains":           TEAM_CHAIN_GANG,
		"  Chain Gang  ":   TEAM_CHAIN_GANG,
		"Hyzer Bombs":      TEAM_HYZER_BOMBS,
		"Bombers":          TEAM_HYZER_BOMBS,
		"Rollaway Rollers": TEAM_ROLLERS,
		"Rollers":          TEAM_ROLLERS,
		"ben":              TEAM_ROLLERS,
		"Tree Love":        TEAM_TREE_LOVE,
		"tl":               TEAM_TREE_LOVE,
		"FA":               TEAM_FA,
		"Free Agent":       TEAM_FA,
		"free agents":      TEAM_FA,
		"Pool":             TEAM_FA,
		"Waivers":          TEAM_FA,
		"Disc Jockeys":     nil,
		"":                 nil,
		"   ":              nil,
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			result := ParseTeam(in)
			if result != expected {
				t.Errorf("ParseTeam(%q) = %v, expected %v", in, result, expected)
			}
		})
	}
}

func TestLeagueTeams(t *testing.T) {
	teams := LeagueTeams()
	if len(teams) != 8 {
		t.Errorf("expected 8 league teams, got %d", len(teams))
	}
	for _, team := range teams {
		if team == TEAM_FA {
			t.Errorf("TEAM_FA must not be a league member")
		}
	}
}

func TestTeamEquals(t *testing.T) {
	if !TEAM_PAR_TEE.Equals(TEAM_PAR_TEE) {
		t.Errorf("a team should equal itself")
	}
	if TEAM_PAR_TEE.Equals(TEAM_SKIP_ACES) {
		t.Errorf("different teams should not be equal")
	}
	if TEAM_PAR_TEE.Equals(nil) {
		t.Errorf("a team should not equal nil")
	}

	copy := &Team{name: "Par Tee", owner: "Gus", short: "PT"}
	if !TEAM_PAR_TEE.Equals(copy) {
		t.Errorf("a team should equal a value-identical copy")
	}
}

func TestTeamFriendly(t *testing.T) {
	if got := TEAM_ANNY_TIME.Friendly(); got != "Anny Time (Dana)" {
		t.Errorf("unexpected friendly name: %s", got)
	}
	if got := TEAM_FA.Friendly(); got != "FA" {
		t.Errorf("unexpected friendly name for FA: %s", got)
	}
}
