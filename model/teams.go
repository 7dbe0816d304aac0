package model

import (
	"fmt"
	"strings"
)

// Team is one of the league's fantasy squads. The set of teams is fixed for
// a season and compiled in here; changing the league membership is a new
// season config, not a runtime operation.
type Team struct {
	name  string
	owner string
	short string   // A short form of the name, e.g. CG for Chain Gang
	nick  []string // Any other names used for the team in chat
}

func (t *Team) String() string {
	return t.name
}

func (t *Team) Friendly() string {
	if t.owner == "" {
		return t.name
	}
	return fmt.Sprintf("%s (%s)", t.name, t.owner)
}

func (t *Team) Equals(o *Team) bool {
	if o == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name &&
		t.owner == o.owner &&
		t.short == o.short &&
		arrayEquals(t.nick, o.nick)
}

var (
	// TEAM_FA is the sentinel owner for unclaimed players. It is not a
	// league member and never appears in standings or rosters.
	TEAM_FA *Team = &Team{name: "FA", nick: []string{"Free Agent", "Free Agents", "Pool", "Waivers"}}

	TEAM_CHAIN_GANG  *Team = &Team{name: "Chain Gang", owner: "Jared", short: "CG", nick: []string{"Chains"}}
	TEAM_HYZER_BOMBS *Team = &Team{name: "Hyzer Bombs", owner: "Katie", short: "HB", nick: []string{"Bombers"}}
	TEAM_TREE_LOVE   *Team = &Team{name: "Tree Love", owner: "Marcus", short: "TL"}
	TEAM_ANNY_TIME   *Team = &Team{name: "Anny Time", owner: "Dana", short: "AT", nick: []string{"Annies"}}
	TEAM_ROLLERS     *Team = &Team{name: "Rollaway Rollers", owner: "Ben", short: "RR", nick: []string{"Rollers"}}
	TEAM_NOODLE_ARMS *Team = &Team{name: "Noodle Arms", owner: "Priya", short: "NA", nick: []string{"Noodles"}}
	TEAM_PAR_TEE     *Team = &Team{name: "Par Tee", owner: "Gus", short: "PT"}
	TEAM_SKIP_ACES   *Team = &Team{name: "Skip Aces", owner: "Lena", short: "SA", nick: []string{"Aces"}}

	teamMap map[string]*Team = buildTeamMap()
)

// ParseTeam resolves a raw team name, short form, or nickname to the
// canonical team. The lookup is case-insensitive. It returns nil when the
// name doesn't match anything; callers must treat nil as an invalid team,
// not as the free-agent sentinel.
func ParseTeam(name string) *Team {
	return teamMap[strings.ToLower(strings.TrimSpace(name))]
}

// LeagueTeams returns the season's member teams. TEAM_FA is not included.
func LeagueTeams() []*Team {
	return []*Team{
		TEAM_CHAIN_GANG, TEAM_HYZER_BOMBS, TEAM_TREE_LOVE, TEAM_ANNY_TIME,
		TEAM_ROLLERS, TEAM_NOODLE_ARMS, TEAM_PAR_TEE, TEAM_SKIP_ACES,
	}
}

func buildTeamMap() map[string]*Team {
	teams := append(LeagueTeams(), TEAM_FA)

	teamMap := make(map[string]*Team)
	for _, t := range teams {
		teamMap[strings.ToLower(t.name)] = t

		if t.owner != "" {
			teamMap[strings.ToLower(t.owner)] = t
		}

		if t.short != "" {
			teamMap[strings.ToLower(t.short)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
