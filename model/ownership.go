package model

// RosterCap is the league-wide maximum number of players a team may roster.
const RosterCap = 8

// DraftPick is one row of the season's draft baseline: the initial owner
// assignment that transaction history is folded on top of.
type DraftPick struct {
	PlayerID   string
	PlayerName string
	Team       *Team
}

// Ownership is a derived snapshot of who owns which player. It is always
// rebuilt from the draft baseline plus full transaction history and never
// edited in place.
type Ownership struct {
	OwnerByPlayer map[string]*Team
	CountByTeam   map[string]int
}

// Owner returns the owning team for a player. Players missing from the map
// were never drafted or added, which means they are free agents.
func (o *Ownership) Owner(playerID string) *Team {
	t, found := o.OwnerByPlayer[playerID]
	if !found || t == nil {
		return TEAM_FA
	}
	return t
}

func (o *Ownership) IsFreeAgent(playerID string) bool {
	return o.Owner(playerID) == TEAM_FA
}

func (o *Ownership) Count(team *Team) int {
	if team == nil {
		return 0
	}
	return o.CountByTeam[team.String()]
}
