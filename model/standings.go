package model

// StandingEntry defines a team's place for waiver-priority purposes. Rank is
// an optional explicit priority; 0 means unset. When any entry for a cycle
// carries a rank, rank ordering wins over points ordering.
type StandingEntry struct {
	Team   *Team
	Rank   int
	Points int
}

// Subscription maps a team to a phone number and the alert types it wants.
type Subscription struct {
	Team       *Team
	Phone      string // E.164
	AlertTypes []string
}

func (s *Subscription) WantsAlert(alertType string) bool {
	for _, t := range s.AlertTypes {
		if t == alertType {
			return true
		}
	}
	return false
}
