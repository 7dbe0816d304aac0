package model

import "time"

type WaiverStatus string

const (
	WAIVER_ACTIVE WaiverStatus = "ACTIVE"
	WAIVER_VOID   WaiverStatus = "VOID"
	WAIVER_ROLLED WaiverStatus = "ROLLED"
)

type AwardStatus string

const (
	AWARD_GRANTED       AwardStatus = "AWARDED"
	AWARD_NO_VALID_PICK AwardStatus = "NO_VALID_PICK"
)

// WaiverPick is one entry of a team's submitted wishlist.
type WaiverPick struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// WaiverRequest is a persisted wishlist entry. At most one ACTIVE request
// exists per (cycle, team, rank); resubmitting voids the team's previous
// ACTIVE requests for the cycle. ROLLED and VOID are terminal.
type WaiverRequest struct {
	CycleID     string
	Team        *Team
	SubmittedBy string
	Rank        int
	PlayerID    string
	PlayerName  string
	Status      WaiverStatus
	Created     time.Time
}

// WaiverAward is one row of the awards log. Immutable once appended. A
// NO_VALID_PICK row records that a team got nothing in round 1.
type WaiverAward struct {
	CycleID       string
	AwardedAt     time.Time
	Team          *Team
	PriorityLabel int
	PlayerID      string
	PlayerName    string
	Status        AwardStatus
	Round         int
	ClaimSequence int
}

// WaiverRunResult is everything a single waiver run produced. AlreadyPosted
// means a prior run for the cycle was detected and nothing was done.
type WaiverRunResult struct {
	CycleID       string                   `json:"cycleId"`
	EventName     string                   `json:"eventName"`
	AlreadyPosted bool                     `json:"alreadyPosted"`
	Awards        []WaiverAward            `json:"awards"`
	AwardsByTeam  map[string][]WaiverAward `json:"awardsByTeam"`
	LogLines      []string                 `json:"logLines"`
}

// WaiverSubmissionResult reports whether a wishlist submission was accepted.
// A submission with any error is rejected as a whole.
type WaiverSubmissionResult struct {
	CycleID  string   `json:"cycleId"`
	Team     string   `json:"team"`
	OK       bool     `json:"ok"`
	Errors   []string `json:"errors,omitempty"`
	Accepted int      `json:"accepted"`
}
