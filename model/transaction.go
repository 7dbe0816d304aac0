package model

import (
	"strings"
	"time"
)

type TransactionType string

const (
	TRANS_UNKNOWN TransactionType = "UNKNOWN"
	TRANS_ADD     TransactionType = "ADD"
	TRANS_DROP    TransactionType = "DROP"
	TRANS_TRADE   TransactionType = "TRADE"
	TRANS_SWAP    TransactionType = "SWAP"
)

func ParseTransactionType(t string) TransactionType {
	switch strings.ToUpper(strings.TrimSpace(t)) {
	case "ADD":
		return TRANS_ADD
	case "DROP":
		return TRANS_DROP
	case "TRADE":
		return TRANS_TRADE
	case "SWAP":
		return TRANS_SWAP
	default:
		return TRANS_UNKNOWN
	}
}

// Transaction is one committed roster event. Once appended to history it is
// immutable; ownership at any point in time is defined by replaying history
// in ID order. A SWAP never appears in history directly, it is committed as
// a DROP followed by an ADD.
type Transaction struct {
	ID         int32
	Type       TransactionType
	Team       *Team
	PlayerID   string
	PlayerName string
	FromTeam   *Team
	ToTeam     *Team
	Notes      string
	Created    time.Time
}

// ProposedTransaction is a roster request as it arrives from the command
// boundary, before validation. Team names are raw strings so the validator
// can report unknown names instead of dropping them at the parse step.
type ProposedTransaction struct {
	Type       string `json:"type"`
	Team       string `json:"team"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	FromTeam   string `json:"fromTeam"`
	ToTeam     string `json:"toTeam"`

	// SWAP only
	DropPlayerID   string `json:"dropPlayerId"`
	DropPlayerName string `json:"dropPlayerName"`
	AddPlayerID    string `json:"addPlayerId"`
	AddPlayerName  string `json:"addPlayerName"`

	Notes string `json:"notes"`

	// Mode set to "validate" checks the transaction without committing it.
	Mode string `json:"mode,omitempty"`
}

func (p *ProposedTransaction) ValidateOnly() bool {
	return strings.EqualFold(p.Mode, "validate")
}

// TransactionDetails echoes the resolved state a validation ran against so
// callers can log or display it.
type TransactionDetails struct {
	CurrentOwner string `json:"currentOwner,omitempty"`
	RosterCount  int    `json:"rosterCount"`
	RosterCap    int    `json:"rosterCap"`
	Eligible     bool   `json:"eligible"`
}

// ValidationResult collects every rule violation found in one pass. OK is
// true only when Errors is empty.
type ValidationResult struct {
	OK      bool               `json:"ok"`
	Errors  []string           `json:"errors,omitempty"`
	Details TransactionDetails `json:"details"`
}
