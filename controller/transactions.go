package controller

import (
	"context"
	"fmt"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (c *controller) ValidateTransaction(ctx context.Context, proposed *model.ProposedTransaction) (*model.ValidationResult, error) {
	ownership, err := c.ownershipSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return validateTransaction(proposed, ownership), nil
}

func (c *controller) SubmitTransaction(ctx context.Context, proposed *model.ProposedTransaction) (*model.ValidationResult, error) {
	release, err := c.acquireCommitLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	// Re-validate against a fresh snapshot inside the lock so a transaction
	// validated earlier can't commit against state that has since moved.
	ownership, err := c.ownershipSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := validateTransaction(proposed, ownership)
	if !result.OK {
		return result, nil
	}

	txns := expandTransaction(proposed)
	if err := c.db.AppendTransactions(ctx, txns); err != nil {
		return nil, fmt.Errorf("error committing %s transaction: %w", proposed.Type, err)
	}

	return result, nil
}

func (c *controller) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return c.db.ListTransactions(ctx)
}

// validateTransaction checks every rule for the proposed transaction and
// accumulates all violations, so the caller sees the full list in one pass.
// Only an unknown transaction type short-circuits.
func validateTransaction(p *model.ProposedTransaction, ownership *model.Ownership) *model.ValidationResult {
	result := &model.ValidationResult{
		Details: model.TransactionDetails{RosterCap: model.RosterCap},
	}

	txType := model.ParseTransactionType(p.Type)
	if txType == model.TRANS_UNKNOWN {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown transaction type '%s'", p.Type))
		return result
	}

	switch txType {
	case model.TRANS_ADD:
		validateAdd(p, ownership, result)
	case model.TRANS_DROP:
		validateDrop(p, ownership, result)
	case model.TRANS_TRADE:
		validateTrade(p, ownership, result)
	case model.TRANS_SWAP:
		validateSwap(p, ownership, result)
	}

	result.OK = len(result.Errors) == 0
	return result
}

func validateAdd(p *model.ProposedTransaction, ownership *model.Ownership, result *model.ValidationResult) {
	target := resolveTeam(p.ToTeam, p.Team)
	if target == nil {
		result.Errors = append(result.Errors, addsTeamError(p.ToTeam, p.Team))
	}

	if p.PlayerID == "" {
		result.Errors = append(result.Errors, "a player id is required for an ADD")
		return
	}

	owner := ownership.Owner(p.PlayerID)
	result.Details.CurrentOwner = owner.String()
	result.Details.Eligible = owner == model.TEAM_FA
	if owner != model.TEAM_FA {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s) is currently owned by %s", p.PlayerName, p.PlayerID, owner))
	}

	if target != nil {
		count := ownership.Count(target)
		result.Details.RosterCount = count
		if count >= model.RosterCap {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s is at the roster cap (%d/%d)", target, count, model.RosterCap))
		}
	}
}

func validateDrop(p *model.ProposedTransaction, ownership *model.Ownership, result *model.ValidationResult) {
	expected := resolveTeam(p.FromTeam, p.Team)
	if expected == nil {
		result.Errors = append(result.Errors, addsTeamError(p.FromTeam, p.Team))
	}

	if p.PlayerID == "" {
		result.Errors = append(result.Errors, "a player id is required for a DROP")
		return
	}

	checkOwnedBy(p.PlayerID, p.PlayerName, expected, ownership, result)
}

func validateTrade(p *model.ProposedTransaction, ownership *model.Ownership, result *model.ValidationResult) {
	source := resolveTeam(p.FromTeam, p.Team)
	if source == nil {
		result.Errors = append(result.Errors, addsTeamError(p.FromTeam, p.Team))
	}

	target := model.ParseTeam(p.ToTeam)
	if target == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("a TRADE requires a valid receiving team, got '%s'", p.ToTeam))
	} else if source != nil && target.Equals(source) {
		result.Errors = append(result.Errors, "a TRADE requires two different teams")
	}

	if p.PlayerID == "" {
		result.Errors = append(result.Errors, "a player id is required for a TRADE")
		return
	}

	checkOwnedBy(p.PlayerID, p.PlayerName, source, ownership, result)
}

func validateSwap(p *model.ProposedTransaction, ownership *model.Ownership, result *model.ValidationResult) {
	team := model.ParseTeam(p.Team)
	if team == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("a SWAP requires a valid team, got '%s'", p.Team))
	}

	missing := false
	for _, f := range []struct{ name, value string }{
		{"dropPlayerId", p.DropPlayerID},
		{"dropPlayerName", p.DropPlayerName},
		{"addPlayerId", p.AddPlayerID},
		{"addPlayerName", p.AddPlayerName},
	} {
		if f.value == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s is required for a SWAP", f.name))
			missing = true
		}
	}
	if missing {
		return
	}

	if p.DropPlayerID == p.AddPlayerID {
		result.Errors = append(result.Errors, "the drop and add players cannot be the same PDGA number")
	}

	if team != nil {
		count := ownership.Count(team)
		result.Details.RosterCount = count
		// A swap is net-zero, so at-cap is fine; over-cap must be fixed
		// before any swap goes through.
		if count > model.RosterCap {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s is over the roster cap (%d/%d), fix the roster before swapping", team, count, model.RosterCap))
		}
	}

	dropOwner := ownership.Owner(p.DropPlayerID)
	if dropOwner == model.TEAM_FA {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s) is not currently owned by any team", p.DropPlayerName, p.DropPlayerID))
	} else if team != nil && !dropOwner.Equals(team) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s) is owned by %s, not %s", p.DropPlayerName, p.DropPlayerID, dropOwner, team))
	}

	addOwner := ownership.Owner(p.AddPlayerID)
	result.Details.CurrentOwner = addOwner.String()
	result.Details.Eligible = addOwner == model.TEAM_FA
	if addOwner != model.TEAM_FA {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s) is currently owned by %s", p.AddPlayerName, p.AddPlayerID, addOwner))
	}
}

// checkOwnedBy verifies the player is owned, and owned by the expected team.
func checkOwnedBy(playerID, playerName string, expected *model.Team, ownership *model.Ownership, result *model.ValidationResult) {
	owner := ownership.Owner(playerID)
	result.Details.CurrentOwner = owner.String()
	if owner == model.TEAM_FA {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s) is not currently owned by any team", playerName, playerID))
		return
	}
	if expected != nil && !owner.Equals(expected) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s) is owned by %s, not %s", playerName, playerID, owner, expected))
	}
}

// resolveTeam prefers the explicit team field over the acting team, and
// resolves whichever is present to a canonical team.
func resolveTeam(explicit, acting string) *model.Team {
	if explicit != "" {
		return model.ParseTeam(explicit)
	}
	if acting != "" {
		return model.ParseTeam(acting)
	}
	return nil
}

func addsTeamError(explicit, acting string) string {
	name := explicit
	if name == "" {
		name = acting
	}
	if name == "" {
		return "a team is required"
	}
	return fmt.Sprintf("'%s' is not a league team", name)
}

// expandTransaction converts a validated proposal into the history events to
// append. A SWAP becomes an atomic DROP+ADD pair for the same team.
func expandTransaction(p *model.ProposedTransaction) []model.Transaction {
	txType := model.ParseTransactionType(p.Type)
	team := model.ParseTeam(p.Team)

	if txType == model.TRANS_SWAP {
		return []model.Transaction{
			{
				Type:       model.TRANS_DROP,
				Team:       team,
				PlayerID:   p.DropPlayerID,
				PlayerName: p.DropPlayerName,
				FromTeam:   team,
				Notes:      p.Notes,
			},
			{
				Type:       model.TRANS_ADD,
				Team:       team,
				PlayerID:   p.AddPlayerID,
				PlayerName: p.AddPlayerName,
				ToTeam:     team,
				Notes:      p.Notes,
			},
		}
	}

	return []model.Transaction{
		{
			Type:       txType,
			Team:       team,
			PlayerID:   p.PlayerID,
			PlayerName: p.PlayerName,
			FromTeam:   model.ParseTeam(p.FromTeam),
			ToTeam:     model.ParseTeam(p.ToTeam),
			Notes:      p.Notes,
		},
	}
}
