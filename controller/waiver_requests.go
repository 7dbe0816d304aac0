package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

// Wishlists are capped at ten picks per team per cycle.
const maxWaiverPicks = 10

func (c *controller) SubmitWaiverRequests(ctx context.Context, cycleID, teamName, submittedBy string, picks []model.WaiverPick) (*model.WaiverSubmissionResult, error) {
	if cycleID == "" {
		return nil, fmt.Errorf("%w: a cycle id is required to submit waiver requests", ErrInvalidInput)
	}

	team := model.ParseTeam(teamName)
	if team == nil || team == model.TEAM_FA {
		return nil, fmt.Errorf("%w: '%s' is not a league team", ErrInvalidInput, teamName)
	}

	release, err := c.acquireCommitLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	ownership, err := c.ownershipSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.WaiverSubmissionResult{CycleID: cycleID, Team: team.String()}
	result.Errors = c.validatePicks(ctx, team, ownership, picks)
	result.OK = len(result.Errors) == 0
	if !result.OK {
		// Reject the whole submission; the team's previous requests stay
		// ACTIVE untouched.
		return result, nil
	}

	requests := make([]model.WaiverRequest, 0, len(picks))
	for _, pick := range picks {
		requests = append(requests, model.WaiverRequest{
			CycleID:     cycleID,
			Team:        team,
			SubmittedBy: submittedBy,
			Rank:        pick.Rank,
			PlayerID:    pick.PlayerID,
			PlayerName:  pick.PlayerName,
			Status:      model.WAIVER_ACTIVE,
		})
	}
	slices.SortFunc(requests, func(a, b model.WaiverRequest) int {
		return a.Rank - b.Rank
	})

	if err := c.db.SaveWaiverRequests(ctx, cycleID, team, requests); err != nil {
		return nil, fmt.Errorf("error saving waiver requests for %s: %w", team, err)
	}

	result.Accepted = len(requests)
	return result, nil
}

func (c *controller) GetActiveRequests(ctx context.Context, cycleID string) ([]model.WaiverRequest, error) {
	return c.db.GetActiveRequests(ctx, cycleID)
}

// validatePicks accumulates every violation in the submission. Any error
// rejects the submission as a whole, nothing is partially inserted.
func (c *controller) validatePicks(ctx context.Context, team *model.Team, ownership *model.Ownership, picks []model.WaiverPick) []string {
	var errs []string

	if len(picks) == 0 {
		return append(errs, "at least one pick is required")
	}

	seenRank := make(map[int]bool)
	seenPlayer := make(map[string]bool)
	for _, pick := range picks {
		if pick.Rank < 1 || pick.Rank > maxWaiverPicks {
			errs = append(errs, fmt.Sprintf("rank %d is out of range, must be 1-%d", pick.Rank, maxWaiverPicks))
		} else if seenRank[pick.Rank] {
			errs = append(errs, fmt.Sprintf("duplicate rank %d", pick.Rank))
		}
		seenRank[pick.Rank] = true

		if pick.PlayerID == "" {
			errs = append(errs, fmt.Sprintf("rank %d has no player id", pick.Rank))
			continue
		}
		if seenPlayer[pick.PlayerID] {
			errs = append(errs, fmt.Sprintf("duplicate player %s", pick.PlayerID))
		}
		seenPlayer[pick.PlayerID] = true

		if _, err := c.db.GetPlayer(ctx, pick.PlayerID); err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				errs = append(errs, fmt.Sprintf("%s (%s) is not in the player pool", pick.PlayerName, pick.PlayerID))
				continue
			}
			errs = append(errs, fmt.Sprintf("error looking up %s: %v", pick.PlayerID, err))
			continue
		}

		// Claiming a player the team already owns is allowed, anyone else's
		// player is not.
		owner := ownership.Owner(pick.PlayerID)
		if owner != model.TEAM_FA && !owner.Equals(team) {
			errs = append(errs, fmt.Sprintf("%s (%s) is owned by %s", pick.PlayerName, pick.PlayerID, owner))
		}
	}

	return errs
}
