package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (c *controller) OwnershipSnapshot(ctx context.Context) (*model.Ownership, error) {
	return c.ownershipSnapshot(ctx)
}

// ownershipSnapshot rebuilds ownership from scratch on every call. Replaying
// the full history is O(history length), but it makes the result a pure
// function of the baseline and the log, so retried or re-ordered triggers
// can never leave the index drifted from the history.
func (c *controller) ownershipSnapshot(ctx context.Context) (*model.Ownership, error) {
	baseline, err := c.db.GetDraftBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading draft baseline: %w", err)
	}

	history, err := c.db.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading transaction history: %w", err)
	}

	return buildOwnership(baseline, history), nil
}

// buildOwnership folds the transaction history, in order, on top of the
// draft baseline. Events with no resolvable player or team are skipped.
func buildOwnership(baseline []model.DraftPick, history []model.Transaction) *model.Ownership {
	owner := make(map[string]*model.Team)

	for _, p := range baseline {
		if p.PlayerID == "" || p.Team == nil {
			continue
		}
		owner[p.PlayerID] = p.Team
	}

	for _, t := range history {
		if t.PlayerID == "" {
			continue
		}

		switch t.Type {
		case model.TRANS_ADD:
			target := t.ToTeam
			if target == nil {
				target = t.Team
			}
			if target == nil {
				continue
			}
			owner[t.PlayerID] = target

		case model.TRANS_DROP:
			expected := t.FromTeam
			if expected == nil {
				expected = t.Team
			}
			if expected == nil {
				continue
			}
			// A drop only takes effect when the named team still owns the
			// player, so stale or duplicated drop events are no-ops.
			cur, found := owner[t.PlayerID]
			if !found || cur == nil || !cur.Equals(expected) {
				continue
			}
			owner[t.PlayerID] = model.TEAM_FA

		case model.TRANS_TRADE:
			if t.ToTeam == nil {
				continue
			}
			// Trades were owner-checked at submission time; the fold applies
			// them unconditionally.
			owner[t.PlayerID] = t.ToTeam
		}
	}

	counts := make(map[string]int)
	for _, team := range owner {
		if team == nil || team == model.TEAM_FA {
			continue
		}
		counts[team.String()]++
	}

	return &model.Ownership{
		OwnerByPlayer: owner,
		CountByTeam:   counts,
	}
}

func (c *controller) RosterForTeam(ctx context.Context, teamName string) ([]model.Player, error) {
	team := model.ParseTeam(teamName)
	if team == nil || team == model.TEAM_FA {
		return nil, fmt.Errorf("%w: '%s' is not a league team", ErrInvalidInput, teamName)
	}

	ownership, err := c.ownershipSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, model.RosterCap)
	for id, owner := range ownership.OwnerByPlayer {
		if owner != nil && owner.Equals(team) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	roster := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		p, err := c.db.GetPlayer(ctx, id)
		if errors.Is(err, db.ErrPlayerNotFound) {
			// The pool may lag behind a roster move; still report the spot.
			roster = append(roster, model.Player{ID: id})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error loading roster player %s: %w", id, err)
		}
		roster = append(roster, *p)
	}

	return roster, nil
}
