package controller

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/jandkbailey21/FDG-Discord-Bot/notify"
)

// AlertTypeWaiverAward is the alert type teams subscribe to for award texts.
const AlertTypeWaiverAward = "waiver-award"

// Absolute guard on the round loop. The real bound is derived from the
// longest submitted wishlist; this only caps pathological input.
const maxWaiverRounds = 50

func (c *controller) RunWaivers(ctx context.Context, cycleID, eventName string) (*model.WaiverRunResult, error) {
	if cycleID == "" {
		return nil, fmt.Errorf("%w: a cycle id is required to run waivers", ErrInvalidInput)
	}
	if eventName == "" {
		return nil, fmt.Errorf("%w: an event name is required to run waivers", ErrInvalidInput)
	}

	release, err := c.acquireCommitLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	// The awards log is the idempotency record: any row for this cycle means
	// a prior run already posted, and re-running would double-notify.
	existing, err := c.db.ListAwardsForCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("error checking awards log for cycle %s: %w", cycleID, err)
	}
	if len(existing) > 0 {
		return &model.WaiverRunResult{
			CycleID:       cycleID,
			EventName:     eventName,
			AlreadyPosted: true,
			Awards:        existing,
			AwardsByTeam:  groupAwardsByTeam(existing),
			LogLines:      []string{fmt.Sprintf("waivers for cycle %s were already posted", cycleID)},
		}, nil
	}

	standings, err := c.db.GetStandings(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("error reading standings for cycle %s: %w", cycleID, err)
	}
	if len(standings) == 0 {
		return nil, fmt.Errorf("no standings available for cycle %s", cycleID)
	}

	requests, err := c.db.GetActiveRequests(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("error reading waiver requests for cycle %s: %w", cycleID, err)
	}

	ownership, err := c.ownershipSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	order := waiverPriorityOrder(standings)
	awards, logLines := runWaiverRounds(cycleID, order, groupRequestsByTeam(requests), ownership.IsFreeAgent, c.clock.Now().UTC())

	if err := c.db.SaveAwards(ctx, awards); err != nil {
		return nil, fmt.Errorf("error persisting awards for cycle %s: %w", cycleID, err)
	}
	if err := c.db.RollRequestsForCycle(ctx, cycleID); err != nil {
		return nil, fmt.Errorf("error rolling requests for cycle %s: %w", cycleID, err)
	}

	granted := make([]model.WaiverAward, 0, len(awards))
	for _, a := range awards {
		if a.Status == model.AWARD_GRANTED {
			granted = append(granted, a)
		}
	}

	result := &model.WaiverRunResult{
		CycleID:      cycleID,
		EventName:    eventName,
		Awards:       awards,
		AwardsByTeam: groupAwardsByTeam(granted),
		LogLines:     logLines,
	}

	c.sendAwardAlerts(ctx, result)

	return result, nil
}

func (c *controller) ListAwards(ctx context.Context, cycleID string) ([]model.WaiverAward, error) {
	return c.db.ListAwardsForCycle(ctx, cycleID)
}

func (c *controller) GetStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error) {
	return c.db.GetStandings(ctx, cycleID)
}

// waiverPriorityOrder sorts standings into pick order. When any entry has an
// explicit rank, rank descending defines the order, so the best-ranked team
// picks last. Otherwise points ascending, so the team with the fewest points
// picks first. Ties break by team name.
func waiverPriorityOrder(standings []model.StandingEntry) []model.StandingEntry {
	order := slices.Clone(standings)

	explicit := false
	for _, s := range order {
		if s.Rank > 0 {
			explicit = true
			break
		}
	}

	slices.SortFunc(order, func(a, b model.StandingEntry) int {
		if explicit {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
		} else {
			if a.Points != b.Points {
				return a.Points - b.Points
			}
		}
		return strings.Compare(a.Team.String(), b.Team.String())
	})

	return order
}

type teamCursor struct {
	team  *model.Team
	label int
	picks []model.WaiverRequest
	next  int
}

// runWaiverRounds walks the priority order round by round, each team keeping
// a monotonic cursor into its wishlist. A pick that is skipped (already
// claimed this run, or no longer a free agent) is never revisited. The loop
// stops after a round with zero awards, bounded by the longest wishlist.
func runWaiverRounds(cycleID string, order []model.StandingEntry, requestsByTeam map[string][]model.WaiverRequest, isEligible func(playerID string) bool, now time.Time) ([]model.WaiverAward, []string) {
	cursors := make([]*teamCursor, 0, len(order))
	maxRounds := 1 // round 1 always runs so the no-valid-pick rows get written
	for i, s := range order {
		picks := requestsByTeam[s.Team.String()]
		cursors = append(cursors, &teamCursor{
			team:  s.Team,
			label: len(order) - i,
			picks: picks,
		})
		if len(picks) > maxRounds {
			maxRounds = len(picks)
		}
	}
	if maxRounds > maxWaiverRounds {
		maxRounds = maxWaiverRounds
	}

	claimed := make(map[string]bool)
	awards := make([]model.WaiverAward, 0, len(order))
	logLines := make([]string, 0, len(order)+2)
	claimSeq := 0

	for round := 1; round <= maxRounds; round++ {
		headerIdx := len(logLines)
		logLines = append(logLines, fmt.Sprintf("-- Round %d --", round))
		roundAwards := 0

		for _, cur := range cursors {
			var pick *model.WaiverRequest
			for cur.next < len(cur.picks) {
				cand := cur.picks[cur.next]
				cur.next++
				if claimed[cand.PlayerID] {
					continue
				}
				if !isEligible(cand.PlayerID) {
					continue
				}
				pick = &cand
				break
			}

			if pick != nil {
				claimSeq++
				claimed[pick.PlayerID] = true
				awards = append(awards, model.WaiverAward{
					CycleID:       cycleID,
					AwardedAt:     now,
					Team:          cur.team,
					PriorityLabel: cur.label,
					PlayerID:      pick.PlayerID,
					PlayerName:    pick.PlayerName,
					Status:        model.AWARD_GRANTED,
					Round:         round,
					ClaimSequence: claimSeq,
				})
				logLines = append(logLines, fmt.Sprintf("P%d %s claims %s (%s)", cur.label, cur.team, pick.PlayerName, pick.PlayerID))
				roundAwards++
			} else if round == 1 {
				// Bookkeeping row so every team shows up in the log for the
				// cycle; later rounds stay quiet.
				claimSeq++
				awards = append(awards, model.WaiverAward{
					CycleID:       cycleID,
					AwardedAt:     now,
					Team:          cur.team,
					PriorityLabel: cur.label,
					Status:        model.AWARD_NO_VALID_PICK,
					Round:         round,
					ClaimSequence: claimSeq,
				})
				logLines = append(logLines, fmt.Sprintf("P%d %s has no valid pick", cur.label, cur.team))
			}
		}

		if roundAwards == 0 {
			// Drop the round header if nothing at all was logged under it.
			if len(logLines) == headerIdx+1 {
				logLines = logLines[:headerIdx]
			}
			break
		}
	}

	return awards, logLines
}

func groupRequestsByTeam(requests []model.WaiverRequest) map[string][]model.WaiverRequest {
	byTeam := make(map[string][]model.WaiverRequest)
	for _, r := range requests {
		if r.Team == nil {
			continue
		}
		byTeam[r.Team.String()] = append(byTeam[r.Team.String()], r)
	}
	for team := range byTeam {
		slices.SortFunc(byTeam[team], func(a, b model.WaiverRequest) int {
			return a.Rank - b.Rank
		})
	}
	return byTeam
}

func groupAwardsByTeam(awards []model.WaiverAward) map[string][]model.WaiverAward {
	byTeam := make(map[string][]model.WaiverAward)
	for _, a := range awards {
		if a.Team == nil || a.Status != model.AWARD_GRANTED {
			continue
		}
		byTeam[a.Team.String()] = append(byTeam[a.Team.String()], a)
	}
	return byTeam
}

// sendAwardAlerts notifies each awarded, subscribed team. One team's failed
// send never blocks the others.
func (c *controller) sendAwardAlerts(ctx context.Context, result *model.WaiverRunResult) {
	if len(result.AwardsByTeam) == 0 {
		return
	}

	subs, err := c.db.ListSubscriptions(ctx, AlertTypeWaiverAward)
	if err != nil {
		log.Printf("error listing %s subscriptions: %v", AlertTypeWaiverAward, err)
		return
	}

	for _, sub := range subs {
		awards, found := result.AwardsByTeam[sub.Team.String()]
		if !found || len(awards) == 0 {
			continue
		}

		names := make([]string, 0, len(awards))
		ids := make([]string, 0, len(awards))
		for _, a := range awards {
			names = append(names, a.PlayerName)
			ids = append(ids, a.PlayerID)
		}
		slices.Sort(ids)

		alert := notify.Alert{
			Team:  sub.Team.String(),
			Phone: sub.Phone,
			Type:  AlertTypeWaiverAward,
			Message: fmt.Sprintf("Waiver results for %s (%s): you were awarded %s",
				result.EventName, result.CycleID, strings.Join(names, ", ")),
			DedupeKey: strings.Join(append([]string{AlertTypeWaiverAward, sub.Team.String(), result.CycleID, result.EventName}, ids...), "|"),
		}

		res, err := c.dispatch.Send(ctx, alert)
		if err != nil {
			log.Printf("error sending waiver alert to %s: %v", sub.Team, err)
			continue
		}
		if !res.Sent {
			log.Printf("waiver alert to %s not sent: %s", sub.Team, res.Reason)
		}
	}
}
