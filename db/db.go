package db

import (
	"context"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	Search(ctx context.Context, query string, div model.Division) ([]model.Player, error)
	ListActivePlayers(ctx context.Context) ([]model.Player, error)

	// The draft baseline is the season's initial owner assignment. A missing
	// or empty baseline is a configuration error, not an empty league.
	GetDraftBaseline(ctx context.Context) ([]model.DraftPick, error)

	// AppendTransactions appends the given events to history in order, in a
	// single database transaction. History order defines ownership.
	AppendTransactions(ctx context.Context, txns []model.Transaction) error
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	GetActiveRequests(ctx context.Context, cycleID string) ([]model.WaiverRequest, error)
	// SaveWaiverRequests voids the team's prior ACTIVE requests for the cycle
	// and inserts the new set, all in one database transaction.
	SaveWaiverRequests(ctx context.Context, cycleID string, team *model.Team, requests []model.WaiverRequest) error
	RollRequestsForCycle(ctx context.Context, cycleID string) error

	SaveAwards(ctx context.Context, awards []model.WaiverAward) error
	ListAwardsForCycle(ctx context.Context, cycleID string) ([]model.WaiverAward, error)

	// GetStandings returns the standings for a cycle, falling back to the
	// season standings (empty cycle id) when the cycle has none.
	GetStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error)
	ListSubscriptions(ctx context.Context, alertType string) ([]model.Subscription, error)
}
