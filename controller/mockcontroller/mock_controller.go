package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) Search(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) ListActivePlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) OwnershipSnapshot(ctx context.Context) (*model.Ownership, error) {
	args := c.Called(ctx)

	var o *model.Ownership
	if args.Get(0) != nil {
		o = args.Get(0).(*model.Ownership)
	}
	return o, args.Error(1)
}

func (c *C) RosterForTeam(ctx context.Context, teamName string) ([]model.Player, error) {
	args := c.Called(ctx, teamName)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) ValidateTransaction(ctx context.Context, proposed *model.ProposedTransaction) (*model.ValidationResult, error) {
	args := c.Called(ctx, proposed)

	var r *model.ValidationResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ValidationResult)
	}
	return r, args.Error(1)
}

func (c *C) SubmitTransaction(ctx context.Context, proposed *model.ProposedTransaction) (*model.ValidationResult, error) {
	args := c.Called(ctx, proposed)

	var r *model.ValidationResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ValidationResult)
	}
	return r, args.Error(1)
}

func (c *C) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	args := c.Called(ctx)

	var r []model.Transaction
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Transaction)
	}
	return r, args.Error(1)
}

func (c *C) SubmitWaiverRequests(ctx context.Context, cycleID, teamName, submittedBy string, picks []model.WaiverPick) (*model.WaiverSubmissionResult, error) {
	args := c.Called(ctx, cycleID, teamName, submittedBy, picks)

	var r *model.WaiverSubmissionResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.WaiverSubmissionResult)
	}
	return r, args.Error(1)
}

func (c *C) GetActiveRequests(ctx context.Context, cycleID string) ([]model.WaiverRequest, error) {
	args := c.Called(ctx, cycleID)

	var r []model.WaiverRequest
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverRequest)
	}
	return r, args.Error(1)
}

func (c *C) RunWaivers(ctx context.Context, cycleID, eventName string) (*model.WaiverRunResult, error) {
	args := c.Called(ctx, cycleID, eventName)

	var r *model.WaiverRunResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.WaiverRunResult)
	}
	return r, args.Error(1)
}

func (c *C) ListAwards(ctx context.Context, cycleID string) ([]model.WaiverAward, error) {
	args := c.Called(ctx, cycleID)

	var r []model.WaiverAward
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverAward)
	}
	return r, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error) {
	args := c.Called(ctx, cycleID)

	var r []model.StandingEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StandingEntry)
	}
	return r, args.Error(1)
}
