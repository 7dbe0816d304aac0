package mockdb

import (
	"context"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) Search(ctx context.Context, query string, div model.Division) ([]model.Player, error) {
	args := db.Called(ctx, query, div)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) ListActivePlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetDraftBaseline(ctx context.Context) ([]model.DraftPick, error) {
	args := db.Called(ctx)

	var r []model.DraftPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftPick)
	}
	return r, args.Error(1)
}

func (db *DB) AppendTransactions(ctx context.Context, txns []model.Transaction) error {
	args := db.Called(ctx, txns)
	return args.Error(0)
}

func (db *DB) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	args := db.Called(ctx)

	var r []model.Transaction
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Transaction)
	}
	return r, args.Error(1)
}

func (db *DB) GetActiveRequests(ctx context.Context, cycleID string) ([]model.WaiverRequest, error) {
	args := db.Called(ctx, cycleID)

	var r []model.WaiverRequest
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverRequest)
	}
	return r, args.Error(1)
}

func (db *DB) SaveWaiverRequests(ctx context.Context, cycleID string, team *model.Team, requests []model.WaiverRequest) error {
	args := db.Called(ctx, cycleID, team, requests)
	return args.Error(0)
}

func (db *DB) RollRequestsForCycle(ctx context.Context, cycleID string) error {
	args := db.Called(ctx, cycleID)
	return args.Error(0)
}

func (db *DB) SaveAwards(ctx context.Context, awards []model.WaiverAward) error {
	args := db.Called(ctx, awards)
	return args.Error(0)
}

func (db *DB) ListAwardsForCycle(ctx context.Context, cycleID string) ([]model.WaiverAward, error) {
	args := db.Called(ctx, cycleID)

	var r []model.WaiverAward
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverAward)
	}
	return r, args.Error(1)
}

func (db *DB) GetStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error) {
	args := db.Called(ctx, cycleID)

	var r []model.StandingEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StandingEntry)
	}
	return r, args.Error(1)
}

func (db *DB) ListSubscriptions(ctx context.Context, alertType string) ([]model.Subscription, error) {
	args := db.Called(ctx, alertType)

	var r []model.Subscription
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Subscription)
	}
	return r, args.Error(1)
}
