package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/jandkbailey21/FDG-Discord-Bot/notify"
	"github.com/jandkbailey21/FDG-Discord-Bot/pdga"
)

// ErrInvalidInput marks failures caused by the caller's request rather than
// an internal fault. The web layer maps these to a 400.
var ErrInvalidInput = errors.New("invalid input")

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	Search(ctx context.Context, query string) ([]model.Player, error)
	ListActivePlayers(ctx context.Context) ([]model.Player, error)
	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// OwnershipSnapshot rebuilds the ownership index from the draft baseline
	// and the full transaction history.
	OwnershipSnapshot(ctx context.Context) (*model.Ownership, error)
	RosterForTeam(ctx context.Context, teamName string) ([]model.Player, error)

	// ValidateTransaction checks a proposed transaction against a fresh
	// ownership snapshot without committing anything.
	ValidateTransaction(ctx context.Context, proposed *model.ProposedTransaction) (*model.ValidationResult, error)
	// SubmitTransaction re-validates under the commit lock and appends the
	// transaction to history when every check passes.
	SubmitTransaction(ctx context.Context, proposed *model.ProposedTransaction) (*model.ValidationResult, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	SubmitWaiverRequests(ctx context.Context, cycleID, teamName, submittedBy string, picks []model.WaiverPick) (*model.WaiverSubmissionResult, error)
	GetActiveRequests(ctx context.Context, cycleID string) ([]model.WaiverRequest, error)
	// RunWaivers executes the waiver-priority draft for a cycle. Repeating a
	// cycle that already posted returns AlreadyPosted with no side effects.
	RunWaivers(ctx context.Context, cycleID, eventName string) (*model.WaiverRunResult, error)
	ListAwards(ctx context.Context, cycleID string) ([]model.WaiverAward, error)

	GetStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error)
}

type controller struct {
	clock    clock.Clock
	db       db.DB
	pdga     pdga.Client
	dispatch notify.Dispatcher

	// commitLock serializes every state-mutating request. Acquired with a
	// bounded wait, see lock.go.
	commitLock chan struct{}
}

func New(clock clock.Clock, db db.DB, pdga pdga.Client, dispatch notify.Dispatcher) (C, error) {
	c := &controller{
		clock:      clock,
		db:         db,
		pdga:       pdga,
		dispatch:   dispatch,
		commitLock: make(chan struct{}, 1),
	}
	return c, nil
}
