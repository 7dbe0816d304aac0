package controller

import (
	"context"
	"strings"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/db/mockdb"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/stretchr/testify/mock"
)

func newWaiverTestController(t *testing.T) (*controller, *mockdb.DB) {
	t.Helper()

	mdb := &mockdb.DB{}
	mdb.On("GetDraftBaseline", mock.Anything).Return([]model.DraftPick{
		{PlayerID: "27523", Team: model.TEAM_CHAIN_GANG},
	}, nil)
	mdb.On("ListTransactions", mock.Anything).Return([]model.Transaction{}, nil)

	return &controller{
		clock:      clock.NewMock(),
		db:         mdb,
		commitLock: make(chan struct{}, 1),
	}, mdb
}

func TestSubmitWaiverRequests_accepted(t *testing.T) {
	ctrl, mdb := newWaiverTestController(t)
	mdb.On("GetPlayer", mock.Anything, "8332").Return(&model.Player{ID: "8332"}, nil)
	mdb.On("GetPlayer", mock.Anything, "45971").Return(&model.Player{ID: "45971"}, nil)
	mdb.On("SaveWaiverRequests", mock.Anything, "c1", model.TEAM_TREE_LOVE, mock.Anything).Return(nil)

	picks := []model.WaiverPick{
		{Rank: 2, PlayerID: "45971", PlayerName: "Calvin Heimburg"},
		{Rank: 1, PlayerID: "8332", PlayerName: "Simon Lizotte"},
	}

	result, err := ctrl.SubmitWaiverRequests(context.Background(), "c1", "Tree Love", "Marcus", picks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OK {
		t.Fatalf("expected the submission to be accepted, got %v", result.Errors)
	}
	if result.Accepted != 2 {
		t.Errorf("expected 2 accepted picks, got %d", result.Accepted)
	}

	mdb.AssertCalled(t, "SaveWaiverRequests", mock.Anything, "c1", model.TEAM_TREE_LOVE,
		mock.MatchedBy(func(requests []model.WaiverRequest) bool {
			return len(requests) == 2 && requests[0].Rank == 1 && requests[0].PlayerID == "8332" &&
				requests[1].Rank == 2 && requests[1].PlayerID == "45971"
		}))
}

func TestSubmitWaiverRequests_rejectsInvalidPicks(t *testing.T) {
	tests := map[string]struct {
		picks    []model.WaiverPick
		expected string
	}{
		"empty": {
			picks:    []model.WaiverPick{},
			expected: "at least one pick is required",
		},
		"rank out of range": {
			picks:    []model.WaiverPick{{Rank: 11, PlayerID: "8332", PlayerName: "Simon Lizotte"}},
			expected: "rank 11 is out of range",
		},
		"duplicate rank": {
			picks: []model.WaiverPick{
				{Rank: 1, PlayerID: "8332", PlayerName: "Simon Lizotte"},
				{Rank: 1, PlayerID: "45971", PlayerName: "Calvin Heimburg"},
			},
			expected: "duplicate rank 1",
		},
		"duplicate player": {
			picks: []model.WaiverPick{
				{Rank: 1, PlayerID: "8332", PlayerName: "Simon Lizotte"},
				{Rank: 2, PlayerID: "8332", PlayerName: "Simon Lizotte"},
			},
			expected: "duplicate player 8332",
		},
		"unknown player": {
			picks:    []model.WaiverPick{{Rank: 1, PlayerID: "99999", PlayerName: "Nobody"}},
			expected: "not in the player pool",
		},
		"owned player": {
			picks:    []model.WaiverPick{{Rank: 1, PlayerID: "27523", PlayerName: "Paul McBeth"}},
			expected: "is owned by Chain Gang",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl, mdb := newWaiverTestController(t)
			mdb.On("GetPlayer", mock.Anything, "8332").Return(&model.Player{ID: "8332"}, nil)
			mdb.On("GetPlayer", mock.Anything, "45971").Return(&model.Player{ID: "45971"}, nil)
			mdb.On("GetPlayer", mock.Anything, "27523").Return(&model.Player{ID: "27523"}, nil)
			mdb.On("GetPlayer", mock.Anything, "99999").Return(nil, db.ErrPlayerNotFound)

			result, err := ctrl.SubmitWaiverRequests(context.Background(), "c1", "Tree Love", "Marcus", tc.picks)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.OK {
				t.Fatalf("expected the submission to be rejected")
			}
			if !hasStringContaining(result.Errors, tc.expected) {
				t.Errorf("expected an error containing %q, got %v", tc.expected, result.Errors)
			}

			mdb.AssertNotCalled(t, "SaveWaiverRequests", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitWaiverRequests_requiresLeagueTeam(t *testing.T) {
	ctrl, _ := newWaiverTestController(t)

	picks := []model.WaiverPick{{Rank: 1, PlayerID: "8332", PlayerName: "Simon Lizotte"}}

	if _, err := ctrl.SubmitWaiverRequests(context.Background(), "c1", "Disc Jockeys", "Nobody", picks); err == nil {
		t.Errorf("expected an error for an unknown team")
	}
	if _, err := ctrl.SubmitWaiverRequests(context.Background(), "c1", "FA", "Nobody", picks); err == nil {
		t.Errorf("expected an error for the free-agent sentinel")
	}
	if _, err := ctrl.SubmitWaiverRequests(context.Background(), "", "Tree Love", "Marcus", picks); err == nil {
		t.Errorf("expected an error for a missing cycle id")
	}
}

func hasStringContaining(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
