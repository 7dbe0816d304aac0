package controller

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jandkbailey21/FDG-Discord-Bot/db/mockdb"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/jandkbailey21/FDG-Discord-Bot/notify"
	"github.com/jandkbailey21/FDG-Discord-Bot/notify/mocknotify"
	"github.com/stretchr/testify/mock"
)

func TestWaiverPriorityOrder_byPoints(t *testing.T) {
	standings := []model.StandingEntry{
		{Team: model.TEAM_CHAIN_GANG, Points: 120},
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
		{Team: model.TEAM_TREE_LOVE, Points: 80},
	}

	order := waiverPriorityOrder(standings)

	expected := []*model.Team{model.TEAM_HYZER_BOMBS, model.TEAM_TREE_LOVE, model.TEAM_CHAIN_GANG}
	for i, team := range expected {
		if order[i].Team != team {
			t.Errorf("position %d: expected %v, got %v", i, team, order[i].Team)
		}
	}
}

func TestWaiverPriorityOrder_explicitRankWins(t *testing.T) {
	// Chain Gang has the most points but also the worst explicit rank, so it
	// picks first when ranks are present.
	standings := []model.StandingEntry{
		{Team: model.TEAM_CHAIN_GANG, Rank: 3, Points: 120},
		{Team: model.TEAM_HYZER_BOMBS, Rank: 1, Points: 45},
		{Team: model.TEAM_TREE_LOVE, Rank: 2, Points: 80},
	}

	order := waiverPriorityOrder(standings)

	expected := []*model.Team{model.TEAM_CHAIN_GANG, model.TEAM_TREE_LOVE, model.TEAM_HYZER_BOMBS}
	for i, team := range expected {
		if order[i].Team != team {
			t.Errorf("position %d: expected %v, got %v", i, team, order[i].Team)
		}
	}
}

func TestWaiverPriorityOrder_tieBreaksByName(t *testing.T) {
	standings := []model.StandingEntry{
		{Team: model.TEAM_TREE_LOVE, Points: 50},
		{Team: model.TEAM_ANNY_TIME, Points: 50},
	}

	order := waiverPriorityOrder(standings)

	if order[0].Team != model.TEAM_ANNY_TIME {
		t.Errorf("expected Anny Time to win the name tie-break, got %v", order[0].Team)
	}
}

func allFreeAgents(string) bool { return true }

func requestsFor(team *model.Team, cycleID string, playerIDs ...string) []model.WaiverRequest {
	requests := make([]model.WaiverRequest, 0, len(playerIDs))
	for i, id := range playerIDs {
		requests = append(requests, model.WaiverRequest{
			CycleID:  cycleID,
			Team:     team,
			Rank:     i + 1,
			PlayerID: id, PlayerName: "Player " + id,
			Status: model.WAIVER_ACTIVE,
		})
	}
	return requests
}

func TestRunWaiverRounds_contestedPlayer(t *testing.T) {
	// Hyzer Bombs trails the standings, so it wins the contested player and
	// Chain Gang falls through to its second choice.
	order := []model.StandingEntry{
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
		{Team: model.TEAM_CHAIN_GANG, Points: 120},
	}
	byTeam := map[string][]model.WaiverRequest{
		model.TEAM_CHAIN_GANG.String():  requestsFor(model.TEAM_CHAIN_GANG, "c1", "p1", "p2"),
		model.TEAM_HYZER_BOMBS.String(): requestsFor(model.TEAM_HYZER_BOMBS, "c1", "p1"),
	}

	awards, logLines := runWaiverRounds("c1", order, byTeam, allFreeAgents, time.Now())

	granted := map[string]string{}
	for _, a := range awards {
		if a.Status == model.AWARD_GRANTED {
			granted[a.Team.String()] = a.PlayerID
		}
	}

	if granted[model.TEAM_HYZER_BOMBS.String()] != "p1" {
		t.Errorf("expected Hyzer Bombs to win p1, got %q", granted[model.TEAM_HYZER_BOMBS.String()])
	}
	if granted[model.TEAM_CHAIN_GANG.String()] != "p2" {
		t.Errorf("expected Chain Gang to fall through to p2, got %q", granted[model.TEAM_CHAIN_GANG.String()])
	}

	if len(logLines) == 0 || logLines[0] != "-- Round 1 --" {
		t.Errorf("expected the log to start with the round header, got %v", logLines)
	}
}

func TestRunWaiverRounds_playerAwardedOnce(t *testing.T) {
	order := []model.StandingEntry{
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
		{Team: model.TEAM_CHAIN_GANG, Points: 120},
		{Team: model.TEAM_TREE_LOVE, Points: 150},
	}
	byTeam := map[string][]model.WaiverRequest{
		model.TEAM_HYZER_BOMBS.String(): requestsFor(model.TEAM_HYZER_BOMBS, "c1", "p1"),
		model.TEAM_CHAIN_GANG.String():  requestsFor(model.TEAM_CHAIN_GANG, "c1", "p1"),
		model.TEAM_TREE_LOVE.String():   requestsFor(model.TEAM_TREE_LOVE, "c1", "p1"),
	}

	awards, _ := runWaiverRounds("c1", order, byTeam, allFreeAgents, time.Now())

	winners := 0
	for _, a := range awards {
		if a.Status == model.AWARD_GRANTED && a.PlayerID == "p1" {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("p1 should be awarded exactly once, got %d", winners)
	}
}

func TestRunWaiverRounds_noRequestsWritesBookkeepingRows(t *testing.T) {
	order := []model.StandingEntry{
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
		{Team: model.TEAM_CHAIN_GANG, Points: 120},
	}

	awards, logLines := runWaiverRounds("c1", order, map[string][]model.WaiverRequest{}, allFreeAgents, time.Now())

	if len(awards) != 2 {
		t.Fatalf("expected one NO_VALID_PICK row per team, got %d", len(awards))
	}
	for _, a := range awards {
		if a.Status != model.AWARD_NO_VALID_PICK {
			t.Errorf("expected NO_VALID_PICK, got %s", a.Status)
		}
		if a.Round != 1 {
			t.Errorf("bookkeeping rows belong to round 1, got %d", a.Round)
		}
	}
	for _, line := range logLines[1:] {
		if !strings.Contains(line, "has no valid pick") {
			t.Errorf("unexpected log line %q", line)
		}
	}
}

func TestRunWaiverRounds_skippedPickNeverRevisited(t *testing.T) {
	// p1 is not a free agent: the team's cursor moves past it and must not
	// come back even though later rounds run.
	order := []model.StandingEntry{
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
	}
	byTeam := map[string][]model.WaiverRequest{
		model.TEAM_HYZER_BOMBS.String(): requestsFor(model.TEAM_HYZER_BOMBS, "c1", "p1", "p2", "p3"),
	}
	eligible := func(playerID string) bool { return playerID != "p1" }

	awards, _ := runWaiverRounds("c1", order, byTeam, eligible, time.Now())

	for _, a := range awards {
		if a.PlayerID == "p1" {
			t.Errorf("p1 is owned and must never be awarded")
		}
	}

	granted := make([]string, 0)
	for _, a := range awards {
		if a.Status == model.AWARD_GRANTED {
			granted = append(granted, a.PlayerID)
		}
	}
	if len(granted) != 2 || granted[0] != "p2" || granted[1] != "p3" {
		t.Errorf("expected p2 then p3, got %v", granted)
	}
}

func TestRunWaiverRounds_priorityLabels(t *testing.T) {
	order := []model.StandingEntry{
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
		{Team: model.TEAM_TREE_LOVE, Points: 80},
		{Team: model.TEAM_CHAIN_GANG, Points: 120},
	}

	awards, _ := runWaiverRounds("c1", order, map[string][]model.WaiverRequest{}, allFreeAgents, time.Now())

	labels := map[string]int{}
	for _, a := range awards {
		labels[a.Team.String()] = a.PriorityLabel
	}
	// The first picker gets the highest label.
	if labels[model.TEAM_HYZER_BOMBS.String()] != 3 {
		t.Errorf("expected label 3 for the first picker, got %d", labels[model.TEAM_HYZER_BOMBS.String()])
	}
	if labels[model.TEAM_CHAIN_GANG.String()] != 1 {
		t.Errorf("expected label 1 for the last picker, got %d", labels[model.TEAM_CHAIN_GANG.String()])
	}
}

func TestRunWaivers_alreadyPosted(t *testing.T) {
	existing := []model.WaiverAward{
		{CycleID: "c1", Team: model.TEAM_HYZER_BOMBS, PlayerID: "p1", PlayerName: "Player p1", Status: model.AWARD_GRANTED, Round: 1, ClaimSequence: 1},
	}

	db := &mockdb.DB{}
	db.On("ListAwardsForCycle", mock.Anything, "c1").Return(existing, nil)

	ctrl := &controller{
		clock:      clock.NewMock(),
		db:         db,
		commitLock: make(chan struct{}, 1),
	}

	result, err := ctrl.RunWaivers(context.Background(), "c1", "Ledgestone Open")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.AlreadyPosted {
		t.Errorf("expected AlreadyPosted for a cycle with awards")
	}
	if len(result.Awards) != 1 {
		t.Errorf("expected the existing awards to be echoed, got %d", len(result.Awards))
	}

	db.AssertNotCalled(t, "SaveAwards", mock.Anything, mock.Anything)
	db.AssertNotCalled(t, "RollRequestsForCycle", mock.Anything, mock.Anything)
}

func TestRunWaivers_fullRun(t *testing.T) {
	db := &mockdb.DB{}
	db.On("ListAwardsForCycle", mock.Anything, "c1").Return([]model.WaiverAward{}, nil)
	db.On("GetStandings", mock.Anything, "c1").Return([]model.StandingEntry{
		{Team: model.TEAM_HYZER_BOMBS, Points: 45},
		{Team: model.TEAM_CHAIN_GANG, Points: 120},
	}, nil)
	db.On("GetActiveRequests", mock.Anything, "c1").Return(append(
		requestsFor(model.TEAM_HYZER_BOMBS, "c1", "8332"),
		requestsFor(model.TEAM_CHAIN_GANG, "c1", "8332", "45971")...), nil)
	db.On("GetDraftBaseline", mock.Anything).Return([]model.DraftPick{
		{PlayerID: "27523", Team: model.TEAM_CHAIN_GANG},
	}, nil)
	db.On("ListTransactions", mock.Anything).Return([]model.Transaction{}, nil)
	db.On("SaveAwards", mock.Anything, mock.Anything).Return(nil)
	db.On("RollRequestsForCycle", mock.Anything, "c1").Return(nil)
	db.On("ListSubscriptions", mock.Anything, AlertTypeWaiverAward).Return([]model.Subscription{
		{Team: model.TEAM_HYZER_BOMBS, Phone: "+15551230000", AlertTypes: []string{AlertTypeWaiverAward}},
	}, nil)

	dispatch := &mocknotify.MockDispatcher{}
	dispatch.On("Send", mock.Anything, mock.Anything).Return(notify.Result{Sent: true}, nil)

	ctrl := &controller{
		clock:      clock.NewMock(),
		db:         db,
		dispatch:   dispatch,
		commitLock: make(chan struct{}, 1),
	}

	result, err := ctrl.RunWaivers(context.Background(), "c1", "Ledgestone Open")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AlreadyPosted {
		t.Errorf("a first run must not report AlreadyPosted")
	}

	bombs := result.AwardsByTeam[model.TEAM_HYZER_BOMBS.String()]
	if len(bombs) != 1 || bombs[0].PlayerID != "8332" {
		t.Errorf("expected Hyzer Bombs to win 8332, got %v", bombs)
	}
	gang := result.AwardsByTeam[model.TEAM_CHAIN_GANG.String()]
	if len(gang) != 1 || gang[0].PlayerID != "45971" {
		t.Errorf("expected Chain Gang to fall through to 45971, got %v", gang)
	}

	db.AssertCalled(t, "SaveAwards", mock.Anything, mock.Anything)
	db.AssertCalled(t, "RollRequestsForCycle", mock.Anything, "c1")

	dispatch.AssertCalled(t, "Send", mock.Anything, mock.MatchedBy(func(a notify.Alert) bool {
		return a.Team == model.TEAM_HYZER_BOMBS.String() &&
			a.Type == AlertTypeWaiverAward &&
			strings.Contains(a.Message, "Ledgestone Open") &&
			strings.Contains(a.DedupeKey, "c1")
	}))
	dispatch.AssertNumberOfCalls(t, "Send", 1)
}

func TestRunWaivers_requiresCycleAndEvent(t *testing.T) {
	ctrl := &controller{clock: clock.NewMock(), commitLock: make(chan struct{}, 1)}

	if _, err := ctrl.RunWaivers(context.Background(), "", "Ledgestone Open"); err == nil {
		t.Errorf("expected an error for a missing cycle id")
	}
	if _, err := ctrl.RunWaivers(context.Background(), "c1", ""); err == nil {
		t.Errorf("expected an error for a missing event name")
	}
}
