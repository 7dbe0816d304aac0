package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (db *postgresDB) GetActiveRequests(ctx context.Context, cycleID string) ([]model.WaiverRequest, error) {
	const query = `SELECT cycle_id, team, submitted_by, rank, player, player_name, status, created
					FROM waiver_requests
					WHERE cycle_id=@cycleId AND status=@status
					ORDER BY team, rank`

	args := pgx.NamedArgs{
		"cycleId": cycleID,
		"status":  string(model.WAIVER_ACTIVE),
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error reading active waiver requests: %w", err)
	}

	return scanWaiverRequests(rows)
}

func (db *postgresDB) SaveWaiverRequests(ctx context.Context, cycleID string, team *model.Team, requests []model.WaiverRequest) error {
	const void = `UPDATE waiver_requests
					SET status=@void
					WHERE cycle_id=@cycleId AND team=@team AND status=@active`

	const insert = `INSERT INTO waiver_requests (
		cycle_id,
		team,
		submitted_by,
		rank,
		player,
		player_name,
		status
	) VALUES (
		@cycleId,
		@team,
		@submittedBy,
		@rank,
		@player,
		@playerName,
		@status
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	voidArgs := pgx.NamedArgs{
		"void":    string(model.WAIVER_VOID),
		"cycleId": cycleID,
		"team":    &DBTeam{team: team},
		"active":  string(model.WAIVER_ACTIVE),
	}
	if _, err := tx.Exec(ctx, void, voidArgs); err != nil {
		return fmt.Errorf("error voiding prior waiver requests for %s: %w", team, err)
	}

	for _, r := range requests {
		args := pgx.NamedArgs{
			"cycleId":     cycleID,
			"team":        &DBTeam{team: r.Team},
			"submittedBy": r.SubmittedBy,
			"rank":        r.Rank,
			"player":      r.PlayerID,
			"playerName":  r.PlayerName,
			"status":      string(r.Status),
		}
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting waiver request rank %d for %s: %w", r.Rank, team, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting waiver request replacement: %w", err)
	}
	return nil
}

func (db *postgresDB) RollRequestsForCycle(ctx context.Context, cycleID string) error {
	const query = `UPDATE waiver_requests
					SET status=@rolled
					WHERE cycle_id=@cycleId AND status=@active`

	args := pgx.NamedArgs{
		"rolled":  string(model.WAIVER_ROLLED),
		"cycleId": cycleID,
		"active":  string(model.WAIVER_ACTIVE),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error rolling waiver requests for cycle %s: %w", cycleID, err)
	}
	return nil
}

func (db *postgresDB) SaveAwards(ctx context.Context, awards []model.WaiverAward) error {
	const insert = `INSERT INTO waiver_awards (
		cycle_id,
		awarded_at,
		team,
		priority_label,
		player,
		player_name,
		status,
		round,
		claim_seq
	) VALUES (
		@cycleId,
		@awardedAt,
		@team,
		@priorityLabel,
		@player,
		@playerName,
		@status,
		@round,
		@claimSeq
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, a := range awards {
		args := pgx.NamedArgs{
			"cycleId": a.CycleID,
			"awardedAt": pgtype.Timestamptz{
				Time:             a.AwardedAt,
				InfinityModifier: pgtype.Finite,
				Valid:            true,
			},
			"team":          &DBTeam{team: a.Team},
			"priorityLabel": a.PriorityLabel,
			"player":        a.PlayerID,
			"playerName":    a.PlayerName,
			"status":        string(a.Status),
			"round":         a.Round,
			"claimSeq":      a.ClaimSequence,
		}
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting waiver award for %s: %w", a.Team, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting waiver award batch: %w", err)
	}
	return nil
}

func (db *postgresDB) ListAwardsForCycle(ctx context.Context, cycleID string) ([]model.WaiverAward, error) {
	const query = `SELECT cycle_id, awarded_at, team, priority_label, player, player_name, status, round, claim_seq
					FROM waiver_awards
					WHERE cycle_id=@cycleId
					ORDER BY claim_seq`

	args := pgx.NamedArgs{
		"cycleId": cycleID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing awards for cycle %s: %w", cycleID, err)
	}

	results := make([]model.WaiverAward, 0, 16)
	for rows.Next() {
		var a model.WaiverAward
		var team DBTeam
		var status string
		var awardedAt pgtype.Timestamptz
		err := rows.Scan(&a.CycleID, &awardedAt, &team, &a.PriorityLabel, &a.PlayerID, &a.PlayerName, &status, &a.Round, &a.ClaimSequence)
		if err != nil {
			return nil, fmt.Errorf("error scanning waiver award: %w", err)
		}
		a.Team = team.team
		a.Status = model.AwardStatus(status)
		a.AwardedAt = awardedAt.Time
		results = append(results, a)
	}

	return results, nil
}

func scanWaiverRequests(rows pgx.Rows) ([]model.WaiverRequest, error) {
	results := make([]model.WaiverRequest, 0, 16)
	for rows.Next() {
		var r model.WaiverRequest
		var team DBTeam
		var status string
		var created pgtype.Timestamptz
		err := rows.Scan(&r.CycleID, &team, &r.SubmittedBy, &r.Rank, &r.PlayerID, &r.PlayerName, &status, &created)
		if err != nil {
			return nil, fmt.Errorf("error scanning waiver request: %w", err)
		}
		r.Team = team.team
		r.Status = model.WaiverStatus(status)
		r.Created = created.Time
		results = append(results, r)
	}
	return results, nil
}
