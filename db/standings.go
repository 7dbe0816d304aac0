package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (db *postgresDB) GetStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error) {
	standings, err := db.getStandings(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if len(standings) > 0 || cycleID == "" {
		return standings, nil
	}

	// No cycle-specific standings, fall back to the season standings.
	return db.getStandings(ctx, "")
}

func (db *postgresDB) getStandings(ctx context.Context, cycleID string) ([]model.StandingEntry, error) {
	const query = `SELECT team, rank, points FROM standings WHERE cycle_id=@cycleId ORDER BY id`

	args := pgx.NamedArgs{
		"cycleId": cycleID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error reading standings: %w", err)
	}

	results := make([]model.StandingEntry, 0, 8)
	for rows.Next() {
		var s model.StandingEntry
		var team DBTeam
		if err := rows.Scan(&team, &s.Rank, &s.Points); err != nil {
			return nil, fmt.Errorf("error scanning standing entry: %w", err)
		}
		if team.team == nil {
			// A standings row naming a team that isn't in the league can't
			// participate in waiver ordering.
			log.Printf("skipping standings row with unknown team")
			continue
		}
		s.Team = team.team
		results = append(results, s)
	}

	return results, nil
}

func (db *postgresDB) ListSubscriptions(ctx context.Context, alertType string) ([]model.Subscription, error) {
	const query = `SELECT team, phone, alert_types FROM subscriptions WHERE @alertType = ANY(alert_types)`

	args := pgx.NamedArgs{
		"alertType": alertType,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error reading subscriptions: %w", err)
	}

	results := make([]model.Subscription, 0, 8)
	for rows.Next() {
		var s model.Subscription
		var team DBTeam
		if err := rows.Scan(&team, &s.Phone, &s.AlertTypes); err != nil {
			return nil, fmt.Errorf("error scanning subscription: %w", err)
		}
		if team.team == nil {
			log.Printf("skipping subscription with unknown team")
			continue
		}
		s.Team = team.team
		results = append(results, s)
	}

	return results, nil
}
