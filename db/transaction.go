package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (db *postgresDB) GetDraftBaseline(ctx context.Context) ([]model.DraftPick, error) {
	const query = `SELECT player, player_name, team FROM draft_picks ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading draft baseline: %w", err)
	}

	picks := make([]model.DraftPick, 0, 64)
	for rows.Next() {
		var p model.DraftPick
		var team DBTeam
		if err := rows.Scan(&p.PlayerID, &p.PlayerName, &team); err != nil {
			return nil, fmt.Errorf("error scanning draft pick: %w", err)
		}
		if p.PlayerID == "" {
			// A baseline row with no player identifier can't be folded.
			log.Printf("skipping draft pick with no player id (%s)", p.PlayerName)
			continue
		}
		p.Team = team.team
		picks = append(picks, p)
	}

	if len(picks) == 0 {
		return nil, ErrNoDraftBaseline
	}

	return picks, nil
}

func (db *postgresDB) AppendTransactions(ctx context.Context, txns []model.Transaction) error {
	const insert = `INSERT INTO transactions (
		type,
		team,
		player,
		player_name,
		from_team,
		to_team,
		notes
	) VALUES (
		@type,
		@team,
		@player,
		@playerName,
		@fromTeam,
		@toTeam,
		@notes
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range txns {
		args := pgx.NamedArgs{
			"type":       string(t.Type),
			"team":       &DBTeam{team: t.Team},
			"player":     t.PlayerID,
			"playerName": t.PlayerName,
			"fromTeam":   &DBTeam{team: t.FromTeam},
			"toTeam":     &DBTeam{team: t.ToTeam},
			"notes":      t.Notes,
		}
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error appending %s transaction for %s: %w", t.Type, t.PlayerID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting transaction batch: %w", err)
	}
	return nil
}

func (db *postgresDB) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	const query = `SELECT id, type, team, player, player_name, from_team, to_team, notes, created
					FROM transactions ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	results := make([]model.Transaction, 0, 64)
	for rows.Next() {
		var t model.Transaction
		var typ string
		var team, fromTeam, toTeam DBTeam
		var created pgtype.Timestamptz
		err := rows.Scan(&t.ID, &typ, &team, &t.PlayerID, &t.PlayerName, &fromTeam, &toTeam, &t.Notes, &created)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		t.Type = model.ParseTransactionType(typ)
		t.Team = team.team
		t.FromTeam = fromTeam.team
		t.ToTeam = toTeam.team
		t.Created = created.Time
		results = append(results, t)
	}

	return results, nil
}
