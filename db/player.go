package db

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	p, err := db.getPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	old, err := db.getPlayer(ctx, p.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// This is an insert
			err := db.insertPlayer(ctx, p)
			if err != nil {
				return fmt.Errorf("error inserting player: %w", err)
			}
			return nil
		}

		return fmt.Errorf("error reading player at start of SavePlayer(): %w", err)
	}

	// This is an update, see what, if anything changed
	changes := db.calculateChanges(old, p)
	if len(changes) > 0 {
		return db.updatePlayer(ctx, p, changes)
	}
	return nil
}

func (db *postgresDB) Search(ctx context.Context, q string, div model.Division) ([]model.Player, error) {
	const query = `SELECT id, name_first, name_last, division, rating,
							city, state, active, created, updated
					FROM players
					WHERE (name_first || ' ' || name_last) ILIKE @q
						AND division ILIKE @div
					ORDER BY rating DESC`

	divQ := "%"
	if div != model.DIV_UNKNOWN {
		divQ = string(div)
	}

	args := pgx.NamedArgs{
		"q":   fmt.Sprintf("%%%s%%", q),
		"div": divQ,
	}

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", err)
	}

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) ListActivePlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT id, name_first, name_last, division, rating,
							city, state, active, created, updated
					FROM players WHERE active ORDER BY rating DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing active players: %w", err)
	}

	results := make([]model.Player, 0, 64)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) getPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT id, name_first, name_last, division, rating,
							city, state, active, created, updated
					FROM players WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)
	result, err := scanPlayer(row)
	if err != nil {
		return nil, err
	}

	changes, err := db.getChangesByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up player changes for %s: %w", id, err)
	}
	result.Changes = changes

	return result, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var div DBDivision
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&div,
		&result.Rating,
		&result.City,
		&result.State,
		&result.Active,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Division = div.division
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func (db *postgresDB) getChangesByID(ctx context.Context, id string) ([]model.Change, error) {
	const query = `SELECT created, prop, old, new FROM player_changes WHERE player=@id ORDER BY created DESC`

	args := pgx.NamedArgs{
		"id": id,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	changes := make([]model.Change, 0, 16)
	for rows.Next() {
		var created pgtype.Timestamptz
		c := model.Change{}
		err := rows.Scan(&created, &c.PropertyName, &c.OldValue, &c.NewValue)
		if err != nil {
			return nil, fmt.Errorf("error scanning player change: %v", err)
		}
		c.Time = created.Time

		changes = append(changes, c)
	}

	return changes, nil
}

func (db *postgresDB) insertPlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("insertPlayer - player is nil")
	}
	const query = `INSERT INTO players (
		id,
		name_first,
		name_last,
		division,
		rating,
		city,
		state,
		active
	) VALUES (
		@id,
		@nameFirst,
		@nameLast,
		@division,
		@rating,
		@city,
		@state,
		@active
	)`

	args := namedArgsForPlayer(p, db.clock)
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error inserting player(%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) updatePlayer(ctx context.Context, p *model.Player, changes []model.Change) error {
	const update = `UPDATE players
		SET name_first=@nameFirst,
			name_last=@nameLast,
			division=@division,
			rating=@rating,
			city=@city,
			state=@state,
			active=@active,
			updated=@updated
		WHERE id=@id`

	const insertChange = `INSERT INTO player_changes(
		player,
		prop,
		old,
		new
	) VALUES (
		@playerId,
		@prop,
		@old,
		@new
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := namedArgsForPlayer(p, db.clock)
	_, err = tx.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating player (%s): %w", p.ID, err)
	}

	for _, change := range changes {
		args := pgx.NamedArgs{
			"playerId": p.ID,
			"prop":     change.PropertyName,
			"old":      change.OldValue,
			"new":      change.NewValue,
		}
		_, err = tx.Exec(ctx, insertChange, args)
		if err != nil {
			return fmt.Errorf("error inserting player change: %w", err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("error commiting player transaction: %w", err)
	}

	p.Changes = append(p.Changes, changes...)
	slices.SortFunc(p.Changes, func(a, b model.Change) int {
		return b.Time.Compare(a.Time)
	})

	return nil
}

func (db *postgresDB) calculateChanges(p1, p2 *model.Player) []model.Change {
	changes := make([]model.Change, 0, 1)

	changes = checkChange(changes, db.clock, "FirstName", p1.FirstName, p2.FirstName)
	changes = checkChange(changes, db.clock, "LastName", p1.LastName, p2.LastName)
	changes = checkChange(changes, db.clock, "Division", string(p1.Division), string(p2.Division))
	changes = checkChangeInt(changes, db.clock, "Rating", p1.Rating, p2.Rating)
	changes = checkChange(changes, db.clock, "City", p1.City, p2.City)
	changes = checkChange(changes, db.clock, "State", p1.State, p2.State)
	changes = checkChange(changes, db.clock, "Active", fmt.Sprintf("%v", p1.Active), fmt.Sprintf("%v", p2.Active))

	return changes
}

func checkChange(changes []model.Change, clock clock.Clock, prop, old, new string) []model.Change {
	if old != new {
		c := model.Change{
			Time:         clock.Now().UTC(),
			PropertyName: prop,
			OldValue:     old,
			NewValue:     new,
		}
		changes = append(changes, c)
	}
	return changes
}

func checkChangeInt(changes []model.Change, clock clock.Clock, prop string, old, new int) []model.Change {
	return checkChange(changes, clock, prop, fmt.Sprintf("%d", old), fmt.Sprintf("%d", new))
}

func namedArgsForPlayer(p *model.Player, clock clock.Clock) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        p.ID,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"division":  &DBDivision{division: p.Division},
		"rating":    p.Rating,
		"city":      p.City,
		"state":     p.State,
		"active":    p.Active,
		"updated": pgtype.Timestamptz{
			Time:             clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
}
