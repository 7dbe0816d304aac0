package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

var (
	ErrPlayerNotFound  error = errors.New("player not found")
	ErrNoDraftBaseline error = errors.New("draft baseline is missing or empty")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// DBTeam adapts a *model.Team to the pgx text codec. Unknown names in the
// database scan to nil, which callers must treat as invalid.
type DBTeam struct {
	team *model.Team
}

func (t *DBTeam) ScanText(v pgtype.Text) error {
	if !v.Valid {
		t.team = nil
		return nil
	}
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBTeam) TextValue() (pgtype.Text, error) {
	if t.team == nil {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{
		String: t.team.String(),
		Valid:  true,
	}, nil
}

type DBDivision struct {
	division model.Division
}

func (d *DBDivision) ScanText(v pgtype.Text) error {
	d.division = model.ParseDivision(v.String)
	return nil
}

func (d *DBDivision) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(d.division),
		Valid:  true,
	}, nil
}
