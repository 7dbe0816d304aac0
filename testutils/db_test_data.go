package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jandkbailey21/FDG-Discord-Bot/containers"
	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

var (
	PaulMcBeth = &model.Player{
		ID:        "27523",
		FirstName: "Paul",
		LastName:  "McBeth",
		Division:  model.DIV_MPO,
		Rating:    1138,
		Active:    true,
	}
	RickyWysocki = &model.Player{
		ID:        "38008",
		FirstName: "Ricky",
		LastName:  "Wysocki",
		Division:  model.DIV_MPO,
		Rating:    1132,
		Active:    true,
	}
	KristinTattar = &model.Player{
		ID:        "73986",
		FirstName: "Kristin",
		LastName:  "Tattar",
		Division:  model.DIV_FPO,
		Rating:    978,
		Active:    true,
	}
	EagleMcMahon = &model.Player{
		ID:        "37950",
		FirstName: "Eagle",
		LastName:  "McMahon",
		Division:  model.DIV_MPO,
		Rating:    1138,
		Active:    true,
	}
	PaigePierce = &model.Player{
		ID:        "29190",
		FirstName: "Paige",
		LastName:  "Pierce",
		Division:  model.DIV_FPO,
		Rating:    954,
		Active:    true,
	}
	CalvinHeimburg = &model.Player{
		ID:        "45971",
		FirstName: "Calvin",
		LastName:  "Heimburg",
		Division:  model.DIV_MPO,
		Rating:    1136,
		Active:    true,
	}
	GannonBuhr = &model.Player{
		ID:        "75412",
		FirstName: "Gannon",
		LastName:  "Buhr",
		Division:  model.DIV_MPO,
		Rating:    1140,
		Active:    true,
	}
	SimonLizotte = &model.Player{
		ID:        "8332",
		FirstName: "Simon",
		LastName:  "Lizotte",
		Division:  model.DIV_MPO,
		Rating:    1127,
		Active:    true,
	}
)

type TestDB struct {
	container *containers.DBContainer
	pool      *pgxpool.Pool
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), container.ConnectionString())
	if err != nil {
		log.Fatalf("error opening seed pool for test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		pool:      pool,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.pool.Close()
	db.container.Shutdown()
}

// The draft baseline, standings and alert subscriptions have no writer on
// the runtime interface; they are loaded administratively. Tests seed them
// through a raw connection instead.

func (db *TestDB) SeedDraftPick(team *model.Team, p *model.Player) error {
	_, err := db.pool.Exec(context.Background(),
		`INSERT INTO draft_picks (player, player_name, team) VALUES ($1, $2, $3)`,
		p.ID, p.FirstName+" "+p.LastName, team.String())
	return err
}

func (db *TestDB) SeedStanding(cycleID string, team *model.Team, rank, points int) error {
	_, err := db.pool.Exec(context.Background(),
		`INSERT INTO standings (cycle_id, team, rank, points) VALUES ($1, $2, $3, $4)`,
		cycleID, team.String(), rank, points)
	return err
}

func (db *TestDB) SeedSubscription(team *model.Team, phone string, alertTypes ...string) error {
	_, err := db.pool.Exec(context.Background(),
		`INSERT INTO subscriptions (team, phone, alert_types) VALUES ($1, $2, $3)`,
		team.String(), phone, alertTypes)
	return err
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		PaulMcBeth,
		RickyWysocki,
		KristinTattar,
		EagleMcMahon,
		PaigePierce,
		CalvinHeimburg,
		GannonBuhr,
		SimonLizotte,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.SavePlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}
