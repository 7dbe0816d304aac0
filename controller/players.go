package controller

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) Search(ctx context.Context, query string) ([]model.Player, error) {
	q, div := getDivisionFromQuery(query)

	if div == model.DIV_UNKNOWN && q == "" {
		return nil, fmt.Errorf("error not a valid query: '%s'", query)
	}
	return c.db.Search(ctx, q, div)
}

func (c *controller) ListActivePlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListActivePlayers(ctx)
}

func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := time.Now()
	log.Printf("update players starting at %v", start.Format(time.DateTime))

	players, err := c.pdga.LoadPlayers()
	if err != nil {
		return err
	}

	for _, p := range players {
		err := c.db.SavePlayer(ctx, &p)
		if err != nil {
			return fmt.Errorf("error saving player (%s %s): %w", p.FirstName, p.LastName, err)
		}
	}

	log.Printf("load players finished, took %v", time.Since(start))
	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.UpdatePlayers(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}

var divisionRegex = regexp.MustCompile(`(?i)(div|division)\s*:\s*(?P<div>\w+)`)

// Parse out the division from the query, returning the same query without
// the division. So if the query is "McBeth div:MPO" this will return
// "McBeth" and model.DIV_MPO. If the input query does not have a `div:`
// argument then the function will return the input string and
// model.DIV_UNKNOWN.
func getDivisionFromQuery(q string) (string, model.Division) {
	div := model.DIV_UNKNOWN
	m := divisionRegex.FindStringSubmatch(q)
	if m != nil {
		d := m[divisionRegex.SubexpIndex("div")]
		div = model.ParseDivision(d)
		q = strings.Replace(q, m[0], "", 1) // Remove the division match from the query
		q = strings.TrimSpace(q)            // Remove any remaining whitespace
	}

	return q, div
}
