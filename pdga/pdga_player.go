package pdga

import (
	"log"
	"strconv"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

type pdgaPlayer struct {
	PDGANumber string `json:"pdga_number"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Division   string `json:"division"`
	Rating     string `json:"rating"`
	City       string `json:"city"`
	State      string `json:"state_prov"`
	Status     string `json:"membership_status"`
}

func (p *pdgaPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.PDGANumber,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Division:  model.ParseDivision(p.Division),
		Rating:    parseRating(p.Rating, p.PDGANumber),
		City:      p.City,
		State:     p.State,
		Active:    p.Status == "current",
	}
}

func parseRating(r, playerID string) int {
	if r == "" {
		return 0
	}
	rating, err := strconv.Atoi(r)
	if err != nil {
		log.Printf("unable to parse rating '%s' for player %s", r, playerID)
		return 0
	}
	return rating
}
