package pdga

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

const PDGAURL = "https://api.pdga.com"

type Client interface {
	LoadPlayers() ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

// New returns a client for the public pool feed. An empty url uses the
// default PDGA API.
func New(url string) (Client, error) {
	if url == "" {
		url = PDGAURL
	}
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/services/json/players", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed struct {
		Players []pdgaPlayer `json:"players"`
	}
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	if err != nil {
		return nil, fmt.Errorf("error parsing response from pdga: %w", err)
	}

	// Convert the players into model.Players
	result := make([]model.Player, 0, len(parsed.Players))
	for _, p := range parsed.Players {
		if p.PDGANumber == "" {
			// A pool entry with no PDGA number can never be owned or
			// claimed, skip it rather than failing the whole load.
			log.Printf("skipping pool player with no pdga number (%s %s)", p.FirstName, p.LastName)
			continue
		}
		div := model.ParseDivision(p.Division)
		if div == model.DIV_UNKNOWN {
			continue
		}
		result = append(result, *p.toPlayer())
	}

	return result, nil
}
