package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/itbasis/go-clock"
	"golang.org/x/time/rate"
)

const (
	hourlySendCap = 30
	dailySendCap  = 200
)

type smsDispatcher struct {
	url        string
	token      string
	from       string
	httpClient *http.Client

	dedupe *deduper
	hourly *rate.Limiter
	daily  *rate.Limiter
}

// NewSMSDispatcher returns a Dispatcher backed by an SMS gateway. Sends are
// deduped for a few hours and capped per hour and per day; a capped or
// deduped send returns Sent=false without an error.
func NewSMSDispatcher(c clock.Clock, url, token, from string) Dispatcher {
	return &smsDispatcher{
		url:   url,
		token: token,
		from:  from,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		dedupe: newDeduper(c, dedupeTTL),
		hourly: rate.NewLimiter(rate.Every(time.Hour/hourlySendCap), hourlySendCap),
		daily:  rate.NewLimiter(rate.Every(24*time.Hour/dailySendCap), dailySendCap),
	}
}

type smsPayload struct {
	To   string `json:"to"`
	From string `json:"from"`
	Body string `json:"body"`
}

func (s *smsDispatcher) Send(ctx context.Context, alert Alert) (Result, error) {
	if alert.Phone == "" {
		return Result{}, fmt.Errorf("alert for team %s has no phone number", alert.Team)
	}
	if alert.DedupeKey != "" && s.dedupe.Seen(alert.DedupeKey) {
		return Result{Sent: false, Reason: "duplicate alert suppressed"}, nil
	}
	if !s.daily.Allow() {
		return Result{Sent: false, Reason: "daily send cap reached"}, nil
	}
	if !s.hourly.Allow() {
		return Result{Sent: false, Reason: "hourly send cap reached"}, nil
	}

	body, err := json.Marshal(smsPayload{
		To:   alert.Phone,
		From: s.from,
		Body: alert.Message,
	})
	if err != nil {
		return Result{}, fmt.Errorf("error marshaling sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/messages", s.url), bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("error building sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.token))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("error sending sms for team %s: %w", alert.Team, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("sms gateway returned status %d for team %s", resp.StatusCode, alert.Team)
	}

	log.Printf("Sent %s alert to team %s", alert.Type, alert.Team)
	return Result{Sent: true}, nil
}
