package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// SentMessage is one message the fake gateway accepted.
type SentMessage struct {
	To   string `json:"to"`
	From string `json:"from"`
	Body string `json:"body"`
}

// FakeSMSServer accepts gateway posts and records them for assertions.
type FakeSMSServer struct {
	s *httptest.Server

	mu       sync.Mutex
	messages []SentMessage
}

func NewFakeSMSServer() *FakeSMSServer {
	f := &FakeSMSServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messages", f.messagesHandler)
	f.s = httptest.NewServer(mux)
	return f
}

func (f *FakeSMSServer) Close() {
	f.s.Close()
}

func (f *FakeSMSServer) URL() string {
	return f.s.URL
}

func (f *FakeSMSServer) Messages() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]SentMessage, len(f.messages))
	copy(result, f.messages)
	return result
}

func (f *FakeSMSServer) messagesHandler(w http.ResponseWriter, r *http.Request) {
	var msg SentMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.messages = append(f.messages, msg)
	f.mu.Unlock()

	w.WriteHeader(http.StatusAccepted)
}
