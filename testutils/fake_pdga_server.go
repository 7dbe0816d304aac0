package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed pdgadata
var pdgadata embed.FS

type FakePDGAServer struct {
	s *httptest.Server
}

func NewFakePDGAServer() *FakePDGAServer {
	r := chi.NewRouter()
	r.Route("/services/json", func(r chi.Router) {
		r.Get("/players", poolPlayersHandler)
	})

	return &FakePDGAServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakePDGAServer) Close() {
	f.s.Close()
}

func (f *FakePDGAServer) URL() string {
	return f.s.URL
}

func poolPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := pdgadata.ReadFile(fmt.Sprintf("pdgadata/%s", name))
	if err != nil {
		log.Printf("error reading pdgadata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
