package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jandkbailey21/FDG-Discord-Bot/controller"
	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/model"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(render *render.Render, w http.ResponseWriter, status int, format string, args ...any) {
	render.JSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

// errorStatus maps a controller error to an HTTP status. Caller mistakes
// carry controller.ErrInvalidInput; anything else is an internal fault.
func errorStatus(err error) int {
	if errors.Is(err, controller.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "fdg league manager")
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		var err error
		var results []model.Player = nil
		if query != "" {
			results, err = ctrl.Search(r.Context(), query)
			if err != nil {
				jsonError(render, w, http.StatusInternalServerError, "%v", err)
				return
			}
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"q":       query,
			"results": results,
		})
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				jsonError(render, w, http.StatusNotFound, "player not found")
			} else {
				jsonError(render, w, http.StatusInternalServerError, "%v", err)
			}
			return
		}

		render.JSON(w, http.StatusOK, p)
	}
}

func poolHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListActivePlayers(r.Context())
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func ownershipHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := ctrl.OwnershipSnapshot(r.Context())
		if err != nil {
			if errors.Is(err, db.ErrNoDraftBaseline) {
				jsonError(render, w, http.StatusNotFound, "no draft baseline recorded")
			} else {
				jsonError(render, w, http.StatusInternalServerError, "%v", err)
			}
			return
		}

		owners := make(map[string]string, len(snapshot.OwnerByPlayer))
		for id, team := range snapshot.OwnerByPlayer {
			owners[id] = team.String()
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"owners": owners,
			"counts": snapshot.CountByTeam,
		})
	}
}

func rosterHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		roster, err := ctrl.RosterForTeam(r.Context(), team)
		if err != nil {
			jsonError(render, w, errorStatus(err), "%v", err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"team":   team,
			"roster": roster,
		})
	}
}

func listTransactionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactions, err := ctrl.ListTransactions(r.Context())
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, transactions)
	}
}

func submitTransactionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var proposed model.ProposedTransaction
		if err := json.NewDecoder(r.Body).Decode(&proposed); err != nil {
			jsonError(render, w, http.StatusBadRequest, "error parsing transaction: %v", err)
			return
		}

		validateOnly := proposed.ValidateOnly() || r.URL.Query().Get("mode") == "validate"

		var result *model.ValidationResult
		var err error
		if validateOnly {
			result, err = ctrl.ValidateTransaction(r.Context(), &proposed)
		} else {
			result, err = ctrl.SubmitTransaction(r.Context(), &proposed)
		}
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}

		status := http.StatusOK
		if !result.OK && !validateOnly {
			status = http.StatusConflict
		}
		render.JSON(w, status, result)
	}
}

type waiverSubmission struct {
	CycleID     string             `json:"cycleId"`
	Team        string             `json:"team"`
	SubmittedBy string             `json:"submittedBy"`
	Picks       []model.WaiverPick `json:"picks"`
}

func submitWaiverRequestsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub waiverSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			jsonError(render, w, http.StatusBadRequest, "error parsing waiver submission: %v", err)
			return
		}

		result, err := ctrl.SubmitWaiverRequests(r.Context(), sub.CycleID, sub.Team, sub.SubmittedBy, sub.Picks)
		if err != nil {
			jsonError(render, w, errorStatus(err), "%v", err)
			return
		}

		status := http.StatusOK
		if !result.OK {
			status = http.StatusConflict
		}
		render.JSON(w, status, result)
	}
}

func getWaiverRequestsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cycleID := chi.URLParam(r, "cycleID")
		requests, err := ctrl.GetActiveRequests(r.Context(), cycleID)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, requests)
	}
}

type waiverRun struct {
	CycleID   string `json:"cycleId"`
	EventName string `json:"eventName"`
}

func runWaiversHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var run waiverRun
		if err := json.NewDecoder(r.Body).Decode(&run); err != nil {
			jsonError(render, w, http.StatusBadRequest, "error parsing waiver run: %v", err)
			return
		}

		result, err := ctrl.RunWaivers(r.Context(), run.CycleID, run.EventName)
		if err != nil {
			jsonError(render, w, errorStatus(err), "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, result)
	}
}

func getWaiverAwardsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cycleID := chi.URLParam(r, "cycleID")
		awards, err := ctrl.ListAwards(r.Context(), cycleID)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, awards)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cycleID := chi.URLParam(r, "cycleID")
		standings, err := ctrl.GetStandings(r.Context(), cycleID)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.Text(w, http.StatusOK, "players updated successfully")
	}
}
