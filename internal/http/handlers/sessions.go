package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"studio/internal/infra"
	"studio/internal/sqlinline"
)

// Session state is an opaque JSON blob owned by the frontend. The server
// validates shape only: a syntactically valid JSON document under 1 MiB.
const maxSessionBytes = 1 << 20

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

func (a *App) SessionGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !sessionIDPattern.MatchString(id) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid session id")
		return
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectSession, id)
	var state []byte
	if err := row.Scan(&state); err != nil {
		if infra.IsNoRows(err) {
			a.error(w, http.StatusNotFound, "not_found", "session not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load session")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(state)
}

func (a *App) SessionPut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !sessionIDPattern.MatchString(id) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid session id")
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSessionBytes+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read body")
		return
	}
	if len(body) > maxSessionBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "session state exceeds 1 MiB")
		return
	}
	if !json.Valid(body) {
		a.error(w, http.StatusBadRequest, "bad_request", "session state must be valid JSON")
		return
	}
	if _, err := a.SQL.Exec(r.Context(), sqlinline.QUpsertSession, id, body); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to save session")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"id": id, "status": "saved"})
}

func (a *App) SessionDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !sessionIDPattern.MatchString(id) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid session id")
		return
	}
	if _, err := a.SQL.Exec(r.Context(), sqlinline.QDeleteSession, id); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
