package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/TerrenceTakunda/ekpm/internal/middleware"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// callerID pulls the authenticated user id the auth middleware stored.
// Writes the 401 itself so handlers can just return on !ok.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing userID in context", nil,
		)
		return 0, false
	}
	return userID, true
}

// pathID parses a numeric mux path variable. Routes constrain these to
// digits, so a failure here means a route registration bug.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid path parameter", nil, err,
		)
		return 0, false
	}
	return id, true
}

// decodeJSON reads the request body into dst and reports a 400 on
// malformed JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err,
		)
		return false
	}
	return true
}

// pageParam reads the raw ?page= value; resolution and clamping happen
// in the service layer.
func pageParam(r *http.Request) string {
	return r.URL.Query().Get("page")
}
