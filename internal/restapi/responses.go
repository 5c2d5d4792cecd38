package restapi

import (
	"encoding/json"
	"net/http"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response any) {
	api.sendJSON(w, r, http.StatusOK, response)
}

func (api *RestAPI) sendJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}
