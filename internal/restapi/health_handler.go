package restapi

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// healthHandler answers liveness probes.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, healthResponse{Status: "ok"})
}
