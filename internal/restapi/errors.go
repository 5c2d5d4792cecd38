package restapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

// errorResponse is the payload of every non-200 answer.
type errorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func newErrorResponse(message string) errorResponse {
	return errorResponse{
		Error:     message,
		Timestamp: time.Now().UTC().Format(models.ErrorTimestampLayout),
	}
}

// invalidRouteResponse sends a 400 Bad Request for an unknown route
// parameter.
func (api *RestAPI) invalidRouteResponse(w http.ResponseWriter, r *http.Request, route string) {
	api.sendJSON(w, r, http.StatusBadRequest, newErrorResponse(fmt.Sprintf("Invalid route: %s", route)))
}
