package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/siteforge"
)

// errorResponse is the wire shape of every error payload.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// codeStatus maps domain error codes to HTTP status codes.
var codeStatus = map[string]int{
	siteforge.ECONFLICT:    http.StatusConflict,
	siteforge.EINVALID:     http.StatusBadRequest,
	siteforge.ENOTFOUND:    http.StatusNotFound,
	siteforge.ERATELIMIT:   http.StatusTooManyRequests,
	siteforge.ETIMEOUT:     http.StatusGatewayTimeout,
	siteforge.EUNAVAILABLE: http.StatusServiceUnavailable,
	siteforge.EINTERNAL:    http.StatusInternalServerError,
}

// writeError renders err as a structured JSON payload. Internal error
// detail never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	code := siteforge.ErrorCode(err)
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := siteforge.ErrorMessage(err)
	if code == siteforge.EINTERNAL {
		message = "An internal error has occurred."
	}

	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeJSON renders v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into v, converting syntax problems to
// EINVALID.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return siteforge.Errorf(siteforge.EINVALID, "invalid request body: %s", err)
	}
	return nil
}

// sanitizeFacts trims and strips angle brackets from every stored or
// displayed fact field.
func sanitizeFacts(f siteforge.BusinessFacts) siteforge.BusinessFacts {
	return siteforge.BusinessFacts{
		Name:        siteforge.Sanitize(f.Name),
		Industry:    siteforge.Sanitize(f.Industry),
		Owner:       siteforge.Sanitize(f.Owner),
		Email:       siteforge.Sanitize(f.Email),
		Phone:       siteforge.Sanitize(f.Phone),
		Services:    siteforge.Sanitize(f.Services),
		Issues:      siteforge.Sanitize(f.Issues),
		Location:    siteforge.Sanitize(f.Location),
		Description: siteforge.Sanitize(f.Description),
	}
}
