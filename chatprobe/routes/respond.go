package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"chatprobe/chatprobe/types"
)

// errValidation marks a request the service refuses to process (422).
type errValidation struct {
	issues []types.ValidationIssue
}

func (e *errValidation) Error() string {
	if len(e.issues) == 0 {
		return "validation error"
	}
	return e.issues[0].Msg
}

func invalid(loc []string, msg, typ string) error {
	return &errValidation{issues: []types.ValidationIssue{{Loc: loc, Msg: msg, Type: typ}}}
}

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			var verr *errValidation
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusUnprocessableEntity, types.ErrorResponse{Detail: verr.issues})
				return
			}
			if status == 0 {
				status = http.StatusInternalServerError
			}
			writeJSON(w, status, types.ErrorResponse{Detail: err.Error()})
			return
		}
		writeJSON(w, status, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeBody reads a JSON object into dst.
func decodeBody(r *http.Request, dst any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return invalid([]string{"body"}, err.Error(), "value_error")
	}
	if len(data) == 0 {
		return invalid([]string{"body"}, "field required", "value_error.missing")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return invalid([]string{"body"}, err.Error(), "value_error.jsondecode")
	}
	return nil
}
