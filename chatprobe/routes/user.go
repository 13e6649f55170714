package routes

import (
	"net/http"

	"chatprobe/chatprobe/controllers"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(r chi.Router, ctrl *controllers.UserController) {
	// POST /signup : register or look up a user, answers the id as a JSON string
	r.Post("/signup", handleJSON(func(r *http.Request) (any, int, error) {
		var req signupRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, 0, err
		}
		if err := validateBody(&req); err != nil {
			return nil, 0, err
		}
		id, err := ctrl.Signup(r.Context(), *req.Username)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return id, http.StatusOK, nil
	}))
}
