package routes

import (
	"net/http"

	"chatprobe/chatprobe/controllers"
	"chatprobe/chatprobe/types"

	"github.com/go-chi/chi/v5"
)

func ChatRoutes(r chi.Router, ctrl *controllers.ChatController) {
	r.Group(func(gr chi.Router) {
		// POST /chats/ : open a chat for a user
		gr.Post("/chats/", handleJSON(func(r *http.Request) (any, int, error) {
			var req createChatRequest
			if err := decodeBody(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validateBody(&req); err != nil {
				return nil, 0, err
			}
			id, err := ctrl.CreateChat(r.Context(), types.UserID(*req.UserID))
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return id, http.StatusOK, nil
		}))

		// POST /messages/ : append a message to a chat
		gr.Post("/messages/", handleJSON(func(r *http.Request) (any, int, error) {
			var req createMessageRequest
			if err := decodeBody(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validateBody(&req); err != nil {
				return nil, 0, err
			}
			id, err := ctrl.CreateMessage(r.Context(), types.NewMessage{
				ChatID:  types.ChatID(*req.ChatID),
				Sender:  *req.Sender,
				Content: *req.Content,
			})
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return id, http.StatusOK, nil
		}))

		// GET /chats/{chat_id}/messages : history, oldest first
		gr.Get("/chats/{chat_id}/messages", handleJSON(func(r *http.Request) (any, int, error) {
			raw := chi.URLParam(r, "chat_id")
			if err := validatePath("chat_id", raw, "required,uuid"); err != nil {
				return nil, 0, err
			}
			msgs, err := ctrl.GetMessages(r.Context(), types.ChatID(raw))
			if err != nil {
				return nil, http.StatusNotFound, err
			}
			return msgs, http.StatusOK, nil
		}))

		// GET /chats/{user_id} : {"chat_ids": [...]}
		gr.Get("/chats/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
			res, err := ctrl.ListChats(r.Context(), types.UserID(chi.URLParam(r, "user_id")))
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return res, http.StatusOK, nil
		}))
	})
}
