package routes

import (
	"time"

	"chatprobe/chatprobe/controllers"
	"chatprobe/chatprobe/middlewares"
	"chatprobe/chatprobe/sources/memstore"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the stub chat service on top of store. Application events
// go to appLog, one line per request to requestLog.
func NewRouter(store *memstore.Store, appLog, requestLog *zap.Logger) chi.Router {
	userCtrl := controllers.NewUserController(store, appLog)
	chatCtrl := controllers.NewChatController(store, appLog)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger(requestLog))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", HealthRoutes(controllers.NewHealthController()))
	UserRoutes(r, userCtrl)
	ChatRoutes(r, chatCtrl)
	return r
}
