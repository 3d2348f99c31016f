package handler

import (
	"net/http"

	"github.com/msomdec/stackit/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, forum *service.ForumService, tokens *service.TokenService) {
	authHandler := NewAuthHandler(auth)
	questionHandler := NewQuestionHandler(forum)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/login", authHandler.HandleLogin)

	mux.Handle("POST /api/questions", RequireAuth(tokens, http.HandlerFunc(questionHandler.HandleCreate)))
	mux.HandleFunc("GET /api/questions", questionHandler.HandleList)
	mux.HandleFunc("GET /api/questions/{id}", questionHandler.HandleGet)
	mux.Handle("POST /api/questions/{id}/answers", RequireAuth(tokens, http.HandlerFunc(questionHandler.HandleCreateAnswer)))

	// Unknown API paths get a JSON 404 instead of the mux default.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "API endpoint not found")
	})
}
