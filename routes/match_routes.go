package routes

import (
	"kickabout_server/controllers"
	"kickabout_server/middleware"
	"kickabout_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, chatService *services.ChatService) {
	controller := controllers.NewMatchController(matchService)
	chat := controllers.NewChatController(chatService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	// Public routes
	matchRouter.HandleFunc("/available", controller.ListAvailable).Methods("GET")
	matchRouter.HandleFunc("/mymatches/{userId}", controller.MyMatches).Methods("GET")
	matchRouter.HandleFunc("/{matchId}/participants", controller.Participants).Methods("GET")
	matchRouter.HandleFunc("/{id}", controller.GetMatch).Methods("GET")

	// Routes requiring a valid bearer token. Room history rides here: the
	// relay's joinRoom has no identity to check, so the token on replay is
	// the membership control.
	protected := r.PathPrefix("/api/matches").Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.HandleFunc("/{matchId}/messages", chat.RoomHistory).Methods("GET")
	protected.HandleFunc("/create", controller.CreateMatch).Methods("POST")
	protected.HandleFunc("/join/{id}", controller.JoinMatch).Methods("PUT")
	protected.HandleFunc("/quit/{id}", controller.QuitMatch).Methods("PUT")
	protected.HandleFunc("/{id}", controller.DeleteMatch).Methods("DELETE")
}
