package routes

import (
	"kickabout_server/controllers"
	"kickabout_server/middleware"
	"kickabout_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for account operations under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, matchService *services.MatchService) {
	controller := controllers.NewUserController(userService, matchService)
	photos := controllers.NewPhotoController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	// Public routes
	userRouter.HandleFunc("/register", controller.Register).Methods("POST")
	userRouter.HandleFunc("/login", controller.Login).Methods("POST")
	userRouter.HandleFunc("", controller.ListUsers).Methods("GET")
	userRouter.HandleFunc("/{userId}/joined-matches", controller.JoinedMatches).Methods("GET")
	userRouter.HandleFunc("/{id}", controller.GetUser).Methods("GET")

	// Routes requiring a valid bearer token
	protected := r.PathPrefix("/api/users").Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.HandleFunc("/update/{userId}", controller.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/{id}", controller.DeleteUser).Methods("DELETE")
	protected.HandleFunc("/{id}/photo-upload-url", photos.UploadURL).Methods("POST")
	protected.HandleFunc("/{id}/photo", photos.ConfirmUpload).Methods("POST")
	protected.HandleFunc("/{id}/photo", photos.DeletePhoto).Methods("DELETE")
}
