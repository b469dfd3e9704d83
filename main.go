package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"kickabout_server/auth"
	"kickabout_server/middleware"
	"kickabout_server/routes"
	"kickabout_server/services"
	"kickabout_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err := auth.Init(); err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	// Initialize DynamoDB client and services
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	userService := &services.UserService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService, Users: userService}
	chatService := &services.ChatService{Dynamo: dynamoService}

	// Start the expiry sweeper
	sweeper := &services.Sweeper{
		Matches:  matchService,
		Interval: services.SweepIntervalFromEnv(),
	}
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sweeper.Run(sweepCtx)

	// Start the realtime relay
	relay := socket.NewRelayServer(userService, chatService)
	go func() {
		if err := relay.Serve(); err != nil {
			log.Fatalf("Socket.IO serve error: %v", err)
		}
	}()
	defer relay.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Kickabout")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/socket.io/", relay)

	// Register routes
	routes.RegisterUserRoutes(r, userService, matchService)
	routes.RegisterMatchRoutes(r, matchService, chatService)

	r.Use(middleware.LogRequests(log.StandardLogger()))

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
