package controllers

import (
	"net/http"
	"strconv"

	"kickabout_server/models"
	"kickabout_server/services"
	"kickabout_server/utils"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// RoomHistory returns the persisted messages of a match's room, oldest
// first, for history replay.
func (c *ChatController) RoomHistory(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.GetMessagesByRoom(r.Context(), matchID, limit)
	if err != nil {
		log.Printf("Error fetching messages for room %s: %v", matchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	utils.WriteJSON(w, http.StatusOK, messages)
}
