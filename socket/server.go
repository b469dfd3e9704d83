package socket

import (
	"context"

	"kickabout_server/services"

	socketio "github.com/googollee/go-socket.io"
	log "github.com/sirupsen/logrus"
)

// ChatPayload is the client-to-server chatMessage event body.
type ChatPayload struct {
	RoomID  string `json:"roomId"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// RoomMessage is broadcast to every connection in the room, sender included.
type RoomMessage struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// BuildRoomMessage shapes the broadcast body from a sender name and the
// persisted message fields.
func BuildRoomMessage(username, message, timestamp string) RoomMessage {
	return RoomMessage{
		Username:  username,
		Message:   message,
		Timestamp: timestamp,
	}
}

// NewRelayServer initializes the Socket.IO relay. One room per match; the
// room registry is process-local, so clients re-join after a restart.
func NewRelayServer(users *services.UserService, chat *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	// joinRoom subscribes the connection to a match's room. Anyone who knows
	// the room id may join; history reads are guarded at the HTTP layer.
	server.OnEvent("/", "joinRoom", func(c socketio.Conn, roomID string) {
		if roomID == "" {
			log.Println("Ignoring joinRoom with empty room id")
			return
		}
		c.Join(roomID)
		log.Printf("Connection %s joined room %s", c.ID(), roomID)
	})

	// chatMessage persists the message, then broadcasts it to the room. A
	// failed sender lookup is logged and nothing is emitted.
	server.OnEvent("/", "chatMessage", func(c socketio.Conn, payload ChatPayload) {
		if payload.RoomID == "" || payload.UserID == "" || payload.Message == "" {
			log.Printf("Ignoring chatMessage with missing fields: %+v", payload)
			return
		}

		ctx := context.Background()
		sender, err := users.GetUser(ctx, payload.UserID)
		if err != nil {
			log.Printf("Error resolving sender %s: %v", payload.UserID, err)
			return
		}

		stored, err := chat.AddMessage(ctx, payload.RoomID, payload.UserID, payload.Message)
		if err != nil {
			log.Printf("Error sending message: %v", err)
			return
		}

		server.BroadcastToRoom("/", payload.RoomID, "message",
			BuildRoomMessage(sender.FullName, stored.Content, stored.CreatedAt))
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("Socket error: %v", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		c.LeaveAll()
		log.Printf("Socket disconnected: %s (%s)", c.ID(), reason)
	})

	return server
}
