package socket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoomMessage(t *testing.T) {
	msg := BuildRoomMessage("Sam Carter", "hi", "2030-06-15T12:00:00Z")

	assert.Equal(t, "Sam Carter", msg.Username)
	assert.Equal(t, "hi", msg.Message)
	assert.Equal(t, "2030-06-15T12:00:00Z", msg.Timestamp)
}

func TestRoomMessageWireFormat(t *testing.T) {
	raw, err := json.Marshal(BuildRoomMessage("Sam Carter", "hi", "2030-06-15T12:00:00Z"))
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Clients listen for {username, message, timestamp}.
	assert.Equal(t, "Sam Carter", decoded["username"])
	assert.Equal(t, "hi", decoded["message"])
	assert.Equal(t, "2030-06-15T12:00:00Z", decoded["timestamp"])
}

func TestChatPayloadDecoding(t *testing.T) {
	var payload ChatPayload
	err := json.Unmarshal([]byte(`{"roomId":"m1","userId":"u2","message":"hi"}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, "m1", payload.RoomID)
	assert.Equal(t, "u2", payload.UserID)
	assert.Equal(t, "hi", payload.Message)
}
