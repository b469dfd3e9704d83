package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"kickabout_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ChatService struct
type ChatService struct {
	Dynamo *DynamoService
}

// AddMessage persists a chat message with a server-assigned timestamp and
// returns the stored record.
func (s *ChatService) AddMessage(ctx context.Context, roomID, senderID, content string) (*models.Message, error) {
	message := models.Message{
		RoomID:    roomID,
		CreatedAt: time.Now().Format(time.RFC3339Nano),
		MessageID: uuid.New().String(),
		SenderID:  senderID,
		Content:   content,
	}

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		log.Printf("Failed to store message for room %s: %v", roomID, err)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// GetMessagesByRoom fetches the chat history of a room, oldest first, so
// clients can replay it in order.
func (s *ChatService) GetMessagesByRoom(ctx context.Context, roomID string, limit int) ([]models.Message, error) {
	keyCondition := "#roomId = :roomId"
	expressionValues := map[string]types.AttributeValue{
		":roomId": &types.AttributeValueMemberS{Value: roomID},
	}
	expressionNames := map[string]string{
		"#roomId": "roomId",
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}
