package models

// Message is a persisted chat message. Messages are immutable once stored;
// there is no update or delete path.
type Message struct {
	RoomID    string `dynamodbav:"roomId" json:"roomId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
}
