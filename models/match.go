package models

// Match defines the structure for a scheduled pickup game
type Match struct {
	MatchID         string   `dynamodbav:"matchId" json:"matchId"`
	Location        string   `dynamodbav:"location" json:"location"`
	Date            string   `dynamodbav:"date" json:"date"` // YYYY-MM-DD
	Time            string   `dynamodbav:"time" json:"time"` // HH:MM
	PlayersNeeded   int      `dynamodbav:"playersNeeded" json:"playersNeeded"`
	InitialCapacity int      `dynamodbav:"initialCapacity" json:"initialCapacity"`
	CreatorID       string   `dynamodbav:"creatorId" json:"creatorId"`
	CreatorName     string   `dynamodbav:"creatorName,omitempty" json:"creatorName,omitempty"`
	Participants    []string `dynamodbav:"participants" json:"participants"`
}

// HasParticipant reports whether the user is already in the participant list.
func (m *Match) HasParticipant(userID string) bool {
	for _, p := range m.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ParticipantIndex returns the position of the user in the participant list,
// or -1 when absent.
func (m *Match) ParticipantIndex(userID string) int {
	for i, p := range m.Participants {
		if p == userID {
			return i
		}
	}
	return -1
}
