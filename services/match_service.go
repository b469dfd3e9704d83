package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"kickabout_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type MatchService struct {
	Dynamo *DynamoService
	Users  *UserService
}

// CreateMatch stores a new match seeded with the creator as its first
// participant.
func (ms *MatchService) CreateMatch(ctx context.Context, req models.CreateMatchRequest) (*models.Match, error) {
	match := req.ToMatch(uuid.New().String())
	if err := ms.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return nil, err
	}
	log.Printf("Created match %s at %s on %s %s", match.MatchID, match.Location, match.Date, match.Time)
	return &match, nil
}

// GetMatch retrieves a match by ID.
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, StringKey("matchId", matchID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, models.ErrMatchNotFound
		}
		return nil, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// classifyJoin applies the participation rules in order. A nil result means
// the user is eligible to join.
func classifyJoin(match *models.Match, userID string) error {
	if match.CreatorID == userID {
		return models.ErrCreatorJoin
	}
	if match.HasParticipant(userID) {
		return models.ErrAlreadyJoined
	}
	if match.PlayersNeeded <= 0 {
		return models.ErrMatchFull
	}
	return nil
}

// JoinMatch adds the user to the match and decrements playersNeeded. The
// mutation is a single conditional update so two concurrent joins can never
// both take the last spot or insert a duplicate participant.
func (ms *MatchService) JoinMatch(ctx context.Context, matchID, userID string) (*models.Match, error) {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := classifyJoin(match, userID); err != nil {
		return nil, err
	}

	updatedItem, err := ms.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable,
		"SET playersNeeded = playersNeeded - :one, participants = list_append(participants, :uidList)",
		"playersNeeded > :zero AND NOT contains(participants, :uid)",
		StringKey("matchId", matchID),
		map[string]types.AttributeValue{
			":one":  &types.AttributeValueMemberN{Value: "1"},
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":uid":  &types.AttributeValueMemberS{Value: userID},
			":uidList": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: userID},
			}},
		},
		nil,
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			// Lost a race; re-read to report the precise reason.
			current, ferr := ms.GetMatch(ctx, matchID)
			if ferr != nil {
				return nil, ferr
			}
			if cerr := classifyJoin(current, userID); cerr != nil {
				return nil, cerr
			}
			return nil, models.ErrMatchFull
		}
		return nil, err
	}

	var updated models.Match
	if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated match: %w", err)
	}
	log.Printf("User %s joined match %s (%d spots left)", userID, matchID, updated.PlayersNeeded)
	return &updated, nil
}

// quitUpdate builds the update and condition expressions for removing the
// participant at idx. The increment of playersNeeded is part of the same
// atomic expression and is only issued while playersNeeded is below the
// initial capacity, so a creator quitting the seat they were seeded with
// (which never decremented the counter) cannot push it past the cap.
func quitUpdate(match *models.Match, idx int) (string, string, map[string]types.AttributeValue) {
	values := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: match.Participants[idx]},
		":cap": &types.AttributeValueMemberN{Value: strconv.Itoa(match.InitialCapacity)},
	}

	if match.PlayersNeeded < match.InitialCapacity {
		values[":one"] = &types.AttributeValueMemberN{Value: "1"}
		return fmt.Sprintf("SET playersNeeded = playersNeeded + :one REMOVE participants[%d]", idx),
			fmt.Sprintf("participants[%d] = :uid AND playersNeeded < :cap", idx),
			values
	}
	return fmt.Sprintf("REMOVE participants[%d]", idx),
		fmt.Sprintf("participants[%d] = :uid AND playersNeeded >= :cap", idx),
		values
}

// QuitMatch removes the user from the match. Quitting a match the user never
// joined is a no-op success; playersNeeded is incremented only when a
// participant was actually removed and only up to the initial capacity, so
// it never exceeds it.
func (ms *MatchService) QuitMatch(ctx context.Context, matchID, userID string) (*models.Match, error) {
	// The removal is index-based, so the condition re-checks that the index
	// still holds this user and the write retries when something moved.
	for attempt := 0; attempt < 3; attempt++ {
		match, err := ms.GetMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}

		idx := match.ParticipantIndex(userID)
		if idx < 0 {
			return match, nil
		}

		updateExpression, conditionExpression, values := quitUpdate(match, idx)
		updatedItem, err := ms.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable,
			updateExpression, conditionExpression,
			StringKey("matchId", matchID), values, nil,
		)
		if err != nil {
			if errors.Is(err, ErrConditionFailed) {
				continue
			}
			return nil, err
		}

		var updated models.Match
		if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
			return nil, fmt.Errorf("failed to unmarshal updated match: %w", err)
		}
		log.Printf("User %s quit match %s (%d spots open)", userID, matchID, updated.PlayersNeeded)
		return &updated, nil
	}
	return nil, fmt.Errorf("failed to quit match %s: too much contention", matchID)
}

// ListAvailable returns matches that still need players.
func (ms *MatchService) ListAvailable(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanItems(ctx, models.MatchesTable,
		"playersNeeded > :zero",
		map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
		nil,
		&matches,
	)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ListByCreator returns the matches a user created.
func (ms *MatchService) ListByCreator(ctx context.Context, creatorID string) ([]models.Match, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanItems(ctx, models.MatchesTable,
		"creatorId = :creatorId",
		map[string]types.AttributeValue{
			":creatorId": &types.AttributeValueMemberS{Value: creatorID},
		},
		nil,
		&matches,
	)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ListJoined returns the matches a user participates in.
func (ms *MatchService) ListJoined(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanItems(ctx, models.MatchesTable,
		"contains(participants, :uid)",
		map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		&matches,
	)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Participants resolves the participant IDs of a match to user records.
// Participants that no longer resolve are skipped.
func (ms *MatchService) Participants(ctx context.Context, matchID string) ([]models.User, error) {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	participants := make([]models.User, 0, len(match.Participants))
	for _, id := range match.Participants {
		user, err := ms.Users.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		participants = append(participants, *user)
	}
	return participants, nil
}

// DeleteMatch removes a match.
func (ms *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	if _, err := ms.GetMatch(ctx, matchID); err != nil {
		return err
	}
	return ms.Dynamo.DeleteItem(ctx, models.MatchesTable, StringKey("matchId", matchID))
}

// DeleteMatches removes the given matches in one batch write.
func (ms *MatchService) DeleteMatches(ctx context.Context, matches []models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(matches))
	for _, m := range matches {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: StringKey("matchId", m.MatchID),
			},
		})
	}
	return ms.Dynamo.BatchWriteItems(ctx, models.MatchesTable, writeRequests)
}

// ListScheduledOnOrBefore returns matches whose date is on or before the
// given day (YYYY-MM-DD). Used by the expiry sweep, which then narrows by
// the stored HH:MM time.
func (ms *MatchService) ListScheduledOnOrBefore(ctx context.Context, day string) ([]models.Match, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanItems(ctx, models.MatchesTable,
		"#date <= :day",
		map[string]types.AttributeValue{
			":day": &types.AttributeValueMemberS{Value: day},
		},
		map[string]string{
			"#date": "date", // "date" is a DynamoDB reserved word
		},
		&matches,
	)
	if err != nil {
		return nil, err
	}
	return matches, nil
}
