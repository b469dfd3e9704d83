package services

import (
	"context"
	"errors"
	"fmt"

	"kickabout_server/auth"
	"kickabout_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type UserService struct {
	Dynamo *DynamoService
}

// Email uniqueness is enforced at the store by a guard record keyed on the
// email, written in the same transaction as the user record. The original
// schema relied on a unique index for this.
const emailGuardPrefix = "email#"

func emailGuardKey(emailID string) string {
	return emailGuardPrefix + emailID
}

// registerTransaction builds the atomic pair of writes for a new account:
// the user record plus the email guard, each behind attribute_not_exists so
// two concurrent registrations with the same email cannot both persist.
func registerTransaction(user models.User) ([]types.TransactWriteItem, error) {
	userItem, err := attributevalue.MarshalMap(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	guardItem := map[string]types.AttributeValue{
		"userId":  &types.AttributeValueMemberS{Value: emailGuardKey(user.EmailID)},
		"ownerId": &types.AttributeValueMemberS{Value: user.UserID},
	}

	return []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:           aws.String(models.UsersTable),
			Item:                guardItem,
			ConditionExpression: aws.String("attribute_not_exists(userId)"),
		}},
		{Put: &types.Put{
			TableName:           aws.String(models.UsersTable),
			Item:                userItem,
			ConditionExpression: aws.String("attribute_not_exists(userId)"),
		}},
	}, nil
}

// Register creates a new account. The password is hashed before persistence
// and the email must not already be in use.
func (us *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := us.GetUserByEmail(ctx, req.EmailID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:    uuid.New().String(),
		FullName:  req.FullName,
		EmailID:   req.EmailID,
		Password:  hash,
		Birthdate: req.Birthdate,
		Level:     req.Level,
	}

	items, err := registerTransaction(user)
	if err != nil {
		return nil, err
	}
	if err := us.Dynamo.TransactWriteItems(ctx, items); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			// Lost the guard put: someone registered this email first.
			return nil, models.ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("Registered user %s (%s)", user.UserID, user.EmailID)
	return &user, nil
}

// Authenticate checks credentials and returns the user plus a signed token.
func (us *UserService) Authenticate(ctx context.Context, emailID, password string) (*models.User, string, error) {
	user, err := us.GetUserByEmail(ctx, emailID)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		return nil, "", models.ErrBadCredential
	}

	token, err := auth.CreateJWT(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create token: %w", err)
	}
	return user, token, nil
}

// GetUser retrieves an account by ID.
func (us *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, StringKey("userId", userID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail scans for an account by email. Returns nil without error
// when no account matches.
func (us *UserService) GetUserByEmail(ctx context.Context, emailID string) (*models.User, error) {
	var users []models.User
	err := us.Dynamo.ScanItems(ctx, models.UsersTable,
		"emailId = :emailId",
		map[string]types.AttributeValue{
			":emailId": &types.AttributeValueMemberS{Value: emailID},
		},
		nil,
		&users,
	)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// ListUsers returns all accounts. Email guard records share the table, so
// the scan filters them out.
func (us *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := us.Dynamo.ScanItems(ctx, models.UsersTable,
		"NOT begins_with(userId, :guard)",
		map[string]types.AttributeValue{
			":guard": &types.AttributeValueMemberS{Value: emailGuardPrefix},
		},
		nil,
		&users,
	)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies the mutable profile fields, re-hashing the password
// when one is supplied. Normalization happens here, not in a store hook, so
// the write path is explicit.
func (us *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	current, err := us.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.EmailID != "" && req.EmailID != current.EmailID {
		// Claim the new email before rewriting the record. The guard put
		// fails when another account already holds it.
		items := []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(models.UsersTable),
				Item: map[string]types.AttributeValue{
					"userId":  &types.AttributeValueMemberS{Value: emailGuardKey(req.EmailID)},
					"ownerId": &types.AttributeValueMemberS{Value: userID},
				},
				ConditionExpression: aws.String("attribute_not_exists(userId)"),
			}},
			{Delete: &types.Delete{
				TableName: aws.String(models.UsersTable),
				Key:       StringKey("userId", emailGuardKey(current.EmailID)),
			}},
		}
		if err := us.Dynamo.TransactWriteItems(ctx, items); err != nil {
			if errors.Is(err, ErrConditionFailed) {
				return nil, models.ErrEmailTaken
			}
			return nil, err
		}
	}

	updates := map[string]string{}
	if req.FullName != "" {
		updates["fullName"] = req.FullName
	}
	if req.EmailID != "" {
		updates["emailId"] = req.EmailID
	}
	if req.Birthdate != "" {
		updates["birthdate"] = req.Birthdate
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = hash
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)
	for k, v := range updates {
		updateExpression += " #" + k + " = :" + k + ","
		expressionAttributeValues[":"+k] = &types.AttributeValueMemberS{Value: v}
		expressionAttributeNames["#"+k] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression,
		StringKey("userId", userID), expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updated models.User
	if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	log.Printf("Updated profile for user %s", userID)
	return &updated, nil
}

// DeleteUser removes an account along with its email guard record.
func (us *UserService) DeleteUser(ctx context.Context, userID string) error {
	user, err := us.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := us.Dynamo.DeleteItem(ctx, models.UsersTable, StringKey("userId", emailGuardKey(user.EmailID))); err != nil {
		return err
	}
	return us.Dynamo.DeleteItem(ctx, models.UsersTable, StringKey("userId", userID))
}

// SetPhoto records the storage key of an uploaded profile photo.
func (us *UserService) SetPhoto(ctx context.Context, userID, photoKey string) (*models.User, error) {
	if _, err := us.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	updatedItem, err := us.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET photo = :photo",
		StringKey("userId", userID),
		map[string]types.AttributeValue{
			":photo": &types.AttributeValueMemberS{Value: photoKey},
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	var updated models.User
	if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	return &updated, nil
}

// ClearPhoto drops the photo reference. Fails when there is nothing to clear.
func (us *UserService) ClearPhoto(ctx context.Context, userID string) error {
	user, err := us.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Photo == "" {
		return models.ErrNoPhoto
	}

	_, err = us.Dynamo.UpdateItemWithCondition(ctx, models.UsersTable,
		"REMOVE photo", "attribute_exists(photo)",
		StringKey("userId", userID), nil, nil)
	if errors.Is(err, ErrConditionFailed) {
		return models.ErrNoPhoto
	}
	return err
}
