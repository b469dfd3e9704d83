package services

import (
	"testing"

	"kickabout_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailGuardKey(t *testing.T) {
	assert.Equal(t, "email#alice@example.com", emailGuardKey("alice@example.com"))
}

func TestRegisterTransactionGuardsEmail(t *testing.T) {
	user := models.User{
		UserID:   "u1",
		FullName: "Alice",
		EmailID:  "alice@example.com",
		Password: "hashed",
		Level:    models.LevelGood,
	}

	items, err := registerTransaction(user)
	require.NoError(t, err)
	require.Len(t, items, 2)

	guard := items[0].Put
	require.NotNil(t, guard)
	assert.Equal(t, models.UsersTable, *guard.TableName)
	assert.Equal(t, "attribute_not_exists(userId)", *guard.ConditionExpression)
	guardID, ok := guard.Item["userId"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "email#alice@example.com", guardID.Value)
	owner, ok := guard.Item["ownerId"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "u1", owner.Value)

	record := items[1].Put
	require.NotNil(t, record)
	assert.Equal(t, models.UsersTable, *record.TableName)
	assert.Equal(t, "attribute_not_exists(userId)", *record.ConditionExpression)
	recordID, ok := record.Item["userId"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "u1", recordID.Value)
}
