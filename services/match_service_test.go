package services

import (
	"testing"

	"kickabout_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch(needed int, participants ...string) *models.Match {
	return &models.Match{
		MatchID:         "m1",
		Location:        "Riverside pitch",
		Date:            "2031-05-01",
		Time:            "18:30",
		PlayersNeeded:   needed,
		InitialCapacity: 10,
		CreatorID:       "u1",
		Participants:    append([]string{"u1"}, participants...),
	}
}

func TestClassifyJoinCreatorRejected(t *testing.T) {
	m := testMatch(5)
	assert.ErrorIs(t, classifyJoin(m, "u1"), models.ErrCreatorJoin)

	// The creator is rejected regardless of remaining capacity.
	m.PlayersNeeded = 0
	assert.ErrorIs(t, classifyJoin(m, "u1"), models.ErrCreatorJoin)
}

func TestClassifyJoinAlreadyJoined(t *testing.T) {
	m := testMatch(5, "u2")
	assert.ErrorIs(t, classifyJoin(m, "u2"), models.ErrAlreadyJoined)
}

func TestClassifyJoinFull(t *testing.T) {
	m := testMatch(0, "u2")
	assert.ErrorIs(t, classifyJoin(m, "u3"), models.ErrMatchFull)
}

func TestClassifyJoinEligible(t *testing.T) {
	m := testMatch(1)
	assert.NoError(t, classifyJoin(m, "u2"))
}

func TestClassifyJoinOrderOfChecks(t *testing.T) {
	// A creator who somehow appears in the participant list is still
	// reported as the creator, and a full match reports already-joined for
	// its own participants rather than full.
	m := testMatch(0, "u2")
	assert.ErrorIs(t, classifyJoin(m, "u1"), models.ErrCreatorJoin)
	assert.ErrorIs(t, classifyJoin(m, "u2"), models.ErrAlreadyJoined)
}

// Walks the capacity bookkeeping through the documented scenario:
// capacity 1, u2 joins, u3 is rejected, u2 quits.
func TestCapacityScenario(t *testing.T) {
	req := models.CreateMatchRequest{
		Location:      "Riverside pitch",
		Date:          "2031-05-01",
		Time:          "18:30",
		PlayersNeeded: 1,
		CreatorID:     "u1",
	}
	require.NoError(t, req.Validate())
	m := req.ToMatch("m1")

	require.Equal(t, []string{"u1"}, m.Participants)
	require.Equal(t, 1, m.PlayersNeeded)
	require.Equal(t, 1, m.InitialCapacity)

	// u2 joins
	require.NoError(t, classifyJoin(&m, "u2"))
	m.Participants = append(m.Participants, "u2")
	m.PlayersNeeded--
	assert.Equal(t, 0, m.PlayersNeeded)
	assert.Equal(t, []string{"u1", "u2"}, m.Participants)

	// u3 is rejected: the match is full
	assert.ErrorIs(t, classifyJoin(&m, "u3"), models.ErrMatchFull)

	// u2 quits
	idx := m.ParticipantIndex("u2")
	require.Equal(t, 1, idx)
	m.Participants = append(m.Participants[:idx], m.Participants[idx+1:]...)
	m.PlayersNeeded++
	assert.Equal(t, 1, m.PlayersNeeded)
	assert.Equal(t, []string{"u1"}, m.Participants)

	// Quitting again finds no participant, so nothing is incremented and
	// playersNeeded stays within the initial capacity.
	assert.Equal(t, -1, m.ParticipantIndex("u2"))
	assert.LessOrEqual(t, m.PlayersNeeded, m.InitialCapacity)
}

// A creator quitting the seat they were seeded with must not push
// playersNeeded past the initial capacity: at the cap the removal drops the
// increment from the atomic expression entirely.
func TestCreatorQuitDoesNotExceedCapacity(t *testing.T) {
	req := models.CreateMatchRequest{
		Location:      "Riverside pitch",
		Date:          "2031-05-01",
		Time:          "18:30",
		PlayersNeeded: 10,
		CreatorID:     "u1",
	}
	m := req.ToMatch("m1")
	require.Equal(t, 10, m.PlayersNeeded)
	require.Equal(t, 10, m.InitialCapacity)

	idx := m.ParticipantIndex("u1")
	require.Equal(t, 0, idx)

	update, condition, values := quitUpdate(&m, idx)
	assert.Equal(t, "REMOVE participants[0]", update)
	assert.Equal(t, "participants[0] = :uid AND playersNeeded >= :cap", condition)
	assert.NotContains(t, values, ":one")
}

func TestQuitUpdateIncrementsBelowCapacity(t *testing.T) {
	m := testMatch(9, "u2") // one join happened, counter below the cap
	idx := m.ParticipantIndex("u2")
	require.Equal(t, 1, idx)

	update, condition, values := quitUpdate(m, idx)
	assert.Equal(t, "SET playersNeeded = playersNeeded + :one REMOVE participants[1]", update)
	assert.Equal(t, "participants[1] = :uid AND playersNeeded < :cap", condition)
	assert.Contains(t, values, ":one")
}

func TestParticipantHelpers(t *testing.T) {
	m := testMatch(5, "u2", "u3")

	assert.True(t, m.HasParticipant("u2"))
	assert.False(t, m.HasParticipant("u9"))
	assert.Equal(t, 0, m.ParticipantIndex("u1"))
	assert.Equal(t, 2, m.ParticipantIndex("u3"))
	assert.Equal(t, -1, m.ParticipantIndex("u9"))
}
