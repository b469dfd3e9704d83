package services

import (
	"testing"
	"time"

	"kickabout_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeInstant(t *testing.T) {
	instant, err := ComposeInstant("2030-06-15", "18:30")
	require.NoError(t, err)

	assert.Equal(t, 2030, instant.Year())
	assert.Equal(t, time.June, instant.Month())
	assert.Equal(t, 15, instant.Day())
	assert.Equal(t, 18, instant.Hour())
	assert.Equal(t, 30, instant.Minute())

	_, err = ComposeInstant("15/06/2030", "18:30")
	assert.Error(t, err)

	_, err = ComposeInstant("2030-06-15", "6pm")
	assert.Error(t, err)
}

func TestSelectExpired(t *testing.T) {
	now, err := ComposeInstant("2030-06-15", "12:00")
	require.NoError(t, err)

	past := models.Match{MatchID: "past", Date: "2030-06-15", Time: "11:59"}
	exact := models.Match{MatchID: "exact", Date: "2030-06-15", Time: "12:00"}
	future := models.Match{MatchID: "future", Date: "2030-06-15", Time: "12:01"}
	lastWeek := models.Match{MatchID: "lastWeek", Date: "2030-06-08", Time: "20:00"}
	nextMonth := models.Match{MatchID: "nextMonth", Date: "2030-07-15", Time: "08:00"}

	expired := SelectExpired([]models.Match{past, exact, future, lastWeek, nextMonth}, now)

	ids := make([]string, 0, len(expired))
	for _, m := range expired {
		ids = append(ids, m.MatchID)
	}

	// Only strictly-past instants are collected; a match scheduled exactly
	// at "now" survives until the next tick.
	assert.Equal(t, []string{"past", "lastWeek"}, ids)
}

func TestSelectExpiredSkipsMalformedSchedules(t *testing.T) {
	now := time.Now()
	broken := models.Match{MatchID: "broken", Date: "yesterday", Time: "noon"}

	expired := SelectExpired([]models.Match{broken}, now)
	assert.Empty(t, expired)
}

func TestSelectExpiredEmpty(t *testing.T) {
	assert.Empty(t, SelectExpired(nil, time.Now()))
}

func TestSweepIntervalFromEnv(t *testing.T) {
	t.Run("unset uses default", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "")
		assert.Equal(t, DefaultSweepInterval, SweepIntervalFromEnv())
	})

	t.Run("valid value within cap", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "10s")
		assert.Equal(t, 10*time.Second, SweepIntervalFromEnv())
	})

	t.Run("oversized value is clamped", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "5m")
		assert.Equal(t, MaxSweepInterval, SweepIntervalFromEnv())
	})

	t.Run("invalid value uses default", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "soon")
		assert.Equal(t, DefaultSweepInterval, SweepIntervalFromEnv())
	})
}
