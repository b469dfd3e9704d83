package models

// DynamoDB table names
const (
	UsersTable    = "Users"
	MatchesTable  = "Matches"
	MessagesTable = "Messages"
)

// Skill levels a player can self-report
const (
	LevelGood     = "Good"
	LevelMedium   = "Medium"
	LevelMediocre = "Mediocre"
)

// DefaultPlayersNeeded is used when a match is created without a capacity.
const DefaultPlayersNeeded = 10

// ValidLevel reports whether the given skill level is one of the known values.
func ValidLevel(level string) bool {
	switch level {
	case LevelGood, LevelMedium, LevelMediocre:
		return true
	}
	return false
}
