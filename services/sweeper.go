package services

import (
	"context"
	"os"
	"time"

	"kickabout_server/models"

	log "github.com/sirupsen/logrus"
)

// DefaultSweepInterval is used when SWEEP_INTERVAL is unset or invalid.
const DefaultSweepInterval = 30 * time.Second

// MaxSweepInterval caps how far apart sweeps may run. Matches expire on a
// minute-granular schedule, so a longer gap would leave stale matches
// visible between cycles.
const MaxSweepInterval = time.Minute

// Sweeper periodically deletes matches whose scheduled date and time have
// passed. A failed cycle is logged and skipped; the loop never stops on its
// own before the context is cancelled.
type Sweeper struct {
	Matches  *MatchService
	Interval time.Duration
}

// SweepIntervalFromEnv reads SWEEP_INTERVAL, falling back to the default.
// Values above MaxSweepInterval are clamped down to it.
func SweepIntervalFromEnv() time.Duration {
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			if d > MaxSweepInterval {
				log.Printf("SWEEP_INTERVAL %s exceeds %s, clamping", d, MaxSweepInterval)
				return MaxSweepInterval
			}
			return d
		}
		log.Printf("Invalid SWEEP_INTERVAL %q, using default", v)
	}
	return DefaultSweepInterval
}

// Run ticks until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	log.Printf("Expiry sweeper running every %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now()
	matches, err := s.Matches.ListScheduledOnOrBefore(ctx, now.Format("2006-01-02"))
	if err != nil {
		log.Printf("Error fetching matches for expiry sweep: %v", err)
		return
	}

	expired := SelectExpired(matches, now)
	if len(expired) == 0 {
		return
	}

	if err := s.Matches.DeleteMatches(ctx, expired); err != nil {
		log.Printf("Error deleting expired matches: %v", err)
		return
	}
	log.Printf("%d expired match(es) deleted", len(expired))
}

// SelectExpired returns the matches whose composed date+time instant is
// strictly before now. Matches with malformed schedules are left alone.
func SelectExpired(matches []models.Match, now time.Time) []models.Match {
	var expired []models.Match
	for _, m := range matches {
		instant, err := ComposeInstant(m.Date, m.Time)
		if err != nil {
			log.Printf("Match %s has an unparseable schedule (%s %s), skipping", m.MatchID, m.Date, m.Time)
			continue
		}
		if instant.Before(now) {
			expired = append(expired, m)
		}
	}
	return expired
}

// ComposeInstant combines a YYYY-MM-DD date and an HH:MM time into a single
// local-time instant.
func ComposeInstant(date, hhmm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, time.Local)
}
