package media

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// SweepStaleUploads removes staged files older than maxAge. Staged files are
// removed by the request that created them; anything left is from a crash.
func SweepStaleUploads(dir string, maxAge time.Duration) (removed int, err error) {
	matches, err := filepath.Glob(filepath.Join(dir, stagedFilePattern))
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(path); err != nil {
			log.Error().Err(err).Str("component", "SweepStaleUploads").Str("path", path).Msg("")
			continue
		}
		removed++
	}

	return removed, nil
}

// StartSweeper schedules SweepStaleUploads every interval. The caller owns
// the returned scheduler and must shut it down.
func StartSweeper(dir string, interval, maxAge time.Duration) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			removed, err := SweepStaleUploads(dir, maxAge)
			if err != nil {
				log.Error().Err(err).Str("component", "StartSweeper").Msg("")
				return
			}
			if removed > 0 {
				log.Info().Str("component", "StartSweeper").Int("removed", removed).Msg("removed stale uploads")
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()

	return s, nil
}
