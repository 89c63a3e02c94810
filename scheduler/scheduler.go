// scheduler/scheduler.go
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"smarttasks/services"
)

const jobTimeout = 5 * time.Minute

// Start schedules the housekeeping job on spec and starts the cron runner.
// The job logs store statistics and, when resync is set, rewrites the
// mirror from the database.
func Start(spec string, store *services.Store, resync bool, log zerolog.Logger) (*cron.Cron, error) {
	log = log.With().Str("component", "scheduler").Logger()
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		RunHousekeeping(context.Background(), store, resync, log)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info().Str("spec", spec).Bool("resync", resync).Msg("scheduler started")
	return c, nil
}

// RunHousekeeping is one run of the scheduled job.
func RunHousekeeping(ctx context.Context, store *services.Store, resync bool, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	stats, err := store.Stats(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("collecting store statistics failed")
	} else {
		log.Info().
			Int64("users", stats.Users).
			Int64("checklists", stats.Checklists).
			Int64("tasks", stats.Tasks).
			Int64("open_tasks", stats.OpenTasks).
			Int64("overdue_tasks", stats.OverdueTasks).
			Msg("store statistics")
	}

	if !resync {
		return
	}
	synced, err := store.ResyncMirror(ctx)
	if err != nil {
		log.Error().Err(err).Int("synced", synced).Msg("mirror resync failed")
		return
	}
	log.Info().Int("synced", synced).Msg("mirror resync finished")
}
