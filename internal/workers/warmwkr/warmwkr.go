package warmwkr

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/pkg/async"
	"exusiai.dev/matchstats/internal/pkg/observability"
	"exusiai.dev/matchstats/internal/service"
)

const name = "warm"

type WorkerDeps struct {
	fx.In
	Config           *appconfig.Config
	TeamStatsService *service.TeamStats
	RedSync          *redsync.Redsync
}

type Worker struct {
	// count counts rounds worker has completed so far
	count int

	// sep describes the separation time in-between different teams
	sep time.Duration

	// interval describes the interval in-between different rounds
	interval time.Duration

	// timeout bounds a single round
	timeout time.Duration

	// heartbeatURL is pinged after every successful round, if set
	heartbeatURL string

	// lock elects a single worker among the replicas for each round
	lock *redsync.Mutex

	WorkerDeps
}

func Start(lc fx.Lifecycle, deps WorkerDeps) {
	conf := deps.Config
	if !conf.WorkerEnabled {
		log.Info().
			Str("evt.name", "worker.warm.disabled").
			Msg("warm worker is disabled")
		return
	}

	w := &Worker{
		sep:          conf.WorkerSeparation,
		interval:     conf.WorkerInterval,
		timeout:      conf.WorkerTimeout,
		heartbeatURL: conf.WorkerHeartbeatURL[name],
		lock: deps.RedSync.NewMutex("mutex:warmwkr",
			redsync.WithExpiry(conf.WorkerTimeout),
			redsync.WithTries(1),
		),
		WorkerDeps: deps,
	}

	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			cancel = w.do()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			if err := w.round(ctx); err != nil {
				log.Warn().
					Str("evt.name", "worker.warm.round").
					Err(err).
					Int("count", w.count).
					Msg("warm round did not complete")
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

func (w *Worker) round(parent context.Context) error {
	ctx, cancel := context.WithTimeout(parent, w.timeout)
	defer cancel()

	if err := w.lock.LockContext(ctx); err != nil {
		log.Debug().
			Str("evt.name", "worker.warm.skipped").
			Err(err).
			Msg("another replica holds the warm lock, skipping round")
		return nil
	}
	defer func() {
		if _, err := w.lock.Unlock(); err != nil {
			log.Warn().Err(err).Msg("failed to release warm lock")
		}
	}()

	start := time.Now()
	teams, err := w.TeamStatsService.WarmTargets(ctx, w.Config.WorkerWarmTeamIDs)
	if err != nil {
		return err
	}

	log.Info().
		Str("evt.name", "worker.warm.started").
		Int("count", w.count).
		Int("teams", len(teams)).
		Msg("warm round started")

	_, err = async.Map(teams, w.Config.WorkerConcurrency, func(teamID int) (struct{}, error) {
		if err := w.TeamStatsService.Warm(ctx, teamID); err != nil {
			return struct{}{}, err
		}
		log.Debug().Int("teamId", teamID).Msg("team reports warmed")
		time.Sleep(w.sep)
		return struct{}{}, nil
	})
	observability.WorkerWarmDuration.WithLabelValues(name).Set(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	log.Info().
		Str("evt.name", "worker.warm.finished").
		Int("count", w.count).
		Dur("duration", time.Since(start)).
		Msg("warm round finished")

	w.count++
	w.heartbeat()
	return nil
}

func (w *Worker) heartbeat() {
	if w.heartbeatURL == "" {
		return
	}
	status, _, err := fasthttp.GetTimeout(nil, w.heartbeatURL, time.Second*10)
	if err != nil || status >= fasthttp.StatusBadRequest {
		log.Warn().
			Err(err).
			Int("status", status).
			Msg("failed to ping warm worker heartbeat")
	}
}

func (w *Worker) Count() int {
	return w.count
}
