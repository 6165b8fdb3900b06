package ingestwkr

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/infra"
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/jetstream"
	"exusiai.dev/matchstats/internal/pkg/observability"
	"exusiai.dev/matchstats/internal/service"
)

const queue = "matchstats-invalidators"

type WorkerDeps struct {
	fx.In
	Config             *appconfig.Config
	JetStream          nats.JetStreamContext
	InvalidatorService *service.Invalidator
}

type Worker struct {
	WorkerDeps
}

// Start consumes match ingestion notifications for as long as the app runs. Every
// replica joins the same queue group, so each notification is handled once.
func Start(lc fx.Lifecycle, deps WorkerDeps) {
	w := &Worker{WorkerDeps: deps}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			msgChan := make(chan *nats.Msg, 16)
			sub, err := w.JetStream.ChanQueueSubscribe(infra.IngestSubjectIngested, queue, msgChan,
				nats.AckWait(time.Second*10),
				nats.MaxAckPending(128),
			)
			if err != nil {
				return errors.Wrap(err, "subscribe to "+infra.IngestSubjectIngested)
			}

			go w.consume(ctx, sub, msgChan)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) consume(ctx context.Context, sub *nats.Subscription, msgChan chan *nats.Msg) {
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			log.Warn().Err(err).Msg("failed to unsubscribe ingest consumer")
		}
	}()

	for {
		select {
		case msg := <-msgChan:
			w.handle(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg *nats.Msg) {
	taskCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	outcome := "ok"
	defer func() {
		observability.IngestEventsConsumed.WithLabelValues(outcome).Inc()
		if err := msg.Ack(); err != nil {
			log.Error().Err(err).Msg("failed to ack ingest event")
		}
	}()

	msgID := jetstream.MessageID(msg)

	var ev model.MatchIngestedEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		outcome = "malformed"
		log.Warn().
			Str("evt.name", "worker.ingest.malformed").
			Str("msg.id", msgID).
			Err(err).
			Bytes("data", msg.Data).
			Msg("dropping malformed ingest event")
		return
	}

	if err := w.InvalidatorService.MatchIngested(taskCtx, &ev); err != nil {
		outcome = "failed"
		log.Error().
			Str("evt.name", "worker.ingest.failed").
			Str("msg.id", msgID).
			Err(err).
			Str("event", spew.Sdump(ev)).
			Msg("failed to invalidate reports for ingested match")
	}
}
