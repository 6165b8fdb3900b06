package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"exusiai.dev/matchstats/internal/pkg/cache"
	"exusiai.dev/matchstats/internal/pkg/observability"
)

var tracer = otel.Tracer("service")

// reportKey is "<id>:<hash of the query>". The id prefix lets a whole subject be
// invalidated at once.
func reportKey(id int, query any) string {
	b, err := json.Marshal(query)
	if err != nil {
		// queries are plain structs; a failure here is a programming error
		panic(err)
	}
	return strconv.Itoa(id) + ":" + strconv.FormatUint(xxh3.Hash(b), 16)
}

// cachedReport serves report from set, computing and storing it on a miss.
func cachedReport[T any](ctx context.Context, set *cache.Set[T], report, key string, ttl time.Duration, compute func(ctx context.Context) (*T, error)) (*T, error) {
	ctx, span := tracer.Start(ctx, "report."+report, trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	var dest T
	computed, err := set.MutexGetSet(ctx, key, &dest, func() (*T, error) {
		start := time.Now()
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		observability.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
		return v, nil
	}, ttl)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := "hit"
	if computed {
		result = "miss"
	}
	observability.ReportCacheLookups.WithLabelValues(report, result).Inc()
	span.SetAttributes(attribute.String("cache.result", result))
	return &dest, nil
}

func observeMatches(report string, n int) {
	observability.ReportMatches.WithLabelValues(report).Observe(float64(n))
}
