package jetstream_test

import (
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"

	"exusiai.dev/matchstats/internal/pkg/jetstream"
)

func TestMessageIDWithoutMetadata(t *testing.T) {
	assert.Equal(t, "-", jetstream.MessageID(&nats.Msg{Subject: "MATCH.ingested"}))
}
