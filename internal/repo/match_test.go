package repo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
)

func TestFindQueryKeepsIngestOrderOnTies(t *testing.T) {
	// the connector is lazy, building queries never dials
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
	t.Cleanup(func() { db.Close() })

	q := findQuery(db.NewSelect().Model((*model.MatchRecord)(nil)), &model.MatchFilter{TeamID: 1, Limit: 15})
	query := q.String()
	assert.Contains(t, query, "ORDER BY m.start_time DESC, m.match_id ASC")
	assert.Contains(t, query, "LIMIT 15")

	// a snapshot lists matches in ingest order and keeps it on ties as well
	early := coretest.Match(5, 1, 2).Build()
	late := coretest.Match(6, 1, 2).Build()
	late.StartTime = early.StartTime
	s := NewSnapshot(&model.Snapshot{Matches: []*model.MatchRecord{early, late}})

	got, err := s.FindMatches(context.Background(), &model.MatchFilter{TeamID: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].MatchID)
	assert.Equal(t, 6, got[1].MatchID)
}
