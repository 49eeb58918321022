package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = old })
	return logs
}

func TestRedisRepositories_LogLines(t *testing.T) {
	_, client := newMiniredis(t)
	logs := observeLogs(t)
	ctx := context.Background()

	cache := NewHotelCacheRepository(client, time.Minute)
	require.NoError(t, cache.SetHotels(ctx, []models.HotelDB{{HotelID: 1}}))
	_, err := cache.GetHotels(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))

	sessions := NewSessionRepository(client, time.Minute)
	require.NoError(t, sessions.Save(ctx, "sid", "token"))
	_, err = sessions.Get(ctx, "sid")
	require.NoError(t, err)
	require.NoError(t, sessions.Delete(ctx, "sid"))

	entries := logs.All()
	require.Len(t, entries, 6)
	for _, e := range entries {
		assert.Equal(t, zapcore.InfoLevel, e.Level)
		assert.Contains(t, []string{"redis get", "redis set", "redis del"}, e.Message)
		assert.Contains(t, e.ContextMap(), "key")
		assert.Contains(t, e.ContextMap(), "error")
	}
	assert.Equal(t, hotelsCacheKey, entries[0].ContextMap()["key"])
	assert.Equal(t, sessionKey("sid"), entries[3].ContextMap()["key"])
}

func TestLogQuery_Fields(t *testing.T) {
	logs := observeLogs(t)

	logQuery("SELECT *\n\tFROM hotels\n WHERE id = $1", []any{int64(7)}, 1, nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "sql query", entry.Message)
	assert.Equal(t, "SELECT * FROM hotels WHERE id = $1", entry.ContextMap()["query"])
	assert.Contains(t, entry.ContextMap(), "args")
	assert.Contains(t, entry.ContextMap(), "result")
}
