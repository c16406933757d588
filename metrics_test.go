package ffwd

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/ffwd/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	l, ids, _ := newCars(t, WithMetricsCollector(metrics))

	_, err := l.Push(car{1, "BMW"})
	require.NoError(t, err)
	_, err = l.Push(car{2, "BMW"})
	require.Error(t, err)

	require.NoError(t, l.Extend([]car{{3, "Audi"}, {4, "VW"}}))
	require.Error(t, l.Extend([]car{{5, "Audi"}}))

	_, err = l.Update(0, func(c *car) { c.ID = 9 })
	require.NoError(t, err)
	_, err = l.Update(0, func(c *car) { c.Name = "VW" })
	require.Error(t, err)

	l.Remove(0)

	for range ids.Get(3) {
	}
	_, err = l.Query().Where("id", uint(4)).Exec()
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.PushCount)
	assert.Equal(t, int64(1), stats.PushErrors)
	assert.Equal(t, int64(2), stats.ExtendCount)
	assert.Equal(t, int64(2), stats.ExtendItems)
	assert.Equal(t, int64(1), stats.ExtendErrors)
	assert.Equal(t, int64(2), stats.UpdateCount)
	assert.Equal(t, int64(1), stats.UpdateErrors)
	assert.Equal(t, int64(1), stats.RemoveCount)
	assert.Equal(t, int64(2), stats.QueryCount)
	assert.Equal(t, int64(2), stats.QueryResults)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordPush(0, nil)
	mc.RecordExtend(1, 0, nil)
	mc.RecordUpdate(0, nil)
	mc.RecordRemove(0)
	mc.RecordQuery(0, 0)

	assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := NewList[car](WithLogger(logger))
	ids, err := Attach(l, "id", index.NewUintStore[uint](index.Unique), carID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "field attached")
	assert.Contains(t, buf.String(), "field=id")

	_, err = l.Push(car{1, "BMW"})
	require.NoError(t, err)
	_, err = l.Push(car{1, "VW"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN msg=\"push rejected\" pos=1")

	ids.RemoveByKey(1)
	assert.Contains(t, buf.String(), "removed by key")
	assert.Contains(t, buf.String(), "count=1")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))

	assert.NotNil(t, NewLogger(nil))
	assert.True(t, NewJSONLogger(slog.LevelDebug).Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, NewTextLogger(slog.LevelWarn).Enabled(t.Context(), slog.LevelInfo))

	// WithLogLevel installs a text logger
	o := applyOptions([]Option{WithLogLevel(slog.LevelDebug), nil})
	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelDebug))
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
}
