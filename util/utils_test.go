package util

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdering(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, -1, Max(-3, -1))
	assert.Equal(t, "b", Max("a", "b"))
	assert.Equal(t, 0, Clamp(-4, 0, 10))
	assert.Equal(t, 10, Clamp(14, 0, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, "x", Choose(true, "x", "y"))
}

func TestFilterReduce(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
	assert.Empty(t, Filter([]int{}, func(int) bool { return true }))
	assert.Equal(t, []string{"c", "a"}, Filter([]string{"c", "", "a"}, func(s string) bool { return s != "" }))

	sum := Reduce([]int{1, 2, 3}, func(t int, acc int) int { return acc + t }, 10)
	assert.Equal(t, 16, sum)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("shown", "k", 1)
	ctx := WithDefaultArgs(context.Background(), "stroke", 7)
	log.WarnCtx(ctx, "with ctx")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="[terrain] shown" k=1`)
	assert.Contains(t, out, "stroke=7")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}
