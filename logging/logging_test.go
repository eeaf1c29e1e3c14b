package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAttributesAreLogged(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(&out, slog.LevelInfo, "json")
	require.NoError(t, err)

	ctx := PackageCtx("render")
	ctx = AppendCtx(ctx, slog.Int("bars", 3))
	logger.InfoContext(ctx, "rendered")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "rendered", rec["msg"])
	assert.Equal(t, "render", rec[PackageName])
	assert.EqualValues(t, 3, rec["bars"])
}

func TestAppendCtxDoesNotLeakBetweenSiblings(t *testing.T) {
	parent := AppendCtx(context.Background(), slog.String("a", "1"))
	left := AppendCtx(parent, slog.String("b", "2"))
	right := AppendCtx(parent, slog.String("c", "3"))

	leftAttrs := left.Value(slogFields).([]slog.Attr)
	rightAttrs := right.Value(slogFields).([]slog.Attr)
	require.Len(t, leftAttrs, 2)
	require.Len(t, rightAttrs, 2)
	assert.Equal(t, "b", leftAttrs[1].Key)
	assert.Equal(t, "c", rightAttrs[1].Key)
}

func TestWithAttrsKeepsContextHandler(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(&out, slog.LevelDebug, "text")
	require.NoError(t, err)

	logger.With("mode", "caption").DebugContext(PackageCtx("cli"), "start")
	assert.Contains(t, out.String(), "mode=caption")
	assert.Contains(t, out.String(), "package=cli")
}

func TestLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(&out, slog.LevelWarn, "text")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, out.String())
	logger.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.Error(t, err)
}
