package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelEvents(t *testing.T) {
	buf := &bytes.Buffer{}
	original := Default()
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	SetDefault(New(buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() {
		SetDefault(*original)
		zerolog.SetGlobalLevel(oldLevel)
	})

	Debug().Str("source", "Active").Msg("loading sheet")
	Info().Int("records", 3).Msg("normalized")
	Warn().Msg("header guessed")
	Error().Msg("write failed")
	Err(errors.New("disk full")).Msg("save aborted")

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"source":"Active"`)
	assert.Contains(t, out, `"records":3`)
	assert.Contains(t, out, "header guessed")
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "disk full")
}

func TestTestLoggerCaptures(t *testing.T) {
	tl := NewTestLogger(t)
	tl.Info().Str("source", "Survey").Msg("source skipped")

	assert.True(t, tl.Contains("source skipped"))
	require.Len(t, tl.Lines(), 1)
	assert.Contains(t, tl.Lines()[0], `"source":"Survey"`)
}

func TestTestLoggerEmptyOutput(t *testing.T) {
	tl := NewTestLogger(t)
	assert.Empty(t, tl.Output())
	assert.Empty(t, tl.Lines())
}

func TestDisableLoggingForTest(t *testing.T) {
	DisableLoggingForTest(t)
	assert.Equal(t, zerolog.Disabled, Default().GetLevel())
}

func TestWithRunIDAnnotatesLogger(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithRunID(ctx, "run-42")

	Ctx(ctx).Info().Msg("consolidation started")

	assert.Equal(t, "run-42", RunID(ctx))
	assert.True(t, tl.Contains(`"run_id":"run-42"`))
}

func TestWithFieldHelpers(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithSource(ctx, "Old_Export")
	ctx = WithOperation(ctx, "normalize")

	FromContext(ctx).Info().Msg("sheet processed")

	assert.True(t, tl.Contains(`"source":"Old_Export"`))
	assert.True(t, tl.Contains(`"operation":"normalize"`))
}
