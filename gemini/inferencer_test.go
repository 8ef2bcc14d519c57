package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferencer_Infer_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	inf := gemini.NewInferencer(nil, "") // nil client ok for this test

	_, err := inf.Infer(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, leadscout.EINVALID, leadscout.ErrorCode(err))
	assert.Contains(t, leadscout.ErrorMessage(err), "prompt required")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 0.001)
}
