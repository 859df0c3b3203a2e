package demo_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvrec/internal/config"
	"github.com/katalvlaran/lvrec/internal/demo"
)

func TestRunner_KeepsOrder(t *testing.T) {
	for _, parallel := range []int{0, 1, 4, 16} {
		r := demo.NewRunner(nil, parallel)
		results, err := r.Run(context.Background(), config.DefaultConfig(), demo.Catalog())
		require.NoError(t, err)
		require.Len(t, results, 9)
		for i, key := range demo.Keys() {
			assert.Equal(t, key, results[i].Key, "parallel=%d", parallel)
			assert.NoError(t, results[i].Err)
		}
		assert.Empty(t, demo.Failed(results))
	}
}

// TestRunner_FailureDoesNotStopOthers records the error and keeps going.
func TestRunner_FailureDoesNotStopOthers(t *testing.T) {
	boom := errors.New("boom")
	var ran atomic.Int32
	demos := []demo.Demo{
		{Key: "a", Name: "A", Run: func(context.Context, *config.Config) (string, error) {
			ran.Add(1)
			return "", boom
		}},
		{Key: "b", Name: "B", Run: func(context.Context, *config.Config) (string, error) {
			ran.Add(1)
			return "ok", nil
		}},
	}

	results, err := demo.NewRunner(nil, 2).Run(context.Background(), config.DefaultConfig(), demos)
	require.NoError(t, err)
	assert.Equal(t, int32(2), ran.Load())
	assert.ErrorIs(t, results[0].Err, boom)
	assert.Empty(t, results[0].Value)
	assert.Equal(t, "ok", results[1].Value)

	failed := demo.Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "a", failed[0].Key)
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := demo.NewRunner(nil, 1).Run(ctx, config.DefaultConfig(), demo.Catalog())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRunner_Logs checks one debug entry per successful demo and a warning per failure.
func TestRunner_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := config.DefaultConfig()
	cfg.Factorial.N = -1

	demos, err := demo.Select([]string{"sum", "factorial"})
	require.NoError(t, err)
	_, err = demo.NewRunner(zap.New(core), 1).Run(context.Background(), cfg, demos)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("demo finished").Len())
	failed := logs.FilterMessage("demo failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "factorial", failed[0].ContextMap()["demo"])
}

func TestRunner_Elapsed(t *testing.T) {
	demos := []demo.Demo{{Key: "slow", Name: "Slow", Run: func(context.Context, *config.Config) (string, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	}}}

	results, err := demo.NewRunner(nil, 1).Run(context.Background(), config.DefaultConfig(), demos)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, results[0].Elapsed, 5*time.Millisecond)
}
