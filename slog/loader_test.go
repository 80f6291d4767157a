package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/mock"
	bslog "github.com/fwojciec/blogscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs load with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		snap := &mock.Snapshot{}
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string) (blogscan.Snapshot, error) {
				return snap, nil
			},
		}

		loader := bslog.NewLoggingLoader(inner, logger)
		got, err := loader.Load(context.Background(), "https://overreacted.io/")

		require.NoError(t, err)
		assert.Same(t, snap, got)
		output := buf.String()
		assert.Contains(t, output, "msg=load")
		assert.Contains(t, output, "url=https://overreacted.io/")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string) (blogscan.Snapshot, error) {
				return nil, errors.New("net::ERR_NAME_NOT_RESOLVED")
			},
		}

		loader := bslog.NewLoggingLoader(inner, logger)
		_, err := loader.Load(context.Background(), "https://overreacted.io/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err=net::ERR_NAME_NOT_RESOLVED`)
	})
}

func TestLoggingLoader_Close(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.Loader{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	loader := bslog.NewLoggingLoader(inner, slog.New(slog.DiscardHandler))

	require.NoError(t, loader.Close())
	assert.True(t, closed)
}
