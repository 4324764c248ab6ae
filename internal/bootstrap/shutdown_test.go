package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	calls *[]string
	name  string
	err   error
}

func (r recorder) Stop(ctx context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func (r recorder) Shutdown(ctx context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestGracefulShutdown(t *testing.T) {
	t.Run("server stops before worker", func(t *testing.T) {
		var calls []string

		GracefulShutdown(context.Background(), ShutdownComponents{
			Server: recorder{calls: &calls, name: "server"},
			Worker: recorder{calls: &calls, name: "worker"},
		})

		assert.Equal(t, []string{"server", "worker"}, calls)
	})

	t.Run("server error does not skip worker", func(t *testing.T) {
		var calls []string

		GracefulShutdown(context.Background(), ShutdownComponents{
			Server: recorder{calls: &calls, name: "server", err: context.DeadlineExceeded},
			Worker: recorder{calls: &calls, name: "worker"},
		})

		assert.Equal(t, []string{"server", "worker"}, calls)
	})

	t.Run("missing components are skipped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			GracefulShutdown(context.Background(), ShutdownComponents{})
		})
	})
}
