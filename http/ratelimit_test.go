package http_test

import (
	"context"
	"testing"
	"time"

	vmhttp "github.com/fwojciec/vidmeta/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain proceeds immediately", func(t *testing.T) {
		t.Parallel()

		l := vmhttp.NewDomainLimiter(1.0)

		begin := time.Now()
		require.NoError(t, l.Wait(context.Background(), "www.ndtv.com"))
		require.NoError(t, l.Wait(context.Background(), "sports.ndtv.com"))
		assert.Less(t, time.Since(begin), 100*time.Millisecond, "different domains do not contend")
	})

	t.Run("second request to the same domain is throttled", func(t *testing.T) {
		t.Parallel()

		l := vmhttp.NewDomainLimiter(10.0) // 100ms between requests

		require.NoError(t, l.Wait(context.Background(), "www.ndtv.com"))
		begin := time.Now()
		require.NoError(t, l.Wait(context.Background(), "www.ndtv.com"))
		assert.GreaterOrEqual(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("returns when the context is canceled", func(t *testing.T) {
		t.Parallel()

		l := vmhttp.NewDomainLimiter(0.001) // effectively blocked

		require.NoError(t, l.Wait(context.Background(), "www.ndtv.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "www.ndtv.com"))
	})
}
