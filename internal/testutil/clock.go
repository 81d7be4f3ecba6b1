package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// BlockTimeout bounds how long BlockUntil waits for timers to appear.
const BlockTimeout = 5 * time.Second

// BlockUntil waits until clock has at least n pending timers, failing the
// test instead of hanging when the code under test never reaches its wait.
func BlockUntil(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), BlockTimeout)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, n), "waiting for %d pending timer(s)", n)
}
