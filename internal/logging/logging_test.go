package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Parse workers and the fold goroutine share one logger; writes to the
// destination must be serialized by the locked syncer.
func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	const workers, lines = 8, 100
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < lines; i++ {
				log.Info("worker line", zap.Int("worker", w), zap.Int("line", i))
			}
		}(w)
	}
	wg.Wait()
	_ = log.Sync()

	require.Equal(t, workers*lines, strings.Count(buf.String(), "worker line"))
}

func TestQuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Info("progress")
	log.Error("failure")
	_ = log.Sync()

	require.NotContains(t, buf.String(), "progress")
	require.Contains(t, buf.String(), "failure")
}
