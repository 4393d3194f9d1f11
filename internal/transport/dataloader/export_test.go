package dataloader

import (
	"testing"
	"time"
)

// SetBatchWait overrides the batch wait for the duration of a test.
func SetBatchWait(t *testing.T, d time.Duration) {
	t.Helper()
	prev := batchWait
	batchWait = d
	t.Cleanup(func() { batchWait = prev })
}
