// SPDX-License-Identifier: MIT

package workpool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestJobQueueFIFO verifies pop order equals push order.
func TestJobQueueFIFO(t *testing.T) {
	q := newJobQueue[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, q.push(i))
	}
	require.Equal(t, 100, q.len())

	for i := 0; i < 100; i++ {
		v, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Zero(t, q.len())
}

// TestJobQueuePopBlocksUntilPush checks that an empty queue parks the consumer.
func TestJobQueuePopBlocksUntilPush(t *testing.T) {
	q := newJobQueue[string]()
	got := make(chan string, 1)
	go func() {
		v, _ := q.pop()
		got <- v
	}()

	select {
	case v := <-got:
		t.Fatalf("pop returned %q before any push", v)
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.push("job"))
	select {
	case v := <-got:
		require.Equal(t, "job", v)
	case <-time.After(time.Second):
		t.Fatal("pop did not wake up after push")
	}
}

// TestJobQueueCloseDrains ensures close keeps queued items and then reports ok=false.
func TestJobQueueCloseDrains(t *testing.T) {
	q := newJobQueue[int]()
	require.NoError(t, q.push(1))
	require.NoError(t, q.push(2))
	q.close()
	q.close() // idempotent

	require.ErrorIs(t, q.push(3), ErrPoolClosed)

	v, ok := q.pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = q.pop()
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = q.pop()
	require.False(t, ok)
}

// TestJobQueueCloseWakesConsumer ensures a parked consumer exits on close.
func TestJobQueueCloseWakesConsumer(t *testing.T) {
	q := newJobQueue[int]()
	done := make(chan bool, 1)
	go func() {
		_, ok := q.pop()
		done <- ok
	}()
	time.Sleep(10 * time.Millisecond)
	q.close()

	select {
	case ok := <-done:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("consumer still blocked after close")
	}
}
