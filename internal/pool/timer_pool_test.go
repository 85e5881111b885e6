package pool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetTimer_Fires(t *testing.T) {
	timer := GetTimer(20 * time.Millisecond)
	require.NotNil(t, timer)
	defer PutTimer(timer)

	begin := time.Now()
	select {
	case <-timer.C:
		require.GreaterOrEqual(t, time.Since(begin), 15*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestPutTimer_DrainsPendingFire(t *testing.T) {
	// a timer returned right before firing must not leak its tick into the
	// next borrower
	timer := GetTimer(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	PutTimer(timer)

	next := GetTimer(100 * time.Millisecond)
	defer PutTimer(next)

	select {
	case <-next.C:
		// the recycled timer must fire on the new duration
		t.Fatal("recycled timer fired immediately")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGetTimer_Reset(t *testing.T) {
	timer := GetTimer(500 * time.Millisecond)
	require.True(t, timer.Stop())
	PutTimer(timer)

	begin := time.Now()
	timer = GetTimer(30 * time.Millisecond)
	defer PutTimer(timer)

	select {
	case tick := <-timer.C:
		require.GreaterOrEqual(t, tick.Sub(begin), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("recycled timer did not fire")
	}
}

func TestTimerPool_Concurrency(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timer := GetTimer(5 * time.Millisecond)
			<-timer.C
			PutTimer(timer)
		}()
	}
	wg.Wait()
}
