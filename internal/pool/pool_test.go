package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFIFOOrdering(t *testing.T) {
	p := New(1)
	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		p.Enqueue(func() {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	wg.Wait()
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestBoundedConcurrency(t *testing.T) {
	const workers = 4
	p := New(workers)
	var inFlight int32
	var maxSeen int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		p.Enqueue(func() {
			defer wg.Done()
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&maxSeen)
				if n <= old || atomic.CompareAndSwapInt32(&maxSeen, old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
		})
	}
	wg.Wait()
	assert.LessOrEqual(t, int(maxSeen), workers)
}

func TestShutdownWaitsForOutstanding(t *testing.T) {
	p := New(2)
	var done int32
	for i := 0; i < 10; i++ {
		p.Enqueue(func() {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&done, 1)
		})
	}
	p.Shutdown()
	assert.Equal(t, int32(10), atomic.LoadInt32(&done))
}
