package afio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureIDsAreMonotonic(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	f1 := d.Submit(nil, OpKindRead, OpNone, func() (any, error) { return 1, nil })
	f2 := d.Submit(nil, OpKindRead, OpNone, func() (any, error) { return 2, nil })
	assert.Less(t, f1.ID(), f2.ID())
}

func TestSubmitChainsBehindPrecondition(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	var order []int
	f1 := d.Submit(nil, OpKindWrite, OpNone, func() (any, error) {
		order = append(order, 1)
		return nil, nil
	})
	f2 := d.Submit(f1, OpKindWrite, OpNone, func() (any, error) {
		order = append(order, 2)
		return nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := f2.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestBarrierWaitsForAllDeps(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	f1 := d.Submit(nil, OpKindWrite, OpNone, func() (any, error) { return 1, nil })
	f2 := d.Submit(nil, OpKindWrite, OpNone, func() (any, error) { return 2, nil })

	b := d.Barrier([]*Future{f1, f2}, OpNone, func(results []BarrierResult) (any, error) {
		sum := 0
		for _, r := range results {
			sum += r.Value.(int)
		}
		return sum, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := b.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestEmptyBarrierCompletesImmediately(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	b := d.Barrier(nil, OpImmediate, func(results []BarrierResult) (any, error) {
		return "done", nil
	})
	v, err, ok := b.Result()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestImmediateRunsSynchronouslyOnCompletingGoroutine(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	pre := Completed(nil, nil)
	f := d.Submit(pre, OpKindRead, OpImmediate, func() (any, error) { return "x", nil })
	// OpImmediate against an already-complete precondition runs inline in
	// onDone, so the result must already be published with no wait.
	_, _, ok := f.Result()
	assert.True(t, ok)
}

func TestCompletionTransformsErrorBeforeRepublishing(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	boom := errors.New("boom")
	f1 := d.Submit(nil, OpKindRead, OpNone, func() (any, error) { return nil, boom })
	f2 := d.Submit(nil, OpKindRead, OpNone, func() (any, error) { return 2, nil })

	outs := d.Completion([]*Future{f1, f2}, OpNone, []CompletionCallback{
		func(id uint64, pre *Future) (bool, any, error) {
			_, err, _ := pre.Result()
			if err != nil {
				return true, "recovered", nil
			}
			return true, "no error to recover", nil
		},
		func(id uint64, pre *Future) (bool, any, error) {
			v, _, _ := pre.Result()
			return true, v, nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	v1, err1 := outs[0].Wait(ctx)
	require.NoError(t, err1)
	assert.Equal(t, "recovered", v1)

	v2, err2 := outs[1].Wait(ctx)
	require.NoError(t, err2)
	assert.Equal(t, 2, v2)
}

func TestCompletionDeferredPublishViaFuturePublish(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	pre := d.Submit(nil, OpKindRead, OpNone, func() (any, error) { return 1, nil })
	outs := d.Completion([]*Future{pre}, OpNone, []CompletionCallback{
		func(id uint64, pre *Future) (bool, any, error) { return false, nil, nil },
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, _, ok := outs[0].Result()
	assert.False(t, ok, "a ready=false callback must not publish on its own")

	outs[0].Publish("manual", nil)
	v, err := outs[0].Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "manual", v)
}

func TestFilterSeesEveryOperation(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	var seen []OpKind
	d.AddFilter(func(kind OpKind, value any, err error) (any, error) {
		seen = append(seen, kind)
		return value, err
	})

	f := d.Submit(nil, OpKindSync, OpNone, func() (any, error) { return nil, nil })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []OpKind{OpKindSync}, seen)
}
