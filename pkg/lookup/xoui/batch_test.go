package xoui

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xoui/pkg/observability/xmetrics"
	"github.com/omeyang/xoui/pkg/util/xmac"
)

func TestLookupBatch_Order(t *testing.T) {
	r := newTestResolver(t, WithConcurrency(3))
	inputs := []string{
		"10:00:20:11:3A:B7",
		"12:34",
		"FF:FF:FF:AA:BB:CC",
		"00:50:56:c0:00:08",
		"080027aabbcc",
	}

	results := r.LookupBatch(context.Background(), inputs)
	require.Len(t, results, len(inputs))

	for i, res := range results {
		assert.Equal(t, inputs[i], res.Input)
	}
	assert.True(t, results[0].Found)
	assert.Equal(t, "Apple, Inc.", results[0].Record.Vendor)
	assert.ErrorIs(t, results[1].Err, xmac.ErrTooShort)
	assert.False(t, results[2].Found)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "VMware, Inc.", results[3].Record.Vendor)
	assert.Equal(t, "PCS Systemtechnik GmbH", results[4].Record.Vendor)
}

func TestLookupBatch_MatchesLookup(t *testing.T) {
	r := newTestResolver(t, WithConcurrency(4), WithCache(16, 0))
	ctx := context.Background()

	inputs := make([]string, 0, 200)
	for i := range 200 {
		inputs = append(inputs, fmt.Sprintf("%06X000000", i*0x010101))
	}
	inputs = append(inputs, "10:00:20:00:00:00", "00-0C-29-00-00-00")

	results := r.LookupBatch(ctx, inputs)
	for i, input := range inputs {
		rec, ok, err := r.Lookup(ctx, input)
		assert.Equal(t, rec, results[i].Record, input)
		assert.Equal(t, ok, results[i].Found, input)
		assert.Equal(t, err, results[i].Err, input)
	}
}

func TestLookupBatch_Empty(t *testing.T) {
	r := newTestResolver(t)
	assert.Empty(t, r.LookupBatch(context.Background(), nil))
}

func TestLookupBatch_CanceledContext(t *testing.T) {
	r := newTestResolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := r.LookupBatch(ctx, []string{"100020", "005056"})
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.False(t, res.Found)
	}
}

// cancelingObserver 在第 n 次 lookup 开始时取消 ctx
type cancelingObserver struct {
	cancel context.CancelFunc
	after  int32
	count  atomic.Int32
}

func (o *cancelingObserver) Start(ctx context.Context, opts xmetrics.SpanOptions) (context.Context, xmetrics.Span) {
	if opts.Operation == opLookup && o.count.Add(1) == o.after {
		o.cancel()
	}
	return ctx, xmetrics.NoopSpan{}
}

func TestLookupBatch_CancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs := &cancelingObserver{cancel: cancel, after: 2}
	r := newTestResolver(t, WithConcurrency(1), WithObserver(obs))

	inputs := []string{"100020", "005056", "080027", "000C29", "001B44"}
	results := r.LookupBatch(ctx, inputs)

	assert.NoError(t, results[0].Err)
	assert.True(t, results[0].Found)
	// 第二个在取消前已开始执行
	assert.NoError(t, results[1].Err)
	for _, res := range results[2:] {
		assert.ErrorIs(t, res.Err, context.Canceled, res.Input)
	}
}

func TestLookupBatch_BatchSpan(t *testing.T) {
	var ops []string
	var batchResult xmetrics.Result
	obs := observerFunc(func(ctx context.Context, opts xmetrics.SpanOptions) (context.Context, xmetrics.Span) {
		if opts.Operation == opBatch {
			ops = append(ops, opts.Operation)
			return ctx, spanFunc(func(res xmetrics.Result) { batchResult = res })
		}
		return ctx, xmetrics.NoopSpan{}
	})
	r := newTestResolver(t, WithObserver(obs), WithConcurrency(1))

	r.LookupBatch(context.Background(), []string{"100020", "FFFFFF", "005056"})

	assert.Equal(t, []string{opBatch}, ops)
	assert.NoError(t, batchResult.Err)
	assert.Contains(t, batchResult.Attrs, xmetrics.Int("found", 2))
}

type observerFunc func(context.Context, xmetrics.SpanOptions) (context.Context, xmetrics.Span)

func (f observerFunc) Start(ctx context.Context, opts xmetrics.SpanOptions) (context.Context, xmetrics.Span) {
	return f(ctx, opts)
}

type spanFunc func(xmetrics.Result)

func (f spanFunc) End(res xmetrics.Result) { f(res) }
