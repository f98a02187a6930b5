package xoui

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xoui/pkg/observability/xmetrics"
)

// BatchResult LookupBatch 中单个输入的结果
type BatchResult struct {
	Input  string
	Record Record
	Found  bool
	// Err 规范化失败或 ctx 取消时非 nil
	Err error
}

// LookupBatch 并发查询多个输入，结果顺序与输入一致
//
// 单个输入的错误记录在对应结果中，不影响其他输入。
// ctx 取消后不再调度新的输入，尚未处理的结果 Err 为 ctx.Err()。
func (r *Resolver) LookupBatch(ctx context.Context, inputs []string) []BatchResult {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]BatchResult, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	ctx, span := xmetrics.Start(ctx, r.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: opBatch,
		Attrs:     []xmetrics.Attr{xmetrics.Int("size", len(inputs))},
	})

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)

	for i, input := range inputs {
		results[i].Input = input
		if ctx.Err() != nil {
			results[i].Err = ctx.Err()
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			rec, ok, err := r.Lookup(ctx, input)
			results[i].Record, results[i].Found, results[i].Err = rec, ok, err
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // 每个任务都返回 nil，错误记录在结果中

	span.End(xmetrics.Result{Err: context.Cause(ctx), Attrs: []xmetrics.Attr{xmetrics.Int("found", countFound(results))}})
	return results
}

func countFound(results []BatchResult) int {
	n := 0
	for _, res := range results {
		if res.Found {
			n++
		}
	}
	return n
}
