package xmetrics

import "context"

// Status 表示操作状态。
type Status string

const (
	// StatusOK 表示成功。
	StatusOK Status = "ok"
	// StatusError 表示失败。
	StatusError Status = "error"
)

// Outcome 表示一次查询的业务结果，作为指标维度。
type Outcome string

const (
	// OutcomeHit 表示查到记录。
	OutcomeHit Outcome = "hit"
	// OutcomeMiss 表示输入合法但表中不存在。
	OutcomeMiss Outcome = "miss"
	// OutcomeInvalid 表示输入无法规范化。
	OutcomeInvalid Outcome = "invalid"
)

// Attr 观测属性。
type Attr struct {
	Key   string
	Value any
}

// SpanOptions 创建跨度的参数。
type SpanOptions struct {
	Component string
	Operation string
	Attrs     []Attr
}

// Result 跨度结束时的结果。
type Result struct {
	// Status 为空时根据 Err 推导。
	Status Status
	Err    error
	// Outcome 非空时作为 span 属性和指标维度记录。
	Outcome Outcome
	Attrs   []Attr
}

// Span 一次观测跨度。
type Span interface {
	// End 结束观测并记录结果，多次调用只生效一次。
	End(result Result)
}

// Observer 统一观测接口。
type Observer interface {
	Start(ctx context.Context, opts SpanOptions) (context.Context, Span)
}

// NoopObserver 空实现。
type NoopObserver struct{}

// Start 返回原 ctx 和空跨度。
func (NoopObserver) Start(ctx context.Context, _ SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// NoopSpan 空跨度。
type NoopSpan struct{}

// End 不做任何处理。
func (NoopSpan) End(Result) {}

// Start 使用 observer 开始观测。
//
// 保证返回非 nil 的 ctx 和 Span：nil ctx 替换为 context.Background()，
// nil observer 或 observer 返回 nil Span 时使用 [NoopSpan]。
func Start(ctx context.Context, observer Observer, opts SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx, NoopSpan{}
	}
	retCtx, span := observer.Start(ctx, opts)
	if retCtx == nil {
		retCtx = ctx
	}
	if span == nil {
		span = NoopSpan{}
	}
	return retCtx, span
}
