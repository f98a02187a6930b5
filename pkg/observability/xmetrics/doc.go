// Package xmetrics 提供查询链路的统一观测接口。
//
// [Observer] 为每次操作开启一个跨度，[Span.End] 时同时写入 trace 和两个指标：
//
//   - xoui.operation.total（Counter）：维度 component、operation、status、outcome
//   - xoui.operation.duration（Histogram，单位秒）：维度同上
//
// outcome 取值为 hit、miss、invalid，未设置时不附加该维度。
//
// 未配置观测时使用 [NoopObserver]，或直接调用包级 [Start] 并传入 nil observer。
//
//	obs, err := xmetrics.NewOTelObserver(
//		xmetrics.WithTracerProvider(tp),
//		xmetrics.WithMeterProvider(mp),
//	)
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{Component: "xoui", Operation: "lookup"})
//	defer span.End(xmetrics.Result{Outcome: xmetrics.OutcomeHit})
package xmetrics
