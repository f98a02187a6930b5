// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，内置按大小轮转
//   - xmetrics: 操作级观测接口，OpenTelemetry 实现同时产出跨度和指标
//
// 查询路径上的日志和观测都是可选的，未配置时使用 xlog.Nop 和 xmetrics.NoopObserver。
package observability
