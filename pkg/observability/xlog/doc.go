// Package xlog 提供基于 log/slog 的结构化日志。
//
// # 构建
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xouictl.log", xlog.WithMaxSize(50), xlog.WithMaxBackups(3)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// 所有日志方法以 context 为第一个参数，属性使用 slog.Attr，
// 常用键和构造函数见 attrs.go（如 [Err]、[OUI]、[Outcome]）。
//
// # 级别
//
// 级别可在运行期通过 [Leveler.SetLevel] 调整，派生 logger（With/WithGroup）共享同一级别。
//
// # 轮转
//
// [Builder.SetRotation] 使用 lumberjack 按大小轮转，备份数量和保留天数不能同时为 0。
// 未配置日志的组件可使用 [Nop]。
package xlog
