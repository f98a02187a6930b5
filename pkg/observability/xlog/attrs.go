package xlog

import (
	"log/slog"
	"time"
)

// 标准属性键
const (
	KeyError     = "error"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyDuration  = "duration"
	KeyCount     = "count"

	// 查询相关
	KeyInput   = "input"
	KeyOUI     = "oui"
	KeyVendor  = "vendor"
	KeyOutcome = "outcome"
)

// Err 错误属性，err 为 nil 时返回空 Attr（会被 handler 丢弃）
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 组件名
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 操作名
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Duration 耗时
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Count 计数
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Input 原始输入。超过 64 字节时截断，避免异常输入撑爆日志行。
func Input(s string) slog.Attr {
	const maxInput = 64
	if len(s) > maxInput {
		s = s[:maxInput] + "..."
	}
	return slog.String(KeyInput, s)
}

// OUI 规范化后的 6 位 OUI
func OUI(oui string) slog.Attr {
	return slog.String(KeyOUI, oui)
}

// Vendor 厂商名称
func Vendor(name string) slog.Attr {
	return slog.String(KeyVendor, name)
}

// Outcome 查询结果（hit / miss / invalid）
func Outcome(outcome string) slog.Attr {
	return slog.String(KeyOutcome, outcome)
}
