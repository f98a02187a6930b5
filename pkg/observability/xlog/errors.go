package xlog

import "errors"

var (
	// ErrInvalidLevel 无法识别的日志级别
	ErrInvalidLevel = errors.New("xlog: invalid level")
	// ErrInvalidFormat 无法识别的输出格式（仅支持 text 与 json）
	ErrInvalidFormat = errors.New("xlog: invalid format")
	// ErrNilOutput 输出目标为 nil
	ErrNilOutput = errors.New("xlog: nil output")

	// ErrEmptyFilename 轮转文件路径为空
	ErrEmptyFilename = errors.New("xlog: rotation filename is empty")
	// ErrInvalidMaxSize 单文件大小超出范围
	ErrInvalidMaxSize = errors.New("xlog: invalid rotation max size")
	// ErrInvalidMaxBackups 备份数量超出范围
	ErrInvalidMaxBackups = errors.New("xlog: invalid rotation max backups")
	// ErrInvalidMaxAge 保留天数超出范围
	ErrInvalidMaxAge = errors.New("xlog: invalid rotation max age")
	// ErrNoCleanupPolicy 备份数量与保留天数同时为 0
	ErrNoCleanupPolicy = errors.New("xlog: rotation needs max backups or max age")
	// ErrClosed 轮转文件已关闭
	ErrClosed = errors.New("xlog: rotation file closed")
)
